package franchisesvc

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "github.com/Rohitsengar02/fixxev-api/internal/api/base/service"
	bookingmodels "github.com/Rohitsengar02/fixxev-api/internal/api/booking/models"
	franchisemodels "github.com/Rohitsengar02/fixxev-api/internal/api/franchise/models"
	"github.com/Rohitsengar02/fixxev-api/internal/common"
	"github.com/Rohitsengar02/fixxev-api/internal/global"
)

// Revenue - Doanh thu từ các booking đã hoàn thành
type Revenue struct {
	Total float64 `json:"total"`
	Today float64 `json:"today"`
}

// DashboardStats - Các chỉ số vận hành của cơ sở
type DashboardStats struct {
	TotalBookings     int `json:"totalBookings"`
	PendingBookings   int `json:"pendingBookings"`
	OngoingBookings   int `json:"ongoingBookings"`
	CompletedBookings int `json:"completedBookings"`
	CancelledBookings int `json:"cancelledBookings"`
	TechnicianCount   int `json:"technicianCount"`
	ServiceCount      int `json:"serviceCount"`
}

// Dashboard - Dữ liệu màn hình tổng quan của app đối tác
type Dashboard struct {
	Franchise      franchisemodels.Franchise `json:"franchise"`
	Revenue        Revenue                   `json:"revenue"`
	Stats          DashboardStats            `json:"stats"`
	RecentBookings []bookingmodels.Booking   `json:"recentBookings"`
}

// GetDashboard tổng hợp doanh thu, chỉ số booking và booking gần nhất của cơ sở
func (s *FranchiseService) GetDashboard(ctx context.Context, id primitive.ObjectID) (*Dashboard, error) {
	franchise, err := s.FindOneById(ctx, id)
	if err != nil {
		return nil, err
	}
	franchise.Password = ""

	bookingCol, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Bookings)
	if !exist {
		return nil, fmt.Errorf("failed to get bookings collection: %v", common.ErrNotFound)
	}
	bookingStore := basesvc.NewBaseServiceMongo[bookingmodels.Booking](bookingCol)

	allBookings, err := bookingStore.Find(ctx, bson.M{"franchiseId": id}, nil)
	if err != nil {
		return nil, err
	}

	today := time.Now().Format("2006-01-02")
	revenue := Revenue{}
	stats := DashboardStats{
		TotalBookings:   len(allBookings),
		TechnicianCount: len(franchise.Technicians),
		ServiceCount:    len(franchise.Services),
	}
	for _, b := range allBookings {
		switch b.Status {
		case bookingmodels.StatusPending:
			stats.PendingBookings++
		case bookingmodels.StatusConfirmed, bookingmodels.StatusInProgress:
			stats.OngoingBookings++
		case bookingmodels.StatusCompleted:
			stats.CompletedBookings++
			revenue.Total += b.TotalAmount
			if b.AppointmentDate >= today {
				revenue.Today += b.TotalAmount
			}
		case bookingmodels.StatusCancelled:
			stats.CancelledBookings++
		}
	}

	recentOpts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(5)
	recentBookings, err := bookingStore.Find(ctx, bson.M{"franchiseId": id}, recentOpts)
	if err != nil {
		return nil, err
	}

	return &Dashboard{
		Franchise:      franchise,
		Revenue:        revenue,
		Stats:          stats,
		RecentBookings: recentBookings,
	}, nil
}
