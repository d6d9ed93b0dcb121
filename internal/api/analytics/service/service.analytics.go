// Package analyticssvc tổng hợp số liệu vận hành cho trang quản trị:
// doanh thu, phân bố trạng thái booking, xu hướng 7 ngày và bảng xếp hạng.
package analyticssvc

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "github.com/Rohitsengar02/fixxev-api/internal/api/base/service"
	bookingmodels "github.com/Rohitsengar02/fixxev-api/internal/api/booking/models"
	catalogmodels "github.com/Rohitsengar02/fixxev-api/internal/api/catalog/models"
	franchisemodels "github.com/Rohitsengar02/fixxev-api/internal/api/franchise/models"
	usermodels "github.com/Rohitsengar02/fixxev-api/internal/api/user/models"
	"github.com/Rohitsengar02/fixxev-api/internal/common"
	"github.com/Rohitsengar02/fixxev-api/internal/global"
)

// Overview - Các chỉ số tổng của hệ thống
type Overview struct {
	TotalRevenue    float64 `json:"totalRevenue"`
	TotalBookings   int64   `json:"totalBookings"`
	TotalUsers      int64   `json:"totalUsers"`
	TotalFranchises int64   `json:"totalFranchises"`
	TotalServices   int64   `json:"totalServices"`
	NewUsers7d      int64   `json:"newUsers7d"`
}

// BookingStats - Phân bố booking theo trạng thái
type BookingStats struct {
	Pending    int `json:"pending"`
	Confirmed  int `json:"confirmed"`
	InProgress int `json:"inProgress"`
	Completed  int `json:"completed"`
	Cancelled  int `json:"cancelled"`
}

// Trends - Chuỗi số liệu 7 ngày gần nhất, label là thứ trong tuần
type Trends struct {
	Labels     []string  `json:"labels"`
	Revenue    []float64 `json:"revenue"`
	Bookings   []int     `json:"bookings"`
	UserGrowth []int64   `json:"userGrowth"`
}

// FranchisePerformance - Một dòng trong bảng xếp hạng cơ sở
type FranchisePerformance struct {
	Name     string  `json:"name"`
	Bookings int     `json:"bookings"`
	Revenue  float64 `json:"revenue"`
	Rating   float64 `json:"rating"`
}

// ServiceCount - Số lần một dịch vụ được đặt
type ServiceCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// VehicleCount - Số booking theo model xe
type VehicleCount struct {
	Model string `json:"model"`
	Count int    `json:"count"`
}

// Performance - Top 5 cơ sở, dịch vụ và model xe
type Performance struct {
	Franchises []FranchisePerformance `json:"franchises"`
	Services   []ServiceCount         `json:"services"`
	Vehicles   []VehicleCount         `json:"vehicles"`
}

// AdminStats - Toàn bộ số liệu cho trang quản trị
type AdminStats struct {
	Overview     Overview     `json:"overview"`
	BookingStats BookingStats `json:"bookingStats"`
	Trends       Trends       `json:"trends"`
	Performance  Performance  `json:"performance"`
}

// AnalyticsService đọc trực tiếp từ các collection nghiệp vụ, không có collection riêng
type AnalyticsService struct {
	bookings   *basesvc.BaseServiceMongoImpl[bookingmodels.Booking]
	users      *basesvc.BaseServiceMongoImpl[usermodels.User]
	franchises *basesvc.BaseServiceMongoImpl[franchisemodels.Franchise]
	services   *basesvc.BaseServiceMongoImpl[catalogmodels.Service]
}

// NewAnalyticsService tạo mới AnalyticsService
func NewAnalyticsService() (*AnalyticsService, error) {
	bookingCol, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Bookings)
	if !exist {
		return nil, fmt.Errorf("failed to get bookings collection: %v", common.ErrNotFound)
	}
	userCol, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
	if !exist {
		return nil, fmt.Errorf("failed to get users collection: %v", common.ErrNotFound)
	}
	franchiseCol, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Franchises)
	if !exist {
		return nil, fmt.Errorf("failed to get franchises collection: %v", common.ErrNotFound)
	}
	serviceCol, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Services)
	if !exist {
		return nil, fmt.Errorf("failed to get services collection: %v", common.ErrNotFound)
	}

	return &AnalyticsService{
		bookings:   basesvc.NewBaseServiceMongo[bookingmodels.Booking](bookingCol),
		users:      basesvc.NewBaseServiceMongo[usermodels.User](userCol),
		franchises: basesvc.NewBaseServiceMongo[franchisemodels.Franchise](franchiseCol),
		services:   basesvc.NewBaseServiceMongo[catalogmodels.Service](serviceCol),
	}, nil
}

// dayStart trả về 00:00 local của ngày cách hôm nay daysAgo ngày
func dayStart(now time.Time, daysAgo int) time.Time {
	d := now.AddDate(0, 0, -daysAgo)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())
}

// GetAdminStats tính toàn bộ số liệu quản trị từ dữ liệu hiện tại
func (s *AnalyticsService) GetAdminStats(ctx context.Context) (*AdminStats, error) {
	now := time.Now()

	totalBookings, err := s.bookings.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	totalUsers, err := s.users.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	totalFranchises, err := s.franchises.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	totalServices, err := s.services.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	newUsers7d, err := s.users.CountDocuments(ctx, bson.M{
		"createdAt": bson.M{"$gte": now.AddDate(0, 0, -7).UnixMilli()},
	})
	if err != nil {
		return nil, err
	}

	allBookings, err := s.bookings.Find(ctx, bson.M{}, nil)
	if err != nil {
		return nil, err
	}
	franchises, err := s.franchises.Find(ctx, bson.M{},
		options.Find().SetProjection(bson.M{"name": 1, "rating": 1}))
	if err != nil {
		return nil, err
	}

	stats := &AdminStats{}
	stats.Overview = Overview{
		TotalBookings:   totalBookings,
		TotalUsers:      totalUsers,
		TotalFranchises: totalFranchises,
		TotalServices:   totalServices,
		NewUsers7d:      newUsers7d,
	}

	for _, b := range allBookings {
		switch b.Status {
		case bookingmodels.StatusPending:
			stats.BookingStats.Pending++
		case bookingmodels.StatusConfirmed:
			stats.BookingStats.Confirmed++
		case bookingmodels.StatusInProgress:
			stats.BookingStats.InProgress++
		case bookingmodels.StatusCompleted:
			stats.BookingStats.Completed++
			stats.Overview.TotalRevenue += b.TotalAmount
		case bookingmodels.StatusCancelled:
			stats.BookingStats.Cancelled++
		}
	}

	trends, err := s.buildTrends(ctx, now, allBookings)
	if err != nil {
		return nil, err
	}
	stats.Trends = *trends
	stats.Performance = buildPerformance(allBookings, franchises)

	return stats, nil
}

// buildTrends dựng chuỗi 7 ngày: doanh thu và số booking theo ngày hẹn,
// tăng trưởng user theo ngày tạo tài khoản
func (s *AnalyticsService) buildTrends(ctx context.Context, now time.Time, allBookings []bookingmodels.Booking) (*Trends, error) {
	trends := &Trends{
		Labels:     make([]string, 0, 7),
		Revenue:    make([]float64, 0, 7),
		Bookings:   make([]int, 0, 7),
		UserGrowth: make([]int64, 0, 7),
	}

	for i := 6; i >= 0; i-- {
		day := dayStart(now, i)
		next := day.AddDate(0, 0, 1)
		dateStr := day.Format("2006-01-02")

		trends.Labels = append(trends.Labels, day.Weekday().String()[:3])

		dayCount := 0
		dayRevenue := float64(0)
		for _, b := range allBookings {
			if b.AppointmentDate != dateStr {
				continue
			}
			dayCount++
			if b.Status == bookingmodels.StatusCompleted {
				dayRevenue += b.TotalAmount
			}
		}
		trends.Bookings = append(trends.Bookings, dayCount)
		trends.Revenue = append(trends.Revenue, dayRevenue)

		growth, err := s.users.CountDocuments(ctx, bson.M{
			"createdAt": bson.M{"$gte": day.UnixMilli(), "$lt": next.UnixMilli()},
		})
		if err != nil {
			return nil, err
		}
		trends.UserGrowth = append(trends.UserGrowth, growth)
	}

	return trends, nil
}

// buildPerformance dựng top 5 cơ sở theo doanh thu, dịch vụ và model xe theo số lượt đặt
func buildPerformance(allBookings []bookingmodels.Booking, franchises []franchisemodels.Franchise) Performance {
	perf := Performance{
		Franchises: make([]FranchisePerformance, 0, len(franchises)),
	}

	for _, f := range franchises {
		row := FranchisePerformance{Name: f.Name, Rating: f.Rating}
		for _, b := range allBookings {
			if b.FranchiseID != f.ID {
				continue
			}
			row.Bookings++
			if b.Status == bookingmodels.StatusCompleted {
				row.Revenue += b.TotalAmount
			}
		}
		perf.Franchises = append(perf.Franchises, row)
	}
	sort.SliceStable(perf.Franchises, func(i, j int) bool {
		return perf.Franchises[i].Revenue > perf.Franchises[j].Revenue
	})
	perf.Franchises = topN(perf.Franchises, 5)

	serviceMap := map[string]int{}
	vehicleMap := map[string]int{}
	for _, b := range allBookings {
		for _, s := range b.Services {
			serviceMap[s.ServiceName]++
		}
		if b.VehicleDetails.Model != "" {
			vehicleMap[b.VehicleDetails.Model]++
		}
	}

	for name, count := range serviceMap {
		perf.Services = append(perf.Services, ServiceCount{Name: name, Count: count})
	}
	sort.SliceStable(perf.Services, func(i, j int) bool {
		if perf.Services[i].Count != perf.Services[j].Count {
			return perf.Services[i].Count > perf.Services[j].Count
		}
		return perf.Services[i].Name < perf.Services[j].Name
	})
	perf.Services = topN(perf.Services, 5)

	for model, count := range vehicleMap {
		perf.Vehicles = append(perf.Vehicles, VehicleCount{Model: model, Count: count})
	}
	sort.SliceStable(perf.Vehicles, func(i, j int) bool {
		if perf.Vehicles[i].Count != perf.Vehicles[j].Count {
			return perf.Vehicles[i].Count > perf.Vehicles[j].Count
		}
		return perf.Vehicles[i].Model < perf.Vehicles[j].Model
	})
	perf.Vehicles = topN(perf.Vehicles, 5)

	return perf
}

func topN[T any](items []T, n int) []T {
	if len(items) > n {
		return items[:n]
	}
	return items
}
