package analyticssvc

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	bookingmodels "github.com/Rohitsengar02/fixxev-api/internal/api/booking/models"
	"github.com/Rohitsengar02/fixxev-api/internal/api/events"
	franchisemodels "github.com/Rohitsengar02/fixxev-api/internal/api/franchise/models"
	"github.com/Rohitsengar02/fixxev-api/internal/global"
)

func TestDayStart(t *testing.T) {
	now := time.Date(2025, 6, 15, 14, 37, 22, 0, time.Local)

	today := dayStart(now, 0)
	assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, time.Local), today)

	weekAgo := dayStart(now, 6)
	assert.Equal(t, time.Date(2025, 6, 9, 0, 0, 0, 0, time.Local), weekAgo)
}

func TestBuildPerformance_RevenueOnlyFromCompleted(t *testing.T) {
	fID := primitive.NewObjectID()
	franchises := []franchisemodels.Franchise{{ID: fID, Name: "EV Care Hub", Rating: 4.5}}
	bookings := []bookingmodels.Booking{
		{FranchiseID: fID, Status: bookingmodels.StatusCompleted, TotalAmount: 1500},
		{FranchiseID: fID, Status: bookingmodels.StatusPending, TotalAmount: 999},
		{FranchiseID: fID, Status: bookingmodels.StatusCancelled, TotalAmount: 500},
	}

	perf := buildPerformance(bookings, franchises)

	require.Len(t, perf.Franchises, 1)
	row := perf.Franchises[0]
	assert.Equal(t, "EV Care Hub", row.Name)
	assert.Equal(t, 3, row.Bookings, "mọi booking đều tính vào số lượt")
	assert.Equal(t, float64(1500), row.Revenue, "doanh thu chỉ tính booking completed")
	assert.Equal(t, 4.5, row.Rating)
}

func TestBuildPerformance_TopFiveByRevenue(t *testing.T) {
	var franchises []franchisemodels.Franchise
	var bookings []bookingmodels.Booking
	for i := 0; i < 7; i++ {
		id := primitive.NewObjectID()
		franchises = append(franchises, franchisemodels.Franchise{ID: id, Name: string(rune('A' + i))})
		bookings = append(bookings, bookingmodels.Booking{
			FranchiseID: id,
			Status:      bookingmodels.StatusCompleted,
			TotalAmount: float64((i + 1) * 100),
		})
	}

	perf := buildPerformance(bookings, franchises)

	require.Len(t, perf.Franchises, 5)
	assert.Equal(t, "G", perf.Franchises[0].Name, "cơ sở doanh thu cao nhất đứng đầu")
	for i := 1; i < len(perf.Franchises); i++ {
		assert.GreaterOrEqual(t, perf.Franchises[i-1].Revenue, perf.Franchises[i].Revenue)
	}
}

func TestBuildPerformance_ServiceAndVehicleCounts(t *testing.T) {
	bookings := []bookingmodels.Booking{
		{
			Services:       []bookingmodels.BookedService{{ServiceName: "Battery Check"}, {ServiceName: "Full Service"}},
			VehicleDetails: bookingmodels.VehicleDetails{Model: "Nexon EV"},
		},
		{
			Services:       []bookingmodels.BookedService{{ServiceName: "Battery Check"}},
			VehicleDetails: bookingmodels.VehicleDetails{Model: "Nexon EV"},
		},
		{
			Services: []bookingmodels.BookedService{{ServiceName: "Tyre Rotation"}},
			// Booking không có model xe không được tính vào phân bố
		},
	}

	perf := buildPerformance(bookings, nil)

	require.NotEmpty(t, perf.Services)
	assert.Equal(t, ServiceCount{Name: "Battery Check", Count: 2}, perf.Services[0])

	require.Len(t, perf.Vehicles, 1)
	assert.Equal(t, VehicleCount{Model: "Nexon EV", Count: 2}, perf.Vehicles[0])
}

func TestStatsCacheDirtyFlag(t *testing.T) {
	global.MongoDB_ColNames.Bookings = "bookings"
	global.MongoDB_ColNames.Users = "users"

	statsCache.Lock()
	statsCache.dirty = false
	statsCache.Unlock()

	// Thay đổi trên collection không liên quan không làm bẩn cache
	handleAnalyticsDataChange(context.Background(), events.DataChangeEvent{CollectionName: "tips"})
	statsCache.Lock()
	assert.False(t, statsCache.dirty)
	statsCache.Unlock()

	handleAnalyticsDataChange(context.Background(), events.DataChangeEvent{CollectionName: "bookings"})
	statsCache.Lock()
	assert.True(t, statsCache.dirty, "thay đổi booking phải làm bẩn cache")
	statsCache.dirty = false
	statsCache.Unlock()

	InvalidateStatsCache()
	statsCache.Lock()
	assert.True(t, statsCache.dirty)
	statsCache.Unlock()
}

func TestTopN(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3}, topN([]int{1, 2, 3}, 5))
	assert.Equal(t, []int{1, 2}, topN([]int{1, 2, 3}, 2))
	assert.Empty(t, topN([]int{}, 5))
}
