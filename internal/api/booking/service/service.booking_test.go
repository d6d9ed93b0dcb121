package bookingsvc

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bookingmodels "github.com/Rohitsengar02/fixxev-api/internal/api/booking/models"
	notifmodels "github.com/Rohitsengar02/fixxev-api/internal/api/notification/models"
)

func TestFormatBookingID(t *testing.T) {
	jan := time.Date(2025, time.January, 15, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, "BK250100001", FormatBookingID(jan, 1))
	assert.Equal(t, "BK250112345", FormatBookingID(jan, 12345))

	dec := time.Date(2026, time.December, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "BK261200042", FormatBookingID(dec, 42))
}

func TestFormatBookingID_SequenceMonotonic(t *testing.T) {
	now := time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC)
	prev := FormatBookingID(now, 1)
	for seq := int64(2); seq <= 200; seq++ {
		cur := FormatBookingID(now, seq)
		assert.Greater(t, cur, prev, "bookingId phải tăng dần theo sequence")
		prev = cur
	}
}

func TestCounterKey(t *testing.T) {
	jan := time.Date(2025, time.January, 15, 10, 0, 0, 0, time.UTC)
	feb := time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "booking_2501", CounterKey(jan))
	assert.Equal(t, "booking_2502", CounterKey(feb))
	assert.NotEqual(t, CounterKey(jan), CounterKey(feb), "mỗi tháng một counter riêng")
}

func TestNormalizeDate(t *testing.T) {
	assert.Equal(t, "2025-06-10", normalizeDate("2025-06-10"))
	assert.Equal(t, "2025-06-10", normalizeDate("2025-06-10T00:00:00.000Z"))
	assert.Equal(t, "", normalizeDate(""))
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Pending", capitalize("pending"))
	assert.Equal(t, "In-progress", capitalize("in-progress"))
	assert.Equal(t, "", capitalize(""))
}

func TestAnyIDFilter(t *testing.T) {
	// id dạng hex hợp lệ: tra cả _id lẫn bookingId
	filter := anyIDFilter("507f1f77bcf86cd799439011")
	or, ok := filter["$or"]
	require.True(t, ok, "hex hợp lệ phải sinh filter $or")
	require.NotNil(t, or)

	// bookingId dạng BKyymmNNNNN: chỉ tra bookingId
	filter = anyIDFilter("BK250100001")
	_, ok = filter["$or"]
	assert.False(t, ok)
	assert.Equal(t, "BK250100001", filter["bookingId"])
}

func TestComputeSlotAvailability_Empty(t *testing.T) {
	result := computeSlotAvailability(nil)
	assert.Equal(t, DefaultTimeSlots, result.AvailableSlots)
	assert.Empty(t, result.BookedSlots)
	assert.Equal(t, len(DefaultTimeSlots), result.TotalSlots)
}

func TestComputeSlotAvailability_UnionAndDisjoint(t *testing.T) {
	booked := []string{DefaultTimeSlots[0], DefaultTimeSlots[5], DefaultTimeSlots[15]}
	result := computeSlotAvailability(booked)

	// Hợp của available và booked phủ đủ khung giờ chuẩn
	seen := map[string]bool{}
	for _, slot := range result.AvailableSlots {
		seen[slot] = true
	}
	for _, slot := range result.BookedSlots {
		seen[slot] = true
	}
	for _, slot := range DefaultTimeSlots {
		assert.True(t, seen[slot], "slot %s phải nằm trong available hoặc booked", slot)
	}

	// Hai phần không giao nhau
	bookedSet := map[string]bool{}
	for _, slot := range result.BookedSlots {
		bookedSet[slot] = true
	}
	for _, slot := range result.AvailableSlots {
		assert.False(t, bookedSet[slot], "slot %s không được vừa available vừa booked", slot)
	}

	assert.Len(t, result.AvailableSlots, len(DefaultTimeSlots)-len(booked))
}

func TestComputeSlotAvailability_CancelledSlotFreesAgain(t *testing.T) {
	slot := DefaultTimeSlots[3]

	withBooking := computeSlotAvailability([]string{slot})
	assert.NotContains(t, withBooking.AvailableSlots, slot)

	// Booking bị hủy không còn trong danh sách booked, slot trống trở lại
	afterCancel := computeSlotAvailability(nil)
	assert.Contains(t, afterCancel.AvailableSlots, slot)
}

func TestStatusNotificationType_AllStatuses(t *testing.T) {
	// Mọi trạng thái đều chuyển được thành loại notification trong closed set,
	// không có trạng thái nào bị chặn theo trạng thái trước đó
	want := map[string]string{
		bookingmodels.StatusPending:    notifmodels.TypeBookingUpdated,
		bookingmodels.StatusConfirmed:  notifmodels.TypeBookingConfirmed,
		bookingmodels.StatusInProgress: notifmodels.TypeBookingInProgress,
		bookingmodels.StatusCompleted:  notifmodels.TypeBookingCompleted,
		bookingmodels.StatusCancelled:  notifmodels.TypeBookingCancelled,
	}
	for status, expected := range want {
		assert.Equal(t, expected, statusNotificationType(status))
	}
}

func TestDefaultTimeSlots_Count(t *testing.T) {
	assert.Len(t, DefaultTimeSlots, 16)
}
