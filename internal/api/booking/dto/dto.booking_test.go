package bookingdto

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Rohitsengar02/fixxev-api/internal/global"
)

// Cập nhật trạng thái chấp nhận đủ cả năm trạng thái hợp lệ,
// không phụ thuộc trạng thái hiện tại của booking.
func TestBookingStatusUpdateInput_AcceptsAllStatuses(t *testing.T) {
	global.InitValidator()

	statuses := []string{"pending", "confirmed", "in-progress", "completed", "cancelled"}
	for _, s := range statuses {
		input := BookingStatusUpdateInput{Status: s}
		err := global.Validate.Struct(&input)
		assert.NoError(t, err, "Trạng thái %q phải hợp lệ", s)
	}
}

func TestBookingStatusUpdateInput_RejectsInvalidStatus(t *testing.T) {
	global.InitValidator()

	for _, s := range []string{"", "done", "in_progress", "PENDING"} {
		input := BookingStatusUpdateInput{Status: s}
		err := global.Validate.Struct(&input)
		assert.Error(t, err, "Trạng thái %q phải bị từ chối", s)
	}
}
