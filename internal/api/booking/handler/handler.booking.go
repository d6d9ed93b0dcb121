package bookinghdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "github.com/Rohitsengar02/fixxev-api/internal/api/base/handler"
	bookingdto "github.com/Rohitsengar02/fixxev-api/internal/api/booking/dto"
	bookingmodels "github.com/Rohitsengar02/fixxev-api/internal/api/booking/models"
	bookingsvc "github.com/Rohitsengar02/fixxev-api/internal/api/booking/service"
	notifsvc "github.com/Rohitsengar02/fixxev-api/internal/api/notification/service"
	"github.com/Rohitsengar02/fixxev-api/internal/common"
	"github.com/Rohitsengar02/fixxev-api/internal/logger"
	"github.com/Rohitsengar02/fixxev-api/internal/utility"
)

// BookingHandler xử lý các request liên quan đến Booking
type BookingHandler struct {
	*basehdl.BaseHandler[bookingmodels.Booking, bookingdto.BookingCreateInput, bookingdto.BookingUpdateInput]
	bookingService *bookingsvc.BookingService
}

// NewBookingHandler tạo mới BookingHandler với fan-out service được inject
func NewBookingHandler(fanoutService *notifsvc.FanoutService) (*BookingHandler, error) {
	bookingService, err := bookingsvc.NewBookingService(fanoutService)
	if err != nil {
		return nil, fmt.Errorf("failed to create booking service: %v", err)
	}

	hdl := &BookingHandler{
		BaseHandler:    basehdl.NewBaseHandler[bookingmodels.Booking, bookingdto.BookingCreateInput, bookingdto.BookingUpdateInput](bookingService),
		bookingService: bookingService,
	}
	return hdl, nil
}

// HandleCreate tạo booking mới, cấp bookingId và fan-out thông báo
func (h *BookingHandler) HandleCreate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input bookingdto.BookingCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		booking, err := h.TransformCreateInputToModel(&input)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		created, err := h.bookingService.Create(c.Context(), *booking)
		h.HandleResponse(c, created, err)
		return nil
	})
}

// HandleListAdmin trả về toàn bộ booking có phân trang cho admin.
// Query params: status, page, limit.
func (h *BookingHandler) HandleListAdmin(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		page, limit := h.ParsePagination(c)
		result, err := h.bookingService.ListAdmin(c.Context(), c.Query("status"), page, limit)
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleListByUser trả về booking của một khách, lọc theo status nếu có
func (h *BookingHandler) HandleListByUser(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		bookings, err := h.bookingService.ListByUser(c.Context(), c.Params("userId"), c.Query("status"))
		h.HandleResponse(c, bookings, err)
		return nil
	})
}

// HandleListByFranchise trả về booking của một cơ sở.
// Query params: status, date.
func (h *BookingHandler) HandleListByFranchise(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		franchiseID, err := h.parseFranchiseID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		bookings, err := h.bookingService.ListByFranchise(c.Context(), franchiseID, c.Query("status"), c.Query("date"))
		h.HandleResponse(c, bookings, err)
		return nil
	})
}

// HandleFindByAnyID tìm booking theo ObjectID hoặc bookingId
func (h *BookingHandler) HandleFindByAnyID(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		booking, err := h.bookingService.FindByAnyID(c.Context(), c.Params("id"))
		h.HandleResponse(c, booking, err)
		return nil
	})
}

// HandleUpdateStatus chuyển trạng thái booking và thông báo cho khách
func (h *BookingHandler) HandleUpdateStatus(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input bookingdto.BookingStatusUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		booking, err := h.bookingService.UpdateStatus(c.Context(), c.Params("id"), input.Status)
		if err == nil {
			logger.LogAction("booking_status_changed", c, map[string]interface{}{
				"bookingId": booking.BookingID,
				"status":    input.Status,
			})
		}
		h.HandleResponse(c, booking, err)
		return nil
	})
}

// HandleCancel hủy booking và thông báo cho cơ sở cùng admin.
// Booking bị hủy vẫn được giữ lại làm lịch sử, không xóa bản ghi.
func (h *BookingHandler) HandleCancel(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		booking, err := h.bookingService.Cancel(c.Context(), c.Params("id"))
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		logger.LogAction("booking_cancelled", c, map[string]interface{}{
			"bookingId": booking.BookingID,
		})
		h.HandleResponse(c, fiber.Map{
			"message": "Booking cancelled successfully",
			"booking": booking,
		}, nil)
		return nil
	})
}

// HandleSlots trả về khung giờ trống của một cơ sở trong ngày
func (h *BookingHandler) HandleSlots(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		franchiseID, err := h.parseFranchiseID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		result, err := h.bookingService.AvailableSlots(c.Context(), franchiseID, c.Params("date"))
		h.HandleResponse(c, result, err)
		return nil
	})
}

// parseFranchiseID đọc và kiểm tra param franchiseId
func (h *BookingHandler) parseFranchiseID(c fiber.Ctx) (primitive.ObjectID, error) {
	id := c.Params("franchiseId")
	if !primitive.IsValidObjectID(id) {
		return primitive.NilObjectID, common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("franchiseId '%s' không đúng định dạng MongoDB ObjectID", id),
			common.StatusBadRequest,
			nil,
		)
	}
	return utility.String2ObjectID(id), nil
}
