package notifhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "github.com/Rohitsengar02/fixxev-api/internal/api/base/handler"
	notifdto "github.com/Rohitsengar02/fixxev-api/internal/api/notification/dto"
	notifmodels "github.com/Rohitsengar02/fixxev-api/internal/api/notification/models"
	notifsvc "github.com/Rohitsengar02/fixxev-api/internal/api/notification/service"
	"github.com/Rohitsengar02/fixxev-api/internal/common"
	"github.com/Rohitsengar02/fixxev-api/internal/utility"
)

// NotificationHandler xử lý các request liên quan đến Notification
type NotificationHandler struct {
	*basehdl.BaseHandler[notifmodels.Notification, notifdto.NotificationCreateInput, notifdto.NotificationUpdateInput]
	notificationService *notifsvc.NotificationService
	fanoutService       *notifsvc.FanoutService
}

// NewNotificationHandler tạo mới NotificationHandler với fanout service được inject
func NewNotificationHandler(fanoutService *notifsvc.FanoutService) (*NotificationHandler, error) {
	notificationService, err := notifsvc.NewNotificationService()
	if err != nil {
		return nil, fmt.Errorf("failed to create notification service: %v", err)
	}

	hdl := &NotificationHandler{
		BaseHandler:         basehdl.NewBaseHandler[notifmodels.Notification, notifdto.NotificationCreateInput, notifdto.NotificationUpdateInput](notificationService),
		notificationService: notificationService,
		fanoutService:       fanoutService,
	}
	return hdl, nil
}

// HandleFindByRecipient trả về notification của một người nhận có phân trang.
// Query params: page, limit, unreadOnly.
func (h *NotificationHandler) HandleFindByRecipient(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		recipientType := c.Params("recipientType")
		recipientID := c.Params("recipientId")
		if !utility.Contains([]string{notifmodels.RecipientUser, notifmodels.RecipientFranchise, notifmodels.RecipientAdmin}, recipientType) {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput,
				fmt.Sprintf("recipientType '%s' không hợp lệ, phải là user, franchise hoặc admin", recipientType),
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		page, limit := h.ParsePagination(c)
		unreadOnly := c.Query("unreadOnly", "false") == "true"

		result, err := h.notificationService.FindByRecipient(c.Context(), recipientType, recipientID, page, limit, unreadOnly)
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleUnreadCount trả về số notification chưa đọc của một người nhận
func (h *NotificationHandler) HandleUnreadCount(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		count, err := h.notificationService.UnreadCount(c.Context(), c.Params("recipientType"), c.Params("recipientId"))
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		h.HandleResponse(c, fiber.Map{"unreadCount": count}, nil)
		return nil
	})
}

// HandleMarkRead đánh dấu một notification là đã đọc
func (h *NotificationHandler) HandleMarkRead(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id := c.Params("id")
		if !primitive.IsValidObjectID(id) {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("ID '%s' không đúng định dạng MongoDB ObjectID", id),
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		data, err := h.notificationService.MarkRead(c.Context(), utility.String2ObjectID(id))
		h.HandleResponse(c, data, err)
		return nil
	})
}

// HandleMarkAllRead đánh dấu tất cả notification của một người nhận là đã đọc
func (h *NotificationHandler) HandleMarkAllRead(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		count, err := h.notificationService.MarkAllRead(c.Context(), c.Params("recipientType"), c.Params("recipientId"))
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		h.HandleResponse(c, fiber.Map{"markedCount": count}, nil)
		return nil
	})
}

// HandleCreate tạo notification trực tiếp (kênh admin/internal) và fan-out
// qua realtime + push, khác với InsertOne CRUD thuần chỉ lưu bản ghi.
func (h *NotificationHandler) HandleCreate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input notifdto.NotificationCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		notification := notifmodels.Notification{
			RecipientType:    input.RecipientType,
			RecipientID:      input.RecipientID,
			Title:            input.Title,
			Message:          input.Message,
			Type:             input.Type,
			RelatedBookingID: input.RelatedBookingID,
			Data:             input.Data,
		}

		created, err := h.fanoutService.Notify(c.Context(), notification)
		h.HandleResponse(c, created, err)
		return nil
	})
}
