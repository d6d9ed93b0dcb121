package notifsvc

import (
	"context"

	"github.com/sirupsen/logrus"

	notifmodels "github.com/Rohitsengar02/fixxev-api/internal/api/notification/models"
	"github.com/Rohitsengar02/fixxev-api/internal/logger"
	"github.com/Rohitsengar02/fixxev-api/internal/push"
	"github.com/Rohitsengar02/fixxev-api/internal/realtime"
)

// NotificationStore lưu bản ghi notification. Impl thật là NotificationService.
type NotificationStore interface {
	InsertOne(ctx context.Context, n notifmodels.Notification) (notifmodels.Notification, error)
}

// RealtimePublisher đẩy event tới room realtime. Impl thật là realtime.Hub.
type RealtimePublisher interface {
	Publish(room string, event string, data interface{})
}

// PushDispatcher enqueue push notification bất đồng bộ. Impl thật là push.Dispatcher.
type PushDispatcher interface {
	Enqueue(msg push.Message)
}

// AdminMailer gửi email best-effort cho admin. Impl thật là mailer.AdminMailer.
type AdminMailer interface {
	SendAdminNotification(title string, message string)
}

// DeviceTokenLookup tra FCM token của người nhận theo recipientType + recipientId.
// Trả về chuỗi rỗng khi người nhận không có token.
type DeviceTokenLookup func(ctx context.Context, recipientType, recipientID string) (string, error)

// FanoutService nhận notification từ các domain khác (chủ yếu booking) và fan-out:
// lưu bản ghi, đẩy realtime, enqueue push, email admin.
// Tất cả dependency là interface inject qua constructor, không dùng biến toàn cục.
type FanoutService struct {
	store       NotificationStore
	publisher   RealtimePublisher
	dispatcher  PushDispatcher
	adminMailer AdminMailer       // nil khi SMTP không cấu hình
	tokenLookup DeviceTokenLookup // nil khi không có push
}

// NewFanoutService tạo FanoutService với các dependency được inject.
// publisher và dispatcher có thể nil (tắt kênh tương ứng).
func NewFanoutService(store NotificationStore, publisher RealtimePublisher, dispatcher PushDispatcher, adminMailer AdminMailer, tokenLookup DeviceTokenLookup) *FanoutService {
	return &FanoutService{
		store:       store,
		publisher:   publisher,
		dispatcher:  dispatcher,
		adminMailer: adminMailer,
		tokenLookup: tokenLookup,
	}
}

// Notify fan-out một notification: lưu bản ghi, đẩy realtime tới đúng room,
// enqueue push cho user/franchise, email admin.
// Lỗi lưu bản ghi được trả về cho caller để log; các kênh còn lại là best-effort.
func (s *FanoutService) Notify(ctx context.Context, n notifmodels.Notification) (notifmodels.Notification, error) {
	// Notification mới luôn ở trạng thái chưa đọc
	n.IsRead = false

	created, err := s.store.InsertOne(ctx, n)
	if err != nil {
		logger.GetErrorLogger().WithFields(logrus.Fields{
			"recipientType": n.RecipientType,
			"recipientId":   n.RecipientID,
			"type":          n.Type,
			"error":         err.Error(),
		}).Error("Fanout: lỗi lưu notification")
		return n, err
	}

	// Realtime
	if s.publisher != nil {
		s.publisher.Publish(s.room(created.RecipientType, created.RecipientID), "notification", created)
	}

	// Push (chỉ user và franchise có device token)
	if s.dispatcher != nil && s.tokenLookup != nil && created.RecipientType != notifmodels.RecipientAdmin {
		token, err := s.tokenLookup(ctx, created.RecipientType, created.RecipientID)
		if err != nil {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"recipientType": created.RecipientType,
				"recipientId":   created.RecipientID,
				"error":         err.Error(),
			}).Debug("Fanout: không tra được device token, bỏ qua push")
		} else if token != "" {
			data := map[string]string{"type": created.Type}
			if created.RelatedBookingID != "" {
				data["bookingId"] = created.RelatedBookingID
			}
			s.dispatcher.Enqueue(push.Message{
				Token: token,
				Title: created.Title,
				Body:  created.Message,
				Data:  data,
			})
		}
	}

	// Email admin
	if s.adminMailer != nil && created.RecipientType == notifmodels.RecipientAdmin {
		go s.adminMailer.SendAdminNotification(created.Title, created.Message)
	}

	return created, nil
}

// NotifyAll fan-out nhiều notification, bản ghi lỗi không chặn các bản ghi còn lại
func (s *FanoutService) NotifyAll(ctx context.Context, notifications []notifmodels.Notification) []notifmodels.Notification {
	created := make([]notifmodels.Notification, 0, len(notifications))
	for _, n := range notifications {
		saved, err := s.Notify(ctx, n)
		if err != nil {
			continue
		}
		created = append(created, saved)
	}
	return created
}

// PublishBookingUpdate đẩy event booking_updated tới room của user
func (s *FanoutService) PublishBookingUpdate(userID string, bookingID string, status string) {
	if s.publisher == nil {
		return
	}
	s.publisher.Publish(realtime.UserRoom(userID), "booking_updated", map[string]interface{}{
		"bookingId": bookingID,
		"status":    status,
	})
}

// room trả về tên room realtime của một người nhận
func (s *FanoutService) room(recipientType, recipientID string) string {
	switch recipientType {
	case notifmodels.RecipientAdmin:
		return realtime.RoomAdmin
	case notifmodels.RecipientFranchise:
		return realtime.FranchiseRoom(recipientID)
	default:
		return realtime.UserRoom(recipientID)
	}
}
