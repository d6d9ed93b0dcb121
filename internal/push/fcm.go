// Package push gửi push notification qua Firebase Cloud Messaging theo mô hình
// fire-and-forget: notification lỗi chỉ được log, không bao giờ làm fail request chính.
package push

import (
	"context"
	"fmt"

	"firebase.google.com/go/v4/messaging"

	"github.com/Rohitsengar02/fixxev-api/internal/utility"
)

// Message là một push notification cần gửi tới một device token
type Message struct {
	Token string            // FCM device token của người nhận
	Title string
	Body  string
	Data  map[string]string // Payload kèm theo (bookingId, type, ...)
}

// Sender gửi một push message. Impl thật dùng FCM, test dùng fake.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// FCMSender gửi push qua Firebase Cloud Messaging
type FCMSender struct {
	client *messaging.Client
}

// NewFCMSender tạo FCMSender từ messaging client đã init qua utility.InitFirebase
func NewFCMSender() (*FCMSender, error) {
	client := utility.GetFirebaseMessaging()
	if client == nil {
		return nil, fmt.Errorf("firebase messaging chưa được khởi tạo")
	}
	return &FCMSender{client: client}, nil
}

// Send gửi một message tới FCM
func (s *FCMSender) Send(ctx context.Context, msg Message) error {
	data := make(map[string]string, len(msg.Data)+1)
	for k, v := range msg.Data {
		data[k] = v
	}
	// Flutter client cần click_action để mở đúng màn hình
	data["click_action"] = "FLUTTER_NOTIFICATION_CLICK"

	fcmMessage := &messaging.Message{
		Notification: &messaging.Notification{
			Title: msg.Title,
			Body:  msg.Body,
		},
		Token: msg.Token,
		Data:  data,
	}

	_, err := s.client.Send(ctx, fcmMessage)
	return err
}
