package notifsvc

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	notifmodels "github.com/Rohitsengar02/fixxev-api/internal/api/notification/models"
	"github.com/Rohitsengar02/fixxev-api/internal/push"
	"github.com/Rohitsengar02/fixxev-api/internal/realtime"
)

// fakeStore ghi lại notification được lưu, trả về lỗi cấu hình sẵn
type fakeStore struct {
	inserted  []notifmodels.Notification
	err       error
	failTitle string // nếu khác rỗng, insert notification có title này sẽ lỗi
}

func (s *fakeStore) InsertOne(ctx context.Context, n notifmodels.Notification) (notifmodels.Notification, error) {
	if s.err != nil {
		return n, s.err
	}
	if s.failTitle != "" && n.Title == s.failTitle {
		return n, errors.New("insert failed")
	}
	n.ID = primitive.NewObjectID()
	n.CreatedAt = time.Now().UnixMilli()
	s.inserted = append(s.inserted, n)
	return n, nil
}

// fakePublisher ghi lại các event đã publish để assert
type fakePublisher struct {
	rooms  []string
	events []string
	data   []interface{}
}

func (p *fakePublisher) Publish(room string, event string, data interface{}) {
	p.rooms = append(p.rooms, room)
	p.events = append(p.events, event)
	p.data = append(p.data, data)
}

// fakeDispatcher ghi lại các push message được enqueue
type fakeDispatcher struct {
	messages []push.Message
}

func (d *fakeDispatcher) Enqueue(msg push.Message) {
	d.messages = append(d.messages, msg)
}

func TestFanout_RoomMapping(t *testing.T) {
	s := &FanoutService{}

	assert.Equal(t, realtime.RoomAdmin, s.room(notifmodels.RecipientAdmin, ""))
	assert.Equal(t, realtime.FranchiseRoom("f01"), s.room(notifmodels.RecipientFranchise, "f01"))
	assert.Equal(t, realtime.UserRoom("u01"), s.room(notifmodels.RecipientUser, "u01"))
}

func TestFanout_PublishBookingUpdate(t *testing.T) {
	pub := &fakePublisher{}
	s := NewFanoutService(nil, pub, nil, nil, nil)

	s.PublishBookingUpdate("u01", "BK250600123", "confirmed")

	require.Len(t, pub.events, 1)
	assert.Equal(t, realtime.UserRoom("u01"), pub.rooms[0])
	assert.Equal(t, "booking_updated", pub.events[0])

	payload, ok := pub.data[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "BK250600123", payload["bookingId"])
	assert.Equal(t, "confirmed", payload["status"])
}

func TestFanout_PublishBookingUpdateWithoutPublisher(t *testing.T) {
	s := NewFanoutService(nil, nil, nil, nil, nil)
	assert.NotPanics(t, func() {
		s.PublishBookingUpdate("u01", "BK250600123", "cancelled")
	})
}

func TestNotify_PersistsUnreadThenPublishes(t *testing.T) {
	store := &fakeStore{}
	pub := &fakePublisher{}
	s := NewFanoutService(store, pub, nil, nil, nil)

	// IsRead từ caller bị bỏ qua, notification mới luôn chưa đọc
	created, err := s.Notify(context.Background(), notifmodels.Notification{
		RecipientType: notifmodels.RecipientUser,
		RecipientID:   "u01",
		Title:         "Booking Confirmed",
		Message:       "Your booking has been confirmed!",
		Type:          notifmodels.TypeBookingConfirmed,
		IsRead:        true,
	})
	require.NoError(t, err)

	require.Len(t, store.inserted, 1)
	assert.False(t, store.inserted[0].IsRead, "notification mới phải ở trạng thái chưa đọc")
	assert.False(t, created.IsRead)
	assert.False(t, created.ID.IsZero())

	require.Len(t, pub.events, 1)
	assert.Equal(t, realtime.UserRoom("u01"), pub.rooms[0])
	assert.Equal(t, "notification", pub.events[0])

	published, ok := pub.data[0].(notifmodels.Notification)
	require.True(t, ok)
	assert.Equal(t, created.ID, published.ID, "bản ghi đẩy realtime phải là bản đã lưu")
}

func TestNotify_StoreErrorSkipsChannels(t *testing.T) {
	store := &fakeStore{err: errors.New("mongo unavailable")}
	pub := &fakePublisher{}
	dispatcher := &fakeDispatcher{}
	lookup := func(ctx context.Context, recipientType, recipientID string) (string, error) {
		return "token", nil
	}
	s := NewFanoutService(store, pub, dispatcher, nil, lookup)

	_, err := s.Notify(context.Background(), notifmodels.Notification{
		RecipientType: notifmodels.RecipientUser,
		RecipientID:   "u01",
		Title:         "Booking Confirmed",
		Message:       "msg",
		Type:          notifmodels.TypeBookingConfirmed,
	})

	require.Error(t, err)
	assert.Empty(t, pub.events, "lưu thất bại thì không đẩy realtime")
	assert.Empty(t, dispatcher.messages, "lưu thất bại thì không enqueue push")
}

func TestNotify_EnqueuesPushWithToken(t *testing.T) {
	store := &fakeStore{}
	dispatcher := &fakeDispatcher{}
	lookup := func(ctx context.Context, recipientType, recipientID string) (string, error) {
		return "device-token-u01", nil
	}
	s := NewFanoutService(store, nil, dispatcher, nil, lookup)

	_, err := s.Notify(context.Background(), notifmodels.Notification{
		RecipientType:    notifmodels.RecipientUser,
		RecipientID:      "u01",
		Title:            "Booking Completed",
		Message:          "Your service has been completed. Thank you!",
		Type:             notifmodels.TypeBookingCompleted,
		RelatedBookingID: "BK250600123",
	})
	require.NoError(t, err)

	require.Len(t, dispatcher.messages, 1)
	msg := dispatcher.messages[0]
	assert.Equal(t, "device-token-u01", msg.Token)
	assert.Equal(t, "Booking Completed", msg.Title)
	assert.Equal(t, "BK250600123", msg.Data["bookingId"])
	assert.Equal(t, notifmodels.TypeBookingCompleted, msg.Data["type"])
}

func TestNotify_AdminRecipientSkipsPush(t *testing.T) {
	store := &fakeStore{}
	dispatcher := &fakeDispatcher{}
	lookup := func(ctx context.Context, recipientType, recipientID string) (string, error) {
		t.Fatal("admin không có device token, không được tra token")
		return "", nil
	}
	s := NewFanoutService(store, nil, dispatcher, nil, lookup)

	_, err := s.Notify(context.Background(), notifmodels.Notification{
		RecipientType: notifmodels.RecipientAdmin,
		RecipientID:   notifmodels.RecipientAdmin,
		Title:         "New Booking Created",
		Message:       "msg",
		Type:          notifmodels.TypeBookingCreated,
	})
	require.NoError(t, err)
	assert.Empty(t, dispatcher.messages)
}

func TestNotifyAll_ContinuesPastFailures(t *testing.T) {
	store := &fakeStore{failTitle: "b"}
	s := NewFanoutService(store, nil, nil, nil, nil)

	created := s.NotifyAll(context.Background(), []notifmodels.Notification{
		{RecipientType: notifmodels.RecipientUser, RecipientID: "u01", Title: "a", Message: "a", Type: notifmodels.TypeBookingCreated},
		{RecipientType: notifmodels.RecipientFranchise, RecipientID: "f01", Title: "b", Message: "b", Type: notifmodels.TypeBookingCreated},
		{RecipientType: notifmodels.RecipientAdmin, RecipientID: notifmodels.RecipientAdmin, Title: "c", Message: "c", Type: notifmodels.TypeBookingCreated},
	})

	// Bản ghi lỗi bị bỏ qua, các bản ghi còn lại vẫn được lưu
	assert.Len(t, created, 2)
	assert.Len(t, store.inserted, 2)
}

func TestMarkAllReadClearsUnreadFilter(t *testing.T) {
	filter := unreadFilter(notifmodels.RecipientUser, "u01")
	update := markReadUpdate()

	assert.Equal(t, notifmodels.RecipientUser, filter["recipientType"])
	assert.Equal(t, "u01", filter["recipientId"])
	assert.Equal(t, false, filter["isRead"])

	// Update đặt đúng field mà filter loại trừ: bản ghi sau khi
	// cập nhật không còn khớp filter chưa đọc nữa
	assert.Equal(t, true, update.Set["isRead"])
}
