package notifsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "github.com/Rohitsengar02/fixxev-api/internal/api/base/service"
	notifmodels "github.com/Rohitsengar02/fixxev-api/internal/api/notification/models"
	"github.com/Rohitsengar02/fixxev-api/internal/common"
	"github.com/Rohitsengar02/fixxev-api/internal/global"
)

// NotificationService là cấu trúc chứa các phương thức liên quan đến Notification
type NotificationService struct {
	*basesvc.BaseServiceMongoImpl[notifmodels.Notification]
}

// NewNotificationService tạo mới NotificationService
func NewNotificationService() (*NotificationService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Notifications)
	if !exist {
		return nil, fmt.Errorf("failed to get notifications collection: %v", common.ErrNotFound)
	}

	return &NotificationService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[notifmodels.Notification](collection),
	}, nil
}

// RecipientPage là kết quả phân trang kèm số lượng chưa đọc của một người nhận
type RecipientPage struct {
	Notifications []notifmodels.Notification `json:"notifications"`
	Total         int64                      `json:"total"`
	UnreadCount   int64                      `json:"unreadCount"`
	Page          int64                      `json:"page"`
	TotalPages    int64                      `json:"totalPages"`
}

// FindByRecipient trả về notification của một người nhận, mới nhất trước,
// có phân trang và lọc unreadOnly
func (s *NotificationService) FindByRecipient(ctx context.Context, recipientType, recipientID string, page, limit int64, unreadOnly bool) (*RecipientPage, error) {
	filter := bson.M{
		"recipientType": recipientType,
		"recipientId":   recipientID,
	}
	if unreadOnly {
		filter["isRead"] = false
	}

	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	result, err := s.FindWithPagination(ctx, filter, page, limit, opts)
	if err != nil {
		return nil, err
	}

	unreadCount, err := s.UnreadCount(ctx, recipientType, recipientID)
	if err != nil {
		return nil, err
	}

	return &RecipientPage{
		Notifications: result.Items,
		Total:         result.Total,
		UnreadCount:   unreadCount,
		Page:          page,
		TotalPages:    result.TotalPage,
	}, nil
}

// unreadFilter lọc notification chưa đọc của một người nhận
func unreadFilter(recipientType, recipientID string) bson.M {
	return bson.M{
		"recipientType": recipientType,
		"recipientId":   recipientID,
		"isRead":        false,
	}
}

// markReadUpdate đặt cờ đã đọc
func markReadUpdate() *basesvc.UpdateData {
	return &basesvc.UpdateData{
		Set: map[string]interface{}{"isRead": true},
	}
}

// UnreadCount đếm số notification chưa đọc của một người nhận
func (s *NotificationService) UnreadCount(ctx context.Context, recipientType, recipientID string) (int64, error) {
	return s.CountDocuments(ctx, unreadFilter(recipientType, recipientID))
}

// MarkRead đánh dấu một notification là đã đọc
func (s *NotificationService) MarkRead(ctx context.Context, id primitive.ObjectID) (notifmodels.Notification, error) {
	return s.UpdateById(ctx, id, markReadUpdate())
}

// MarkAllRead đánh dấu tất cả notification chưa đọc của một người nhận là đã đọc.
// Trả về số bản ghi được cập nhật.
func (s *NotificationService) MarkAllRead(ctx context.Context, recipientType, recipientID string) (int64, error) {
	return s.UpdateMany(ctx, unreadFilter(recipientType, recipientID), markReadUpdate(), nil)
}
