// Package usersvc chứa nghiệp vụ tài khoản khách: đồng bộ từ Firebase,
// hồ sơ, sổ địa chỉ và màn hình tổng quan.
package usersvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "github.com/Rohitsengar02/fixxev-api/internal/api/base/service"
	usermodels "github.com/Rohitsengar02/fixxev-api/internal/api/user/models"
	"github.com/Rohitsengar02/fixxev-api/internal/common"
	"github.com/Rohitsengar02/fixxev-api/internal/global"
)

// UserService là cấu trúc chứa các phương thức liên quan đến User
type UserService struct {
	*basesvc.BaseServiceMongoImpl[usermodels.User]
}

// NewUserService tạo mới UserService
func NewUserService() (*UserService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
	if !exist {
		return nil, fmt.Errorf("failed to get users collection: %v", common.ErrNotFound)
	}

	return &UserService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[usermodels.User](collection),
	}, nil
}

// SyncResult là kết quả đồng bộ tài khoản, Created cho biết user vừa được tạo mới
type SyncResult struct {
	User    usermodels.User `json:"user"`
	Created bool            `json:"-"`
}

// SyncFromFirebase upsert tài khoản theo uid sau khi đăng nhập Google.
// User đã tồn tại chỉ được cập nhật các field có giá trị trong payload.
func (s *UserService) SyncFromFirebase(ctx context.Context, uid, email, displayName, photoURL, phoneNumber string) (*SyncResult, error) {
	existing, err := s.FindOne(ctx, bson.M{"uid": uid}, nil)
	if err == common.ErrNotFound {
		created, err := s.InsertOne(ctx, usermodels.User{
			UID:         uid,
			Email:       email,
			DisplayName: displayName,
			PhotoURL:    photoURL,
			PhoneNumber: phoneNumber,
		})
		if err != nil {
			return nil, err
		}
		return &SyncResult{User: created, Created: true}, nil
	}
	if err != nil {
		return nil, err
	}

	set := map[string]interface{}{}
	if displayName != "" {
		set["displayName"] = displayName
	}
	if photoURL != "" {
		set["photoURL"] = photoURL
	}
	if phoneNumber != "" {
		set["phoneNumber"] = phoneNumber
	}
	if len(set) == 0 {
		return &SyncResult{User: existing}, nil
	}

	updated, err := s.UpdateOne(ctx, bson.M{"uid": uid}, &basesvc.UpdateData{Set: set}, nil)
	if err != nil {
		return nil, err
	}
	return &SyncResult{User: updated}, nil
}

// GetByUID tìm user theo uid Firebase
func (s *UserService) GetByUID(ctx context.Context, uid string) (usermodels.User, error) {
	return s.FindOne(ctx, bson.M{"uid": uid}, nil)
}

// UpdateByUID cập nhật hồ sơ user theo uid
func (s *UserService) UpdateByUID(ctx context.Context, uid string, set map[string]interface{}) (usermodels.User, error) {
	return s.UpdateOne(ctx, bson.M{"uid": uid}, &basesvc.UpdateData{Set: set}, nil)
}

// SaveDeviceToken lưu FCM token cho thiết bị của khách
func (s *UserService) SaveDeviceToken(ctx context.Context, uid, fcmToken string) error {
	_, err := s.UpdateOne(ctx, bson.M{"uid": uid}, &basesvc.UpdateData{
		Set: map[string]interface{}{"fcmToken": fcmToken},
	}, nil)
	return err
}

// FcmTokenByUID trả về FCM token hiện tại của khách, rỗng khi chưa đăng ký
func (s *UserService) FcmTokenByUID(ctx context.Context, uid string) (string, error) {
	user, err := s.GetByUID(ctx, uid)
	if err != nil {
		if err == common.ErrNotFound {
			return "", nil
		}
		return "", err
	}
	return user.FcmToken, nil
}

// ListAll trả về toàn bộ user cho admin, mới nhất trước
func (s *UserService) ListAll(ctx context.Context) ([]usermodels.User, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return s.Find(ctx, bson.M{}, opts)
}
