// Package franchisesvc chứa nghiệp vụ cơ sở sửa chữa: onboarding, đăng nhập,
// hồ sơ, dashboard và luồng duyệt yêu cầu dịch vụ.
package franchisesvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "github.com/Rohitsengar02/fixxev-api/internal/api/base/service"
	franchisemodels "github.com/Rohitsengar02/fixxev-api/internal/api/franchise/models"
	"github.com/Rohitsengar02/fixxev-api/internal/common"
	"github.com/Rohitsengar02/fixxev-api/internal/global"
	"github.com/Rohitsengar02/fixxev-api/internal/utility"
)

// FranchiseService là cấu trúc chứa các phương thức liên quan đến Franchise
type FranchiseService struct {
	*basesvc.BaseServiceMongoImpl[franchisemodels.Franchise]
}

// NewFranchiseService tạo mới FranchiseService
func NewFranchiseService() (*FranchiseService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Franchises)
	if !exist {
		return nil, fmt.Errorf("failed to get franchisers collection: %v", common.ErrNotFound)
	}

	return &FranchiseService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[franchisemodels.Franchise](collection),
	}, nil
}

// FranchiseSummary là phần gọn của hồ sơ trả về kèm token sau đăng nhập
type FranchiseSummary struct {
	ID     primitive.ObjectID `json:"id"`
	Name   string             `json:"name"`
	Email  string             `json:"email"`
	Status string             `json:"status"`
	Role   string             `json:"role,omitempty"`
}

// AuthResult là kết quả đăng nhập hoặc đăng ký thành công
type AuthResult struct {
	Token     string           `json:"token"`
	Franchise FranchiseSummary `json:"franchise"`
}

func issueToken(id primitive.ObjectID) (string, error) {
	return utility.CreateToken(global.MongoDB_ServerConfig.JwtSecret, id.Hex(), "franchise")
}

// Register onboarding cơ sở mới, trạng thái khởi tạo là Pending
func (s *FranchiseService) Register(ctx context.Context, franchise franchisemodels.Franchise) (*AuthResult, error) {
	exists, err := s.DocumentExists(ctx, bson.M{"email": franchise.Email})
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, common.NewError(
			common.ErrCodeValidationInput,
			"Franchise already registered with this email",
			common.StatusBadRequest,
			nil,
		)
	}

	if franchise.Password != "" {
		hashed, err := utility.HashPassword(franchise.Password)
		if err != nil {
			return nil, common.NewError(common.ErrCodeInternalServer, "Lỗi hệ thống", common.StatusInternalServerError, nil)
		}
		franchise.Password = hashed
	}
	franchise.Status = franchisemodels.StatusPending

	created, err := s.InsertOne(ctx, franchise)
	if err != nil {
		return nil, err
	}

	token, err := issueToken(created.ID)
	if err != nil {
		return nil, common.NewError(common.ErrCodeInternalServer, "Lỗi hệ thống", common.StatusInternalServerError, nil)
	}

	return &AuthResult{
		Token: token,
		Franchise: FranchiseSummary{
			ID:     created.ID,
			Name:   created.Name,
			Email:  created.Email,
			Status: created.Status,
		},
	}, nil
}

// Login đăng nhập bằng email và mật khẩu.
// Email không tồn tại và sai mật khẩu trả về cùng một lỗi.
func (s *FranchiseService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	invalidCredentials := common.NewError(
		common.ErrCodeAuthCredentials,
		"Invalid credentials",
		common.StatusUnauthorized,
		nil,
	)

	franchise, err := s.FindOne(ctx, bson.M{"email": email}, nil)
	if err != nil {
		if err == common.ErrNotFound {
			return nil, invalidCredentials
		}
		return nil, err
	}

	if franchise.Password == "" || !utility.ComparePassword(franchise.Password, password) {
		return nil, invalidCredentials
	}

	token, err := issueToken(franchise.ID)
	if err != nil {
		return nil, common.NewError(common.ErrCodeInternalServer, "Lỗi hệ thống", common.StatusInternalServerError, nil)
	}

	return &AuthResult{
		Token: token,
		Franchise: FranchiseSummary{
			ID:     franchise.ID,
			Name:   franchise.Name,
			Email:  franchise.Email,
			Status: franchise.Status,
			Role:   "Franchise",
		},
	}, nil
}

// GoogleLogin đăng nhập qua Google, tự đăng ký nếu email chưa tồn tại
// và liên kết googleId nếu tài khoản đã có nhưng chưa liên kết
func (s *FranchiseService) GoogleLogin(ctx context.Context, email, googleID, name, profileImage string) (*AuthResult, error) {
	franchise, err := s.FindOne(ctx, bson.M{"email": email}, nil)
	if err == common.ErrNotFound {
		if name == "" {
			name = "EV Partner"
		}
		franchise, err = s.InsertOne(ctx, franchisemodels.Franchise{
			Name:         name,
			OwnerName:    name,
			Email:        email,
			GoogleID:     googleID,
			ProfileImage: profileImage,
			Status:       franchisemodels.StatusPending,
		})
		if err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	} else if franchise.GoogleID == "" {
		set := map[string]interface{}{"googleId": googleID}
		if profileImage != "" && franchise.ProfileImage == "" {
			set["profileImage"] = profileImage
		}
		franchise, err = s.UpdateById(ctx, franchise.ID, &basesvc.UpdateData{Set: set})
		if err != nil {
			return nil, err
		}
	}

	token, err := issueToken(franchise.ID)
	if err != nil {
		return nil, common.NewError(common.ErrCodeInternalServer, "Lỗi hệ thống", common.StatusInternalServerError, nil)
	}

	return &AuthResult{
		Token: token,
		Franchise: FranchiseSummary{
			ID:     franchise.ID,
			Name:   franchise.Name,
			Email:  franchise.Email,
			Status: franchise.Status,
		},
	}, nil
}

// VerifyToken giải mã Bearer token và trả về hồ sơ cơ sở tương ứng
func (s *FranchiseService) VerifyToken(ctx context.Context, token string) (franchisemodels.Franchise, error) {
	var zero franchisemodels.Franchise

	claims, err := utility.VerifyToken(global.MongoDB_ServerConfig.JwtSecret, token)
	if err != nil {
		return zero, err
	}
	if claims.Type != "franchise" || !primitive.IsValidObjectID(claims.ID) {
		return zero, common.ErrTokenInvalid
	}

	return s.FindOneById(ctx, utility.String2ObjectID(claims.ID))
}

// ListActive trả về các cơ sở đang hoạt động
func (s *FranchiseService) ListActive(ctx context.Context, limit int64) ([]franchisemodels.Franchise, error) {
	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(limit)
	}
	return s.Find(ctx, bson.M{"status": franchisemodels.StatusActive}, opts)
}

// UpdateProfile cập nhật hồ sơ cơ sở, mật khẩu trong payload được băm lại
func (s *FranchiseService) UpdateProfile(ctx context.Context, id primitive.ObjectID, set map[string]interface{}) (franchisemodels.Franchise, error) {
	if rawPassword, ok := set["password"].(string); ok && rawPassword != "" {
		hashed, err := utility.HashPassword(rawPassword)
		if err != nil {
			return franchisemodels.Franchise{}, common.NewError(common.ErrCodeInternalServer, "Lỗi hệ thống", common.StatusInternalServerError, nil)
		}
		set["password"] = hashed
	}

	return s.UpdateById(ctx, id, &basesvc.UpdateData{Set: set})
}

// SaveDeviceToken lưu FCM token cho thiết bị của cơ sở
func (s *FranchiseService) SaveDeviceToken(ctx context.Context, id primitive.ObjectID, fcmToken string) error {
	_, err := s.UpdateById(ctx, id, &basesvc.UpdateData{
		Set: map[string]interface{}{"fcmToken": fcmToken},
	})
	return err
}

// FcmTokenByID trả về FCM token hiện tại của cơ sở, rỗng khi chưa đăng ký
// hoặc id không hợp lệ
func (s *FranchiseService) FcmTokenByID(ctx context.Context, id string) (string, error) {
	if !primitive.IsValidObjectID(id) {
		return "", nil
	}
	franchise, err := s.FindOneById(ctx, utility.String2ObjectID(id))
	if err != nil {
		if err == common.ErrNotFound {
			return "", nil
		}
		return "", err
	}
	return franchise.FcmToken, nil
}
