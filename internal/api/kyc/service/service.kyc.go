package kycsvc

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "github.com/Rohitsengar02/fixxev-api/internal/api/base/service"
	kycmodels "github.com/Rohitsengar02/fixxev-api/internal/api/kyc/models"
	"github.com/Rohitsengar02/fixxev-api/internal/common"
	"github.com/Rohitsengar02/fixxev-api/internal/global"
)

// KycService là cấu trúc chứa các phương thức liên quan đến hồ sơ KYC
type KycService struct {
	*basesvc.BaseServiceMongoImpl[kycmodels.Kyc]
}

// NewKycService tạo mới KycService
func NewKycService() (*KycService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Kycs)
	if !exist {
		return nil, fmt.Errorf("failed to get kycs collection: %v", common.ErrNotFound)
	}

	return &KycService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[kycmodels.Kyc](collection),
	}, nil
}

// Submit nộp hồ sơ KYC mới. Từ chối khi đã có hồ sơ cùng loại giấy tờ
// đang Pending hoặc đã Verified, hồ sơ Rejected được nộp lại bình thường.
func (s *KycService) Submit(ctx context.Context, kyc kycmodels.Kyc) (kycmodels.Kyc, error) {
	var zero kycmodels.Kyc

	existing, err := s.FindOne(ctx, bson.M{
		"userId":       kyc.UserID,
		"documentType": kyc.DocumentType,
		"status":       bson.M{"$in": bson.A{kycmodels.KycPending, kycmodels.KycVerified}},
	}, nil)
	if err == nil {
		return zero, common.NewError(
			common.ErrCodeValidationInput,
			fmt.Sprintf("A %s is already %s", kyc.DocumentType, existing.Status),
			common.StatusBadRequest,
			nil,
		)
	}
	if err != common.ErrNotFound {
		return zero, err
	}

	kyc.Status = kycmodels.KycPending
	kyc.SubmittedAt = time.Now().UnixMilli()
	return s.InsertOne(ctx, kyc)
}

// ListByUser trả về lịch sử KYC của một khách, cập nhật gần nhất trước
func (s *KycService) ListByUser(ctx context.Context, userID string) ([]kycmodels.Kyc, error) {
	opts := options.Find().SetSort(bson.D{{Key: "updatedAt", Value: -1}})
	return s.Find(ctx, bson.M{"userId": userID}, opts)
}

// ListAll trả về toàn bộ hồ sơ KYC cho admin, lọc theo status nếu có
func (s *KycService) ListAll(ctx context.Context, status string) ([]kycmodels.Kyc, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return s.Find(ctx, filter, opts)
}

// Verify duyệt hoặc từ chối hồ sơ. Verified ghi nhận verifiedAt,
// Rejected ghi nhận lý do từ chối.
func (s *KycService) Verify(ctx context.Context, id primitive.ObjectID, status, rejectionReason string) (kycmodels.Kyc, error) {
	set := map[string]interface{}{"status": status}
	if status == kycmodels.KycRejected {
		set["rejectionReason"] = rejectionReason
	} else {
		set["verifiedAt"] = time.Now().UnixMilli()
	}

	return s.UpdateById(ctx, id, &basesvc.UpdateData{Set: set})
}
