package franchisesvc

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "github.com/Rohitsengar02/fixxev-api/internal/api/base/service"
	catalogmodels "github.com/Rohitsengar02/fixxev-api/internal/api/catalog/models"
	catalogsvc "github.com/Rohitsengar02/fixxev-api/internal/api/catalog/service"
	franchisemodels "github.com/Rohitsengar02/fixxev-api/internal/api/franchise/models"
	"github.com/Rohitsengar02/fixxev-api/internal/common"
)

// MyServices là danh sách dịch vụ đã duyệt và các yêu cầu đang chờ của một cơ sở
type MyServices struct {
	Approved []catalogmodels.Service          `json:"approved"`
	Requests []franchisemodels.ServiceRequest `json:"requests"`
}

// GetMyServices trả về dịch vụ đã duyệt (resolve từ catalog) và các yêu cầu của cơ sở
func (s *FranchiseService) GetMyServices(ctx context.Context, id primitive.ObjectID) (*MyServices, error) {
	franchise, err := s.FindOneById(ctx, id)
	if err != nil {
		return nil, err
	}

	approved := []catalogmodels.Service{}
	if len(franchise.Services) > 0 {
		serviceCatalog, err := catalogsvc.NewServiceCatalog()
		if err != nil {
			return nil, err
		}
		approved, err = serviceCatalog.FindManyByIds(ctx, franchise.Services)
		if err != nil {
			return nil, err
		}
	}

	requests := franchise.ServiceRequests
	if requests == nil {
		requests = []franchisemodels.ServiceRequest{}
	}

	return &MyServices{Approved: approved, Requests: requests}, nil
}

// RequestServices thêm yêu cầu cung cấp dịch vụ cho cơ sở.
// Dịch vụ đã duyệt hoặc đang có yêu cầu Pending cùng loại bị bỏ qua,
// dịch vụ custom luôn được thêm làm yêu cầu mới.
func (s *FranchiseService) RequestServices(ctx context.Context, id primitive.ObjectID, serviceIDs []primitive.ObjectID, customServices []franchisemodels.CustomServiceData) error {
	franchise, err := s.FindOneById(ctx, id)
	if err != nil {
		return err
	}

	approved := make(map[primitive.ObjectID]bool, len(franchise.Services))
	for _, sid := range franchise.Services {
		approved[sid] = true
	}
	pending := make(map[primitive.ObjectID]bool)
	for _, r := range franchise.ServiceRequests {
		if r.Status == franchisemodels.RequestPending && !r.Service.IsZero() {
			pending[r.Service] = true
		}
	}

	now := time.Now().UnixMilli()
	var newRequests []interface{}
	for _, sid := range serviceIDs {
		if approved[sid] || pending[sid] {
			continue
		}
		newRequests = append(newRequests, franchisemodels.ServiceRequest{
			ID:          primitive.NewObjectID(),
			Service:     sid,
			IsCustom:    false,
			Status:      franchisemodels.RequestPending,
			RequestedAt: now,
		})
		pending[sid] = true
	}
	for i := range customServices {
		custom := customServices[i]
		newRequests = append(newRequests, franchisemodels.ServiceRequest{
			ID:          primitive.NewObjectID(),
			IsCustom:    true,
			CustomData:  &custom,
			Status:      franchisemodels.RequestPending,
			RequestedAt: now,
		})
	}

	if len(newRequests) == 0 {
		return nil
	}

	_, err = s.UpdateById(ctx, id, &basesvc.UpdateData{
		Push: map[string]interface{}{
			"serviceRequests": bson.M{"$each": newRequests},
		},
	})
	return err
}

// AdminServiceRequest là một yêu cầu dịch vụ kèm thông tin cơ sở, dạng phẳng cho admin
type AdminServiceRequest struct {
	FranchiseID   primitive.ObjectID                 `json:"franchiseId"`
	FranchiseName string                             `json:"franchiseName"`
	City          string                             `json:"city,omitempty"`
	RequestID     primitive.ObjectID                 `json:"requestId"`
	Service       primitive.ObjectID                 `json:"service,omitempty"`
	Status        string                             `json:"status"`
	IsCustom      bool                               `json:"isCustom"`
	CustomData    *franchisemodels.CustomServiceData `json:"customData,omitempty"`
	RequestedAt   int64                              `json:"requestedAt"`
}

// ListAllServiceRequests gom yêu cầu dịch vụ của mọi cơ sở thành danh sách phẳng
func (s *FranchiseService) ListAllServiceRequests(ctx context.Context) ([]AdminServiceRequest, error) {
	franchises, err := s.Find(ctx, bson.M{"serviceRequests.0": bson.M{"$exists": true}}, nil)
	if err != nil {
		return nil, err
	}

	allRequests := []AdminServiceRequest{}
	for _, f := range franchises {
		for _, r := range f.ServiceRequests {
			allRequests = append(allRequests, AdminServiceRequest{
				FranchiseID:   f.ID,
				FranchiseName: f.Name,
				City:          f.City,
				RequestID:     r.ID,
				Service:       r.Service,
				Status:        r.Status,
				IsCustom:      r.IsCustom,
				CustomData:    r.CustomData,
				RequestedAt:   r.RequestedAt,
			})
		}
	}
	return allRequests, nil
}

// ApproveServiceRequest duyệt hoặc từ chối một yêu cầu dịch vụ.
// Yêu cầu custom được approve sẽ tạo Service mới trong catalog rồi
// liên kết vào danh sách dịch vụ đã duyệt của cơ sở.
func (s *FranchiseService) ApproveServiceRequest(ctx context.Context, franchiseID, requestID primitive.ObjectID, status string) (string, error) {
	franchise, err := s.FindOneById(ctx, franchiseID)
	if err != nil {
		return "", err
	}

	var request *franchisemodels.ServiceRequest
	for i := range franchise.ServiceRequests {
		if franchise.ServiceRequests[i].ID == requestID {
			request = &franchise.ServiceRequests[i]
			break
		}
	}
	if request == nil {
		return "", common.NewError(
			common.ErrCodeDatabaseQuery,
			"Request not found",
			common.StatusNotFound,
			nil,
		)
	}

	serviceID := request.Service
	if status == franchisemodels.RequestApproved {
		if request.IsCustom && request.CustomData != nil {
			serviceCatalog, err := catalogsvc.NewServiceCatalog()
			if err != nil {
				return "", err
			}
			created, err := serviceCatalog.InsertOne(ctx, catalogmodels.Service{
				Title:       request.CustomData.Name,
				Category:    request.CustomData.Category,
				Description: request.CustomData.Description,
				Image:       request.CustomData.Image,
				Price:       request.CustomData.Price,
				Status:      catalogmodels.CatalogActive,
			})
			if err != nil {
				return "", err
			}
			serviceID = created.ID
		}
	}

	set := map[string]interface{}{
		"serviceRequests.$[req].status": status,
	}
	if !serviceID.IsZero() && serviceID != request.Service {
		set["serviceRequests.$[req].service"] = serviceID
	}

	// Cập nhật status của đúng phần tử request bằng arrayFilters
	arrayFilters := bson.A{bson.M{"req._id": requestID}}
	if err := s.updateWithArrayFilters(ctx, franchiseID, set, arrayFilters); err != nil {
		return "", err
	}

	if status == franchisemodels.RequestApproved && !serviceID.IsZero() {
		if _, err := s.UpdateById(ctx, franchiseID, &basesvc.UpdateData{
			AddToSet: map[string]interface{}{"services": serviceID},
		}); err != nil {
			return "", err
		}
	}

	return fmt.Sprintf("Service request %s successfully", strings.ToLower(status)), nil
}

// updateWithArrayFilters cập nhật phần tử array con theo arrayFilters,
// thao tác không có trong base service nên dùng collection trực tiếp
func (s *FranchiseService) updateWithArrayFilters(ctx context.Context, id primitive.ObjectID, set map[string]interface{}, arrayFilters bson.A) error {
	set["updatedAt"] = time.Now().UnixMilli()

	result, err := s.Collection().UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		mongoUpdateOptionsWithArrayFilters(arrayFilters),
	)
	if err != nil {
		return common.ConvertMongoError(err)
	}
	if result.MatchedCount == 0 {
		return common.ErrNotFound
	}
	return nil
}

func mongoUpdateOptionsWithArrayFilters(filters bson.A) *options.UpdateOptions {
	return options.Update().SetArrayFilters(options.ArrayFilters{Filters: filters})
}
