package vehiclesvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "github.com/Rohitsengar02/fixxev-api/internal/api/base/service"
	vehiclemodels "github.com/Rohitsengar02/fixxev-api/internal/api/vehicle/models"
	"github.com/Rohitsengar02/fixxev-api/internal/common"
	"github.com/Rohitsengar02/fixxev-api/internal/global"
)

// VehicleService là cấu trúc chứa các phương thức liên quan đến Vehicle
type VehicleService struct {
	*basesvc.BaseServiceMongoImpl[vehiclemodels.Vehicle]
}

// NewVehicleService tạo mới VehicleService
func NewVehicleService() (*VehicleService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Vehicles)
	if !exist {
		return nil, fmt.Errorf("failed to get vehicles collection: %v", common.ErrNotFound)
	}

	return &VehicleService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[vehiclemodels.Vehicle](collection),
	}, nil
}

// Create thêm xe mới, xe đầu tiên của khách tự động là xe mặc định
func (s *VehicleService) Create(ctx context.Context, vehicle vehiclemodels.Vehicle) (vehiclemodels.Vehicle, error) {
	count, err := s.CountDocuments(ctx, bson.M{"userId": vehicle.UserID})
	if err != nil {
		return vehiclemodels.Vehicle{}, err
	}
	vehicle.IsDefault = count == 0

	return s.InsertOne(ctx, vehicle)
}

// ListByUser trả về xe của một khách, mới nhất trước
func (s *VehicleService) ListByUser(ctx context.Context, userID string) ([]vehiclemodels.Vehicle, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return s.Find(ctx, bson.M{"userId": userID}, opts)
}

// SetDefault đặt một xe làm mặc định và bỏ cờ mặc định của các xe khác cùng khách
func (s *VehicleService) SetDefault(ctx context.Context, id primitive.ObjectID) (vehiclemodels.Vehicle, error) {
	var zero vehiclemodels.Vehicle

	vehicle, err := s.FindOneById(ctx, id)
	if err != nil {
		return zero, err
	}

	clearOthers := &basesvc.UpdateData{
		Set: map[string]interface{}{"isDefault": false},
	}
	if _, err := s.UpdateMany(ctx, bson.M{
		"userId": vehicle.UserID,
		"_id":    bson.M{"$ne": id},
	}, clearOthers, nil); err != nil {
		return zero, err
	}

	return s.UpdateById(ctx, id, &basesvc.UpdateData{
		Set: map[string]interface{}{"isDefault": true},
	})
}

// DefaultForUser trả về xe mặc định của khách, fallback xe đầu tiên nếu chưa đặt
func (s *VehicleService) DefaultForUser(ctx context.Context, userID string) (*vehiclemodels.Vehicle, error) {
	vehicles, err := s.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(vehicles) == 0 {
		return nil, nil
	}
	for i := range vehicles {
		if vehicles[i].IsDefault {
			return &vehicles[i], nil
		}
	}
	return &vehicles[0], nil
}
