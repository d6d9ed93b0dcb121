package bookingsvc

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	bookingmodels "github.com/Rohitsengar02/fixxev-api/internal/api/booking/models"
	basesvc "github.com/Rohitsengar02/fixxev-api/internal/api/base/service"
	"github.com/Rohitsengar02/fixxev-api/internal/common"
	"github.com/Rohitsengar02/fixxev-api/internal/global"
)

// CounterService là cấu trúc chứa các phương thức cấp phát số tuần tự
type CounterService struct {
	*basesvc.BaseServiceMongoImpl[bookingmodels.Counter]
}

// NewCounterService tạo mới CounterService
func NewCounterService() (*CounterService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Counters)
	if !exist {
		return nil, fmt.Errorf("failed to get counters collection: %v", common.ErrNotFound)
	}

	return &CounterService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[bookingmodels.Counter](collection),
	}, nil
}

// NextSequence tăng và trả về giá trị tuần tự tiếp theo cho một key.
// Dùng $inc với upsert trong một lệnh findOneAndUpdate duy nhất nên an toàn
// khi nhiều request tạo booking đồng thời.
func (s *CounterService) NextSequence(ctx context.Context, key string) (int64, error) {
	update := &basesvc.UpdateData{
		Inc: map[string]interface{}{"seq": int64(1)},
		SetOnInsert: map[string]interface{}{
			"key":       key,
			"createdAt": time.Now().UnixMilli(),
		},
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	counter, err := s.FindOneAndUpdate(ctx, bson.M{"key": key}, update, opts)
	if err != nil {
		return 0, err
	}
	return counter.Seq, nil
}
