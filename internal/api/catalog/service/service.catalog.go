// Package catalogsvc chứa nghiệp vụ catalog: dịch vụ, ưu đãi và mẹo chăm sóc xe.
// Ba collection dùng chung một cấu trúc service vì hành vi giống hệt nhau.
package catalogsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "github.com/Rohitsengar02/fixxev-api/internal/api/base/service"
	catalogmodels "github.com/Rohitsengar02/fixxev-api/internal/api/catalog/models"
	"github.com/Rohitsengar02/fixxev-api/internal/common"
	"github.com/Rohitsengar02/fixxev-api/internal/global"
)

// CatalogService là service chung cho một collection catalog
type CatalogService[T any] struct {
	*basesvc.BaseServiceMongoImpl[T]
}

func newCatalogService[T any](collectionName string) (*CatalogService[T], error) {
	collection, exist := global.RegistryCollections.Get(collectionName)
	if !exist {
		return nil, fmt.Errorf("failed to get %s collection: %v", collectionName, common.ErrNotFound)
	}
	return &CatalogService[T]{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[T](collection),
	}, nil
}

// NewServiceCatalog tạo mới service cho collection services
func NewServiceCatalog() (*CatalogService[catalogmodels.Service], error) {
	return newCatalogService[catalogmodels.Service](global.MongoDB_ColNames.Services)
}

// NewOfferCatalog tạo mới service cho collection offers
func NewOfferCatalog() (*CatalogService[catalogmodels.Offer], error) {
	return newCatalogService[catalogmodels.Offer](global.MongoDB_ColNames.Offers)
}

// NewTipCatalog tạo mới service cho collection tips
func NewTipCatalog() (*CatalogService[catalogmodels.Tip], error) {
	return newCatalogService[catalogmodels.Tip](global.MongoDB_ColNames.Tips)
}

// ListAll trả về toàn bộ item, mới nhất trước (màn hình admin)
func (s *CatalogService[T]) ListAll(ctx context.Context) ([]T, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return s.Find(ctx, bson.M{}, opts)
}

// ListActive trả về item đang Active, mới nhất trước (màn hình khách)
func (s *CatalogService[T]) ListActive(ctx context.Context, limit int64) ([]T, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}
	return s.Find(ctx, bson.M{"status": catalogmodels.CatalogActive}, opts)
}
