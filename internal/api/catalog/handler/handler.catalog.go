package cataloghdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "github.com/Rohitsengar02/fixxev-api/internal/api/base/handler"
	catalogdto "github.com/Rohitsengar02/fixxev-api/internal/api/catalog/dto"
	catalogmodels "github.com/Rohitsengar02/fixxev-api/internal/api/catalog/models"
	catalogsvc "github.com/Rohitsengar02/fixxev-api/internal/api/catalog/service"
)

// CatalogHandler xử lý request cho một collection catalog
type CatalogHandler[T any, CreateInput any, UpdateInput any] struct {
	*basehdl.BaseHandler[T, CreateInput, UpdateInput]
	catalogService *catalogsvc.CatalogService[T]
}

func newCatalogHandler[T any, CreateInput any, UpdateInput any](svc *catalogsvc.CatalogService[T], err error) (*CatalogHandler[T, CreateInput, UpdateInput], error) {
	if err != nil {
		return nil, fmt.Errorf("failed to create catalog service: %v", err)
	}
	return &CatalogHandler[T, CreateInput, UpdateInput]{
		BaseHandler:    basehdl.NewBaseHandler[T, CreateInput, UpdateInput](svc),
		catalogService: svc,
	}, nil
}

// NewServiceHandler tạo mới handler cho collection services
func NewServiceHandler() (*CatalogHandler[catalogmodels.Service, catalogdto.ServiceCreateInput, catalogdto.ServiceUpdateInput], error) {
	svc, err := catalogsvc.NewServiceCatalog()
	return newCatalogHandler[catalogmodels.Service, catalogdto.ServiceCreateInput, catalogdto.ServiceUpdateInput](svc, err)
}

// NewOfferHandler tạo mới handler cho collection offers
func NewOfferHandler() (*CatalogHandler[catalogmodels.Offer, catalogdto.OfferCreateInput, catalogdto.OfferUpdateInput], error) {
	svc, err := catalogsvc.NewOfferCatalog()
	return newCatalogHandler[catalogmodels.Offer, catalogdto.OfferCreateInput, catalogdto.OfferUpdateInput](svc, err)
}

// NewTipHandler tạo mới handler cho collection tips
func NewTipHandler() (*CatalogHandler[catalogmodels.Tip, catalogdto.TipCreateInput, catalogdto.TipUpdateInput], error) {
	svc, err := catalogsvc.NewTipCatalog()
	return newCatalogHandler[catalogmodels.Tip, catalogdto.TipCreateInput, catalogdto.TipUpdateInput](svc, err)
}

// HandleListAll trả về toàn bộ item cho màn hình admin
func (h *CatalogHandler[T, CreateInput, UpdateInput]) HandleListAll(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		items, err := h.catalogService.ListAll(c.Context())
		h.HandleResponse(c, items, err)
		return nil
	})
}

// HandleListActive trả về item đang Active cho màn hình khách
func (h *CatalogHandler[T, CreateInput, UpdateInput]) HandleListActive(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		items, err := h.catalogService.ListActive(c.Context(), 0)
		h.HandleResponse(c, items, err)
		return nil
	})
}
