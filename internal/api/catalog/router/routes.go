package router

import (
	"github.com/gofiber/fiber/v3"

	cataloghdl "github.com/Rohitsengar02/fixxev-api/internal/api/catalog/handler"
	apirouter "github.com/Rohitsengar02/fixxev-api/internal/api/router"
)

// catalogRoutes đăng ký cùng một bộ route cho một prefix catalog
type catalogHandler interface {
	apirouter.CRUDHandler
	HandleListAll(c fiber.Ctx) error
	HandleListActive(c fiber.Ctx) error
}

func registerCatalogRoutes(v1 fiber.Router, r *apirouter.Router, prefix string, handler catalogHandler) {
	// CRUD trước để PUT/DELETE /:id không swallow các path tĩnh của CRUD
	r.RegisterCRUDRoutes(v1, prefix, handler, apirouter.ReadWriteConfig)

	apirouter.RegisterRouteWithMiddleware(v1, prefix, "GET", "/", nil, handler.HandleListAll)
	apirouter.RegisterRouteWithMiddleware(v1, prefix, "GET", "/active", nil, handler.HandleListActive)
	apirouter.RegisterRouteWithMiddleware(v1, prefix, "POST", "/", nil, handler.InsertOne)
	apirouter.RegisterRouteWithMiddleware(v1, prefix, "PUT", "/:id", nil, handler.UpdateById)
	apirouter.RegisterRouteWithMiddleware(v1, prefix, "DELETE", "/:id", nil, handler.DeleteById)
}

// Register đăng ký route cho Service, Offer và Tip
func Register(v1 fiber.Router, r *apirouter.Router) error {
	serviceHandler, err := cataloghdl.NewServiceHandler()
	if err != nil {
		return err
	}
	offerHandler, err := cataloghdl.NewOfferHandler()
	if err != nil {
		return err
	}
	tipHandler, err := cataloghdl.NewTipHandler()
	if err != nil {
		return err
	}

	registerCatalogRoutes(v1, r, "/services", serviceHandler)
	registerCatalogRoutes(v1, r, "/offers", offerHandler)
	registerCatalogRoutes(v1, r, "/tips", tipHandler)

	return nil
}
