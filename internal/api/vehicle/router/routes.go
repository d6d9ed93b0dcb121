package router

import (
	"github.com/gofiber/fiber/v3"

	apirouter "github.com/Rohitsengar02/fixxev-api/internal/api/router"
	vehiclehdl "github.com/Rohitsengar02/fixxev-api/internal/api/vehicle/handler"
)

// Register đăng ký route cho Vehicle
func Register(v1 fiber.Router, r *apirouter.Router) error {
	handler, err := vehiclehdl.NewVehicleHandler()
	if err != nil {
		return err
	}

	prefix := "/vehicles"
	// CRUD trước để PUT/DELETE /:id không swallow các path tĩnh của CRUD
	r.RegisterCRUDRoutes(v1, prefix, handler, apirouter.ReadWriteConfig)

	apirouter.RegisterRouteWithMiddleware(v1, prefix, "POST", "/", nil, handler.HandleCreate)
	apirouter.RegisterRouteWithMiddleware(v1, prefix, "GET", "/user/:userId", nil, handler.HandleListByUser)
	apirouter.RegisterRouteWithMiddleware(v1, prefix, "PUT", "/:id/set-default", nil, handler.HandleSetDefault)
	apirouter.RegisterRouteWithMiddleware(v1, prefix, "PUT", "/:id", nil, handler.UpdateById)
	apirouter.RegisterRouteWithMiddleware(v1, prefix, "DELETE", "/:id", nil, handler.DeleteById)

	return nil
}
