package router

import (
	"github.com/gofiber/fiber/v3"

	apirouter "github.com/Rohitsengar02/fixxev-api/internal/api/router"
	userhdl "github.com/Rohitsengar02/fixxev-api/internal/api/user/handler"
)

// Register đăng ký route cho User.
// CRUD và các route tĩnh đăng ký trước GET /:uid để không bị nuốt bởi param.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	handler, err := userhdl.NewUserHandler()
	if err != nil {
		return err
	}

	prefix := "/users"
	r.RegisterCRUDRoutes(v1, prefix, handler, apirouter.ReadOnlyConfig)

	apirouter.RegisterRouteWithMiddleware(v1, prefix, "POST", "/sync", nil, handler.HandleSync)
	apirouter.RegisterRouteWithMiddleware(v1, prefix, "GET", "/addresses", nil, handler.HandleListAddresses)
	apirouter.RegisterRouteWithMiddleware(v1, prefix, "POST", "/addresses", nil, handler.HandleAddAddress)
	apirouter.RegisterRouteWithMiddleware(v1, prefix, "PUT", "/addresses/:id", nil, handler.HandleUpdateAddress)
	apirouter.RegisterRouteWithMiddleware(v1, prefix, "DELETE", "/addresses/:id", nil, handler.HandleDeleteAddress)
	apirouter.RegisterRouteWithMiddleware(v1, prefix, "PUT", "/device-token", nil, handler.HandleSaveDeviceToken)
	apirouter.RegisterRouteWithMiddleware(v1, prefix, "GET", "/dashboard/:uid", nil, handler.HandleDashboard)
	apirouter.RegisterRouteWithMiddleware(v1, prefix, "GET", "/", nil, handler.HandleListAll)
	apirouter.RegisterRouteWithMiddleware(v1, prefix, "PUT", "/:uid", nil, handler.HandleUpdateProfile)
	apirouter.RegisterRouteWithMiddleware(v1, prefix, "GET", "/:uid", nil, handler.HandleGetByUID)

	return nil
}
