package router

import (
	"github.com/gofiber/fiber/v3"

	franchisehdl "github.com/Rohitsengar02/fixxev-api/internal/api/franchise/handler"
	apirouter "github.com/Rohitsengar02/fixxev-api/internal/api/router"
)

// Register đăng ký route cho Franchise.
// Route tĩnh (register, login, me, admin/...) đăng ký trước route có param.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	handler, err := franchisehdl.NewFranchiseHandler()
	if err != nil {
		return err
	}

	prefix := "/franchises"
	r.RegisterCRUDRoutes(v1, prefix, handler, apirouter.ReadOnlyConfig)

	// App đối tác
	apirouter.RegisterRouteWithMiddleware(v1, prefix, "POST", "/register", nil, handler.HandleRegister)
	apirouter.RegisterRouteWithMiddleware(v1, prefix, "POST", "/login", nil, handler.HandleLogin)
	apirouter.RegisterRouteWithMiddleware(v1, prefix, "POST", "/google-login", nil, handler.HandleGoogleLogin)
	apirouter.RegisterRouteWithMiddleware(v1, prefix, "GET", "/me", nil, handler.HandleMe)
	apirouter.RegisterRouteWithMiddleware(v1, prefix, "GET", "/active", nil, handler.HandleListActive)
	apirouter.RegisterRouteWithMiddleware(v1, prefix, "GET", "/dashboard/:id", nil, handler.HandleDashboard)
	apirouter.RegisterRouteWithMiddleware(v1, prefix, "PUT", "/device-token/:id", nil, handler.HandleSaveDeviceToken)

	// Quản lý dịch vụ cung cấp
	apirouter.RegisterRouteWithMiddleware(v1, prefix, "GET", "/services/my/:id", nil, handler.HandleMyServices)
	apirouter.RegisterRouteWithMiddleware(v1, prefix, "POST", "/services/request", nil, handler.HandleRequestServices)
	apirouter.RegisterRouteWithMiddleware(v1, prefix, "GET", "/admin/service-requests/all", nil, handler.HandleListAllServiceRequests)
	apirouter.RegisterRouteWithMiddleware(v1, prefix, "POST", "/admin/service-approve", nil, handler.HandleApproveServiceRequest)

	// App admin
	apirouter.RegisterRouteWithMiddleware(v1, prefix, "GET", "/", nil, handler.Find)
	apirouter.RegisterRouteWithMiddleware(v1, prefix, "POST", "/", nil, handler.HandleAdminCreate)
	apirouter.RegisterRouteWithMiddleware(v1, prefix, "PUT", "/:id", nil, handler.HandleUpdateProfile)
	apirouter.RegisterRouteWithMiddleware(v1, prefix, "DELETE", "/:id", nil, handler.DeleteById)

	return nil
}
