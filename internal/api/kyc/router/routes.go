package router

import (
	"github.com/gofiber/fiber/v3"

	kychdl "github.com/Rohitsengar02/fixxev-api/internal/api/kyc/handler"
	apirouter "github.com/Rohitsengar02/fixxev-api/internal/api/router"
)

// Register đăng ký route cho KYC
func Register(v1 fiber.Router, r *apirouter.Router) error {
	handler, err := kychdl.NewKycHandler()
	if err != nil {
		return err
	}

	prefix := "/kyc"

	// CRUD và các route tĩnh đăng ký trước các route param
	r.RegisterCRUDRoutes(v1, prefix, handler, apirouter.ReadOnlyConfig)

	apirouter.RegisterRouteWithMiddleware(v1, prefix, "POST", "/", nil, handler.HandleSubmit)
	apirouter.RegisterRouteWithMiddleware(v1, prefix, "GET", "/", nil, handler.HandleListAll)
	apirouter.RegisterRouteWithMiddleware(v1, prefix, "GET", "/user/:userId", nil, handler.HandleListByUser)
	apirouter.RegisterRouteWithMiddleware(v1, prefix, "PUT", "/:id/verify", nil, handler.HandleVerify)

	return nil
}
