package router

import (
	"github.com/gofiber/fiber/v3"

	apirouter "github.com/Rohitsengar02/fixxev-api/internal/api/router"
	systemhdl "github.com/Rohitsengar02/fixxev-api/internal/api/system/handler"
)

// Register đăng ký route cho System
func Register(v1 fiber.Router, r *apirouter.Router) error {
	handler := systemhdl.NewSystemHandler()

	prefix := "/system"
	apirouter.RegisterRouteWithMiddleware(v1, prefix, "GET", "/health", nil, handler.HandleHealth)

	return nil
}
