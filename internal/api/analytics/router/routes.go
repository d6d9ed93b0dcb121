package router

import (
	"github.com/gofiber/fiber/v3"

	analyticshdl "github.com/Rohitsengar02/fixxev-api/internal/api/analytics/handler"
	apirouter "github.com/Rohitsengar02/fixxev-api/internal/api/router"
)

// Register đăng ký route cho Analytics
func Register(v1 fiber.Router, r *apirouter.Router) error {
	handler, err := analyticshdl.NewAnalyticsHandler()
	if err != nil {
		return err
	}

	prefix := "/analytics"
	apirouter.RegisterRouteWithMiddleware(v1, prefix, "GET", "/admin-stats", nil, handler.HandleAdminStats)

	return nil
}
