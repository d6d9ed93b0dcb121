package router

import (
	"github.com/gofiber/fiber/v3"

	notifhdl "github.com/Rohitsengar02/fixxev-api/internal/api/notification/handler"
	notifsvc "github.com/Rohitsengar02/fixxev-api/internal/api/notification/service"
	apirouter "github.com/Rohitsengar02/fixxev-api/internal/api/router"
)

// Register trả về hàm đăng ký route cho Notification.
// FanoutService được inject từ tầng khởi tạo vì cần hub realtime và push dispatcher.
func Register(fanoutService *notifsvc.FanoutService) apirouter.RegisterFunc {
	return func(v1 fiber.Router, r *apirouter.Router) error {
		handler, err := notifhdl.NewNotificationHandler(fanoutService)
		if err != nil {
			return err
		}

		prefix := "/notifications"
		r.RegisterCRUDRoutes(v1, prefix, handler, apirouter.ReadWriteConfig)

		// Các route nghiệp vụ riêng cho notification
		apirouter.RegisterRouteWithMiddleware(v1, prefix, "POST", "/", nil, handler.HandleCreate)
		apirouter.RegisterRouteWithMiddleware(v1, prefix, "GET", "/count/:recipientType/:recipientId", nil, handler.HandleUnreadCount)
		apirouter.RegisterRouteWithMiddleware(v1, prefix, "PUT", "/read-all/:recipientType/:recipientId", nil, handler.HandleMarkAllRead)
		apirouter.RegisterRouteWithMiddleware(v1, prefix, "PUT", "/:id/read", nil, handler.HandleMarkRead)
		apirouter.RegisterRouteWithMiddleware(v1, prefix, "GET", "/:recipientType/:recipientId", nil, handler.HandleFindByRecipient)

		return nil
	}
}
