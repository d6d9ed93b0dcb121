package router

import (
	"github.com/gofiber/fiber/v3"

	bookinghdl "github.com/Rohitsengar02/fixxev-api/internal/api/booking/handler"
	notifsvc "github.com/Rohitsengar02/fixxev-api/internal/api/notification/service"
	apirouter "github.com/Rohitsengar02/fixxev-api/internal/api/router"
)

// Register trả về hàm đăng ký route cho Booking.
// Fiber match route theo thứ tự đăng ký nên CRUD và các path tĩnh
// phải đứng trước route param để không bị param swallow.
func Register(fanoutService *notifsvc.FanoutService) apirouter.RegisterFunc {
	return func(v1 fiber.Router, r *apirouter.Router) error {
		handler, err := bookinghdl.NewBookingHandler(fanoutService)
		if err != nil {
			return err
		}

		prefix := "/bookings"
		r.RegisterCRUDRoutes(v1, prefix, handler, apirouter.ReadOnlyConfig)

		apirouter.RegisterRouteWithMiddleware(v1, prefix, "POST", "/", nil, handler.HandleCreate)
		apirouter.RegisterRouteWithMiddleware(v1, prefix, "GET", "/", nil, handler.HandleListAdmin)
		apirouter.RegisterRouteWithMiddleware(v1, prefix, "GET", "/slots/:franchiseId/:date", nil, handler.HandleSlots)
		apirouter.RegisterRouteWithMiddleware(v1, prefix, "GET", "/user/:userId", nil, handler.HandleListByUser)
		apirouter.RegisterRouteWithMiddleware(v1, prefix, "GET", "/franchise/:franchiseId", nil, handler.HandleListByFranchise)
		apirouter.RegisterRouteWithMiddleware(v1, prefix, "PUT", "/:id/status", nil, handler.HandleUpdateStatus)
		apirouter.RegisterRouteWithMiddleware(v1, prefix, "DELETE", "/:id", nil, handler.HandleCancel)
		apirouter.RegisterRouteWithMiddleware(v1, prefix, "GET", "/:id", nil, handler.HandleFindByAnyID)

		return nil
	}
}
