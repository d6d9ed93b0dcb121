// Package systemhdl xử lý các request hệ thống (health check).
package systemhdl

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	basehdl "github.com/Rohitsengar02/fixxev-api/internal/api/base/handler"
	"github.com/Rohitsengar02/fixxev-api/internal/common"
	"github.com/Rohitsengar02/fixxev-api/internal/global"
)

const healthPingTimeout = 3 * time.Second

// SystemHandler xử lý các request hệ thống
type SystemHandler struct{}

// NewSystemHandler tạo mới SystemHandler
func NewSystemHandler() *SystemHandler {
	return &SystemHandler{}
}

// HandleHealth kiểm tra tình trạng hệ thống, ping MongoDB.
// Trả về 503 khi database không phản hồi.
func (h *SystemHandler) HandleHealth(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		ctx, cancel := context.WithTimeout(c.Context(), healthPingTimeout)
		defer cancel()

		if err := global.MongoDB_Session.Ping(ctx, readpref.Primary()); err != nil {
			basehdl.JSONResponse(c, common.StatusServiceUnavailable, fiber.Map{
				"code":    common.ErrCodeDatabaseConnection,
				"message": common.MsgServiceUnavailable,
				"status":  "error",
				"data": fiber.Map{
					"database": "down",
				},
			})
			return nil
		}

		basehdl.JSONResponse(c, common.StatusOK, fiber.Map{
			"code":    "SUCCESS",
			"message": common.MsgSuccess,
			"status":  "success",
			"data": fiber.Map{
				"database": "up",
				"time":     time.Now().Format(time.RFC3339),
			},
		})
		return nil
	})
}
