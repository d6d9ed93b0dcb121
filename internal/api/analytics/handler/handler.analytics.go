// Package analyticshdl xử lý các request số liệu cho trang quản trị.
package analyticshdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	analyticssvc "github.com/Rohitsengar02/fixxev-api/internal/api/analytics/service"
	basehdl "github.com/Rohitsengar02/fixxev-api/internal/api/base/handler"
	"github.com/Rohitsengar02/fixxev-api/internal/common"
)

// AnalyticsHandler xử lý các request liên quan đến Analytics
type AnalyticsHandler struct {
	analyticsService *analyticssvc.AnalyticsService
}

// NewAnalyticsHandler tạo mới AnalyticsHandler
func NewAnalyticsHandler() (*AnalyticsHandler, error) {
	analyticsService, err := analyticssvc.NewAnalyticsService()
	if err != nil {
		return nil, fmt.Errorf("failed to create analytics service: %v", err)
	}
	return &AnalyticsHandler{analyticsService: analyticsService}, nil
}

// HandleAdminStats trả về snapshot số liệu tổng hợp cho trang quản trị
func (h *AnalyticsHandler) HandleAdminStats(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		stats, err := h.analyticsService.GetAdminStatsCached(c.Context())
		if err != nil {
			if customErr, ok := err.(*common.Error); ok {
				basehdl.JSONResponse(c, customErr.StatusCode, fiber.Map{
					"code":    customErr.Code,
					"message": customErr.Message,
					"status":  "error",
				})
				return nil
			}
			basehdl.JSONResponse(c, common.StatusInternalServerError, fiber.Map{
				"code":    common.ErrCodeInternalServer,
				"message": err.Error(),
				"status":  "error",
			})
			return nil
		}

		basehdl.JSONResponse(c, common.StatusOK, fiber.Map{
			"code":    "SUCCESS",
			"message": common.MsgSuccess,
			"data":    stats,
			"status":  "success",
		})
		return nil
	})
}
