package basehdl

import (
	"encoding/json"

	"github.com/gofiber/fiber/v3"

	"github.com/Rohitsengar02/fixxev-api/internal/common"
	"github.com/Rohitsengar02/fixxev-api/internal/logger"
)

// JSONResponse trả về response dạng JSON với charset UTF-8.
// Dùng thay cho c.JSON mặc định để đảm bảo tiếng Việt hiển thị đúng trên mọi client.
func JSONResponse(c fiber.Ctx, statusCode int, data interface{}) error {
	jsonBytes, err := json.Marshal(data)
	if err != nil {
		c.Set("Content-Type", "application/json; charset=utf-8")
		return c.Status(common.StatusInternalServerError).SendString(`{"code":"` + common.ErrCodeInternalServer.Code + `","message":"Lỗi serialize response","status":"error"}`)
	}

	c.Set("Content-Type", "application/json; charset=utf-8")
	return c.Status(statusCode).Send(jsonBytes)
}

// SafeHandler bọc handler với cơ chế recover để tránh crash server khi có panic
func SafeHandler(c fiber.Ctx, fn func() error) error {
	defer func() {
		if r := recover(); r != nil {
			logger.GetErrorLogger().WithField("panic", r).Error("Panic trong quá trình xử lý request")
			_ = JSONResponse(c, common.StatusInternalServerError, fiber.Map{
				"code":    common.ErrCodeInternalServer,
				"message": "Lỗi hệ thống không xác định",
				"status":  "error",
			})
		}
	}()
	return fn()
}

// SafeHandlerWrapper chuyển một handler thường thành handler có recover
func SafeHandlerWrapper(fn func(c fiber.Ctx) error) func(c fiber.Ctx) error {
	return func(c fiber.Ctx) error {
		return SafeHandler(c, func() error {
			return fn(c)
		})
	}
}

// SafeHandler là shortcut cho các method của BaseHandler
func (h *BaseHandler[T, CreateInput, UpdateInput]) SafeHandler(c fiber.Ctx, fn func() error) error {
	return SafeHandler(c, fn)
}

// HandleResponse xử lý response thống nhất cho tất cả các handler.
// Format response:
//   - Thành công: {"code": "SUCCESS", "message": "...", "data": ..., "status": "success"}
//   - Lỗi:        {"code": "...", "message": "...", "details": ..., "status": "error"}
func (h *BaseHandler[T, CreateInput, UpdateInput]) HandleResponse(c fiber.Ctx, data interface{}, err error) error {
	if err != nil {
		// Chuyển lỗi MongoDB sang lỗi chuẩn của hệ thống nếu cần
		if customErr, ok := err.(*common.Error); ok {
			response := fiber.Map{
				"code":    customErr.Code,
				"message": customErr.Message,
				"status":  "error",
			}
			if customErr.Details != nil {
				if detailsErr, ok := customErr.Details.(error); ok {
					response["details"] = detailsErr.Error()
				} else {
					response["details"] = customErr.Details
				}
			}
			return JSONResponse(c, customErr.StatusCode, response)
		}

		// Lỗi không xác định
		return JSONResponse(c, common.StatusInternalServerError, fiber.Map{
			"code":    common.ErrCodeInternalServer,
			"message": err.Error(),
			"status":  "error",
		})
	}

	return JSONResponse(c, common.StatusOK, fiber.Map{
		"code":    "SUCCESS",
		"message": common.MsgSuccess,
		"data":    data,
		"status":  "success",
	})
}
