package vehiclehdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "github.com/Rohitsengar02/fixxev-api/internal/api/base/handler"
	vehicledto "github.com/Rohitsengar02/fixxev-api/internal/api/vehicle/dto"
	vehiclemodels "github.com/Rohitsengar02/fixxev-api/internal/api/vehicle/models"
	vehiclesvc "github.com/Rohitsengar02/fixxev-api/internal/api/vehicle/service"
	"github.com/Rohitsengar02/fixxev-api/internal/common"
	"github.com/Rohitsengar02/fixxev-api/internal/utility"
)

// VehicleHandler xử lý các request liên quan đến Vehicle
type VehicleHandler struct {
	*basehdl.BaseHandler[vehiclemodels.Vehicle, vehicledto.VehicleCreateInput, vehicledto.VehicleUpdateInput]
	vehicleService *vehiclesvc.VehicleService
}

// NewVehicleHandler tạo mới VehicleHandler
func NewVehicleHandler() (*VehicleHandler, error) {
	vehicleService, err := vehiclesvc.NewVehicleService()
	if err != nil {
		return nil, fmt.Errorf("failed to create vehicle service: %v", err)
	}

	hdl := &VehicleHandler{
		BaseHandler:    basehdl.NewBaseHandler[vehiclemodels.Vehicle, vehicledto.VehicleCreateInput, vehicledto.VehicleUpdateInput](vehicleService),
		vehicleService: vehicleService,
	}
	return hdl, nil
}

// HandleCreate thêm xe mới cho khách
func (h *VehicleHandler) HandleCreate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input vehicledto.VehicleCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		vehicle, err := h.TransformCreateInputToModel(&input)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		created, err := h.vehicleService.Create(c.Context(), *vehicle)
		h.HandleResponse(c, created, err)
		return nil
	})
}

// HandleListByUser trả về xe của một khách
func (h *VehicleHandler) HandleListByUser(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		vehicles, err := h.vehicleService.ListByUser(c.Context(), c.Params("userId"))
		h.HandleResponse(c, vehicles, err)
		return nil
	})
}

// HandleSetDefault đặt xe làm mặc định cho khách
func (h *VehicleHandler) HandleSetDefault(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id := h.GetIDFromContext(c)
		if !primitive.IsValidObjectID(id) {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("ID '%s' không đúng định dạng MongoDB ObjectID", id),
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		vehicle, err := h.vehicleService.SetDefault(c.Context(), utility.String2ObjectID(id))
		h.HandleResponse(c, vehicle, err)
		return nil
	})
}
