package franchisehdl

import (
	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	franchisedto "github.com/Rohitsengar02/fixxev-api/internal/api/franchise/dto"
	"github.com/Rohitsengar02/fixxev-api/internal/common"
	"github.com/Rohitsengar02/fixxev-api/internal/utility"
)

// HandleMyServices trả về dịch vụ đã duyệt và yêu cầu đang chờ của cơ sở
func (h *FranchiseHandler) HandleMyServices(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.parseObjectIDParam(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		result, err := h.franchiseService.GetMyServices(c.Context(), id)
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleRequestServices cơ sở yêu cầu cung cấp dịch vụ catalog hoặc custom
func (h *FranchiseHandler) HandleRequestServices(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input franchisedto.ServiceRequestInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if !primitive.IsValidObjectID(input.FranchiseID) {
			h.HandleResponse(c, nil, common.ErrInvalidFormat)
			return nil
		}

		serviceIDs := make([]primitive.ObjectID, 0, len(input.ServiceIDs))
		for _, sid := range input.ServiceIDs {
			if !primitive.IsValidObjectID(sid) {
				h.HandleResponse(c, nil, common.ErrInvalidFormat)
				return nil
			}
			serviceIDs = append(serviceIDs, utility.String2ObjectID(sid))
		}

		err := h.franchiseService.RequestServices(c.Context(), utility.String2ObjectID(input.FranchiseID), serviceIDs, input.CustomServices)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		h.HandleResponse(c, fiber.Map{"message": "Services requested successfully"}, nil)
		return nil
	})
}

// HandleListAllServiceRequests trả về mọi yêu cầu dịch vụ dạng phẳng cho admin
func (h *FranchiseHandler) HandleListAllServiceRequests(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		requests, err := h.franchiseService.ListAllServiceRequests(c.Context())
		h.HandleResponse(c, requests, err)
		return nil
	})
}

// HandleApproveServiceRequest admin duyệt hoặc từ chối một yêu cầu dịch vụ
func (h *FranchiseHandler) HandleApproveServiceRequest(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input franchisedto.ServiceApproveInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if !primitive.IsValidObjectID(input.FranchiseID) || !primitive.IsValidObjectID(input.RequestID) {
			h.HandleResponse(c, nil, common.ErrInvalidFormat)
			return nil
		}

		message, err := h.franchiseService.ApproveServiceRequest(c.Context(),
			utility.String2ObjectID(input.FranchiseID),
			utility.String2ObjectID(input.RequestID),
			input.Status,
		)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		h.HandleResponse(c, fiber.Map{"message": message}, nil)
		return nil
	})
}
