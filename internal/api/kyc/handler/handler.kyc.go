package kychdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "github.com/Rohitsengar02/fixxev-api/internal/api/base/handler"
	kycdto "github.com/Rohitsengar02/fixxev-api/internal/api/kyc/dto"
	kycmodels "github.com/Rohitsengar02/fixxev-api/internal/api/kyc/models"
	kycsvc "github.com/Rohitsengar02/fixxev-api/internal/api/kyc/service"
	"github.com/Rohitsengar02/fixxev-api/internal/common"
	"github.com/Rohitsengar02/fixxev-api/internal/logger"
	"github.com/Rohitsengar02/fixxev-api/internal/utility"
)

// KycHandler xử lý các request liên quan đến hồ sơ KYC
type KycHandler struct {
	*basehdl.BaseHandler[kycmodels.Kyc, kycdto.KycSubmitInput, kycdto.KycVerifyInput]
	kycService *kycsvc.KycService
}

// NewKycHandler tạo mới KycHandler
func NewKycHandler() (*KycHandler, error) {
	kycService, err := kycsvc.NewKycService()
	if err != nil {
		return nil, fmt.Errorf("failed to create kyc service: %v", err)
	}

	hdl := &KycHandler{
		BaseHandler: basehdl.NewBaseHandler[kycmodels.Kyc, kycdto.KycSubmitInput, kycdto.KycVerifyInput](kycService),
		kycService:  kycService,
	}
	return hdl, nil
}

// HandleSubmit nộp hồ sơ KYC mới
func (h *KycHandler) HandleSubmit(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input kycdto.KycSubmitInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		kyc := kycmodels.Kyc{
			UserID:           input.UserID,
			DocumentType:     input.DocumentType,
			DocumentID:       input.DocumentID,
			DocumentImageURL: input.DocumentImageURL,
		}

		created, err := h.kycService.Submit(c.Context(), kyc)
		h.HandleResponse(c, created, err)
		return nil
	})
}

// HandleListByUser trả về lịch sử KYC của một khách
func (h *KycHandler) HandleListByUser(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		kycList, err := h.kycService.ListByUser(c.Context(), c.Params("userId"))
		h.HandleResponse(c, kycList, err)
		return nil
	})
}

// HandleListAll trả về toàn bộ hồ sơ KYC cho admin.
// Query params: status.
func (h *KycHandler) HandleListAll(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		kycList, err := h.kycService.ListAll(c.Context(), c.Query("status"))
		h.HandleResponse(c, kycList, err)
		return nil
	})
}

// HandleVerify duyệt hoặc từ chối hồ sơ KYC
func (h *KycHandler) HandleVerify(c fiber.Ctx) error {
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

		var input kycdto.KycVerifyInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		kyc, err := h.kycService.Verify(c.Context(), utility.String2ObjectID(id), input.Status, input.RejectionReason)
		if err == nil {
			logger.LogAction("kyc_verified", c, map[string]interface{}{
				"kycId":  id,
				"status": input.Status,
			})
		}
		h.HandleResponse(c, kyc, err)
		return nil
	})
}
