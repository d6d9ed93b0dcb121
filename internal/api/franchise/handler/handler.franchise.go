package franchisehdl

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "github.com/Rohitsengar02/fixxev-api/internal/api/base/handler"
	franchisedto "github.com/Rohitsengar02/fixxev-api/internal/api/franchise/dto"
	franchisemodels "github.com/Rohitsengar02/fixxev-api/internal/api/franchise/models"
	franchisesvc "github.com/Rohitsengar02/fixxev-api/internal/api/franchise/service"
	"github.com/Rohitsengar02/fixxev-api/internal/common"
	"github.com/Rohitsengar02/fixxev-api/internal/utility"
)

// FranchiseHandler xử lý các request liên quan đến Franchise
type FranchiseHandler struct {
	*basehdl.BaseHandler[franchisemodels.Franchise, franchisedto.FranchiseCreateInput, franchisedto.FranchiseUpdateInput]
	franchiseService *franchisesvc.FranchiseService
}

// NewFranchiseHandler tạo mới FranchiseHandler
func NewFranchiseHandler() (*FranchiseHandler, error) {
	franchiseService, err := franchisesvc.NewFranchiseService()
	if err != nil {
		return nil, fmt.Errorf("failed to create franchise service: %v", err)
	}

	hdl := &FranchiseHandler{
		BaseHandler:      basehdl.NewBaseHandler[franchisemodels.Franchise, franchisedto.FranchiseCreateInput, franchisedto.FranchiseUpdateInput](franchiseService),
		franchiseService: franchiseService,
	}
	return hdl, nil
}

// parseObjectIDParam đọc và kiểm tra một param dạng ObjectID
func (h *FranchiseHandler) parseObjectIDParam(c fiber.Ctx, name string) (primitive.ObjectID, error) {
	id := c.Params(name)
	if !primitive.IsValidObjectID(id) {
		return primitive.NilObjectID, common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("%s '%s' không đúng định dạng MongoDB ObjectID", name, id),
			common.StatusBadRequest,
			nil,
		)
	}
	return utility.String2ObjectID(id), nil
}

// HandleAdminCreate admin thêm cơ sở mới, mật khẩu được băm trước khi lưu
func (h *FranchiseHandler) HandleAdminCreate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input franchisedto.FranchiseCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		hashed, err := utility.HashPassword(input.Password)
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeInternalServer, "Lỗi hệ thống", common.StatusInternalServerError, nil))
			return nil
		}

		status := input.Status
		if status == "" {
			status = franchisemodels.StatusPending
		}
		franchise := franchisemodels.Franchise{
			Name:            input.Name,
			OwnerName:       input.OwnerName,
			Email:           input.Email,
			Password:        hashed,
			Location:        input.Location,
			TechnicianCount: input.TechnicianCount,
			Status:          status,
		}

		created, err := h.franchiseService.InsertOne(c.Context(), franchise)
		h.HandleResponse(c, created, err)
		return nil
	})
}

// HandleRegister onboarding cơ sở mới từ app đối tác
func (h *FranchiseHandler) HandleRegister(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input franchisedto.FranchiseRegisterInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		franchise := franchisemodels.Franchise{
			Name:            input.Name,
			OwnerName:       input.OwnerName,
			Email:           input.Email,
			Password:        input.Password,
			Mobile:          input.Mobile,
			Address:         input.Address,
			Latitude:        input.Latitude,
			Longitude:       input.Longitude,
			City:            input.City,
			Pincode:         input.Pincode,
			GstNumber:       input.GstNumber,
			YearsInBusiness: input.YearsInBusiness,
			Category:        input.Category,
			AgreedToTerms:   input.AgreedToTerms,
			WorkshopDetails: input.WorkshopDetails,
			BusinessHours:   input.BusinessHours,
			Documents:       input.Documents,
		}

		result, err := h.franchiseService.Register(c.Context(), franchise)
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleLogin đăng nhập bằng email và mật khẩu
func (h *FranchiseHandler) HandleLogin(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input franchisedto.FranchiseLoginInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		result, err := h.franchiseService.Login(c.Context(), input.Email, input.Password)
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleGoogleLogin đăng nhập hoặc đăng ký qua Google
func (h *FranchiseHandler) HandleGoogleLogin(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input franchisedto.FranchiseGoogleLoginInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		result, err := h.franchiseService.GoogleLogin(c.Context(), input.Email, input.GoogleID, input.Name, input.ProfileImage)
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleMe trả về hồ sơ cơ sở từ Bearer token
func (h *FranchiseHandler) HandleMe(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		token := strings.TrimPrefix(c.Get("Authorization"), "Bearer ")
		if token == "" {
			h.HandleResponse(c, nil, common.ErrTokenInvalid)
			return nil
		}

		franchise, err := h.franchiseService.VerifyToken(c.Context(), token)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		franchise.Password = ""
		h.HandleResponse(c, franchise, nil)
		return nil
	})
}

// HandleDashboard trả về dữ liệu màn hình tổng quan của cơ sở
func (h *FranchiseHandler) HandleDashboard(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.parseObjectIDParam(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		dashboard, err := h.franchiseService.GetDashboard(c.Context(), id)
		h.HandleResponse(c, dashboard, err)
		return nil
	})
}

// HandleListActive trả về các cơ sở đang hoạt động cho app khách
func (h *FranchiseHandler) HandleListActive(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		franchises, err := h.franchiseService.ListActive(c.Context(), 0)
		h.HandleResponse(c, franchises, err)
		return nil
	})
}

// HandleUpdateProfile cập nhật hồ sơ cơ sở, băm lại mật khẩu nếu có trong payload
func (h *FranchiseHandler) HandleUpdateProfile(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.parseObjectIDParam(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var updateData map[string]interface{}
		if err := h.ParseRequestBody(c, &updateData); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if len(updateData) == 0 {
			h.HandleResponse(c, nil, common.ErrInvalidInput)
			return nil
		}
		delete(updateData, "_id")
		delete(updateData, "createdAt")

		franchise, err := h.franchiseService.UpdateProfile(c.Context(), id, updateData)
		h.HandleResponse(c, franchise, err)
		return nil
	})
}

// HandleSaveDeviceToken lưu FCM token cho thiết bị của cơ sở
func (h *FranchiseHandler) HandleSaveDeviceToken(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.parseObjectIDParam(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input franchisedto.DeviceTokenInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		if err := h.franchiseService.SaveDeviceToken(c.Context(), id, input.FcmToken); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		h.HandleResponse(c, fiber.Map{"message": "Token saved"}, nil)
		return nil
	})
}
