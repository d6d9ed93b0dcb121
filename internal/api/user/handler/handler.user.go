package userhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "github.com/Rohitsengar02/fixxev-api/internal/api/base/handler"
	userdto "github.com/Rohitsengar02/fixxev-api/internal/api/user/dto"
	usermodels "github.com/Rohitsengar02/fixxev-api/internal/api/user/models"
	usersvc "github.com/Rohitsengar02/fixxev-api/internal/api/user/service"
	"github.com/Rohitsengar02/fixxev-api/internal/common"
	"github.com/Rohitsengar02/fixxev-api/internal/utility"
)

// UserHandler xử lý các request liên quan đến User
type UserHandler struct {
	*basehdl.BaseHandler[usermodels.User, userdto.UserSyncInput, userdto.UserUpdateInput]
	userService *usersvc.UserService
}

// NewUserHandler tạo mới UserHandler
func NewUserHandler() (*UserHandler, error) {
	userService, err := usersvc.NewUserService()
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %v", err)
	}

	hdl := &UserHandler{
		BaseHandler: basehdl.NewBaseHandler[usermodels.User, userdto.UserSyncInput, userdto.UserUpdateInput](userService),
		userService: userService,
	}
	return hdl, nil
}

// requireUID đọc uid từ param hoặc query, trả lỗi nếu thiếu
func requireUID(uid string) error {
	if uid == "" {
		return common.NewError(
			common.ErrCodeValidationInput,
			"Thiếu uid của khách",
			common.StatusBadRequest,
			nil,
		)
	}
	return nil
}

// HandleSync upsert tài khoản khách sau khi đăng nhập Google.
// Trả về 201 khi tài khoản vừa được tạo mới.
func (h *UserHandler) HandleSync(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input userdto.UserSyncInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		result, err := h.userService.SyncFromFirebase(c.Context(),
			input.UID, input.Email, input.DisplayName, input.PhotoURL, input.PhoneNumber)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if result.Created {
			basehdl.JSONResponse(c, common.StatusCreated, fiber.Map{
				"code":    "SUCCESS",
				"message": common.MsgSuccess,
				"data":    result.User,
				"status":  "success",
			})
			return nil
		}
		h.HandleResponse(c, result.User, nil)
		return nil
	})
}

// HandleListAll trả về toàn bộ user cho trang quản trị
func (h *UserHandler) HandleListAll(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		users, err := h.userService.ListAll(c.Context())
		h.HandleResponse(c, users, err)
		return nil
	})
}

// HandleGetByUID trả về hồ sơ khách theo uid Firebase
func (h *UserHandler) HandleGetByUID(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		uid := c.Params("uid")
		if err := requireUID(uid); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		user, err := h.userService.GetByUID(c.Context(), uid)
		h.HandleResponse(c, user, err)
		return nil
	})
}

// HandleUpdateProfile cập nhật hồ sơ khách theo uid
func (h *UserHandler) HandleUpdateProfile(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		uid := c.Params("uid")
		if err := requireUID(uid); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input userdto.UserUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		set := map[string]interface{}{}
		if input.DisplayName != "" {
			set["displayName"] = input.DisplayName
		}
		if input.PhotoURL != "" {
			set["photoURL"] = input.PhotoURL
		}
		if input.PhoneNumber != "" {
			set["phoneNumber"] = input.PhoneNumber
		}
		if input.ProfileSetupCompleted != nil {
			set["profileSetupCompleted"] = *input.ProfileSetupCompleted
		}
		if len(set) == 0 {
			h.HandleResponse(c, nil, common.ErrInvalidInput)
			return nil
		}

		user, err := h.userService.UpdateByUID(c.Context(), uid, set)
		h.HandleResponse(c, user, err)
		return nil
	})
}

// HandleSaveDeviceToken lưu FCM token cho thiết bị của khách
func (h *UserHandler) HandleSaveDeviceToken(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input userdto.UserDeviceTokenInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		if err := h.userService.SaveDeviceToken(c.Context(), input.UID, input.FcmToken); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		h.HandleResponse(c, fiber.Map{"message": "Token saved"}, nil)
		return nil
	})
}

// HandleDashboard trả về dữ liệu màn hình tổng quan của app khách
func (h *UserHandler) HandleDashboard(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		uid := c.Params("uid")
		if err := requireUID(uid); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		dashboard, err := h.userService.GetDashboard(c.Context(), uid)
		h.HandleResponse(c, dashboard, err)
		return nil
	})
}

// HandleListAddresses trả về sổ địa chỉ, uid nằm trong query string
func (h *UserHandler) HandleListAddresses(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		uid := c.Query("uid")
		if err := requireUID(uid); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		addresses, err := h.userService.ListAddresses(c.Context(), uid)
		h.HandleResponse(c, addresses, err)
		return nil
	})
}

// HandleAddAddress thêm địa chỉ mới vào sổ địa chỉ
func (h *UserHandler) HandleAddAddress(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input userdto.AddressInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		address, err := h.userService.AddAddress(c.Context(), input.UID, usermodels.Address{
			Label:     input.Label,
			Line1:     input.Line1,
			Line2:     input.Line2,
			City:      input.City,
			State:     input.State,
			Pincode:   input.Pincode,
			IsDefault: input.IsDefault,
		})
		h.HandleResponse(c, address, err)
		return nil
	})
}

// parseAddressID đọc và kiểm tra param id của địa chỉ
func parseAddressID(c fiber.Ctx) (primitive.ObjectID, error) {
	id := c.Params("id")
	if !primitive.IsValidObjectID(id) {
		return primitive.NilObjectID, common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("id '%s' không đúng định dạng MongoDB ObjectID", id),
			common.StatusBadRequest,
			nil,
		)
	}
	return utility.String2ObjectID(id), nil
}

// HandleUpdateAddress sửa một địa chỉ theo id, field vắng mặt giữ nguyên
func (h *UserHandler) HandleUpdateAddress(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		addressID, err := parseAddressID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input userdto.AddressUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		address, err := h.userService.UpdateAddress(c.Context(), input.UID, addressID, usersvc.AddressPatch{
			Label:     input.Label,
			Line1:     input.Line1,
			Line2:     input.Line2,
			City:      input.City,
			State:     input.State,
			Pincode:   input.Pincode,
			IsDefault: input.IsDefault,
		})
		h.HandleResponse(c, address, err)
		return nil
	})
}

// HandleDeleteAddress xóa một địa chỉ, uid nằm trong query string
func (h *UserHandler) HandleDeleteAddress(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		addressID, err := parseAddressID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		uid := c.Query("uid")
		if err := requireUID(uid); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		if err := h.userService.DeleteAddress(c.Context(), uid, addressID); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		h.HandleResponse(c, fiber.Map{"message": "Address deleted"}, nil)
		return nil
	})
}
