package franchisedto

import (
	franchisemodels "github.com/Rohitsengar02/fixxev-api/internal/api/franchise/models"
)

// FranchiseCreateInput dùng cho admin thêm cơ sở mới (tầng transport)
type FranchiseCreateInput struct {
	Name            string `json:"name" validate:"required,no_xss"`
	OwnerName       string `json:"ownerName" validate:"omitempty,no_xss"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6"`
	Location        string `json:"location" validate:"omitempty"`
	TechnicianCount int    `json:"technicianCount" validate:"omitempty"`
	Status          string `json:"status" validate:"omitempty,oneof=Active Pending Suspended Approved Rejected"`
}

// FranchiseUpdateInput dùng cho cập nhật hồ sơ cơ sở (tầng transport)
type FranchiseUpdateInput struct {
	Name            string                           `json:"name" validate:"omitempty,no_xss"`
	OwnerName       string                           `json:"ownerName" validate:"omitempty,no_xss"`
	Password        string                           `json:"password" validate:"omitempty,min=6"`
	Mobile          string                           `json:"mobile" validate:"omitempty"`
	Address         string                           `json:"address" validate:"omitempty"`
	City            string                           `json:"city" validate:"omitempty"`
	Pincode         string                           `json:"pincode" validate:"omitempty"`
	GstNumber       string                           `json:"gstNumber" validate:"omitempty"`
	Category        string                           `json:"category" validate:"omitempty"`
	Location        string                           `json:"location" validate:"omitempty"`
	Description     string                           `json:"description" validate:"omitempty"`
	ProfileImage    string                           `json:"profileImage" validate:"omitempty"`
	Status          string                           `json:"status" validate:"omitempty,oneof=Active Pending Suspended Approved Rejected"`
	WorkshopDetails *franchisemodels.WorkshopDetails `json:"workshopDetails" validate:"omitempty"`
	BusinessHours   []franchisemodels.BusinessHour   `json:"businessHours" validate:"omitempty"`
	Technicians     []franchisemodels.Technician     `json:"technicians" validate:"omitempty"`
}

// FranchiseRegisterInput dùng cho onboarding cơ sở mới từ app đối tác
type FranchiseRegisterInput struct {
	Name            string                           `json:"name" validate:"required,no_xss"`
	OwnerName       string                           `json:"ownerName" validate:"required,no_xss"`
	Email           string                           `json:"email" validate:"required,email"`
	Password        string                           `json:"password" validate:"omitempty,min=6"`
	Mobile          string                           `json:"mobile" validate:"omitempty"`
	Address         string                           `json:"address" validate:"omitempty"`
	Latitude        float64                          `json:"latitude" validate:"omitempty"`
	Longitude       float64                          `json:"longitude" validate:"omitempty"`
	City            string                           `json:"city" validate:"omitempty"`
	Pincode         string                           `json:"pincode" validate:"omitempty"`
	GstNumber       string                           `json:"gstNumber" validate:"omitempty"`
	YearsInBusiness string                           `json:"yearsInBusiness" validate:"omitempty"`
	Category        string                           `json:"category" validate:"omitempty"`
	AgreedToTerms   bool                             `json:"agreedToTerms"`
	WorkshopDetails *franchisemodels.WorkshopDetails `json:"workshopDetails" validate:"omitempty"`
	BusinessHours   []franchisemodels.BusinessHour   `json:"businessHours" validate:"omitempty"`
	Documents       []franchisemodels.Document       `json:"documents" validate:"omitempty"`
}

// FranchiseLoginInput dùng cho đăng nhập email và mật khẩu
type FranchiseLoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// FranchiseGoogleLoginInput dùng cho đăng nhập hoặc đăng ký qua Google
type FranchiseGoogleLoginInput struct {
	Email        string `json:"email" validate:"required,email"`
	GoogleID     string `json:"googleId" validate:"required"`
	Name         string `json:"name" validate:"omitempty,no_xss"`
	ProfileImage string `json:"profileImage" validate:"omitempty"`
}

// ServiceRequestInput dùng cho cơ sở yêu cầu cung cấp dịch vụ,
// hỗ trợ nhiều dịch vụ catalog và dịch vụ custom trong một request
type ServiceRequestInput struct {
	FranchiseID    string                              `json:"franchiseId" validate:"required"`
	ServiceIDs     []string                            `json:"serviceIds" validate:"omitempty,dive,len=24"`
	CustomServices []franchisemodels.CustomServiceData `json:"customServices" validate:"omitempty"`
}

// ServiceApproveInput dùng cho admin duyệt hoặc từ chối yêu cầu dịch vụ
type ServiceApproveInput struct {
	FranchiseID string `json:"franchiseId" validate:"required"`
	RequestID   string `json:"requestId" validate:"required"`
	Status      string `json:"status" validate:"required,oneof=Approved Rejected"`
}

// DeviceTokenInput dùng cho lưu FCM token của thiết bị
type DeviceTokenInput struct {
	FcmToken string `json:"fcmToken" validate:"required"`
}
