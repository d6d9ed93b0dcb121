package userdto

// UserSyncInput dùng cho đồng bộ tài khoản sau khi đăng nhập Google (tầng transport)
type UserSyncInput struct {
	UID         string `json:"uid" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	DisplayName string `json:"displayName" validate:"omitempty,no_xss"`
	PhotoURL    string `json:"photoURL" validate:"omitempty"`
	PhoneNumber string `json:"phoneNumber" validate:"omitempty"`
}

// UserUpdateInput dùng cho cập nhật hồ sơ khách (tầng transport)
type UserUpdateInput struct {
	DisplayName           string `json:"displayName" validate:"omitempty,no_xss"`
	PhotoURL              string `json:"photoURL" validate:"omitempty"`
	PhoneNumber           string `json:"phoneNumber" validate:"omitempty"`
	ProfileSetupCompleted *bool  `json:"profileSetupCompleted"`
}

// AddressInput dùng cho thêm hoặc cập nhật địa chỉ của khách.
// UID nằm trong body theo contract của app khách.
type AddressInput struct {
	UID       string `json:"uid" validate:"required"`
	Label     string `json:"label" validate:"omitempty,no_xss"`
	Line1     string `json:"line1" validate:"required,no_xss"`
	Line2     string `json:"line2" validate:"omitempty,no_xss"`
	City      string `json:"city" validate:"required,no_xss"`
	State     string `json:"state" validate:"required,no_xss"`
	Pincode   string `json:"pincode" validate:"required"`
	IsDefault bool   `json:"isDefault"`
}

// AddressUpdateInput dùng cho cập nhật địa chỉ, mọi field đều tùy chọn
type AddressUpdateInput struct {
	UID       string `json:"uid" validate:"required"`
	Label     string `json:"label" validate:"omitempty,no_xss"`
	Line1     string `json:"line1" validate:"omitempty,no_xss"`
	Line2     *string `json:"line2" validate:"omitempty"`
	City      string `json:"city" validate:"omitempty,no_xss"`
	State     string `json:"state" validate:"omitempty,no_xss"`
	Pincode   string `json:"pincode" validate:"omitempty"`
	IsDefault *bool  `json:"isDefault"`
}

// UserDeviceTokenInput dùng cho lưu FCM token của thiết bị khách
type UserDeviceTokenInput struct {
	UID      string `json:"uid" validate:"required"`
	FcmToken string `json:"fcmToken" validate:"required"`
}
