package catalogdto

// ServiceCreateInput dùng cho tạo dịch vụ catalog (tầng transport)
type ServiceCreateInput struct {
	Title       string  `json:"title" validate:"required,no_xss"`
	Category    string  `json:"category" validate:"required,no_xss"`
	Description string  `json:"description" validate:"required"`
	Image       string  `json:"image" validate:"omitempty"`
	Price       float64 `json:"price" validate:"gte=0"`
	Status      string  `json:"status" validate:"omitempty,oneof=Active Draft Inactive"`
}

// ServiceUpdateInput dùng cho cập nhật dịch vụ catalog (tầng transport)
type ServiceUpdateInput struct {
	Title       string   `json:"title" validate:"omitempty,no_xss"`
	Category    string   `json:"category" validate:"omitempty,no_xss"`
	Description string   `json:"description" validate:"omitempty"`
	Image       string   `json:"image" validate:"omitempty"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
	Status      string   `json:"status" validate:"omitempty,oneof=Active Draft Inactive"`
}

// OfferCreateInput dùng cho tạo ưu đãi (tầng transport)
type OfferCreateInput struct {
	Title       string `json:"title" validate:"required,no_xss"`
	Description string `json:"description" validate:"required"`
	Code        string `json:"code" validate:"omitempty,no_xss"`
	Discount    string `json:"discount" validate:"omitempty"`
	Image       string `json:"image" validate:"omitempty"`
	ExpiryDate  int64  `json:"expiryDate" validate:"omitempty"`
	Status      string `json:"status" validate:"omitempty,oneof=Active Inactive"`
}

// OfferUpdateInput dùng cho cập nhật ưu đãi (tầng transport)
type OfferUpdateInput struct {
	Title       string `json:"title" validate:"omitempty,no_xss"`
	Description string `json:"description" validate:"omitempty"`
	Code        string `json:"code" validate:"omitempty,no_xss"`
	Discount    string `json:"discount" validate:"omitempty"`
	Image       string `json:"image" validate:"omitempty"`
	ExpiryDate  *int64 `json:"expiryDate" validate:"omitempty"`
	Status      string `json:"status" validate:"omitempty,oneof=Active Inactive"`
}

// TipCreateInput dùng cho tạo mẹo chăm sóc xe (tầng transport)
type TipCreateInput struct {
	Title       string `json:"title" validate:"required,no_xss"`
	Description string `json:"description" validate:"required"`
	Image       string `json:"image" validate:"omitempty"`
	Category    string `json:"category" validate:"omitempty,no_xss"`
	Status      string `json:"status" validate:"omitempty,oneof=Active Inactive"`
}

// TipUpdateInput dùng cho cập nhật mẹo chăm sóc xe (tầng transport)
type TipUpdateInput struct {
	Title       string `json:"title" validate:"omitempty,no_xss"`
	Description string `json:"description" validate:"omitempty"`
	Image       string `json:"image" validate:"omitempty"`
	Category    string `json:"category" validate:"omitempty,no_xss"`
	Status      string `json:"status" validate:"omitempty,oneof=Active Inactive"`
}
