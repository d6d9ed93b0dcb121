package notifdto

// NotificationCreateInput dùng cho tạo notification trực tiếp (tầng transport)
type NotificationCreateInput struct {
	RecipientType    string                 `json:"recipientType" validate:"required,oneof=user franchise admin"`
	RecipientID      string                 `json:"recipientId" validate:"required"`
	Title            string                 `json:"title" validate:"required,no_xss"`
	Message          string                 `json:"message" validate:"required,no_xss"`
	Type             string                 `json:"type" validate:"required"`
	RelatedBookingID string                 `json:"relatedBookingId,omitempty"`
	Data             map[string]interface{} `json:"data,omitempty"`
}

// NotificationUpdateInput dùng cho cập nhật notification (tầng transport)
type NotificationUpdateInput struct {
	Title   string `json:"title" validate:"omitempty,no_xss"`
	Message string `json:"message" validate:"omitempty,no_xss"`
	IsRead  *bool  `json:"isRead"`
}
