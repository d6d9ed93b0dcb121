package kycdto

// KycSubmitInput dùng cho nộp hồ sơ KYC (tầng transport)
type KycSubmitInput struct {
	UserID           string `json:"userId" validate:"required"`
	DocumentType     string `json:"documentType" validate:"required,oneof='Adhaar Card' 'PAN Card' 'Driving License' 'Voter ID'"`
	DocumentID       string `json:"documentId" validate:"required,no_xss"`
	DocumentImageURL string `json:"documentImageURL" validate:"required"`
}

// KycVerifyInput dùng cho duyệt hoặc từ chối hồ sơ KYC (tầng transport)
type KycVerifyInput struct {
	Status          string `json:"status" validate:"required,oneof=Verified Rejected"`
	RejectionReason string `json:"rejectionReason" validate:"omitempty,no_xss"`
}
