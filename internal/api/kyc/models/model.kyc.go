// Package models - Kyc thuộc domain KYC.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Các trạng thái duyệt hồ sơ KYC
const (
	KycPending  = "Pending"
	KycVerified = "Verified"
	KycRejected = "Rejected"
)

// Các loại giấy tờ được chấp nhận
const (
	DocAdhaar         = "Adhaar Card"
	DocPan            = "PAN Card"
	DocDrivingLicense = "Driving License"
	DocVoterID        = "Voter ID"
)

// Kyc - Hồ sơ định danh của khách, mỗi loại giấy tờ chỉ được
// một bản ghi Pending hoặc Verified tại một thời điểm
type Kyc struct {
	ID     primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UserID string             `json:"userId" bson:"userId" validate:"required" index:"single:1,compound:user_doctype"`

	DocumentType     string `json:"documentType" bson:"documentType" validate:"required,oneof='Adhaar Card' 'PAN Card' 'Driving License' 'Voter ID'" index:"compound:user_doctype"`
	DocumentID       string `json:"documentId" bson:"documentId" validate:"required,no_xss"`
	DocumentImageURL string `json:"documentImageURL" bson:"documentImageURL" validate:"required"`

	Status          string `json:"status" bson:"status" validate:"omitempty,oneof=Pending Verified Rejected" default:"Pending" index:"single:1"`
	RejectionReason string `json:"rejectionReason,omitempty" bson:"rejectionReason,omitempty"`
	SubmittedAt     int64  `json:"submittedAt" bson:"submittedAt"`
	VerifiedAt      int64  `json:"verifiedAt,omitempty" bson:"verifiedAt,omitempty"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt" index:"single:-1"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
