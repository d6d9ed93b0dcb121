// Package models - Notification thuộc domain Notification.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Các loại người nhận notification
const (
	RecipientUser      = "user"
	RecipientFranchise = "franchise"
	RecipientAdmin     = "admin"
)

// Các loại event notification (closed set)
const (
	TypeBookingCreated    = "booking_created"
	TypeBookingConfirmed  = "booking_confirmed"
	TypeBookingInProgress = "booking_in_progress"
	TypeBookingCompleted  = "booking_completed"
	TypeBookingCancelled  = "booking_cancelled"
	TypeBookingUpdated    = "booking_updated"
	TypePaymentReceived   = "payment_received"
	TypeSystemAlert       = "system_alert"
)

// Notification - Bản ghi thông báo cho user/franchise/admin.
// recipientId là firebaseUid với user, hex ObjectID với franchise, chuỗi "admin" với admin.
type Notification struct {
	ID               primitive.ObjectID     `json:"id,omitempty" bson:"_id,omitempty"`
	RecipientType    string                 `json:"recipientType" bson:"recipientType" validate:"required,oneof=user franchise admin" index:"single:1,compound:recipient_created"`
	RecipientID      string                 `json:"recipientId" bson:"recipientId" validate:"required" index:"compound:recipient_created"`
	Title            string                 `json:"title" bson:"title" validate:"required"`
	Message          string                 `json:"message" bson:"message" validate:"required"`
	Type             string                 `json:"type" bson:"type" validate:"required,oneof=booking_created booking_confirmed booking_in_progress booking_completed booking_cancelled booking_updated payment_received system_alert"`
	RelatedBookingID string                 `json:"relatedBookingId,omitempty" bson:"relatedBookingId,omitempty"`
	IsRead           bool                   `json:"isRead" bson:"isRead" index:"single:1"`
	Data             map[string]interface{} `json:"data,omitempty" bson:"data,omitempty"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt" index:"compound:recipient_created"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
