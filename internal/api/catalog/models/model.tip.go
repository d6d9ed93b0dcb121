package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Tip - Mẹo chăm sóc xe điện hiển thị trên app khách hàng
type Tip struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title" validate:"required,no_xss"`
	Description string             `json:"description" bson:"description" validate:"required"`
	Image       string             `json:"image,omitempty" bson:"image,omitempty"`
	Category    string             `json:"category,omitempty" bson:"category,omitempty"`
	Status      string             `json:"status" bson:"status" validate:"omitempty,oneof=Active Inactive" default:"Active" index:"single:1"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt" index:"single:-1"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
