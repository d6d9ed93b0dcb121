package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Offer - Ưu đãi hiển thị trên app khách hàng
type Offer struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title" validate:"required,no_xss"`
	Description string             `json:"description" bson:"description" validate:"required"`
	Code        string             `json:"code,omitempty" bson:"code,omitempty"`
	Discount    string             `json:"discount,omitempty" bson:"discount,omitempty"`
	Image       string             `json:"image,omitempty" bson:"image,omitempty"`
	ExpiryDate  int64              `json:"expiryDate,omitempty" bson:"expiryDate,omitempty"`
	Status      string             `json:"status" bson:"status" validate:"omitempty,oneof=Active Inactive" default:"Active" index:"single:1"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt" index:"single:-1"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
