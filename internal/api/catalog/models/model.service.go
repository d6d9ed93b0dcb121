// Package models - Service, Offer và Tip thuộc domain Catalog.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Các trạng thái hiển thị của item catalog
const (
	CatalogActive   = "Active"
	CatalogDraft    = "Draft"
	CatalogInactive = "Inactive"
)

// Service - Dịch vụ trong catalog chung, cơ sở chọn từ đây để đăng ký cung cấp
type Service struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title" validate:"required,no_xss"`
	Category    string             `json:"category" bson:"category" validate:"required,no_xss" index:"single:1"`
	Description string             `json:"description" bson:"description" validate:"required"`
	Image       string             `json:"image,omitempty" bson:"image,omitempty"`
	Price       float64            `json:"price" bson:"price"`
	Status      string             `json:"status" bson:"status" validate:"omitempty,oneof=Active Draft Inactive" default:"Active" index:"single:1"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt" index:"single:-1"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`

	// Ràng buộc tham chiếu, tầng CRUD kiểm tra trước khi xóa
	_Relationships struct{} `relationship:"collection:bookings,field:services.serviceId,optional:true,msg:Không thể xóa dịch vụ vì có %d booking đang tham chiếu tới dịch vụ này."`
}
