// Package models - User thuộc domain User.
// Định danh chính là uid từ Firebase Auth, không phải ObjectID.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Các vai trò người dùng
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Address - Địa chỉ giao nhận của khách, lưu dạng sub-document
type Address struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Label     string             `json:"label" bson:"label"`
	Line1     string             `json:"line1" bson:"line1"`
	Line2     string             `json:"line2,omitempty" bson:"line2,omitempty"`
	City      string             `json:"city" bson:"city"`
	State     string             `json:"state" bson:"state"`
	Pincode   string             `json:"pincode" bson:"pincode"`
	IsDefault bool               `json:"isDefault" bson:"isDefault"`
}

// User - Khách hàng đăng nhập qua Firebase Auth
type User struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UID         string             `json:"uid" bson:"uid" validate:"required" index:"unique"`
	Email       string             `json:"email" bson:"email" validate:"required,email" index:"unique"`
	DisplayName string             `json:"displayName,omitempty" bson:"displayName,omitempty"`
	PhotoURL    string             `json:"photoURL,omitempty" bson:"photoURL,omitempty"`
	PhoneNumber string             `json:"phoneNumber,omitempty" bson:"phoneNumber,omitempty"`

	Role                  string `json:"role" bson:"role" validate:"omitempty,oneof=user admin" default:"user"`
	ProfileSetupCompleted bool   `json:"profileSetupCompleted" bson:"profileSetupCompleted"`
	FcmToken              string `json:"fcmToken,omitempty" bson:"fcmToken,omitempty"`

	Addresses []Address `json:"addresses" bson:"addresses,omitempty"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt" index:"single:-1"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}

// DefaultAddress trả về địa chỉ mặc định, fallback địa chỉ đầu tiên
func (u *User) DefaultAddress() *Address {
	for i := range u.Addresses {
		if u.Addresses[i].IsDefault {
			return &u.Addresses[i]
		}
	}
	if len(u.Addresses) > 0 {
		return &u.Addresses[0]
	}
	return nil
}
