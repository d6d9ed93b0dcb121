// Package models - Booking thuộc domain Booking.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Các trạng thái vòng đời booking
const (
	StatusPending    = "pending"
	StatusConfirmed  = "confirmed"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

// Các trạng thái thanh toán
const (
	PaymentPending  = "pending"
	PaymentPaid     = "paid"
	PaymentFailed   = "failed"
	PaymentRefunded = "refunded"
)

// BookedService - Snapshot một dịch vụ tại thời điểm đặt lịch.
// Giá và tên được copy từ catalog để booking không thay đổi khi catalog đổi giá.
type BookedService struct {
	ServiceID    primitive.ObjectID `json:"serviceId,omitempty" bson:"serviceId,omitempty"`
	ServiceName  string             `json:"serviceName" bson:"serviceName"`
	Price        float64            `json:"price" bson:"price"`
	Duration     string             `json:"duration,omitempty" bson:"duration,omitempty"`
	ServiceImage string             `json:"serviceImage,omitempty" bson:"serviceImage,omitempty"`
}

// UserDetails - Snapshot thông tin liên hệ của khách tại thời điểm đặt lịch
type UserDetails struct {
	Name  string `json:"name,omitempty" bson:"name,omitempty"`
	Phone string `json:"phone,omitempty" bson:"phone,omitempty"`
	Email string `json:"email,omitempty" bson:"email,omitempty"`
	Image string `json:"image,omitempty" bson:"image,omitempty"`
}

// FranchiseDetails - Snapshot thông tin cơ sở tại thời điểm đặt lịch
type FranchiseDetails struct {
	Name    string `json:"name,omitempty" bson:"name,omitempty"`
	Address string `json:"address,omitempty" bson:"address,omitempty"`
	Phone   string `json:"phone,omitempty" bson:"phone,omitempty"`
}

// VehicleDetails - Snapshot thông tin xe tại thời điểm đặt lịch
type VehicleDetails struct {
	Make               string `json:"make,omitempty" bson:"make,omitempty"`
	Model              string `json:"model,omitempty" bson:"model,omitempty"`
	Year               string `json:"year,omitempty" bson:"year,omitempty"`
	RegistrationNumber string `json:"registrationNumber,omitempty" bson:"registrationNumber,omitempty"`
}

// ServiceAddress - Địa chỉ thực hiện dịch vụ (tận nơi)
type ServiceAddress struct {
	Label   string `json:"label,omitempty" bson:"label,omitempty"`
	Line1   string `json:"line1,omitempty" bson:"line1,omitempty"`
	Line2   string `json:"line2,omitempty" bson:"line2,omitempty"`
	City    string `json:"city,omitempty" bson:"city,omitempty"`
	State   string `json:"state,omitempty" bson:"state,omitempty"`
	Pincode string `json:"pincode,omitempty" bson:"pincode,omitempty"`
}

// Booking - Lịch đặt dịch vụ của khách tại một cơ sở.
// BookingID dạng BK+yy+mm+5 chữ số, cấp phát tuần tự theo tháng qua counter.
type Booking struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	BookingID string             `json:"bookingId" bson:"bookingId" index:"unique"`

	UserID      string             `json:"userId" bson:"userId" validate:"required" index:"single:1"`
	FranchiseID primitive.ObjectID `json:"franchiseId" bson:"franchiseId" validate:"required" index:"compound:franchise_date"`
	VehicleID   primitive.ObjectID `json:"vehicleId,omitempty" bson:"vehicleId,omitempty"`

	Services []BookedService `json:"services" bson:"services" validate:"required,min=1"`

	UserDetails      UserDetails      `json:"userDetails,omitempty" bson:"userDetails,omitempty"`
	FranchiseDetails FranchiseDetails `json:"franchiseDetails,omitempty" bson:"franchiseDetails,omitempty"`
	VehicleDetails   VehicleDetails   `json:"vehicleDetails,omitempty" bson:"vehicleDetails,omitempty"`

	AppointmentDate string         `json:"appointmentDate" bson:"appointmentDate" validate:"required" index:"compound:franchise_date"`
	TimeSlot        string         `json:"timeSlot" bson:"timeSlot" validate:"required"`
	Address         ServiceAddress `json:"address,omitempty" bson:"address,omitempty"`

	TotalAmount   float64 `json:"totalAmount" bson:"totalAmount"`
	Status        string  `json:"status" bson:"status" validate:"omitempty,oneof=pending confirmed in-progress completed cancelled" index:"single:1"`
	PaymentStatus string  `json:"paymentStatus" bson:"paymentStatus" validate:"omitempty,oneof=pending paid failed refunded"`
	Notes         string  `json:"notes,omitempty" bson:"notes,omitempty"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt" index:"single:-1"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
