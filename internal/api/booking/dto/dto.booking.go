package bookingdto

import (
	bookingmodels "github.com/Rohitsengar02/fixxev-api/internal/api/booking/models"
)

// BookingCreateInput dùng cho tạo booking (tầng transport)
type BookingCreateInput struct {
	UserID      string `json:"userId" validate:"required" transform:"string"`
	FranchiseID string `json:"franchiseId" validate:"required" transform:"str_objectid"`
	VehicleID   string `json:"vehicleId" validate:"omitempty" transform:"str_objectid,optional"`

	Services []bookingmodels.BookedService `json:"services" validate:"required,min=1"`

	UserDetails      bookingmodels.UserDetails      `json:"userDetails"`
	FranchiseDetails bookingmodels.FranchiseDetails `json:"franchiseDetails"`
	VehicleDetails   bookingmodels.VehicleDetails   `json:"vehicleDetails"`

	AppointmentDate string                        `json:"appointmentDate" validate:"required"`
	TimeSlot        string                        `json:"timeSlot" validate:"required"`
	Address         bookingmodels.ServiceAddress  `json:"address"`

	TotalAmount float64 `json:"totalAmount" validate:"gte=0"`
	Notes       string  `json:"notes" validate:"omitempty,no_xss"`
}

// BookingUpdateInput dùng cho cập nhật booking qua CRUD chung (tầng transport)
type BookingUpdateInput struct {
	AppointmentDate string `json:"appointmentDate" validate:"omitempty"`
	TimeSlot        string `json:"timeSlot" validate:"omitempty"`
	PaymentStatus   string `json:"paymentStatus" validate:"omitempty,oneof=pending paid failed refunded"`
	Notes           string `json:"notes" validate:"omitempty,no_xss"`
}

// BookingStatusUpdateInput dùng cho chuyển trạng thái booking
type BookingStatusUpdateInput struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed in-progress completed cancelled"`
}
