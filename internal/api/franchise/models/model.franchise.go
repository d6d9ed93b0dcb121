// Package models - Franchise thuộc domain Franchise.
// Collection giữ tên "franchisers" theo dữ liệu đang chạy.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Các trạng thái hoạt động của cơ sở
const (
	StatusActive    = "Active"
	StatusPending   = "Pending"
	StatusSuspended = "Suspended"
	StatusApproved  = "Approved"
	StatusRejected  = "Rejected"
)

// Các trạng thái của yêu cầu cung cấp dịch vụ
const (
	RequestPending  = "Pending"
	RequestApproved = "Approved"
	RequestRejected = "Rejected"
)

// Document - Giấy tờ đính kèm hồ sơ cơ sở
type Document struct {
	Name string `json:"name,omitempty" bson:"name,omitempty"`
	URL  string `json:"url,omitempty" bson:"url,omitempty"`
	Type string `json:"type,omitempty" bson:"type,omitempty"`
}

// Facilities - Tiện ích xưởng cung cấp
type Facilities struct {
	PickupDrop          bool `json:"pickupDrop" bson:"pickupDrop"`
	EvCharging          bool `json:"evCharging" bson:"evCharging"`
	SpareParts          bool `json:"spareParts" bson:"spareParts"`
	SoftwareDiagnostics bool `json:"softwareDiagnostics" bson:"softwareDiagnostics"`
}

// WorkshopDetails - Thông tin xưởng khai báo lúc onboarding
type WorkshopDetails struct {
	WorkshopType       string     `json:"workshopType,omitempty" bson:"workshopType,omitempty"`
	MaxVehiclesPerDay  string     `json:"maxVehiclesPerDay,omitempty" bson:"maxVehiclesPerDay,omitempty"`
	TechnicianCount    string     `json:"technicianCount,omitempty" bson:"technicianCount,omitempty"`
	Facilities         Facilities `json:"facilities" bson:"facilities"`
}

// BusinessHour - Giờ mở cửa theo ngày trong tuần
type BusinessHour struct {
	Day      string `json:"day,omitempty" bson:"day,omitempty"`
	Open     string `json:"open,omitempty" bson:"open,omitempty"`
	Close    string `json:"close,omitempty" bson:"close,omitempty"`
	IsClosed bool   `json:"isClosed" bson:"isClosed"`
}

// Feature - Tiện ích bổ sung dạng cờ bật tắt
type Feature struct {
	Name  string `json:"name,omitempty" bson:"name,omitempty"`
	Value bool   `json:"value" bson:"value"`
}

// Technician - Kỹ thuật viên của cơ sở
type Technician struct {
	Name           string  `json:"name,omitempty" bson:"name,omitempty"`
	Specialization string  `json:"specialization,omitempty" bson:"specialization,omitempty"`
	Experience     string  `json:"experience,omitempty" bson:"experience,omitempty"`
	Image          string  `json:"image,omitempty" bson:"image,omitempty"`
	Rating         float64 `json:"rating" bson:"rating"`
}

// CustomServiceData - Dịch vụ tự đề xuất ngoài catalog chung
type CustomServiceData struct {
	Name        string  `json:"name,omitempty" bson:"name,omitempty"`
	Category    string  `json:"category,omitempty" bson:"category,omitempty"`
	Description string  `json:"description,omitempty" bson:"description,omitempty"`
	Price       float64 `json:"price,omitempty" bson:"price,omitempty"`
	Image       string  `json:"image,omitempty" bson:"image,omitempty"`
}

// ServiceRequest - Yêu cầu cung cấp một dịch vụ, chờ admin duyệt.
// Yêu cầu custom được tạo thành Service trong catalog khi approve.
type ServiceRequest struct {
	ID          primitive.ObjectID `json:"requestId" bson:"_id,omitempty"`
	Service     primitive.ObjectID `json:"service,omitempty" bson:"service,omitempty"`
	IsCustom    bool               `json:"isCustom" bson:"isCustom"`
	CustomData  *CustomServiceData `json:"customData,omitempty" bson:"customData,omitempty"`
	Status      string             `json:"status" bson:"status"`
	RequestedAt int64              `json:"requestedAt" bson:"requestedAt"`
}

// Franchise - Cơ sở sửa chữa xe điện tham gia marketplace
type Franchise struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name" validate:"required,no_xss"`
	OwnerName string             `json:"ownerName" bson:"ownerName" validate:"omitempty,no_xss"`
	Email     string             `json:"email" bson:"email" validate:"required,email" index:"unique"`
	Password  string             `json:"-" bson:"password,omitempty"`
	GoogleID  string             `json:"googleId,omitempty" bson:"googleId,omitempty"`

	Mobile          string  `json:"mobile,omitempty" bson:"mobile,omitempty"`
	Address         string  `json:"address,omitempty" bson:"address,omitempty"`
	Latitude        float64 `json:"latitude" bson:"latitude"`
	Longitude       float64 `json:"longitude" bson:"longitude"`
	City            string  `json:"city,omitempty" bson:"city,omitempty"`
	Pincode         string  `json:"pincode,omitempty" bson:"pincode,omitempty"`
	GstNumber       string  `json:"gstNumber,omitempty" bson:"gstNumber,omitempty"`
	YearsInBusiness string  `json:"yearsInBusiness,omitempty" bson:"yearsInBusiness,omitempty"`
	Category        string  `json:"category,omitempty" bson:"category,omitempty"`
	Location        string  `json:"location,omitempty" bson:"location,omitempty"`
	TechnicianCount int     `json:"technicianCount" bson:"technicianCount"`

	WorkshopDetails *WorkshopDetails `json:"workshopDetails,omitempty" bson:"workshopDetails,omitempty"`

	Rating float64 `json:"rating" bson:"rating"`
	Status string  `json:"status" bson:"status" validate:"omitempty,oneof=Active Pending Suspended Approved Rejected" default:"Pending" index:"single:1"`

	Documents         []Document `json:"documents,omitempty" bson:"documents,omitempty"`
	ServiceWaitTime   string     `json:"serviceWaitTime,omitempty" bson:"serviceWaitTime,omitempty"`
	PartsAvailability string     `json:"partsAvailability,omitempty" bson:"partsAvailability,omitempty"`
	IsCertified       bool       `json:"isCertified" bson:"isCertified"`
	AgreedToTerms     bool       `json:"agreedToTerms" bson:"agreedToTerms"`
	AgreedAt          int64      `json:"agreedAt,omitempty" bson:"agreedAt,omitempty"`

	ProfileImage  string   `json:"profileImage,omitempty" bson:"profileImage,omitempty"`
	GalleryImages []string `json:"galleryImages,omitempty" bson:"galleryImages,omitempty"`
	Description   string   `json:"description,omitempty" bson:"description,omitempty"`

	BusinessHours      []BusinessHour `json:"businessHours,omitempty" bson:"businessHours,omitempty"`
	AdditionalFeatures []Feature      `json:"additionalFeatures,omitempty" bson:"additionalFeatures,omitempty"`
	Technicians        []Technician   `json:"technicians,omitempty" bson:"technicians,omitempty"`

	FcmToken string `json:"fcmToken,omitempty" bson:"fcmToken,omitempty"`

	Services        []primitive.ObjectID `json:"services" bson:"services,omitempty"`
	ServiceRequests []ServiceRequest     `json:"serviceRequests" bson:"serviceRequests,omitempty"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt" index:"single:-1"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`

	// Ràng buộc tham chiếu, tầng CRUD kiểm tra trước khi xóa
	_Relationships struct{} `relationship:"collection:bookings,field:franchiseId,msg:Không thể xóa franchise vì có %d booking đang gắn với franchise này. Vui lòng xử lý các booking trước."`
}
