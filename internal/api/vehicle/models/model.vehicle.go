// Package models - Vehicle thuộc domain Vehicle.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MaintenanceInfo - Lịch bảo dưỡng của xe
type MaintenanceInfo struct {
	LastServiceDate int64  `json:"lastServiceDate,omitempty" bson:"lastServiceDate,omitempty"`
	NextServiceDue  int64  `json:"nextServiceDue,omitempty" bson:"nextServiceDue,omitempty"`
	ServiceType     string `json:"serviceType,omitempty" bson:"serviceType,omitempty"`
	Status          string `json:"status,omitempty" bson:"status,omitempty"`
}

// PolicyInfo - Thông tin bảo hành hoặc bảo hiểm
type PolicyInfo struct {
	Provider     string `json:"provider,omitempty" bson:"provider,omitempty"`
	ExpiryDate   int64  `json:"expiryDate,omitempty" bson:"expiryDate,omitempty"`
	PolicyNumber string `json:"policyNumber,omitempty" bson:"policyNumber,omitempty"`
	Status       string `json:"status,omitempty" bson:"status,omitempty"`
}

// PartHistory - Lịch sử thay thế linh kiện
type PartHistory struct {
	PartName    string  `json:"partName,omitempty" bson:"partName,omitempty"`
	ReplaceDate int64   `json:"replaceDate,omitempty" bson:"replaceDate,omitempty"`
	Cost        float64 `json:"cost,omitempty" bson:"cost,omitempty"`
	Notes       string  `json:"notes,omitempty" bson:"notes,omitempty"`
}

// ServiceRecord - Lịch sử dịch vụ đã thực hiện trên xe
type ServiceRecord struct {
	Date        int64   `json:"date,omitempty" bson:"date,omitempty"`
	Type        string  `json:"type,omitempty" bson:"type,omitempty"`
	Description string  `json:"description,omitempty" bson:"description,omitempty"`
	Cost        float64 `json:"cost,omitempty" bson:"cost,omitempty"`
	Odometer    int     `json:"odometer,omitempty" bson:"odometer,omitempty"`
}

// Vehicle - Xe điện của khách. Xe đầu tiên của mỗi khách tự động là xe mặc định.
type Vehicle struct {
	ID     primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UserID string             `json:"userId" bson:"userId" validate:"required" index:"single:1"`

	Brand           string `json:"brand" bson:"brand" validate:"required,no_xss"`
	Model           string `json:"model" bson:"model" validate:"required,no_xss"`
	Year            string `json:"year,omitempty" bson:"year,omitempty"`
	PlateNumber     string `json:"plateNumber" bson:"plateNumber" validate:"required,no_xss"`
	Vin             string `json:"vin,omitempty" bson:"vin,omitempty"`
	PhotoURL        string `json:"photoURL,omitempty" bson:"photoURL,omitempty"`
	BatteryCapacity string `json:"batteryCapacity,omitempty" bson:"batteryCapacity,omitempty"`
	BatteryLevel    int    `json:"batteryLevel" bson:"batteryLevel" default:"100"`
	Range           int    `json:"range" bson:"range"`

	Maintenance    *MaintenanceInfo `json:"maintenance,omitempty" bson:"maintenance,omitempty"`
	Warranty       *PolicyInfo      `json:"warranty,omitempty" bson:"warranty,omitempty"`
	Insurance      *PolicyInfo      `json:"insurance,omitempty" bson:"insurance,omitempty"`
	PartsHistory   []PartHistory    `json:"partsHistory,omitempty" bson:"partsHistory,omitempty"`
	ServiceRecords []ServiceRecord  `json:"serviceRecords,omitempty" bson:"serviceRecords,omitempty"`

	IsDefault bool `json:"isDefault" bson:"isDefault"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt" index:"single:-1"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
