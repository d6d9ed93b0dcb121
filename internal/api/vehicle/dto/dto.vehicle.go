package vehicledto

// VehicleCreateInput dùng cho thêm xe mới (tầng transport)
type VehicleCreateInput struct {
	UserID          string `json:"userId" validate:"required"`
	Brand           string `json:"brand" validate:"required,no_xss"`
	Model           string `json:"model" validate:"required,no_xss"`
	Year            string `json:"year" validate:"omitempty"`
	PlateNumber     string `json:"plateNumber" validate:"required,no_xss"`
	Vin             string `json:"vin" validate:"omitempty"`
	PhotoURL        string `json:"photoURL" validate:"omitempty"`
	BatteryCapacity string `json:"batteryCapacity" validate:"omitempty"`
}

// VehicleUpdateInput dùng cho cập nhật xe (tầng transport)
type VehicleUpdateInput struct {
	Brand           string `json:"brand" validate:"omitempty,no_xss"`
	Model           string `json:"model" validate:"omitempty,no_xss"`
	Year            string `json:"year" validate:"omitempty"`
	PlateNumber     string `json:"plateNumber" validate:"omitempty,no_xss"`
	Vin             string `json:"vin" validate:"omitempty"`
	PhotoURL        string `json:"photoURL" validate:"omitempty"`
	BatteryCapacity string `json:"batteryCapacity" validate:"omitempty"`
	BatteryLevel    *int   `json:"batteryLevel" validate:"omitempty"`
	Range           *int   `json:"range" validate:"omitempty"`
}
