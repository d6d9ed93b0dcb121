package global

import (
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Rohitsengar02/fixxev-api/config"
	"github.com/Rohitsengar02/fixxev-api/internal/registry"
)

// MongoDB_CollectionName chứa tên các collection trong MongoDB
type MongoDB_CollectionName struct {
	Users         string // Tên collection cho người dùng
	Franchises    string // Tên collection cho franchise (workshop)
	Vehicles      string // Tên collection cho phương tiện
	Bookings      string // Tên collection cho booking
	Notifications string // Tên collection cho notification
	Kycs          string // Tên collection cho hồ sơ KYC
	Services      string // Tên collection cho dịch vụ
	Offers        string // Tên collection cho ưu đãi
	Tips          string // Tên collection cho mẹo sử dụng xe
	Counters      string // Tên collection cho bộ đếm (sinh bookingId)
}

// Các biến toàn cục
var Validate *validator.Validate                                              // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client                                             // Phiên kết nối tới MongoDB
var MongoDB_ServerConfig *config.Configuration                                // Cấu hình của server
var MongoDB_ColNames MongoDB_CollectionName = *new(MongoDB_CollectionName)    // Tên các collection

// RegistryCollections chứa các collections đã khởi tạo, dùng chung cho các service
var RegistryCollections = registry.NewRegistry[*mongo.Collection]()
