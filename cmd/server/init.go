package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/Rohitsengar02/fixxev-api/config"
	bookingmodels "github.com/Rohitsengar02/fixxev-api/internal/api/booking/models"
	catalogmodels "github.com/Rohitsengar02/fixxev-api/internal/api/catalog/models"
	franchisemodels "github.com/Rohitsengar02/fixxev-api/internal/api/franchise/models"
	kycmodels "github.com/Rohitsengar02/fixxev-api/internal/api/kyc/models"
	notifmodels "github.com/Rohitsengar02/fixxev-api/internal/api/notification/models"
	usermodels "github.com/Rohitsengar02/fixxev-api/internal/api/user/models"
	vehiclemodels "github.com/Rohitsengar02/fixxev-api/internal/api/vehicle/models"
	"github.com/Rohitsengar02/fixxev-api/internal/database"
	"github.com/Rohitsengar02/fixxev-api/internal/global"
	"github.com/Rohitsengar02/fixxev-api/internal/utility"
)

// Hàm khởi tạo các biến toàn cục
func InitGlobal() {
	initColNames()         // Khởi tạo tên các collection trong database
	initValidator()        // Khởi tạo validator
	initConfig()           // Khởi tạo cấu hình server
	initDatabase_MongoDB() // Khởi tạo kết nối database
	initFirebase()         // Khởi tạo Firebase
}

// Hàm khởi tạo tên các collection trong database
func initColNames() {
	global.MongoDB_ColNames.Users = "users"
	global.MongoDB_ColNames.Franchises = "franchisers"
	global.MongoDB_ColNames.Vehicles = "vehicles"
	global.MongoDB_ColNames.Bookings = "bookings"
	global.MongoDB_ColNames.Notifications = "notifications"
	global.MongoDB_ColNames.Kycs = "kycs"
	global.MongoDB_ColNames.Services = "services"
	global.MongoDB_ColNames.Offers = "offers"
	global.MongoDB_ColNames.Tips = "tips"
	global.MongoDB_ColNames.Counters = "counters"

	logrus.Info("Initialized collection names") // Ghi log thông báo đã khởi tạo tên các collection
}

// Hàm khởi tạo validator (dùng global.InitValidator để đăng ký custom validators: no_xss, exists, ...)
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator") // Ghi log thông báo đã khởi tạo validator
}

// Hàm khởi tạo cấu hình server
func initConfig() {
	global.MongoDB_ServerConfig = config.NewConfig()
	if global.MongoDB_ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil") // Ghi log lỗi nếu khởi tạo cấu hình thất bại
	}
	logrus.Info("Initialized server config") // Ghi log thông báo đã khởi tạo cấu hình server
}

// Hàm khởi tạo kết nối database
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.MongoDB_ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err) // Ghi log lỗi nếu kết nối database thất bại
	}
	logrus.Info("Connected to MongoDB") // Ghi log thông báo đã kết nối database thành công

	// Khởi tạo các db và collections nếu chưa có
	database.EnsureDatabaseAndCollections(global.MongoDB_Session)
	logrus.Info("Ensured database and collections") // Ghi log thông báo đã đảm bảo database và các collection

	// Khơi tạo các index cho các collection
	dbName := global.MongoDB_ServerConfig.MongoDB_DBName
	database.CreateIndexes(context.TODO(), global.MongoDB_Session.Database(dbName).Collection(global.MongoDB_ColNames.Users), usermodels.User{})
	database.CreateIndexes(context.TODO(), global.MongoDB_Session.Database(dbName).Collection(global.MongoDB_ColNames.Franchises), franchisemodels.Franchise{})
	database.CreateIndexes(context.TODO(), global.MongoDB_Session.Database(dbName).Collection(global.MongoDB_ColNames.Vehicles), vehiclemodels.Vehicle{})
	database.CreateIndexes(context.TODO(), global.MongoDB_Session.Database(dbName).Collection(global.MongoDB_ColNames.Bookings), bookingmodels.Booking{})
	database.CreateIndexes(context.TODO(), global.MongoDB_Session.Database(dbName).Collection(global.MongoDB_ColNames.Counters), bookingmodels.Counter{})
	database.CreateIndexes(context.TODO(), global.MongoDB_Session.Database(dbName).Collection(global.MongoDB_ColNames.Notifications), notifmodels.Notification{})
	database.CreateIndexes(context.TODO(), global.MongoDB_Session.Database(dbName).Collection(global.MongoDB_ColNames.Kycs), kycmodels.Kyc{})
	database.CreateIndexes(context.TODO(), global.MongoDB_Session.Database(dbName).Collection(global.MongoDB_ColNames.Services), catalogmodels.Service{})
	database.CreateIndexes(context.TODO(), global.MongoDB_Session.Database(dbName).Collection(global.MongoDB_ColNames.Offers), catalogmodels.Offer{})
	database.CreateIndexes(context.TODO(), global.MongoDB_Session.Database(dbName).Collection(global.MongoDB_ColNames.Tips), catalogmodels.Tip{})
}

// initFirebase khởi tạo Firebase Admin SDK cho FCM push
func initFirebase() {
	cfg := global.MongoDB_ServerConfig

	// Kiểm tra Firebase config có đầy đủ không
	if cfg.FirebaseProjectID == "" || cfg.FirebaseCredentialsPath == "" {
		logrus.Warn("Firebase config không đầy đủ, bỏ qua khởi tạo Firebase")
		return
	}

	err := utility.InitFirebase(cfg.FirebaseProjectID, cfg.FirebaseCredentialsPath)
	if err != nil {
		logrus.Errorf("Failed to initialize Firebase: %v", err)
		// Không fatal, chỉ log warning để hệ thống vẫn chạy được
		return
	}

	logrus.Info("Firebase initialized successfully")
}
