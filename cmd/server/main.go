package main

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v3"

	franchisesvc "github.com/Rohitsengar02/fixxev-api/internal/api/franchise/service"
	notifmodels "github.com/Rohitsengar02/fixxev-api/internal/api/notification/models"
	notifsvc "github.com/Rohitsengar02/fixxev-api/internal/api/notification/service"
	usersvc "github.com/Rohitsengar02/fixxev-api/internal/api/user/service"
	"github.com/Rohitsengar02/fixxev-api/internal/global"
	"github.com/Rohitsengar02/fixxev-api/internal/logger"
	"github.com/Rohitsengar02/fixxev-api/internal/mailer"
	"github.com/Rohitsengar02/fixxev-api/internal/push"
	"github.com/Rohitsengar02/fixxev-api/internal/realtime"
)

// initLogger khởi tạo và cấu hình logger cho toàn bộ ứng dụng
func initLogger() {
	// Khởi tạo logger với cấu hình mặc định
	// Logger sẽ tự động đọc environment variables để cấu hình
	if err := logger.Init(nil); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}

	// Log thông tin khởi tạo bằng logger mới
	log := logger.GetAppLogger()
	log.Info("Logger system initialized successfully")
}

// initFanout dựng chuỗi fan-out notification: store, hub realtime,
// push dispatcher và mailer. Các kênh không cấu hình được để nil.
func initFanout(hub *realtime.Hub) *notifsvc.FanoutService {
	log := logger.GetAppLogger()
	cfg := global.MongoDB_ServerConfig

	store, err := notifsvc.NewNotificationService()
	if err != nil {
		log.Fatalf("Failed to create notification service: %v", err)
	}

	// Push dispatcher chỉ chạy khi Firebase đã init thành công
	var dispatcher notifsvc.PushDispatcher
	sender, err := push.NewFCMSender()
	if err != nil {
		log.WithError(err).Warn("FCM sender không khả dụng, push notification bị tắt")
	} else {
		d := push.NewDispatcher(sender, cfg.PushQueueSize, cfg.PushWorkers)
		d.Start()
		dispatcher = d
	}

	// Email admin là optional, NewAdminMailer trả về nil khi SMTP không cấu hình
	var adminMailer notifsvc.AdminMailer
	if m := mailer.NewAdminMailer(cfg); m != nil {
		adminMailer = m
	} else {
		log.Info("SMTP không cấu hình, email admin bị tắt")
	}

	// Tra device token theo loại người nhận
	userService, err := usersvc.NewUserService()
	if err != nil {
		log.Fatalf("Failed to create user service: %v", err)
	}
	franchiseService, err := franchisesvc.NewFranchiseService()
	if err != nil {
		log.Fatalf("Failed to create franchise service: %v", err)
	}
	tokenLookup := func(ctx context.Context, recipientType, recipientID string) (string, error) {
		if recipientType == notifmodels.RecipientFranchise {
			return franchiseService.FcmTokenByID(ctx, recipientID)
		}
		return userService.FcmTokenByUID(ctx, recipientID)
	}

	return notifsvc.NewFanoutService(store, hub, dispatcher, adminMailer, tokenLookup)
}

// startRealtimeServer chạy WebSocket server trên listener riêng
func startRealtimeServer(hub *realtime.Hub) {
	log := logger.GetAppLogger()
	address := global.MongoDB_ServerConfig.WSAddress

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", hub.ServeWS)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.WithFields(map[string]interface{}{
					"panic": r,
				}).Error("Realtime server goroutine panic")
			}
		}()

		log.Infof("Starting realtime WebSocket server on %s", address)
		if err := http.ListenAndServe(address, mux); err != nil {
			log.WithError(err).Error("Realtime WebSocket server stopped")
		}
	}()
}

// main_thread khởi tạo và chạy Fiber server
func main_thread(fanoutService *notifsvc.FanoutService) {
	// Khởi tạo app với cấu hình
	app := InitFiberApp(fanoutService)

	// Khởi động server với cấu hình listen
	cfg := global.MongoDB_ServerConfig
	address := cfg.Address

	log := logger.GetAppLogger()
	log.Info("Starting Fiber server...")

	// Helper function để resolve đường dẫn từ thư mục gốc dự án
	resolvePath := func(path string) string {
		if filepath.IsAbs(path) {
			return path
		}
		currentDir, err := os.Getwd()
		if err != nil {
			return path
		}
		for {
			envDir := filepath.Join(currentDir, "config", "env")
			if _, err := os.Stat(envDir); err == nil {
				return filepath.Join(currentDir, path)
			}
			parentDir := filepath.Dir(currentDir)
			if parentDir == currentDir {
				return path
			}
			currentDir = parentDir
		}
	}

	// Kiểm tra xem có bật TLS không
	if cfg.EnableTLS && cfg.TLSCertFile != "" && cfg.TLSKeyFile != "" {
		// Resolve đường dẫn certificate và key
		certPath := resolvePath(cfg.TLSCertFile)
		keyPath := resolvePath(cfg.TLSKeyFile)

		// Kiểm tra file certificate và key tồn tại
		if _, err := os.Stat(certPath); os.IsNotExist(err) {
			log.Fatalf("TLS certificate file not found: %s (resolved from: %s)", certPath, cfg.TLSCertFile)
		}
		if _, err := os.Stat(keyPath); os.IsNotExist(err) {
			log.Fatalf("TLS key file not found: %s (resolved from: %s)", keyPath, cfg.TLSKeyFile)
		}

		// Load certificate và key
		cert, err := tls.LoadX509KeyPair(certPath, keyPath)
		if err != nil {
			log.Fatalf("Error loading TLS certificate: %v", err)
		}

		// Tạo listener với TLS
		ln, err := net.Listen("tcp", address)
		if err != nil {
			log.Fatalf("Error creating listener: %v", err)
		}

		// Cấu hình TLS
		tlsConfig := &tls.Config{
			Certificates: []tls.Certificate{cert},
			MinVersion:   tls.VersionTLS12,
		}

		// Wrap listener với TLS
		tlsListener := tls.NewListener(ln, tlsConfig)

		log.WithFields(map[string]interface{}{
			"address": address,
			"cert":    certPath,
			"key":     keyPath,
		}).Info("Starting server with HTTPS/TLS")

		// Khởi động server với TLS listener
		if err := app.Listener(tlsListener); err != nil {
			log.Fatalf("Error in Fiber Listener with TLS: %v", err)
		}
	} else {
		// Khởi động server HTTP thông thường
		log.WithFields(map[string]interface{}{
			"address":  address,
			"protocol": "HTTP",
		}).Info("Starting server with HTTP")

		listenConfig := fiber.ListenConfig{}
		if err := app.Listen(address, listenConfig); err != nil {
			log.Fatalf("Error in Fiber Listen: %v", err)
		}
	}
}

// Hàm main
func main() {
	// Khởi tạo logger
	initLogger()

	// Khởi tạo các biến toàn cục
	InitGlobal()

	// Khởi tạo registry
	InitRegistry()

	// Hub realtime dùng chung cho WebSocket server và fan-out
	hub := realtime.NewHub()
	startRealtimeServer(hub)

	// Dựng chuỗi fan-out notification
	fanoutService := initFanout(hub)

	// Chạy Fiber server trên main thread
	main_thread(fanoutService)
}
