// Package bookingsvc chứa nghiệp vụ vòng đời booking: cấp phát bookingId,
// kiểm tra slot trống và fan-out thông báo cho các bên liên quan.
package bookingsvc

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "github.com/Rohitsengar02/fixxev-api/internal/api/base/service"
	bookingmodels "github.com/Rohitsengar02/fixxev-api/internal/api/booking/models"
	notifmodels "github.com/Rohitsengar02/fixxev-api/internal/api/notification/models"
	notifsvc "github.com/Rohitsengar02/fixxev-api/internal/api/notification/service"
	"github.com/Rohitsengar02/fixxev-api/internal/common"
	"github.com/Rohitsengar02/fixxev-api/internal/global"
)

// Khung giờ mặc định của mọi cơ sở, 8 slot sáng và 8 slot chiều
var DefaultTimeSlots = []string{
	"09:00 AM", "09:30 AM", "10:00 AM", "10:30 AM",
	"11:00 AM", "11:30 AM", "12:00 PM", "12:30 PM",
	"02:00 PM", "02:30 PM", "03:00 PM", "03:30 PM",
	"04:00 PM", "04:30 PM", "05:00 PM", "05:30 PM",
}

// Thông điệp gửi cho khách khi booking chuyển trạng thái
var statusMessages = map[string]string{
	bookingmodels.StatusConfirmed:  "Your booking has been confirmed!",
	bookingmodels.StatusInProgress: "Your service is now in progress.",
	bookingmodels.StatusCompleted:  "Your service has been completed. Thank you!",
	bookingmodels.StatusCancelled:  "Your booking has been cancelled.",
}

// BookingService là cấu trúc chứa các phương thức liên quan đến Booking
type BookingService struct {
	*basesvc.BaseServiceMongoImpl[bookingmodels.Booking]
	counters *CounterService
	fanout   *notifsvc.FanoutService
}

// NewBookingService tạo mới BookingService với fan-out service được inject
func NewBookingService(fanout *notifsvc.FanoutService) (*BookingService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Bookings)
	if !exist {
		return nil, fmt.Errorf("failed to get bookings collection: %v", common.ErrNotFound)
	}

	counters, err := NewCounterService()
	if err != nil {
		return nil, err
	}

	return &BookingService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[bookingmodels.Booking](collection),
		counters:             counters,
		fanout:               fanout,
	}, nil
}

// FormatBookingID dựng bookingId từ thời điểm và số tuần tự: BK + yy + mm + 5 chữ số
func FormatBookingID(t time.Time, seq int64) string {
	return fmt.Sprintf("BK%02d%02d%05d", t.Year()%100, int(t.Month()), seq)
}

// CounterKey trả về key bộ đếm theo tháng của thời điểm t
func CounterKey(t time.Time) string {
	return fmt.Sprintf("booking_%02d%02d", t.Year()%100, int(t.Month()))
}

// NextBookingID cấp phát bookingId tiếp theo qua counter atomic,
// không đếm document nên không bị trùng khi tạo đồng thời
func (s *BookingService) NextBookingID(ctx context.Context) (string, error) {
	now := time.Now()
	seq, err := s.counters.NextSequence(ctx, CounterKey(now))
	if err != nil {
		return "", err
	}
	return FormatBookingID(now, seq), nil
}

// normalizeDate cắt phần ngày "YYYY-MM-DD" từ chuỗi ISO datetime nếu client gửi kèm giờ
func normalizeDate(date string) string {
	if len(date) > 10 {
		return date[:10]
	}
	return date
}

// Create tạo booking mới ở trạng thái pending và thông báo cho
// khách, cơ sở và admin. Lỗi thông báo không làm fail việc tạo booking.
func (s *BookingService) Create(ctx context.Context, booking bookingmodels.Booking) (bookingmodels.Booking, error) {
	var zero bookingmodels.Booking

	bookingID, err := s.NextBookingID(ctx)
	if err != nil {
		return zero, err
	}
	booking.BookingID = bookingID
	booking.AppointmentDate = normalizeDate(booking.AppointmentDate)
	if booking.Status == "" {
		booking.Status = bookingmodels.StatusPending
	}
	if booking.PaymentStatus == "" {
		booking.PaymentStatus = bookingmodels.PaymentPending
	}

	created, err := s.InsertOne(ctx, booking)
	if err != nil {
		return zero, err
	}

	userName := created.UserDetails.Name
	if userName == "" {
		userName = "Customer"
	}
	franchiseName := created.FranchiseDetails.Name
	if franchiseName == "" {
		franchiseName = "Franchise"
	}

	s.fanout.NotifyAll(ctx, []notifmodels.Notification{
		{
			RecipientType:    notifmodels.RecipientUser,
			RecipientID:      created.UserID,
			Title:            "Booking Confirmed",
			Message:          fmt.Sprintf("Your booking #%s has been created successfully.", created.BookingID),
			Type:             notifmodels.TypeBookingCreated,
			RelatedBookingID: created.BookingID,
			Data: map[string]interface{}{
				"bookingId":     created.BookingID,
				"franchiseName": created.FranchiseDetails.Name,
			},
		},
		{
			RecipientType:    notifmodels.RecipientFranchise,
			RecipientID:      created.FranchiseID.Hex(),
			Title:            "New Booking Received",
			Message:          fmt.Sprintf("New booking #%s from %s", created.BookingID, userName),
			Type:             notifmodels.TypeBookingCreated,
			RelatedBookingID: created.BookingID,
			Data: map[string]interface{}{
				"bookingId": created.BookingID,
				"userName":  created.UserDetails.Name,
			},
		},
		{
			RecipientType:    notifmodels.RecipientAdmin,
			RecipientID:      notifmodels.RecipientAdmin,
			Title:            "New Booking Created",
			Message:          fmt.Sprintf("Booking #%s created at %s", created.BookingID, franchiseName),
			Type:             notifmodels.TypeBookingCreated,
			RelatedBookingID: created.BookingID,
			Data: map[string]interface{}{
				"bookingId": created.BookingID,
			},
		},
	})

	return created, nil
}

// AdminPage là kết quả phân trang danh sách booking cho admin
type AdminPage struct {
	Bookings   []bookingmodels.Booking `json:"bookings"`
	Total      int64                   `json:"total"`
	Page       int64                   `json:"page"`
	TotalPages int64                   `json:"totalPages"`
}

// ListAdmin trả về toàn bộ booking có phân trang, mới nhất trước,
// lọc theo status nếu có
func (s *BookingService) ListAdmin(ctx context.Context, status string, page, limit int64) (*AdminPage, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}

	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	result, err := s.FindWithPagination(ctx, filter, page, limit, opts)
	if err != nil {
		return nil, err
	}

	return &AdminPage{
		Bookings:   result.Items,
		Total:      result.Total,
		Page:       page,
		TotalPages: result.TotalPage,
	}, nil
}

// ListByUser trả về booking của một khách, mới nhất trước
func (s *BookingService) ListByUser(ctx context.Context, userID string, status string) ([]bookingmodels.Booking, error) {
	filter := bson.M{"userId": userID}
	if status != "" {
		filter["status"] = status
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return s.Find(ctx, filter, opts)
}

// ListByFranchise trả về booking của một cơ sở theo lịch hẹn tăng dần,
// lọc theo status và ngày hẹn nếu có
func (s *BookingService) ListByFranchise(ctx context.Context, franchiseID primitive.ObjectID, status string, date string) ([]bookingmodels.Booking, error) {
	filter := bson.M{"franchiseId": franchiseID}
	if status != "" {
		filter["status"] = status
	}
	if date != "" {
		filter["appointmentDate"] = normalizeDate(date)
	}

	opts := options.Find().SetSort(bson.D{
		{Key: "appointmentDate", Value: 1},
		{Key: "timeSlot", Value: 1},
	})
	return s.Find(ctx, filter, opts)
}

// anyIDFilter dựng filter khớp cả _id lẫn bookingId để client
// dùng được cả hai loại định danh
func anyIDFilter(id string) bson.M {
	if objID, err := primitive.ObjectIDFromHex(id); err == nil {
		return bson.M{"$or": bson.A{
			bson.M{"_id": objID},
			bson.M{"bookingId": id},
		}}
	}
	return bson.M{"bookingId": id}
}

// FindByAnyID tìm booking theo ObjectID hoặc bookingId
func (s *BookingService) FindByAnyID(ctx context.Context, id string) (bookingmodels.Booking, error) {
	return s.FindOne(ctx, anyIDFilter(id), nil)
}

// capitalize viết hoa ký tự đầu cho tiêu đề thông báo trạng thái
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// statusNotificationType trả về loại notification trong closed set
// tương ứng với trạng thái booking
func statusNotificationType(status string) string {
	switch status {
	case bookingmodels.StatusConfirmed:
		return notifmodels.TypeBookingConfirmed
	case bookingmodels.StatusInProgress:
		return notifmodels.TypeBookingInProgress
	case bookingmodels.StatusCompleted:
		return notifmodels.TypeBookingCompleted
	case bookingmodels.StatusCancelled:
		return notifmodels.TypeBookingCancelled
	default:
		return notifmodels.TypeBookingUpdated
	}
}

// UpdateStatus chuyển trạng thái booking và báo cho khách qua notification,
// realtime event và push. Mọi bước thông báo đều best-effort.
func (s *BookingService) UpdateStatus(ctx context.Context, id string, status string) (bookingmodels.Booking, error) {
	var zero bookingmodels.Booking

	update := &basesvc.UpdateData{
		Set: map[string]interface{}{"status": status},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	booking, err := s.FindOneAndUpdate(ctx, anyIDFilter(id), update, opts)
	if err != nil {
		return zero, err
	}

	message, ok := statusMessages[status]
	if !ok {
		message = fmt.Sprintf("Booking status updated to %s", status)
	}

	_, notifErr := s.fanout.Notify(ctx, notifmodels.Notification{
		RecipientType:    notifmodels.RecipientUser,
		RecipientID:      booking.UserID,
		Title:            fmt.Sprintf("Booking %s", capitalize(status)),
		Message:          message,
		Type:             statusNotificationType(status),
		RelatedBookingID: booking.BookingID,
		Data: map[string]interface{}{
			"bookingId": booking.BookingID,
			"status":    status,
		},
	})
	if notifErr != nil {
		// Booking đã đổi trạng thái thành công, chỉ mất thông báo
		logrus.WithFields(logrus.Fields{
			"bookingId": booking.BookingID,
			"status":    status,
		}).Warnf("Failed to notify user about status change: %v", notifErr)
	}

	s.fanout.PublishBookingUpdate(booking.UserID, booking.BookingID, status)

	return booking, nil
}

// Cancel hủy booking và báo cho cơ sở cùng admin
func (s *BookingService) Cancel(ctx context.Context, id string) (bookingmodels.Booking, error) {
	var zero bookingmodels.Booking

	update := &basesvc.UpdateData{
		Set: map[string]interface{}{"status": bookingmodels.StatusCancelled},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	booking, err := s.FindOneAndUpdate(ctx, anyIDFilter(id), update, opts)
	if err != nil {
		return zero, err
	}

	s.fanout.NotifyAll(ctx, []notifmodels.Notification{
		{
			RecipientType:    notifmodels.RecipientFranchise,
			RecipientID:      booking.FranchiseID.Hex(),
			Title:            "Booking Cancelled",
			Message:          fmt.Sprintf("Booking #%s has been cancelled by customer.", booking.BookingID),
			Type:             notifmodels.TypeBookingCancelled,
			RelatedBookingID: booking.BookingID,
		},
		{
			RecipientType:    notifmodels.RecipientAdmin,
			RecipientID:      notifmodels.RecipientAdmin,
			Title:            "Booking Cancelled",
			Message:          fmt.Sprintf("Booking #%s cancelled at %s", booking.BookingID, booking.FranchiseDetails.Name),
			Type:             notifmodels.TypeBookingCancelled,
			RelatedBookingID: booking.BookingID,
		},
	})

	return booking, nil
}

// SlotAvailability là kết quả kiểm tra khung giờ trống của một cơ sở trong ngày
type SlotAvailability struct {
	AvailableSlots []string `json:"availableSlots"`
	BookedSlots    []string `json:"bookedSlots"`
	TotalSlots     int      `json:"totalSlots"`
}

// AvailableSlots trả về khung giờ còn trống và đã đặt của một cơ sở trong ngày.
// Booking đã hủy không giữ slot.
func (s *BookingService) AvailableSlots(ctx context.Context, franchiseID primitive.ObjectID, date string) (*SlotAvailability, error) {
	filter := bson.M{
		"franchiseId":     franchiseID,
		"appointmentDate": normalizeDate(date),
		"status":          bson.M{"$nin": bson.A{bookingmodels.StatusCancelled}},
	}

	opts := options.Find().SetProjection(bson.M{"timeSlot": 1})
	bookings, err := s.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	bookedSlots := make([]string, 0, len(bookings))
	for _, b := range bookings {
		bookedSlots = append(bookedSlots, b.TimeSlot)
	}

	return computeSlotAvailability(bookedSlots), nil
}

// computeSlotAvailability chia khung giờ chuẩn thành phần còn trống và phần đã đặt
func computeSlotAvailability(bookedSlots []string) *SlotAvailability {
	booked := make(map[string]bool, len(bookedSlots))
	for _, slot := range bookedSlots {
		booked[slot] = true
	}

	availableSlots := make([]string, 0, len(DefaultTimeSlots))
	for _, slot := range DefaultTimeSlots {
		if !booked[slot] {
			availableSlots = append(availableSlots, slot)
		}
	}

	return &SlotAvailability{
		AvailableSlots: availableSlots,
		BookedSlots:    bookedSlots,
		TotalSlots:     len(DefaultTimeSlots),
	}
}
