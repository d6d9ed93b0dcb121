package usersvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "github.com/Rohitsengar02/fixxev-api/internal/api/base/service"
	bookingmodels "github.com/Rohitsengar02/fixxev-api/internal/api/booking/models"
	catalogmodels "github.com/Rohitsengar02/fixxev-api/internal/api/catalog/models"
	franchisemodels "github.com/Rohitsengar02/fixxev-api/internal/api/franchise/models"
	notifmodels "github.com/Rohitsengar02/fixxev-api/internal/api/notification/models"
	usermodels "github.com/Rohitsengar02/fixxev-api/internal/api/user/models"
	vehiclemodels "github.com/Rohitsengar02/fixxev-api/internal/api/vehicle/models"
	"github.com/Rohitsengar02/fixxev-api/internal/common"
	"github.com/Rohitsengar02/fixxev-api/internal/global"
)

// DashboardUser - Phần hồ sơ khách trên màn hình tổng quan
type DashboardUser struct {
	DisplayName    string               `json:"displayName"`
	PhotoURL       string               `json:"photoURL,omitempty"`
	Addresses      []usermodels.Address `json:"addresses"`
	DefaultAddress *usermodels.Address  `json:"defaultAddress"`
}

// Dashboard - Dữ liệu màn hình tổng quan của app khách
type Dashboard struct {
	User                DashboardUser               `json:"user"`
	Vehicles            []vehiclemodels.Vehicle     `json:"vehicles"`
	DefaultVehicle      *vehiclemodels.Vehicle      `json:"defaultVehicle"`
	OngoingBookings     []bookingmodels.Booking     `json:"ongoingBookings"`
	BookingCounts       map[string]int64            `json:"bookingCounts"`
	UnreadNotifications int64                       `json:"unreadNotifications"`
	NearbyCenters       []franchisemodels.Franchise `json:"nearbyCenters"`
	AllServices         []catalogmodels.Service     `json:"allServices"`
	Offers              []catalogmodels.Offer       `json:"offers"`
	ExpertTips          []catalogmodels.Tip         `json:"expertTips"`
}

func collectionStore[T any](name string) (*basesvc.BaseServiceMongoImpl[T], error) {
	collection, exist := global.RegistryCollections.Get(name)
	if !exist {
		return nil, fmt.Errorf("failed to get %s collection: %v", name, common.ErrNotFound)
	}
	return basesvc.NewBaseServiceMongo[T](collection), nil
}

// GetDashboard tổng hợp dữ liệu màn hình chính: xe, booking đang chạy,
// cơ sở gần đây, dịch vụ, ưu đãi và mẹo chăm sóc xe
func (s *UserService) GetDashboard(ctx context.Context, uid string) (*Dashboard, error) {
	user, err := s.GetByUID(ctx, uid)
	if err != nil {
		return nil, err
	}

	vehicleStore, err := collectionStore[vehiclemodels.Vehicle](global.MongoDB_ColNames.Vehicles)
	if err != nil {
		return nil, err
	}
	bookingStore, err := collectionStore[bookingmodels.Booking](global.MongoDB_ColNames.Bookings)
	if err != nil {
		return nil, err
	}
	franchiseStore, err := collectionStore[franchisemodels.Franchise](global.MongoDB_ColNames.Franchises)
	if err != nil {
		return nil, err
	}
	serviceStore, err := collectionStore[catalogmodels.Service](global.MongoDB_ColNames.Services)
	if err != nil {
		return nil, err
	}
	offerStore, err := collectionStore[catalogmodels.Offer](global.MongoDB_ColNames.Offers)
	if err != nil {
		return nil, err
	}
	tipStore, err := collectionStore[catalogmodels.Tip](global.MongoDB_ColNames.Tips)
	if err != nil {
		return nil, err
	}
	notificationCol, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Notifications)
	if !exist {
		return nil, fmt.Errorf("failed to get notifications collection: %v", common.ErrNotFound)
	}

	vehicles, err := vehicleStore.Find(ctx, bson.M{"userId": uid},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}
	var defaultVehicle *vehiclemodels.Vehicle
	for i := range vehicles {
		if vehicles[i].IsDefault {
			defaultVehicle = &vehicles[i]
			break
		}
	}
	if defaultVehicle == nil && len(vehicles) > 0 {
		defaultVehicle = &vehicles[0]
	}

	ongoingBookings, err := bookingStore.Find(ctx, bson.M{
		"userId": uid,
		"status": bson.M{"$in": bson.A{
			bookingmodels.StatusPending,
			bookingmodels.StatusConfirmed,
			bookingmodels.StatusInProgress,
		}},
	}, options.Find().SetSort(bson.D{{Key: "appointmentDate", Value: 1}}).SetLimit(2))
	if err != nil {
		return nil, err
	}

	bookingCounts := map[string]int64{}
	for _, status := range []string{
		bookingmodels.StatusPending,
		bookingmodels.StatusConfirmed,
		bookingmodels.StatusInProgress,
		bookingmodels.StatusCompleted,
		bookingmodels.StatusCancelled,
	} {
		count, err := bookingStore.CountDocuments(ctx, bson.M{"userId": uid, "status": status})
		if err != nil {
			return nil, err
		}
		bookingCounts[status] = count
	}

	unread, err := countUnreadNotifications(ctx, notificationCol, uid)
	if err != nil {
		return nil, err
	}

	nearbyCenters, err := franchiseStore.Find(ctx,
		bson.M{"status": franchisemodels.StatusActive},
		options.Find().SetLimit(3))
	if err != nil {
		return nil, err
	}
	for i := range nearbyCenters {
		nearbyCenters[i].Password = ""
	}

	allServices, err := serviceStore.Find(ctx, bson.M{"status": catalogmodels.CatalogActive}, nil)
	if err != nil {
		return nil, err
	}

	latestActive := func() *options.FindOptions {
		return options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}).SetLimit(5)
	}
	offers, err := offerStore.Find(ctx, bson.M{"status": catalogmodels.CatalogActive}, latestActive())
	if err != nil {
		return nil, err
	}
	expertTips, err := tipStore.Find(ctx, bson.M{"status": catalogmodels.CatalogActive}, latestActive())
	if err != nil {
		return nil, err
	}

	if user.Addresses == nil {
		user.Addresses = []usermodels.Address{}
	}

	return &Dashboard{
		User: DashboardUser{
			DisplayName:    user.DisplayName,
			PhotoURL:       user.PhotoURL,
			Addresses:      user.Addresses,
			DefaultAddress: user.DefaultAddress(),
		},
		Vehicles:            vehicles,
		DefaultVehicle:      defaultVehicle,
		OngoingBookings:     ongoingBookings,
		BookingCounts:       bookingCounts,
		UnreadNotifications: unread,
		NearbyCenters:       nearbyCenters,
		AllServices:         allServices,
		Offers:              offers,
		ExpertTips:          expertTips,
	}, nil
}

func countUnreadNotifications(ctx context.Context, collection *mongo.Collection, uid string) (int64, error) {
	count, err := collection.CountDocuments(ctx, bson.M{
		"recipientType": notifmodels.RecipientUser,
		"recipientId":   uid,
		"isRead":        false,
	})
	if err != nil {
		return 0, common.ConvertMongoError(err)
	}
	return count, nil
}
