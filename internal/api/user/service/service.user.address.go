package usersvc

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "github.com/Rohitsengar02/fixxev-api/internal/api/base/service"
	usermodels "github.com/Rohitsengar02/fixxev-api/internal/api/user/models"
	"github.com/Rohitsengar02/fixxev-api/internal/common"
)

// ListAddresses trả về sổ địa chỉ của khách
func (s *UserService) ListAddresses(ctx context.Context, uid string) ([]usermodels.Address, error) {
	user, err := s.GetByUID(ctx, uid)
	if err != nil {
		return nil, err
	}
	if user.Addresses == nil {
		return []usermodels.Address{}, nil
	}
	return user.Addresses, nil
}

// saveAddresses ghi lại toàn bộ sổ địa chỉ sau khi sửa trong memory.
// Sổ địa chỉ của một khách nhỏ nên thay cả array đơn giản và an toàn
// hơn thao tác positional từng phần tử.
func (s *UserService) saveAddresses(ctx context.Context, uid string, addresses []usermodels.Address) error {
	_, err := s.UpdateOne(ctx, bson.M{"uid": uid}, &basesvc.UpdateData{
		Set: map[string]interface{}{"addresses": addresses},
	}, nil)
	return err
}

// AddAddress thêm địa chỉ mới. Cờ isDefault bật sẽ tắt cờ của các địa chỉ cũ.
func (s *UserService) AddAddress(ctx context.Context, uid string, address usermodels.Address) (*usermodels.Address, error) {
	user, err := s.GetByUID(ctx, uid)
	if err != nil {
		return nil, err
	}

	if address.Label == "" {
		address.Label = "Home"
	}
	address.ID = primitive.NewObjectID()

	addresses := user.Addresses
	if address.IsDefault {
		for i := range addresses {
			addresses[i].IsDefault = false
		}
	}
	addresses = append(addresses, address)

	if err := s.saveAddresses(ctx, uid, addresses); err != nil {
		return nil, err
	}
	return &address, nil
}

// AddressPatch chứa các thay đổi cho một địa chỉ, field nil giữ nguyên giá trị cũ
type AddressPatch struct {
	Label     string
	Line1     string
	Line2     *string
	City      string
	State     string
	Pincode   string
	IsDefault *bool
}

// UpdateAddress sửa một địa chỉ theo id sub-document
func (s *UserService) UpdateAddress(ctx context.Context, uid string, addressID primitive.ObjectID, patch AddressPatch) (*usermodels.Address, error) {
	user, err := s.GetByUID(ctx, uid)
	if err != nil {
		return nil, err
	}

	addresses := user.Addresses
	idx := -1
	for i := range addresses {
		if addresses[i].ID == addressID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, common.ErrNotFound
	}

	if patch.IsDefault != nil && *patch.IsDefault {
		for i := range addresses {
			if i != idx {
				addresses[i].IsDefault = false
			}
		}
	}

	addr := &addresses[idx]
	if patch.Label != "" {
		addr.Label = patch.Label
	}
	if patch.Line1 != "" {
		addr.Line1 = patch.Line1
	}
	if patch.Line2 != nil {
		addr.Line2 = *patch.Line2
	}
	if patch.City != "" {
		addr.City = patch.City
	}
	if patch.State != "" {
		addr.State = patch.State
	}
	if patch.Pincode != "" {
		addr.Pincode = patch.Pincode
	}
	if patch.IsDefault != nil {
		addr.IsDefault = *patch.IsDefault
	}

	if err := s.saveAddresses(ctx, uid, addresses); err != nil {
		return nil, err
	}
	return addr, nil
}

// DeleteAddress xóa một địa chỉ theo id sub-document
func (s *UserService) DeleteAddress(ctx context.Context, uid string, addressID primitive.ObjectID) error {
	user, err := s.GetByUID(ctx, uid)
	if err != nil {
		return err
	}

	addresses := make([]usermodels.Address, 0, len(user.Addresses))
	for _, addr := range user.Addresses {
		if addr.ID != addressID {
			addresses = append(addresses, addr)
		}
	}
	if len(addresses) == len(user.Addresses) {
		return common.ErrNotFound
	}

	return s.saveAddresses(ctx, uid, addresses)
}
