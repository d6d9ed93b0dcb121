package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Counter - Bộ đếm tuần tự dùng cấp phát bookingId.
// Key dạng "booking_<yymm>", mỗi tháng một bộ đếm riêng, reset bằng cách
// upsert key mới thay vì reset giá trị cũ.
type Counter struct {
	ID  primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Key string             `json:"key" bson:"key" index:"unique"`
	Seq int64              `json:"seq" bson:"seq"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
