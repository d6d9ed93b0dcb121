package basesvc

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogmodels "github.com/Rohitsengar02/fixxev-api/internal/api/catalog/models"
	franchisemodels "github.com/Rohitsengar02/fixxev-api/internal/api/franchise/models"
)

type taggedRecord struct {
	_Relationships struct{} `relationship:"collection:bookings,field:refId,msg:Còn %d booking tham chiếu.|collection:vehicles,field:refId,optional:true,cascade:true"`

	Name string `json:"name"`
}

func TestParseRelationshipTag_MarkerField(t *testing.T) {
	rels := ParseRelationshipTag(reflect.TypeOf(taggedRecord{}))
	require.Len(t, rels, 2, "Tag có 2 định nghĩa phân tách bằng |")

	assert.Equal(t, "bookings", rels[0].CollectionName)
	assert.Equal(t, "refId", rels[0].FieldName)
	assert.Equal(t, "Còn %d booking tham chiếu.", rels[0].ErrorMessage)
	assert.False(t, rels[0].Optional)
	assert.False(t, rels[0].Cascade)

	assert.Equal(t, "vehicles", rels[1].CollectionName)
	assert.True(t, rels[1].Optional)
	assert.True(t, rels[1].Cascade)
	assert.NotEmpty(t, rels[1].ErrorMessage, "Thiếu msg thì dùng message mặc định")
}

func TestParseRelationshipTag_NoTag(t *testing.T) {
	type plain struct {
		Name string
	}
	assert.Empty(t, ParseRelationshipTag(reflect.TypeOf(plain{})))
}

// Các model có tham chiếu ObjectID từ booking phải khai báo ràng buộc
// để tầng CRUD chặn xóa khi còn booking trỏ tới.
func TestParseRelationshipTag_DomainModels(t *testing.T) {
	rels := ParseRelationshipTag(reflect.TypeOf(franchisemodels.Franchise{}))
	require.NotEmpty(t, rels, "Franchise phải khai báo ràng buộc với bookings")
	assert.Equal(t, "bookings", rels[0].CollectionName)
	assert.Equal(t, "franchiseId", rels[0].FieldName)
	assert.False(t, rels[0].Cascade)

	rels = ParseRelationshipTag(reflect.TypeOf(catalogmodels.Service{}))
	require.NotEmpty(t, rels, "Service phải khai báo ràng buộc với bookings")
	assert.Equal(t, "bookings", rels[0].CollectionName)
	assert.Equal(t, "services.serviceId", rels[0].FieldName)
	assert.True(t, rels[0].Optional)
}
