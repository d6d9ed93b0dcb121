package utility

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Rohitsengar02/fixxev-api/internal/common"
)

func TestCreateAndVerifyToken(t *testing.T) {
	secret := "test-secret"

	token, err := CreateToken(secret, "6655f2a1b3c4d5e6f7a8b9c0", "franchise")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := VerifyToken(secret, token)
	require.NoError(t, err)
	assert.Equal(t, "6655f2a1b3c4d5e6f7a8b9c0", claims.ID)
	assert.Equal(t, "franchise", claims.Type)
	assert.Greater(t, claims.ExpiresAt, claims.IssuedAt)
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	token, err := CreateToken("secret-a", "id01", "franchise")
	require.NoError(t, err)

	_, err = VerifyToken("secret-b", token)
	assert.Equal(t, common.ErrTokenInvalid, err)
}

func TestVerifyToken_Garbage(t *testing.T) {
	_, err := VerifyToken("secret", "not.a.jwt")
	assert.Equal(t, common.ErrTokenInvalid, err)
}

func TestHashAndComparePassword(t *testing.T) {
	hashed, err := HashPassword("matkhau123")
	require.NoError(t, err)
	require.NotEqual(t, "matkhau123", hashed)

	assert.True(t, ComparePassword(hashed, "matkhau123"))
	assert.False(t, ComparePassword(hashed, "matkhau124"))
}

func TestContains(t *testing.T) {
	assert.True(t, Contains([]string{"pending", "confirmed"}, "pending"))
	assert.False(t, Contains([]string{"pending", "confirmed"}, "completed"))
	assert.False(t, Contains([]string(nil), "pending"))
	assert.True(t, Contains([]int{1, 2, 3}, 2))
}

func TestString2ObjectID(t *testing.T) {
	hex := "6655f2a1b3c4d5e6f7a8b9c0"
	id := String2ObjectID(hex)
	assert.Equal(t, hex, id.Hex())

	// Chuỗi hex sai trả về ObjectID rỗng
	assert.Equal(t, primitive.NilObjectID, String2ObjectID("khong-phai-hex"))
}

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, ValidateEmail("admin@fixxev.com"))
	assert.Error(t, ValidateEmail("khong-phai-email"))
}
