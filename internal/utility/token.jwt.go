package utility

import (
	"fmt"
	"time"

	jwt "github.com/dgrijalva/jwt-go"

	"github.com/Rohitsengar02/fixxev-api/internal/common"
)

// TokenClaims là payload của JWT token cấp cho franchise
type TokenClaims struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	jwt.StandardClaims
}

// CreateToken tạo JWT token ký HS256, hết hạn sau 30 ngày
func CreateToken(secret string, id string, tokenType string) (string, error) {
	claims := TokenClaims{
		ID:   id,
		Type: tokenType,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  time.Now().Unix(),
			ExpiresAt: time.Now().Add(30 * 24 * time.Hour).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("lỗi khi ký token: %w", err)
	}
	return signed, nil
}

// VerifyToken xác thực JWT token và trả về claims
func VerifyToken(secret string, tokenString string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("phương thức ký không hợp lệ: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		if ve, ok := err.(*jwt.ValidationError); ok && ve.Errors&jwt.ValidationErrorExpired != 0 {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrTokenInvalid
	}
	if !token.Valid {
		return nil, common.ErrTokenInvalid
	}
	return claims, nil
}
