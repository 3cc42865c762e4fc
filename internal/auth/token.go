package auth

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"

	"stagelink_backend/internal/models"
)

var (
	ErrInvalidToken = errors.New("invalid token")

	signingSecret []byte
)

// Claims are what this backend reads out of a bearer token. Tokens are
// issued by the identity service; this package only verifies them.
type Claims struct {
	UserID string          `json:"uid"`
	Role   models.UserRole `json:"role"`
	jwt.RegisteredClaims
}

// Init sets the shared HMAC secret used to verify tokens.
func Init(secret string) {
	signingSecret = []byte(secret)
}

// ParseToken verifies the signature and expiry of a bearer token and
// returns its claims.
func ParseToken(tokenStr string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return signingSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
