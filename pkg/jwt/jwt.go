package jwt

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/uniqpixl/cowors-backend-admin/pkg/errcode"
)

// Claims represents the identity claims issued by the platform's auth service.
// This backend only consumes them; it never issues session tokens itself.
type Claims struct {
	UserId string `json:"user_id"`
	Role   string `json:"role"` // "user" | "partner" | "admin"
	jwt.RegisteredClaims
}

// GenerateToken generates a signed token. Used by tests and tooling; the
// production issuer is the external auth service.
func GenerateToken(userId, role, secret string, expireHours int) (string, error) {
	claims := Claims{
		UserId: userId,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(expireHours) * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Issuer:    "cowors-admin",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken parses and validates a JWT token
func ParseToken(tokenString, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})

	if err != nil {
		return nil, errcode.ErrTokenInvalid.Wrap(err)
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, errcode.ErrTokenInvalid
}
