package services

import (
	"os"
	"time"

	"github.com/dgrijalva/jwt-go"

	"campsite/errors"
)

const tokenLifetime = 7 * 24 * time.Hour

// Claims is the JWT payload issued at signup/login.
type Claims struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	jwt.StandardClaims
}

func jwtSecret() []byte {
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		return []byte(secret)
	}
	// Development fallback, production deployments must set JWT_SECRET.
	return []byte("camping-place-manager-secret-key")
}

// GenerateToken signs a token for the employee, valid for seven days.
func GenerateToken(id uint, email string) (string, error) {
	claims := Claims{
		ID:    id,
		Email: email,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  time.Now().Unix(),
			ExpiresAt: time.Now().Add(tokenLifetime).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret())
}

// VerifyToken checks signature and expiry and returns the claims.
// The same verification guards REST requests and websocket connects.
func VerifyToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return jwtSecret(), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.NewUnauthorized(errors.ErrCodeInvalidToken, "Ungültiges oder abgelaufenes Token.")
	}

	return claims, nil
}
