package authentication

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
)

var ErrInvalidToken = errors.New("invalid token")

// GenerateToken signs an HS256 access token for the given user id.
// It returns the token and its jti.
func GenerateToken(secret string, id uint, ttl time.Duration) (string, string, error) {
	secretKey := []byte(secret)
	token := jwt.New(jwt.SigningMethodHS256)

	jti := uuid.New().String()

	claims := token.Claims.(jwt.MapClaims)
	claims["id"] = id
	claims["jti"] = jti
	claims["exp"] = time.Now().Add(ttl).Unix()
	claims["iat"] = time.Now().Unix()

	tokenString, err := token.SignedString(secretKey)

	if err != nil {
		return "", "", err
	}

	return tokenString, jti, nil
}

// ParseToken validates the token signature and expiry and returns the user id it carries.
// A "Bearer " prefix is accepted.
func ParseToken(secret string, tokenString string) (uint, error) {
	secretKey := []byte(secret)
	tokenString = strings.TrimPrefix(tokenString, "Bearer ")

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}

		return secretKey, nil
	})

	if err != nil {
		return 0, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return 0, ErrInvalidToken
	}

	id, ok := claims["id"].(float64)
	if !ok || id <= 0 {
		return 0, ErrInvalidToken
	}

	return uint(id), nil
}
