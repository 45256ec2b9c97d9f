package models

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	AccessCookieName    = "access_token"
	AuthenticationScope = "authentication"
)

type JWTClaims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Kind   string `json:"kind"`
	Scope  string `json:"scope"`
	jwt.RegisteredClaims
}

// NewAccessToken signs an HS256 access token for user that expires at expiry.
func NewAccessToken(user User, secret string, expiry time.Time) (string, error) {
	claims := JWTClaims{
		UserID: user.UserID,
		Email:  user.Email,
		Kind:   user.Kind,
		Scope:  AuthenticationScope,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.UserID,
			ExpiresAt: jwt.NewNumericDate(expiry),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("signing access token: %w", err)
	}
	return signed, nil
}

func ValidateJWTToken(tokenString string, secret string) (*JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})

	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(*JWTClaims)
	if !ok || claims.Scope != AuthenticationScope {
		return nil, fmt.Errorf("invalid token claims")
	}

	return claims, nil
}
