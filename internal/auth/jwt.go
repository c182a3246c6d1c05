package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// TokenManager signs and validates access tokens. The secret and expiry
// come from configuration; handlers never touch the signing key.
type TokenManager struct {
	secret []byte
	method jwt.SigningMethod
	expiry time.Duration
}

func NewTokenManager(secret, algorithm string, expiry time.Duration) (*TokenManager, error) {
	method := jwt.GetSigningMethod(algorithm)
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unsupported signing algorithm %q", algorithm)
	}

	return &TokenManager{
		secret: []byte(secret),
		method: method,
		expiry: expiry,
	}, nil
}

// Generate creates a signed token carrying the username and expiry.
func (m *TokenManager) Generate(username string) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   username,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.expiry)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}

	token := jwt.NewWithClaims(m.method, claims)
	return token.SignedString(m.secret)
}

// Parse validates the token and returns the username it was issued for.
func (m *TokenManager) Parse(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != m.method.Alg() {
			return nil, fmt.Errorf("unexpected signing method %q", token.Method.Alg())
		}
		return m.secret, nil
	})
	if err != nil {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
