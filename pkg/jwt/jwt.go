package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Kind selects which secret a token is signed and verified with.
type Kind string

const (
	KindAccess  Kind = "access"
	KindRefresh Kind = "refresh"
)

// Payload carries the stable identity fields embedded in every token pair.
type Payload struct {
	UserID      string
	FirstName   string
	LastName    string
	Email       string
	IsActivated bool
}

type Claims struct {
	UserID      string `json:"user_id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	IsActivated bool   `json:"is_activated"`
	jwt.RegisteredClaims
}

// Service signs and verifies access/refresh token pairs. The two kinds use
// distinct secrets and lifetimes, so a refresh token never passes an
// access-token check and vice versa.
type Service struct {
	accessKey  []byte
	refreshKey []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewService(accessKey, refreshKey string, accessTTL, refreshTTL time.Duration) *Service {
	return &Service{
		accessKey:  []byte(accessKey),
		refreshKey: []byte(refreshKey),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

func (s *Service) GenerateTokens(payload Payload) (string, string, error) {
	accessToken, err := s.sign(payload, s.accessKey, s.accessTTL)
	if err != nil {
		return "", "", fmt.Errorf("failed to sign access token: %w", err)
	}

	refreshToken, err := s.sign(payload, s.refreshKey, s.refreshTTL)
	if err != nil {
		return "", "", fmt.Errorf("failed to sign refresh token: %w", err)
	}

	return accessToken, refreshToken, nil
}

func (s *Service) ValidateToken(tokenString string, kind Kind) (*Claims, error) {
	key := s.accessKey
	if kind == KindRefresh {
		key = s.refreshKey
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return key, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}

func (s *Service) sign(payload Payload, key []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:      payload.UserID,
		FirstName:   payload.FirstName,
		LastName:    payload.LastName,
		Email:       payload.Email,
		IsActivated: payload.IsActivated,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   payload.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(key)
}
