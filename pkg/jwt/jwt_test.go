package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestService() *Service {
	return NewService("access-secret", "refresh-secret", 15*time.Minute, 30*24*time.Hour)
}

func testPayload() Payload {
	return Payload{
		UserID:      "user-123",
		FirstName:   "Alex",
		LastName:    "Fisher",
		Email:       "alex@example.com",
		IsActivated: true,
	}
}

func TestNewService(t *testing.T) {
	service := newTestService()

	assert.NotNil(t, service)
	assert.Equal(t, []byte("access-secret"), service.accessKey)
	assert.Equal(t, []byte("refresh-secret"), service.refreshKey)
}

func TestGenerateTokens(t *testing.T) {
	service := newTestService()

	access, refresh, err := service.GenerateTokens(testPayload())

	assert.NoError(t, err)
	assert.NotEmpty(t, access)
	assert.NotEmpty(t, refresh)
	assert.NotEqual(t, access, refresh)
}

func TestValidateToken_RoundTrip(t *testing.T) {
	service := newTestService()
	payload := testPayload()

	access, refresh, err := service.GenerateTokens(payload)
	assert.NoError(t, err)

	accessClaims, err := service.ValidateToken(access, KindAccess)
	assert.NoError(t, err)
	assert.Equal(t, payload.UserID, accessClaims.UserID)
	assert.Equal(t, payload.Email, accessClaims.Email)
	assert.True(t, accessClaims.IsActivated)

	refreshClaims, err := service.ValidateToken(refresh, KindRefresh)
	assert.NoError(t, err)
	assert.Equal(t, payload.UserID, refreshClaims.UserID)
}

func TestValidateToken_WrongKind(t *testing.T) {
	service := newTestService()

	access, refresh, err := service.GenerateTokens(testPayload())
	assert.NoError(t, err)

	// Tokens of one kind must not validate as the other
	_, err = service.ValidateToken(access, KindRefresh)
	assert.Error(t, err)

	_, err = service.ValidateToken(refresh, KindAccess)
	assert.Error(t, err)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	service1 := newTestService()
	service2 := NewService("other-access", "other-refresh", 15*time.Minute, 30*24*time.Hour)

	access, _, err := service1.GenerateTokens(testPayload())
	assert.NoError(t, err)

	_, err = service2.ValidateToken(access, KindAccess)
	assert.Error(t, err)
}

func TestValidateToken_InvalidToken(t *testing.T) {
	service := newTestService()

	_, err := service.ValidateToken("invalid-token", KindAccess)
	assert.Error(t, err)
}

func TestValidateToken_EmptyToken(t *testing.T) {
	service := newTestService()

	_, err := service.ValidateToken("", KindAccess)
	assert.Error(t, err)
}

func TestValidateToken_ExpirationSet(t *testing.T) {
	service := newTestService()

	access, _, err := service.GenerateTokens(testPayload())
	assert.NoError(t, err)

	claims, err := service.ValidateToken(access, KindAccess)
	assert.NoError(t, err)
	assert.NotNil(t, claims.ExpiresAt)
	assert.True(t, time.Now().Before(claims.ExpiresAt.Time))
}

func TestValidateToken_ExpiredToken(t *testing.T) {
	service := NewService("access-secret", "refresh-secret", -time.Minute, -time.Minute)

	access, _, err := service.GenerateTokens(testPayload())
	assert.NoError(t, err)

	_, err = service.ValidateToken(access, KindAccess)
	assert.Error(t, err)
}
