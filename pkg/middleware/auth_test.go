package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fisher-blog-api/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubSessions struct {
	has bool
}

func (s *stubSessions) HasSession(userID string) (bool, error) {
	return s.has, nil
}

func setupProtectedRouter(jwtService *jwt.Service, sessions SessionChecker) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", AuthMiddleware(jwtService, sessions), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetString("user_id")})
	})
	return r
}

func newAuthTestService() *jwt.Service {
	return jwt.NewService("access-secret", "refresh-secret", 15*time.Minute, 30*24*time.Hour)
}

func issueAccessToken(t *testing.T, service *jwt.Service) string {
	t.Helper()
	access, _, err := service.GenerateTokens(jwt.Payload{
		UserID: "user-123", Email: "alex@example.com", IsActivated: true,
	})
	assert.NoError(t, err)
	return access
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	service := newAuthTestService()
	router := setupProtectedRouter(service, &stubSessions{has: true})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+issueAccessToken(t, service))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-123")
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	router := setupProtectedRouter(newAuthTestService(), &stubSessions{has: true})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	service := newAuthTestService()
	router := setupProtectedRouter(service, &stubSessions{has: true})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", issueAccessToken(t, service))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_RefreshTokenRejected(t *testing.T) {
	service := newAuthTestService()
	router := setupProtectedRouter(service, &stubSessions{has: true})

	_, refresh, err := service.GenerateTokens(jwt.Payload{UserID: "user-123"})
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+refresh)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_NoSession(t *testing.T) {
	service := newAuthTestService()
	router := setupProtectedRouter(service, &stubSessions{has: false})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+issueAccessToken(t, service))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
