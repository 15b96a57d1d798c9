package http

import (
	"net/http"
	"time"

	"fisher-blog-api/internal/entity"
	"fisher-blog-api/internal/usecase"

	"github.com/gin-gonic/gin"
)

const refreshCookieName = "refresh-token"

type AuthHandler struct {
	authUseCase usecase.AuthUseCase
	refreshTTL  time.Duration
}

func NewAuthHandler(authUseCase usecase.AuthUseCase, refreshTTL time.Duration) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
		refreshTTL:  refreshTTL,
	}
}

type RegistrationRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6,max=16"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Tokens *entity.TokenPair `json:"tokens"`
	User   *entity.User      `json:"user"`
}

// Registration godoc
// @Summary      Register a new user
// @Description  Create an account, issue a token pair and send an activation email
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body RegistrationRequest true "Registration data"
// @Success      201  {object}  AuthResponse
// @Failure      400  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /auth/registration [post]
func (h *AuthHandler) Registration(c *gin.Context) {
	var req RegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, tokens, err := h.authUseCase.Register(usecase.RegisterInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	h.setRefreshCookie(c, tokens.RefreshToken)
	c.JSON(http.StatusCreated, AuthResponse{Tokens: tokens, User: user})
}

// Login godoc
// @Summary      Login user
// @Description  Authenticate and issue a fresh token pair, replacing any previous session
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Login credentials"
// @Success      200  {object}  AuthResponse
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, tokens, err := h.authUseCase.Login(req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	h.setRefreshCookie(c, tokens.RefreshToken)
	c.JSON(http.StatusOK, AuthResponse{Tokens: tokens, User: user})
}

// Logout godoc
// @Summary      Logout user
// @Description  Revoke the session identified by the refresh-token cookie
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /auth/logout [get]
func (h *AuthHandler) Logout(c *gin.Context) {
	refreshToken, _ := c.Cookie(refreshCookieName)

	if err := h.authUseCase.Logout(refreshToken); err != nil {
		respondError(c, err)
		return
	}

	c.SetCookie(refreshCookieName, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

func (h *AuthHandler) setRefreshCookie(c *gin.Context, refreshToken string) {
	c.SetCookie(refreshCookieName, refreshToken, int(h.refreshTTL.Seconds()), "/", "", false, true)
}
