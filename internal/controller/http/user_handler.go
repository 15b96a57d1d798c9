package http

import (
	"io"
	"net/http"
	"time"

	"fisher-blog-api/internal/entity"
	"fisher-blog-api/internal/usecase"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userUseCase usecase.UserUseCase
}

func NewUserHandler(userUseCase usecase.UserUseCase) *UserHandler {
	return &UserHandler{userUseCase: userUseCase}
}

type EmailRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ChangeProfileRequest struct {
	FirstName      *string                `json:"firstName" binding:"omitempty,min=2,max=50"`
	LastName       *string                `json:"lastName" binding:"omitempty,min=2,max=50"`
	DateBirth      *time.Time             `json:"dateBirth"`
	Gender         *string                `json:"gender" binding:"omitempty,oneof=man woman other"`
	Description    *string                `json:"description" binding:"omitempty,min=10,max=500"`
	Profession     *string                `json:"profession"`
	PhoneNumber    *string                `json:"phoneNumber"`
	Location       *entity.Location       `json:"location"`
	SocialNetworks *entity.SocialNetworks `json:"socialNetworks"`
	Hobby          []string               `json:"hobby"`
}

type ResetPasswordRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6,max=16"`
}

type ChangePasswordRequest struct {
	Password    string `json:"password" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=6,max=16"`
}

// ActivationEmail godoc
// @Summary      Activate account email
// @Tags         users
// @Produce      json
// @Param        activationToken path string true "Activation token"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /users/activation-email/{activationToken} [get]
func (h *UserHandler) ActivationEmail(c *gin.Context) {
	if err := h.userUseCase.ActivateEmail(c.Param("activationToken")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Email is successfully activated"})
}

// RepeatActivationEmail godoc
// @Summary      Re-send the activation email
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request body EmailRequest true "Account email"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /users/repeat-activation-email [post]
func (h *UserHandler) RepeatActivationEmail(c *gin.Context) {
	var req EmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.userUseCase.RepeatActivationEmail(req.Email); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "The confirmation email has been sent again"})
}

// Current godoc
// @Summary      Get current user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  entity.User
// @Failure      401  {object}  map[string]string
// @Router       /users/current [get]
func (h *UserHandler) Current(c *gin.Context) {
	user, err := h.userUseCase.GetCurrent(c.GetString("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// GetAll godoc
// @Summary      List all users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  entity.User
// @Router       /users/all-users [get]
func (h *UserHandler) GetAll(c *gin.Context) {
	users, err := h.userUseCase.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// ChangeProfile godoc
// @Summary      Update profile fields
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body ChangeProfileRequest true "Profile fields"
// @Success      200  {object}  entity.User
// @Failure      400  {object}  map[string]string
// @Router       /users/change-profile [patch]
func (h *UserHandler) ChangeProfile(c *gin.Context) {
	var req ChangeProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userUseCase.UpdateProfile(c.GetString("user_id"), usecase.UpdateProfileInput{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		DateBirth:      req.DateBirth,
		Gender:         req.Gender,
		Description:    req.Description,
		Profession:     req.Profession,
		PhoneNumber:    req.PhoneNumber,
		Location:       req.Location,
		SocialNetworks: req.SocialNetworks,
		Hobby:          req.Hobby,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// ChangeEmail godoc
// @Summary      Change account email
// @Description  Replaces the email and requires re-verification
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body EmailRequest true "New email"
// @Success      200  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /users/change-email [post]
func (h *UserHandler) ChangeEmail(c *gin.Context) {
	var req EmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.userUseCase.ChangeEmail(c.GetString("user_id"), req.Email); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "The email address has been successfully changed, now you need to re-verify it"})
}

// RequestResetPassword godoc
// @Summary      Request a password reset email
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request body EmailRequest true "Account email"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /users/request-reset-password [post]
func (h *UserHandler) RequestResetPassword(c *gin.Context) {
	var req EmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.userUseCase.RequestResetPassword(req.Email); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "An email with a link to reset your password has been sent to your email address"})
}

// ResetPassword godoc
// @Summary      Reset password
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request body ResetPasswordRequest true "Email and new password"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /users/reset-password [post]
func (h *UserHandler) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.userUseCase.ResetPassword(req.Email, req.Password); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "The password has been successfully changed"})
}

// ChangePassword godoc
// @Summary      Change password
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body ChangePasswordRequest true "Current and new password"
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /users/change-password [patch]
func (h *UserHandler) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.userUseCase.ChangePassword(c.GetString("user_id"), req.Password, req.NewPassword); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password has been successfully updated"})
}

// UploadAvatar godoc
// @Summary      Upload user avatar
// @Tags         users
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        avatar formData file true "Avatar image"
// @Success      200  {object}  entity.User
// @Failure      400  {object}  map[string]string
// @Router       /users/upload-avatar [post]
func (h *UserHandler) UploadAvatar(c *gin.Context) {
	h.uploadUserImage(c, "avatar", h.userUseCase.UploadAvatar)
}

// UploadPoster godoc
// @Summary      Upload user profile poster
// @Tags         users
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        poster formData file true "Poster image"
// @Success      200  {object}  entity.User
// @Failure      400  {object}  map[string]string
// @Router       /users/upload-poster [post]
func (h *UserHandler) UploadPoster(c *gin.Context) {
	h.uploadUserImage(c, "poster", h.userUseCase.UploadPoster)
}

// RemoveProfile godoc
// @Summary      Delete the account and everything it owns
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /users/remove-profile [delete]
func (h *UserHandler) RemoveProfile(c *gin.Context) {
	if err := h.userUseCase.RemoveProfile(c.GetString("user_id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Your account and all your data has been successfully deleted"})
}

type uploadUserImageFunc func(userID string, file io.Reader, ext, contentType string) (*entity.User, error)

func (h *UserHandler) uploadUserImage(c *gin.Context, field string, upload uploadUserImageFunc) {
	file, err := c.FormFile(field)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": field + " file is required"})
		return
	}

	ext, contentType, err := validateImage(file)
	if err != nil {
		respondError(c, err)
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process file"})
		return
	}
	defer src.Close()

	user, err := upload(c.GetString("user_id"), src, ext, contentType)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
