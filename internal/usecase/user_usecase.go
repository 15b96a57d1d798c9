package usecase

import (
	"fmt"
	"io"
	"time"

	"fisher-blog-api/internal/entity"
	"fisher-blog-api/internal/repo/persistent"
	"fisher-blog-api/pkg/logger"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type UpdateProfileInput struct {
	FirstName      *string
	LastName       *string
	DateBirth      *time.Time
	Gender         *string
	Description    *string
	Profession     *string
	PhoneNumber    *string
	Location       *entity.Location
	SocialNetworks *entity.SocialNetworks
	Hobby          []string
}

type UserUseCase interface {
	ActivateEmail(activationToken string) error
	RepeatActivationEmail(email string) error
	GetCurrent(userID string) (*entity.User, error)
	GetAll() ([]*entity.User, error)
	UpdateProfile(userID string, input UpdateProfileInput) (*entity.User, error)
	ChangeEmail(userID, email string) error
	RequestResetPassword(email string) error
	ResetPassword(email, password string) error
	ChangePassword(userID, password, newPassword string) error
	UploadAvatar(userID string, file io.Reader, ext, contentType string) (*entity.User, error)
	UploadPoster(userID string, file io.Reader, ext, contentType string) (*entity.User, error)
	RemoveProfile(userID string) error
}

type userUseCase struct {
	userRepo    persistent.UserRepository
	postRepo    persistent.PostRepository
	commentRepo persistent.CommentRepository
	sessionRepo persistent.SessionRepository
	posts       PostUseCase
	comments    CommentUseCase
	files       FileStore
	mailer      Mailer
	logger      *logger.Logger
}

func NewUserUseCase(
	userRepo persistent.UserRepository,
	postRepo persistent.PostRepository,
	commentRepo persistent.CommentRepository,
	sessionRepo persistent.SessionRepository,
	posts PostUseCase,
	comments CommentUseCase,
	files FileStore,
	mailer Mailer,
	logger *logger.Logger,
) UserUseCase {
	return &userUseCase{
		userRepo:    userRepo,
		postRepo:    postRepo,
		commentRepo: commentRepo,
		sessionRepo: sessionRepo,
		posts:       posts,
		comments:    comments,
		files:       files,
		mailer:      mailer,
		logger:      logger,
	}
}

// ActivateEmail consumes a single-use activation token.
func (uc *userUseCase) ActivateEmail(activationToken string) error {
	user, err := uc.userRepo.GetByActivationToken(activationToken)
	if err != nil {
		return fmt.Errorf("activation token is wrong: %w", entity.ErrNotFound)
	}

	user.ActivationToken = ""
	user.IsActivated = true
	return uc.userRepo.Update(user)
}

func (uc *userUseCase) RepeatActivationEmail(email string) error {
	user, err := uc.userRepo.GetByEmail(email)
	if err != nil {
		return fmt.Errorf("user not found: %w", entity.ErrNotFound)
	}

	user.ActivationToken = uuid.New().String()
	user.IsActivated = false

	if !uc.mailer.SendActivation(user.Email, user.ActivationToken) {
		uc.logger.Warn("Activation email to %s was not sent", user.Email)
	}
	return uc.userRepo.Update(user)
}

func (uc *userUseCase) GetCurrent(userID string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("user not found: %w", entity.ErrNotFound)
	}
	return user, nil
}

func (uc *userUseCase) GetAll() ([]*entity.User, error) {
	return uc.userRepo.GetAll()
}

func (uc *userUseCase) UpdateProfile(userID string, input UpdateProfileInput) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("user not found: %w", entity.ErrNotFound)
	}

	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}
	if input.DateBirth != nil {
		user.DateBirth = *input.DateBirth
	}
	if input.Gender != nil {
		user.Gender = entity.Gender(*input.Gender)
	}
	if input.Description != nil {
		user.Description = *input.Description
	}
	if input.Profession != nil {
		user.Profession = *input.Profession
	}
	if input.PhoneNumber != nil {
		user.PhoneNumber = *input.PhoneNumber
	}
	if input.Location != nil {
		user.Location = *input.Location
	}
	if input.SocialNetworks != nil {
		user.SocialNetworks = *input.SocialNetworks
	}
	if input.Hobby != nil {
		if err := entity.ValidateTags(input.Hobby); err != nil {
			return nil, fmt.Errorf("hobby: %w", err)
		}
		user.Hobby = input.Hobby
	}

	if err := uc.userRepo.Update(user); err != nil {
		uc.logger.Error("Failed to update user: %v", err)
		return nil, fmt.Errorf("failed to update profile")
	}
	return user, nil
}

// ChangeEmail swaps the address and forces re-verification through a fresh
// activation token.
func (uc *userUseCase) ChangeEmail(userID, email string) error {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return fmt.Errorf("user not found: %w", entity.ErrNotFound)
	}

	if existing, err := uc.userRepo.GetByEmail(email); err == nil && existing.ID != userID {
		return fmt.Errorf("this email in use, try other: %w", entity.ErrConflict)
	}

	user.Email = email
	user.ActivationToken = uuid.New().String()
	user.IsActivated = false

	if !uc.mailer.SendActivation(email, user.ActivationToken) {
		uc.logger.Warn("Activation email to %s was not sent", email)
	}
	return uc.userRepo.Update(user)
}

func (uc *userUseCase) RequestResetPassword(email string) error {
	user, err := uc.userRepo.GetByEmail(email)
	if err != nil {
		return fmt.Errorf("user not found: %w", entity.ErrNotFound)
	}

	if !uc.mailer.SendPasswordReset(user.Email, user.FirstName) {
		uc.logger.Warn("Password reset email to %s was not sent", user.Email)
	}
	return nil
}

func (uc *userUseCase) ResetPassword(email, password string) error {
	user, err := uc.userRepo.GetByEmail(email)
	if err != nil {
		return fmt.Errorf("user not found: %w", entity.ErrNotFound)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		uc.logger.Error("Failed to hash password: %v", err)
		return fmt.Errorf("failed to reset password")
	}

	user.Password = string(hashedPassword)
	return uc.userRepo.Update(user)
}

func (uc *userUseCase) ChangePassword(userID, password, newPassword string) error {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return fmt.Errorf("user not found: %w", entity.ErrNotFound)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return fmt.Errorf("current password is wrong: %w", entity.ErrUnauthorized)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		uc.logger.Error("Failed to hash password: %v", err)
		return fmt.Errorf("failed to change password")
	}

	user.Password = string(hashedPassword)
	return uc.userRepo.Update(user)
}

func (uc *userUseCase) UploadAvatar(userID string, file io.Reader, ext, contentType string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("user not found: %w", entity.ErrNotFound)
	}

	if err := uc.files.DeleteFile(user.AvatarURL); err != nil {
		uc.logger.Warn("Failed to delete old avatar of user %s: %v", userID, err)
	}

	key := fmt.Sprintf("users/avatars/%s/%s%s", userID, newAssetID(), ext)
	url, err := uc.files.UploadFile(key, file, contentType)
	if err != nil {
		uc.logger.Error("Failed to upload avatar: %v", err)
		return nil, fmt.Errorf("failed to upload avatar")
	}

	user.AvatarURL = url
	if err := uc.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user")
	}
	return user, nil
}

func (uc *userUseCase) UploadPoster(userID string, file io.Reader, ext, contentType string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("user not found: %w", entity.ErrNotFound)
	}

	if err := uc.files.DeleteFile(user.PosterURL); err != nil {
		uc.logger.Warn("Failed to delete old poster of user %s: %v", userID, err)
	}

	key := fmt.Sprintf("users/posters/%s/%s%s", userID, newAssetID(), ext)
	url, err := uc.files.UploadFile(key, file, contentType)
	if err != nil {
		uc.logger.Error("Failed to upload poster: %v", err)
		return nil, fmt.Errorf("failed to upload poster")
	}

	user.PosterURL = url
	if err := uc.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user")
	}
	return user, nil
}

// RemoveProfile deletes the account and everything it owns. Owned posts go
// through the post deletion path and authored comments through the comment
// deletion path so sibling post counters stay correct. The steps are
// independent and idempotent; there is no transaction around the cascade,
// so a failed run can be repeated safely.
func (uc *userUseCase) RemoveProfile(userID string) error {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return fmt.Errorf("user not found: %w", entity.ErrNotFound)
	}

	posts, err := uc.postRepo.ListByOwner(userID)
	if err != nil {
		return fmt.Errorf("failed to list user posts: %w", err)
	}
	for _, post := range posts {
		if err := uc.posts.Delete(post.ID, userID); err != nil {
			uc.logger.Error("Failed to delete post %s during cascade: %v", post.ID, err)
			return err
		}
	}

	comments, err := uc.commentRepo.ListByAuthor(userID)
	if err != nil {
		return fmt.Errorf("failed to list user comments: %w", err)
	}
	for _, comment := range comments {
		if err := uc.comments.Delete(comment.ID, comment.PostID, userID); err != nil {
			uc.logger.Error("Failed to delete comment %s during cascade: %v", comment.ID, err)
			return err
		}
	}

	if err := uc.sessionRepo.DeleteByOwner(userID); err != nil {
		uc.logger.Error("Failed to delete session of user %s: %v", userID, err)
	}

	if err := uc.files.DeleteFile(user.AvatarURL); err != nil {
		uc.logger.Warn("Failed to delete avatar of user %s: %v", userID, err)
	}
	if err := uc.files.DeleteFile(user.PosterURL); err != nil {
		uc.logger.Warn("Failed to delete poster of user %s: %v", userID, err)
	}
	for _, folder := range []string{"users/avatars/", "users/posters/"} {
		if err := uc.files.DeleteFolder(folder + userID); err != nil {
			uc.logger.Warn("Failed to delete folder %s%s: %v", folder, userID, err)
		}
	}

	return uc.userRepo.Delete(userID)
}
