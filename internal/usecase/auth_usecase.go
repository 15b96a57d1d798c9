package usecase

import (
	"fmt"

	"fisher-blog-api/internal/entity"
	"fisher-blog-api/internal/repo/persistent"
	"fisher-blog-api/pkg/logger"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Mailer delivers transactional email. Delivery is best effort: a false
// return is logged and never fails the calling operation.
type Mailer interface {
	SendActivation(to, activationToken string) bool
	SendPasswordReset(to, name string) bool
}

type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

type AuthUseCase interface {
	Register(input RegisterInput) (*entity.User, *entity.TokenPair, error)
	Login(email, password string) (*entity.User, *entity.TokenPair, error)
	Logout(refreshToken string) error
}

type authUseCase struct {
	userRepo         persistent.UserRepository
	tokens           TokensUseCase
	mailer           Mailer
	defaultAvatarURL string
	defaultPosterURL string
	logger           *logger.Logger
}

func NewAuthUseCase(
	userRepo persistent.UserRepository,
	tokens TokensUseCase,
	mailer Mailer,
	defaultAvatarURL string,
	defaultPosterURL string,
	logger *logger.Logger,
) AuthUseCase {
	return &authUseCase{
		userRepo:         userRepo,
		tokens:           tokens,
		mailer:           mailer,
		defaultAvatarURL: defaultAvatarURL,
		defaultPosterURL: defaultPosterURL,
		logger:           logger,
	}
}

func (uc *authUseCase) Register(input RegisterInput) (*entity.User, *entity.TokenPair, error) {
	if _, err := uc.userRepo.GetByEmail(input.Email); err == nil {
		return nil, nil, fmt.Errorf("this email in use, try other: %w", entity.ErrConflict)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		uc.logger.Error("Failed to hash password: %v", err)
		return nil, nil, fmt.Errorf("failed to process registration")
	}

	user := &entity.User{
		FirstName:       input.FirstName,
		LastName:        input.LastName,
		Email:           input.Email,
		Password:        string(hashedPassword),
		Gender:          entity.GenderOther,
		AvatarURL:       uc.defaultAvatarURL,
		PosterURL:       uc.defaultPosterURL,
		ActivationToken: uuid.New().String(),
		IsActivated:     false,
	}

	if err := uc.userRepo.Create(user); err != nil {
		uc.logger.Error("Failed to create user: %v", err)
		return nil, nil, fmt.Errorf("failed to create user")
	}

	tokens, err := uc.tokens.Issue(user)
	if err != nil {
		uc.logger.Error("Failed to issue tokens: %v", err)
		return nil, nil, fmt.Errorf("failed to issue tokens")
	}

	if !uc.mailer.SendActivation(user.Email, user.ActivationToken) {
		uc.logger.Warn("Activation email to %s was not sent", user.Email)
	}

	return user, tokens, nil
}

func (uc *authUseCase) Login(email, password string) (*entity.User, *entity.TokenPair, error) {
	// Wrong email, wrong password and a not-yet-activated account all fail
	// the same way.
	user, err := uc.userRepo.GetByEmail(email)
	if err != nil {
		return nil, nil, fmt.Errorf("email or password is wrong or email is not activated: %w", entity.ErrUnauthorized)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, nil, fmt.Errorf("email or password is wrong or email is not activated: %w", entity.ErrUnauthorized)
	}

	if !user.IsActivated {
		return nil, nil, fmt.Errorf("email or password is wrong or email is not activated: %w", entity.ErrUnauthorized)
	}

	tokens, err := uc.tokens.Issue(user)
	if err != nil {
		uc.logger.Error("Failed to issue tokens: %v", err)
		return nil, nil, fmt.Errorf("failed to issue tokens")
	}

	return user, tokens, nil
}

func (uc *authUseCase) Logout(refreshToken string) error {
	return uc.tokens.Revoke(refreshToken)
}
