package usecase

import (
	"fmt"

	"fisher-blog-api/internal/entity"
	"fisher-blog-api/internal/repo/persistent"
	"fisher-blog-api/pkg/jwt"
)

// TokensUseCase manages the per-user session record and its token pair.
// A user is either NoSession or Active with exactly one access/refresh pair;
// issuing overwrites, revoking deletes.
type TokensUseCase interface {
	Issue(user *entity.User) (*entity.TokenPair, error)
	Check(token string, kind jwt.Kind) (*jwt.Claims, error)
	Revoke(refreshToken string) error
	HasSession(userID string) (bool, error)
}

type tokensUseCase struct {
	sessionRepo persistent.SessionRepository
	jwtService  *jwt.Service
}

func NewTokensUseCase(sessionRepo persistent.SessionRepository, jwtService *jwt.Service) TokensUseCase {
	return &tokensUseCase{
		sessionRepo: sessionRepo,
		jwtService:  jwtService,
	}
}

func (uc *tokensUseCase) Issue(user *entity.User) (*entity.TokenPair, error) {
	payload := jwt.Payload{
		UserID:      user.ID,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		Email:       user.Email,
		IsActivated: user.IsActivated,
	}

	accessToken, refreshToken, err := uc.jwtService.GenerateTokens(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	if err := uc.sessionRepo.Upsert(user.ID, accessToken, refreshToken); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}

	return &entity.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (uc *tokensUseCase) Check(token string, kind jwt.Kind) (*jwt.Claims, error) {
	if token == "" {
		return nil, fmt.Errorf("empty token: %w", entity.ErrUnauthorized)
	}

	claims, err := uc.jwtService.ValidateToken(token, kind)
	if err != nil {
		return nil, fmt.Errorf("invalid %s token: %w", kind, entity.ErrUnauthorized)
	}
	return claims, nil
}

// Revoke terminates the session identified by the refresh token's subject.
// A missing token and a missing session record fail identically: the caller
// cannot distinguish "never logged in" from "already logged out".
func (uc *tokensUseCase) Revoke(refreshToken string) error {
	claims, err := uc.Check(refreshToken, jwt.KindRefresh)
	if err != nil {
		return err
	}

	if _, err := uc.sessionRepo.GetByOwner(claims.UserID); err != nil {
		return fmt.Errorf("no session for user: %w", entity.ErrUnauthorized)
	}

	return uc.sessionRepo.DeleteByOwner(claims.UserID)
}

func (uc *tokensUseCase) HasSession(userID string) (bool, error) {
	if _, err := uc.sessionRepo.GetByOwner(userID); err != nil {
		return false, nil
	}
	return true, nil
}
