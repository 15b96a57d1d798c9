package usecase

import (
	"fmt"
	"testing"
	"time"

	"fisher-blog-api/internal/entity"
	"fisher-blog-api/pkg/jwt"
	"fisher-blog-api/pkg/logger"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepo struct {
	users map[string]*entity.User // keyed by id
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(user *entity.User) error {
	if user.ID == "" {
		user.ID = fmt.Sprintf("user-%d", len(r.users)+1)
	}
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, entity.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, entity.ErrNotFound
}

func (r *fakeUserRepo) GetByActivationToken(token string) (*entity.User, error) {
	for _, user := range r.users {
		if user.ActivationToken == token {
			copied := *user
			return &copied, nil
		}
	}
	return nil, entity.ErrNotFound
}

func (r *fakeUserRepo) GetAll() ([]*entity.User, error) {
	users := make([]*entity.User, 0, len(r.users))
	for _, user := range r.users {
		copied := *user
		users = append(users, &copied)
	}
	return users, nil
}

func (r *fakeUserRepo) Update(user *entity.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return entity.ErrNotFound
	}
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) Delete(id string) error {
	delete(r.users, id)
	return nil
}

type fakeMailer struct {
	activations []string
	resets      []string
}

func (m *fakeMailer) SendActivation(to, activationToken string) bool {
	m.activations = append(m.activations, to)
	return true
}

func (m *fakeMailer) SendPasswordReset(to, name string) bool {
	m.resets = append(m.resets, to)
	return true
}

func newTestAuthUseCase() (AuthUseCase, *fakeUserRepo, *fakeSessionRepo, *fakeMailer) {
	userRepo := newFakeUserRepo()
	sessionRepo := newFakeSessionRepo()
	mail := &fakeMailer{}
	jwtService := jwt.NewService("access-secret", "refresh-secret", 15*time.Minute, 30*24*time.Hour)
	tokens := NewTokensUseCase(sessionRepo, jwtService)
	uc := NewAuthUseCase(userRepo, tokens, mail, "https://cdn.example.com/default/avatar.png", "https://cdn.example.com/default/poster.png", logger.New())
	return uc, userRepo, sessionRepo, mail
}

func TestRegister(t *testing.T) {
	uc, userRepo, sessionRepo, mail := newTestAuthUseCase()

	user, tokens, err := uc.Register(RegisterInput{
		FirstName: "Alex",
		LastName:  "Fisher",
		Email:     "alex@example.com",
		Password:  "secret1",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.False(t, user.IsActivated)
	assert.NotEmpty(t, user.ActivationToken)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)

	// Password is stored hashed
	stored, err := userRepo.GetByEmail("alex@example.com")
	assert.NoError(t, err)
	assert.NotEqual(t, "secret1", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("secret1")))

	// Defaults applied and session created
	assert.Equal(t, "https://cdn.example.com/default/avatar.png", user.AvatarURL)
	assert.Len(t, sessionRepo.sessions, 1)
	assert.Equal(t, []string{"alex@example.com"}, mail.activations)
}

func TestRegister_EmailInUse(t *testing.T) {
	uc, _, _, _ := newTestAuthUseCase()

	_, _, err := uc.Register(RegisterInput{
		FirstName: "Alex", LastName: "Fisher",
		Email: "alex@example.com", Password: "secret1",
	})
	assert.NoError(t, err)

	_, _, err = uc.Register(RegisterInput{
		FirstName: "Ann", LastName: "Angler",
		Email: "alex@example.com", Password: "other12",
	})
	assert.ErrorIs(t, err, entity.ErrConflict)
}

func registerActivated(t *testing.T, uc AuthUseCase, userRepo *fakeUserRepo, email, password string) *entity.User {
	t.Helper()
	user, _, err := uc.Register(RegisterInput{
		FirstName: "Alex", LastName: "Fisher",
		Email: email, Password: password,
	})
	assert.NoError(t, err)

	user.IsActivated = true
	assert.NoError(t, userRepo.Update(user))
	return user
}

func TestLogin(t *testing.T) {
	uc, userRepo, sessionRepo, _ := newTestAuthUseCase()
	registerActivated(t, uc, userRepo, "alex@example.com", "secret1")

	user, tokens, err := uc.Login("alex@example.com", "secret1")

	assert.NoError(t, err)
	assert.Equal(t, "alex@example.com", user.Email)
	assert.NotEmpty(t, tokens.RefreshToken)
	assert.Len(t, sessionRepo.sessions, 1)
}

func TestLogin_WrongPassword(t *testing.T) {
	uc, userRepo, _, _ := newTestAuthUseCase()
	registerActivated(t, uc, userRepo, "alex@example.com", "secret1")

	_, _, err := uc.Login("alex@example.com", "wrong-password")
	assert.ErrorIs(t, err, entity.ErrUnauthorized)
}

func TestLogin_UnknownEmail(t *testing.T) {
	uc, _, _, _ := newTestAuthUseCase()

	_, _, err := uc.Login("nobody@example.com", "secret1")
	assert.ErrorIs(t, err, entity.ErrUnauthorized)
}

func TestLogin_NotActivated(t *testing.T) {
	uc, _, _, _ := newTestAuthUseCase()

	_, _, err := uc.Register(RegisterInput{
		FirstName: "Alex", LastName: "Fisher",
		Email: "alex@example.com", Password: "secret1",
	})
	assert.NoError(t, err)

	_, _, err = uc.Login("alex@example.com", "secret1")
	assert.ErrorIs(t, err, entity.ErrUnauthorized)
}

func TestLogout(t *testing.T) {
	uc, userRepo, sessionRepo, _ := newTestAuthUseCase()
	registerActivated(t, uc, userRepo, "alex@example.com", "secret1")

	_, tokens, err := uc.Login("alex@example.com", "secret1")
	assert.NoError(t, err)

	assert.NoError(t, uc.Logout(tokens.RefreshToken))
	assert.Empty(t, sessionRepo.sessions)

	// Second logout with the same token fails: the session is gone
	assert.ErrorIs(t, uc.Logout(tokens.RefreshToken), entity.ErrUnauthorized)
}

func TestLogout_MissingToken(t *testing.T) {
	uc, _, _, _ := newTestAuthUseCase()

	assert.ErrorIs(t, uc.Logout(""), entity.ErrUnauthorized)
}
