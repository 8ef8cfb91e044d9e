package app

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"dealerhub/internal/domain"
)

// AuthService is the identity provider: it owns local accounts and the
// session tokens the gateway forwards downstream.
type AuthService struct {
	users    domain.UserRepository
	sessions domain.SessionStore
}

func NewAuthService(users domain.UserRepository, sessions domain.SessionStore) *AuthService {
	return &AuthService{users: users, sessions: sessions}
}

type RegisterInput struct {
	Username  string `json:"userName"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// Register creates an account and logs it straight in, returning the session
// token. The username unique key is the sole guard against duplicates, so two
// concurrent registrations cannot both succeed.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (string, error) {
	if in.Username == "" || in.Password == "" {
		return "", domain.ErrMissingFields
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	_, err = s.users.CreateUser(ctx, domain.User{
		Username:     in.Username,
		PasswordHash: string(hash),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
	})
	if err != nil {
		if !errors.Is(err, domain.ErrDuplicateUser) {
			log.Error().Err(err).Str("user", in.Username).Msg("create user failed")
		}
		return "", err
	}
	return s.sessions.Create(ctx, in.Username)
}

// Login verifies the password and opens a session.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	u, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return "", domain.ErrInvalidCredentials
	}
	return s.sessions.Create(ctx, username)
}

// Logout drops the session. Unknown or empty tokens are not an error; the
// caller ends up logged out either way.
func (s *AuthService) Logout(ctx context.Context, token string) {
	if token == "" {
		return
	}
	if err := s.sessions.Delete(ctx, token); err != nil {
		log.Warn().Err(err).Msg("session delete failed")
	}
}

// Authenticate resolves a session token to a forwardable credential. A nil
// credential with nil error means "no live session".
func (s *AuthService) Authenticate(ctx context.Context, token string) (*domain.Credential, error) {
	if token == "" {
		return nil, nil
	}
	username, ok, err := s.sessions.Get(ctx, token)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return &domain.Credential{Token: token, Username: username}, nil
}
