package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/pos-system/auth-service/internal/core/domain"
	"github.com/pos-system/auth-service/internal/core/ports"
)

const tokenTypeBearer = "bearer"

// AuthService implements admin bootstrap, login and bearer authentication.
type AuthService struct {
	repo   ports.UserRepository
	tokens ports.TokenService
	log    zerolog.Logger
	now    func() time.Time
}

func NewAuthService(repo ports.UserRepository, tokens ports.TokenService, log zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, tokens: tokens, log: log, now: time.Now}
}

// BootstrapAdmin creates the one and only admin. The pre-checks give the
// common case a precise error; concurrent callers are settled by the
// store's unique indexes.
func (s *AuthService) BootstrapAdmin(ctx context.Context, in ports.Credentials) (*domain.User, error) {
	exists, err := s.repo.ExistsAdmin(ctx)
	if err != nil {
		return nil, fmt.Errorf("bootstrap admin: %w", err)
	}
	if exists {
		return nil, domain.ErrAdminExists
	}

	user, err := createUser(ctx, s.repo, s.tokens, in, domain.RoleAdmin, s.now())
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", user.ID).Str("username", user.Username).Msg("admin bootstrapped")
	return user, nil
}

// Login never tells apart an unknown username, an inactive account and a
// wrong password.
func (s *AuthService) Login(ctx context.Context, in ports.Credentials) (*ports.LoginResult, error) {
	user, err := s.repo.FindByUsername(ctx, in.Username)
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		s.tokens.VerifyPassword(in.Password, "")
		return nil, domain.ErrInvalidCredentials
	case err != nil:
		return nil, fmt.Errorf("login: %w", err)
	}

	if !s.tokens.VerifyPassword(in.Password, user.PasswordHash) || !user.CanAuthenticate() {
		s.log.Debug().Str("user_id", user.ID).Msg("login rejected")
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.IssueToken(user.ID, user.Role, s.now())
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	return &ports.LoginResult{AccessToken: token, TokenType: tokenTypeBearer}, nil
}

// Authenticate resolves a bearer token to a live, active user. The token
// alone never authorizes anything: the subject is re-read from the store so
// deactivation takes effect immediately.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, domain.ErrUnauthenticated
	}

	claims, err := s.tokens.VerifyToken(token, s.now())
	if err != nil {
		return nil, domain.ErrInvalidToken
	}

	user, err := s.repo.FindByID(ctx, claims.Subject)
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return nil, domain.ErrInvalidToken
	case err != nil:
		return nil, fmt.Errorf("authenticate: %w", err)
	}

	if !user.CanAuthenticate() {
		return nil, domain.ErrInvalidToken
	}

	return user, nil
}

// RequireRole gates a resolved user on an exact role.
func RequireRole(user *domain.User, role domain.Role) error {
	if !user.HasRole(role) {
		return domain.ErrForbidden
	}
	return nil
}

func createUser(ctx context.Context, repo ports.UserRepository, tokens ports.TokenService, in ports.Credentials, role domain.Role, now time.Time) (*domain.User, error) {
	if _, err := repo.FindByUsername(ctx, in.Username); err == nil {
		return nil, domain.ErrUsernameTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("create %s: %w", role, err)
	}

	hash, err := tokens.HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", role, err)
	}

	created, err := repo.Create(ctx, &domain.User{
		Username:     in.Username,
		PasswordHash: hash,
		Role:         role,
		IsActive:     true,
		CreatedAt:    now.UTC(),
	})
	if err != nil {
		if errors.Is(err, domain.ErrUsernameTaken) || errors.Is(err, domain.ErrAdminExists) {
			return nil, err
		}
		return nil, fmt.Errorf("create %s: %w", role, err)
	}

	return created, nil
}
