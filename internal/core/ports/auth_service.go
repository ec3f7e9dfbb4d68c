package ports

import (
	"context"

	"github.com/pos-system/auth-service/internal/core/domain"
)

// Credentials is the username/password pair accepted by the auth endpoints.
type Credentials struct {
	Username string
	Password string
}

// LoginResult carries the issued bearer token.
type LoginResult struct {
	AccessToken string
	TokenType   string
}

type AuthService interface {
	BootstrapAdmin(ctx context.Context, in Credentials) (*domain.User, error)
	Login(ctx context.Context, in Credentials) (*LoginResult, error)
	Authenticate(ctx context.Context, token string) (*domain.User, error)
}
