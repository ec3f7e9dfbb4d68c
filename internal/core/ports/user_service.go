package ports

import (
	"context"

	"github.com/pos-system/auth-service/internal/core/domain"
)

// UserService manages subordinate accounts. Callers must have passed the
// admin role gate before reaching it.
type UserService interface {
	CreateCashier(ctx context.Context, in Credentials) (*domain.User, error)
	ListCashiers(ctx context.Context) ([]*domain.User, error)
}
