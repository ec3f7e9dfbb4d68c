package ports

import (
	"context"

	"github.com/pos-system/auth-service/internal/core/domain"
)

// UserRepository defines the credential store.
//
// Create must be atomic and rely on the store's own unique indexes: a username
// collision yields domain.ErrUsernameTaken and a second admin yields
// domain.ErrAdminExists. Lookups return domain.ErrUserNotFound when nothing
// matches, including for malformed ids.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	ExistsAdmin(ctx context.Context) (bool, error)
	// ListByRole returns users with the role, most recently created first.
	ListByRole(ctx context.Context, role domain.Role) ([]*domain.User, error)
	SetActive(ctx context.Context, id string, active bool) error
	Ping(ctx context.Context) error
}
