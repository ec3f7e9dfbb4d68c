package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/pos-system/auth-service/internal/core/domain"
	"github.com/pos-system/auth-service/internal/core/ports"
)

// UserService manages cashier accounts on behalf of the admin.
type UserService struct {
	repo   ports.UserRepository
	tokens ports.TokenService
	log    zerolog.Logger
	now    func() time.Time
}

func NewUserService(repo ports.UserRepository, tokens ports.TokenService, log zerolog.Logger) *UserService {
	return &UserService{repo: repo, tokens: tokens, log: log, now: time.Now}
}

func (s *UserService) CreateCashier(ctx context.Context, in ports.Credentials) (*domain.User, error) {
	user, err := createUser(ctx, s.repo, s.tokens, in, domain.RoleCashier, s.now())
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("user_id", user.ID).Str("username", user.Username).Msg("cashier created")
	return user, nil
}

// ListCashiers returns every cashier, most recently created first.
func (s *UserService) ListCashiers(ctx context.Context) ([]*domain.User, error) {
	users, err := s.repo.ListByRole(ctx, domain.RoleCashier)
	if err != nil {
		return nil, fmt.Errorf("list cashiers: %w", err)
	}
	return users, nil
}
