package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/pos-system/auth-service/internal/api/middleware"
	"github.com/pos-system/auth-service/internal/core/domain"
)

// currentUser returns the user resolved by the Authenticate middleware. A
// missing user means the route was mounted without it; report it as
// unauthenticated rather than panicking.
func currentUser(c echo.Context) (*domain.User, error) {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		return nil, domain.ErrUnauthenticated
	}
	return user, nil
}
