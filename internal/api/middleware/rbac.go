package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/pos-system/auth-service/internal/core/domain"
	"github.com/pos-system/auth-service/internal/core/service"
)

// RequireRole enforces role-based access control. It must run after
// Authenticate, whose resolved user (not the token's claim) is checked.
func RequireRole(role domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := UserFromContext(c)
			if !ok {
				return domain.ErrUnauthenticated
			}
			if err := service.RequireRole(user, role); err != nil {
				return err
			}
			return next(c)
		}
	}
}
