package middleware

import (
	"errors"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/pos-system/auth-service/internal/api/metrics"
	"github.com/pos-system/auth-service/internal/core/domain"
	"github.com/pos-system/auth-service/internal/core/ports"
)

// ContextKeyUser is the echo.Context key holding the authenticated *domain.User.
const ContextKeyUser = "auth.user"

// Authenticate resolves the bearer token to an active user through the auth
// service and injects it into the context. A missing or non-bearer
// Authorization header is ErrUnauthenticated; everything else the service
// rejects surfaces as its own error.
func Authenticate(authService ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if token == "" {
				metrics.TokenAuthTotal.WithLabelValues("missing").Inc()
				return domain.ErrUnauthenticated
			}

			user, err := authService.Authenticate(c.Request().Context(), token)
			if err != nil {
				result := "error"
				if errors.Is(err, domain.ErrInvalidToken) || errors.Is(err, domain.ErrUnauthenticated) {
					result = "invalid"
				}
				metrics.TokenAuthTotal.WithLabelValues(result).Inc()
				return err
			}

			metrics.TokenAuthTotal.WithLabelValues("ok").Inc()
			c.Set(ContextKeyUser, user)
			return next(c)
		}
	}
}

// UserFromContext returns the user injected by Authenticate.
func UserFromContext(c echo.Context) (*domain.User, bool) {
	user, ok := c.Get(ContextKeyUser).(*domain.User)
	return user, ok && user != nil
}

func bearerToken(header string) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
