package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pos-system/auth-service/internal/api/metrics"
	"github.com/pos-system/auth-service/internal/core/ports"
)

// UserHandler serves the admin-only cashier routes.
type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// CreateCashier handles POST /users/cashiers.
//
// @Summary      Create a cashier
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      credentialsRequest  true  "Cashier credentials"
// @Success      201   {object}  userResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /users/cashiers [post]
func (h *UserHandler) CreateCashier(c echo.Context) error {
	var req credentialsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.userService.CreateCashier(c.Request().Context(), ports.Credentials{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	metrics.UsersCreatedTotal.WithLabelValues(string(user.Role)).Inc()
	return c.JSON(http.StatusCreated, toUserResponse(user))
}

// ListCashiers handles GET /users/cashiers, newest first.
//
// @Summary      List cashiers
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   userResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /users/cashiers [get]
func (h *UserHandler) ListCashiers(c echo.Context) error {
	users, err := h.userService.ListCashiers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponses(users))
}
