package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "passport/internal/delivery/context"
	"passport/internal/delivery/http/response"
	domainerrors "passport/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(logger *slog.Logger) *UserHandler {
	return &UserHandler{logger: logger}
}

// GetMe returns the authenticated account's public identity.
// The access guard has already resolved the token subject, so the handler
// only reads the identity back out of the request context.
func (h *UserHandler) GetMe(c echo.Context) error {
	identity, ok := deliverycontext.CurrentUser(c.Request().Context())
	if !ok {
		return domainerrors.ErrUnauthorized.WrapMessage("no identity in request context")
	}

	return response.Success(c, http.StatusOK, "Current user retrieved successfully", identity)
}

// HealthCheck reports liveness.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
