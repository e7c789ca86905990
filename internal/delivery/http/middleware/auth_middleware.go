package middleware

import (
	"strings"

	deliverycontext "passport/internal/delivery/context"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/domain/service"
	"passport/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware provides middleware for JWT authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	users    usecase.UserUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, users usecase.UserUsecase) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, users: users}
}

// Authenticate validates the bearer access token and resolves its subject
// into the current account's identity. Every rejection path maps to the same
// 401; the specific reason only reaches the wrapped error detail.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrUnauthorized.WrapMessage("authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return domainerrors.ErrUnauthorized.WrapMessage("authorization header is not a bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return domainerrors.ErrUnauthorized.WrapMessage("token validation failed")
		}

		// Refresh tokens are not valid for resource access.
		if claims.Kind != service.TokenKindAccess {
			return domainerrors.ErrUnauthorized.WrapMessage("wrong token kind")
		}

		userID, err := claims.UserID()
		if err != nil {
			return domainerrors.ErrUnauthorized.WrapMessage("malformed subject")
		}

		identity, err := m.users.CurrentUser(c.Request().Context(), userID)
		if err != nil {
			return domainerrors.ErrUnauthorized.WrapMessage("token subject could not be resolved")
		}

		// Expose the identity to handlers and to the service layer.
		c.Set(string(deliverycontext.KeyIdentity), identity)
		c.SetRequest(c.Request().WithContext(
			deliverycontext.WithIdentity(c.Request().Context(), identity),
		))

		return next(c)
	}
}
