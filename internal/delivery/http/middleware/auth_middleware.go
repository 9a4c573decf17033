package middleware

import (
	"log/slog"
	"strings"

	"github.com/labstack/echo/v4"

	deliverycontext "pulse/internal/delivery/context"
	"pulse/internal/delivery/http/response"
	"pulse/internal/domain/service"
)

// authFailedMessage is deliberately identical for missing, malformed,
// tampered and expired tokens so callers cannot probe validation internals.
const authFailedMessage = "Invalid or expired token"

// AuthMiddleware guards protected routes by validating the bearer token.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, logger: logger}
}

// Authenticate validates the Authorization header and, on success, attaches
// the verified identity to the request context before calling the handler.
// It is a pure pass/fail gate with no other side effects.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, authFailedMessage)
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return response.Unauthorized(c, authFailedMessage)
		}

		claims, err := m.tokenSvc.Validate(tokenString)
		if err != nil {
			// The classification stays server-side.
			m.logger.Debug("Token validation failed", slog.Any("error", err))

			return response.Unauthorized(c, authFailedMessage)
		}

		// Expose the identity to handlers and use cases.
		c.Set("userID", claims.UserID)
		c.Set("userName", claims.Name)

		ctx := deliverycontext.WithUserID(c.Request().Context(), claims.UserID)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
