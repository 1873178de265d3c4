package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "outside/internal/delivery/context"
	domainerrors "outside/internal/domain/errors"
	"outside/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const bearerPrefix = "Bearer "

// AuthMiddleware authenticates requests carrying a bearer access token.
type AuthMiddleware struct {
	tokenService service.TokenService
	revocations  service.TokenRevocationStore
	logger       *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenService service.TokenService, revocations service.TokenRevocationStore, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		tokenService: tokenService,
		revocations:  revocations,
		logger:       logger,
	}
}

// Authenticate verifies the token and rejects revoked ones. On success the
// profile ID and the token identity are stored on the echo context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrUnauthenticated.WrapMessage("authorization header is missing")
		}

		tokenString, found := strings.CutPrefix(authHeader, bearerPrefix)
		if !found || tokenString == "" {
			return domainerrors.ErrUnauthenticated.WrapMessage("authorization header must carry a bearer token")
		}

		token, err := m.tokenService.Verify(tokenString)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
				Debug("Rejected access token", slog.Any("error", err))

			return domainerrors.ErrUnauthenticated.WrapMessage("invalid or expired token")
		}

		revoked, err := m.revocations.IsRevoked(c.Request().Context(), token.TokenID)
		if err != nil {
			return errors.Wrap(err, "failed to check token revocation")
		}
		if revoked {
			return domainerrors.ErrUnauthenticated.WrapMessage("token was revoked")
		}

		deliverycontext.SetAccessToken(c, token.UserID, token.TokenID, token.ExpiresAt)

		return next(c)
	}
}
