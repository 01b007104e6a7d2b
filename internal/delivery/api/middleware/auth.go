package middleware

import (
	"log/slog"
	"strings"

	"surplus/internal/delivery/api/response"
	deliverycontext "surplus/internal/delivery/context"
	domainerrors "surplus/internal/domain/errors"
	"surplus/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// authSchemes are the accepted Authorization header prefixes.
var authSchemes = []string{"Token", "Bearer"} //nolint:gochecknoglobals

// AuthMiddleware resolves API tokens to users.
type AuthMiddleware struct {
	userUC usecase.UserUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(userUC usecase.UserUsecase) *AuthMiddleware {
	return &AuthMiddleware{userUC: userUC}
}

// Authenticate requires an "Authorization: Token <key>" header carrying a token issued at login or registration.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := extractToken(c.Request().Header.Get(echo.HeaderAuthorization))
		if !ok {
			return response.Unauthorized(c, "Authentication credentials were not provided.")
		}

		ctx := c.Request().Context()
		userID, err := m.userUC.Authenticate(ctx, token)
		if err != nil {
			if errors.Is(err, domainerrors.ErrInvalidToken) {
				return response.HandleAppError(c, err)
			}

			return errors.WithStack(err)
		}

		ctx = deliverycontext.WithUserID(ctx, userID)
		if logger := deliverycontext.GetLogger(ctx); logger != nil {
			ctx = deliverycontext.WithLogger(ctx, logger.With(slog.String("user_id", userID.String())))
		}
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

func extractToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found {
		return "", false
	}

	for _, accepted := range authSchemes {
		if strings.EqualFold(scheme, accepted) {
			token = strings.TrimSpace(token)

			return token, token != ""
		}
	}

	return "", false
}

// GetUserID returns the user set by Authenticate.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	return deliverycontext.GetUserIDFromContext(c.Request().Context())
}
