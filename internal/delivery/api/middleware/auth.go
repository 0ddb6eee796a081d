package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	bearerPrefix = "Bearer "
	identityKey  = "identity"
)

// AuthMiddleware resolves the caller's identity and guards admin routes.
type AuthMiddleware struct {
	verifier   service.IdentityVerifier
	authorizer service.AdminAuthorizer
	logger     *slog.Logger
}

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	Verifier   service.IdentityVerifier
	Authorizer service.AdminAuthorizer
	Logger     *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		verifier:   params.Verifier,
		authorizer: params.Authorizer,
		logger:     params.Logger,
	}
}

// Authenticate verifies the bearer token once and stores the identity on
// the echo context. Handlers never read the caller from request bodies.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrUnauthenticated.WithDetails("authorization header is missing")
		}

		token := strings.TrimSpace(strings.TrimPrefix(authHeader, bearerPrefix))
		if token == "" || token == authHeader {
			return domainerrors.ErrUnauthenticated.WithDetails("bearer token required")
		}

		ctx := c.Request().Context()
		identity, err := m.verifier.VerifyAccessToken(ctx, token)
		if err != nil || identity == nil {
			deliverycontext.GetLoggerOrDefault(ctx, m.logger).Debug("Access token rejected", slog.Any("error", err))

			return domainerrors.ErrUnauthenticated.WithDetails("invalid or expired token")
		}

		SetIdentity(c, identity)

		return next(c)
	}
}

// RequireAdmin must run after Authenticate. The admin predicate is always
// read from the store, never from token claims.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		identity, ok := GetIdentity(c)
		if !ok {
			return domainerrors.ErrUnauthenticated
		}

		ctx := c.Request().Context()
		isAdmin, err := m.authorizer.IsAdmin(ctx, identity.UserID)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(ctx, m.logger).Error("Admin check failed",
				slog.String("userID", identity.UserID.String()),
				slog.Any("error", err),
			)

			return domainerrors.NewDatabaseExecuteError(err, "admin check failed")
		}
		if !isAdmin {
			return domainerrors.ErrForbidden.WithDetails("admin role required")
		}

		return next(c)
	}
}

// SetIdentity attaches a verified identity to the request and tags the
// request-scoped logger with the caller.
func SetIdentity(c echo.Context, identity *entity.Identity) {
	c.Set(identityKey, identity)

	ctx := deliverycontext.WithUserID(c.Request().Context(), identity.UserID)
	if logger := deliverycontext.GetLoggerOrDefault(ctx, nil); logger != nil {
		ctx = deliverycontext.WithLogger(ctx, logger.With(slog.String("user_id", identity.UserID.String())))
	}
	c.SetRequest(c.Request().WithContext(ctx))
}

// GetIdentity returns the identity stored by Authenticate.
func GetIdentity(c echo.Context) (*entity.Identity, bool) {
	identity, ok := c.Get(identityKey).(*entity.Identity)

	return identity, ok && identity != nil
}

// GetUserID returns the authenticated user's id.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	identity, ok := GetIdentity(c)
	if !ok {
		return uuid.Nil, false
	}

	return identity.UserID, true
}
