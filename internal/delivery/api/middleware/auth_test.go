package middleware

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"
	mockSvc "storefront/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authMiddlewareFixtures struct {
	middleware *AuthMiddleware
	verifier   *mockSvc.MockIdentityVerifier
	authorizer *mockSvc.MockAdminAuthorizer
}

func createTestAuthMiddleware(t *testing.T) authMiddlewareFixtures {
	fx := authMiddlewareFixtures{
		verifier:   mockSvc.NewMockIdentityVerifier(t),
		authorizer: mockSvc.NewMockAdminAuthorizer(t),
	}

	fx.middleware = NewAuthMiddleware(AuthMiddlewareParams{
		Verifier:   fx.verifier,
		Authorizer: fx.authorizer,
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return fx
}

func newAuthContext(authorization string) echo.Context {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}

	return echo.New().NewContext(req, httptest.NewRecorder())
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

func TestAuthMiddleware_Authenticate_RejectsMissingOrMalformedHeader(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "not a bearer token", header: "Basic dXNlcjpwYXNz"},
		{name: "empty bearer token", header: "Bearer   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAuthMiddleware(t)

			err := fx.middleware.Authenticate(okHandler)(newAuthContext(tt.header))

			assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
			fx.verifier.AssertNotCalled(t, "VerifyAccessToken", mock.Anything, mock.Anything)
		})
	}
}

func TestAuthMiddleware_Authenticate_InvalidToken(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	fx.verifier.EXPECT().VerifyAccessToken(mock.Anything, "expired").Return(nil, errors.New("token is expired")).Once()

	err := fx.middleware.Authenticate(okHandler)(newAuthContext("Bearer expired"))

	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
}

func TestAuthMiddleware_Authenticate_StoresIdentity(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	identity := &entity.Identity{UserID: uuid.New(), Email: "a@example.com"}
	fx.verifier.EXPECT().VerifyAccessToken(mock.Anything, "good").Return(identity, nil).Once()

	c := newAuthContext("Bearer good")
	var seen uuid.UUID
	err := fx.middleware.Authenticate(func(c echo.Context) error {
		id, ok := GetUserID(c)
		require.True(t, ok)
		seen = id

		ctxID, ok := deliverycontext.GetUserIDFromContext(c.Request().Context())
		require.True(t, ok)
		assert.Equal(t, id, ctxID)

		return okHandler(c)
	})(c)

	require.NoError(t, err)
	assert.Equal(t, identity.UserID, seen)
}

func TestAuthMiddleware_RequireAdmin(t *testing.T) {
	userID := uuid.New()

	withIdentity := func() echo.Context {
		c := newAuthContext("Bearer x")
		SetIdentity(c, &entity.Identity{UserID: userID})

		return c
	}

	t.Run("admin passes", func(t *testing.T) {
		fx := createTestAuthMiddleware(t)
		fx.authorizer.EXPECT().IsAdmin(mock.Anything, userID).Return(true, nil).Once()

		err := fx.middleware.RequireAdmin(okHandler)(withIdentity())

		require.NoError(t, err)
	})

	t.Run("customer is forbidden", func(t *testing.T) {
		fx := createTestAuthMiddleware(t)
		fx.authorizer.EXPECT().IsAdmin(mock.Anything, userID).Return(false, nil).Once()

		err := fx.middleware.RequireAdmin(okHandler)(withIdentity())

		assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
	})

	t.Run("predicate failure is upstream", func(t *testing.T) {
		fx := createTestAuthMiddleware(t)
		fx.authorizer.EXPECT().IsAdmin(mock.Anything, userID).Return(false, context.DeadlineExceeded).Once()

		err := fx.middleware.RequireAdmin(okHandler)(withIdentity())

		assert.True(t, errors.Is(err, domainerrors.ErrUpstreamFailure))
	})

	t.Run("no identity", func(t *testing.T) {
		fx := createTestAuthMiddleware(t)

		err := fx.middleware.RequireAdmin(okHandler)(newAuthContext(""))

		assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
		fx.authorizer.AssertNotCalled(t, "IsAdmin", mock.Anything, mock.Anything)
	})
}
