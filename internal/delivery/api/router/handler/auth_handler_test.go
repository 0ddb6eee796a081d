package handler

import (
	"net/http"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockUsecase "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAuthHandler_Register(t *testing.T) {
	authUC := mockUsecase.NewMockAuthUsecase(t)
	h := NewAuthHandler(AuthHandlerParams{AuthUC: authUC, Logger: newDiscardLogger()})

	authUC.EXPECT().
		Register(mock.Anything, mock.MatchedBy(func(in *usecase.RegisterInput) bool {
			return in.Email == "ada@example.com" && in.Name == "Ada"
		})).
		Return(&usecase.AuthOutput{
			User:        &entity.User{ID: uuid.New(), Email: "ada@example.com"},
			AccessToken: "token",
			ExpiresAt:   time.Now().Add(time.Hour),
		}, nil)

	c, rec := newTestContext(http.MethodPost, "/auth/register", `{"name":"Ada","email":"ada@example.com","password":"correct horse"}`, nil)
	require.NoError(t, h.Register(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	_, data := decodeSuccess(t, rec)
	assert.Contains(t, string(data), `"accessToken":"token"`)
}

func TestAuthHandler_Register_ShortPassword(t *testing.T) {
	authUC := mockUsecase.NewMockAuthUsecase(t)
	h := NewAuthHandler(AuthHandlerParams{AuthUC: authUC, Logger: newDiscardLogger()})

	c, rec := newTestContext(http.MethodPost, "/auth/register", `{"name":"Ada","email":"ada@example.com","password":"short"}`, nil)
	require.NoError(t, h.Register(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeError(t, rec).Details, "password")
}

func TestAuthHandler_Login_WrongPassword(t *testing.T) {
	authUC := mockUsecase.NewMockAuthUsecase(t)
	h := NewAuthHandler(AuthHandlerParams{AuthUC: authUC, Logger: newDiscardLogger()})

	authUC.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidCredentials)

	c, rec := newTestContext(http.MethodPost, "/auth/login", `{"email":"ada@example.com","password":"nope"}`, nil)
	require.NoError(t, h.Login(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "INVALID_CREDENTIALS", decodeError(t, rec).Code)
}
