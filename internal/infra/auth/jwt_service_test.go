package auth

import (
	"context"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(t *testing.T) *jwtService {
	t.Helper()

	cfg := &config.Config{Auth: &config.AuthConfig{AccessTokenTTL: 15 * time.Minute, Issuer: "storefront"}}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestJWTService_IssueAndVerify(t *testing.T) {
	svc := newTestJWTService(t)
	user := &entity.User{ID: uuid.New(), Email: "ada@example.com", Role: entity.RoleAdmin}

	token, expiresAt, err := svc.IssueAccessToken(user)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(15*time.Minute), expiresAt, 5*time.Second)

	identity, err := svc.VerifyAccessToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, identity.UserID)
	assert.Equal(t, "ada@example.com", identity.Email)
}

func TestJWTService_RejectsInvalidTokens(t *testing.T) {
	svc := newTestJWTService(t)
	userID := uuid.New()

	sign := func(claims jwt.Claims, method jwt.SigningMethod, key any) string {
		s, err := jwt.NewWithClaims(method, claims).SignedString(key)
		require.NoError(t, err)

		return s
	}
	valid := func() accessClaims {
		return accessClaims{
			Type: tokenTypeAccess,
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   userID.String(),
				Issuer:    "storefront",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
			},
		}
	}

	expired := valid()
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))

	wrongIssuer := valid()
	wrongIssuer.Issuer = "someone-else"

	refresh := valid()
	refresh.Type = "refresh"

	badSubject := valid()
	badSubject.Subject = "not-a-uuid"

	noExpiry := valid()
	noExpiry.ExpiresAt = nil

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "clearly-not-a-jwt-token-format"},
		{"wrong secret", sign(valid(), jwt.SigningMethodHS256, []byte("another-secret"))},
		{"unsigned", sign(valid(), jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType)},
		{"expired", sign(expired, jwt.SigningMethodHS256, svc.accessSecret)},
		{"wrong issuer", sign(wrongIssuer, jwt.SigningMethodHS256, svc.accessSecret)},
		{"refresh type", sign(refresh, jwt.SigningMethodHS256, svc.accessSecret)},
		{"bad subject", sign(badSubject, jwt.SigningMethodHS256, svc.accessSecret)},
		{"no expiry", sign(noExpiry, jwt.SigningMethodHS256, svc.accessSecret)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			identity, err := svc.VerifyAccessToken(context.Background(), tt.token)
			assert.Nil(t, identity)
			assert.True(t, errors.Is(err, ErrInvalidToken))
		})
	}
}

func TestJWTService_EmptySecret(t *testing.T) {
	svc, err := NewJWTService(&config.Config{})
	assert.Nil(t, svc)
	assert.EqualError(t, err, "jwt secrets must be provided")
}
