package service

import (
	"context"
	"time"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// IdentityVerifier exchanges a bearer credential for a verified identity.
type IdentityVerifier interface {
	VerifyAccessToken(ctx context.Context, token string) (*entity.Identity, error)
}

// TokenService issues the credentials that IdentityVerifier accepts.
type TokenService interface {
	IdentityVerifier

	// IssueAccessToken signs a short-lived access token for the user.
	IssueAccessToken(user *entity.User) (token string, expiresAt time.Time, err error)
}

// AdminAuthorizer is the privilege predicate evaluated for admin routes.
type AdminAuthorizer interface {
	IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error)
}
