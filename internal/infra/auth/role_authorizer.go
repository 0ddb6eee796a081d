package auth

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// roleAuthorizer answers the admin predicate from the stored user role,
// never from token claims.
type roleAuthorizer struct {
	users repository.UserRepository
}

// NewRoleAuthorizer creates the store-backed AdminAuthorizer.
func NewRoleAuthorizer(users repository.UserRepository) service.AdminAuthorizer {
	return &roleAuthorizer{users: users}
}

func (a *roleAuthorizer) IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error) {
	ok, err := a.users.HasRole(ctx, userID, entity.RoleAdmin)
	if err != nil {
		return false, errors.Wrap(err, "failed to evaluate admin role")
	}

	return ok, nil
}
