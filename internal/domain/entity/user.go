// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a storefront account. Shoppers and administrators share this shape;
// the stored Role decides which admin routes the account may reach.
type User struct {
	ID           uuid.UUID `json:"id"`        // The Global Unique Identifier (GUID) for the user.
	Email        string    `json:"email"`     // Login identifier, unique across accounts.
	Name         string    `json:"name"`      // Display name.
	PasswordHash string    `json:"-"`         // bcrypt hash of the password, never serialized.
	Role         Role      `json:"role"`      // Stored role, the source of truth for admin checks.
	CreatedAt    time.Time `json:"createdAt"` // Timestamp of when this account was created.
	UpdatedAt    time.Time `json:"updatedAt"` // Timestamp of the last modification.
}

// IsAdmin reports whether the stored role grants admin access.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// Identity is the verified caller attached to a request after its bearer
// token has been checked. It carries no authority beyond "who".
type Identity struct {
	UserID uuid.UUID `json:"userId"`
	Email  string    `json:"email"`
}
