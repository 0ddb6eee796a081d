package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// ErrCartNotFound is returned when a user has no cart yet.
var ErrCartNotFound = errors.New("cart not found")

// CartRepository persists carts and their items. The store enforces one cart
// per user and one item per (cart, product).
type CartRepository interface {
	// FindByUserID returns the user's cart or ErrCartNotFound.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Cart, error)

	// CreateIfAbsent inserts a cart for userID unless one exists, then reads
	// back whichever row won. Concurrent callers all receive the same cart.
	CreateIfAbsent(ctx context.Context, userID uuid.UUID) (*entity.Cart, error)

	// UpsertItems writes all items in one statement. An existing
	// (cart, product) row has its quantity and origin tag replaced.
	UpsertItems(ctx context.Context, items []*entity.CartItem) error

	// RemoveItem deletes one product line; a missing line is not an error.
	RemoveItem(ctx context.Context, cartID, productID uuid.UUID) error

	// ClearItems deletes every item in the cart and reports how many went.
	ClearItems(ctx context.Context, cartID uuid.UUID) (int64, error)

	// FindLines returns the cart's items joined with live product data,
	// read from the primary.
	FindLines(ctx context.Context, cartID uuid.UUID) ([]*entity.CartLine, error)
}
