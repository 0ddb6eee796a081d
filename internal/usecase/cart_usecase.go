package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// AddItemInput adds or replaces one product line.
type AddItemInput struct {
	ProductID uuid.UUID `json:"productId" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,min=1,max=999"`
	OriginTag *string   `json:"originTag,omitempty" validate:"omitempty,max=200"`
}

// BulkAddInput sets the same quantity for every listed product.
type BulkAddInput struct {
	ProductIDs []uuid.UUID `json:"productIds" validate:"required,max=200"`
	Quantity   int         `json:"quantity" validate:"required,min=1,max=999"`
	OriginTag  *string     `json:"originTag,omitempty" validate:"omitempty,max=200"`
}

// CartUsecase is the cart store accessor and mutation engine. Every
// mutation returns the cart as re-read after the write.
type CartUsecase interface {
	// GetOrCreateCart returns the user's only cart, creating it if needed.
	GetOrCreateCart(ctx context.Context, userID uuid.UUID) (*entity.Cart, error)

	// GetCart returns the cart with live product data. A user without a
	// cart gets an empty view, not an error.
	GetCart(ctx context.Context, userID uuid.UUID) (*entity.CartView, error)

	AddItem(ctx context.Context, userID uuid.UUID, input *AddItemInput) (*entity.CartView, error)
	BulkAdd(ctx context.Context, userID uuid.UUID, input *BulkAddInput) (*entity.CartView, error)

	// AddCollection bulk-adds every product of a collection, tagged with its slug.
	AddCollection(ctx context.Context, userID uuid.UUID, slug string, quantity int) (*entity.CartView, error)

	RemoveItem(ctx context.Context, userID, productID uuid.UUID) (*entity.CartView, error)

	// Clear empties the cart. It succeeds when the user has no cart.
	Clear(ctx context.Context, userID uuid.UUID) (*entity.CartView, error)
}
