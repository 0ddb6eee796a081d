package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/query"
	"storefront/internal/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Catalog persistence errors.
var (
	ErrProductNotFound    = errors.New("product not found")
	ErrCategoryNotFound   = errors.New("category not found")
	ErrCollectionNotFound = errors.New("collection not found")
	// ErrInsufficientStock is returned when a conditional stock decrement matches no row.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// ProductFilter narrows a product listing.
type ProductFilter struct {
	Page       query.PageRequest
	Sort       query.Sort
	CategoryID *uuid.UUID
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
	Trending   *bool
	Featured   *bool
	NewArrival *bool
	Active     *bool // nil lists both active and inactive products
	LowStock   *int  // stock_quantity <= LowStock
}

// CategoryFilter narrows a category listing.
type CategoryFilter struct {
	Page query.PageRequest
	Sort query.Sort
}

// ProductRepository defines product persistence. Create and Update take
// storage column maps produced by the product field table.
type ProductRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	FindBySlug(ctx context.Context, slug string) (*entity.Product, error)

	// FindByIDs returns the products that exist among ids, in no particular order.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error)

	// LockByIDs is FindByIDs with row locks held until the transaction ends.
	LockByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error)

	// List returns one page of products and the total matching count.
	List(ctx context.Context, filter ProductFilter) ([]*entity.Product, int64, error)

	// ListAll returns every product ordered by name, for exports.
	ListAll(ctx context.Context) ([]*entity.Product, error)

	Create(ctx context.Context, id uuid.UUID, columns map[string]any) (*entity.Product, error)
	Update(ctx context.Context, id uuid.UUID, columns map[string]any) (*entity.Product, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// DecrementStock subtracts qty only when enough stock remains,
	// otherwise it returns ErrInsufficientStock.
	DecrementStock(ctx context.Context, id uuid.UUID, qty int) error

	// IncrementStock returns qty units to stock.
	IncrementStock(ctx context.Context, id uuid.UUID, qty int) error
}

// CategoryRepository defines category persistence.
type CategoryRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)
	FindBySlug(ctx context.Context, slug string) (*entity.Category, error)
	List(ctx context.Context, filter CategoryFilter) ([]*entity.Category, int64, error)
	Create(ctx context.Context, id uuid.UUID, columns map[string]any) (*entity.Category, error)
	Update(ctx context.Context, id uuid.UUID, columns map[string]any) (*entity.Category, error)

	// Delete removes a category. Products still referencing it make this fail with a conflict.
	Delete(ctx context.Context, id uuid.UUID) error
}

// CollectionRepository defines collection persistence.
type CollectionRepository interface {
	// FindBySlug returns the collection with its member products.
	FindBySlug(ctx context.Context, slug string) (*entity.Collection, error)

	// Create stores the collection and its membership rows together.
	Create(ctx context.Context, collection *entity.Collection, productIDs []uuid.UUID) error

	Delete(ctx context.Context, id uuid.UUID) error
}
