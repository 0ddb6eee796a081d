package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/query"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when an order does not exist or is not visible to the caller.
var ErrOrderNotFound = errors.New("order not found")

// OrderFilter narrows an order listing. UserID nil lists every user's orders.
type OrderFilter struct {
	Page   query.PageRequest
	Sort   query.Sort
	UserID *uuid.UUID
	Status *entity.OrderStatus
}

// OrderRepository persists order headers and their immutable items.
type OrderRepository interface {
	// CreateHeader inserts the order row without items.
	CreateHeader(ctx context.Context, order *entity.Order) error

	// CreateItems inserts all items in one statement. Rows already present for
	// (order, product) are left as they are, so a repeated call cannot duplicate lines.
	CreateItems(ctx context.Context, items []*entity.OrderItem) error

	// CountItems reports how many item rows exist for an order.
	CountItems(ctx context.Context, orderID uuid.UUID) (int64, error)

	// FindByID loads an order with its items.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// LockByID loads an order with its items and holds a row lock on the header.
	LockByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// List returns one page of orders with items and the total matching count.
	List(ctx context.Context, filter OrderFilter) ([]*entity.Order, int64, error)

	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error
}
