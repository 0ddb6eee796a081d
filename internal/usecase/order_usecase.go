package usecase

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/query"

	"github.com/google/uuid"
)

// OrderLineInput is one explicitly requested order line. Prices are never accepted from clients.
type OrderLineInput struct {
	ProductID uuid.UUID `json:"productId" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,min=1,max=999"`
}

// PlaceOrderInput describes a checkout. Without Items the lines come from the caller's cart.
type PlaceOrderInput struct {
	ShippingAddress entity.ShippingAddress `json:"shippingAddress" validate:"required"`
	Items           []OrderLineInput       `json:"items,omitempty" validate:"omitempty,max=200,dive"`
}

// PlaceOrderOutput is the committed order and whether it was built from the cart.
type PlaceOrderOutput struct {
	Order    *entity.Order
	FromCart bool
}

// OrderListInput is a listing request over orders.
type OrderListInput struct {
	Page   query.PageRequest
	Status string
}

// OrderUsecase materializes orders and serves order reads and admin transitions.
type OrderUsecase interface {
	// PlaceOrder commits header, items and stock changes as one unit. It
	// never clears the cart; that is the caller's follow-up step.
	PlaceOrder(ctx context.Context, userID uuid.UUID, input *PlaceOrderInput) (*PlaceOrderOutput, error)

	// GetOrder returns one of the user's own orders.
	GetOrder(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error)
	ListOrders(ctx context.Context, userID uuid.UUID, input *OrderListInput) (*query.Page[*entity.Order], error)

	// GetOrderQR renders the pickup code for one of the user's orders.
	GetOrderQR(ctx context.Context, userID, orderID uuid.UUID) ([]byte, error)

	ListAllOrders(ctx context.Context, input *OrderListInput) (*query.Page[*entity.Order], error)
	UpdateStatus(ctx context.Context, orderID uuid.UUID, status entity.OrderStatus) (*entity.Order, error)

	// ScanPickup resolves a scanned pickup code to its order.
	ScanPickup(ctx context.Context, qrData string) (*entity.Order, error)
}
