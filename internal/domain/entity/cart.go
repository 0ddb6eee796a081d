package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Cart is the single mutable pre-purchase basket owned by a user.
type Cart struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CartItem is one product line in a cart, unique per (CartID, ProductID).
type CartItem struct {
	CartID    uuid.UUID `json:"cartId"`
	ProductID uuid.UUID `json:"productId"`
	Quantity  int       `json:"quantity"`
	OriginTag *string   `json:"originTag"` // Collection slug the line was added from, if any.
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ProductSnapshot is the live catalog data joined onto a cart line at read time.
type ProductSnapshot struct {
	Name          string          `json:"name"`
	Slug          string          `json:"slug"`
	Price         decimal.Decimal `json:"price"`
	Images        []string        `json:"images"`
	IsActive      bool            `json:"isActive"`
	StockQuantity int             `json:"stockQuantity"`
}

// CartLine is a CartItem joined with its product snapshot.
type CartLine struct {
	ProductID uuid.UUID       `json:"productId"`
	Quantity  int             `json:"quantity"`
	OriginTag *string         `json:"originTag"`
	Product   ProductSnapshot `json:"product"`
	LineTotal decimal.Decimal `json:"lineTotal"`
	AddedAt   time.Time       `json:"addedAt"`
}

// CartView is the read model returned after every cart read or mutation.
type CartView struct {
	CartID    *uuid.UUID      `json:"cartId"`
	Items     []*CartLine     `json:"items"`
	ItemCount int             `json:"itemCount"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// NewCartView builds the view for a cart and its joined lines. A nil cart
// yields the empty view used when the user has never added anything.
func NewCartView(cart *Cart, lines []*CartLine) *CartView {
	view := &CartView{
		Items:    make([]*CartLine, 0, len(lines)),
		Subtotal: decimal.Zero,
	}
	if cart != nil {
		id := cart.ID
		view.CartID = &id
	}

	for _, line := range lines {
		line.LineTotal = line.Product.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))
		view.Subtotal = view.Subtotal.Add(line.LineTotal)
		view.ItemCount += line.Quantity
		view.Items = append(view.Items, line)
	}

	return view
}
