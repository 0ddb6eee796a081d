package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from OrderStatus
		to   OrderStatus
		want bool
	}{
		{OrderStatusCreated, OrderStatusProcessing, true},
		{OrderStatusCreated, OrderStatusCancelled, true},
		{OrderStatusCreated, OrderStatusFulfilled, false},
		{OrderStatusProcessing, OrderStatusFulfilled, true},
		{OrderStatusProcessing, OrderStatusCancelled, true},
		{OrderStatusProcessing, OrderStatusCreated, false},
		{OrderStatusFulfilled, OrderStatusCancelled, false},
		{OrderStatusCancelled, OrderStatusProcessing, false},
		{OrderStatusCreated, OrderStatusCreated, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestOrder_ComputeTotal(t *testing.T) {
	order := &Order{
		Items: []*OrderItem{
			{ProductID: uuid.New(), Quantity: 2, UnitPrice: decimal.RequireFromString("19.99")},
			{ProductID: uuid.New(), Quantity: 3, UnitPrice: decimal.RequireFromString("0.10")},
		},
	}

	assert.True(t, decimal.RequireFromString("40.28").Equal(order.ComputeTotal()))
}

func TestOrder_ComputeTotalEmpty(t *testing.T) {
	assert.True(t, decimal.Zero.Equal((&Order{}).ComputeTotal()))
}

func TestNewCartView(t *testing.T) {
	t.Run("nil cart gives empty view", func(t *testing.T) {
		view := NewCartView(nil, nil)

		assert.Nil(t, view.CartID)
		assert.NotNil(t, view.Items)
		assert.Empty(t, view.Items)
		assert.Equal(t, 0, view.ItemCount)
		assert.True(t, decimal.Zero.Equal(view.Subtotal))
	})

	t.Run("subtotal uses live prices", func(t *testing.T) {
		cart := &Cart{ID: uuid.New(), UserID: uuid.New()}
		lines := []*CartLine{
			{ProductID: uuid.New(), Quantity: 2, Product: ProductSnapshot{Price: decimal.RequireFromString("5.50")}},
			{ProductID: uuid.New(), Quantity: 1, Product: ProductSnapshot{Price: decimal.RequireFromString("10")}},
		}

		view := NewCartView(cart, lines)

		assert.Equal(t, cart.ID, *view.CartID)
		assert.Len(t, view.Items, 2)
		assert.Equal(t, 3, view.ItemCount)
		assert.True(t, decimal.RequireFromString("21").Equal(view.Subtotal))
		assert.True(t, decimal.RequireFromString("11").Equal(view.Items[0].LineTotal))
	})
}
