package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a sellable catalog item.
type Product struct {
	ID            uuid.UUID       `json:"id"`
	Name          string          `json:"name"`
	Slug          string          `json:"slug"`
	Description   *string         `json:"description"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity int             `json:"stockQuantity"`
	CategoryID    *uuid.UUID      `json:"categoryId"`
	IsActive      bool            `json:"isActive"`
	Images        []string        `json:"images"`
	IsTrending    bool            `json:"isTrending"`
	IsFeatured    bool            `json:"isFeatured"`
	IsNewArrival  bool            `json:"isNewArrival"`
	Rating        float64         `json:"rating"`
	ReviewCount   int             `json:"reviewCount"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// Purchasable reports whether the product can be put in a cart.
func (p *Product) Purchasable() bool {
	return p != nil && p.IsActive
}

// Category groups products for browsing.
type Category struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description *string   `json:"description"`
	ImageURL    *string   `json:"imageUrl"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Collection is a curated, named set of products that can be added to a cart in one step.
type Collection struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Slug        string     `json:"slug"`
	Description *string    `json:"description"`
	Products    []*Product `json:"products"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// ProductIDs lists member product IDs in collection order.
func (c *Collection) ProductIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(c.Products))
	for _, p := range c.Products {
		ids = append(ids, p.ID)
	}

	return ids
}
