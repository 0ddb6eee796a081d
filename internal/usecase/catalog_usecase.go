package usecase

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/query"

	"github.com/shopspring/decimal"
)

// ProductQuery is the public product listing request. Only active products are listed.
type ProductQuery struct {
	Page         query.PageRequest
	CategorySlug string
	MinPrice     *decimal.Decimal
	MaxPrice     *decimal.Decimal
	Trending     *bool
	Featured     *bool
	NewArrival   *bool
}

// CatalogUsecase is the public read side of the catalog.
type CatalogUsecase interface {
	ListProducts(ctx context.Context, input *ProductQuery) (*query.Page[*entity.Product], error)

	// GetProduct returns an active product by slug.
	GetProduct(ctx context.Context, slug string) (*entity.Product, error)

	ListCategories(ctx context.Context, page query.PageRequest) (*query.Page[*entity.Category], error)
	GetCategory(ctx context.Context, slug string) (*entity.Category, error)

	// GetCollection returns a collection with its active products.
	GetCollection(ctx context.Context, slug string) (*entity.Collection, error)
}
