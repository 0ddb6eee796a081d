package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/query"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type catalogServiceFixtures struct {
	service        usecase.CatalogUsecase
	productRepo    *mockRepo.MockProductRepository
	categoryRepo   *mockRepo.MockCategoryRepository
	collectionRepo *mockRepo.MockCollectionRepository
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	fx := catalogServiceFixtures{
		productRepo:    mockRepo.NewMockProductRepository(t),
		categoryRepo:   mockRepo.NewMockCategoryRepository(t),
		collectionRepo: mockRepo.NewMockCollectionRepository(t),
	}

	fx.service = NewCatalogService(CatalogServiceParams{
		ProductRepo:    fx.productRepo,
		CategoryRepo:   fx.categoryRepo,
		CollectionRepo: fx.collectionRepo,
		Config:         newTestConfig(),
		Logger:         newDiscardLogger(),
	})

	return fx
}

func TestCatalogService_ListProducts_AppliesFiltersAndDefaults(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	category := &entity.Category{ID: uuid.New(), Slug: "shoes"}
	minPrice := decimal.RequireFromString("10")
	maxPrice := decimal.RequireFromString("50")
	trending := true
	products := []*entity.Product{activeProduct("20.00"), activeProduct("30.00")}

	fx.categoryRepo.EXPECT().FindBySlug(ctx, "shoes").Return(category, nil)
	fx.productRepo.EXPECT().
		List(ctx, mock.MatchedBy(func(f repository.ProductFilter) bool {
			return f.CategoryID != nil && *f.CategoryID == category.ID &&
				f.Active != nil && *f.Active &&
				f.MinPrice.Equal(minPrice) && f.MaxPrice.Equal(maxPrice) &&
				f.Trending != nil && *f.Trending &&
				f.Page.Page == 1 && f.Page.Limit == 12 &&
				f.Sort.Column == "price" && !f.Sort.Desc
		})).
		Return(products, int64(25), nil)

	page, err := fx.service.ListProducts(ctx, &usecase.ProductQuery{
		Page:         query.PageRequest{Page: -4, SortBy: "price", SortOrder: query.SortAsc},
		CategorySlug: "shoes",
		MinPrice:     &minPrice,
		MaxPrice:     &maxPrice,
		Trending:     &trending,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(25), page.Count)
	assert.Equal(t, 1, page.CurrentPage)
	assert.Equal(t, 3, page.TotalPages)
	assert.LessOrEqual(t, len(page.Items), 12)
}

func TestCatalogService_ListProducts_UnknownCategoryIsEmpty(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()

	fx.categoryRepo.EXPECT().FindBySlug(ctx, "nope").Return(nil, repository.ErrCategoryNotFound)

	page, err := fx.service.ListProducts(ctx, &usecase.ProductQuery{CategorySlug: "nope"})

	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.NotNil(t, page.Items)
	assert.Equal(t, int64(0), page.Count)
	assert.Equal(t, 0, page.TotalPages)
	fx.productRepo.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestCatalogService_ListProducts_UnknownSortFallsBack(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()

	fx.productRepo.EXPECT().
		List(ctx, mock.MatchedBy(func(f repository.ProductFilter) bool {
			return f.Sort.Column == "created_at" && f.Sort.Desc && f.Page.Limit == 100
		})).
		Return([]*entity.Product{}, int64(0), nil)

	_, err := fx.service.ListProducts(ctx, &usecase.ProductQuery{
		Page: query.PageRequest{Limit: 5000, SortBy: "stock_quantity"},
	})

	require.NoError(t, err)
}

func TestCatalogService_ListProducts_InvalidPriceRange(t *testing.T) {
	fx := createTestCatalogService(t)

	minPrice := decimal.RequireFromString("80")
	maxPrice := decimal.RequireFromString("20")

	_, err := fx.service.ListProducts(context.Background(), &usecase.ProductQuery{MinPrice: &minPrice, MaxPrice: &maxPrice})

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
}

func TestCatalogService_GetProduct(t *testing.T) {
	t.Run("active product", func(t *testing.T) {
		fx := createTestCatalogService(t)
		product := activeProduct("4.00")
		fx.productRepo.EXPECT().FindBySlug(mock.Anything, product.Slug).Return(product, nil)

		got, err := fx.service.GetProduct(context.Background(), product.Slug)

		require.NoError(t, err)
		assert.Equal(t, product.ID, got.ID)
	})

	t.Run("inactive product is hidden", func(t *testing.T) {
		fx := createTestCatalogService(t)
		product := activeProduct("4.00")
		product.IsActive = false
		fx.productRepo.EXPECT().FindBySlug(mock.Anything, product.Slug).Return(product, nil)

		_, err := fx.service.GetProduct(context.Background(), product.Slug)

		assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
	})

	t.Run("store failure", func(t *testing.T) {
		fx := createTestCatalogService(t)
		fx.productRepo.EXPECT().FindBySlug(mock.Anything, "x").Return(nil, errors.New("timeout"))

		_, err := fx.service.GetProduct(context.Background(), "x")

		assert.True(t, errors.Is(err, domainerrors.ErrUpstreamFailure))
	})
}

func TestCatalogService_ListCategories(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()

	fx.categoryRepo.EXPECT().
		List(ctx, mock.MatchedBy(func(f repository.CategoryFilter) bool {
			return f.Page.Limit == 50 && f.Page.Search == "sh" && f.Sort.Column == "name"
		})).
		Return([]*entity.Category{{Name: "Shoes"}}, int64(1), nil)

	page, err := fx.service.ListCategories(ctx, query.PageRequest{Search: "  sh "})

	require.NoError(t, err)
	assert.Len(t, page.Items, 1)
	assert.Equal(t, 1, page.TotalPages)
}

func TestCatalogService_GetCategory_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)

	fx.categoryRepo.EXPECT().FindBySlug(mock.Anything, "ghost").Return(nil, repository.ErrCategoryNotFound)

	_, err := fx.service.GetCategory(context.Background(), "ghost")

	assert.True(t, errors.Is(err, domainerrors.ErrCategoryNotFound))
}

func TestCatalogService_GetCollection_HidesInactiveProducts(t *testing.T) {
	fx := createTestCatalogService(t)

	active := activeProduct("1.00")
	inactive := activeProduct("2.00")
	inactive.IsActive = false

	fx.collectionRepo.EXPECT().FindBySlug(mock.Anything, "gift-set").Return(&entity.Collection{
		Slug:     "gift-set",
		Products: []*entity.Product{active, inactive},
	}, nil)

	got, err := fx.service.GetCollection(context.Background(), "gift-set")

	require.NoError(t, err)
	require.Len(t, got.Products, 1)
	assert.Equal(t, active.ID, got.Products[0].ID)
}
