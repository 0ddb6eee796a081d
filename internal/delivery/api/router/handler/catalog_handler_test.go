package handler

import (
	"net/http"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/query"
	mockUsecase "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type catalogHandlerFixtures struct {
	handler   *CatalogHandler
	catalogUC *mockUsecase.MockCatalogUsecase
}

func createTestCatalogHandler(t *testing.T) catalogHandlerFixtures {
	fx := catalogHandlerFixtures{catalogUC: mockUsecase.NewMockCatalogUsecase(t)}
	fx.handler = NewCatalogHandler(CatalogHandlerParams{CatalogUC: fx.catalogUC, Logger: newDiscardLogger()})

	return fx
}

func TestCatalogHandler_ListProducts_ParsesFilters(t *testing.T) {
	fx := createTestCatalogHandler(t)

	fx.catalogUC.EXPECT().
		ListProducts(mock.Anything, mock.MatchedBy(func(in *usecase.ProductQuery) bool {
			return in.CategorySlug == "shoes" &&
				in.MinPrice != nil && in.MinPrice.Equal(decimal.RequireFromString("10.5")) &&
				in.MaxPrice == nil &&
				in.Trending != nil && *in.Trending &&
				in.Featured == nil &&
				in.NewArrival != nil && !*in.NewArrival &&
				in.Page.Page == 1 && in.Page.Limit == 0 &&
				in.Page.Search == "run" && in.Page.SortBy == "price" && in.Page.SortOrder == query.SortDesc
		})).
		Return(&query.Page[*entity.Product]{Items: []*entity.Product{}, CurrentPage: 1}, nil)

	target := "/api/v1/products?category=shoes&minPrice=10.5&trending=true&newArrival=false&page=1&limit=abc&search=run&sortBy=price"
	c, rec := newTestContext(http.MethodGet, target, "", nil)
	require.NoError(t, fx.handler.ListProducts(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCatalogHandler_ListProducts_BadFilterValues(t *testing.T) {
	for _, target := range []string{
		"/api/v1/products?minPrice=cheap",
		"/api/v1/products?featured=maybe",
	} {
		t.Run(target, func(t *testing.T) {
			fx := createTestCatalogHandler(t)

			c, rec := newTestContext(http.MethodGet, target, "", nil)
			require.NoError(t, fx.handler.ListProducts(c))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "INVALID_INPUT", decodeError(t, rec).Code)
		})
	}
}

func TestCatalogHandler_GetProduct_NotFound(t *testing.T) {
	fx := createTestCatalogHandler(t)

	fx.catalogUC.EXPECT().GetProduct(mock.Anything, "ghost").Return(nil, domainerrors.ErrProductNotFound.WithDetails("ghost"))

	c, rec := newTestContext(http.MethodGet, "/api/v1/products/ghost", "", nil)
	c.SetParamNames("slug")
	c.SetParamValues("ghost")
	require.NoError(t, fx.handler.GetProduct(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCatalogHandler_ListCategories(t *testing.T) {
	fx := createTestCatalogHandler(t)

	fx.catalogUC.EXPECT().
		ListCategories(mock.Anything, mock.MatchedBy(func(p query.PageRequest) bool {
			return p.Limit == 20 && p.SortBy == "name" && p.SortOrder == query.SortAsc
		})).
		Return(&query.Page[*entity.Category]{Items: []*entity.Category{{Name: "Shoes", Slug: "shoes"}}, Count: 1, CurrentPage: 1, TotalPages: 1}, nil)

	c, rec := newTestContext(http.MethodGet, "/api/v1/categories?limit=20&sortBy=name&sortOrder=ASC", "", nil)
	require.NoError(t, fx.handler.ListCategories(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	_, data := decodeSuccess(t, rec)
	assert.Contains(t, string(data), `"slug":"shoes"`)
}
