package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/api/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// CatalogHandler serves the public catalog.
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// ListProducts lists active products with filters and paging.
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	input, err := productQuery(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	page, err := h.catalogUC.ListProducts(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Page(c, page)
}

func productQuery(c echo.Context) (*usecase.ProductQuery, error) {
	input := &usecase.ProductQuery{
		Page:         pageRequest(c),
		CategorySlug: c.QueryParam("category"),
	}

	var err error
	if input.MinPrice, err = queryDecimal(c, "minPrice"); err != nil {
		return nil, err
	}
	if input.MaxPrice, err = queryDecimal(c, "maxPrice"); err != nil {
		return nil, err
	}
	if input.Trending, err = queryBool(c, "trending"); err != nil {
		return nil, err
	}
	if input.Featured, err = queryBool(c, "featured"); err != nil {
		return nil, err
	}
	if input.NewArrival, err = queryBool(c, "newArrival"); err != nil {
		return nil, err
	}

	return input, nil
}

// GetProduct returns one active product.
func (h *CatalogHandler) GetProduct(c echo.Context) error {
	product, err := h.catalogUC.GetProduct(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product)
}

// ListCategories lists categories with paging.
func (h *CatalogHandler) ListCategories(c echo.Context) error {
	page, err := h.catalogUC.ListCategories(c.Request().Context(), pageRequest(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Page(c, page)
}

// GetCategory returns one category.
func (h *CatalogHandler) GetCategory(c echo.Context) error {
	category, err := h.catalogUC.GetCategory(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, category)
}

// GetCollection returns a collection with its products.
func (h *CatalogHandler) GetCollection(c echo.Context) error {
	collection, err := h.catalogUC.GetCollection(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, collection)
}
