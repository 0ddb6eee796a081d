package handler

import (
	"context"
	"io"
	"net/http"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/query"
	mockUsecase "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type adminHandlerFixtures struct {
	handler *AdminHandler
	adminUC *mockUsecase.MockAdminUsecase
}

func createTestAdminHandler(t *testing.T) adminHandlerFixtures {
	fx := adminHandlerFixtures{adminUC: mockUsecase.NewMockAdminUsecase(t)}
	fx.handler = NewAdminHandler(AdminHandlerParams{AdminUC: fx.adminUC, Logger: newDiscardLogger()})

	return fx
}

func TestAdminHandler_UpdateProduct_SplitsImagesToDelete(t *testing.T) {
	fx := createTestAdminHandler(t)
	productID := uuid.New()

	fx.adminUC.EXPECT().
		UpdateProduct(mock.Anything, productID, mock.MatchedBy(func(p *usecase.ProductPatch) bool {
			_, hasImagesKey := p.Fields["imagesToDelete"]
			_, hasDescription := p.Fields["description"]

			return !hasImagesKey && hasDescription &&
				string(p.Fields["description"]) == "null" &&
				assert.ObjectsAreEqual([]string{"/a.png", "b/c.png"}, p.ImagesToDelete)
		})).
		Return(&entity.Product{ID: productID}, nil)

	body := `{"description":null,"imagesToDelete":["/a.png","b/c.png"]}`
	c, rec := newTestContext(http.MethodPatch, "/api/v1/admin/products/"+productID.String(), body, nil)
	c.SetParamNames("id")
	c.SetParamValues(productID.String())
	require.NoError(t, fx.handler.UpdateProduct(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminHandler_UpdateProduct_BadImagesList(t *testing.T) {
	fx := createTestAdminHandler(t)
	productID := uuid.New()

	c, rec := newTestContext(http.MethodPatch, "/api/v1/admin/products/"+productID.String(), `{"imagesToDelete":"a.png"}`, nil)
	c.SetParamNames("id")
	c.SetParamValues(productID.String())
	require.NoError(t, fx.handler.UpdateProduct(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdminHandler_CreateCategory_BodyMustBeObject(t *testing.T) {
	fx := createTestAdminHandler(t)

	c, rec := newTestContext(http.MethodPost, "/api/v1/admin/categories", `["Shoes"]`, nil)
	require.NoError(t, fx.handler.CreateCategory(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_INPUT", decodeError(t, rec).Code)
}

func TestAdminHandler_CreateCategory_NameConflict(t *testing.T) {
	fx := createTestAdminHandler(t)

	fx.adminUC.EXPECT().
		CreateCategory(mock.Anything, mock.MatchedBy(func(f usecase.FieldSet) bool {
			return string(f["name"]) == `"Shoes"`
		})).
		Return(nil, domainerrors.ErrCategoryNameConflict.WithMessagef("category name %q already exists", "Shoes"))

	c, rec := newTestContext(http.MethodPost, "/api/v1/admin/categories", `{"name":"Shoes"}`, nil)
	require.NoError(t, fx.handler.CreateCategory(c))

	assert.Equal(t, http.StatusConflict, rec.Code)
	errBody := decodeError(t, rec)
	assert.Equal(t, "CATEGORY_NAME_CONFLICT", errBody.Code)
	assert.Contains(t, errBody.Error, `"Shoes"`)
}

func TestAdminHandler_ListProducts(t *testing.T) {
	fx := createTestAdminHandler(t)

	fx.adminUC.EXPECT().
		ListProducts(mock.Anything, mock.MatchedBy(func(in *usecase.AdminProductQuery) bool {
			return in.Status == "inactive" && in.LowStock != nil && *in.LowStock == 5 && in.CategorySlug == "mugs"
		})).
		Return(query.EmptyPage[*entity.Product](query.PageRequest{Page: 1, Limit: 12}), nil)

	c, rec := newTestContext(http.MethodGet, "/api/v1/admin/products?status=inactive&lowStock=5&category=mugs", "", nil)
	require.NoError(t, fx.handler.ListProducts(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	_, data := decodeSuccess(t, rec)
	assert.JSONEq(t, `[]`, string(data))
}

func TestAdminHandler_ListProducts_BadLowStock(t *testing.T) {
	fx := createTestAdminHandler(t)

	c, rec := newTestContext(http.MethodGet, "/api/v1/admin/products?lowStock=few", "", nil)
	require.NoError(t, fx.handler.ListProducts(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdminHandler_ExportProducts(t *testing.T) {
	fx := createTestAdminHandler(t)
	const xlsxType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	fx.adminUC.EXPECT().ExportProducts(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, w io.Writer) (string, error) {
			_, err := w.Write([]byte("PK"))

			return xlsxType, err
		})

	c, rec := newTestContext(http.MethodGet, "/api/v1/admin/products/export", "", nil)
	require.NoError(t, fx.handler.ExportProducts(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, xlsxType, rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "products.xlsx")
	assert.Equal(t, "PK", rec.Body.String())
}

func TestAdminHandler_CreateCollection_Validation(t *testing.T) {
	fx := createTestAdminHandler(t)

	c, rec := newTestContext(http.MethodPost, "/api/v1/admin/collections", `{"slug":"gift-set"}`, nil)
	require.NoError(t, fx.handler.CreateCollection(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeError(t, rec).Details, "name")
}

func TestAdminHandler_DeleteCollection_NotFound(t *testing.T) {
	fx := createTestAdminHandler(t)
	id := uuid.New()

	fx.adminUC.EXPECT().DeleteCollection(mock.Anything, id).Return(domainerrors.ErrCollectionNotFound.WithDetails(id.String()))

	c, rec := newTestContext(http.MethodDelete, "/api/v1/admin/collections/"+id.String(), "", nil)
	c.SetParamNames("id")
	c.SetParamValues(id.String())
	require.NoError(t, fx.handler.DeleteCollection(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
