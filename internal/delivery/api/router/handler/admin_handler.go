package handler

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"

	"storefront/internal/delivery/api/response"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	imagesToDeleteKey  = "imagesToDelete"
	exportFileName     = "products.xlsx"
	maxImagesPerDelete = 100
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	AdminUC usecase.AdminUsecase
	Logger  *slog.Logger
}

// AdminHandler serves privileged catalog mutations.
type AdminHandler struct {
	adminUC usecase.AdminUsecase
	logger  *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		adminUC: params.AdminUC,
		logger:  params.Logger,
	}
}

// decodeFieldSet reads the body as a JSON object keeping each value raw, so
// an absent key and an explicit null stay distinguishable.
func decodeFieldSet(c echo.Context) (usecase.FieldSet, error) {
	var fields usecase.FieldSet
	if err := json.NewDecoder(c.Request().Body).Decode(&fields); err != nil || fields == nil {
		return nil, domainerrors.ErrInvalidInput.WithDetails("request body must be a JSON object")
	}

	return fields, nil
}

// CreateCategory creates a category.
func (h *AdminHandler) CreateCategory(c echo.Context) error {
	fields, err := decodeFieldSet(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	category, err := h.adminUC.CreateCategory(c.Request().Context(), fields)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, category)
}

// UpdateCategory applies a partial category update.
func (h *AdminHandler) UpdateCategory(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	fields, err := decodeFieldSet(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	category, err := h.adminUC.UpdateCategory(c.Request().Context(), id, fields)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, category)
}

// DeleteCategory removes a category.
func (h *AdminHandler) DeleteCategory(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.adminUC.DeleteCategory(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Category deleted successfully"})
}

// CreateProduct creates a product.
func (h *AdminHandler) CreateProduct(c echo.Context) error {
	fields, err := decodeFieldSet(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	product, err := h.adminUC.CreateProduct(c.Request().Context(), fields)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, product)
}

// UpdateProduct applies a partial product update. The imagesToDelete key is
// not a column; it lists storage objects to remove after the write.
func (h *AdminHandler) UpdateProduct(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	fields, err := decodeFieldSet(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	patch := &usecase.ProductPatch{Fields: fields}
	if raw, ok := fields[imagesToDeleteKey]; ok {
		delete(fields, imagesToDeleteKey)
		if err := json.Unmarshal(raw, &patch.ImagesToDelete); err != nil {
			return response.HandleAppError(c, domainerrors.ErrInvalidInput.WithDetails("imagesToDelete must be an array of strings"))
		}
		if len(patch.ImagesToDelete) > maxImagesPerDelete {
			return response.HandleAppError(c, domainerrors.ErrInvalidInput.WithDetails("too many images to delete"))
		}
	}

	product, err := h.adminUC.UpdateProduct(c.Request().Context(), id, patch)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product)
}

// DeleteProduct removes a product.
func (h *AdminHandler) DeleteProduct(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.adminUC.DeleteProduct(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Product deleted successfully"})
}

// ListProducts is the admin listing, including inactive products.
func (h *AdminHandler) ListProducts(c echo.Context) error {
	lowStock, err := queryInt(c, "lowStock")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	page, err := h.adminUC.ListProducts(c.Request().Context(), &usecase.AdminProductQuery{
		Page:         pageRequest(c),
		CategorySlug: c.QueryParam("category"),
		Status:       c.QueryParam("status"),
		LowStock:     lowStock,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Page(c, page)
}

// ExportProducts downloads the catalog as a spreadsheet.
func (h *AdminHandler) ExportProducts(c echo.Context) error {
	var buf bytes.Buffer
	contentType, err := h.adminUC.ExportProducts(c.Request().Context(), &buf)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+exportFileName+`"`)

	return c.Blob(http.StatusOK, contentType, buf.Bytes())
}

// CreateCollection creates a curated collection.
func (h *AdminHandler) CreateCollection(c echo.Context) error {
	var req usecase.CollectionInput
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	collection, err := h.adminUC.CreateCollection(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, collection)
}

// DeleteCollection removes a collection.
func (h *AdminHandler) DeleteCollection(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.adminUC.DeleteCollection(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Collection deleted successfully"})
}
