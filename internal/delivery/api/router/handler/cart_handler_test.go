package handler

import (
	"net/http"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockUsecase "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type cartHandlerFixtures struct {
	handler *CartHandler
	cartUC  *mockUsecase.MockCartUsecase
}

func createTestCartHandler(t *testing.T) cartHandlerFixtures {
	fx := cartHandlerFixtures{cartUC: mockUsecase.NewMockCartUsecase(t)}
	fx.handler = NewCartHandler(CartHandlerParams{CartUC: fx.cartUC, Logger: newDiscardLogger()})

	return fx
}

func TestCartHandler_GetCart_NoCartIsEmptyView(t *testing.T) {
	fx := createTestCartHandler(t)
	userID := uuid.New()

	fx.cartUC.EXPECT().GetCart(mock.Anything, userID).Return(entity.NewCartView(nil, nil), nil)

	c, rec := newTestContext(http.MethodGet, "/api/v1/cart", "", &userID)
	require.NoError(t, fx.handler.GetCart(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	body, data := decodeSuccess(t, rec)
	assert.JSONEq(t, `true`, string(body["success"]))
	assert.Contains(t, string(data), `"cartId":null`)
	assert.Contains(t, string(data), `"items":[]`)
}

func TestCartHandler_AddItem_UsesIdentityNotBody(t *testing.T) {
	fx := createTestCartHandler(t)
	userID := uuid.New()
	productID := uuid.New()

	fx.cartUC.EXPECT().
		AddItem(mock.Anything, userID, mock.MatchedBy(func(in *usecase.AddItemInput) bool {
			return in.ProductID == productID && in.Quantity == 2
		})).
		Return(entity.NewCartView(&entity.Cart{ID: uuid.New(), UserID: userID}, nil), nil)

	body := `{"productId":"` + productID.String() + `","quantity":2,"userId":"` + uuid.NewString() + `"}`
	c, rec := newTestContext(http.MethodPost, "/api/v1/cart/items", body, &userID)
	require.NoError(t, fx.handler.AddItem(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCartHandler_AddItem_ZeroQuantity(t *testing.T) {
	fx := createTestCartHandler(t)
	userID := uuid.New()

	body := `{"productId":"` + uuid.NewString() + `","quantity":0}`
	c, rec := newTestContext(http.MethodPost, "/api/v1/cart/items", body, &userID)
	require.NoError(t, fx.handler.AddItem(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_INPUT", decodeError(t, rec).Code)
	fx.cartUC.AssertNotCalled(t, "AddItem", mock.Anything, mock.Anything, mock.Anything)
}

func TestCartHandler_AddItem_UnknownProduct(t *testing.T) {
	fx := createTestCartHandler(t)
	userID := uuid.New()
	productID := uuid.New()

	fx.cartUC.EXPECT().AddItem(mock.Anything, userID, mock.Anything).
		Return(nil, domainerrors.ErrProductNotFound.WithDetails(productID.String()))

	body := `{"productId":"` + productID.String() + `","quantity":1}`
	c, rec := newTestContext(http.MethodPost, "/api/v1/cart/items", body, &userID)
	require.NoError(t, fx.handler.AddItem(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	errBody := decodeError(t, rec)
	assert.Equal(t, "PRODUCT_NOT_FOUND", errBody.Code)
	assert.Equal(t, productID.String(), errBody.Details)
}

func TestCartHandler_AddCollection(t *testing.T) {
	fx := createTestCartHandler(t)
	userID := uuid.New()

	fx.cartUC.EXPECT().AddCollection(mock.Anything, userID, "summer-kit", 3).
		Return(entity.NewCartView(nil, nil), nil)

	c, rec := newTestContext(http.MethodPost, "/api/v1/cart/collections/summer-kit", `{"quantity":3}`, &userID)
	c.SetParamNames("slug")
	c.SetParamValues("summer-kit")
	require.NoError(t, fx.handler.AddCollection(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCartHandler_RemoveItem_BadID(t *testing.T) {
	fx := createTestCartHandler(t)
	userID := uuid.New()

	c, rec := newTestContext(http.MethodDelete, "/api/v1/cart/items/xyz", "", &userID)
	c.SetParamNames("productId")
	c.SetParamValues("xyz")
	require.NoError(t, fx.handler.RemoveItem(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCartHandler_Clear_WithoutIdentity(t *testing.T) {
	fx := createTestCartHandler(t)

	c, rec := newTestContext(http.MethodDelete, "/api/v1/cart", "", nil)
	require.NoError(t, fx.handler.Clear(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "UNAUTHENTICATED", decodeError(t, rec).Code)
}
