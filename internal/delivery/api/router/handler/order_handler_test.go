package handler

import (
	"net/http"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/query"
	"storefront/internal/errors"
	mockUsecase "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const checkoutBody = `{"shippingAddress":{"fullName":"Ada Lovelace","line1":"1 Analytical Way","city":"London","postalCode":"N1","country":"GB"}`

type orderHandlerFixtures struct {
	handler *OrderHandler
	orderUC *mockUsecase.MockOrderUsecase
	cartUC  *mockUsecase.MockCartUsecase
}

func createTestOrderHandler(t *testing.T) orderHandlerFixtures {
	fx := orderHandlerFixtures{
		orderUC: mockUsecase.NewMockOrderUsecase(t),
		cartUC:  mockUsecase.NewMockCartUsecase(t),
	}
	fx.handler = NewOrderHandler(OrderHandlerParams{
		OrderUC: fx.orderUC,
		CartUC:  fx.cartUC,
		Logger:  newDiscardLogger(),
	})

	return fx
}

func placedOrder(userID uuid.UUID) *entity.Order {
	return &entity.Order{
		ID:          uuid.New(),
		UserID:      userID,
		Status:      entity.OrderStatusCreated,
		TotalAmount: decimal.RequireFromString("54.98"),
	}
}

func TestOrderHandler_PlaceOrder_FromCartClearsCart(t *testing.T) {
	fx := createTestOrderHandler(t)
	userID := uuid.New()
	order := placedOrder(userID)

	fx.orderUC.EXPECT().
		PlaceOrder(mock.Anything, userID, mock.MatchedBy(func(in *usecase.PlaceOrderInput) bool {
			return in.ShippingAddress.FullName == "Ada Lovelace" && len(in.Items) == 0
		})).
		Return(&usecase.PlaceOrderOutput{Order: order, FromCart: true}, nil)
	fx.cartUC.EXPECT().Clear(mock.Anything, userID).Return(entity.NewCartView(nil, nil), nil).Once()

	c, rec := newTestContext(http.MethodPost, "/api/v1/orders", checkoutBody+`}`, &userID)
	require.NoError(t, fx.handler.PlaceOrder(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	_, data := decodeSuccess(t, rec)
	assert.Contains(t, string(data), order.ID.String())
}

func TestOrderHandler_PlaceOrder_KeepCart(t *testing.T) {
	fx := createTestOrderHandler(t)
	userID := uuid.New()

	fx.orderUC.EXPECT().PlaceOrder(mock.Anything, userID, mock.Anything).
		Return(&usecase.PlaceOrderOutput{Order: placedOrder(userID), FromCart: true}, nil)

	c, rec := newTestContext(http.MethodPost, "/api/v1/orders", checkoutBody+`,"keepCart":true}`, &userID)
	require.NoError(t, fx.handler.PlaceOrder(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	fx.cartUC.AssertNotCalled(t, "Clear", mock.Anything, mock.Anything)
}

func TestOrderHandler_PlaceOrder_ExplicitItemsLeaveCart(t *testing.T) {
	fx := createTestOrderHandler(t)
	userID := uuid.New()
	productID := uuid.New()

	fx.orderUC.EXPECT().
		PlaceOrder(mock.Anything, userID, mock.MatchedBy(func(in *usecase.PlaceOrderInput) bool {
			return len(in.Items) == 1 && in.Items[0].ProductID == productID && in.Items[0].Quantity == 2
		})).
		Return(&usecase.PlaceOrderOutput{Order: placedOrder(userID)}, nil)

	body := checkoutBody + `,"items":[{"productId":"` + productID.String() + `","quantity":2}]}`
	c, rec := newTestContext(http.MethodPost, "/api/v1/orders", body, &userID)
	require.NoError(t, fx.handler.PlaceOrder(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	fx.cartUC.AssertNotCalled(t, "Clear", mock.Anything, mock.Anything)
}

func TestOrderHandler_PlaceOrder_ClearFailureStillSucceeds(t *testing.T) {
	fx := createTestOrderHandler(t)
	userID := uuid.New()

	fx.orderUC.EXPECT().PlaceOrder(mock.Anything, userID, mock.Anything).
		Return(&usecase.PlaceOrderOutput{Order: placedOrder(userID), FromCart: true}, nil)
	fx.cartUC.EXPECT().Clear(mock.Anything, userID).Return(nil, errors.New("connection reset"))

	c, rec := newTestContext(http.MethodPost, "/api/v1/orders", checkoutBody+`}`, &userID)
	require.NoError(t, fx.handler.PlaceOrder(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestOrderHandler_PlaceOrder_MissingAddress(t *testing.T) {
	fx := createTestOrderHandler(t)
	userID := uuid.New()

	c, rec := newTestContext(http.MethodPost, "/api/v1/orders", `{"shippingAddress":{"fullName":"Ada"}}`, &userID)
	require.NoError(t, fx.handler.PlaceOrder(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_INPUT", decodeError(t, rec).Code)
}

func TestOrderHandler_PlaceOrder_InsufficientStock(t *testing.T) {
	fx := createTestOrderHandler(t)
	userID := uuid.New()

	fx.orderUC.EXPECT().PlaceOrder(mock.Anything, userID, mock.Anything).
		Return(nil, domainerrors.ErrInsufficientStock.WithMessagef("insufficient stock for %s", "blue-mug"))

	c, rec := newTestContext(http.MethodPost, "/api/v1/orders", checkoutBody+`}`, &userID)
	require.NoError(t, fx.handler.PlaceOrder(c))

	assert.Equal(t, http.StatusConflict, rec.Code)
	errBody := decodeError(t, rec)
	assert.Equal(t, "INSUFFICIENT_STOCK", errBody.Code)
	assert.Contains(t, errBody.Error, "blue-mug")
	fx.cartUC.AssertNotCalled(t, "Clear", mock.Anything, mock.Anything)
}

func TestOrderHandler_GetOrderQR(t *testing.T) {
	fx := createTestOrderHandler(t)
	userID := uuid.New()
	orderID := uuid.New()
	png := []byte{0x89, 'P', 'N', 'G'}

	fx.orderUC.EXPECT().GetOrderQR(mock.Anything, userID, orderID).Return(png, nil)

	c, rec := newTestContext(http.MethodGet, "/api/v1/orders/"+orderID.String()+"/qr", "", &userID)
	c.SetParamNames("id")
	c.SetParamValues(orderID.String())
	require.NoError(t, fx.handler.GetOrderQR(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestOrderHandler_ListOrders_PagingFields(t *testing.T) {
	fx := createTestOrderHandler(t)
	userID := uuid.New()

	fx.orderUC.EXPECT().
		ListOrders(mock.Anything, userID, mock.MatchedBy(func(in *usecase.OrderListInput) bool {
			return in.Page.Page == 2 && in.Page.Limit == 5 && in.Status == "created" &&
				in.Page.SortBy == "total_amount" && in.Page.SortOrder == query.SortAsc
		})).
		Return(&query.Page[*entity.Order]{Items: []*entity.Order{placedOrder(userID)}, Count: 6, CurrentPage: 2, TotalPages: 2}, nil)

	c, rec := newTestContext(http.MethodGet, "/api/v1/orders?page=2&limit=5&status=created&sortBy=total_amount&sortOrder=asc", "", &userID)
	require.NoError(t, fx.handler.ListOrders(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	body, _ := decodeSuccess(t, rec)
	assert.JSONEq(t, `6`, string(body["count"]))
	assert.JSONEq(t, `2`, string(body["currentPage"]))
	assert.JSONEq(t, `2`, string(body["totalPages"]))
}

func TestOrderHandler_UpdateStatus(t *testing.T) {
	fx := createTestOrderHandler(t)
	orderID := uuid.New()

	fx.orderUC.EXPECT().UpdateStatus(mock.Anything, orderID, entity.OrderStatusCancelled).
		Return(nil, domainerrors.ErrInvalidStatusTransition.WithMessagef("cannot move order from %s to %s", "fulfilled", "cancelled"))

	c, rec := newTestContext(http.MethodPatch, "/api/v1/admin/orders/"+orderID.String()+"/status", `{"status":" Cancelled "}`, nil)
	c.SetParamNames("id")
	c.SetParamValues(orderID.String())
	require.NoError(t, fx.handler.UpdateStatus(c))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "INVALID_STATUS_TRANSITION", decodeError(t, rec).Code)
}

func TestOrderHandler_ScanPickup(t *testing.T) {
	fx := createTestOrderHandler(t)
	order := placedOrder(uuid.New())

	fx.orderUC.EXPECT().ScanPickup(mock.Anything, "order:"+order.ID.String()).Return(order, nil)

	c, rec := newTestContext(http.MethodPost, "/api/v1/admin/orders/scan", `{"qrData":"order:`+order.ID.String()+`"}`, nil)
	require.NoError(t, fx.handler.ScanPickup(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}
