package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/response"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	CartUC  usecase.CartUsecase
	Logger  *slog.Logger
}

// OrderHandler serves checkout, order reads and the admin order desk.
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	cartUC  usecase.CartUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		cartUC:  params.CartUC,
		logger:  params.Logger,
	}
}

// PlaceOrderRequest is the checkout body. KeepCart leaves the cart intact
// after an order built from it.
type PlaceOrderRequest struct {
	usecase.PlaceOrderInput
	KeepCart bool `json:"keepCart"`
}

// UpdateStatusRequest is the admin status change body.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// ScanRequest carries the decoded content of a pickup QR code.
type ScanRequest struct {
	QRData string `json:"qrData" validate:"required,max=512"`
}

// PlaceOrder commits an order. Clearing the cart afterwards is a separate
// step whose failure does not undo the order.
func (h *OrderHandler) PlaceOrder(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}

	var req PlaceOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, domainerrors.ErrInvalidInput.ErrorCode(), "Invalid order input")
	}
	if err := c.Validate(&req.PlaceOrderInput); err != nil {
		return response.HandleAppError(c, err)
	}

	ctx := c.Request().Context()
	out, err := h.orderUC.PlaceOrder(ctx, userID, &req.PlaceOrderInput)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if out.FromCart && !req.KeepCart {
		if _, err := h.cartUC.Clear(ctx, userID); err != nil {
			deliverycontext.GetLoggerOrDefault(ctx, h.logger).Error("Cart clear after order failed",
				slog.String("orderID", out.Order.ID.String()),
				slog.String("userID", userID.String()),
				slog.Any("error", err),
			)
		}
	}

	return response.Success(c, http.StatusCreated, out.Order)
}

// ListOrders lists the caller's own orders.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}

	page, err := h.orderUC.ListOrders(c.Request().Context(), userID, orderListInput(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Page(c, page)
}

// GetOrder returns one of the caller's orders.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}

	orderID, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	order, err := h.orderUC.GetOrder(c.Request().Context(), userID, orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}

// GetOrderQR renders the pickup code as a PNG.
func (h *OrderHandler) GetOrderQR(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}

	orderID, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	png, err := h.orderUC.GetOrderQR(c.Request().Context(), userID, orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// ListAllOrders is the admin order listing.
func (h *OrderHandler) ListAllOrders(c echo.Context) error {
	page, err := h.orderUC.ListAllOrders(c.Request().Context(), orderListInput(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Page(c, page)
}

// UpdateStatus moves an order along its lifecycle.
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	orderID, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	status := entity.OrderStatus(strings.ToLower(strings.TrimSpace(req.Status)))
	order, err := h.orderUC.UpdateStatus(c.Request().Context(), orderID, status)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}

// ScanPickup resolves a scanned pickup code.
func (h *OrderHandler) ScanPickup(c echo.Context) error {
	var req ScanRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	order, err := h.orderUC.ScanPickup(c.Request().Context(), req.QRData)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}

func orderListInput(c echo.Context) *usecase.OrderListInput {
	return &usecase.OrderListInput{
		Page:   pageRequest(c),
		Status: c.QueryParam("status"),
	}
}
