package impl

import (
	"context"
	"log/slog"
	"strings"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/query"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const maxOrderLines = 200

//nolint:gochecknoglobals
var orderSorts = query.NewWhitelist("created_at", map[string]string{
	"created_at":   "created_at",
	"createdAt":    "created_at",
	"total_amount": "total_amount",
	"totalAmount":  "total_amount",
	"status":       "status",
})

type orderService struct {
	txManager repository.TransactionManager
	orderRepo repository.OrderRepository
	qrService service.QRCodeService
	publisher service.EventPublisher
	limits    listLimits
	logger    *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OrderRepo repository.OrderRepository
	QRService service.QRCodeService
	Publisher service.EventPublisher
	Config    *config.Config
	Logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager: params.TxManager,
		orderRepo: params.OrderRepo,
		qrService: params.QRService,
		publisher: params.Publisher,
		limits:    newListLimits(params.Config),
		logger:    params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// orderLine is a requested quantity before prices are attached.
type orderLine struct {
	productID uuid.UUID
	quantity  int
}

// PlaceOrder snapshots live prices, reserves stock and writes the header and
// items in one transaction. Nothing is visible to other readers until commit.
func (srv *orderService) PlaceOrder(ctx context.Context, userID uuid.UUID, input *usecase.PlaceOrderInput) (*usecase.PlaceOrderOutput, error) {
	if input == nil {
		return nil, domainerrors.ErrInvalidInput.WithDetails("order payload is required")
	}

	address, err := normalizeShippingAddress(input.ShippingAddress)
	if err != nil {
		return nil, err
	}

	requested, err := mergeOrderLines(input.Items)
	if err != nil {
		return nil, err
	}
	fromCart := len(requested) == 0

	orderID := uuid.New()
	var placed *entity.Order
	err = srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		lines := requested
		if fromCart {
			cartLines, err := cartOrderLines(ctx, factory.NewCartRepository(), userID)
			if err != nil {
				return err
			}
			lines = cartLines
		}

		items, err := reserveOrderItems(ctx, factory.NewProductRepository(), orderID, lines)
		if err != nil {
			return err
		}

		order := &entity.Order{
			ID:              orderID,
			UserID:          userID,
			ShippingAddress: address,
			Status:          entity.OrderStatusCreated,
			Items:           items,
		}
		order.TotalAmount = order.ComputeTotal()

		orderRepo := factory.NewOrderRepository()
		if err := orderRepo.CreateHeader(ctx, order); err != nil {
			return errors.Wrap(err, "failed to insert order header")
		}
		if err := orderRepo.CreateItems(ctx, items); err != nil {
			return errors.Wrap(err, "failed to insert order items")
		}

		written, err := orderRepo.CountItems(ctx, orderID)
		if err != nil {
			return errors.Wrap(err, "failed to verify order items")
		}
		if written != int64(len(items)) {
			return errors.Errorf("order %s has %d of %d items", orderID, written, len(items))
		}
		placed = order

		return nil
	})
	if err != nil {
		return nil, asUpstream(err, "failed to place order")
	}

	// The order is committed; a failed re-read must not invite a retry that
	// would place it twice.
	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		srv.log(ctx).Warn("Placed order re-read failed, returning written copy",
			slog.String("orderID", orderID.String()),
			slog.Any("error", err),
		)
		order = placed
	}

	srv.log(ctx).Info("Order placed",
		slog.String("orderID", order.ID.String()),
		slog.String("userID", userID.String()),
		slog.String("total", order.TotalAmount.StringFixed(2)),
		slog.Int("items", len(order.Items)),
		slog.Bool("fromCart", fromCart),
	)
	srv.publish(ctx, service.EventOrderPlaced, order)

	return &usecase.PlaceOrderOutput{Order: order, FromCart: fromCart}, nil
}

func normalizeShippingAddress(address entity.ShippingAddress) (entity.ShippingAddress, error) {
	address.FullName = strings.TrimSpace(address.FullName)
	address.Line1 = strings.TrimSpace(address.Line1)
	address.Line2 = strings.TrimSpace(address.Line2)
	address.City = strings.TrimSpace(address.City)
	address.State = strings.TrimSpace(address.State)
	address.PostalCode = strings.TrimSpace(address.PostalCode)
	address.Country = strings.TrimSpace(address.Country)
	address.Phone = strings.TrimSpace(address.Phone)

	required := []struct {
		field string
		value string
	}{
		{"shippingAddress.fullName", address.FullName},
		{"shippingAddress.line1", address.Line1},
		{"shippingAddress.city", address.City},
		{"shippingAddress.postalCode", address.PostalCode},
		{"shippingAddress.country", address.Country},
	}
	for _, r := range required {
		if r.value == "" {
			return address, domainerrors.ErrInvalidInput.WithDetails(r.field + " is required")
		}
	}

	return address, nil
}

// mergeOrderLines folds repeated products into one line.
func mergeOrderLines(inputs []usecase.OrderLineInput) ([]orderLine, error) {
	if len(inputs) > maxOrderLines {
		return nil, domainerrors.ErrInvalidInput.WithDetails("too many order lines")
	}

	lines := make([]orderLine, 0, len(inputs))
	index := make(map[uuid.UUID]int, len(inputs))
	for _, in := range inputs {
		if in.ProductID == uuid.Nil {
			return nil, domainerrors.ErrInvalidInput.WithDetails("productId is required")
		}
		if in.Quantity < 1 || in.Quantity > maxLineQuantity {
			return nil, domainerrors.ErrInvalidInput.WithDetails("quantity must be between 1 and 999")
		}

		if i, ok := index[in.ProductID]; ok {
			lines[i].quantity += in.Quantity
			if lines[i].quantity > maxLineQuantity {
				return nil, domainerrors.ErrInvalidInput.WithDetails("quantity must be between 1 and 999")
			}

			continue
		}
		index[in.ProductID] = len(lines)
		lines = append(lines, orderLine{productID: in.ProductID, quantity: in.Quantity})
	}

	return lines, nil
}

func cartOrderLines(ctx context.Context, cartRepo repository.CartRepository, userID uuid.UUID) ([]orderLine, error) {
	cart, err := cartRepo.FindByUserID(ctx, userID)
	if errors.Is(err, repository.ErrCartNotFound) {
		return nil, domainerrors.ErrCartEmpty
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find cart")
	}

	cartLines, err := cartRepo.FindLines(ctx, cart.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart items")
	}
	if len(cartLines) == 0 {
		return nil, domainerrors.ErrCartEmpty
	}

	lines := make([]orderLine, 0, len(cartLines))
	for _, line := range cartLines {
		lines = append(lines, orderLine{productID: line.ProductID, quantity: line.Quantity})
	}

	return lines, nil
}

// reserveOrderItems locks the products, checks them and takes the stock.
// Unit prices come from the locked rows, never from the request.
func reserveOrderItems(ctx context.Context, productRepo repository.ProductRepository, orderID uuid.UUID, lines []orderLine) ([]*entity.OrderItem, error) {
	ids := make([]uuid.UUID, 0, len(lines))
	for _, line := range lines {
		ids = append(ids, line.productID)
	}

	products, err := productRepo.LockByIDs(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to lock products")
	}

	byID := make(map[uuid.UUID]*entity.Product, len(products))
	for _, product := range products {
		byID[product.ID] = product
	}

	items := make([]*entity.OrderItem, 0, len(lines))
	for _, line := range lines {
		product, ok := byID[line.productID]
		if !ok {
			return nil, domainerrors.ErrProductNotFound.WithDetails(line.productID.String())
		}
		if !product.IsActive {
			return nil, domainerrors.ErrProductUnavailable.WithMessagef("product %q is not available", product.Slug)
		}

		err := productRepo.DecrementStock(ctx, product.ID, line.quantity)
		if errors.Is(err, repository.ErrInsufficientStock) {
			return nil, domainerrors.ErrInsufficientStock.WithMessagef("insufficient stock for %q", product.Slug)
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to reserve stock")
		}

		items = append(items, &entity.OrderItem{
			ID:        uuid.New(),
			OrderID:   orderID,
			ProductID: product.ID,
			Quantity:  line.quantity,
			UnitPrice: product.Price,
		})
	}

	return items, nil
}

func (srv *orderService) GetOrder(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.findOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	// Another user's order is reported exactly like a missing one.
	if order.UserID != userID {
		return nil, domainerrors.ErrOrderNotFound
	}

	return order, nil
}

func (srv *orderService) ListOrders(ctx context.Context, userID uuid.UUID, input *usecase.OrderListInput) (*query.Page[*entity.Order], error) {
	return srv.list(ctx, &userID, input)
}

func (srv *orderService) ListAllOrders(ctx context.Context, input *usecase.OrderListInput) (*query.Page[*entity.Order], error) {
	return srv.list(ctx, nil, input)
}

func (srv *orderService) list(ctx context.Context, userID *uuid.UUID, input *usecase.OrderListInput) (*query.Page[*entity.Order], error) {
	if input == nil {
		input = &usecase.OrderListInput{}
	}

	filter := repository.OrderFilter{UserID: userID}
	if status := strings.TrimSpace(input.Status); status != "" {
		parsed := entity.OrderStatus(strings.ToLower(status))
		if !parsed.IsValid() {
			return nil, domainerrors.ErrInvalidInput.WithDetails("unknown order status " + status)
		}
		filter.Status = &parsed
	}

	filter.Page = input.Page.Normalize(srv.limits.orders, srv.limits.max)
	filter.Sort = orderSorts.Resolve(filter.Page.SortBy, filter.Page.SortOrder)

	orders, count, err := srv.orderRepo.List(ctx, filter)
	if err != nil {
		return nil, asUpstream(err, "failed to list orders")
	}

	return query.NewPage(orders, count, filter.Page), nil
}

func (srv *orderService) GetOrderQR(ctx context.Context, userID, orderID uuid.UUID) ([]byte, error) {
	order, err := srv.GetOrder(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrService.GenerateOrderQR(order.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate pickup code")
	}

	return png, nil
}

// UpdateStatus moves an order along its lifecycle under a row lock.
// Cancelling returns the reserved stock in the same transaction.
func (srv *orderService) UpdateStatus(ctx context.Context, orderID uuid.UUID, status entity.OrderStatus) (*entity.Order, error) {
	if !status.IsValid() {
		return nil, domainerrors.ErrInvalidInput.WithDetails("unknown order status " + string(status))
	}

	var previous entity.OrderStatus
	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		orderRepo := factory.NewOrderRepository()

		order, err := orderRepo.LockByID(ctx, orderID)
		if errors.Is(err, repository.ErrOrderNotFound) {
			return domainerrors.ErrOrderNotFound
		}
		if err != nil {
			return errors.Wrap(err, "failed to lock order")
		}

		if !order.Status.CanTransitionTo(status) {
			return domainerrors.ErrInvalidStatusTransition.WithMessagef("cannot move order from %s to %s", order.Status, status)
		}
		previous = order.Status

		if status == entity.OrderStatusCancelled {
			productRepo := factory.NewProductRepository()
			for _, item := range order.Items {
				if err := productRepo.IncrementStock(ctx, item.ProductID, item.Quantity); err != nil {
					return errors.Wrap(err, "failed to restore stock")
				}
			}
		}

		return orderRepo.UpdateStatus(ctx, orderID, status)
	})
	if err != nil {
		return nil, asUpstream(err, "failed to update order status")
	}

	order, err := srv.findOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Order status changed",
		slog.String("orderID", orderID.String()),
		slog.String("from", string(previous)),
		slog.String("to", string(status)),
	)
	srv.publish(ctx, service.EventOrderStatusChanged, order)

	return order, nil
}

func (srv *orderService) ScanPickup(ctx context.Context, qrData string) (*entity.Order, error) {
	orderID, err := srv.qrService.ParseOrderQR(qrData)
	if err != nil {
		return nil, domainerrors.ErrInvalidInput.WithDetails("unreadable pickup code")
	}

	return srv.findOrder(ctx, orderID)
}

func (srv *orderService) findOrder(ctx context.Context, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if errors.Is(err, repository.ErrOrderNotFound) {
		return nil, domainerrors.ErrOrderNotFound
	}
	if err != nil {
		return nil, asUpstream(err, "failed to find order")
	}

	return order, nil
}

// publish is fire-and-forget; the order is already committed.
func (srv *orderService) publish(ctx context.Context, eventType string, order *entity.Order) {
	if srv.publisher == nil {
		return
	}

	event := &service.OrderEvent{
		RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
		Type:        eventType,
		OrderID:     order.ID.String(),
		UserID:      order.UserID.String(),
		Status:      string(order.Status),
		TotalAmount: order.TotalAmount.StringFixed(2),
		ItemCount:   len(order.Items),
	}
	if err := srv.publisher.PublishOrderEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish order event",
			slog.String("type", eventType),
			slog.String("orderID", event.OrderID),
			slog.Any("error", err),
		)
	}
}
