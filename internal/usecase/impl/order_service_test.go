package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/query"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// orderServiceFixtures holds all test dependencies for order service tests.
type orderServiceFixtures struct {
	service       usecase.OrderUsecase
	txManager     *mockRepo.MockTransactionManager
	factory       *mockRepo.MockRepositoryFactory
	orderRepo     *mockRepo.MockOrderRepository
	txOrderRepo   *mockRepo.MockOrderRepository
	txProductRepo *mockRepo.MockProductRepository
	txCartRepo    *mockRepo.MockCartRepository
	qrService     *mockSvc.MockQRCodeService
	publisher     *mockSvc.MockEventPublisher
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	fx := orderServiceFixtures{
		txManager:     mockRepo.NewMockTransactionManager(t),
		factory:       mockRepo.NewMockRepositoryFactory(t),
		orderRepo:     mockRepo.NewMockOrderRepository(t),
		txOrderRepo:   mockRepo.NewMockOrderRepository(t),
		txProductRepo: mockRepo.NewMockProductRepository(t),
		txCartRepo:    mockRepo.NewMockCartRepository(t),
		qrService:     mockSvc.NewMockQRCodeService(t),
		publisher:     mockSvc.NewMockEventPublisher(t),
	}

	fx.service = NewOrderService(OrderServiceParams{
		TxManager: fx.txManager,
		OrderRepo: fx.orderRepo,
		QRService: fx.qrService,
		Publisher: fx.publisher,
		Config:    newTestConfig(),
		Logger:    newDiscardLogger(),
	})

	return fx
}

// runTransaction makes the mocked transaction manager call fn with the tx factory.
func (fx orderServiceFixtures) runTransaction(ctx context.Context) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(fx.factory)
		})
}

func testShippingAddress() entity.ShippingAddress {
	return entity.ShippingAddress{
		FullName:   " Ada Lovelace ",
		Line1:      "12 Analytical Row",
		City:       "London",
		PostalCode: "N1 9GU",
		Country:    "UK",
	}
}

func TestOrderService_PlaceOrder_FromCart(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	cart := &entity.Cart{ID: uuid.New(), UserID: userID}
	p1, p2 := activeProduct("19.99"), activeProduct("5.00")

	fx.runTransaction(ctx)
	fx.factory.EXPECT().NewCartRepository().Return(fx.txCartRepo)
	fx.factory.EXPECT().NewProductRepository().Return(fx.txProductRepo)
	fx.factory.EXPECT().NewOrderRepository().Return(fx.txOrderRepo)

	fx.txCartRepo.EXPECT().FindByUserID(ctx, userID).Return(cart, nil)
	fx.txCartRepo.EXPECT().FindLines(ctx, cart.ID).Return([]*entity.CartLine{
		{ProductID: p1.ID, Quantity: 2},
		{ProductID: p2.ID, Quantity: 3},
	}, nil)
	fx.txProductRepo.EXPECT().LockByIDs(ctx, []uuid.UUID{p1.ID, p2.ID}).Return([]*entity.Product{p1, p2}, nil)
	fx.txProductRepo.EXPECT().DecrementStock(ctx, p1.ID, 2).Return(nil)
	fx.txProductRepo.EXPECT().DecrementStock(ctx, p2.ID, 3).Return(nil)

	var placed *entity.Order
	fx.txOrderRepo.EXPECT().
		CreateHeader(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(_ context.Context, order *entity.Order) { placed = order }).
		Return(nil)
	fx.txOrderRepo.EXPECT().CreateItems(ctx, mock.AnythingOfType("[]*entity.OrderItem")).Return(nil)
	fx.txOrderRepo.EXPECT().CountItems(ctx, mock.AnythingOfType("uuid.UUID")).Return(int64(2), nil)

	fx.orderRepo.EXPECT().
		FindByID(ctx, mock.AnythingOfType("uuid.UUID")).
		RunAndReturn(func(_ context.Context, id uuid.UUID) (*entity.Order, error) {
			require.Equal(t, placed.ID, id)

			return placed, nil
		})
	fx.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.MatchedBy(func(e *service.OrderEvent) bool {
			return e.Type == service.EventOrderPlaced && e.TotalAmount == "54.98" && e.ItemCount == 2
		})).
		Return(nil)

	out, err := fx.service.PlaceOrder(ctx, userID, &usecase.PlaceOrderInput{ShippingAddress: testShippingAddress()})

	require.NoError(t, err)
	assert.True(t, out.FromCart)
	assert.Equal(t, userID, out.Order.UserID)
	assert.Equal(t, entity.OrderStatusCreated, out.Order.Status)
	assert.Equal(t, "Ada Lovelace", out.Order.ShippingAddress.FullName)
	assert.True(t, decimal.RequireFromString("54.98").Equal(out.Order.TotalAmount))
	assert.True(t, out.Order.TotalAmount.Equal(out.Order.ComputeTotal()))
	for _, item := range out.Order.Items {
		assert.Equal(t, out.Order.ID, item.OrderID)
	}
}

func TestOrderService_PlaceOrder_ExplicitLinesAreMerged(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	product := activeProduct("1.50")

	fx.runTransaction(ctx)
	fx.factory.EXPECT().NewProductRepository().Return(fx.txProductRepo)
	fx.factory.EXPECT().NewOrderRepository().Return(fx.txOrderRepo)

	fx.txProductRepo.EXPECT().LockByIDs(ctx, []uuid.UUID{product.ID}).Return([]*entity.Product{product}, nil)
	fx.txProductRepo.EXPECT().DecrementStock(ctx, product.ID, 5).Return(nil)

	var placed *entity.Order
	fx.txOrderRepo.EXPECT().
		CreateHeader(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(_ context.Context, order *entity.Order) { placed = order }).
		Return(nil)
	fx.txOrderRepo.EXPECT().CreateItems(ctx, mock.AnythingOfType("[]*entity.OrderItem")).Return(nil)
	fx.txOrderRepo.EXPECT().CountItems(ctx, mock.AnythingOfType("uuid.UUID")).Return(int64(1), nil)
	fx.orderRepo.EXPECT().
		FindByID(ctx, mock.AnythingOfType("uuid.UUID")).
		RunAndReturn(func(context.Context, uuid.UUID) (*entity.Order, error) { return placed, nil })
	fx.publisher.EXPECT().PublishOrderEvent(ctx, mock.Anything).Return(errors.New("broker down"))

	out, err := fx.service.PlaceOrder(ctx, userID, &usecase.PlaceOrderInput{
		ShippingAddress: testShippingAddress(),
		Items: []usecase.OrderLineInput{
			{ProductID: product.ID, Quantity: 2},
			{ProductID: product.ID, Quantity: 3},
		},
	})

	require.NoError(t, err, "publish failures must not fail a committed order")
	assert.False(t, out.FromCart)
	require.Len(t, out.Order.Items, 1)
	assert.Equal(t, 5, out.Order.Items[0].Quantity)
	assert.True(t, decimal.RequireFromString("7.50").Equal(out.Order.TotalAmount))
}

func TestOrderService_PlaceOrder_CommittedOrderSurvivesFailedReread(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	product := activeProduct("4.00")

	fx.runTransaction(ctx)
	fx.factory.EXPECT().NewProductRepository().Return(fx.txProductRepo)
	fx.factory.EXPECT().NewOrderRepository().Return(fx.txOrderRepo)

	fx.txProductRepo.EXPECT().LockByIDs(ctx, []uuid.UUID{product.ID}).Return([]*entity.Product{product}, nil)
	fx.txProductRepo.EXPECT().DecrementStock(ctx, product.ID, 2).Return(nil)
	fx.txOrderRepo.EXPECT().CreateHeader(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
	fx.txOrderRepo.EXPECT().CreateItems(ctx, mock.AnythingOfType("[]*entity.OrderItem")).Return(nil)
	fx.txOrderRepo.EXPECT().CountItems(ctx, mock.AnythingOfType("uuid.UUID")).Return(int64(1), nil)

	fx.orderRepo.EXPECT().
		FindByID(ctx, mock.AnythingOfType("uuid.UUID")).
		Return(nil, domainerrors.NewDatabaseExecuteError(errors.New("replica timeout"), "failed to find order"))
	fx.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.MatchedBy(func(e *service.OrderEvent) bool {
			return e.Type == service.EventOrderPlaced && e.TotalAmount == "8.00"
		})).
		Return(nil)

	out, err := fx.service.PlaceOrder(ctx, userID, &usecase.PlaceOrderInput{
		ShippingAddress: testShippingAddress(),
		Items:           []usecase.OrderLineInput{{ProductID: product.ID, Quantity: 2}},
	})

	require.NoError(t, err)
	require.NotNil(t, out.Order)
	assert.NotEqual(t, uuid.Nil, out.Order.ID)
	assert.Equal(t, userID, out.Order.UserID)
	assert.Equal(t, entity.OrderStatusCreated, out.Order.Status)
	require.Len(t, out.Order.Items, 1)
	assert.True(t, decimal.RequireFromString("8.00").Equal(out.Order.TotalAmount))
}

func TestOrderService_PlaceOrder_EmptyCart(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.runTransaction(ctx)
	fx.factory.EXPECT().NewCartRepository().Return(fx.txCartRepo)
	fx.txCartRepo.EXPECT().FindByUserID(ctx, userID).Return(nil, repository.ErrCartNotFound)

	_, err := fx.service.PlaceOrder(ctx, userID, &usecase.PlaceOrderInput{ShippingAddress: testShippingAddress()})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrCartEmpty))
}

func TestOrderService_PlaceOrder_InsufficientStock(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	product := activeProduct("9.00")
	product.Slug = "blue-mug"

	fx.runTransaction(ctx)
	fx.factory.EXPECT().NewProductRepository().Return(fx.txProductRepo)
	fx.txProductRepo.EXPECT().LockByIDs(ctx, []uuid.UUID{product.ID}).Return([]*entity.Product{product}, nil)
	fx.txProductRepo.EXPECT().DecrementStock(ctx, product.ID, 4).Return(repository.ErrInsufficientStock)

	_, err := fx.service.PlaceOrder(ctx, uuid.New(), &usecase.PlaceOrderInput{
		ShippingAddress: testShippingAddress(),
		Items:           []usecase.OrderLineInput{{ProductID: product.ID, Quantity: 4}},
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInsufficientStock))
	assert.Contains(t, err.Error(), "blue-mug")
}

func TestOrderService_PlaceOrder_InactiveProduct(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	product := activeProduct("9.00")
	product.IsActive = false

	fx.runTransaction(ctx)
	fx.factory.EXPECT().NewProductRepository().Return(fx.txProductRepo)
	fx.txProductRepo.EXPECT().LockByIDs(ctx, []uuid.UUID{product.ID}).Return([]*entity.Product{product}, nil)

	_, err := fx.service.PlaceOrder(ctx, uuid.New(), &usecase.PlaceOrderInput{
		ShippingAddress: testShippingAddress(),
		Items:           []usecase.OrderLineInput{{ProductID: product.ID, Quantity: 1}},
	})

	assert.True(t, errors.Is(err, domainerrors.ErrProductUnavailable))
}

func TestOrderService_PlaceOrder_ItemInsertFailureIsUpstream(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	product := activeProduct("2.00")

	fx.runTransaction(ctx)
	fx.factory.EXPECT().NewProductRepository().Return(fx.txProductRepo)
	fx.factory.EXPECT().NewOrderRepository().Return(fx.txOrderRepo)
	fx.txProductRepo.EXPECT().LockByIDs(ctx, []uuid.UUID{product.ID}).Return([]*entity.Product{product}, nil)
	fx.txProductRepo.EXPECT().DecrementStock(ctx, product.ID, 1).Return(nil)
	fx.txOrderRepo.EXPECT().CreateHeader(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
	fx.txOrderRepo.EXPECT().
		CreateItems(ctx, mock.AnythingOfType("[]*entity.OrderItem")).
		Return(errors.New("connection reset"))

	_, err := fx.service.PlaceOrder(ctx, uuid.New(), &usecase.PlaceOrderInput{
		ShippingAddress: testShippingAddress(),
		Items:           []usecase.OrderLineInput{{ProductID: product.ID, Quantity: 1}},
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUpstreamFailure))
	fx.orderRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestOrderService_PlaceOrder_ItemCountMismatchIsUpstream(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	product := activeProduct("2.00")

	fx.runTransaction(ctx)
	fx.factory.EXPECT().NewProductRepository().Return(fx.txProductRepo)
	fx.factory.EXPECT().NewOrderRepository().Return(fx.txOrderRepo)
	fx.txProductRepo.EXPECT().LockByIDs(ctx, []uuid.UUID{product.ID}).Return([]*entity.Product{product}, nil)
	fx.txProductRepo.EXPECT().DecrementStock(ctx, product.ID, 1).Return(nil)
	fx.txOrderRepo.EXPECT().CreateHeader(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
	fx.txOrderRepo.EXPECT().CreateItems(ctx, mock.AnythingOfType("[]*entity.OrderItem")).Return(nil)
	fx.txOrderRepo.EXPECT().CountItems(ctx, mock.AnythingOfType("uuid.UUID")).Return(int64(0), nil)

	_, err := fx.service.PlaceOrder(ctx, uuid.New(), &usecase.PlaceOrderInput{
		ShippingAddress: testShippingAddress(),
		Items:           []usecase.OrderLineInput{{ProductID: product.ID, Quantity: 1}},
	})

	assert.True(t, errors.Is(err, domainerrors.ErrUpstreamFailure))
}

func TestOrderService_PlaceOrder_Validation(t *testing.T) {
	missingCity := testShippingAddress()
	missingCity.City = "   "

	tests := []struct {
		name  string
		input *usecase.PlaceOrderInput
		want  string
	}{
		{name: "nil input", input: nil, want: "order payload"},
		{name: "blank city", input: &usecase.PlaceOrderInput{ShippingAddress: missingCity}, want: "shippingAddress.city"},
		{
			name: "zero quantity",
			input: &usecase.PlaceOrderInput{
				ShippingAddress: testShippingAddress(),
				Items:           []usecase.OrderLineInput{{ProductID: uuid.New(), Quantity: 0}},
			},
			want: "quantity",
		},
		{
			name: "nil product",
			input: &usecase.PlaceOrderInput{
				ShippingAddress: testShippingAddress(),
				Items:           []usecase.OrderLineInput{{Quantity: 1}},
			},
			want: "productId",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestOrderService(t)

			_, err := fx.service.PlaceOrder(context.Background(), uuid.New(), tt.input)

			require.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestOrderService_GetOrder_OtherUsersOrderIsNotFound(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	order := &entity.Order{ID: uuid.New(), UserID: uuid.New()}

	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

	_, err := fx.service.GetOrder(ctx, uuid.New(), order.ID)

	assert.True(t, errors.Is(err, domainerrors.ErrOrderNotFound))
}

func TestOrderService_GetOrderQR(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	order := &entity.Order{ID: uuid.New(), UserID: userID}
	png := []byte{0x89, 'P', 'N', 'G'}

	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
	fx.qrService.EXPECT().GenerateOrderQR(order.ID).Return(png, nil)

	got, err := fx.service.GetOrderQR(ctx, userID, order.ID)

	require.NoError(t, err)
	assert.Equal(t, png, got)
}

func TestOrderService_ListOrders(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	orders := []*entity.Order{{ID: uuid.New(), UserID: userID}}

	fx.orderRepo.EXPECT().
		List(ctx, mock.MatchedBy(func(f repository.OrderFilter) bool {
			return f.UserID != nil && *f.UserID == userID &&
				f.Status != nil && *f.Status == entity.OrderStatusProcessing &&
				f.Page.Page == 2 && f.Page.Limit == 10 &&
				f.Sort.Column == "created_at" && f.Sort.Desc
		})).
		Return(orders, int64(11), nil)

	page, err := fx.service.ListOrders(ctx, userID, &usecase.OrderListInput{
		Page:   query.PageRequest{Page: 2, SortBy: "price; DROP TABLE orders"},
		Status: "Processing",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(11), page.Count)
	assert.Equal(t, 2, page.CurrentPage)
	assert.Equal(t, 2, page.TotalPages)
	assert.Len(t, page.Items, 1)
}

func TestOrderService_ListAllOrders_UnknownStatus(t *testing.T) {
	fx := createTestOrderService(t)

	_, err := fx.service.ListAllOrders(context.Background(), &usecase.OrderListInput{Status: "shipped"})

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
}

func TestOrderService_UpdateStatus_CancelRestoresStock(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	order := &entity.Order{
		ID:     uuid.New(),
		UserID: uuid.New(),
		Status: entity.OrderStatusProcessing,
		Items: []*entity.OrderItem{
			{ProductID: uuid.New(), Quantity: 2},
			{ProductID: uuid.New(), Quantity: 1},
		},
	}
	cancelled := *order
	cancelled.Status = entity.OrderStatusCancelled

	fx.runTransaction(ctx)
	fx.factory.EXPECT().NewOrderRepository().Return(fx.txOrderRepo)
	fx.factory.EXPECT().NewProductRepository().Return(fx.txProductRepo)
	fx.txOrderRepo.EXPECT().LockByID(ctx, order.ID).Return(order, nil)
	fx.txProductRepo.EXPECT().IncrementStock(ctx, order.Items[0].ProductID, 2).Return(nil)
	fx.txProductRepo.EXPECT().IncrementStock(ctx, order.Items[1].ProductID, 1).Return(nil)
	fx.txOrderRepo.EXPECT().UpdateStatus(ctx, order.ID, entity.OrderStatusCancelled).Return(nil)
	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(&cancelled, nil)
	fx.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.MatchedBy(func(e *service.OrderEvent) bool {
			return e.Type == service.EventOrderStatusChanged && e.Status == "cancelled"
		})).
		Return(nil)

	got, err := fx.service.UpdateStatus(ctx, order.ID, entity.OrderStatusCancelled)

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCancelled, got.Status)
}

func TestOrderService_UpdateStatus_InvalidTransition(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	order := &entity.Order{ID: uuid.New(), Status: entity.OrderStatusFulfilled}

	fx.runTransaction(ctx)
	fx.factory.EXPECT().NewOrderRepository().Return(fx.txOrderRepo)
	fx.txOrderRepo.EXPECT().LockByID(ctx, order.ID).Return(order, nil)

	_, err := fx.service.UpdateStatus(ctx, order.ID, entity.OrderStatusProcessing)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidStatusTransition))
	assert.Contains(t, err.Error(), "fulfilled")
}

func TestOrderService_UpdateStatus_NotFound(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()

	fx.runTransaction(ctx)
	fx.factory.EXPECT().NewOrderRepository().Return(fx.txOrderRepo)
	fx.txOrderRepo.EXPECT().LockByID(ctx, orderID).Return(nil, repository.ErrOrderNotFound)

	_, err := fx.service.UpdateStatus(ctx, orderID, entity.OrderStatusProcessing)

	assert.True(t, errors.Is(err, domainerrors.ErrOrderNotFound))
}

func TestOrderService_ScanPickup(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	order := &entity.Order{ID: uuid.New(), UserID: uuid.New()}

	fx.qrService.EXPECT().ParseOrderQR("payload").Return(order.ID, nil)
	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

	got, err := fx.service.ScanPickup(ctx, "payload")

	require.NoError(t, err)
	assert.Equal(t, order.ID, got.ID)
}

func TestOrderService_ScanPickup_Unreadable(t *testing.T) {
	fx := createTestOrderService(t)

	fx.qrService.EXPECT().ParseOrderQR("junk").Return(uuid.Nil, errors.New("bad json"))

	_, err := fx.service.ScanPickup(context.Background(), "junk")

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
}
