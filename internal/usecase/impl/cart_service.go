package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	maxLineQuantity = 999
	maxBulkProducts = 200
)

type cartService struct {
	cartRepo       repository.CartRepository
	productRepo    repository.ProductRepository
	collectionRepo repository.CollectionRepository
	logger         *slog.Logger
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	CartRepo       repository.CartRepository
	ProductRepo    repository.ProductRepository
	CollectionRepo repository.CollectionRepository
	Logger         *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		cartRepo:       params.CartRepo,
		productRepo:    params.ProductRepo,
		collectionRepo: params.CollectionRepo,
		logger:         params.Logger,
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetOrCreateCart reads first and falls back to the store's conflict-safe
// insert, which hands back the winning row if another request created it.
func (srv *cartService) GetOrCreateCart(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	cart, err := srv.cartRepo.FindByUserID(ctx, userID)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, repository.ErrCartNotFound) {
		return nil, errors.Wrap(err, "failed to find cart")
	}

	cart, err = srv.cartRepo.CreateIfAbsent(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create cart")
	}

	srv.log(ctx).Debug("Cart resolved", slog.String("userID", userID.String()), slog.String("cartID", cart.ID.String()))

	return cart, nil
}

func (srv *cartService) GetCart(ctx context.Context, userID uuid.UUID) (*entity.CartView, error) {
	cart, err := srv.cartRepo.FindByUserID(ctx, userID)
	if errors.Is(err, repository.ErrCartNotFound) {
		return entity.NewCartView(nil, nil), nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find cart")
	}

	return srv.view(ctx, cart)
}

func (srv *cartService) AddItem(ctx context.Context, userID uuid.UUID, input *usecase.AddItemInput) (*entity.CartView, error) {
	if input == nil || input.ProductID == uuid.Nil {
		return nil, domainerrors.ErrInvalidInput.WithDetails("productId is required")
	}

	return srv.upsert(ctx, userID, []uuid.UUID{input.ProductID}, input.Quantity, input.OriginTag)
}

func (srv *cartService) BulkAdd(ctx context.Context, userID uuid.UUID, input *usecase.BulkAddInput) (*entity.CartView, error) {
	if input == nil {
		return nil, domainerrors.ErrInvalidInput.WithDetails("productIds is required")
	}

	productIDs := uniqueIDs(input.ProductIDs)
	if len(productIDs) > maxBulkProducts {
		return nil, domainerrors.ErrInvalidInput.WithDetails("too many products in one request")
	}

	return srv.upsert(ctx, userID, productIDs, input.Quantity, input.OriginTag)
}

// AddCollection tags every line with the collection slug. Inactive members
// are skipped; a collection with nothing purchasable leaves the cart as is.
func (srv *cartService) AddCollection(ctx context.Context, userID uuid.UUID, slug string, quantity int) (*entity.CartView, error) {
	collection, err := srv.collectionRepo.FindBySlug(ctx, slug)
	if errors.Is(err, repository.ErrCollectionNotFound) {
		return nil, domainerrors.ErrCollectionNotFound.WithDetails(slug)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find collection")
	}

	productIDs := make([]uuid.UUID, 0, len(collection.Products))
	for _, product := range collection.Products {
		if product.Purchasable() {
			productIDs = append(productIDs, product.ID)
		}
	}

	tag := collection.Slug

	return srv.upsert(ctx, userID, productIDs, quantity, &tag)
}

// upsert validates the batch against the live catalog and writes it in one
// statement. Quantities replace existing ones, so repeating a call is harmless.
func (srv *cartService) upsert(ctx context.Context, userID uuid.UUID, productIDs []uuid.UUID, quantity int, originTag *string) (*entity.CartView, error) {
	if quantity < 1 || quantity > maxLineQuantity {
		return nil, domainerrors.ErrInvalidInput.WithDetails("quantity must be between 1 and 999")
	}
	if len(productIDs) == 0 {
		return srv.GetCart(ctx, userID)
	}

	products, err := srv.productRepo.FindByIDs(ctx, productIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load products")
	}

	byID := make(map[uuid.UUID]*entity.Product, len(products))
	for _, product := range products {
		byID[product.ID] = product
	}
	for _, id := range productIDs {
		if !byID[id].Purchasable() {
			return nil, domainerrors.ErrProductNotFound.WithDetails(id.String())
		}
	}

	cart, err := srv.GetOrCreateCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	tag := optionalString(originTag)
	items := make([]*entity.CartItem, 0, len(productIDs))
	for _, id := range productIDs {
		items = append(items, &entity.CartItem{
			CartID:    cart.ID,
			ProductID: id,
			Quantity:  quantity,
			OriginTag: tag,
		})
	}

	if err := srv.cartRepo.UpsertItems(ctx, items); err != nil {
		return nil, errors.Wrap(err, "failed to upsert cart items")
	}

	srv.log(ctx).Info("Cart items upserted",
		slog.String("cartID", cart.ID.String()),
		slog.Int("lines", len(items)),
		slog.Int("quantity", quantity),
	)

	return srv.view(ctx, cart)
}

func (srv *cartService) RemoveItem(ctx context.Context, userID, productID uuid.UUID) (*entity.CartView, error) {
	cart, err := srv.cartRepo.FindByUserID(ctx, userID)
	if errors.Is(err, repository.ErrCartNotFound) {
		return entity.NewCartView(nil, nil), nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find cart")
	}

	if err := srv.cartRepo.RemoveItem(ctx, cart.ID, productID); err != nil {
		return nil, errors.Wrap(err, "failed to remove cart item")
	}

	return srv.view(ctx, cart)
}

func (srv *cartService) Clear(ctx context.Context, userID uuid.UUID) (*entity.CartView, error) {
	cart, err := srv.cartRepo.FindByUserID(ctx, userID)
	if errors.Is(err, repository.ErrCartNotFound) {
		return entity.NewCartView(nil, nil), nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find cart")
	}

	removed, err := srv.cartRepo.ClearItems(ctx, cart.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to clear cart")
	}

	srv.log(ctx).Info("Cart cleared", slog.String("cartID", cart.ID.String()), slog.Int64("removed", removed))

	return srv.view(ctx, cart)
}

// view re-reads the cart lines so the response reflects current catalog data.
func (srv *cartService) view(ctx context.Context, cart *entity.Cart) (*entity.CartView, error) {
	lines, err := srv.cartRepo.FindLines(ctx, cart.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart items")
	}

	return entity.NewCartView(cart, lines), nil
}
