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
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"go.uber.org/fx"
)

//nolint:gochecknoglobals
var (
	productSorts = query.NewWhitelist("created_at", map[string]string{
		"created_at": "created_at",
		"createdAt":  "created_at",
		"price":      "price",
		"name":       "name",
		"rating":     "rating",
	})

	categorySorts = query.NewWhitelist("name", map[string]string{
		"name":       "name",
		"created_at": "created_at",
		"createdAt":  "created_at",
	})
)

type catalogService struct {
	productRepo    repository.ProductRepository
	categoryRepo   repository.CategoryRepository
	collectionRepo repository.CollectionRepository
	limits         listLimits
	logger         *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	ProductRepo    repository.ProductRepository
	CategoryRepo   repository.CategoryRepository
	CollectionRepo repository.CollectionRepository
	Config         *config.Config
	Logger         *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		productRepo:    params.ProductRepo,
		categoryRepo:   params.CategoryRepo,
		collectionRepo: params.CollectionRepo,
		limits:         newListLimits(params.Config),
		logger:         params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListProducts lists active products only.
func (srv *catalogService) ListProducts(ctx context.Context, input *usecase.ProductQuery) (*query.Page[*entity.Product], error) {
	if input == nil {
		input = &usecase.ProductQuery{}
	}

	active := true
	filter := repository.ProductFilter{
		Page:       input.Page.Normalize(srv.limits.products, srv.limits.max),
		MinPrice:   input.MinPrice,
		MaxPrice:   input.MaxPrice,
		Trending:   input.Trending,
		Featured:   input.Featured,
		NewArrival: input.NewArrival,
		Active:     &active,
	}
	filter.Sort = productSorts.Resolve(filter.Page.SortBy, filter.Page.SortOrder)

	if err := validatePriceRange(filter); err != nil {
		return nil, err
	}

	return listProducts(ctx, srv.productRepo, srv.categoryRepo, input.CategorySlug, filter, srv.log(ctx))
}

func validatePriceRange(filter repository.ProductFilter) error {
	if filter.MinPrice != nil && filter.MinPrice.IsNegative() {
		return domainerrors.ErrInvalidInput.WithDetails("minPrice must not be negative")
	}
	if filter.MaxPrice != nil && filter.MaxPrice.IsNegative() {
		return domainerrors.ErrInvalidInput.WithDetails("maxPrice must not be negative")
	}
	if filter.MinPrice != nil && filter.MaxPrice != nil && filter.MinPrice.GreaterThan(*filter.MaxPrice) {
		return domainerrors.ErrInvalidInput.WithDetails("minPrice must not exceed maxPrice")
	}

	return nil
}

// listProducts resolves the category slug first. A slug that matches no
// category short-circuits to an empty page without querying products.
func listProducts(
	ctx context.Context,
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	categorySlug string,
	filter repository.ProductFilter,
	logger *slog.Logger,
) (*query.Page[*entity.Product], error) {
	if slug := strings.TrimSpace(categorySlug); slug != "" {
		category, err := categoryRepo.FindBySlug(ctx, slug)
		if errors.Is(err, repository.ErrCategoryNotFound) {
			logger.Debug("Unknown category filter", slog.String("category", slug))

			return query.EmptyPage[*entity.Product](filter.Page), nil
		}
		if err != nil {
			return nil, asUpstream(err, "failed to resolve category")
		}
		filter.CategoryID = &category.ID
	}

	products, count, err := productRepo.List(ctx, filter)
	if err != nil {
		return nil, asUpstream(err, "failed to list products")
	}

	return query.NewPage(products, count, filter.Page), nil
}

func (srv *catalogService) GetProduct(ctx context.Context, slug string) (*entity.Product, error) {
	product, err := srv.productRepo.FindBySlug(ctx, strings.TrimSpace(slug))
	if errors.Is(err, repository.ErrProductNotFound) {
		return nil, domainerrors.ErrProductNotFound.WithDetails(slug)
	}
	if err != nil {
		return nil, asUpstream(err, "failed to find product")
	}
	if !product.IsActive {
		return nil, domainerrors.ErrProductNotFound.WithDetails(slug)
	}

	return product, nil
}

func (srv *catalogService) ListCategories(ctx context.Context, page query.PageRequest) (*query.Page[*entity.Category], error) {
	filter := repository.CategoryFilter{Page: page.Normalize(srv.limits.categories, srv.limits.max)}
	filter.Sort = categorySorts.Resolve(filter.Page.SortBy, filter.Page.SortOrder)

	categories, count, err := srv.categoryRepo.List(ctx, filter)
	if err != nil {
		return nil, asUpstream(err, "failed to list categories")
	}

	return query.NewPage(categories, count, filter.Page), nil
}

func (srv *catalogService) GetCategory(ctx context.Context, slug string) (*entity.Category, error) {
	category, err := srv.categoryRepo.FindBySlug(ctx, strings.TrimSpace(slug))
	if errors.Is(err, repository.ErrCategoryNotFound) {
		return nil, domainerrors.ErrCategoryNotFound.WithDetails(slug)
	}
	if err != nil {
		return nil, asUpstream(err, "failed to find category")
	}

	return category, nil
}

// GetCollection hides inactive member products.
func (srv *catalogService) GetCollection(ctx context.Context, slug string) (*entity.Collection, error) {
	collection, err := srv.collectionRepo.FindBySlug(ctx, strings.TrimSpace(slug))
	if errors.Is(err, repository.ErrCollectionNotFound) {
		return nil, domainerrors.ErrCollectionNotFound.WithDetails(slug)
	}
	if err != nil {
		return nil, asUpstream(err, "failed to find collection")
	}

	visible := make([]*entity.Product, 0, len(collection.Products))
	for _, product := range collection.Products {
		if product.Purchasable() {
			visible = append(visible, product)
		}
	}
	collection.Products = visible

	return collection, nil
}
