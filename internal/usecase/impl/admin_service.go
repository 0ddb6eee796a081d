package impl

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"strings"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/fieldmap"
	"storefront/internal/domain/query"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	maxCollectionProducts = 500
	imageCleanupTimeout   = 10 * time.Second
)

type adminService struct {
	productRepo    repository.ProductRepository
	categoryRepo   repository.CategoryRepository
	collectionRepo repository.CollectionRepository
	images         service.ImageStorage
	exporter       service.CatalogExporter
	limits         listLimits
	logger         *slog.Logger
}

// AdminServiceParams holds dependencies for AdminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	ProductRepo    repository.ProductRepository
	CategoryRepo   repository.CategoryRepository
	CollectionRepo repository.CollectionRepository
	Images         service.ImageStorage
	Exporter       service.CatalogExporter
	Config         *config.Config
	Logger         *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		productRepo:    params.ProductRepo,
		categoryRepo:   params.CategoryRepo,
		collectionRepo: params.CollectionRepo,
		images:         params.Images,
		exporter:       params.Exporter,
		limits:         newListLimits(params.Config),
		logger:         params.Logger,
	}
}

func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *adminService) CreateCategory(ctx context.Context, fields usecase.FieldSet) (*entity.Category, error) {
	columns, err := fieldmap.CategoryFields.TranslateCreate(fields)
	if err != nil {
		return nil, err
	}

	// Without an explicit slug one is derived from the name.
	if _, ok := columns[fieldmap.CategorySlug]; !ok {
		name, _ := columns[fieldmap.CategoryName].(string)
		slug := fieldmap.Slugify(name)
		if !fieldmap.IsSlug(slug) {
			return nil, domainerrors.ErrInvalidInput.WithDetails("category slug cannot be derived from name, provide one")
		}
		columns[fieldmap.CategorySlug] = slug
	}

	category, err := srv.categoryRepo.Create(ctx, uuid.New(), columns)
	if err != nil {
		return nil, asUpstream(err, "failed to create category")
	}

	srv.log(ctx).Info("Category created", slog.String("categoryID", category.ID.String()), slog.String("slug", category.Slug))

	return category, nil
}

func (srv *adminService) UpdateCategory(ctx context.Context, id uuid.UUID, fields usecase.FieldSet) (*entity.Category, error) {
	columns, err := fieldmap.CategoryFields.Translate(fields)
	if err != nil {
		return nil, err
	}

	category, err := srv.categoryRepo.Update(ctx, id, columns)
	if errors.Is(err, repository.ErrCategoryNotFound) {
		return nil, domainerrors.ErrCategoryNotFound.WithDetails(id.String())
	}
	if err != nil {
		return nil, asUpstream(err, "failed to update category")
	}

	return category, nil
}

func (srv *adminService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	err := srv.categoryRepo.Delete(ctx, id)
	if errors.Is(err, repository.ErrCategoryNotFound) {
		return domainerrors.ErrCategoryNotFound.WithDetails(id.String())
	}
	if err != nil {
		return asUpstream(err, "failed to delete category")
	}

	srv.log(ctx).Info("Category deleted", slog.String("categoryID", id.String()))

	return nil
}

func (srv *adminService) CreateProduct(ctx context.Context, fields usecase.FieldSet) (*entity.Product, error) {
	columns, err := fieldmap.ProductFields.TranslateCreate(fields)
	if err != nil {
		return nil, err
	}

	product, err := srv.productRepo.Create(ctx, uuid.New(), columns)
	if err != nil {
		return nil, asUpstream(err, "failed to create product")
	}

	srv.log(ctx).Info("Product created", slog.String("productID", product.ID.String()), slog.String("slug", product.Slug))

	return product, nil
}

// UpdateProduct is authoritative for the record. Image cleanup runs after a
// successful write and its failures are only logged.
func (srv *adminService) UpdateProduct(ctx context.Context, id uuid.UUID, patch *usecase.ProductPatch) (*entity.Product, error) {
	if patch == nil {
		patch = &usecase.ProductPatch{}
	}

	columns, err := fieldmap.ProductFields.Translate(map[string]json.RawMessage(patch.Fields))
	if err != nil {
		return nil, err
	}

	product, err := srv.productRepo.Update(ctx, id, columns)
	if errors.Is(err, repository.ErrProductNotFound) {
		return nil, domainerrors.ErrProductNotFound.WithDetails(id.String())
	}
	if err != nil {
		return nil, asUpstream(err, "failed to update product")
	}

	srv.deleteImages(ctx, id, patch.ImagesToDelete)

	return product, nil
}

func (srv *adminService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	product, err := srv.productRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrProductNotFound) {
		return domainerrors.ErrProductNotFound.WithDetails(id.String())
	}
	if err != nil {
		return asUpstream(err, "failed to find product")
	}

	err = srv.productRepo.Delete(ctx, id)
	if errors.Is(err, repository.ErrProductNotFound) {
		return domainerrors.ErrProductNotFound.WithDetails(id.String())
	}
	if err != nil {
		return asUpstream(err, "failed to delete product")
	}

	srv.log(ctx).Info("Product deleted", slog.String("productID", id.String()))
	srv.deleteImages(ctx, id, product.Images)

	return nil
}

func (srv *adminService) deleteImages(ctx context.Context, productID uuid.UUID, refs []string) {
	keys := normalizeImageKeys(refs)
	if len(keys) == 0 {
		return
	}

	// Cleanup outlives a client disconnect but not a stalled bucket.
	cleanupCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), imageCleanupTimeout)
	defer cancel()

	if err := srv.images.DeleteImages(cleanupCtx, keys); err != nil {
		srv.log(ctx).Warn("Product image cleanup failed",
			slog.String("productID", productID.String()),
			slog.Any("keys", keys),
			slog.Any("error", err),
		)

		return
	}

	srv.log(ctx).Debug("Product images deleted", slog.String("productID", productID.String()), slog.Int("count", len(keys)))
}

// normalizeImageKeys strips a leading separator, drops empties and repeats.
func normalizeImageKeys(refs []string) []string {
	seen := make(map[string]struct{}, len(refs))
	keys := make([]string, 0, len(refs))
	for _, ref := range refs {
		key := strings.TrimPrefix(strings.TrimSpace(ref), "/")
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		keys = append(keys, key)
	}

	return keys
}

// ListProducts is the admin listing; inactive products are included unless
// the status filter says otherwise.
func (srv *adminService) ListProducts(ctx context.Context, input *usecase.AdminProductQuery) (*query.Page[*entity.Product], error) {
	if input == nil {
		input = &usecase.AdminProductQuery{}
	}

	filter := repository.ProductFilter{
		Page:     input.Page.Normalize(srv.limits.products, srv.limits.max),
		LowStock: input.LowStock,
	}
	filter.Sort = productSorts.Resolve(filter.Page.SortBy, filter.Page.SortOrder)

	switch strings.ToLower(strings.TrimSpace(input.Status)) {
	case "":
	case "active":
		active := true
		filter.Active = &active
	case "inactive":
		active := false
		filter.Active = &active
	default:
		return nil, domainerrors.ErrInvalidInput.WithDetails("status must be active or inactive")
	}

	if input.LowStock != nil && *input.LowStock < 0 {
		return nil, domainerrors.ErrInvalidInput.WithDetails("lowStock must not be negative")
	}

	return listProducts(ctx, srv.productRepo, srv.categoryRepo, input.CategorySlug, filter, srv.log(ctx))
}

func (srv *adminService) ExportProducts(ctx context.Context, w io.Writer) (string, error) {
	products, err := srv.productRepo.ListAll(ctx)
	if err != nil {
		return "", asUpstream(err, "failed to load products for export")
	}

	if err := srv.exporter.ExportProducts(w, products); err != nil {
		return "", errors.Wrap(err, "failed to render product export")
	}

	srv.log(ctx).Info("Products exported", slog.Int("count", len(products)))

	return srv.exporter.ContentType(), nil
}

func (srv *adminService) CreateCollection(ctx context.Context, input *usecase.CollectionInput) (*entity.Collection, error) {
	if input == nil {
		return nil, domainerrors.ErrInvalidInput.WithDetails("collection payload is required")
	}

	name := strings.TrimSpace(input.Name)
	if name == "" || len([]rune(name)) > 200 {
		return nil, domainerrors.ErrInvalidInput.WithDetails("collection name must be 1 to 200 characters")
	}

	slug := strings.TrimSpace(input.Slug)
	if !fieldmap.IsSlug(slug) {
		return nil, domainerrors.ErrInvalidInput.WithDetails("collection slug must be a lowercase slug")
	}

	productIDs := uniqueIDs(input.ProductIDs)
	if len(productIDs) > maxCollectionProducts {
		return nil, domainerrors.ErrInvalidInput.WithDetails("too many products in one collection")
	}

	collection := &entity.Collection{
		ID:          uuid.New(),
		Name:        name,
		Slug:        slug,
		Description: optionalString(input.Description),
	}
	if err := srv.collectionRepo.Create(ctx, collection, productIDs); err != nil {
		return nil, asUpstream(err, "failed to create collection")
	}

	created, err := srv.collectionRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, asUpstream(err, "failed to read created collection")
	}

	srv.log(ctx).Info("Collection created",
		slog.String("collectionID", created.ID.String()),
		slog.String("slug", slug),
		slog.Int("products", len(productIDs)),
	)

	return created, nil
}

func (srv *adminService) DeleteCollection(ctx context.Context, id uuid.UUID) error {
	err := srv.collectionRepo.Delete(ctx, id)
	if errors.Is(err, repository.ErrCollectionNotFound) {
		return domainerrors.ErrCollectionNotFound.WithDetails(id.String())
	}
	if err != nil {
		return asUpstream(err, "failed to delete collection")
	}

	return nil
}
