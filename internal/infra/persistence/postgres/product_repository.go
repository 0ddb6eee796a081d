package postgres

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/fieldmap"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// productRepository implements repository.ProductRepository.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	return repo.findOne(repo.db.WithContext(ctx).Where("id = ?", id))
}

func (repo *productRepository) FindBySlug(ctx context.Context, slug string) (*entity.Product, error) {
	return repo.findOne(repo.db.WithContext(ctx).Where("slug = ?", slug))
}

func (repo *productRepository) findOne(db *gorm.DB) (*entity.Product, error) {
	var productM model.ProductModel
	if err := db.First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find product")
	}

	return toProductDomain(&productM), nil
}

func (repo *productRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error) {
	return repo.findMany(repo.db.WithContext(ctx), ids)
}

// LockByIDs takes row locks in id order so concurrent checkouts over
// overlapping products cannot deadlock.
func (repo *productRepository) LockByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error) {
	return repo.findMany(repo.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), ids)
}

func (repo *productRepository) findMany(db *gorm.DB, ids []uuid.UUID) ([]*entity.Product, error) {
	if len(ids) == 0 {
		return []*entity.Product{}, nil
	}

	var rows []*model.ProductModel
	if err := db.Where("id IN ?", ids).Order("id").Find(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load products")
	}

	return toProductsDomain(rows), nil
}

func (repo *productRepository) List(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Scopes(productFilterScope(filter)).
		Count(&count).Error; err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to count products")
	}
	if count == 0 {
		return []*entity.Product{}, 0, nil
	}

	var rows []*model.ProductModel
	if err := repo.db.WithContext(ctx).
		Scopes(productFilterScope(filter), orderBy(filter.Sort, "created_at"), paginate(filter.Page)).
		Find(&rows).Error; err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to list products")
	}

	return toProductsDomain(rows), count, nil
}

func productFilterScope(filter repository.ProductFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		db = db.Scopes(searchILike("name", filter.Page.Search))

		if filter.CategoryID != nil {
			db = db.Where("category_id = ?", *filter.CategoryID)
		}
		if filter.MinPrice != nil {
			db = db.Where("price >= ?", *filter.MinPrice)
		}
		if filter.MaxPrice != nil {
			db = db.Where("price <= ?", *filter.MaxPrice)
		}
		if filter.Trending != nil {
			db = db.Where("is_trending = ?", *filter.Trending)
		}
		if filter.Featured != nil {
			db = db.Where("is_featured = ?", *filter.Featured)
		}
		if filter.NewArrival != nil {
			db = db.Where("is_new_arrival = ?", *filter.NewArrival)
		}
		if filter.Active != nil {
			db = db.Where("is_active = ?", *filter.Active)
		}
		if filter.LowStock != nil {
			db = db.Where("stock_quantity <= ?", *filter.LowStock)
		}

		return db
	}
}

func (repo *productRepository) ListAll(ctx context.Context) ([]*entity.Product, error) {
	var rows []*model.ProductModel
	if err := repo.db.WithContext(ctx).Order("name").Order("id").Find(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list products")
	}

	return toProductsDomain(rows), nil
}

// Create inserts a product from a translated column map. Columns absent from
// the map take their database defaults.
func (repo *productRepository) Create(ctx context.Context, id uuid.UUID, columns map[string]any) (*entity.Product, error) {
	now := time.Now()
	values := productColumns(columns)
	values["id"] = id
	values["created_at"] = now
	values["updated_at"] = now

	if err := repo.db.WithContext(ctx).Model(&model.ProductModel{}).Create(values).Error; err != nil {
		return nil, productWriteError(err, columns)
	}

	return repo.findOne(repo.db.WithContext(ctx).Clauses(dbresolver.Write).Where("id = ?", id))
}

// Update writes only the columns present in the map; an empty map leaves the row untouched.
func (repo *productRepository) Update(ctx context.Context, id uuid.UUID, columns map[string]any) (*entity.Product, error) {
	if len(columns) > 0 {
		values := productColumns(columns)
		values["updated_at"] = time.Now()

		result := repo.db.WithContext(ctx).Model(&model.ProductModel{}).Where("id = ?", id).Updates(values)
		if result.Error != nil {
			return nil, productWriteError(result.Error, columns)
		}
		if result.RowsAffected == 0 {
			return nil, repository.ErrProductNotFound
		}
	}

	return repo.findOne(repo.db.WithContext(ctx).Clauses(dbresolver.Write).Where("id = ?", id))
}

func (repo *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ProductModel{})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrConflict.WithMessagef("product is still referenced")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// DecrementStock is a single conditional UPDATE; concurrent buyers can never
// push stock below zero.
func (repo *productRepository) DecrementStock(ctx context.Context, id uuid.UUID, qty int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ? AND stock_quantity >= ?", id, qty).
		UpdateColumns(map[string]any{
			"stock_quantity": gorm.Expr("stock_quantity - ?", qty),
			"updated_at":     time.Now(),
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to decrement stock")
	}
	if result.RowsAffected == 0 {
		return repository.ErrInsufficientStock
	}

	return nil
}

func (repo *productRepository) IncrementStock(ctx context.Context, id uuid.UUID, qty int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", id).
		UpdateColumns(map[string]any{
			"stock_quantity": gorm.Expr("stock_quantity + ?", qty),
			"updated_at":     time.Now(),
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to restore stock")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// productColumns copies the map and converts the image list into its jsonb form.
func productColumns(columns map[string]any) map[string]any {
	values := make(map[string]any, len(columns)+3)
	for column, value := range columns {
		values[column] = value
	}

	if images, ok := values[fieldmap.ProductImages].([]string); ok {
		values[fieldmap.ProductImages] = datatypes.JSONSlice[string](images)
	}

	return values
}

func productWriteError(err error, columns map[string]any) error {
	switch {
	case isUniqueConstraintViolation(err):
		return domainerrors.ErrProductSlugConflict.WithMessagef("product slug %q already exists", columns[fieldmap.ProductSlug])
	case isForeignKeyConstraintViolation(err):
		return domainerrors.ErrReferenceInvalid.WithDetails("category does not exist")
	case isNotNullConstraintViolation(err):
		return domainerrors.ErrInvalidInput.WithDetails("missing required product field")
	case isCheckConstraintViolation(err):
		return domainerrors.ErrInvalidInput.WithDetails("price and stock quantity must not be negative")
	default:
		return domainerrors.NewDatabaseExecuteError(err, "failed to write product")
	}
}

// --- Mapper Functions ---

func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ID:            data.ID,
		Name:          data.Name,
		Slug:          data.Slug,
		Description:   data.Description,
		Price:         data.Price,
		StockQuantity: data.StockQuantity,
		CategoryID:    data.CategoryID,
		IsActive:      data.IsActive,
		Images:        imagesFromModel(data.Images),
		IsTrending:    data.IsTrending,
		IsFeatured:    data.IsFeatured,
		IsNewArrival:  data.IsNewArrival,
		Rating:        data.Rating,
		ReviewCount:   data.ReviewCount,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func toProductsDomain(rows []*model.ProductModel) []*entity.Product {
	products := make([]*entity.Product, 0, len(rows))
	for _, row := range rows {
		products = append(products, toProductDomain(row))
	}

	return products
}

func imagesFromModel(images datatypes.JSONSlice[string]) []string {
	if images == nil {
		return []string{}
	}

	return []string(images)
}
