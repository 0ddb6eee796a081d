package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// collectionRepository implements repository.CollectionRepository.
type collectionRepository struct {
	db *gorm.DB
}

// NewCollectionRepository is the constructor for collectionRepository.
func NewCollectionRepository(db *gorm.DB) repository.CollectionRepository {
	return &collectionRepository{db: db}
}

func (repo *collectionRepository) FindBySlug(ctx context.Context, slug string) (*entity.Collection, error) {
	var collectionM model.CollectionModel
	if err := repo.db.WithContext(ctx).
		Preload("Products", func(db *gorm.DB) *gorm.DB {
			return db.Order("products.name").Order("products.id")
		}).
		Where("slug = ?", slug).
		First(&collectionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCollectionNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find collection")
	}

	return toCollectionDomain(&collectionM), nil
}

// Create inserts the collection and its membership rows in one transaction.
// Member products are referenced only; they are never upserted.
func (repo *collectionRepository) Create(ctx context.Context, collection *entity.Collection, productIDs []uuid.UUID) error {
	collectionM := &model.CollectionModel{
		ID:          collection.ID,
		Name:        collection.Name,
		Slug:        collection.Slug,
		Description: collection.Description,
		Products:    make([]*model.ProductModel, 0, len(productIDs)),
	}
	for _, id := range productIDs {
		collectionM.Products = append(collectionM.Products, &model.ProductModel{ID: id})
	}

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Omit("Products.*").Create(collectionM).Error
	})
	if err != nil {
		switch {
		case isUniqueConstraintViolation(err):
			return domainerrors.ErrCollectionSlugConflict.WithMessagef("collection slug %q already exists", collection.Slug)
		case isForeignKeyConstraintViolation(err):
			return domainerrors.ErrProductNotFound.WithDetails("a collection member does not exist")
		case isNotNullConstraintViolation(err):
			return domainerrors.ErrInvalidInput.WithDetails("missing required collection field")
		default:
			return domainerrors.NewDatabaseExecuteError(err, "failed to create collection")
		}
	}

	collection.ID = collectionM.ID
	collection.CreatedAt = collectionM.CreatedAt
	collection.UpdatedAt = collectionM.UpdatedAt

	return nil
}

// Delete removes the collection; membership rows cascade.
func (repo *collectionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.CollectionModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete collection")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCollectionNotFound
	}

	return nil
}

func toCollectionDomain(data *model.CollectionModel) *entity.Collection {
	if data == nil {
		return nil
	}

	products := make([]*entity.Product, 0, len(data.Products))
	for _, p := range data.Products {
		products = append(products, toProductDomain(p))
	}

	return &entity.Collection{
		ID:          data.ID,
		Name:        data.Name,
		Slug:        data.Slug,
		Description: data.Description,
		Products:    products,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
