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
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

const (
	constraintCategoryName = "uq_categories_name"
	constraintCategorySlug = "uq_categories_slug"
)

// categoryRepository implements repository.CategoryRepository.
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository is the constructor for categoryRepository.
func NewCategoryRepository(db *gorm.DB) repository.CategoryRepository {
	return &categoryRepository{db: db}
}

func (repo *categoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	return repo.findOne(repo.db.WithContext(ctx).Where("id = ?", id))
}

func (repo *categoryRepository) FindBySlug(ctx context.Context, slug string) (*entity.Category, error) {
	return repo.findOne(repo.db.WithContext(ctx).Where("slug = ?", slug))
}

func (repo *categoryRepository) findOne(db *gorm.DB) (*entity.Category, error) {
	var categoryM model.CategoryModel
	if err := db.First(&categoryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCategoryNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find category")
	}

	return toCategoryDomain(&categoryM), nil
}

func (repo *categoryRepository) List(ctx context.Context, filter repository.CategoryFilter) ([]*entity.Category, int64, error) {
	search := searchILike("name", filter.Page.Search)

	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.CategoryModel{}).
		Scopes(search).
		Count(&count).Error; err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to count categories")
	}
	if count == 0 {
		return []*entity.Category{}, 0, nil
	}

	var rows []*model.CategoryModel
	if err := repo.db.WithContext(ctx).
		Scopes(search, orderBy(filter.Sort, "name"), paginate(filter.Page)).
		Find(&rows).Error; err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to list categories")
	}

	categories := make([]*entity.Category, 0, len(rows))
	for _, row := range rows {
		categories = append(categories, toCategoryDomain(row))
	}

	return categories, count, nil
}

func (repo *categoryRepository) Create(ctx context.Context, id uuid.UUID, columns map[string]any) (*entity.Category, error) {
	now := time.Now()
	values := make(map[string]any, len(columns)+3)
	for column, value := range columns {
		values[column] = value
	}
	values["id"] = id
	values["created_at"] = now
	values["updated_at"] = now

	if err := repo.db.WithContext(ctx).Model(&model.CategoryModel{}).Create(values).Error; err != nil {
		return nil, categoryWriteError(err, columns)
	}

	return repo.findOne(repo.db.WithContext(ctx).Clauses(dbresolver.Write).Where("id = ?", id))
}

func (repo *categoryRepository) Update(ctx context.Context, id uuid.UUID, columns map[string]any) (*entity.Category, error) {
	if len(columns) > 0 {
		values := make(map[string]any, len(columns)+1)
		for column, value := range columns {
			values[column] = value
		}
		values["updated_at"] = time.Now()

		result := repo.db.WithContext(ctx).Model(&model.CategoryModel{}).Where("id = ?", id).Updates(values)
		if result.Error != nil {
			return nil, categoryWriteError(result.Error, columns)
		}
		if result.RowsAffected == 0 {
			return nil, repository.ErrCategoryNotFound
		}
	}

	return repo.findOne(repo.db.WithContext(ctx).Clauses(dbresolver.Write).Where("id = ?", id))
}

// Delete fails with a conflict while products still reference the category;
// the products foreign key is ON DELETE RESTRICT.
func (repo *categoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.CategoryModel{})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrConflict.WithMessagef("category is still assigned to products")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete category")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCategoryNotFound
	}

	return nil
}

// categoryWriteError names the offending value on unique violations.
func categoryWriteError(err error, columns map[string]any) error {
	switch {
	case isUniqueConstraintViolation(err):
		if constraintName(err) == constraintCategorySlug {
			return domainerrors.ErrCategorySlugConflict.WithMessagef("category slug %q already exists", columns[fieldmap.CategorySlug])
		}

		return domainerrors.ErrCategoryNameConflict.WithMessagef("category %q already exists", columns[fieldmap.CategoryName])
	case isNotNullConstraintViolation(err):
		return domainerrors.ErrInvalidInput.WithDetails("missing required category field")
	default:
		return domainerrors.NewDatabaseExecuteError(err, "failed to write category")
	}
}

func toCategoryDomain(data *model.CategoryModel) *entity.Category {
	if data == nil {
		return nil
	}

	return &entity.Category{
		ID:          data.ID,
		Name:        data.Name,
		Slug:        data.Slug,
		Description: data.Description,
		ImageURL:    data.ImageURL,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
