package postgres

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// cartRepository implements repository.CartRepository. The one-cart-per-user
// and one-line-per-product rules live in unique indexes, not in Go code.
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{db: db}
}

func (repo *cartRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	var cartM model.CartModel
	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("user_id = ?", userID).
		First(&cartM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find cart")
	}

	return toCartDomain(&cartM), nil
}

// CreateIfAbsent issues INSERT ... ON CONFLICT (user_id) DO NOTHING and then
// reads the surviving row from the primary, so a caller that lost the race
// gets the winner's cart.
func (repo *cartRepository) CreateIfAbsent(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	candidate := &model.CartModel{ID: uuid.New(), UserID: userID}

	if err := insertCartIfAbsent(repo.db.WithContext(ctx), candidate).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create cart")
	}

	cart, err := repo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrCartNotFound) {
			return nil, domainerrors.NewDatabaseExecuteError(err, "cart missing after conflict-safe create")
		}

		return nil, err
	}

	return cart, nil
}

// UpsertItems writes the whole batch in one statement. On (cart_id, product_id)
// conflict the quantity and origin tag are replaced, never summed.
func (repo *cartRepository) UpsertItems(ctx context.Context, items []*entity.CartItem) error {
	if len(items) == 0 {
		return nil
	}

	rows := cartItemRows(items, time.Now())
	if err := upsertCartItems(repo.db.WithContext(ctx), rows).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProductNotFound.WithDetails("a product in the batch no longer exists")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrInvalidInput.WithDetails("quantity must be at least 1")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert cart items")
	}

	return nil
}

func (repo *cartRepository) RemoveItem(ctx context.Context, cartID, productID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("cart_id = ? AND product_id = ?", cartID, productID).
		Delete(&model.CartItemModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to remove cart item")
	}

	return nil
}

func (repo *cartRepository) ClearItems(ctx context.Context, cartID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("cart_id = ?", cartID).
		Delete(&model.CartItemModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to clear cart")
	}

	return result.RowsAffected, nil
}

// FindLines reads from the primary so a mutation is always followed by its own result.
func (repo *cartRepository) FindLines(ctx context.Context, cartID uuid.UUID) ([]*entity.CartLine, error) {
	var rows []*model.CartItemModel
	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Preload("Product").
		Where("cart_id = ?", cartID).
		Order("created_at ASC").
		Order("product_id ASC").
		Find(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load cart items")
	}

	lines := make([]*entity.CartLine, 0, len(rows))
	for _, row := range rows {
		if row.Product == nil {
			continue
		}
		lines = append(lines, &entity.CartLine{
			ProductID: row.ProductID,
			Quantity:  row.Quantity,
			OriginTag: row.OriginTag,
			Product: entity.ProductSnapshot{
				Name:          row.Product.Name,
				Slug:          row.Product.Slug,
				Price:         row.Product.Price,
				Images:        imagesFromModel(row.Product.Images),
				IsActive:      row.Product.IsActive,
				StockQuantity: row.Product.StockQuantity,
			},
			AddedAt: row.CreatedAt,
		})
	}

	return lines, nil
}

func insertCartIfAbsent(tx *gorm.DB, candidate *model.CartModel) *gorm.DB {
	return tx.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoNothing: true,
		}).
		Create(candidate)
}

// upsertCartItems keeps created_at from the first insert so lines stay in
// the order they were first added.
func upsertCartItems(tx *gorm.DB, rows []*model.CartItemModel) *gorm.DB {
	return tx.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "cart_id"}, {Name: "product_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"quantity", "origin_tag", "updated_at"}),
		}).
		Create(&rows)
}

func cartItemRows(items []*entity.CartItem, now time.Time) []*model.CartItemModel {
	rows := make([]*model.CartItemModel, 0, len(items))
	for _, item := range items {
		rows = append(rows, &model.CartItemModel{
			CartID:    item.CartID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			OriginTag: item.OriginTag,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}

	return rows
}

func toCartDomain(data *model.CartModel) *entity.Cart {
	if data == nil {
		return nil
	}

	return &entity.Cart{
		ID:        data.ID,
		UserID:    data.UserID,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
