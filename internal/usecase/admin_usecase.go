package usecase

import (
	"context"
	"encoding/json"
	"io"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/query"

	"github.com/google/uuid"
)

// FieldSet is a raw JSON object keyed by public field names. A key that is
// absent means "leave unchanged"; a JSON null means "clear".
type FieldSet map[string]json.RawMessage

// ProductPatch is a product update plus the images to remove from storage.
type ProductPatch struct {
	Fields         FieldSet
	ImagesToDelete []string
}

// AdminProductQuery is the admin product listing request; inactive products are included.
type AdminProductQuery struct {
	Page         query.PageRequest
	CategorySlug string
	Status       string // active, inactive or empty for both
	LowStock     *int
}

// CollectionInput creates a curated collection.
type CollectionInput struct {
	Name        string      `json:"name" validate:"required,max=200"`
	Slug        string      `json:"slug" validate:"required,max=200"`
	Description *string     `json:"description,omitempty" validate:"omitempty,max=1000"`
	ProductIDs  []uuid.UUID `json:"productIds" validate:"max=500"`
}

// AdminUsecase is the privileged catalog mutation engine.
type AdminUsecase interface {
	CreateCategory(ctx context.Context, fields FieldSet) (*entity.Category, error)
	UpdateCategory(ctx context.Context, id uuid.UUID, fields FieldSet) (*entity.Category, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error

	CreateProduct(ctx context.Context, fields FieldSet) (*entity.Product, error)

	// UpdateProduct writes the record first; image deletion afterwards is
	// best effort and never fails the update.
	UpdateProduct(ctx context.Context, id uuid.UUID, patch *ProductPatch) (*entity.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
	ListProducts(ctx context.Context, input *AdminProductQuery) (*query.Page[*entity.Product], error)

	// ExportProducts writes the whole catalog as a spreadsheet and returns its content type.
	ExportProducts(ctx context.Context, w io.Writer) (string, error)

	CreateCollection(ctx context.Context, input *CollectionInput) (*entity.Collection, error)
	DeleteCollection(ctx context.Context, id uuid.UUID) error
}
