package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// CategoryModel is the GORM-specific struct for the 'categories' table.
type CategoryModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name        string    `gorm:"type:varchar(100);not null;uniqueIndex:uq_categories_name"`
	Slug        string    `gorm:"type:varchar(200);not null;uniqueIndex:uq_categories_slug"`
	Description *string   `gorm:"type:text"`
	ImageURL    *string   `gorm:"column:image_url;type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}

// ProductModel is the GORM-specific struct for the 'products' table.
// Deleting a category is restricted while products still reference it.
type ProductModel struct {
	ID            uuid.UUID                   `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name          string                      `gorm:"type:varchar(200);not null;index"`
	Slug          string                      `gorm:"type:varchar(200);not null;uniqueIndex:uq_products_slug"`
	Description   *string                     `gorm:"type:text"`
	Price         decimal.Decimal             `gorm:"type:numeric(12,2);not null;check:chk_products_price,price >= 0"`
	StockQuantity int                         `gorm:"not null;default:0;check:chk_products_stock,stock_quantity >= 0"`
	CategoryID    *uuid.UUID                  `gorm:"type:uuid;index"`
	Category      *CategoryModel              `gorm:"foreignKey:CategoryID;constraint:OnDelete:RESTRICT"`
	IsActive      bool                        `gorm:"not null;default:true;index"`
	Images        datatypes.JSONSlice[string] `gorm:"type:jsonb;not null;default:'[]'"`
	IsTrending    bool                        `gorm:"not null;default:false"`
	IsFeatured    bool                        `gorm:"not null;default:false"`
	IsNewArrival  bool                        `gorm:"not null;default:false"`
	Rating        float64                     `gorm:"type:numeric(3,2);not null;default:0"`
	ReviewCount   int                         `gorm:"not null;default:0"`
	CreatedAt     time.Time                   `gorm:"index"`
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// CollectionModel is the GORM-specific struct for the 'collections' table.
type CollectionModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name        string          `gorm:"type:varchar(200);not null"`
	Slug        string          `gorm:"type:varchar(200);not null;uniqueIndex:uq_collections_slug"`
	Description *string         `gorm:"type:text"`
	Products    []*ProductModel `gorm:"many2many:collection_products;joinForeignKey:CollectionID;joinReferences:ProductID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (CollectionModel) TableName() string {
	return "collections"
}
