package fieldmap

// Product column names.
const (
	ProductName          = "name"
	ProductSlug          = "slug"
	ProductDescription   = "description"
	ProductPrice         = "price"
	ProductStockQuantity = "stock_quantity"
	ProductCategoryID    = "category_id"
	ProductIsActive      = "is_active"
	ProductImages        = "images"
	ProductIsTrending    = "is_trending"
	ProductIsFeatured    = "is_featured"
	ProductIsNewArrival  = "is_new_arrival"
)

// Category column names.
const (
	CategoryName        = "name"
	CategorySlug        = "slug"
	CategoryDescription = "description"
	CategoryImageURL    = "image_url"
)

// ProductFields maps the public product payload onto the products table.
var ProductFields = NewTable("product", map[string]Field{
	"name":          {Column: ProductName, Decode: Text(200)},
	"slug":          {Column: ProductSlug, Decode: Slug},
	"description":   {Column: ProductDescription, Nullable: true, Decode: OptionalText(5000)},
	"price":         {Column: ProductPrice, Decode: Money},
	"stockQuantity": {Column: ProductStockQuantity, Decode: NonNegativeInt},
	"categoryId":    {Column: ProductCategoryID, Nullable: true, Decode: UUID},
	"isActive":      {Column: ProductIsActive, Decode: Bool},
	"images":        {Column: ProductImages, Decode: StringList},
	"isTrending":    {Column: ProductIsTrending, Decode: Bool},
	"isFeatured":    {Column: ProductIsFeatured, Decode: Bool},
	"isNewArrival":  {Column: ProductIsNewArrival, Decode: Bool},
}, "name", "slug", "price")

// CategoryFields maps the public category payload onto the categories table.
var CategoryFields = NewTable("category", map[string]Field{
	"name":        {Column: CategoryName, Decode: Text(100)},
	"slug":        {Column: CategorySlug, Decode: Slug},
	"description": {Column: CategoryDescription, Nullable: true, Decode: OptionalText(1000)},
	"imageUrl":    {Column: CategoryImageURL, Nullable: true, Decode: OptionalText(2048)},
}, "name")
