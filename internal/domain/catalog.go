package domain

import (
	"context"
	"io"
	"time"

	"github.com/shopspring/decimal"
)

// CategoryStatus is the lifecycle status shared by categories and
// subcategories.
type CategoryStatus string

const (
	CategoryStatusActive   CategoryStatus = "active"
	CategoryStatusInactive CategoryStatus = "inactive"
)

// Valid reports whether the status is one of the accepted values.
func (s CategoryStatus) Valid() bool {
	return s == CategoryStatusActive || s == CategoryStatusInactive
}

// ProductStatus is the lifecycle status of a product.
type ProductStatus string

const (
	ProductStatusActive       ProductStatus = "active"
	ProductStatusInactive     ProductStatus = "inactive"
	ProductStatusOutOfStock   ProductStatus = "out_of_stock"
	ProductStatusDiscontinued ProductStatus = "discontinued"
)

func (s ProductStatus) Valid() bool {
	switch s {
	case ProductStatusActive, ProductStatusInactive, ProductStatusOutOfStock, ProductStatusDiscontinued:
		return true
	}
	return false
}

// Category is a top-level catalog grouping. CategoryID is the public
// business identifier (CATnnnn), distinct from the surrogate row key ID.
type Category struct {
	ID          int64          `json:"id"`
	CategoryID  string         `json:"category_id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Status      CategoryStatus `json:"status"`
	ImagePath   *string        `json:"image_path"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// Subcategory belongs to exactly one Category (by business id).
type Subcategory struct {
	ID            int64          `json:"id"`
	SubcategoryID string         `json:"sub_category_id"`
	CategoryID    string         `json:"category_id"`
	Name          string         `json:"name"`
	Description   string         `json:"description"`
	Status        CategoryStatus `json:"status"`
	ImagePath     *string        `json:"image_path"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`

	// CategoryName is the joined display name of the owning category,
	// populated on reads.
	CategoryName string `json:"category_name,omitempty"`
}

// Product is the catalog's central entity. SKU and barcode are optional but
// globally unique when present.
type Product struct {
	ID            int64            `json:"id"`
	ProductID     string           `json:"product_id"`
	Name          string           `json:"name"`
	Description   string           `json:"description"`
	CategoryID    string           `json:"category_id"`
	SubcategoryID string           `json:"sub_category_id"`
	Price         decimal.Decimal  `json:"price"`
	CostPrice     *decimal.Decimal `json:"cost_price"`
	StockQuantity int32            `json:"stock_quantity"`
	SKU           *string          `json:"sku"`
	Barcode       *string          `json:"barcode"`
	Weight        *decimal.Decimal `json:"weight"`
	Status        ProductStatus    `json:"status"`
	Featured      bool             `json:"featured"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

// ProductImage is owned by one product. DisplayOrder is a zero-based index
// assigned in submission order; retrieval is always ordered by it.
type ProductImage struct {
	ID           int64  `json:"id"`
	ProductID    string `json:"product_id"`
	ImagePath    string `json:"image_path"`
	DisplayOrder int32  `json:"display_order"`
}

// ProductSpecification is a key/value pair owned by one product.
type ProductSpecification struct {
	ID        int64  `json:"id"`
	ProductID string `json:"product_id"`
	Key       string `json:"key"`
	Value     string `json:"value"`
}

// ProductVariant is a named free-text options set owned by one product.
type ProductVariant struct {
	ID        int64  `json:"id"`
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Options   string `json:"options"`
}

// ProductDetail is a product with its child collections and joined display
// names, as served by admin and public detail endpoints.
type ProductDetail struct {
	Product
	CategoryName    string                 `json:"category_name"`
	SubcategoryName string                 `json:"sub_category_name"`
	Images          []ProductImage         `json:"images"`
	Specifications  []ProductSpecification `json:"specifications"`
	Variants        []ProductVariant       `json:"variants"`
}

// ProductListItem is a row of the paginated admin product listing.
type ProductListItem struct {
	Product
	CategoryName    string `json:"category_name"`
	SubcategoryName string `json:"sub_category_name"`
}

// ProductPage is one page of the admin product listing, newest first.
type ProductPage struct {
	Items   []ProductListItem `json:"items"`
	Total   int64             `json:"total"`
	Page    int               `json:"page"`
	PerPage int               `json:"per_page"`
}

// =============================================================================
// Write parameters
// =============================================================================

// ImageUpload is a pending image payload. Content is consumed exactly once
// when the file is written to the content store.
type ImageUpload struct {
	Filename    string
	ContentType string
	Content     io.Reader
}

type CreateCategoryParams struct {
	Name        string
	Description string
	Status      CategoryStatus
	Image       *ImageUpload
}

type UpdateCategoryParams struct {
	Name        string
	Description string
	Status      CategoryStatus
	// Image, when non-nil, replaces the stored asset; the previous file is
	// removed from the content store.
	Image *ImageUpload
}

type CreateSubcategoryParams struct {
	CategoryID  string
	Name        string
	Description string
	Status      CategoryStatus
	Image       *ImageUpload
}

type UpdateSubcategoryParams struct {
	CategoryID  string
	Name        string
	Description string
	Status      CategoryStatus
	Image       *ImageUpload
}

// SpecificationInput is one key/value pair of a product creation request.
// Entries with an empty key or value are skipped, not rejected.
type SpecificationInput struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// VariantInput is one name/options pair of a product creation request.
// Entries with an empty name or options are skipped, not rejected.
type VariantInput struct {
	Name    string `json:"name"`
	Options string `json:"options"`
}

type CreateProductParams struct {
	Name           string
	Description    string
	CategoryID     string
	SubcategoryID  string
	Price          decimal.Decimal
	CostPrice      *decimal.Decimal
	StockQuantity  int32
	SKU            *string
	Barcode        *string
	Weight         *decimal.Decimal
	Status         ProductStatus
	Featured       bool
	Images         []ImageUpload
	Specifications []SpecificationInput
	Variants       []VariantInput
}

type UpdateProductParams struct {
	Name          string
	Description   string
	CategoryID    string
	SubcategoryID string
	Price         decimal.Decimal
	CostPrice     *decimal.Decimal
	StockQuantity int32
	SKU           *string
	Barcode       *string
	Weight        *decimal.Decimal
	Status        ProductStatus
	Featured      bool
	// Images, when non-nil, replaces the full image set: previous rows and
	// stored files are removed, the new payloads get display orders 0..N-1.
	Images []ImageUpload
	// Specifications and Variants, when non-nil, replace the existing sets.
	Specifications []SpecificationInput
	Variants       []VariantInput
}

// PublicProductFilter selects products for the public listing. Category is a
// display name; the literal "All" (or empty) means unfiltered.
type PublicProductFilter struct {
	Category     string
	FeaturedOnly bool
}

// PublicProductRow is the read-side join backing the public listing: an
// active product with its (possibly broken) category name and first image.
type PublicProductRow struct {
	Product
	CategoryName   *string
	FirstImagePath *string
}

// =============================================================================
// Service contracts
// =============================================================================

// CategoryService manages the category family.
type CategoryService interface {
	List(ctx context.Context) ([]Category, error)
	Get(ctx context.Context, id string) (*Category, error)
	Create(ctx context.Context, params CreateCategoryParams) (*Category, error)
	Update(ctx context.Context, id string, params UpdateCategoryParams) (*Category, error)
	Delete(ctx context.Context, id string) error
	NextID(ctx context.Context) (string, error)
}

// SubcategoryService manages the subcategory family.
type SubcategoryService interface {
	List(ctx context.Context) ([]Subcategory, error)
	ListByCategory(ctx context.Context, categoryID string) ([]Subcategory, error)
	Get(ctx context.Context, id string) (*Subcategory, error)
	Create(ctx context.Context, params CreateSubcategoryParams) (*Subcategory, error)
	Update(ctx context.Context, id string, params UpdateSubcategoryParams) (*Subcategory, error)
	Delete(ctx context.Context, id string) error
	NextID(ctx context.Context) (string, error)
}

// ProductService manages products and their owned collections.
type ProductService interface {
	List(ctx context.Context, page, perPage int) (*ProductPage, error)
	Get(ctx context.Context, id string) (*ProductDetail, error)
	Create(ctx context.Context, params CreateProductParams) (*ProductDetail, error)
	Update(ctx context.Context, id string, params UpdateProductParams) (*ProductDetail, error)
	Delete(ctx context.Context, id string) error
	NextID(ctx context.Context) (string, error)
	ListPublic(ctx context.Context, filter PublicProductFilter) ([]PublicProductRow, error)
}
