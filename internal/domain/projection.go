package domain

import (
	"github.com/shopspring/decimal"
)

// Public listing presentation constants.
const (
	// CurrencyPrefix is prepended to formatted prices ("MVR 25.00").
	CurrencyPrefix = "MVR"

	// DescriptionLimit is the truncation length for listing descriptions.
	DescriptionLimit = 100

	// Ellipsis marks a truncated description.
	Ellipsis = "..."

	// PlaceholderImage is served when a product has no images.
	PlaceholderImage = "/images/placeholder.png"

	// UncategorizedName is shown when a product's category reference is
	// broken.
	UncategorizedName = "Uncategorized"
)

// ProductCard is the public display shape of a product: everything is
// pre-formatted for presentation. This is read-side only and never feeds
// back into writes.
type ProductCard struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Category    string `json:"category"`
	Image       string `json:"image"`
	Bestseller  bool   `json:"bestseller"`
}

// BuildProductCard projects a listing row into its display shape.
func BuildProductCard(row PublicProductRow) ProductCard {
	category := UncategorizedName
	if row.CategoryName != nil && *row.CategoryName != "" {
		category = *row.CategoryName
	}

	image := PlaceholderImage
	if row.FirstImagePath != nil && *row.FirstImagePath != "" {
		image = *row.FirstImagePath
	}

	return ProductCard{
		ID:          row.ProductID,
		Name:        row.Name,
		Description: TruncateDescription(row.Description),
		Price:       FormatPrice(row.Price),
		Category:    category,
		Image:       image,
		Bestseller:  row.Featured,
	}
}

// TruncateDescription shortens s to DescriptionLimit characters and appends
// the ellipsis marker. Truncation counts runes so multi-byte text is never
// split mid-character.
func TruncateDescription(s string) string {
	runes := []rune(s)
	if len(runes) <= DescriptionLimit {
		return s
	}
	return string(runes[:DescriptionLimit]) + Ellipsis
}

// FormatPrice renders a price as a fixed two-decimal currency string,
// e.g. "MVR 25.00".
func FormatPrice(price decimal.Decimal) string {
	return CurrencyPrefix + " " + price.StringFixed(2)
}
