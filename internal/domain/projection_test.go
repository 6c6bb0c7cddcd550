package domain

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func strPtr(s string) *string { return &s }

func TestBuildProductCard(t *testing.T) {
	base := PublicProductRow{
		Product: Product{
			ProductID:   "PRD0001",
			Name:        "Ceramic Mug",
			Description: "A mug.",
			Price:       decimal.RequireFromString("25"),
			Featured:    true,
		},
		CategoryName:   strPtr("Kitchen"),
		FirstImagePath: strPtr("/uploads/products/1_mug.jpg"),
	}

	t.Run("complete row", func(t *testing.T) {
		card := BuildProductCard(base)
		if card.ID != "PRD0001" {
			t.Errorf("ID = %q", card.ID)
		}
		if card.Price != "MVR 25.00" {
			t.Errorf("Price = %q, want MVR 25.00", card.Price)
		}
		if card.Category != "Kitchen" {
			t.Errorf("Category = %q", card.Category)
		}
		if card.Image != "/uploads/products/1_mug.jpg" {
			t.Errorf("Image = %q", card.Image)
		}
		if !card.Bestseller {
			t.Error("Bestseller should mirror Featured")
		}
	})

	t.Run("missing category falls back", func(t *testing.T) {
		row := base
		row.CategoryName = nil
		if got := BuildProductCard(row).Category; got != UncategorizedName {
			t.Errorf("Category = %q, want %q", got, UncategorizedName)
		}
	})

	t.Run("empty category name falls back", func(t *testing.T) {
		row := base
		row.CategoryName = strPtr("")
		if got := BuildProductCard(row).Category; got != UncategorizedName {
			t.Errorf("Category = %q, want %q", got, UncategorizedName)
		}
	})

	t.Run("missing image falls back", func(t *testing.T) {
		row := base
		row.FirstImagePath = nil
		if got := BuildProductCard(row).Image; got != PlaceholderImage {
			t.Errorf("Image = %q, want %q", got, PlaceholderImage)
		}
	})
}

func TestTruncateDescription(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"short untouched", "short text", "short text"},
		{"exact limit untouched", strings.Repeat("a", DescriptionLimit), strings.Repeat("a", DescriptionLimit)},
		{"over limit truncated", strings.Repeat("a", DescriptionLimit+1), strings.Repeat("a", DescriptionLimit) + Ellipsis},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TruncateDescription(tt.input); got != tt.expected {
				t.Errorf("TruncateDescription() = %q, want %q", got, tt.expected)
			}
		})
	}

	t.Run("multibyte text is not split mid-character", func(t *testing.T) {
		input := strings.Repeat("ά", DescriptionLimit+10)
		got := TruncateDescription(input)
		expected := strings.Repeat("ά", DescriptionLimit) + Ellipsis
		if got != expected {
			t.Errorf("rune-safe truncation failed: got %d bytes", len(got))
		}
	})
}

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"25", "MVR 25.00"},
		{"25.5", "MVR 25.50"},
		{"0", "MVR 0.00"},
		{"1234.567", "MVR 1234.57"},
	}

	for _, tt := range tests {
		if got := FormatPrice(decimal.RequireFromString(tt.input)); got != tt.expected {
			t.Errorf("FormatPrice(%s) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}
