package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
)

func TestIsUniqueViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"unique violation", &pgconn.PgError{Code: "23505"}, true},
		{"wrapped unique violation", fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"}), true},
		{"other pg error", &pgconn.PgError{Code: "23503"}, false},
		{"plain error", errors.New("boom"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isUniqueViolation(tt.err); got != tt.want {
				t.Errorf("isUniqueViolation() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConstraintName(t *testing.T) {
	err := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505", ConstraintName: "products_sku_key"})
	if got := constraintName(err); got != "products_sku_key" {
		t.Errorf("constraintName() = %q", got)
	}
	if got := constraintName(errors.New("boom")); got != "" {
		t.Errorf("constraintName() = %q, want empty", got)
	}
}

func TestDecimalNumericRoundTrip(t *testing.T) {
	tests := []string{"0", "25", "25.00", "1999.99", "-4.5", "0.001"}

	for _, s := range tests {
		t.Run(s, func(t *testing.T) {
			d := decimal.RequireFromString(s)
			got := numericToDecimal(decimalToNumeric(d))
			if !got.Equal(d) {
				t.Errorf("round trip of %s = %s", d, got)
			}
		})
	}
}

func TestNumericToDecimal_Invalid(t *testing.T) {
	var n = decimalPtrToNumeric(nil)
	if n.Valid {
		t.Error("nil pointer should produce an invalid numeric")
	}
	if !numericToDecimal(n).IsZero() {
		t.Error("invalid numeric should read as zero")
	}
	if numericToDecimalPtr(n) != nil {
		t.Error("invalid numeric should read as nil pointer")
	}
}

func TestDecimalPtrToNumeric(t *testing.T) {
	d := decimal.RequireFromString("12.50")
	n := decimalPtrToNumeric(&d)
	if !n.Valid {
		t.Fatal("expected valid numeric")
	}
	if got := numericToDecimalPtr(n); got == nil || !got.Equal(d) {
		t.Errorf("round trip = %v", got)
	}
}
