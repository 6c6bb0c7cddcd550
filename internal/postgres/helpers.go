package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

// isUniqueViolation reports whether err is a Postgres unique constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// constraintName returns the violated constraint's name, or "".
func constraintName(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}
	return ""
}

func numericToDecimal(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid || n.Int == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(n.Int, n.Exp)
}

func numericToDecimalPtr(n pgtype.Numeric) *decimal.Decimal {
	if !n.Valid || n.Int == nil {
		return nil
	}
	d := decimal.NewFromBigInt(n.Int, n.Exp)
	return &d
}

func decimalToNumeric(d decimal.Decimal) pgtype.Numeric {
	return pgtype.Numeric{Int: d.Coefficient(), Exp: d.Exponent(), Valid: true}
}

func decimalPtrToNumeric(d *decimal.Decimal) pgtype.Numeric {
	if d == nil {
		return pgtype.Numeric{}
	}
	return decimalToNumeric(*d)
}

// maxIDSuffix returns the numeric maximum of the business id suffixes in a
// table, 0 when the table is empty. All business id prefixes are three
// characters, so the suffix starts at position 4.
func maxIDSuffix(ctx context.Context, q queryer, table, column string) (int, error) {
	query := fmt.Sprintf(
		`SELECT COALESCE(MAX((substring(%s from 4))::int), 0) FROM %s`,
		column, table,
	)

	var max int
	if err := q.QueryRow(ctx, query).Scan(&max); err != nil {
		return 0, fmt.Errorf("failed to read max id suffix from %s: %w", table, err)
	}
	return max, nil
}

// idRetryAttempts bounds the generate-and-insert retry loop for sequential
// business ids under concurrent writers.
const idRetryAttempts = 5
