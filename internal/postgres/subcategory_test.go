package postgres

import (
	"context"
	"strings"
	"testing"
)

func TestListSubcategoriesByCategory_ActiveOnly(t *testing.T) {
	q := &fakeQueryer{}

	_, err := listSubcategoriesByCategory(context.Background(), q, "CAT0001")
	if err != nil {
		t.Fatalf("listSubcategoriesByCategory() error: %v", err)
	}

	if len(q.queries) != 1 {
		t.Fatalf("issued %d queries, want 1", len(q.queries))
	}
	query := q.queries[0]
	if !strings.Contains(query.sql, "s.status = 'active'") {
		t.Errorf("query does not restrict to active subcategories:\n%s", query.sql)
	}
	if !strings.Contains(query.sql, "s.category_id = $1") {
		t.Errorf("query does not filter by category:\n%s", query.sql)
	}
	if len(query.args) != 1 || query.args[0] != "CAT0001" {
		t.Errorf("query args = %v", query.args)
	}
}
