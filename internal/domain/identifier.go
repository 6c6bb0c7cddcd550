package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Business identifier prefixes. A business id is the prefix followed by a
// sequential integer zero-padded to at least four digits (CAT0001, SUB0042,
// PRD0137). The padded width grows naturally past 9999 (PRD10000); it is
// never wrapped or truncated.
const (
	CategoryIDPrefix    = "CAT"
	SubcategoryIDPrefix = "SUB"
	ProductIDPrefix     = "PRD"

	idSuffixWidth = 4
)

// NextID returns the next business id for a family given the numeric suffix
// of the current maximum. A maxSuffix of 0 (empty family) yields the seed id
// for the prefix (CAT0001, SUB0001, PRD0001).
//
// Ordering is numeric, not lexicographic: callers must supply the true
// numeric maximum of the existing suffixes. The generator itself is a pure
// function; uniqueness under concurrent writers is enforced by running
// generate-and-insert inside a transaction against a unique index on the id
// column and retrying on conflict.
func NextID(prefix string, maxSuffix int) string {
	if maxSuffix < 0 {
		maxSuffix = 0
	}
	return fmt.Sprintf("%s%0*d", prefix, idSuffixWidth, maxSuffix+1)
}

// SeedID returns the first id of a family (e.g., PRD0001).
func SeedID(prefix string) string {
	return NextID(prefix, 0)
}

// IDSuffix parses the numeric suffix of a business id for the given prefix.
func IDSuffix(id, prefix string) (int, error) {
	rest, ok := strings.CutPrefix(id, prefix)
	if !ok || rest == "" {
		return 0, fmt.Errorf("malformed business id %q for prefix %s", id, prefix)
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("malformed business id %q for prefix %s", id, prefix)
	}
	return n, nil
}

// IsBusinessID reports whether s looks like a business id for the prefix.
// Used to decide lookup order: business id first, surrogate key fallback.
func IsBusinessID(s, prefix string) bool {
	_, err := IDSuffix(s, prefix)
	return err == nil
}
