package domain

import "testing"

func TestNextID(t *testing.T) {
	tests := []struct {
		name      string
		prefix    string
		maxSuffix int
		expected  string
	}{
		{"empty category family", CategoryIDPrefix, 0, "CAT0001"},
		{"empty subcategory family", SubcategoryIDPrefix, 0, "SUB0001"},
		{"empty product family", ProductIDPrefix, 0, "PRD0001"},
		{"next after one", ProductIDPrefix, 1, "PRD0002"},
		{"zero padded", ProductIDPrefix, 41, "PRD0042"},
		{"last padded value", ProductIDPrefix, 9998, "PRD9999"},
		{"width grows past 9999", ProductIDPrefix, 9999, "PRD10000"},
		{"negative treated as empty", CategoryIDPrefix, -3, "CAT0001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NextID(tt.prefix, tt.maxSuffix); got != tt.expected {
				t.Errorf("NextID(%q, %d) = %q, want %q", tt.prefix, tt.maxSuffix, got, tt.expected)
			}
		})
	}
}

func TestSeedID(t *testing.T) {
	if got := SeedID(SubcategoryIDPrefix); got != "SUB0001" {
		t.Errorf("SeedID(SUB) = %q, want SUB0001", got)
	}
}

func TestIDSuffix(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		prefix   string
		expected int
		wantErr  bool
	}{
		{"valid", "PRD0042", ProductIDPrefix, 42, false},
		{"valid wide", "PRD10000", ProductIDPrefix, 10000, false},
		{"wrong prefix", "CAT0001", ProductIDPrefix, 0, true},
		{"no suffix", "PRD", ProductIDPrefix, 0, true},
		{"non numeric suffix", "PRDabc", ProductIDPrefix, 0, true},
		{"zero suffix rejected", "PRD0000", ProductIDPrefix, 0, true},
		{"empty", "", ProductIDPrefix, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := IDSuffix(tt.id, tt.prefix)
			if tt.wantErr {
				if err == nil {
					t.Errorf("IDSuffix(%q) expected error, got %d", tt.id, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("IDSuffix(%q) unexpected error: %v", tt.id, err)
			}
			if got != tt.expected {
				t.Errorf("IDSuffix(%q) = %d, want %d", tt.id, got, tt.expected)
			}
		})
	}
}

func TestIsBusinessID(t *testing.T) {
	if !IsBusinessID("CAT0007", CategoryIDPrefix) {
		t.Error("CAT0007 should be a category business id")
	}
	if IsBusinessID("7", CategoryIDPrefix) {
		t.Error("bare number is not a business id")
	}
	if IsBusinessID("SUB0007", CategoryIDPrefix) {
		t.Error("SUB0007 is not a category business id")
	}
}

// Sequential generation from the reported maximum never repeats or skips.
func TestNextIDSequence(t *testing.T) {
	max := 0
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NextID(ProductIDPrefix, max)
		if seen[id] {
			t.Fatalf("duplicate id generated: %s", id)
		}
		seen[id] = true

		suffix, err := IDSuffix(id, ProductIDPrefix)
		if err != nil {
			t.Fatalf("generated id %s does not parse: %v", id, err)
		}
		if suffix != max+1 {
			t.Fatalf("expected suffix %d, got %d", max+1, suffix)
		}
		max = suffix
	}
}
