package utils

import (
	"strings"
	"testing"
)

func TestParseInt(t *testing.T) {
	tests := []struct {
		value        string
		defaultValue int
		want         int
	}{
		{"", 10, 10},
		{"5", 10, 5},
		{"abc", 10, 10},
		{"0", 10, 10},
		{"-3", 10, 10},
		{"100", 1, 100},
	}

	for _, tt := range tests {
		if got := ParseInt(tt.value, tt.defaultValue); got != tt.want {
			t.Fatalf("ParseInt(%q, %d) = %d, want %d", tt.value, tt.defaultValue, got, tt.want)
		}
	}
}

func TestGenerateReference(t *testing.T) {
	ref := GenerateReference("EVT")

	if !strings.HasPrefix(ref, "EVT-") {
		t.Fatalf("expected EVT prefix, got %q", ref)
	}
	parts := strings.Split(ref, "-")
	if len(parts) != 4 {
		t.Fatalf("expected 4 segments, got %d in %q", len(parts), ref)
	}
	if len(parts[1]) != 8 || len(parts[2]) != 6 || len(parts[3]) != 4 {
		t.Fatalf("unexpected segment lengths in %q", ref)
	}
}

func TestCalculateTotalPages(t *testing.T) {
	tests := []struct {
		total   int64
		perPage int
		want    int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{100, 10, 10},
		{5, 0, 0},
	}

	for _, tt := range tests {
		if got := CalculateTotalPages(tt.total, tt.perPage); got != tt.want {
			t.Fatalf("CalculateTotalPages(%d, %d) = %d, want %d", tt.total, tt.perPage, got, tt.want)
		}
	}
}
