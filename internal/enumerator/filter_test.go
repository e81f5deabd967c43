package enumerator_test

import (
	"testing"

	"github.com/joe/list-displays/internal/enumerator"
)

func TestSocketFilter_ShouldInclude(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		expected bool
	}{
		{"X0", true},
		{"X12", true},
		{"X", true},
		{"Xfoo", true},
		{"X[1", true},
		{"x0", false},
		{".X0-lock", false},
		{"lock", false},
		{"", false},
	}

	filter := enumerator.NewSocketFilter()

	for _, tt := range tests {
		if got := filter.ShouldInclude(tt.name); got != tt.expected {
			t.Errorf("ShouldInclude(%q) = %v, want %v", tt.name, got, tt.expected)
		}
	}
}

func TestGlobFilter_InvalidPatternMatchesNothing(t *testing.T) {
	t.Parallel()

	filter := enumerator.NewGlobFilter("X[")

	if filter.ShouldInclude("X0") {
		t.Error("invalid pattern should not match")
	}
}

func TestIdentifier(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		expected string
	}{
		{"X0", ":0"},
		{"X10", ":10"},
		{"Xfoo", ":foo"},
		{"X", ":"},
	}

	for _, tt := range tests {
		if got := enumerator.Identifier(tt.name); got != tt.expected {
			t.Errorf("Identifier(%q) = %q, want %q", tt.name, got, tt.expected)
		}
	}
}
