package normalizer

import (
	"testing"
)

func TestCompose(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"ascii passthrough", "Thein", "Thein"},
		{"combining circumflex", "E\u0302", "\u00ca"},
		{"combining horn", "U\u031b", "\u01af"},
		{"already composed", "\u0110", "\u0110"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Compose(tt.input)
			if result != tt.expected {
				t.Errorf("Compose(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestWord(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		fold     Fold
		expected string
	}{
		{"upper ascii", "Aing", FoldUpper, "AING"},
		{"lower ascii", "NaMe", FoldLower, "name"},
		{"upper vietnamese", "nguy\u1ec5n", FoldUpper, "NGUY\u1ec4N"},
		{"upper decomposed", "chie\u0302", FoldUpper, "CHI\u00ca"},
		{"lower cyrillic", "ДЖО", FoldLower, "джо"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Word(tt.input, tt.fold)
			if result != tt.expected {
				t.Errorf("Word(%q, %v) = %q, want %q", tt.input, tt.fold, result, tt.expected)
			}
		})
	}
}

func TestFoldString(t *testing.T) {
	if FoldUpper.String() != "upper" {
		t.Errorf("FoldUpper.String() = %q, want %q", FoldUpper.String(), "upper")
	}
	if FoldLower.String() != "lower" {
		t.Errorf("FoldLower.String() = %q, want %q", FoldLower.String(), "lower")
	}
}

func BenchmarkWord(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Word("Nguy\u1ec5n", FoldUpper)
	}
}
