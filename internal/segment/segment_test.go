package segment

import (
	"reflect"
	"strings"
	"testing"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Segment
	}{
		{"empty", "", nil},
		{"single word", "Maung", []Segment{{0, 5, true}}},
		{"two words", "Htin Kyaw", []Segment{
			{0, 4, true}, {4, 5, false}, {5, 9, true},
		}},
		{"hyphenated", "Mee-Bone", []Segment{
			{0, 3, true}, {3, 4, false}, {4, 8, true},
		}},
		{"digits split words", "A1B", []Segment{
			{0, 1, true}, {1, 2, false}, {2, 3, true},
		}},
		{"leading punctuation", "  42, Ba", []Segment{
			{0, 6, false}, {6, 8, true},
		}},
		{"punctuation only", "?!", []Segment{{0, 2, false}}},
		{"cyrillic is alphabetic", "Тан", []Segment{{0, 6, true}}},
		{"combining mark stays in word", "e\u0301x", []Segment{{0, 4, true}}},
		{"combining mark on space", "a \u0301b", []Segment{
			{0, 1, true}, {1, 4, false}, {4, 5, true},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Split(tt.input)
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("Split(%q) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestSplitCoversInput(t *testing.T) {
	inputs := []string{
		"Sao Shwe Thaik",
		"Mee-Bone-Pyan U Kyaw Yin",
		"  Nguyễn   Trãi!! ",
		"123",
		"Hà Nội, Việt Nam",
		"e\u0301\u0301 \u0301",
	}

	for _, input := range inputs {
		segments := Split(input)

		var b strings.Builder
		pos := 0
		for i, seg := range segments {
			if seg.Start != pos {
				t.Errorf("Split(%q)[%d] starts at %d, want %d", input, i, seg.Start, pos)
			}
			if seg.Len() == 0 {
				t.Errorf("Split(%q)[%d] is empty", input, i)
			}
			if i > 0 && segments[i-1].Alphabetic == seg.Alphabetic {
				t.Errorf("Split(%q)[%d] has the same class as its predecessor", input, i)
			}
			b.WriteString(seg.Text(input))
			pos = seg.End
		}

		if pos != len(input) {
			t.Errorf("Split(%q) ends at %d, want %d", input, pos, len(input))
		}
		if b.String() != input {
			t.Errorf("Split(%q) reassembles to %q", input, b.String())
		}
	}
}

func TestScannerReset(t *testing.T) {
	input := "Than Shwe"
	sc := NewScanner(input)

	var first []string
	for sc.Scan() {
		first = append(first, sc.Text())
	}

	sc.Reset()
	var second []string
	for sc.Scan() {
		second = append(second, sc.Text())
	}

	expected := []string{"Than", " ", "Shwe"}
	if !reflect.DeepEqual(first, expected) {
		t.Errorf("first pass = %q, want %q", first, expected)
	}
	if !reflect.DeepEqual(second, expected) {
		t.Errorf("second pass = %q, want %q", second, expected)
	}
}

func TestScannerEmpty(t *testing.T) {
	sc := NewScanner("")
	if sc.Scan() {
		t.Error("Scan() on empty input returned true")
	}
}

func TestIsAlphabetic(t *testing.T) {
	tests := []struct {
		cluster  string
		expected bool
	}{
		{"a", true},
		{"E\u0302", true},
		{"Д", true},
		{"e\u0301", true},
		{"1", false},
		{" ", false},
		{"-", false},
		{"\u0301", false},
		{"", false},
	}

	for _, tt := range tests {
		result := IsAlphabetic(tt.cluster)
		if result != tt.expected {
			t.Errorf("IsAlphabetic(%q) = %v, want %v", tt.cluster, result, tt.expected)
		}
	}
}

func TestClustersAndBoundaries(t *testing.T) {
	word := "NGUYE\u0302N"

	clusters := Clusters(word)
	expectedClusters := []string{"N", "G", "U", "Y", "E\u0302", "N"}
	if !reflect.DeepEqual(clusters, expectedClusters) {
		t.Errorf("Clusters(%q) = %q, want %q", word, clusters, expectedClusters)
	}

	bounds := Boundaries(word)
	expectedBounds := []int{0, 1, 2, 3, 4, 7, 8}
	if !reflect.DeepEqual(bounds, expectedBounds) {
		t.Errorf("Boundaries(%q) = %v, want %v", word, bounds, expectedBounds)
	}

	if got := Count(word); got != 6 {
		t.Errorf("Count(%q) = %d, want 6", word, got)
	}

	if got := Boundaries(""); !reflect.DeepEqual(got, []int{0}) {
		t.Errorf("Boundaries(\"\") = %v, want [0]", got)
	}
	if got := Clusters(""); got != nil {
		t.Errorf("Clusters(\"\") = %q, want nil", got)
	}
}

func BenchmarkSplit(b *testing.B) {
	input := "Mee-Bone-Pyan U Kyaw Yin, Daw Kin Win Shwe"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Split(input)
	}
}
