package similarity

import (
	"reflect"
	"sort"
	"testing"
)

var languageKeys = []string{
	"my", "th", "vi",
	"burmese", "thai", "vietnamese",
	"бирманский", "тайский", "вьетнамский",
}

func TestDistance(t *testing.T) {
	tests := []struct {
		a, b     string
		expected int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"abc", "abc", 0},
		{"kitten", "sitting", 3},
		{"thai", "thia", 2},
		{"burmese", "burmse", 1},
		{"бирманский", "бирманскй", 1},
		{"тайский", "тайски", 1},
		{"my", "мы", 2},
	}

	for _, tt := range tests {
		result := Distance(tt.a, tt.b)
		if result != tt.expected {
			t.Errorf("Distance(%q, %q) = %d, want %d", tt.a, tt.b, result, tt.expected)
		}
		if reverse := Distance(tt.b, tt.a); reverse != result {
			t.Errorf("Distance not symmetric for (%q, %q): %d vs %d", tt.a, tt.b, result, reverse)
		}
	}
}

func TestBKTreeInsert(t *testing.T) {
	tree := NewBKTree()
	tree.InsertAll(languageKeys)

	if tree.Size() != len(languageKeys) {
		t.Errorf("Size() = %d, want %d", tree.Size(), len(languageKeys))
	}

	tree.Insert("thai")
	tree.Insert("")
	if tree.Size() != len(languageKeys) {
		t.Errorf("Size() after duplicate and empty = %d, want %d", tree.Size(), len(languageKeys))
	}
}

func TestBKTreeContains(t *testing.T) {
	tree := NewBKTree()
	tree.InsertAll(languageKeys)

	if !tree.Contains("вьетнамский") {
		t.Error("Contains(вьетнамский) = false, want true")
	}
	if tree.Contains("lao") {
		t.Error("Contains(lao) = true, want false")
	}
}

func TestBKTreeSearch(t *testing.T) {
	tree := NewBKTree()
	tree.InsertAll(languageKeys)

	tests := []struct {
		query    string
		maxDist  int
		expected []string
	}{
		{"thai", 0, []string{"thai"}},
		{"thia", 2, []string{"th", "thai"}},
		{"burmse", 1, []string{"burmese"}},
		{"xx", 2, []string{"my", "th", "vi"}},
		{"zzzzzzzzzzzzzzzz", 100, languageKeys},
	}

	for _, tt := range tests {
		var got []string
		for _, m := range tree.Search(tt.query, tt.maxDist) {
			got = append(got, m.Key)
			if d := Distance(tt.query, m.Key); d != m.Distance {
				t.Errorf("Search(%q): %q reported distance %d, actual %d", tt.query, m.Key, m.Distance, d)
			}
		}
		want := append([]string(nil), tt.expected...)
		sort.Strings(got)
		sort.Strings(want)
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Search(%q, %d) = %v, want %v", tt.query, tt.maxDist, got, want)
		}
	}
}

func TestBKTreeSearchEmpty(t *testing.T) {
	tree := NewBKTree()
	if got := tree.Search("thai", 3); len(got) != 0 {
		t.Errorf("Search on empty tree = %v, want none", got)
	}

	tree.InsertAll(languageKeys)
	if got := tree.Search("", 3); len(got) != 0 {
		t.Errorf("Search with empty query = %v, want none", got)
	}
	if got := tree.Search("thai", -1); len(got) != 0 {
		t.Errorf("Search with negative distance = %v, want none", got)
	}
}

func TestBKTreeNearest(t *testing.T) {
	tree := NewBKTree()
	tree.InsertAll(languageKeys)

	tests := []struct {
		query    string
		maxDist  int
		limit    int
		expected []Match
	}{
		{"thia", 3, 0, []Match{{"th", 2}, {"thai", 2}, {"vi", 3}}},
		{"thia", 3, 2, []Match{{"th", 2}, {"thai", 2}}},
		{"бирманскй", 2, 3, []Match{{"бирманский", 1}}},
		{"xx", 2, 1, []Match{{"my", 2}}},
		{"vietnam", 1, 3, nil},
	}

	for _, tt := range tests {
		got := tree.Nearest(tt.query, tt.maxDist, tt.limit)
		if len(got) == 0 && len(tt.expected) == 0 {
			continue
		}
		if !reflect.DeepEqual(got, tt.expected) {
			t.Errorf("Nearest(%q, %d, %d) = %v, want %v", tt.query, tt.maxDist, tt.limit, got, tt.expected)
		}
	}
}

func BenchmarkDistance(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Distance("вьетнамский", "вьетнамски")
	}
}

func BenchmarkBKTreeNearest(b *testing.B) {
	tree := NewBKTree()
	tree.InsertAll(generateKeys(5000))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree.Nearest("burmse", 2, 3)
	}
}

func generateKeys(n int) []string {
	keys := make([]string, n)
	for i := 0; i < n; i++ {
		base := languageKeys[i%len(languageKeys)]
		keys[i] = base + string(rune('a'+i%26)) + string(rune('a'+(i/26)%26))
	}
	return keys
}
