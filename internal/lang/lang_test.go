package lang

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/vadimfedulov035/cyrillify/internal/normalizer"
	"github.com/vadimfedulov035/cyrillify/internal/rules"
)

func TestBuiltinExamples(t *testing.T) {
	for _, l := range Builtin().Languages() {
		t.Run(l.English, func(t *testing.T) {
			if len(l.Examples) == 0 {
				t.Fatal("no reference examples")
			}
			for _, m := range l.Verify() {
				t.Errorf("%q -> %q, want %q", m.From, m.Got, m.To)
			}
		})
	}
}

func TestBuiltinTables(t *testing.T) {
	tests := []struct {
		lang        *Language
		maxLen      int
		anchorStart bool
		anchorEnd   bool
	}{
		{Burmese, 5, true, true},
		{Thai, 3, false, false},
		{Vietnamese, 5, true, true},
	}

	for _, tt := range tests {
		rs, err := rules.Compile(tt.lang.Entries)
		if err != nil {
			t.Errorf("%s: Compile error: %v", tt.lang, err)
			continue
		}
		if rs.MaxPatternLen() != tt.maxLen {
			t.Errorf("%s: MaxPatternLen() = %d, want %d", tt.lang, rs.MaxPatternLen(), tt.maxLen)
		}
		if rs.AnchorsStart() != tt.anchorStart || rs.AnchorsEnd() != tt.anchorEnd {
			t.Errorf("%s: anchors = (%v, %v), want (%v, %v)", tt.lang,
				rs.AnchorsStart(), rs.AnchorsEnd(), tt.anchorStart, tt.anchorEnd)
		}
		if rs.Fold() != normalizer.FoldUpper {
			t.Errorf("%s: Fold() = %v, want upper", tt.lang, rs.Fold())
		}
		if rs.Len() != len(tt.lang.Entries) {
			t.Errorf("%s: Len() = %d, want %d", tt.lang, rs.Len(), len(tt.lang.Entries))
		}
	}
}

func TestRulesCompiledOnce(t *testing.T) {
	var wg sync.WaitGroup
	sets := make([]*rules.RuleSet, 8)
	for i := range sets {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sets[i] = Thai.Rules()
		}(i)
	}
	wg.Wait()

	for i, rs := range sets {
		if rs == nil || rs != sets[0] {
			t.Fatalf("Rules() call %d returned a different rule set", i)
		}
	}
}

func TestTranscribe(t *testing.T) {
	tests := []struct {
		lang     *Language
		input    string
		expected string
	}{
		{Burmese, "Aung San Suu Kyi", "Аун Сан Суу Чжи"},
		{Burmese, "HTIN KYAW", "ТХИН ЧЖО"},
		{Burmese, "htin kyaw", "тхин чжо"},
		{Burmese, "Kyaukse", "Чжаусе"},
		{Burmese, "Ye, Myanmar", "Е, Мьянма"},
		{Burmese, "Myitkyina", "Мьичина"},
		{Burmese, "U Thant", "У Тан"},
		{Thai, "Chiang Mai", "Чианг Май"},
		{Vietnamese, "Ho Chi Minh", "Хо Ти Минь"},
		{Vietnamese, "Тайный", "Тайный"},
	}

	for _, tt := range tests {
		result := tt.lang.Transcribe(tt.input)
		if result != tt.expected {
			t.Errorf("%s: Transcribe(%q) = %q, want %q", tt.lang, tt.input, result, tt.expected)
		}
	}
}

func TestVerifyReportsMismatch(t *testing.T) {
	l := &Language{
		Code:    "xx",
		Entries: []rules.Entry{{Pattern: "A", Replacement: "А"}},
		Examples: []Example{
			{From: "A", To: "А"},
			{From: "AB", To: "АБ"},
		},
	}

	mismatches := l.Verify()
	if len(mismatches) != 1 {
		t.Fatalf("Verify() returned %d mismatches, want 1", len(mismatches))
	}
	if mismatches[0].From != "AB" || mismatches[0].Got != "АB" {
		t.Errorf("Verify() mismatch = %+v", mismatches[0])
	}
}

func TestLookup(t *testing.T) {
	r := Builtin()

	tests := []struct {
		id       string
		expected *Language
	}{
		{"my", Burmese},
		{"MY", Burmese},
		{"Burmese", Burmese},
		{"бирманский", Burmese},
		{"Бирманский", Burmese},
		{"bur", Burmese},
		{"b", Burmese},
		{" thai ", Thai},
		{"t", Thai},
		{"тай", Thai},
		{"vi", Vietnamese},
		{"v", Vietnamese},
		{"вьет", Vietnamese},
	}

	for _, tt := range tests {
		l, err := r.Lookup(tt.id)
		if err != nil {
			t.Errorf("Lookup(%q) error: %v", tt.id, err)
			continue
		}
		if l != tt.expected {
			t.Errorf("Lookup(%q) = %s, want %s", tt.id, l, tt.expected)
		}
	}
}

func TestLookupUnknown(t *testing.T) {
	r := Builtin()

	tests := []struct {
		id      string
		suggest string
	}{
		{"burmse", "burmese"},
		{"thia", "thai"},
		{"бирманскй", "бирманский"},
		{"zzzzzzzzzz", ""},
		{"", ""},
	}

	for _, tt := range tests {
		_, err := r.Lookup(tt.id)
		if !errors.Is(err, ErrUnknownLanguage) {
			t.Errorf("Lookup(%q) error = %v, want ErrUnknownLanguage", tt.id, err)
			continue
		}
		msg := err.Error()
		if tt.suggest == "" {
			if strings.Contains(msg, "did you mean") {
				t.Errorf("Lookup(%q) error = %q, want no suggestion", tt.id, msg)
			}
			continue
		}
		if !strings.Contains(msg, tt.suggest) {
			t.Errorf("Lookup(%q) error = %q, want suggestion %q", tt.id, msg, tt.suggest)
		}
	}
}

func TestLookupAmbiguousPrefix(t *testing.T) {
	r := Builtin()
	tagalog := &Language{Code: "tl", English: "Tagalog"}
	if err := r.Register(tagalog); err != nil {
		t.Fatalf("Register error: %v", err)
	}

	_, err := r.Lookup("t")
	if !errors.Is(err, ErrUnknownLanguage) {
		t.Fatalf("Lookup(t) error = %v, want ErrUnknownLanguage", err)
	}
	if !strings.Contains(err.Error(), "ambiguous") {
		t.Errorf("Lookup(t) error = %q, want ambiguity", err)
	}

	if l, err := r.Lookup("tag"); err != nil || l != tagalog {
		t.Errorf("Lookup(tag) = %v, %v, want Tagalog", l, err)
	}
}

func TestRegister(t *testing.T) {
	r := Builtin()

	tests := []struct {
		name     string
		lang     *Language
		expected error
	}{
		{"taken code", &Language{Code: "MY"}, ErrDuplicateLanguage},
		{"taken name", &Language{Code: "bu", English: "burmese"}, ErrDuplicateLanguage},
		{"no code", &Language{English: "Lao"}, ErrInvalidLanguage},
		{"blank code", &Language{Code: "  "}, ErrInvalidLanguage},
		{"nil", nil, ErrInvalidLanguage},
		{"new", &Language{Code: "lo", Name: "Лаосский", English: "Lao"}, nil},
	}

	for _, tt := range tests {
		err := r.Register(tt.lang)
		if !errors.Is(err, tt.expected) {
			t.Errorf("%s: Register error = %v, want %v", tt.name, err, tt.expected)
		}
	}

	if r.Len() != 4 {
		t.Errorf("Len() = %d, want 4", r.Len())
	}
	if l, err := r.Lookup("лао"); err != nil || l.Code != "lo" {
		t.Errorf("Lookup(лао) = %v, %v, want Lao", l, err)
	}
}

func TestLanguagesOrder(t *testing.T) {
	langs := Builtin().Languages()
	codes := make([]string, len(langs))
	for i, l := range langs {
		codes[i] = l.Code
	}
	if strings.Join(codes, ",") != "my,th,vi" {
		t.Errorf("Languages() codes = %v, want [my th vi]", codes)
	}

	langs[0] = nil
	if Builtin().Languages()[0] != Burmese {
		t.Error("Languages() exposes registry storage")
	}
}

const laoTable = `
code = "lo"
name = "Лаосский"
english = "Lao"

[[rule]]
pattern = "L"
replacement = "Л"

[[rule]]
pattern = "U"
replacement = "У"

[[rule]]
pattern = "A"
replacement = "А"

[[rule]]
pattern = "N"
replacement = "Н"

[[rule]]
pattern = "G"
replacement = "Г"

[[rule]]
pattern = "NG|"
replacement = "Н"

[[rule]]
pattern = "P"
replacement = "П"

[[rule]]
pattern = "R"
replacement = "Р"

[[rule]]
pattern = "B"
replacement = "Б"

[[example]]
from = "Luang Prabang"
to = "Луан Прабан"

[[example]]
from = "Nan"
to = "Нан"
`

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lao.toml")
	if err := os.WriteFile(path, []byte(laoTable), 0644); err != nil {
		t.Fatal(err)
	}

	l, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile error: %v", err)
	}

	if l.Code != "lo" || l.Name != "Лаосский" || l.English != "Lao" {
		t.Errorf("LoadFile identifiers = %q %q %q", l.Code, l.Name, l.English)
	}
	if len(l.Entries) != 9 {
		t.Errorf("LoadFile read %d rules, want 9", len(l.Entries))
	}
	if l.Entries[5].Pattern != "NG|" {
		t.Errorf("rule 5 pattern = %q, want NG| (order kept)", l.Entries[5].Pattern)
	}
	if len(l.Examples) != 2 {
		t.Errorf("LoadFile read %d examples, want 2", len(l.Examples))
	}
	if m := l.Verify(); len(m) != 0 {
		t.Errorf("Verify() = %+v, want no mismatches", m)
	}
	if got := l.Transcribe("NGA"); got != "НГА" {
		t.Errorf("Transcribe(NGA) = %q, want НГА", got)
	}

	r := Builtin()
	if err := r.Register(l); err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if found, err := r.Lookup("lao"); err != nil || found != l {
		t.Errorf("Lookup(lao) = %v, %v", found, err)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected error
	}{
		{
			name:     "duplicate pattern",
			input:    "code = \"x\"\n[[rule]]\npattern = \"A\"\nreplacement = \"А\"\n[[rule]]\npattern = \"A\"\nreplacement = \"Я\"\n",
			expected: rules.ErrDuplicatePattern,
		},
		{
			name:     "empty pattern",
			input:    "code = \"x\"\n[[rule]]\npattern = \"||\"\nreplacement = \"А\"\n",
			expected: rules.ErrEmptyPattern,
		},
		{
			name:     "mixed case",
			input:    "code = \"x\"\n[[rule]]\npattern = \"A\"\nreplacement = \"А\"\n[[rule]]\npattern = \"b\"\nreplacement = \"б\"\n",
			expected: rules.ErrMixedCase,
		},
		{
			name:     "misspelled key",
			input:    "code = \"x\"\n[[rule]]\npattern = \"A\"\nreplacment = \"А\"\n",
			expected: ErrUnknownKey,
		},
		{
			name:     "missing code",
			input:    "name = \"x\"\n",
			expected: ErrInvalidLanguage,
		},
	}

	for _, tt := range tests {
		_, err := Decode(strings.NewReader(tt.input))
		if !errors.Is(err, tt.expected) {
			t.Errorf("%s: Decode error = %v, want %v", tt.name, err, tt.expected)
		}
	}
}

func TestDecodeSyntaxError(t *testing.T) {
	if _, err := Decode(strings.NewReader("code = \n[[rule")); err == nil {
		t.Error("Decode accepted malformed TOML")
	}
}

func TestLoadFileErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadFile(filepath.Join(dir, "missing.toml"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("LoadFile(missing) error = %v, want not exist", err)
	}

	path := filepath.Join(dir, "bad.toml")
	bad := "code = \"x\"\n[[rule]]\npattern = \"A|B\"\nreplacement = \"\"\n"
	if err := os.WriteFile(path, []byte(bad), 0644); err != nil {
		t.Fatal(err)
	}
	_, err = LoadFile(path)
	if !errors.Is(err, rules.ErrMarkerInPattern) {
		t.Errorf("LoadFile(bad) error = %v, want ErrMarkerInPattern", err)
	}
	if err != nil && !strings.Contains(err.Error(), "bad.toml") {
		t.Errorf("LoadFile(bad) error = %q, want file name", err)
	}
}

func BenchmarkBurmese(b *testing.B) {
	t := Burmese.Transcriber()
	input := "Min Aung Hlaing, Thein Sein, Htin Kyaw"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		t.Transcribe(input)
	}
}
