// Package rules compiles pattern→replacement tables into immutable rule sets.
//
// A pattern is a literal grapheme sequence, optionally anchored with a
// leading Marker (valid only at the start of a word) and/or a trailing
// Marker (valid only at the end of a word):
//
//	"TH"   matches anywhere
//	"|TH"  matches only at the start of a word
//	"NG|"  matches only at the end of a word
//	"|SAI|" matches only the whole word
//
// A compiled RuleSet is never modified and is safe for concurrent use.
package rules

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/vadimfedulov035/cyrillify/internal/normalizer"
	"github.com/vadimfedulov035/cyrillify/internal/segment"
)

// Marker is the anchor notation used in patterns.
const Marker = "|"

// Configuration errors returned by Compile.
var (
	ErrEmptyPattern     = errors.New("empty pattern")
	ErrMarkerInPattern  = errors.New("anchor marker inside pattern")
	ErrDuplicatePattern = errors.New("duplicate pattern")
	ErrMixedCase        = errors.New("patterns mix upper and lower case")
)

// Entry is a rule as written in a table.
type Entry struct {
	Pattern     string
	Replacement string
}

// Anchor is the set of word boundaries a rule is bound to.
type Anchor uint8

const (
	// Free rules match at any position.
	Free Anchor = 0
	// Start rules match only at the start of a word.
	Start Anchor = 1 << 0
	// End rules match only at the end of a word.
	End Anchor = 1 << 1
	// Both rules match only a whole word.
	Both = Start | End
)

// String returns the anchor name.
func (a Anchor) String() string {
	switch a {
	case Free:
		return "free"
	case Start:
		return "start"
	case End:
		return "end"
	case Both:
		return "both"
	}
	return fmt.Sprintf("Anchor(%d)", uint8(a))
}

// Pattern writes core with the markers of a.
func (a Anchor) Pattern(core string) string {
	var b strings.Builder
	b.Grow(len(core) + 2)
	if a&Start != 0 {
		b.WriteString(Marker)
	}
	b.WriteString(core)
	if a&End != 0 {
		b.WriteString(Marker)
	}
	return b.String()
}

// Rule is a compiled table entry.
type Rule struct {
	Core        string // NFC pattern with markers stripped
	Anchor      Anchor
	Replacement string
	Length      int // core length in grapheme clusters
}

// Pattern returns the rule pattern with its markers.
func (r Rule) Pattern() string {
	return r.Anchor.Pattern(r.Core)
}

// Parse strips the anchor markers from pattern.
func Parse(pattern string) (core string, anchor Anchor, err error) {
	core = pattern
	if strings.HasPrefix(core, Marker) {
		anchor |= Start
		core = core[len(Marker):]
	}
	if strings.HasSuffix(core, Marker) {
		anchor |= End
		core = core[:len(core)-len(Marker)]
	}
	if core == "" {
		return "", anchor, ErrEmptyPattern
	}
	if strings.Contains(core, Marker) {
		return "", anchor, ErrMarkerInPattern
	}
	return normalizer.Compose(core), anchor, nil
}

// RuleSet is an immutable compiled rule table for one language.
type RuleSet struct {
	tables       [4]map[string]Rule // indexed by Anchor
	rules        []Rule
	maxLen       int
	anchorsStart bool
	anchorsEnd   bool
	fold         normalizer.Fold
}

// Compile builds a RuleSet from entries. It fails on the first malformed
// entry; a RuleSet is never built from an invalid table.
func Compile(entries []Entry) (*RuleSet, error) {
	rs := &RuleSet{rules: make([]Rule, 0, len(entries))}
	for i := range rs.tables {
		rs.tables[i] = make(map[string]Rule)
	}

	var hasUpper, hasLower bool
	for i, e := range entries {
		core, anchor, err := Parse(e.Pattern)
		if err != nil {
			return nil, fmt.Errorf("rule %d (%q): %w", i, e.Pattern, err)
		}

		table := rs.tables[anchor]
		if _, exists := table[core]; exists {
			return nil, fmt.Errorf("rule %d (%q): %w", i, e.Pattern, ErrDuplicatePattern)
		}

		for _, r := range core {
			if unicode.IsUpper(r) {
				hasUpper = true
			} else if unicode.IsLower(r) {
				hasLower = true
			}
		}
		if hasUpper && hasLower {
			return nil, fmt.Errorf("rule %d (%q): %w", i, e.Pattern, ErrMixedCase)
		}

		rule := Rule{
			Core:        core,
			Anchor:      anchor,
			Replacement: e.Replacement,
			Length:      segment.Count(core),
		}
		table[core] = rule
		rs.rules = append(rs.rules, rule)

		rs.maxLen = max(rs.maxLen, rule.Length)
		if anchor&Start != 0 {
			rs.anchorsStart = true
		}
		if anchor&End != 0 {
			rs.anchorsEnd = true
		}
	}

	if hasLower {
		rs.fold = normalizer.FoldLower
	}
	return rs, nil
}

// MustCompile is like Compile but panics on a malformed table. It is meant
// for tables compiled into the program.
func MustCompile(entries []Entry) *RuleSet {
	rs, err := Compile(entries)
	if err != nil {
		panic("rules: " + err.Error())
	}
	return rs
}

// MaxPatternLen returns the longest pattern core in grapheme clusters.
func (rs *RuleSet) MaxPatternLen() int {
	return rs.maxLen
}

// AnchorsStart reports whether any rule is bound to the start of a word.
func (rs *RuleSet) AnchorsStart() bool {
	return rs.anchorsStart
}

// AnchorsEnd reports whether any rule is bound to the end of a word.
func (rs *RuleSet) AnchorsEnd() bool {
	return rs.anchorsEnd
}

// Fold returns the case the patterns are written in. Words must be folded
// into this case before lookup.
func (rs *RuleSet) Fold() normalizer.Fold {
	return rs.fold
}

// Len returns the number of rules.
func (rs *RuleSet) Len() int {
	return len(rs.rules)
}

// Rules returns a copy of the compiled rules in table order.
func (rs *RuleSet) Rules() []Rule {
	out := make([]Rule, len(rs.rules))
	copy(out, rs.rules)
	return out
}

// Lookup returns the rule with exactly the given core and anchor.
func (rs *RuleSet) Lookup(core string, anchor Anchor) (Rule, bool) {
	if anchor > Both {
		return Rule{}, false
	}
	r, ok := rs.tables[anchor][core]
	return r, ok
}

// Match finds the rule for core at a position where atStart and atEnd tell
// whether core begins and ends on the word boundaries. Anchored forms take
// precedence over the free form: both-anchored first, then start-anchored,
// then end-anchored, then free.
func (rs *RuleSet) Match(core string, atStart, atEnd bool) (Rule, bool) {
	if atStart && atEnd && rs.anchorsStart && rs.anchorsEnd {
		if r, ok := rs.tables[Both][core]; ok {
			return r, true
		}
	}
	if atStart && rs.anchorsStart {
		if r, ok := rs.tables[Start][core]; ok {
			return r, true
		}
	}
	if atEnd && rs.anchorsEnd {
		if r, ok := rs.tables[End][core]; ok {
			return r, true
		}
	}
	r, ok := rs.tables[Free][core]
	return r, ok
}
