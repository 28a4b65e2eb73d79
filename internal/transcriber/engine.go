package transcriber

import (
	"strings"

	"github.com/vadimfedulov035/cyrillify/internal/rules"
	"github.com/vadimfedulov035/cyrillify/internal/segment"
)

// Step is one move of the word scan: either a rule match or a cluster
// copied through unchanged.
type Step struct {
	Source  string       // matched input clusters
	Target  string       // emitted text
	Pattern string       // rule pattern with markers; empty when copied
	Anchor  rules.Anchor // anchor class of the matched rule
	Matched bool
}

// TranscribeWord transcribes a single alphabetic word that is already folded
// into the rule set's case. Unmapped clusters are copied verbatim.
func (t *Transcriber) TranscribeWord(word string) string {
	var b strings.Builder
	b.Grow(len(word) * 2)
	t.scan(word, func(s Step) {
		b.WriteString(s.Target)
	})
	return b.String()
}

// Trace returns the steps TranscribeWord takes for word.
func (t *Transcriber) Trace(word string) []Step {
	var steps []Step
	t.scan(word, func(s Step) {
		steps = append(steps, s)
	})
	return steps
}

// scan walks word with a cursor over grapheme cluster boundaries. At each
// position it tries the longest window first and shrinks it one cluster at a
// time; the rule set resolves anchor precedence for every candidate.
func (t *Transcriber) scan(word string, emit func(Step)) {
	bounds := segment.Boundaries(word)
	n := len(bounds) - 1
	maxLen := t.rules.MaxPatternLen()

	for i := 0; i < n; {
		// Start anchors hold only before anything of the word is consumed.
		atStart := i == 0
		matched := false

		for end := min(i+maxLen, n); end > i; end-- {
			core := word[bounds[i]:bounds[end]]
			rule, ok := t.rules.Match(core, atStart, end == n)
			if !ok {
				continue
			}
			emit(Step{
				Source:  core,
				Target:  rule.Replacement,
				Pattern: rule.Pattern(),
				Anchor:  rule.Anchor,
				Matched: true,
			})
			i = end
			matched = true
			break
		}

		if !matched {
			cluster := word[bounds[i]:bounds[i+1]]
			emit(Step{Source: cluster, Target: cluster})
			i++
		}
	}
}
