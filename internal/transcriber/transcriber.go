// Package transcriber rewrites Latin-script names into Cyrillic using a
// compiled rule set.
//
// Input is split into alphabetic and non-alphabetic runs of grapheme
// clusters. Non-alphabetic runs (spaces, punctuation, digits) are copied
// unchanged. Each alphabetic run is transcribed as one word: its case is
// recorded, the word is folded into the rule table's case, rewritten by
// greedy longest match, and the recorded case is reapplied.
//
// Transcription never fails. Clusters without a rule, including text that is
// already Cyrillic, pass through unchanged. A Transcriber holds no mutable
// state and is safe for concurrent use.
package transcriber

import (
	"strings"

	"github.com/vadimfedulov035/cyrillify/internal/casing"
	"github.com/vadimfedulov035/cyrillify/internal/normalizer"
	"github.com/vadimfedulov035/cyrillify/internal/rules"
	"github.com/vadimfedulov035/cyrillify/internal/segment"
)

// Transcriber applies one rule set.
type Transcriber struct {
	rules *rules.RuleSet
}

// New creates a transcriber for rs.
func New(rs *rules.RuleSet) *Transcriber {
	return &Transcriber{rules: rs}
}

// Rules returns the rule set in use.
func (t *Transcriber) Rules() *rules.RuleSet {
	return t.rules
}

// Transcribe transcribes input with rs.
func Transcribe(input string, rs *rules.RuleSet) string {
	return New(rs).Transcribe(input)
}

// Transcribe converts input to Cyrillic.
func (t *Transcriber) Transcribe(input string) string {
	var b strings.Builder
	b.Grow(len(input) * 2)

	sc := segment.NewScanner(input)
	for sc.Scan() {
		text := sc.Text()
		if !sc.Segment().Alphabetic {
			b.WriteString(text)
			continue
		}
		b.WriteString(t.word(text, nil))
	}

	return b.String()
}

// word transcribes one alphabetic segment, preserving its case style. A word
// that no rule touches is returned as given. Steps are passed to visit when
// it is not nil.
func (t *Transcriber) word(text string, visit func(Step)) string {
	folded := normalizer.Word(text, t.rules.Fold())

	var b strings.Builder
	b.Grow(len(folded) * 2)
	matched := false
	t.scan(folded, func(s Step) {
		b.WriteString(s.Target)
		matched = matched || s.Matched
		if visit != nil {
			visit(s)
		}
	})

	if !matched {
		return text
	}
	return casing.Apply(b.String(), casing.Classify(text))
}

// WordTrace describes how one alphabetic segment was transcribed.
type WordTrace struct {
	Source string
	Folded string
	Case   casing.Case
	Steps  []Step
	Output string
}

// Explain traces every alphabetic segment of input.
func (t *Transcriber) Explain(input string) []WordTrace {
	var traces []WordTrace

	sc := segment.NewScanner(input)
	for sc.Scan() {
		if !sc.Segment().Alphabetic {
			continue
		}
		text := sc.Text()
		wt := WordTrace{
			Source: text,
			Folded: normalizer.Word(text, t.rules.Fold()),
			Case:   casing.Classify(text),
		}
		wt.Output = t.word(text, func(s Step) {
			wt.Steps = append(wt.Steps, s)
		})
		traces = append(traces, wt)
	}

	return traces
}
