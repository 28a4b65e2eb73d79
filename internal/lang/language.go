// Package lang holds the compiled-in transcription tables and the registry
// the command-line tools pick them from. Tables can also be loaded from TOML
// rule files.
package lang

import (
	"sync"

	"github.com/vadimfedulov035/cyrillify/internal/rules"
	"github.com/vadimfedulov035/cyrillify/internal/transcriber"
)

// Example is a reference transcription a table must reproduce.
type Example struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Mismatch is an example whose transcription differs from the expected one.
type Mismatch struct {
	Example
	Got string `json:"got"`
}

// Language is a named rule table. Its rule set is compiled on first use and
// shared afterwards.
type Language struct {
	Code     string // short identifier, e.g. "my"
	Name     string // display name in Russian
	English  string
	Entries  []rules.Entry
	Examples []Example

	once     sync.Once
	compiled *rules.RuleSet
}

// Rules returns the compiled rule set. Compiled-in tables are known to be
// valid, so a malformed table panics here.
func (l *Language) Rules() *rules.RuleSet {
	l.once.Do(func() {
		if l.compiled == nil {
			l.compiled = rules.MustCompile(l.Entries)
		}
	})
	return l.compiled
}

// Transcriber returns a transcriber for the language.
func (l *Language) Transcriber() *transcriber.Transcriber {
	return transcriber.New(l.Rules())
}

// Transcribe converts input using the language's rules.
func (l *Language) Transcribe(input string) string {
	return l.Transcriber().Transcribe(input)
}

// Verify transcribes every example and returns those that do not match.
func (l *Language) Verify() []Mismatch {
	t := l.Transcriber()

	var mismatches []Mismatch
	for _, ex := range l.Examples {
		if got := t.Transcribe(ex.From); got != ex.To {
			mismatches = append(mismatches, Mismatch{Example: ex, Got: got})
		}
	}
	return mismatches
}

// String returns the English name followed by the code.
func (l *Language) String() string {
	if l.English == "" {
		return l.Code
	}
	return l.English + " (" + l.Code + ")"
}
