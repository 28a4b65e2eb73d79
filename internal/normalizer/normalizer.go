// Package normalizer prepares words for rule table lookup.
package normalizer

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Fold is the letter case a rule table is written in.
type Fold uint8

const (
	// FoldUpper normalizes words to upper case before lookup.
	FoldUpper Fold = iota
	// FoldLower normalizes words to lower case before lookup.
	FoldLower
)

// String returns the fold name.
func (f Fold) String() string {
	if f == FoldLower {
		return "lower"
	}
	return "upper"
}

// Compose returns s in Unicode normalization form C, so that a base letter
// followed by a combining accent and its precomposed form compare equal.
func Compose(s string) string {
	return norm.NFC.String(s)
}

// ToUpper folds s to upper case.
//
// A Caser keeps state between calls, so one is built per call; this keeps
// the function safe for concurrent use.
func ToUpper(s string) string {
	return cases.Upper(language.Und).String(s)
}

// ToLower folds s to lower case.
func ToLower(s string) string {
	return cases.Lower(language.Und).String(s)
}

// Word composes word and folds it into the given case.
func Word(word string, fold Fold) string {
	composed := Compose(word)
	if fold == FoldLower {
		return ToLower(composed)
	}
	return ToUpper(composed)
}
