// Package casing records the letter case of a word and reapplies it to the
// word's transcription.
package casing

import (
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"

	"github.com/vadimfedulov035/cyrillify/internal/normalizer"
)

// Case is the case style of a word.
type Case uint8

const (
	Lower Case = iota // "name"
	Title             // "Name"
	Upper             // "NAME"
	Mixed             // "nAmE"
)

var caseNames = [...]string{"lower", "title", "upper", "mixed"}

// String returns the case name.
func (c Case) String() string {
	if int(c) < len(caseNames) {
		return caseNames[c]
	}
	return "unknown"
}

// Classify returns the case style of word. Each grapheme cluster is judged
// by its first code point. A word whose first cluster is not lower case and
// which has no cased letters after it is Title.
func Classify(word string) Case {
	first, rest, _, state := uniseg.FirstGraphemeClusterInString(word, -1)
	if first == "" {
		return Lower
	}

	var hasUpper, hasLower bool
	for rest != "" {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		r, _ := utf8.DecodeRuneInString(cluster)
		if unicode.IsUpper(r) {
			hasUpper = true
		} else if unicode.IsLower(r) {
			hasLower = true
		}
		if hasUpper && hasLower {
			break
		}
	}

	r, _ := utf8.DecodeRuneInString(first)
	if unicode.IsLower(r) {
		if hasUpper {
			return Mixed
		}
		return Lower
	}

	switch {
	case hasUpper && hasLower:
		return Mixed
	case hasUpper:
		return Upper
	default:
		return Title
	}
}

// Apply renders word in case c. Title and Mixed both capitalize the first
// grapheme cluster and lower the rest; letters of the two alphabets do not
// correspond position by position, so a mixed pattern cannot be carried over.
func Apply(word string, c Case) string {
	switch c {
	case Lower:
		return normalizer.ToLower(word)
	case Upper:
		return normalizer.ToUpper(word)
	default:
		return Titleize(word)
	}
}

// Titleize upper-cases the first grapheme cluster of word and lower-cases
// the remainder.
func Titleize(word string) string {
	first, rest, _, _ := uniseg.FirstGraphemeClusterInString(word, -1)
	if first == "" {
		return ""
	}
	return normalizer.ToUpper(first) + normalizer.ToLower(rest)
}
