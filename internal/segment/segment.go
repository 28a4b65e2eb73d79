// Package segment splits text into alternating runs of alphabetic and
// non-alphabetic grapheme clusters.
//
// A grapheme cluster is the atomic unit: a base letter and its combining
// marks are never separated. A cluster is classified by its first code point
// only, so a letter followed by a non-alphabetic combining mark stays one
// alphabetic cluster.
package segment

import (
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// Segment is a half-open byte range [Start, End) of the scanned input.
type Segment struct {
	Start      int
	End        int
	Alphabetic bool
}

// Text returns the slice of input covered by the segment.
func (s Segment) Text(input string) string {
	return input[s.Start:s.End]
}

// Len returns the segment length in bytes.
func (s Segment) Len() int {
	return s.End - s.Start
}

// Scanner yields the segments of a string one at a time, in input order.
// Usage follows bufio.Scanner:
//
//	sc := segment.NewScanner(input)
//	for sc.Scan() {
//		seg := sc.Segment()
//		...
//	}
type Scanner struct {
	input string
	pos   int
	state int
	seg   Segment
}

// NewScanner creates a scanner positioned at the start of input.
func NewScanner(input string) *Scanner {
	return &Scanner{input: input, state: -1}
}

// Scan advances to the next segment. It returns false at the end of input.
func (s *Scanner) Scan() bool {
	if s.pos >= len(s.input) {
		return false
	}

	start := s.pos
	cluster, rest, _, state := uniseg.FirstGraphemeClusterInString(s.input[s.pos:], s.state)
	alphabetic := IsAlphabetic(cluster)
	s.pos += len(cluster)
	s.state = state

	// Extend while the next cluster has the same class. The boundary state
	// is only committed for clusters that join the segment.
	for rest != "" {
		next, nextRest, _, nextState := uniseg.FirstGraphemeClusterInString(rest, s.state)
		if IsAlphabetic(next) != alphabetic {
			break
		}
		s.pos += len(next)
		s.state = nextState
		rest = nextRest
	}

	s.seg = Segment{Start: start, End: s.pos, Alphabetic: alphabetic}
	return true
}

// Segment returns the segment found by the last call to Scan.
func (s *Scanner) Segment() Segment {
	return s.seg
}

// Text returns the input covered by the current segment.
func (s *Scanner) Text() string {
	return s.seg.Text(s.input)
}

// Reset rewinds the scanner to the start of its input.
func (s *Scanner) Reset() {
	s.pos = 0
	s.state = -1
	s.seg = Segment{}
}

// Split returns every segment of input. Empty input yields no segments.
func Split(input string) []Segment {
	var segments []Segment
	sc := NewScanner(input)
	for sc.Scan() {
		segments = append(segments, sc.Segment())
	}
	return segments
}

// IsAlphabetic reports whether the first code point of cluster has the
// Unicode Alphabetic property.
func IsAlphabetic(cluster string) bool {
	r, size := utf8.DecodeRuneInString(cluster)
	if size == 0 {
		return false
	}
	return unicode.IsLetter(r) ||
		unicode.Is(unicode.Nl, r) ||
		unicode.Is(unicode.Other_Alphabetic, r)
}

// Clusters splits s into grapheme clusters.
func Clusters(s string) []string {
	var clusters []string
	state := -1
	for s != "" {
		var cluster string
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		clusters = append(clusters, cluster)
	}
	return clusters
}

// Boundaries returns the byte offsets of the grapheme cluster boundaries of
// s, starting with 0 and ending with len(s). A string of n clusters yields
// n+1 offsets.
func Boundaries(s string) []int {
	offsets := make([]int, 1, len(s)+1)
	pos := 0
	state := -1
	for rest := s; rest != ""; {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		pos += len(cluster)
		offsets = append(offsets, pos)
	}
	return offsets
}

// Count returns the number of grapheme clusters in s.
func Count(s string) int {
	return uniseg.GraphemeClusterCount(s)
}
