package lang

import (
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/vadimfedulov035/cyrillify/internal/similarity"
)

// NameMatch is a reference example close to a searched name.
type NameMatch struct {
	Language *Language `json:"-"`
	Code     string    `json:"language"`
	Example
	Distance int `json:"distance"`
}

// NameIndex finds reference examples by approximate spelling.
type NameIndex struct {
	tree   *similarity.BKTree
	names  []string
	byName map[string][]NameMatch
}

// NewNameIndex indexes the examples of langs. Names are compared
// case-insensitively after composition.
func NewNameIndex(langs []*Language) *NameIndex {
	idx := &NameIndex{
		tree:   similarity.NewBKTree(),
		byName: make(map[string][]NameMatch),
	}
	for _, l := range langs {
		for _, ex := range l.Examples {
			key := foldKey(ex.From)
			if key == "" {
				continue
			}
			if _, seen := idx.byName[key]; !seen {
				idx.tree.Insert(key)
				idx.names = append(idx.names, key)
			}
			idx.byName[key] = append(idx.byName[key], NameMatch{Language: l, Code: l.Code, Example: ex})
		}
	}
	return idx
}

// Len returns the number of distinct indexed names.
func (idx *NameIndex) Len() int {
	return idx.tree.Size()
}

// Search returns examples within maxDistance edits of query, closest
// first. A limit of zero or less returns every match.
func (idx *NameIndex) Search(query string, maxDistance, limit int) []NameMatch {
	var out []NameMatch
	for _, m := range idx.tree.Nearest(foldKey(query), maxDistance, 0) {
		for _, nm := range idx.byName[m.Key] {
			nm.Distance = m.Distance
			out = append(out, nm)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// Find returns examples whose name contains the letters of query in order,
// ignoring case and diacritics, ranked by edit distance. It finds "hcm" in
// "Ho Chi Minh" where Search would not.
func (idx *NameIndex) Find(query string, limit int) []NameMatch {
	ranks := fuzzy.RankFindNormalizedFold(foldKey(query), idx.names)
	sort.Slice(ranks, func(i, j int) bool {
		if ranks[i].Distance != ranks[j].Distance {
			return ranks[i].Distance < ranks[j].Distance
		}
		return ranks[i].Target < ranks[j].Target
	})

	var out []NameMatch
	for _, r := range ranks {
		for _, nm := range idx.byName[r.Target] {
			nm.Distance = r.Distance
			out = append(out, nm)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
