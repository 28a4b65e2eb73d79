// Package similarity finds near matches for mistyped identifiers such as
// language codes and names.
package similarity

import "sort"

// BKTree indexes strings by edit distance. Lookups only visit subtrees whose
// edge distance can still hold a match, per the triangle inequality.
type BKTree struct {
	root *bkNode
	size int
}

type bkNode struct {
	key      string
	children map[int]*bkNode
}

// Match is a key found within the requested distance of a query.
type Match struct {
	Key      string
	Distance int
}

// NewBKTree creates an empty tree.
func NewBKTree() *BKTree {
	return &BKTree{}
}

// Insert adds key to the tree. Empty and duplicate keys are ignored.
func (t *BKTree) Insert(key string) {
	if key == "" {
		return
	}

	if t.root == nil {
		t.root = newNode(key)
		t.size++
		return
	}

	node := t.root
	for {
		d := Distance(key, node.key)
		if d == 0 {
			return
		}
		child, ok := node.children[d]
		if !ok {
			node.children[d] = newNode(key)
			t.size++
			return
		}
		node = child
	}
}

// InsertAll adds every key.
func (t *BKTree) InsertAll(keys []string) {
	for _, key := range keys {
		t.Insert(key)
	}
}

func newNode(key string) *bkNode {
	return &bkNode{key: key, children: make(map[int]*bkNode)}
}

// Search returns all keys within maxDistance of query, in no particular
// order.
func (t *BKTree) Search(query string, maxDistance int) []Match {
	if t.root == nil || query == "" || maxDistance < 0 {
		return nil
	}

	var matches []Match
	stack := []*bkNode{t.root}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		d := Distance(query, node.key)
		if d <= maxDistance {
			matches = append(matches, Match{Key: node.key, Distance: d})
		}

		lo, hi := d-maxDistance, d+maxDistance
		for edge, child := range node.children {
			if edge >= lo && edge <= hi {
				stack = append(stack, child)
			}
		}
	}
	return matches
}

// Nearest returns at most limit keys within maxDistance of query, closest
// first and alphabetical among equals. A limit of zero or less means no
// limit.
func (t *BKTree) Nearest(query string, maxDistance, limit int) []Match {
	matches := t.Search(query, maxDistance)
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Distance != matches[j].Distance {
			return matches[i].Distance < matches[j].Distance
		}
		return matches[i].Key < matches[j].Key
	})
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}

// Size returns the number of distinct keys.
func (t *BKTree) Size() int {
	return t.size
}

// Contains reports whether key was inserted.
func (t *BKTree) Contains(key string) bool {
	return len(t.Search(key, 0)) > 0
}

// Distance is the Levenshtein distance between a and b counted in code
// points, so Cyrillic names compare as fairly as Latin ones.
func Distance(a, b string) int {
	if a == b {
		return 0
	}

	ra, rb := []rune(a), []rune(b)
	if len(ra) > len(rb) {
		ra, rb = rb, ra
	}
	if len(ra) == 0 {
		return len(rb)
	}

	prev := make([]int, len(ra)+1)
	curr := make([]int, len(ra)+1)
	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(rb); j++ {
		curr[0] = j
		for i := 1; i <= len(ra); i++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[i] = min(prev[i]+1, curr[i-1]+1, prev[i-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(ra)]
}
