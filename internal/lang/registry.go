package lang

import (
	"errors"
	"fmt"
	"strings"

	"github.com/armon/go-radix"

	"github.com/vadimfedulov035/cyrillify/internal/normalizer"
	"github.com/vadimfedulov035/cyrillify/internal/similarity"
)

var (
	ErrUnknownLanguage   = errors.New("unknown language")
	ErrInvalidLanguage   = errors.New("language has no code")
	ErrDuplicateLanguage = errors.New("language identifier already registered")
)

// Maximum edit distance and count of "did you mean" suggestions.
const (
	suggestDistance = 3
	suggestLimit    = 3
)

// Registry resolves languages by code, Russian name, or English name.
// Identifiers are case-insensitive and may be abbreviated to any unique
// prefix. A Registry is not safe for concurrent Register calls.
type Registry struct {
	langs []*Language
	index *radix.Tree
	keys  *similarity.BKTree
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		index: radix.New(),
		keys:  similarity.NewBKTree(),
	}
}

// Builtin returns a registry of the compiled-in languages in display order.
func Builtin() *Registry {
	r := NewRegistry()
	for _, l := range []*Language{Burmese, Thai, Vietnamese} {
		if err := r.Register(l); err != nil {
			panic("lang: " + err.Error())
		}
	}
	return r
}

// Register adds l. It fails when l has no code or when any of its
// identifiers is already taken.
func (r *Registry) Register(l *Language) error {
	if l == nil || strings.TrimSpace(l.Code) == "" {
		return ErrInvalidLanguage
	}

	keys := identifiers(l)
	for _, key := range keys {
		if _, taken := r.index.Get(key); taken {
			return fmt.Errorf("%w: %q", ErrDuplicateLanguage, key)
		}
	}

	for _, key := range keys {
		r.index.Insert(key, l)
		r.keys.Insert(key)
	}
	r.langs = append(r.langs, l)
	return nil
}

// Lookup finds the language named by id. An exact identifier wins over a
// prefix; a prefix must resolve to a single language.
func (r *Registry) Lookup(id string) (*Language, error) {
	key := foldKey(id)
	if key == "" {
		return nil, fmt.Errorf("%w: empty identifier", ErrUnknownLanguage)
	}

	if v, ok := r.index.Get(key); ok {
		return v.(*Language), nil
	}

	var found []*Language
	r.index.WalkPrefix(key, func(_ string, v interface{}) bool {
		l := v.(*Language)
		for _, seen := range found {
			if seen == l {
				return false
			}
		}
		found = append(found, l)
		return false
	})

	switch len(found) {
	case 1:
		return found[0], nil
	case 0:
		return nil, r.unknown(id, key)
	default:
		codes := make([]string, len(found))
		for i, l := range found {
			codes[i] = l.Code
		}
		return nil, fmt.Errorf("%w: %q is ambiguous between %s",
			ErrUnknownLanguage, id, strings.Join(codes, ", "))
	}
}

func (r *Registry) unknown(id, key string) error {
	matches := r.keys.Nearest(key, suggestDistance, suggestLimit)
	if len(matches) == 0 {
		return fmt.Errorf("%w: %q", ErrUnknownLanguage, id)
	}

	suggestions := make([]string, len(matches))
	for i, m := range matches {
		suggestions[i] = m.Key
	}
	return fmt.Errorf("%w: %q (did you mean %s?)",
		ErrUnknownLanguage, id, strings.Join(suggestions, ", "))
}

// Languages returns the registered languages in registration order.
func (r *Registry) Languages() []*Language {
	out := make([]*Language, len(r.langs))
	copy(out, r.langs)
	return out
}

// Len returns the number of registered languages.
func (r *Registry) Len() int {
	return len(r.langs)
}

func identifiers(l *Language) []string {
	var keys []string
	for _, s := range []string{l.Code, l.Name, l.English} {
		key := foldKey(s)
		if key == "" {
			continue
		}
		dup := false
		for _, k := range keys {
			if k == key {
				dup = true
				break
			}
		}
		if !dup {
			keys = append(keys, key)
		}
	}
	return keys
}

func foldKey(s string) string {
	return normalizer.ToLower(normalizer.Compose(strings.TrimSpace(s)))
}
