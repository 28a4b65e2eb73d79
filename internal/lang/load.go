package lang

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/vadimfedulov035/cyrillify/internal/rules"
)

// ErrUnknownKey is returned for rule file keys that mean nothing to the
// loader, which usually are typos.
var ErrUnknownKey = errors.New("unknown key")

// ruleFile is the TOML layout of a rule table:
//
//	code = "lo"
//	name = "Лаосский"
//	english = "Lao"
//
//	[[rule]]
//	pattern = "NG|"
//	replacement = "Н"
//
//	[[example]]
//	from = "Luang Prabang"
//	to = "Луан Прабан"
type ruleFile struct {
	Code     string        `toml:"code"`
	Name     string        `toml:"name"`
	English  string        `toml:"english"`
	Rules    []ruleEntry   `toml:"rule"`
	Examples []exampleLine `toml:"example"`
}

type ruleEntry struct {
	Pattern     string `toml:"pattern"`
	Replacement string `toml:"replacement"`
}

type exampleLine struct {
	From string `toml:"from"`
	To   string `toml:"to"`
}

// LoadFile reads a rule table from a TOML file.
func LoadFile(path string) (*Language, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	l, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return l, nil
}

// Decode reads a rule table in TOML from r and compiles it. Rule order is
// kept as written.
func Decode(r io.Reader) (*Language, error) {
	var rf ruleFile
	md, err := toml.NewDecoder(r).Decode(&rf)
	if err != nil {
		return nil, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: %s", ErrUnknownKey, strings.Join(keys, ", "))
	}

	if strings.TrimSpace(rf.Code) == "" {
		return nil, ErrInvalidLanguage
	}

	l := &Language{
		Code:    rf.Code,
		Name:    rf.Name,
		English: rf.English,
	}
	for _, e := range rf.Rules {
		l.Entries = append(l.Entries, rules.Entry{Pattern: e.Pattern, Replacement: e.Replacement})
	}
	for _, ex := range rf.Examples {
		l.Examples = append(l.Examples, Example{From: ex.From, To: ex.To})
	}

	rs, err := rules.Compile(l.Entries)
	if err != nil {
		return nil, err
	}
	l.compiled = rs
	return l, nil
}
