// cyrillify-fuzzy - Fuzzy search of reference names using a BK-tree.
// Usage: cyrillify-fuzzy [options] <name>
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/vadimfedulov035/cyrillify/internal/lang"
)

func main() {
	// Flags
	maxDistance := pflag.IntP("distance", "n", 2, "Maximum edit distance")
	limit := pflag.IntP("limit", "l", 10, "Maximum results to show")
	jsonOutput := pflag.BoolP("json", "j", false, "Output as JSON")
	language := pflag.StringP("language", "L", "", "Search only this language (empty = all)")
	subsequence := pflag.BoolP("subsequence", "s", false, "Match names containing the query letters in order (e.g. 'hcm')")
	ruleFiles := pflag.StringArrayP("rules", "r", nil, "Extra TOML rule table whose examples are searched (repeatable)")

	pflag.Parse()

	if pflag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: cyrillify-fuzzy [options] <name>")
		fmt.Fprintln(os.Stderr, "\nOptions:")
		pflag.PrintDefaults()
		os.Exit(1)
	}

	query := strings.Join(pflag.Args(), " ")

	registry := lang.Builtin()
	for _, path := range *ruleFiles {
		l, err := lang.LoadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if err := registry.Register(l); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s: %v\n", path, err)
			os.Exit(1)
		}
	}

	langs := registry.Languages()
	if *language != "" {
		l, err := registry.Lookup(*language)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		langs = []*lang.Language{l}
	}

	index := lang.NewNameIndex(langs)
	if index.Len() == 0 {
		fmt.Fprintln(os.Stderr, "No reference names to search")
		os.Exit(1)
	}

	var results []lang.NameMatch
	if *subsequence {
		results = index.Find(query, *limit)
	} else {
		results = index.Search(query, *maxDistance, *limit)
	}

	// Output
	if *jsonOutput {
		output := struct {
			Query   string           `json:"query"`
			MaxDist int              `json:"max_distance"`
			Count   int              `json:"count"`
			Results []lang.NameMatch `json:"results"`
		}{
			Query:   query,
			MaxDist: *maxDistance,
			Count:   len(results),
			Results: results,
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		enc.Encode(output)
		return
	}

	if len(results) == 0 {
		if *subsequence {
			fmt.Printf("No reference names contain %q\n", query)
		} else {
			fmt.Printf("No reference names match %q within distance %d\n", query, *maxDistance)
		}
		return
	}

	if *subsequence {
		fmt.Printf("Reference names containing %q:\n\n", query)
	} else {
		fmt.Printf("Reference names close to %q (max distance: %d):\n\n", query, *maxDistance)
	}
	for _, r := range results {
		fmt.Printf("  [%s] %s → %s (distance: %d)\n", r.Code, r.From, r.To, r.Distance)
	}
	fmt.Printf("\n%d result(s) found\n", len(results))
}
