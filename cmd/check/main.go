// cyrillify-check verifies the reference examples of the rule tables.
package main

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/vadimfedulov035/cyrillify/internal/config"
	"github.com/vadimfedulov035/cyrillify/internal/lang"
	"github.com/vadimfedulov035/cyrillify/internal/metrics"
	"github.com/vadimfedulov035/cyrillify/internal/ui"
)

func main() {
	language := pflag.StringP("language", "l", "", "Language to check (default: all)")
	ruleFiles := pflag.StringArrayP("rules", "r", nil, "Extra TOML rule table to check (repeatable)")
	csvPath := pflag.String("csv", "", "Write every example with its result to a CSV file")
	configPath := pflag.String("config", "", "Configuration file (default: nearest config.toml)")
	quiet := pflag.BoolP("quiet", "q", false, "Only set the exit status")
	verbose := pflag.BoolP("verbose", "v", false, "Verbose logging")
	pflag.Parse()

	cfg := config.Load()
	if *configPath != "" {
		parsed, err := config.Parse(*configPath)
		if err != nil {
			ui.New(false, false).Error(fmt.Sprintf("config: %v", err))
			os.Exit(1)
		}
		cfg = parsed
	}

	term := ui.New(*quiet, *verbose)
	collector := metrics.NewCollector(*language)

	collector.StartStage(metrics.StageLoad)
	registry := lang.Builtin()
	sources := make(map[string]string)
	for _, l := range registry.Languages() {
		sources[l.Code] = "built-in"
	}
	extra := append(append([]string(nil), cfg.RuleFiles...), *ruleFiles...)
	for _, path := range extra {
		l, err := lang.LoadFile(path)
		if err != nil {
			term.Error(err.Error())
			os.Exit(1)
		}
		if err := registry.Register(l); err != nil {
			term.Error(fmt.Sprintf("%s: %v", path, err))
			os.Exit(1)
		}
		sources[l.Code] = path
		collector.IncrementCounter("rule_files", 1)
	}
	collector.EndStage(metrics.StageLoad)

	langs := registry.Languages()
	if *language != "" {
		l, err := registry.Lookup(*language)
		if err != nil {
			term.Error(err.Error())
			os.Exit(1)
		}
		collector.SetLanguage(l.Code)
		langs = []*lang.Language{l}
	}

	collector.StartStage(metrics.StageVerify)
	rows := make([]ui.CheckRow, 0, len(langs))
	failed := 0
	for _, l := range langs {
		mismatches := l.Verify()
		rows = append(rows, ui.CheckRow{
			Language:   l,
			Source:     sources[l.Code],
			Examples:   len(l.Examples),
			Mismatches: mismatches,
		})
		collector.IncrementCounter("examples", int64(len(l.Examples)))
		collector.IncrementCounter("mismatches", int64(len(mismatches)))
		failed += len(mismatches)
		term.Debug(fmt.Sprintf("%s: %d examples, %d mismatches", l, len(l.Examples), len(mismatches)))
	}
	collector.EndStage(metrics.StageVerify)

	if !term.Quiet() {
		term.CheckReport(rows)
	}

	if *csvPath != "" {
		if err := writeCSV(*csvPath, rows); err != nil {
			term.Error(fmt.Sprintf("csv: %v", err))
			os.Exit(1)
		}
		term.Info(fmt.Sprintf("Report written to %s", *csvPath))
	}

	if failed > 0 {
		term.Error(fmt.Sprintf("%d example(s) failed in %s", failed,
			collector.StageDuration(metrics.StageVerify)))
		os.Exit(1)
	}
	term.Success(fmt.Sprintf("All examples of %d language(s) passed", len(rows)))
}

// writeCSV writes one record per example: language, input, expected, got, ok.
func writeCSV(path string, rows []ui.CheckRow) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	w.Write([]string{"language", "from", "to", "got", "ok"})
	for _, r := range rows {
		bad := make(map[lang.Example]string, len(r.Mismatches))
		for _, m := range r.Mismatches {
			bad[m.Example] = m.Got
		}
		for _, ex := range r.Language.Examples {
			got, ok := ex.To, "true"
			if g, failed := bad[ex]; failed {
				got, ok = g, "false"
			}
			w.Write([]string{r.Language.Code, ex.From, ex.To, got, ok})
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return f.Close()
}
