// cyrillify CLI - Latin to Cyrillic name transcription.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"strings"

	"github.com/spf13/pflag"

	"github.com/vadimfedulov035/cyrillify/internal/batch"
	"github.com/vadimfedulov035/cyrillify/internal/config"
	"github.com/vadimfedulov035/cyrillify/internal/lang"
	"github.com/vadimfedulov035/cyrillify/internal/metrics"
	"github.com/vadimfedulov035/cyrillify/internal/ui"
)

func main() {
	// Flags
	language := pflag.StringP("language", "l", "", "Language code or name (default from config.toml)")
	ruleFiles := pflag.StringArrayP("rules", "r", nil, "Extra TOML rule table to register (repeatable)")
	list := pflag.Bool("list", false, "List available languages and exit")
	explain := pflag.BoolP("explain", "e", false, "Show the rule applied to every part of every word")
	inputPath := pflag.StringP("input", "i", "", "Input file, one name per line (default stdin)")
	outputPath := pflag.StringP("output", "o", "", "Output file (default stdout)")
	configPath := pflag.String("config", "", "Configuration file (default: nearest config.toml)")
	quiet := pflag.BoolP("quiet", "q", false, "Suppress progress output")
	verbose := pflag.BoolP("verbose", "v", false, "Verbose logging")
	writeMetrics := pflag.Bool("metrics", false, "Write run metrics")
	metricsDir := pflag.String("metrics-dir", "", "Directory for run metrics")
	benchmark := pflag.Bool("benchmark", false, "Run in benchmark mode (JSON output only)")

	// Parallel processing flags
	parallel := pflag.BoolP("parallel", "p", true, "Enable parallel processing")
	workers := pflag.IntP("workers", "w", 0, "Number of parallel workers (0 = auto)")
	chunkSize := pflag.Int("chunk-size", 0, "Lines per work unit")

	pflag.Parse()

	// Configuration file values apply where no flag was given
	cfg := config.Load()
	if *configPath != "" {
		parsed, err := config.Parse(*configPath)
		if err != nil {
			ui.New(false, false).Error(fmt.Sprintf("config: %v", err))
			os.Exit(1)
		}
		cfg = parsed
	}
	d := cfg.Defaults
	if !pflag.CommandLine.Changed("language") {
		*language = d.Language
	}
	if !pflag.CommandLine.Changed("parallel") {
		*parallel = d.Parallel
	}
	if !pflag.CommandLine.Changed("workers") {
		*workers = d.Workers
	}
	if !pflag.CommandLine.Changed("chunk-size") {
		*chunkSize = d.ChunkSize
	}
	if !pflag.CommandLine.Changed("quiet") {
		*quiet = d.Quiet
	}
	if !pflag.CommandLine.Changed("verbose") {
		*verbose = d.Verbose
	}
	if !pflag.CommandLine.Changed("metrics") {
		*writeMetrics = d.Metrics
	}
	if !pflag.CommandLine.Changed("metrics-dir") {
		*metricsDir = d.MetricsDir
	}

	// Auto-detect workers
	if *parallel {
		*workers = config.Workers(*workers, runtime.NumCPU())
	} else {
		*workers = 1
	}

	// Initialize UI
	term := ui.New(*quiet || *benchmark, *verbose)
	if cfg.Path != "" {
		term.Debug(fmt.Sprintf("Configuration: %s", cfg.Path))
	}

	collector := metrics.NewCollector(*language)

	// Load languages
	collector.StartStage(metrics.StageLoad)
	registry := lang.Builtin()
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
		collector.IncrementCounter("rule_files", 1)
		term.Debug(fmt.Sprintf("Registered %s from %s", l, path))
	}
	collector.EndStage(metrics.StageLoad)

	if *list {
		term.Languages(registry.Languages())
		return
	}

	l, err := registry.Lookup(*language)
	if err != nil {
		term.Error(err.Error())
		os.Exit(1)
	}
	collector.SetLanguage(l.Code)
	t := l.Transcriber()
	term.Debug(fmt.Sprintf("Language: %s, %d rules, longest pattern %d",
		l, t.Rules().Len(), t.Rules().MaxPatternLen()))

	// Positional arguments are one piece of text
	if args := pflag.Args(); len(args) > 0 {
		text := strings.Join(args, " ")
		if *explain {
			term.Explain(t.Explain(text))
		}
		term.Result(t.Transcribe(text))
		return
	}
	if *explain {
		term.Warning("--explain needs the text as arguments; ignored for line input")
	}

	// Stream mode
	in := io.Reader(os.Stdin)
	inputName := "stdin"
	if *inputPath != "" {
		f, err := os.Open(*inputPath)
		if err != nil {
			term.Error(err.Error())
			os.Exit(1)
		}
		defer f.Close()
		in, inputName = f, *inputPath
	}

	var out io.Writer = os.Stdout
	outputName := "stdout"
	var outFile *os.File
	if *outputPath != "" {
		outFile, err = os.Create(*outputPath)
		if err != nil {
			term.Error(err.Error())
			os.Exit(1)
		}
		out, outputName = outFile, *outputPath
	} else if *benchmark {
		out, outputName = io.Discard, "discarded"
	}

	if *inputPath != "" {
		term.Banner()
		term.Config(l, *workers, *chunkSize, inputName, outputName)
	}

	collector.SetConfigMap(map[string]interface{}{
		"language":   l.Code,
		"parallel":   *parallel,
		"workers":    *workers,
		"chunk_size": *chunkSize,
		"input":      inputName,
		"output":     outputName,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	batchConfig := batch.Config{Workers: *workers, ChunkSize: *chunkSize}
	stopSpinner := func() {}
	if *inputPath != "" && !*quiet && !*benchmark {
		spinner := term.Spinner("Transcribing...")
		batchConfig.Progress = func(s batch.Stats) {
			spinner.UpdateText(fmt.Sprintf("Transcribing... %d lines", s.Lines))
		}
		stopSpinner = func() { spinner.Stop() }
	}

	collector.StartStage(metrics.StageTranscribe)
	stats, err := batch.Stream(ctx, t, in, out, batchConfig)
	collector.EndStage(metrics.StageTranscribe)
	stopSpinner()
	if outFile != nil {
		if cerr := outFile.Close(); err == nil {
			err = cerr
		}
	}
	if err != nil {
		term.Error(err.Error())
		os.Exit(1)
	}
	collector.SetStageCounter(metrics.StageTranscribe, "lines", int64(stats.Lines))
	collector.SetStageCounter(metrics.StageTranscribe, "chunks", int64(stats.Chunks))

	runMetrics := collector.Finalize(metrics.Totals{
		Lines:    int64(stats.Lines),
		BytesIn:  stats.BytesIn,
		BytesOut: stats.BytesOut,
	})

	// Write metrics
	if *writeMetrics || *benchmark {
		reporter, err := metrics.NewReporter(*metricsDir)
		if err != nil {
			term.Warning(fmt.Sprintf("Failed to create metrics directory: %v", err))
		} else {
			previousRun, _ := reporter.LastRun()

			if err := reporter.Write(runMetrics); err != nil {
				term.Warning(fmt.Sprintf("Failed to write metrics: %v", err))
			} else {
				term.Debug(fmt.Sprintf("Metrics written: %s", runMetrics.RunID))
			}

			if previousRun != nil && previousRun.Language == runMetrics.Language {
				term.Info(metrics.FormatComparison(metrics.CompareRuns(runMetrics, previousRun)))
			}
		}
	}

	if *benchmark {
		json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"run_id":      runMetrics.RunID,
			"language":    l.Code,
			"duration_ms": runMetrics.Totals.DurationMs,
			"throughput":  runMetrics.Totals.Throughput,
			"lines":       stats.Lines,
			"chunks":      stats.Chunks,
			"parallel":    *parallel,
			"workers":     *workers,
		})
		return
	}

	if *inputPath != "" {
		term.FinalReport(int64(stats.Lines), stats.BytesIn, stats.BytesOut,
			collector.StageDuration(metrics.StageTranscribe))
		term.Success(fmt.Sprintf("%d lines written to %s", stats.Lines, outputName))
	}
}
