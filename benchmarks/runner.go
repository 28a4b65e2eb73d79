// Benchmark runner for cyrillify.
// Run with: go run ./benchmarks [options]
package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/pflag"

	"github.com/vadimfedulov035/cyrillify/internal/lang"
)

type Config struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Parallel  bool   `json:"parallel"`
	Workers   int    `json:"workers"`
	ChunkSize int    `json:"chunk_size"`
}

type Group struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Language    string   `json:"language"`
	Lines       int      `json:"lines"`
	Configs     []Config `json:"configs"`
}

type ConfigFile struct {
	Groups []Group `json:"groups"`
}

type BenchmarkResult struct {
	ConfigID   string  `json:"config_id"`
	Group      string  `json:"group"`
	Language   string  `json:"language"`
	DurationMs int64   `json:"duration_ms"`
	Throughput float64 `json:"throughput"`
	Lines      int     `json:"lines"`
	Chunks     int     `json:"chunks"`
	Parallel   bool    `json:"parallel"`
	Workers    int     `json:"workers"`
}

func main() {
	configPath := pflag.String("config", "benchmarks/configs.json", "Path to benchmark configs")
	outputDir := pflag.String("output", "results", "Output directory for results")
	group := pflag.String("group", "", "Run only this group (empty = all)")
	iterations := pflag.Int("iterations", 1, "Number of iterations per config")
	binary := pflag.String("binary", "", "Path to the cyrillify binary (default: search)")
	pflag.Parse()

	// Load configs
	data, err := os.ReadFile(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading config: %v\n", err)
		os.Exit(1)
	}

	var cfg ConfigFile
	if err := json.Unmarshal(data, &cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing config: %v\n", err)
		os.Exit(1)
	}

	cyrillifyPath := *binary
	if cyrillifyPath == "" {
		cyrillifyPath = findCyrillify()
	}
	if cyrillifyPath == "" {
		fmt.Fprintln(os.Stderr, "Error: cyrillify binary not found. Build with 'go build -o cyrillify ./cmd' first.")
		os.Exit(1)
	}

	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	registry := lang.Builtin()

	var results []BenchmarkResult
	total := countConfigs(cfg.Groups, *group)
	current := 0

	for _, g := range cfg.Groups {
		if *group != "" && g.Name != *group {
			continue
		}

		l, err := registry.Lookup(g.Language)
		if err != nil {
			pterm.Warning.Printfln("Skipping group %s: %v", g.Name, err)
			continue
		}
		input, err := writeInput(*outputDir, l, g.Lines)
		if err != nil {
			pterm.Warning.Printfln("Skipping group %s: %v", g.Name, err)
			continue
		}

		pterm.DefaultSection.Printfln("%s: %s", g.Name, g.Description)
		pterm.Info.Printfln("%s, %d lines", l, g.Lines)

		for _, c := range g.Configs {
			current++
			pterm.Printfln("[%d/%d] %s", current, total, c.Name)

			result, ok := measure(cyrillifyPath, input, *outputDir, g, c, *iterations)
			if ok {
				results = append(results, result)
			}
		}
		os.Remove(input)
	}

	resultsFile := filepath.Join(*outputDir, fmt.Sprintf("benchmark_%s.json",
		time.Now().Format("2006-01-02_15-04-05")))

	output := map[string]interface{}{
		"timestamp":  time.Now().UTC().Format(time.RFC3339),
		"iterations": *iterations,
		"results":    results,
	}

	data, _ = json.MarshalIndent(output, "", "  ")
	if err := os.WriteFile(resultsFile, data, 0644); err != nil {
		pterm.Error.Printfln("Writing results: %v", err)
	} else {
		pterm.Success.Printfln("Results written to %s", resultsFile)
	}

	printSummary(results)
}

// measure runs one configuration the given number of times and averages
// the durations of the successful runs.
func measure(cyrillifyPath, input, outputDir string, g Group, c Config, iterations int) (BenchmarkResult, bool) {
	var sum int64
	var runs int
	var last BenchmarkResult

	for i := 0; i < iterations; i++ {
		result, err := runBenchmark(cyrillifyPath, input, outputDir, g, c)
		if err != nil {
			pterm.Error.Printfln("  run %d: %v", i+1, err)
			continue
		}
		sum += result.DurationMs
		runs++
		last = result
		pterm.Printfln("  run %d: %dms, %d lines in %d chunks",
			i+1, result.DurationMs, result.Lines, result.Chunks)
	}

	if runs == 0 {
		return BenchmarkResult{}, false
	}
	last.DurationMs = sum / int64(runs)
	if runs > 1 {
		pterm.Printfln("  average: %dms", last.DurationMs)
	}
	return last, true
}

func findCyrillify() string {
	candidates := []string{
		"cyrillify",
		"cyrillify.exe",
		"../cyrillify",
		"../cyrillify.exe",
	}

	for _, c := range candidates {
		if _, err := os.Stat(c); err == nil {
			return c
		}
	}

	path, err := exec.LookPath("cyrillify")
	if err == nil {
		return path
	}

	return ""
}

// writeInput writes n lines cycling through the reference inputs of l.
func writeInput(dir string, l *lang.Language, n int) (string, error) {
	if len(l.Examples) == 0 {
		return "", fmt.Errorf("%s has no examples to build input from", l)
	}

	f, err := os.CreateTemp(dir, "input_"+l.Code+"_*.txt")
	if err != nil {
		return "", err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for i := 0; i < n; i++ {
		w.WriteString(l.Examples[i%len(l.Examples)].From)
		w.WriteByte('\n')
	}
	if err := w.Flush(); err != nil {
		return "", err
	}
	return f.Name(), nil
}

func countConfigs(groups []Group, filter string) int {
	count := 0
	for _, g := range groups {
		if filter != "" && g.Name != filter {
			continue
		}
		count += len(g.Configs)
	}
	return count
}

func runBenchmark(cyrillifyPath, input, outputDir string, g Group, c Config) (BenchmarkResult, error) {
	args := []string{
		"--benchmark",
		"--language", g.Language,
		"--input", input,
		"--metrics-dir", outputDir,
		"--workers", fmt.Sprintf("%d", c.Workers),
	}

	if c.Parallel {
		args = append(args, "--parallel")
	} else {
		args = append(args, "--parallel=false")
	}
	if c.ChunkSize > 0 {
		args = append(args, "--chunk-size", fmt.Sprintf("%d", c.ChunkSize))
	}

	cmd := exec.Command(cyrillifyPath, args...)
	output, err := cmd.Output()
	if err != nil {
		return BenchmarkResult{}, fmt.Errorf("command failed: %w", err)
	}

	// Parse JSON output
	var result struct {
		RunID      string  `json:"run_id"`
		Language   string  `json:"language"`
		DurationMs int64   `json:"duration_ms"`
		Throughput float64 `json:"throughput"`
		Lines      int     `json:"lines"`
		Chunks     int     `json:"chunks"`
		Parallel   bool    `json:"parallel"`
		Workers    int     `json:"workers"`
	}

	if err := json.Unmarshal(output, &result); err != nil {
		return BenchmarkResult{}, fmt.Errorf("failed to parse output: %w (output: %s)", err, string(output))
	}

	return BenchmarkResult{
		ConfigID:   c.ID,
		Group:      g.Name,
		Language:   result.Language,
		DurationMs: result.DurationMs,
		Throughput: result.Throughput,
		Lines:      result.Lines,
		Chunks:     result.Chunks,
		Parallel:   result.Parallel,
		Workers:    result.Workers,
	}, nil
}

func printSummary(results []BenchmarkResult) {
	if len(results) == 0 {
		return
	}

	data := pterm.TableData{{"Group", "Config", "Workers", "Duration", "Lines/sec", "Speedup"}}

	// The first sequential run of a group is its baseline.
	baselines := make(map[string]int64)
	for _, r := range results {
		if _, ok := baselines[r.Group]; !ok && !r.Parallel {
			baselines[r.Group] = r.DurationMs
		}
	}

	for _, r := range results {
		speedup := "-"
		if base := baselines[r.Group]; base > 0 && r.DurationMs > 0 {
			speedup = fmt.Sprintf("%.2fx", float64(base)/float64(r.DurationMs))
		}
		data = append(data, []string{
			r.Group,
			r.ConfigID,
			fmt.Sprintf("%d", r.Workers),
			fmt.Sprintf("%dms", r.DurationMs),
			fmt.Sprintf("%.0f", r.Throughput),
			speedup,
		})
	}

	pterm.DefaultSection.Println("Summary")
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}
