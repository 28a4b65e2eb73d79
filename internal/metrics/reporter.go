package metrics

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Reporter writes run metrics under <dir>/metrics and keeps a history of
// runs in history.jsonl.
type Reporter struct {
	dir         string
	historyFile string
}

// NewReporter creates the metrics directory below dir.
func NewReporter(dir string) (*Reporter, error) {
	metricsDir := filepath.Join(dir, "metrics")
	if err := os.MkdirAll(metricsDir, 0755); err != nil {
		return nil, err
	}

	return &Reporter{
		dir:         metricsDir,
		historyFile: filepath.Join(metricsDir, "history.jsonl"),
	}, nil
}

// Dir returns the directory reports are written to.
func (r *Reporter) Dir() string {
	return r.dir
}

// Write stores m as latest.json and run_<id>.json and appends it to the
// history.
func (r *Reporter) Write(m *RunMetrics) error {
	if err := r.writeJSON(filepath.Join(r.dir, "latest.json"), m); err != nil {
		return fmt.Errorf("write latest.json: %w", err)
	}

	name := fmt.Sprintf("run_%s.json", m.RunID)
	if err := r.writeJSON(filepath.Join(r.dir, name), m); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}

	if err := r.appendHistory(m); err != nil {
		return fmt.Errorf("append history: %w", err)
	}
	return nil
}

func (r *Reporter) writeJSON(path string, m *RunMetrics) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	return encoder.Encode(m)
}

func (r *Reporter) appendHistory(m *RunMetrics) error {
	file, err := os.OpenFile(r.historyFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer file.Close()

	line, err := json.Marshal(m)
	if err != nil {
		return err
	}
	_, err = file.Write(append(line, '\n'))
	return err
}

// ReadHistory returns the last limit runs, oldest first. A limit of zero or
// less returns all of them. Malformed lines are skipped.
func (r *Reporter) ReadHistory(limit int) ([]*RunMetrics, error) {
	file, err := os.Open(r.historyFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer file.Close()

	var runs []*RunMetrics
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		var run RunMetrics
		if err := json.Unmarshal(scanner.Bytes(), &run); err != nil {
			continue
		}
		runs = append(runs, &run)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if limit > 0 && len(runs) > limit {
		runs = runs[len(runs)-limit:]
	}
	return runs, nil
}

// LastRun returns the most recent run, or nil when there is none.
func (r *Reporter) LastRun() (*RunMetrics, error) {
	runs, err := r.ReadHistory(1)
	if err != nil || len(runs) == 0 {
		return nil, err
	}
	return runs[0], nil
}

// Comparison is the difference between two runs.
type Comparison struct {
	CurrentRunID   string  `json:"current_run_id"`
	PreviousRunID  string  `json:"previous_run_id"`
	SpeedupFactor  float64 `json:"speedup_factor"`
	TimeSavedMs    int64   `json:"time_saved_ms"`
	LinesDiff      int64   `json:"lines_diff"`
	ThroughputDiff float64 `json:"throughput_diff"`
}

// CompareRuns compares current with previous. It returns nil when either
// run is missing.
func CompareRuns(current, previous *RunMetrics) *Comparison {
	if current == nil || previous == nil || current.Totals == nil || previous.Totals == nil {
		return nil
	}

	speedup := float64(1)
	if current.Totals.DurationMs > 0 {
		speedup = float64(previous.Totals.DurationMs) / float64(current.Totals.DurationMs)
	}

	return &Comparison{
		CurrentRunID:   current.RunID,
		PreviousRunID:  previous.RunID,
		SpeedupFactor:  speedup,
		TimeSavedMs:    previous.Totals.DurationMs - current.Totals.DurationMs,
		LinesDiff:      current.Totals.Lines - previous.Totals.Lines,
		ThroughputDiff: current.Totals.Throughput - previous.Totals.Throughput,
	}
}

// FormatComparison renders c for humans.
func FormatComparison(c *Comparison) string {
	if c == nil {
		return "No previous run to compare"
	}

	direction := "faster"
	if c.SpeedupFactor < 1 {
		direction = "slower"
	}

	return fmt.Sprintf(
		"%.2fx %s than previous run (%+dms, %+.0f lines/sec)",
		c.SpeedupFactor,
		direction,
		-c.TimeSavedMs,
		c.ThroughputDiff,
	)
}
