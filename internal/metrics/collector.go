// Package metrics records timing and throughput of transcription runs.
package metrics

import (
	"crypto/rand"
	"encoding/hex"
	"runtime"
	"sync"
	"time"
)

// Stage names used by the command-line tools.
const (
	StageLoad       = "load"
	StageTranscribe = "transcribe"
	StageVerify     = "verify"
)

// StageMetrics holds metrics for a single stage of a run.
type StageMetrics struct {
	Name       string           `json:"name"`
	StartTime  time.Time        `json:"start_time"`
	EndTime    time.Time        `json:"end_time"`
	DurationMs int64            `json:"duration_ms"`
	Counters   map[string]int64 `json:"counters,omitempty"`
}

// RunMetrics holds all metrics for a complete run.
type RunMetrics struct {
	RunID       string                   `json:"run_id"`
	Timestamp   time.Time                `json:"timestamp"`
	Language    string                   `json:"language"`
	Config      map[string]interface{}   `json:"config"`
	Stages      map[string]*StageMetrics `json:"stages"`
	Totals      *TotalMetrics            `json:"totals"`
	Environment *EnvironmentInfo         `json:"environment"`
}

// Totals are the amounts a run processed.
type Totals struct {
	Lines    int64
	BytesIn  int64
	BytesOut int64
}

// TotalMetrics holds aggregate metrics.
type TotalMetrics struct {
	DurationMs   int64   `json:"duration_ms"`
	PeakMemoryMB float64 `json:"peak_memory_mb"`
	Lines        int64   `json:"lines"`
	BytesIn      int64   `json:"bytes_in"`
	BytesOut     int64   `json:"bytes_out"`
	Throughput   float64 `json:"throughput_lines_per_sec"`
}

// EnvironmentInfo holds system environment details.
type EnvironmentInfo struct {
	GoVersion string `json:"go_version"`
	GOOS      string `json:"goos"`
	GOARCH    string `json:"goarch"`
	NumCPU    int    `json:"num_cpu"`
	MaxProcs  int    `json:"max_procs"`
}

// Collector collects metrics during a run. It is safe for concurrent use.
type Collector struct {
	mu          sync.Mutex
	runID       string
	language    string
	startTime   time.Time
	config      map[string]interface{}
	stages      map[string]*StageMetrics
	activeStage string
	peakMemory  uint64
}

// NewCollector creates a collector for a run in the given language.
func NewCollector(language string) *Collector {
	return &Collector{
		runID:     generateRunID(),
		language:  language,
		startTime: time.Now(),
		config:    make(map[string]interface{}),
		stages:    make(map[string]*StageMetrics),
	}
}

func generateRunID() string {
	timestamp := time.Now().Format("20060102-150405")
	b := make([]byte, 4)
	rand.Read(b)
	return timestamp + "-" + hex.EncodeToString(b)
}

// SetLanguage records the language once it is resolved.
func (c *Collector) SetLanguage(code string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.language = code
}

// SetConfig stores one configuration value for the run.
func (c *Collector) SetConfig(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.config[key] = value
}

// SetConfigMap stores multiple configuration values.
func (c *Collector) SetConfigMap(config map[string]interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for k, v := range config {
		c.config[k] = v
	}
}

// StartStage begins timing a stage and makes it the active one.
func (c *Collector) StartStage(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.activeStage = name
	c.stages[name] = &StageMetrics{
		Name:      name,
		StartTime: time.Now(),
		Counters:  make(map[string]int64),
	}
	c.updatePeakMemory()
}

// EndStage stops timing a stage.
func (c *Collector) EndStage(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if stage, ok := c.stages[name]; ok {
		stage.EndTime = time.Now()
		stage.DurationMs = stage.EndTime.Sub(stage.StartTime).Milliseconds()
	}
	if c.activeStage == name {
		c.activeStage = ""
	}
	c.updatePeakMemory()
}

// IncrementCounter adds delta to a counter of the active stage.
func (c *Collector) IncrementCounter(name string, delta int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if stage, ok := c.stages[c.activeStage]; ok {
		stage.Counters[name] += delta
	}
}

// SetStageCounter sets a counter of a specific stage.
func (c *Collector) SetStageCounter(stage, name string, value int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if s, ok := c.stages[stage]; ok {
		s.Counters[name] = value
	}
}

// updatePeakMemory must be called with c.mu held.
func (c *Collector) updatePeakMemory() {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	if m.Alloc > c.peakMemory {
		c.peakMemory = m.Alloc
	}
}

// Finalize creates the final report.
func (c *Collector) Finalize(t Totals) *RunMetrics {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.updatePeakMemory()
	duration := time.Since(c.startTime)

	throughput := float64(0)
	if duration.Seconds() > 0 {
		throughput = float64(t.Lines) / duration.Seconds()
	}

	return &RunMetrics{
		RunID:     c.runID,
		Timestamp: c.startTime,
		Language:  c.language,
		Config:    c.config,
		Stages:    c.stages,
		Totals: &TotalMetrics{
			DurationMs:   duration.Milliseconds(),
			PeakMemoryMB: float64(c.peakMemory) / 1024 / 1024,
			Lines:        t.Lines,
			BytesIn:      t.BytesIn,
			BytesOut:     t.BytesOut,
			Throughput:   throughput,
		},
		Environment: &EnvironmentInfo{
			GoVersion: runtime.Version(),
			GOOS:      runtime.GOOS,
			GOARCH:    runtime.GOARCH,
			NumCPU:    runtime.NumCPU(),
			MaxProcs:  runtime.GOMAXPROCS(0),
		},
	}
}

// RunID returns the run identifier.
func (c *Collector) RunID() string {
	return c.runID
}

// StageDuration returns the duration of a completed stage.
func (c *Collector) StageDuration(name string) time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	if stage, ok := c.stages[name]; ok && !stage.EndTime.IsZero() {
		return stage.EndTime.Sub(stage.StartTime)
	}
	return 0
}
