// Package config provides centralized configuration defaults for cyrillify.
package config

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/BurntSushi/toml"
)

// FileName is the name of the configuration file looked up at start-up.
const FileName = "config.toml"

// ConfigFile represents the structure of config.toml
type ConfigFile struct {
	Defaults  Defaults `toml:"defaults"`
	RuleFiles []string `toml:"rule_files"`

	// Path is the file the configuration was read from, empty for fallbacks.
	Path string `toml:"-"`
}

// Defaults holds all default values
type Defaults struct {
	Language   string `toml:"language"`
	Parallel   bool   `toml:"parallel"`
	Workers    int    `toml:"workers"`
	ChunkSize  int    `toml:"chunk_size"`
	Quiet      bool   `toml:"quiet"`
	Verbose    bool   `toml:"verbose"`
	Metrics    bool   `toml:"metrics"`
	MetricsDir string `toml:"metrics_dir"`
}

// Hardcoded fallback defaults (used if config.toml not found)
var fallbackDefaults = Defaults{
	Language:   "my",
	Parallel:   true,
	Workers:    0,
	ChunkSize:  1000,
	Quiet:      false,
	Verbose:    false,
	Metrics:    false,
	MetricsDir: "output",
}

// Fallback returns the built-in configuration.
func Fallback() *ConfigFile {
	return &ConfigFile{Defaults: fallbackDefaults}
}

// Parse reads the configuration at path. Keys missing from the file keep
// their fallback values. Relative rule file paths are resolved against the
// directory of the configuration file.
func Parse(path string) (*ConfigFile, error) {
	cfg := Fallback()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}
	cfg.Path = path

	dir := filepath.Dir(path)
	for i, f := range cfg.RuleFiles {
		if !filepath.IsAbs(f) {
			cfg.RuleFiles[i] = filepath.Join(dir, f)
		}
	}
	return cfg, nil
}

var (
	loadOnce sync.Once
	loaded   *ConfigFile
)

// Load returns the configuration found by Find, or the fallback when there
// is none or it does not parse. The result is cached.
func Load() *ConfigFile {
	loadOnce.Do(func() {
		loaded = Fallback()
		if path, ok := Find(); ok {
			if cfg, err := Parse(path); err == nil {
				loaded = cfg
			}
		}
	})
	return loaded
}

// Find looks for config.toml in the working directory and its parents, then
// next to the executable and its parents.
func Find() (string, bool) {
	var dirs []string
	if wd, err := os.Getwd(); err == nil {
		dirs = append(dirs, wd)
	}
	if exe, err := os.Executable(); err == nil {
		dirs = append(dirs, filepath.Dir(exe))
	}

	for _, dir := range dirs {
		if path, ok := findUp(dir); ok {
			return path, true
		}
	}
	return "", false
}

func findUp(dir string) (string, bool) {
	for {
		path := filepath.Join(dir, FileName)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// MaxWorkers is the cap for parallel workers
const MaxWorkers = 8

// Workers resolves a requested worker count: zero or less means one per
// CPU, and the result never exceeds MaxWorkers.
func Workers(requested, numCPU int) int {
	if requested <= 0 {
		requested = numCPU
	}
	return max(1, min(requested, MaxWorkers))
}
