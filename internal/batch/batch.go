// Package batch transcribes many independent lines on a worker pool.
package batch

import (
	"bufio"
	"context"
	"io"
	"sync"
)

// Transcriber converts one line. Implementations must be safe for
// concurrent use.
type Transcriber interface {
	Transcribe(input string) string
}

// Config configures the worker pool.
type Config struct {
	Workers   int // parallel workers (<= 1 = sequential)
	ChunkSize int // lines per chunk (0 = auto)

	// Progress, when set, is called by Stream after each block of lines is
	// written, with the totals so far.
	Progress func(Stats)
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		Workers:   4,
		ChunkSize: 1000,
	}
}

// Stats summarizes a run.
type Stats struct {
	Lines    int
	BytesIn  int64 // line text read, without line terminators
	BytesOut int64 // line text written, without line terminators
	Chunks   int
}

// minChunk bounds automatically sized chunks from below.
const minChunk = 100

// Lines transcribes lines and returns the results in input order. Small
// inputs and single-worker configurations run sequentially. When ctx is
// cancelled Lines stops between chunks and returns ctx.Err().
func Lines(ctx context.Context, t Transcriber, lines []string, cfg Config) ([]string, error) {
	out, _, err := run(ctx, t, lines, cfg)
	return out, err
}

func run(ctx context.Context, t Transcriber, lines []string, cfg Config) ([]string, int, error) {
	out := make([]string, len(lines))
	if len(lines) == 0 {
		return out, 0, ctx.Err()
	}

	size := chunkSize(len(lines), cfg)
	var chunks [][2]int
	for i := 0; i < len(lines); i += size {
		chunks = append(chunks, [2]int{i, min(i+size, len(lines))})
	}

	if cfg.Workers <= 1 || len(lines) < size*2 {
		for _, c := range chunks {
			if err := ctx.Err(); err != nil {
				return nil, 0, err
			}
			transcribeChunk(t, lines, out, c)
		}
		return out, len(chunks), nil
	}

	jobs := make(chan [2]int)
	var wg sync.WaitGroup
	for w := 0; w < min(cfg.Workers, len(chunks)); w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for c := range jobs {
				transcribeChunk(t, lines, out, c)
			}
		}()
	}

send:
	for _, c := range chunks {
		select {
		case jobs <- c:
		case <-ctx.Done():
			break send
		}
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}
	return out, len(chunks), nil
}

// transcribeChunk fills out[c[0]:c[1]]. Chunks never overlap, so workers
// write to disjoint parts of out.
func transcribeChunk(t Transcriber, lines, out []string, c [2]int) {
	for i := c[0]; i < c[1]; i++ {
		out[i] = t.Transcribe(lines[i])
	}
}

func chunkSize(n int, cfg Config) int {
	if cfg.ChunkSize > 0 {
		return cfg.ChunkSize
	}
	if cfg.Workers <= 1 {
		return max(n, 1)
	}
	return max(n/cfg.Workers, minChunk)
}

// Stream reads lines from r, transcribes them and writes one output line per
// input line to w. Lines are processed in blocks of Workers*ChunkSize so
// memory stays bounded on large inputs.
func Stream(ctx context.Context, t Transcriber, r io.Reader, w io.Writer, cfg Config) (Stats, error) {
	var stats Stats

	if cfg.ChunkSize <= 0 {
		cfg.ChunkSize = DefaultConfig().ChunkSize
	}
	block := cfg.ChunkSize * max(cfg.Workers, 1)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	bw := bufio.NewWriter(w)

	lines := make([]string, 0, block)
	flush := func() error {
		out, chunks, err := run(ctx, t, lines, cfg)
		if err != nil {
			return err
		}
		for i, line := range out {
			stats.BytesIn += int64(len(lines[i]))
			stats.BytesOut += int64(len(line))
			if _, err := bw.WriteString(line); err != nil {
				return err
			}
			if err := bw.WriteByte('\n'); err != nil {
				return err
			}
		}
		stats.Lines += len(out)
		stats.Chunks += chunks
		lines = lines[:0]
		if cfg.Progress != nil {
			cfg.Progress(stats)
		}
		return nil
	}

	for scanner.Scan() {
		lines = append(lines, scanner.Text())
		if len(lines) == block {
			if err := flush(); err != nil {
				bw.Flush()
				return stats, err
			}
		}
	}
	if err := scanner.Err(); err != nil {
		bw.Flush()
		return stats, err
	}
	if len(lines) > 0 {
		if err := flush(); err != nil {
			bw.Flush()
			return stats, err
		}
	}

	return stats, bw.Flush()
}
