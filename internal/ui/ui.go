// Package ui provides terminal UI components using pterm.
//
// Messages, banners and spinners go to stderr so that transcriptions written
// to stdout can be piped. Tables that are the requested output of a command
// (language list, explanations, check reports) go to stdout.
package ui

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/vadimfedulov035/cyrillify/internal/lang"
	"github.com/vadimfedulov035/cyrillify/internal/transcriber"
)

// UI wraps pterm components for cyrillify.
type UI struct {
	quiet   bool
	verbose bool
	out     io.Writer
}

// New creates a new UI instance writing results to stdout.
func New(quiet, verbose bool) *UI {
	return NewWithOutput(os.Stdout, quiet, verbose)
}

// NewWithOutput creates a UI writing results to out.
func NewWithOutput(out io.Writer, quiet, verbose bool) *UI {
	pterm.SetDefaultOutput(os.Stderr)
	if quiet {
		pterm.DisableOutput()
	}
	if verbose && !quiet {
		pterm.EnableDebugMessages()
	}
	return &UI{quiet: quiet, verbose: verbose, out: out}
}

// Quiet reports whether decorative output is suppressed.
func (u *UI) Quiet() bool {
	return u.quiet
}

// Banner prints the application banner.
func (u *UI) Banner() {
	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("cyril", pterm.NewStyle(pterm.FgCyan)),
		putils.LettersFromStringWithStyle("lify", pterm.NewStyle(pterm.FgLightBlue)),
	).Render()

	pterm.DefaultCenter.Println(
		pterm.FgGray.Sprint("Latin to Cyrillic name transcription"),
	)
}

// Config prints the configuration summary.
func (u *UI) Config(l *lang.Language, workers, chunkSize int, input, output string) {
	pterm.DefaultSection.Println("Configuration")

	data := [][]string{
		{"Language", fmt.Sprintf("%s, %s", l.Name, l)},
		{"Workers", strconv.Itoa(workers)},
		{"Chunk Size", fmt.Sprintf("%d lines", chunkSize)},
		{"Input", input},
		{"Output", output},
	}

	pterm.DefaultTable.WithData(data).Render()
}

// Languages prints the registered languages.
func (u *UI) Languages(langs []*lang.Language) {
	data := pterm.TableData{{"Code", "Name", "English", "Rules", "Examples"}}
	for _, l := range langs {
		data = append(data, []string{
			l.Code,
			l.Name,
			l.English,
			strconv.Itoa(len(l.Entries)),
			strconv.Itoa(len(l.Examples)),
		})
	}

	pterm.DefaultTable.WithHasHeader().WithWriter(u.out).WithData(data).Render()
}

// Result prints a transcription. It is printed in quiet mode too.
func (u *UI) Result(text string) {
	fmt.Fprintln(u.out, text)
}

// Explain prints how every word of a transcription was produced.
func (u *UI) Explain(traces []transcriber.WordTrace) {
	for _, wt := range traces {
		pterm.DefaultSection.WithLevel(2).WithWriter(u.out).Println(
			fmt.Sprintf("%s → %s (%s)", wt.Source, wt.Output, wt.Case),
		)

		data := pterm.TableData{{"Source", "Rule", "Anchor", "Target"}}
		for _, s := range wt.Steps {
			rule, anchor := pterm.FgGray.Sprint("copied"), ""
			if s.Matched {
				rule, anchor = s.Pattern, s.Anchor.String()
			}
			data = append(data, []string{s.Source, rule, anchor, s.Target})
		}
		pterm.DefaultTable.WithHasHeader().WithWriter(u.out).WithData(data).Render()
	}
}

// CheckRow is one line of a check report.
type CheckRow struct {
	Language   *lang.Language
	Source     string // built-in or rule file path
	Examples   int
	Mismatches []lang.Mismatch
}

// CheckReport prints per-language results and every mismatch.
func (u *UI) CheckReport(rows []CheckRow) {
	summary := pterm.TableData{{"Language", "Source", "Examples", "Passed", "Failed"}}
	failures := pterm.TableData{{"Language", "Input", "Expected", "Got"}}

	for _, r := range rows {
		failed := len(r.Mismatches)
		status := pterm.FgGreen.Sprint(strconv.Itoa(failed))
		if failed > 0 {
			status = pterm.FgRed.Sprint(strconv.Itoa(failed))
		}
		summary = append(summary, []string{
			r.Language.String(),
			r.Source,
			strconv.Itoa(r.Examples),
			strconv.Itoa(r.Examples - failed),
			status,
		})
		for _, m := range r.Mismatches {
			failures = append(failures, []string{r.Language.Code, m.From, m.To, m.Got})
		}
	}

	pterm.DefaultTable.WithHasHeader().WithWriter(u.out).WithData(summary).Render()
	if len(failures) > 1 {
		pterm.DefaultSection.WithLevel(2).WithWriter(u.out).Println("Mismatches")
		pterm.DefaultTable.WithHasHeader().WithWriter(u.out).WithData(failures).Render()
	}
}

// Spinner creates a spinner for long operations.
func (u *UI) Spinner(message string) *pterm.SpinnerPrinter {
	spinner, _ := pterm.DefaultSpinner.
		WithRemoveWhenDone(true).
		Start(message)
	return spinner
}

// FinalReport prints the run summary.
func (u *UI) FinalReport(lines, bytesIn, bytesOut int64, duration time.Duration) {
	throughput := float64(0)
	if duration > 0 {
		throughput = float64(lines) / duration.Seconds()
	}

	panel := pterm.DefaultBox.WithTitle("Results").Sprint(
		fmt.Sprintf(
			"  Lines:       %s\n"+
				"  Bytes:       %s\n"+
				"  Duration:    %s\n"+
				"  Throughput:  %s lines/sec",
			pterm.FgGreen.Sprintf("%d", lines),
			pterm.FgCyan.Sprintf("%d → %d", bytesIn, bytesOut),
			pterm.FgYellow.Sprint(duration.Round(time.Millisecond)),
			pterm.FgMagenta.Sprintf("%.0f", throughput),
		),
	)
	pterm.Println(panel)
}

// Success prints a success message.
func (u *UI) Success(message string) {
	pterm.Success.Println(message)
}

// Error prints an error message. Errors are printed in quiet mode too.
func (u *UI) Error(message string) {
	if u.quiet {
		fmt.Fprintln(os.Stderr, "error:", message)
		return
	}
	pterm.Error.Println(message)
}

// Warning prints a warning message.
func (u *UI) Warning(message string) {
	pterm.Warning.Println(message)
}

// Info prints an info message.
func (u *UI) Info(message string) {
	pterm.Info.Println(message)
}

// Debug prints a debug message (only in verbose mode).
func (u *UI) Debug(message string) {
	if u.verbose {
		pterm.Debug.Println(message)
	}
}
