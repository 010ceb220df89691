package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/zipsweep/zipsweep/internal/model"
)

// SimpleWriter outputs human-readable text reports.
// This format is designed for terminal display at the end of a sweep.
//
// Design decision: We use plain text with ASCII formatting rather than
// ANSI colors because it works in all terminals and pipes cleanly to
// files and other tools.
type SimpleWriter struct {
	baseWriter

	// verbose enables the per-seed breakdown in the output.
	verbose bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithVerbose enables the per-seed breakdown.
func WithVerbose(verbose bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.verbose = verbose
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Write outputs the summary in human-readable format.
func (w *SimpleWriter) Write(summary *model.RunSummary) (int, error) {
	var sb strings.Builder

	w.writeHeader(&sb, summary)
	w.writeTotals(&sb, summary)
	if w.verbose {
		w.writeRecords(&sb, summary)
	}

	return w.output.Write([]byte(sb.String()))
}

func (w *SimpleWriter) writeHeader(sb *strings.Builder, summary *model.RunSummary) {
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", 60))
	sb.WriteString("\n")
	sb.WriteString("                    ZIPSWEEP RUN REPORT\n")
	sb.WriteString(strings.Repeat("=", 60))
	sb.WriteString("\n\n")

	fmt.Fprintf(sb, "Profile:   %s\n", ProfileLabel(summary.Profile))
	fmt.Fprintf(sb, "Region:    %s\n", summary.Region)
	fmt.Fprintf(sb, "Started:   %s\n", summary.StartedAt.Format("2006-01-02 15:04:05 MST"))
	fmt.Fprintf(sb, "Duration:  %s\n", summary.Elapsed.Round(time.Millisecond))
	sb.WriteString("\n")
}

func (w *SimpleWriter) writeTotals(sb *strings.Builder, summary *model.RunSummary) {
	fmt.Fprintf(sb, "Seeds processed:  %d\n", summary.SeedsProcessed)
	fmt.Fprintf(sb, "Failed seeds:     %d\n", summary.FailedSeeds)
	fmt.Fprintf(sb, "Addresses found:  %d\n", summary.Found)
	fmt.Fprintf(sb, "New addresses:    %d\n", summary.NewAddresses)
	fmt.Fprintf(sb, "Unique total:     %d\n", summary.UniqueTotal)
	sb.WriteString("\n")
}

func (w *SimpleWriter) writeRecords(sb *strings.Builder, summary *model.RunSummary) {
	if len(summary.Records) == 0 {
		return
	}
	sb.WriteString("Per-seed results:\n")
	for _, rec := range summary.Records {
		fmt.Fprintf(sb, "  [%d] %s mode=%s found=%d new=%d\n",
			rec.Index, rec.Seed, rec.Mode, rec.Found, rec.New)
	}
	sb.WriteString("\n")
}

// ProfileLabel renders a profile name for display. Profile names are
// lower-case identifiers in configuration files; reports show them
// title-cased, with a fixed label for the default profile.
func ProfileLabel(name string) string {
	if name == "" {
		return "Default"
	}
	return cases.Title(language.English).String(name)
}
