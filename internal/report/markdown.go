package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/nao1215/markdown"

	"github.com/zipsweep/zipsweep/internal/model"
)

// MarkdownWriter outputs summaries in Markdown format.
// This format is designed for documentation and sharing run results.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation which provides type-safe tables, lists, and GitHub-flavored
// alerts.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the summary in Markdown format.
func (w *MarkdownWriter) Write(summary *model.RunSummary) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, summary)
	w.writeTotals(md, summary)
	w.writeFailedSeeds(md, summary)

	return len(md.String()), md.Build()
}

func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, summary *model.RunSummary) {
	md.H1("Sweep Report")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Profile", ProfileLabel(summary.Profile)},
			{"Region", summary.Region},
			{"Started", summary.StartedAt.Format("2006-01-02 15:04:05 MST")},
			{"Duration", summary.Elapsed.String()},
		},
	})
	md.PlainText("")
}

func (w *MarkdownWriter) writeTotals(md *markdown.Markdown, summary *model.RunSummary) {
	md.H2("Totals")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Metric", "Count"},
		Rows: [][]string{
			{"Seeds processed", strconv.Itoa(summary.SeedsProcessed)},
			{"Failed seeds", strconv.Itoa(summary.FailedSeeds)},
			{"Addresses found", strconv.Itoa(summary.Found)},
			{"New addresses", strconv.Itoa(summary.NewAddresses)},
			{"Unique total", strconv.Itoa(summary.UniqueTotal)},
		},
	})
	md.PlainText("")

	if summary.FailedSeeds > 0 {
		md.Warningf("%d seed(s) failed both query forms. Reseed or rerun to cover their areas.", summary.FailedSeeds)
	} else {
		md.PlainText(fmt.Sprintf("All %d seed(s) completed.", summary.SeedsProcessed))
	}
}

func (w *MarkdownWriter) writeFailedSeeds(md *markdown.Markdown, summary *model.RunSummary) {
	var failed []string
	for _, rec := range summary.Records {
		if rec.Mode == model.ModeFailed {
			failed = append(failed, rec.Seed.String())
		}
	}
	if len(failed) == 0 {
		return
	}

	md.PlainText("")
	md.H2("Failed Seeds")
	md.PlainText("")
	md.BulletList(failed...)
}
