package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"
	"github.com/nao1215/swatch/internal/model"
)

// MarkdownWriter outputs reports in Markdown format.
// This format is designed for documentation and sharing.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the report in Markdown format.
func (w *MarkdownWriter) Write(report *model.ColorReport) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, report)
	w.writeColors(md, report)
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// writeHeader writes the title and the page information table.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, report *model.ColorReport) {
	md.H1("Swatch Report")
	md.PlainText("")

	rows := [][]string{
		{"Target", "`" + report.Target + "`"},
		{"Scan Date", report.DateScanned.Format("2006-01-02 15:04:05 MST")},
	}
	if page := report.Page; page != nil {
		rows = append(rows,
			[]string{"Status Code", strconv.Itoa(page.StatusCode)},
			[]string{"Content Type", valueOrDash(page.ContentType)},
			[]string{"Server", valueOrDash(page.GetHeader("Server"))},
			[]string{"Body Size", strconv.Itoa(page.Size) + " bytes"},
			[]string{"SHA3-256", "`" + valueOrDash(page.Hash) + "`"},
		)
	}
	rows = append(rows,
		[]string{"Total Matches", strconv.Itoa(report.TotalMatches)},
		[]string{"Distinct Colors", strconv.Itoa(report.DistinctColors)},
		[]string{"Status", w.getStatusText(report)},
	)

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows:   rows,
	})
	md.PlainText("")
}

// getStatusText returns the status text based on report state.
func (w *MarkdownWriter) getStatusText(report *model.ColorReport) string {
	if report.TimedOut {
		return "⚠️ Timed Out"
	}
	if report.Failed() {
		return "❌ Error - " + report.Error.Error()
	}
	return "✅ Complete"
}

// writeColors writes the ranked colors table and the distribution chart.
func (w *MarkdownWriter) writeColors(md *markdown.Markdown, report *model.ColorReport) {
	md.H2("Found Colors")
	md.PlainText("")

	if report.Failed() {
		md.Warningf("The page could not be processed: %s", report.Error.Error())
		md.PlainText("")
		return
	}

	if !report.HasColors() {
		md.Tip("No hexadecimal color codes were found on the page.")
		md.PlainText("")
		return
	}

	rows := make([][]string, len(report.TopColors))
	for i, c := range report.TopColors {
		rows[i] = []string{
			strconv.Itoa(i + 1),
			"`" + c.Color + "`",
			strconv.Itoa(c.Count),
			share(c.Count, report.TotalMatches),
		}
	}

	md.Table(markdown.TableSet{
		Header: []string{"Rank", "Color", "Count", "Share"},
		Rows:   rows,
	})
	md.PlainText("")

	if report.DistinctColors > len(report.TopColors) {
		md.Note(fmt.Sprintf("%d of %d distinct colors shown.", len(report.TopColors), report.DistinctColors))
		md.PlainText("")
	}

	w.writePieChart(md, report)
}

// writePieChart writes a mermaid pie chart of the ranked colors.
func (w *MarkdownWriter) writePieChart(md *markdown.Markdown, report *model.ColorReport) {
	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Color Distribution"),
		piechart.WithShowData(true),
	)

	for _, c := range report.TopColors {
		chart.LabelAndIntValue(c.Color, uint64(c.Count))
	}

	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// writeFooter writes the report footer.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainTextf("*Report generated by [swatch](https://github.com/nao1215/swatch)*")
}

// share formats count as a percentage of total.
func share(count, total int) string {
	if total == 0 {
		return "-"
	}
	return fmt.Sprintf("%.1f%%", float64(count)*100/float64(total))
}

func valueOrDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
