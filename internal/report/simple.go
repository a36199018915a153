package report

import (
	"io"
	"strings"

	"github.com/nao1215/swatch/internal/model"
)

// foundColorsHeader is the first line of every text report.
const foundColorsHeader = "Found colors:"

// SimpleWriter outputs the plain text listing:
//
//	Found colors:
//	#AABBCC: 2
//	#aabbcc: 1
//
// One line per ranked color, most common first. Nothing else is printed, so
// the output can be piped to other tools.
type SimpleWriter struct {
	baseWriter
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer) *SimpleWriter {
	return &SimpleWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the header followed by the ranked colors.
func (w *SimpleWriter) Write(report *model.ColorReport) (int, error) {
	var sb strings.Builder

	sb.WriteString(foundColorsHeader)
	sb.WriteString("\n")
	for _, c := range report.TopColors {
		sb.WriteString(c.String())
		sb.WriteString("\n")
	}

	return io.WriteString(w.output, sb.String())
}
