// Package report renders a model.ColorReport.
//
// This package contains writers for different output formats:
//   - SimpleWriter: the plain "Found colors:" listing printed by default
//   - JSONWriter: structured JSON output for tool integration
//   - MarkdownWriter: a Markdown document with a table and a mermaid pie chart
//
// Report data lives in the model package; writers only format it.
package report
