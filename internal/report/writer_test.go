package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/nao1215/swatch/internal/model"
)

// createTestReport creates a report with sample data for testing.
func createTestReport() *model.ColorReport {
	report := model.NewColorReport("https://example.com/brand")
	report.Page = &model.Page{
		URL:         "https://example.com/brand",
		FinalURL:    "https://example.com/brand",
		StatusCode:  200,
		ContentType: "text/html; charset=utf-8",
		Headers:     map[string][]string{"Server": {"nginx/1.25"}},
		Raw:         []byte("a #AABBCC b #aabbcc c #AABBCC"),
	}
	report.Page.ComputeHash()
	report.Matches = []string{"#AABBCC", "#aabbcc", "#AABBCC"}
	report.TotalMatches = 3
	report.DistinctColors = 2
	report.TopColors = []model.ColorCount{
		{Color: "#AABBCC", Count: 2},
		{Color: "#aabbcc", Count: 1},
	}
	report.PerformedSteps = []string{"fetch", "extract", "rank"}
	return report
}

func TestSimpleWriter(t *testing.T) {
	t.Parallel()

	t.Run("writes header and ranked colors", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		n, err := NewSimpleWriter(&buf).Write(createTestReport())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := "Found colors:\n#AABBCC: 2\n#aabbcc: 1\n"
		if buf.String() != want {
			t.Errorf("output = %q, want %q", buf.String(), want)
		}
		if n != len(want) {
			t.Errorf("n = %d, want %d", n, len(want))
		}
	})

	t.Run("writes only the header without colors", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewSimpleWriter(&buf).Write(model.NewColorReport("https://example.com")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if buf.String() != "Found colors:\n" {
			t.Errorf("output = %q, want header only", buf.String())
		}
	})
}

func TestJSONWriter(t *testing.T) {
	t.Parallel()

	t.Run("outputs valid JSON", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf).Write(createTestReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var decoded struct {
			Target    string             `json:"target"`
			Total     int                `json:"total_matches"`
			TopColors []model.ColorCount `json:"top_colors"`
			Page      struct {
				StatusCode int    `json:"status_code"`
				Hash       string `json:"hash"`
			} `json:"page"`
		}
		if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
			t.Fatalf("invalid JSON: %v", err)
		}
		if decoded.Target != "https://example.com/brand" {
			t.Errorf("target = %q", decoded.Target)
		}
		if decoded.Total != 3 {
			t.Errorf("total_matches = %d, want 3", decoded.Total)
		}
		if len(decoded.TopColors) != 2 || decoded.TopColors[0].Color != "#AABBCC" {
			t.Errorf("top_colors = %v", decoded.TopColors)
		}
		if decoded.Page.StatusCode != 200 || len(decoded.Page.Hash) != 64 {
			t.Errorf("unexpected page: %+v", decoded.Page)
		}
	})

	t.Run("compact output by default", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf).Write(createTestReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := strings.TrimSuffix(buf.String(), "\n")
		if strings.Contains(output, "\n") {
			t.Error("expected compact JSON on a single line")
		}
	})

	t.Run("pretty print with indent", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf, WithPrettyPrint()).Write(createTestReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !strings.Contains(buf.String(), "\n  \"target\"") {
			t.Errorf("expected indented output, got %s", buf.String())
		}
	})

	t.Run("uses custom prefix and indent", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf, WithIndent(">", "\t")).Write(createTestReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !strings.Contains(buf.String(), "\n>\t\"target\"") {
			t.Errorf("expected custom indentation, got %s", buf.String())
		}
	})

	t.Run("match sequence is not serialized", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf).Write(createTestReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if strings.Contains(buf.String(), "matches\":[") {
			t.Error("expected Matches to be omitted")
		}
	})

	t.Run("error message is serialized", func(t *testing.T) {
		t.Parallel()

		report := model.NewColorReport("https://example.com")
		report.Error = errors.New("HTTP Error 403: Forbidden")
		report.ErrorMessage = report.Error.Error()

		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf).Write(report); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !strings.Contains(buf.String(), `"error":"HTTP Error 403: Forbidden"`) {
			t.Errorf("expected error field, got %s", buf.String())
		}
	})
}

func TestFullJSONWriter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if _, err := NewFullJSONWriter(&buf, "v1.2.3").Write(createTestReport()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded struct {
		Version string `json:"version"`
		Report  struct {
			Target string `json:"target"`
		} `json:"report"`
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if decoded.Version != "v1.2.3" {
		t.Errorf("version = %q, want v1.2.3", decoded.Version)
	}
	if decoded.Report.Target != "https://example.com/brand" {
		t.Errorf("report.target = %q", decoded.Report.Target)
	}
}

func TestMarkdownWriter(t *testing.T) {
	t.Parallel()

	write := func(t *testing.T, report *model.ColorReport) string {
		t.Helper()

		var buf bytes.Buffer
		if _, err := NewMarkdownWriter(&buf).Write(report); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return buf.String()
	}

	t.Run("writes header table", func(t *testing.T) {
		t.Parallel()

		output := write(t, createTestReport())
		for _, want := range []string{
			"# Swatch Report",
			"https://example.com/brand",
			"text/html; charset=utf-8",
			"✅ Complete",
		} {
			if !strings.Contains(output, want) {
				t.Errorf("output missing %q", want)
			}
		}
	})

	t.Run("writes server header", func(t *testing.T) {
		t.Parallel()

		output := write(t, createTestReport())
		if !strings.Contains(output, "nginx/1.25") {
			t.Errorf("expected Server header in info table, got %s", output)
		}
	})

	t.Run("error without message is still shown as failed", func(t *testing.T) {
		t.Parallel()

		report := model.NewColorReport("https://example.com")
		report.Error = errors.New("HTTP Error 500: Internal Server Error")

		output := write(t, report)
		if !strings.Contains(output, "❌ Error - HTTP Error 500: Internal Server Error") {
			t.Errorf("expected error status, got %s", output)
		}
		if strings.Contains(output, "✅ Complete") {
			t.Error("expected failed report not to be marked complete")
		}
	})

	t.Run("writes colors table", func(t *testing.T) {
		t.Parallel()

		output := write(t, createTestReport())
		for _, want := range []string{"## Found Colors", "`#AABBCC`", "66.7%", "33.3%"} {
			if !strings.Contains(output, want) {
				t.Errorf("output missing %q", want)
			}
		}
	})

	t.Run("includes pie chart", func(t *testing.T) {
		t.Parallel()

		output := write(t, createTestReport())
		if !strings.Contains(output, "```mermaid") {
			t.Error("expected mermaid code block")
		}
		if !strings.Contains(output, "Color Distribution") {
			t.Error("expected pie chart title")
		}
	})

	t.Run("notes hidden colors", func(t *testing.T) {
		t.Parallel()

		report := createTestReport()
		report.DistinctColors = 25
		output := write(t, report)
		if !strings.Contains(output, "2 of 25 distinct colors shown.") {
			t.Errorf("expected hidden colors note, got %s", output)
		}
	})

	t.Run("handles report with no colors", func(t *testing.T) {
		t.Parallel()

		output := write(t, model.NewColorReport("https://example.com"))
		if !strings.Contains(output, "No hexadecimal color codes were found") {
			t.Error("expected empty result tip")
		}
		if strings.Contains(output, "```mermaid") {
			t.Error("expected no pie chart")
		}
	})

	t.Run("shows error in status", func(t *testing.T) {
		t.Parallel()

		report := model.NewColorReport("https://example.com")
		report.Error = errors.New("HTTP Error 404: Not Found")
		report.ErrorMessage = report.Error.Error()

		output := write(t, report)
		if !strings.Contains(output, "❌ Error - HTTP Error 404: Not Found") {
			t.Errorf("expected error status, got %s", output)
		}
	})

	t.Run("writes footer with link", func(t *testing.T) {
		t.Parallel()

		output := write(t, createTestReport())
		if !strings.Contains(output, "https://github.com/nao1215/swatch") {
			t.Error("expected footer link")
		}
	})
}

func TestShare(t *testing.T) {
	t.Parallel()

	tests := []struct {
		count, total int
		want         string
	}{
		{count: 1, total: 4, want: "25.0%"},
		{count: 2, total: 3, want: "66.7%"},
		{count: 0, total: 0, want: "-"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()

			if got := share(tt.count, tt.total); got != tt.want {
				t.Errorf("share(%d, %d) = %q, want %q", tt.count, tt.total, got, tt.want)
			}
		})
	}
}
