package pipeline

import (
	"context"
	"errors"
	"log/slog"

	"github.com/nao1215/swatch/internal/config"
	"github.com/nao1215/swatch/internal/model"
	"github.com/nao1215/swatch/internal/palette"
)

// ErrNoPage is returned by ExtractStep when no page has been fetched.
var ErrNoPage = errors.New("no page to extract colors from")

// PageFetcher retrieves one page. *fetch.Fetcher implements it.
type PageFetcher interface {
	Fetch(ctx context.Context, pageURL string) (*model.Page, error)
}

// FetchStep downloads the report's target page.
type FetchStep struct {
	fetcher PageFetcher
	logger  *slog.Logger
}

// NewFetchStep creates a FetchStep. A nil logger means slog.Default().
func NewFetchStep(fetcher PageFetcher, logger *slog.Logger) *FetchStep {
	if logger == nil {
		logger = slog.Default()
	}
	return &FetchStep{fetcher: fetcher, logger: logger}
}

// Name returns the step name.
func (s *FetchStep) Name() string {
	return "fetch"
}

// Do fetches report.Target and stores the page in the report.
func (s *FetchStep) Do(ctx context.Context, report *model.ColorReport) error {
	page, err := s.fetcher.Fetch(ctx, report.Target)
	if err != nil {
		return err
	}
	report.Page = page

	s.logger.Info("page fetched",
		"url", page.FinalURL,
		"status", page.StatusCode,
		"bytes", page.Size,
	)
	return nil
}

// ExtractStep scans the fetched page text for color codes.
type ExtractStep struct{}

// NewExtractStep creates an ExtractStep.
func NewExtractStep() *ExtractStep {
	return &ExtractStep{}
}

// Name returns the step name.
func (s *ExtractStep) Name() string {
	return "extract"
}

// Do stores the match sequence of the page text in the report.
func (s *ExtractStep) Do(_ context.Context, report *model.ColorReport) error {
	if report.Page == nil {
		return ErrNoPage
	}
	report.Matches = palette.Extract(report.Page.Text)
	return nil
}

// RankStep builds the frequency table and keeps the most common colors.
type RankStep struct {
	// topN is the number of colors kept.
	topN int
}

// NewRankStep creates a RankStep keeping topN colors.
// Non-positive values fall back to config.DefaultTopN.
func NewRankStep(topN int) *RankStep {
	if topN <= 0 {
		topN = config.DefaultTopN
	}
	return &RankStep{topN: topN}
}

// Name returns the step name.
func (s *RankStep) Name() string {
	return "rank"
}

// Do fills the counts and the ranked colors of the report.
func (s *RankStep) Do(_ context.Context, report *model.ColorReport) error {
	table := palette.Tally(report.Matches)
	report.TotalMatches = table.Total()
	report.DistinctColors = table.Distinct()
	report.TopColors = table.MostCommon(s.topN)
	return nil
}

// DefaultPipeline creates the standard fetch, extract, rank pipeline.
func DefaultPipeline(fetcher PageFetcher, topN int, opts ...Option) *Pipeline {
	p := New(opts...)
	p.AddSteps(
		NewFetchStep(fetcher, p.logger),
		NewExtractStep(),
		NewRankStep(topN),
	)
	return p
}
