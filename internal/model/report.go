package model

import "time"

// ColorReport is the result of one swatch run.
// It is created empty for a target URL and filled in by the pipeline steps:
// fetch sets Page, extract sets Matches, rank sets the counts and TopColors.
type ColorReport struct {
	// Target is the URL that was requested.
	Target string `json:"target"`

	// DateScanned is when the run started.
	DateScanned time.Time `json:"date_scanned"`

	// Page is the fetched page. Nil when the fetch failed.
	Page *Page `json:"page,omitempty"`

	// Matches is the match sequence in document order, duplicates included.
	Matches []string `json:"-"`

	// TotalMatches is len(Matches); it is also the sum of all counts.
	TotalMatches int `json:"total_matches"`

	// DistinctColors is the number of distinct color strings found.
	DistinctColors int `json:"distinct_colors"`

	// TopColors holds the ranked entries, most common first.
	TopColors []ColorCount `json:"top_colors"`

	// PerformedSteps lists the pipeline steps that ran, in order.
	PerformedSteps []string `json:"performed_steps,omitempty"`

	// TimedOut is true when the run was cancelled before all steps ran.
	TimedOut bool `json:"timed_out,omitempty"`

	// Error is the error that stopped the run, if any.
	Error error `json:"-"`

	// ErrorMessage is Error rendered as text for serialization.
	ErrorMessage string `json:"error,omitempty"`
}

// NewColorReport creates an empty report for the given target URL.
func NewColorReport(target string) *ColorReport {
	return &ColorReport{
		Target:      target,
		DateScanned: time.Now(),
		TopColors:   make([]ColorCount, 0),
	}
}

// HasColors reports whether any color was ranked.
func (r *ColorReport) HasColors() bool {
	return len(r.TopColors) > 0
}

// Failed reports whether the run stopped with an error.
func (r *ColorReport) Failed() bool {
	return r.Error != nil
}
