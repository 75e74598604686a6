package domain

import "time"

// IngestRequest is one fetched page handed to the ingester.
type IngestRequest struct {
	URL          string     `json:"url"`
	RedirectURL  string     `json:"redirect_url,omitempty"`
	Content      string     `json:"content"`
	FallbackDate *time.Time `json:"fallback_date,omitempty"`
}

type IngestResult struct {
	Story   *Story
	Created bool
}

// WorkerStats holds counters for a worker pool run.
type WorkerStats struct {
	Matched  int
	Created  int
	Failed   int
	Rejected int
	Duration time.Duration
}
