package model

import "time"

// CycleStats is the numeric part of a run summary.
type CycleStats struct {
	Total           int            `json:"total"`
	Inserted        int            `json:"inserted"`
	Updated         int            `json:"updated"`
	Skipped         int            `json:"skipped"`  // dropped by the normalizer
	Duration        string         `json:"duration"` // wall clock, e.g. "2.41s"
	Sources         map[string]int `json:"sources"`
	FallbackSources []string       `json:"fallbackSources"`
	FailedSources   []string       `json:"failedSources"`
}

// CycleSummary is what a trigger receives after one scrape cycle.
type CycleSummary struct {
	Success   bool       `json:"success"`
	Message   string     `json:"message"`
	Error     string     `json:"error,omitempty"`
	Stats     CycleStats `json:"stats"`
	Timestamp time.Time  `json:"timestamp"`
}
