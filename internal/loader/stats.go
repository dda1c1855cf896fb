// CineGraph - Movie Recommendation Engine and Graph Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package loader

import "time"

// Stats holds counters for one CSV ingestion batch. Skipped rows are data
// errors recovered locally; they never abort the batch.
type Stats struct {
	// Total is the number of data rows seen (header excluded).
	Total int

	// Imported is the number of rows converted to records.
	Imported int

	// Skipped is the number of rows rejected for malformed fields.
	Skipped int

	// StartTime is when the batch load started.
	StartTime time.Time

	// EndTime is when the batch load finished.
	EndTime time.Time
}

// Duration returns how long the batch load took.
func (s *Stats) Duration() time.Duration {
	if s.EndTime.IsZero() {
		return time.Since(s.StartTime)
	}
	return s.EndTime.Sub(s.StartTime)
}

// RowsPerSecond returns the ingestion rate.
func (s *Stats) RowsPerSecond() float64 {
	secs := s.Duration().Seconds()
	if secs == 0 {
		return 0
	}
	return float64(s.Total) / secs
}
