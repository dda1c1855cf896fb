// CineGraph - Movie Recommendation Engine and Graph Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/tomtom215/cinegraph/internal/catalog"
	"github.com/tomtom215/cinegraph/internal/logging"
	"github.com/tomtom215/cinegraph/internal/validation"
)

// ratingColumns is the expected layout of the rating history:
// User_ID, Movie_Title, Rating, Genre.
const ratingColumns = 4

// LoadRatings reads the 4-column rating history CSV at path. Rows with
// malformed or out-of-range fields are skipped and counted; a wrong column
// count fails the batch.
func LoadRatings(path string) ([]catalog.Rating, *Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open ratings file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			logging.Warn().Err(closeErr).Str("path", path).Msg("error closing ratings file")
		}
	}()

	ratings, stats, err := ReadRatings(f)
	if err != nil {
		return nil, stats, fmt.Errorf("read ratings file %s: %w", path, err)
	}

	logging.Info().
		Str("path", path).
		Int("total", stats.Total).
		Int("imported", stats.Imported).
		Int("skipped", stats.Skipped).
		Int64("elapsed_ms", stats.Duration().Milliseconds()).
		Msg("rating history loaded")

	return ratings, stats, nil
}

// ReadRatings parses the rating history layout from r.
func ReadRatings(r io.Reader) ([]catalog.Rating, *Stats, error) {
	stats := &Stats{StartTime: time.Now()}
	defer func() { stats.EndTime = time.Now() }()

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = ratingColumns

	if _, err := cr.Read(); err != nil {
		if err == io.EOF {
			return []catalog.Rating{}, stats, nil
		}
		return nil, stats, fmt.Errorf("read header: %w", err)
	}

	var ratings []catalog.Rating
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, stats, fmt.Errorf("malformed ratings file: %w", err)
		}

		stats.Total++
		rec, err := parseRatingRow(row)
		if err != nil {
			stats.Skipped++
			logging.Warn().
				Err(err).
				Int("row", stats.Total).
				Str("title", row[1]).
				Msg("skipping malformed rating row")
			continue
		}

		ratings = append(ratings, rec)
		stats.Imported++
	}

	return ratings, stats, nil
}

// parseRatingRow converts one CSV row into a Rating record. The parsed
// record is checked against the Rating struct's validation tags, so an
// out-of-range value is rejected the same way an unparsable one is.
func parseRatingRow(row []string) (catalog.Rating, error) {
	userID, err := strconv.Atoi(strings.TrimSpace(row[0]))
	if err != nil {
		return catalog.Rating{}, fmt.Errorf("user id %q: %w", row[0], err)
	}

	value, err := strconv.ParseFloat(strings.TrimSpace(row[2]), 64)
	if err != nil {
		return catalog.Rating{}, fmt.Errorf("rating %q: %w", row[2], err)
	}

	rec := catalog.Rating{
		UserID: userID,
		Title:  strings.TrimSpace(row[1]),
		Value:  value,
		Genre:  FirstGenre(row[3]),
	}
	if err := validation.ValidateStruct(&rec); err != nil {
		return catalog.Rating{}, fmt.Errorf("invalid rating record: %w", err)
	}
	return rec, nil
}
