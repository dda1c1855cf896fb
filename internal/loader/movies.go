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
)

// movieColumns is the expected layout of the IMDB-style movie catalog.
const movieColumns = 16

// Column indices in the 16-column movies CSV. Poster_Link (0) is unused.
const (
	colTitle       = 1
	colYear        = 2
	colCertificate = 3
	colRuntime     = 4
	colGenre       = 5
	colRating      = 6
	colOverview    = 7
	colMetaScore   = 8
	colDirector    = 9
	colStar1       = 10
	colVotes       = 14
	colGross       = 15
)

// LoadMovies reads the 16-column movie catalog CSV at path. Rows with
// malformed numeric fields are skipped and counted; a row with the wrong
// column count is a batch-level error because the file no longer matches
// the declared layout. Later rows with a repeated title overwrite earlier
// ones (last write wins).
func LoadMovies(path string) (*catalog.Catalog, *Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open movies file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			logging.Warn().Err(closeErr).Str("path", path).Msg("error closing movies file")
		}
	}()

	cat, stats, err := ReadMovies(f)
	if err != nil {
		return nil, stats, fmt.Errorf("read movies file %s: %w", path, err)
	}

	logging.Info().
		Str("path", path).
		Int("total", stats.Total).
		Int("imported", stats.Imported).
		Int("skipped", stats.Skipped).
		Int64("elapsed_ms", stats.Duration().Milliseconds()).
		Msg("movie catalog loaded")

	return cat, stats, nil
}

// ReadMovies parses the movie catalog layout from r.
func ReadMovies(r io.Reader) (*catalog.Catalog, *Stats, error) {
	stats := &Stats{StartTime: time.Now()}
	defer func() { stats.EndTime = time.Now() }()

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = movieColumns

	// Header row is layout metadata, not data.
	if _, err := cr.Read(); err != nil {
		if err == io.EOF {
			return catalog.NewCatalog(), stats, nil
		}
		return nil, stats, fmt.Errorf("read header: %w", err)
	}

	cat := catalog.NewCatalog()
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Field-count violations surface here; the file does not match
			// the declared layout, so the whole batch fails.
			return nil, stats, fmt.Errorf("malformed movies file: %w", err)
		}

		stats.Total++
		m, err := parseMovieRow(row)
		if err != nil {
			stats.Skipped++
			logging.Warn().
				Err(err).
				Int("row", stats.Total).
				Str("title", row[colTitle]).
				Msg("skipping malformed movie row")
			continue
		}

		cat.Add(m)
		stats.Imported++
	}

	return cat, stats, nil
}

// parseMovieRow converts one CSV row into a Movie. Numeric fields that are
// present but unparsable reject the row; empty optional fields default to
// zero values.
func parseMovieRow(row []string) (*catalog.Movie, error) {
	title := strings.TrimSpace(row[colTitle])
	if title == "" {
		return nil, fmt.Errorf("empty title")
	}

	year, err := strconv.Atoi(strings.TrimSpace(row[colYear]))
	if err != nil {
		return nil, fmt.Errorf("year %q: %w", row[colYear], err)
	}

	runtime, err := parseRuntime(row[colRuntime])
	if err != nil {
		return nil, err
	}

	rating, err := strconv.ParseFloat(strings.TrimSpace(row[colRating]), 64)
	if err != nil {
		return nil, fmt.Errorf("rating %q: %w", row[colRating], err)
	}

	metaScore, err := parseOptionalInt(row[colMetaScore])
	if err != nil {
		return nil, fmt.Errorf("meta score %q: %w", row[colMetaScore], err)
	}

	votes, err := parseOptionalInt(row[colVotes])
	if err != nil {
		return nil, fmt.Errorf("votes %q: %w", row[colVotes], err)
	}

	gross, err := parseOptionalInt64(row[colGross])
	if err != nil {
		return nil, fmt.Errorf("gross %q: %w", row[colGross], err)
	}

	actors := make([]string, 0, 4)
	for i := colStar1; i < colStar1+4; i++ {
		if name := strings.TrimSpace(row[i]); name != "" {
			actors = append(actors, name)
		}
	}

	return &catalog.Movie{
		Title:          title,
		Year:           year,
		Certificate:    strings.TrimSpace(row[colCertificate]),
		RuntimeMinutes: runtime,
		Genre:          FirstGenre(row[colGenre]),
		Rating:         rating,
		Overview:       strings.TrimSpace(row[colOverview]),
		MetaScore:      metaScore,
		Director:       strings.TrimSpace(row[colDirector]),
		LeadActors:     actors,
		Votes:          votes,
		Gross:          gross,
	}, nil
}

// FirstGenre collapses a ", "-separated genre list to its first entry.
func FirstGenre(s string) string {
	genre, _, _ := strings.Cut(s, ",")
	return strings.TrimSpace(genre)
}

// parseRuntime parses the "142 min" runtime format.
func parseRuntime(s string) (int, error) {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "min"))
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("runtime %q: %w", s, err)
	}
	return n, nil
}

// parseOptionalInt parses an integer that may carry thousands separators
// or be absent entirely. Empty means zero, not an error.
func parseOptionalInt(s string) (int, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}

// parseOptionalInt64 is parseOptionalInt for box-office sized numbers.
func parseOptionalInt64(s string) (int64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return 0, nil
	}
	return strconv.ParseInt(s, 10, 64)
}
