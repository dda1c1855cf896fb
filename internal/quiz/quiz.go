// CineGraph - Movie Recommendation Engine and Graph Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package quiz

import (
	"sort"

	"github.com/tomtom215/cinegraph/internal/catalog"
)

// Thresholds splitting the catalog at each question.
const (
	recentYear     = 2010
	longRuntimeMin = 120
	highRating     = 7.5
)

// shortlistSize caps the number of titles held at each leaf.
const shortlistSize = 5

// Step is one node of the movie-picker tree: a question on interior nodes,
// a ranked shortlist on leaves.
type Step struct {
	Question  string
	Shortlist []string
}

// Questions returns the fixed question flow, root first.
func Questions() []string {
	return []string{
		"Do you want something recent (2010 or later)?",
		"Are you in the mood for a long movie (2+ hours)?",
		"Only the critically acclaimed (rated 7.5+)?",
	}
}

// Build constructs the picker tree for the catalog: three binary questions
// narrowing to eight shortlists. Each leaf holds the matching titles ranked
// by rating descending, ties broken by title so the list is stable across
// builds.
func Build(cat *catalog.Catalog) *Tree[Step] {
	return build(cat.All(), Questions(), 0)
}

// build recursively splits movies on question q of the flow.
func build(movies []*catalog.Movie, questions []string, q int) *Tree[Step] {
	if q >= len(questions) {
		return New(Step{Shortlist: shortlist(movies)})
	}

	node := New(Step{Question: questions[q]})

	var yes, no []*catalog.Movie
	for _, m := range movies {
		if answerFor(m, q) {
			yes = append(yes, m)
		} else {
			no = append(no, m)
		}
	}

	node.Yes = build(yes, questions, q+1)
	node.No = build(no, questions, q+1)
	return node
}

// answerFor evaluates question q against a movie.
func answerFor(m *catalog.Movie, q int) bool {
	switch q {
	case 0:
		return m.Year >= recentYear
	case 1:
		return m.RuntimeMinutes >= longRuntimeMin
	default:
		return m.Rating >= highRating
	}
}

// shortlist ranks movies by rating descending and keeps the top titles.
func shortlist(movies []*catalog.Movie) []string {
	ranked := append([]*catalog.Movie(nil), movies...)
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Rating != ranked[j].Rating {
			return ranked[i].Rating > ranked[j].Rating
		}
		return ranked[i].Title < ranked[j].Title
	})

	if len(ranked) > shortlistSize {
		ranked = ranked[:shortlistSize]
	}
	titles := make([]string, len(ranked))
	for i, m := range ranked {
		titles[i] = m.Title
	}
	return titles
}
