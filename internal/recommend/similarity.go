// CineGraph - Movie Recommendation Engine and Graph Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package recommend

import (
	"sort"

	"github.com/tomtom215/cinegraph/internal/graph"
)

// jaccard computes |a∩b| / |a∪b| for two neighbor sets. Returns 0 when the
// union is empty.
func jaccard(a, b map[graph.NodeID]struct{}) float64 {
	common := 0
	for n := range a {
		if _, ok := b[n]; ok {
			common++
		}
	}
	union := len(a) + len(b) - common
	if union == 0 {
		return 0
	}
	return float64(common) / float64(union)
}

// findSimilarUsers ranks every other user node by Jaccard similarity of
// rated-movie sets against the target. An absent target yields an empty
// result. Users with zero overlap are omitted. The result is sorted
// descending by similarity and truncated to topN; tie order beyond the
// stability of the sort is unspecified.
func findSimilarUsers(g *graph.Graph, targetID, topN int) []SimilarUser {
	target := graph.UserNodeID(targetID)
	if !g.HasNode(target) {
		return []SimilarUser{}
	}

	targetMovies := g.NeighborSet(target)

	similar := make([]SimilarUser, 0)
	for _, id := range g.UserIDs() {
		if id == targetID {
			continue
		}
		other := g.NeighborSet(graph.UserNodeID(id))
		if len(targetMovies) == 0 && len(other) == 0 {
			continue
		}
		if sim := jaccard(targetMovies, other); sim > 0 {
			similar = append(similar, SimilarUser{UserID: id, Similarity: sim})
		}
	}

	sort.SliceStable(similar, func(i, j int) bool {
		return similar[i].Similarity > similar[j].Similarity
	})

	if len(similar) > topN {
		similar = similar[:topN]
	}
	return similar
}
