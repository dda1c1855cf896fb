// CineGraph - Movie Recommendation Engine and Graph Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package viz

import (
	"math"
	"math/rand"

	"github.com/tomtom215/cinegraph/internal/graph"
)

// PositionedNode is a graph node with layout coordinates in [0,1] space.
type PositionedNode struct {
	ID    graph.NodeID `json:"id"`
	Kind  string       `json:"kind"`
	Label string       `json:"label"`
	Genre string       `json:"genre,omitempty"`
	X     float64      `json:"x"`
	Y     float64      `json:"y"`
}

// Scene is the fully positioned, read-only input to the renderers. It is
// built from a graph snapshot and never refers back to the live graph.
type Scene struct {
	Nodes []PositionedNode `json:"nodes"`
	Edges []graph.EdgeView `json:"edges"`

	// HighlightUserID marks one user node for emphasis; negative means none.
	HighlightUserID int `json:"highlight_user_id"`
}

// LayoutConfig controls the spring layout.
type LayoutConfig struct {
	// Seed initializes the random placement. The same seed over the same
	// snapshot produces the same layout, since snapshots order nodes
	// deterministically.
	Seed int64

	// Iterations is the number of force-refinement rounds.
	Iterations int
}

// DefaultLayoutConfig returns the standard layout parameters.
func DefaultLayoutConfig() LayoutConfig {
	return LayoutConfig{Seed: 42, Iterations: 50}
}

// Layout positions the snapshot's nodes with a Fruchterman-Reingold spring
// embedding: connected nodes attract, all pairs repel, and a cooling
// schedule shrinks the per-iteration displacement until the layout settles.
// Coordinates are normalized to [0,1] on both axes.
func Layout(snap graph.Snapshot, cfg LayoutConfig) Scene {
	scene := Scene{
		Nodes:           make([]PositionedNode, len(snap.Nodes)),
		Edges:           append([]graph.EdgeView(nil), snap.Edges...),
		HighlightUserID: -1,
	}

	n := len(snap.Nodes)
	if n == 0 {
		return scene
	}
	if cfg.Iterations < 1 {
		cfg.Iterations = DefaultLayoutConfig().Iterations
	}

	rng := rand.New(rand.NewSource(cfg.Seed))

	xs := make([]float64, n)
	ys := make([]float64, n)
	index := make(map[graph.NodeID]int, n)
	for i, nv := range snap.Nodes {
		xs[i] = rng.Float64()
		ys[i] = rng.Float64()
		index[nv.ID] = i
	}

	// Ideal pairwise distance for a unit-square area.
	k := math.Sqrt(1.0 / float64(n))
	temp := 0.1

	dispX := make([]float64, n)
	dispY := make([]float64, n)

	for iter := 0; iter < cfg.Iterations; iter++ {
		for i := range dispX {
			dispX[i] = 0
			dispY[i] = 0
		}

		// Repulsion between every pair.
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				dx := xs[i] - xs[j]
				dy := ys[i] - ys[j]
				dist := math.Hypot(dx, dy)
				if dist < 1e-9 {
					// Coincident nodes get a deterministic nudge.
					dx, dy, dist = 1e-4, 1e-4, math.Sqrt2*1e-4
				}
				force := k * k / dist
				dispX[i] += dx / dist * force
				dispY[i] += dy / dist * force
				dispX[j] -= dx / dist * force
				dispY[j] -= dy / dist * force
			}
		}

		// Attraction along edges.
		for _, e := range snap.Edges {
			a, okA := index[e.From]
			b, okB := index[e.To]
			if !okA || !okB {
				continue
			}
			dx := xs[a] - xs[b]
			dy := ys[a] - ys[b]
			dist := math.Hypot(dx, dy)
			if dist < 1e-9 {
				continue
			}
			force := dist * dist / k
			dispX[a] -= dx / dist * force
			dispY[a] -= dy / dist * force
			dispX[b] += dx / dist * force
			dispY[b] += dy / dist * force
		}

		// Apply displacement, capped by the current temperature.
		for i := 0; i < n; i++ {
			d := math.Hypot(dispX[i], dispY[i])
			if d < 1e-9 {
				continue
			}
			step := math.Min(d, temp)
			xs[i] += dispX[i] / d * step
			ys[i] += dispY[i] / d * step
		}

		temp *= 0.95
	}

	normalize(xs)
	normalize(ys)

	for i, nv := range snap.Nodes {
		scene.Nodes[i] = PositionedNode{
			ID:    nv.ID,
			Kind:  nv.KindName(),
			Label: nv.Label,
			Genre: nv.Genre,
			X:     xs[i],
			Y:     ys[i],
		}
	}
	return scene
}

// normalize rescales coordinates to span [0,1]. A degenerate axis (all
// values equal) collapses to the midpoint.
func normalize(vs []float64) {
	lo, hi := vs[0], vs[0]
	for _, v := range vs[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	span := hi - lo
	for i := range vs {
		if span < 1e-9 {
			vs[i] = 0.5
			continue
		}
		vs[i] = (vs[i] - lo) / span
	}
}
