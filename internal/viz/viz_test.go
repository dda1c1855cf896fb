// CineGraph - Movie Recommendation Engine and Graph Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package viz

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/cinegraph/internal/graph"
)

func ratingGraph() *graph.Graph {
	g := graph.New()
	g.AddRating(1, "Inception", 9.0, "Sci-Fi")
	g.AddRating(2, "Inception", 8.5, "Sci-Fi")
	g.AddRating(2, "The Matrix", 8.0, "Action")
	return g
}

func TestLayoutCoversAllNodes(t *testing.T) {
	snap := ratingGraph().Snapshot()
	scene := Layout(snap, DefaultLayoutConfig())

	if len(scene.Nodes) != len(snap.Nodes) {
		t.Fatalf("positioned %d nodes, want %d", len(scene.Nodes), len(snap.Nodes))
	}
	if len(scene.Edges) != len(snap.Edges) {
		t.Fatalf("carried %d edges, want %d", len(scene.Edges), len(snap.Edges))
	}
	for _, n := range scene.Nodes {
		if n.X < 0 || n.X > 1 || n.Y < 0 || n.Y > 1 {
			t.Errorf("node %s at (%v, %v), want coordinates in [0,1]", n.ID, n.X, n.Y)
		}
	}
}

func TestLayoutDeterministicForFixedSeed(t *testing.T) {
	snap := ratingGraph().Snapshot()
	cfg := LayoutConfig{Seed: 7, Iterations: 30}

	a := Layout(snap, cfg)
	b := Layout(snap, cfg)

	for i := range a.Nodes {
		if a.Nodes[i].X != b.Nodes[i].X || a.Nodes[i].Y != b.Nodes[i].Y {
			t.Fatalf("node %s moved between identical runs", a.Nodes[i].ID)
		}
	}
}

func TestLayoutDifferentSeedsDiffer(t *testing.T) {
	snap := ratingGraph().Snapshot()

	a := Layout(snap, LayoutConfig{Seed: 1, Iterations: 30})
	b := Layout(snap, LayoutConfig{Seed: 2, Iterations: 30})

	same := true
	for i := range a.Nodes {
		if a.Nodes[i].X != b.Nodes[i].X || a.Nodes[i].Y != b.Nodes[i].Y {
			same = false
			break
		}
	}
	if same {
		t.Error("expected different seeds to produce different layouts")
	}
}

func TestLayoutEmptyGraph(t *testing.T) {
	scene := Layout(graph.New().Snapshot(), DefaultLayoutConfig())
	if len(scene.Nodes) != 0 || len(scene.Edges) != 0 {
		t.Errorf("empty graph should produce empty scene, got %+v", scene)
	}
}

func TestRenderArtifactContent(t *testing.T) {
	scene := Layout(ratingGraph().Snapshot(), DefaultLayoutConfig())
	scene.HighlightUserID = 1

	var buf bytes.Buffer
	if err := Render(&buf, scene); err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	html := buf.String()

	for _, want := range []string{
		"<!DOCTYPE html>",
		"<svg",
		"Inception",
		"The Matrix",
		"User 1",
		"User 2",
		colorHighlight, // highlighted target present
		colorMovie,
		colorUser, // user 2 still gets the normal fill
	} {
		if !strings.Contains(html, want) {
			t.Errorf("rendered page missing %q", want)
		}
	}
}

func TestRenderWithoutHighlight(t *testing.T) {
	scene := Layout(ratingGraph().Snapshot(), DefaultLayoutConfig())

	var buf bytes.Buffer
	if err := Render(&buf, scene); err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if strings.Contains(buf.String(), colorHighlight) {
		t.Error("no node should carry the highlight fill when none is selected")
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.html")
	scene := Layout(ratingGraph().Snapshot(), DefaultLayoutConfig())

	if err := WriteFile(path, scene); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(content), "<svg") {
		t.Error("artifact should contain the inline SVG")
	}
}

func TestExportJSON(t *testing.T) {
	scene := Layout(ratingGraph().Snapshot(), DefaultLayoutConfig())
	scene.HighlightUserID = 2

	var buf bytes.Buffer
	if err := ExportJSON(&buf, scene); err != nil {
		t.Fatalf("ExportJSON() error: %v", err)
	}

	var decoded Scene
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("exported JSON does not round-trip: %v", err)
	}
	if len(decoded.Nodes) != len(scene.Nodes) {
		t.Errorf("decoded %d nodes, want %d", len(decoded.Nodes), len(scene.Nodes))
	}
	if decoded.HighlightUserID != 2 {
		t.Errorf("highlight = %d, want 2", decoded.HighlightUserID)
	}
}
