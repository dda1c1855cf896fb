// CineGraph - Movie Recommendation Engine and Graph Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package viz

import (
	"fmt"
	"html/template"
	"io"
	"os"

	"github.com/tomtom215/cinegraph/internal/graph"
	"github.com/tomtom215/cinegraph/internal/logging"
)

// Node fill colors, matching the classic bipartite rendering: users sky
// blue, movies light green, the highlighted target user red.
const (
	colorUser      = "#87ceeb"
	colorMovie     = "#90ee90"
	colorHighlight = "#e74c3c"
)

// canvasSize is the SVG viewport edge length in pixels; margin keeps node
// labels inside the viewport.
const (
	canvasSize = 900.0
	margin     = 60.0
)

// svgNode is a scene node projected to pixel coordinates for the template.
type svgNode struct {
	X, Y   float64
	Radius float64
	Fill   string
	Label  string
	Title  string
}

// svgEdge is a scene edge projected to pixel coordinates.
type svgEdge struct {
	X1, Y1, X2, Y2 float64
	Title          string
}

// templateData is the root object handed to the HTML template.
type templateData struct {
	Nodes []svgNode
	Edges []svgEdge
	Users int
	Count int
}

var pageTemplate = template.Must(template.New("graph").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>CineGraph Rating Graph</title>
<style>
  body { font-family: sans-serif; background: #fafafa; margin: 2em; }
  .legend { margin-bottom: 1em; font-size: 0.9em; color: #333; }
  .legend span { display: inline-block; margin-right: 1.5em; }
  .swatch { display: inline-block; width: 0.8em; height: 0.8em; border-radius: 50%; margin-right: 0.3em; vertical-align: middle; }
  svg { background: #fff; border: 1px solid #ddd; }
  text { font-size: 10px; fill: #333; }
</style>
</head>
<body>
<h1>Rating Graph</h1>
<p class="legend">
  <span><i class="swatch" style="background:#87ceeb"></i>user</span>
  <span><i class="swatch" style="background:#90ee90"></i>movie</span>
  <span><i class="swatch" style="background:#e74c3c"></i>selected user</span>
  <span>{{.Count}} nodes</span>
</p>
<svg width="900" height="900" viewBox="0 0 900 900">
{{- range .Edges}}
  <line x1="{{printf "%.1f" .X1}}" y1="{{printf "%.1f" .Y1}}" x2="{{printf "%.1f" .X2}}" y2="{{printf "%.1f" .Y2}}" stroke="#c8c8c8" stroke-width="1"><title>{{.Title}}</title></line>
{{- end}}
{{- range .Nodes}}
  <circle cx="{{printf "%.1f" .X}}" cy="{{printf "%.1f" .Y}}" r="{{printf "%.1f" .Radius}}" fill="{{.Fill}}" stroke="#555" stroke-width="0.5"><title>{{.Title}}</title></circle>
  <text x="{{printf "%.1f" .X}}" y="{{printf "%.1f" .Y}}" dx="8" dy="3">{{.Label}}</text>
{{- end}}
</svg>
</body>
</html>
`))

// Render writes the scene as a self-contained HTML page with an inline SVG.
// The renderer consumes only the positioned scene; it never mutates or
// re-reads engine state.
func Render(w io.Writer, scene Scene) error {
	data := templateData{Count: len(scene.Nodes)}

	pos := make(map[graph.NodeID]PositionedNode, len(scene.Nodes))
	for _, n := range scene.Nodes {
		pos[n.ID] = n
	}

	for _, e := range scene.Edges {
		from, okF := pos[e.From]
		to, okT := pos[e.To]
		if !okF || !okT {
			continue
		}
		data.Edges = append(data.Edges, svgEdge{
			X1: toPixel(from.X), Y1: toPixel(from.Y),
			X2: toPixel(to.X), Y2: toPixel(to.Y),
			Title: fmt.Sprintf("%s - %s: %.1f", from.Label, to.Label, e.Weight),
		})
	}

	highlight := graph.UserNodeID(scene.HighlightUserID)
	for _, n := range scene.Nodes {
		sn := svgNode{
			X:      toPixel(n.X),
			Y:      toPixel(n.Y),
			Radius: 10,
			Label:  n.Label,
			Title:  n.Label,
		}
		switch {
		case scene.HighlightUserID >= 0 && n.ID == highlight:
			sn.Fill = colorHighlight
			sn.Radius = 13
		case n.Kind == "user":
			sn.Fill = colorUser
			data.Users++
		default:
			sn.Fill = colorMovie
			sn.Radius = 8
			if n.Genre != "" {
				sn.Title = n.Label + " (" + n.Genre + ")"
			}
		}
		data.Nodes = append(data.Nodes, sn)
	}

	if err := pageTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("render graph page: %w", err)
	}
	return nil
}

// WriteFile renders the scene to an HTML artifact at path.
func WriteFile(path string, scene Scene) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			logging.Warn().Err(closeErr).Str("path", path).Msg("error closing output file")
		}
	}()

	if err := Render(f, scene); err != nil {
		return err
	}

	logging.Info().
		Str("path", path).
		Int("nodes", len(scene.Nodes)).
		Int("edges", len(scene.Edges)).
		Msg("graph rendered")
	return nil
}

// toPixel maps a [0,1] coordinate into the SVG viewport, inset by margin.
func toPixel(v float64) float64 {
	return margin + v*(canvasSize-2*margin)
}
