// CineGraph - Movie Recommendation Engine and Graph Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package viz

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"
)

// ExportJSON writes the positioned scene as indented JSON for downstream
// tooling that wants coordinates without the HTML wrapper.
func ExportJSON(w io.Writer, scene Scene) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(scene); err != nil {
		return fmt.Errorf("encode scene: %w", err)
	}
	return nil
}
