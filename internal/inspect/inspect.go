// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package inspect lists catalog contents without touching the filesystem.
package inspect

import (
	"fmt"
	"io"

	"github.com/pdiddy/carver/pkg/types"
)

// PrintOperation implements operation.Operation: it walks the catalog and
// writes one line per group and asset to an injected writer. All formatting
// lives behind the writer; there is no process-global terminal state.
type PrintOperation struct {
	w       io.Writer
	verbose bool
}

// NewPrintOperation returns a listing operation writing to w. Verbose mode
// annotates each asset with its rendition kind.
func NewPrintOperation(w io.Writer, verbose bool) *PrintOperation {
	return &PrintOperation{w: w, verbose: verbose}
}

// Read lists every group and asset in catalog order. It never fails: a
// listing has no side effects to go wrong.
func (p *PrintOperation) Read(c types.Catalog) error {
	for _, group := range c.AssetGroups() {
		fmt.Fprintf(p.w, "%s (%d assets)\n", group.Name, len(group.Assets))
		for _, asset := range group.Assets {
			if p.verbose {
				fmt.Fprintf(p.w, "  %s [%s]\n", asset.FullName, Kind(asset.Rendition))
			} else {
				fmt.Fprintf(p.w, "  %s\n", asset.FullName)
			}
		}
	}
	return nil
}

// Kind names a rendition's capability for display and indexing.
func Kind(r types.Rendition) string {
	switch {
	case r == nil:
		return "missing"
	case r.HasVectorPage():
		return "vector"
	case r.HasRasterImage():
		return "raster"
	default:
		return "missing"
	}
}
