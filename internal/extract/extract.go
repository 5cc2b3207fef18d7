// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract implements the extraction operation: a single synchronous
// pass over a catalog that writes every named asset to a directory tree,
// reconstructing the folder hierarchy encoded in group names and choosing
// the output encoding per rendition.
package extract

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/pdiddy/carver/internal/report"
	"github.com/pdiddy/carver/internal/sink"
	"github.com/pdiddy/carver/pkg/types"
)

// Operation extracts all assets of a catalog under a single output root.
// It implements operation.Operation. Per-asset failures are absorbed and
// surfaced through the reporter; only a root validation or creation failure
// terminates a run.
type Operation struct {
	outputRoot string
	docs       sink.DocumentSink
	images     sink.ImageSink
	reporter   report.Reporter
}

// New builds an extraction operation writing under outputPath. A leading
// "~/" in outputPath is expanded once, here.
func New(outputPath string, docs sink.DocumentSink, images sink.ImageSink, r report.Reporter) *Operation {
	return &Operation{
		outputRoot: expandTilde(outputPath),
		docs:       docs,
		images:     images,
		reporter:   r,
	}
}

// Read walks every asset group in catalog order and serializes each asset.
// The returned error is non-nil only for the fatal output-root cases; a run
// with per-asset failures still returns nil, with the failures reported.
func (o *Operation) Read(c types.Catalog) error {
	info, err := os.Stat(o.outputRoot)
	switch {
	case err == nil:
		if !info.IsDir() {
			return fmt.Errorf("%w: %s", ErrOutputNotDirectory, o.outputRoot)
		}
	case os.IsNotExist(err):
		if mkErr := os.MkdirAll(o.outputRoot, 0o755); mkErr != nil {
			return fmt.Errorf("creating output root: %w", mkErr)
		}
	default:
		return fmt.Errorf("checking output root: %w", err)
	}

	for _, group := range c.AssetGroups() {
		targetDir, err := o.groupDir(group.Name)
		if err != nil {
			// Writing the group's assets into the un-nested root would
			// silently misplace them, so the whole group is skipped.
			o.reporter.GroupSkipped(group.Name, err)
			continue
		}
		for _, asset := range group.Assets {
			fileName := path.Base(asset.FullName)
			dst := filepath.Join(targetDir, fileName)
			if err := o.extractAsset(asset, dst); err != nil {
				o.reporter.AssetFailed(group.Name, fileName, err)
				continue
			}
			o.reporter.AssetExtracted(group.Name, fileName)
		}
	}
	return nil
}

// groupDir resolves and creates the target directory for a group. All
// '/'-components of the group name except the last are folder nesting; a
// name without '/' maps to the output root itself. Creation is idempotent.
func (o *Operation) groupDir(name string) (string, error) {
	parts := strings.Split(name, "/")
	if len(parts) < 2 {
		return o.outputRoot, nil
	}
	dir := filepath.Join(o.outputRoot, filepath.Join(parts[:len(parts)-1]...))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating group directory: %w", err)
	}
	return dir, nil
}

// extractAsset dispatches on the rendition's capability, vector first.
func (o *Operation) extractAsset(asset types.NamedAsset, dst string) error {
	r := asset.Rendition
	switch {
	case r == nil:
		return ErrRenditionMissingData
	case r.HasVectorPage():
		return o.extractVector(r, dst)
	case r.HasRasterImage():
		return o.extractRaster(r, dst)
	default:
		return ErrRenditionMissingData
	}
}

func (o *Operation) extractVector(r types.Rendition, dst string) error {
	data, err := r.VectorPage()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCannotCreatePDFDocument, err)
	}
	n, err := o.docs.PageCount(data)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCannotCreatePDFDocument, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: document has no pages", ErrCannotCreatePDFDocument)
	}
	if err := o.docs.WriteDocument(dst, data); err != nil {
		return fmt.Errorf("%w: %v", ErrCannotCreatePDFDocument, err)
	}
	return nil
}

func (o *Operation) extractRaster(r types.Rendition, dst string) error {
	img, err := r.RasterImage()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCannotSaveImage, err)
	}
	if err := o.images.WriteImage(dst, img); err != nil {
		return fmt.Errorf("%w: %v", ErrCannotSaveImage, err)
	}
	return nil
}

// expandTilde resolves a leading "~/" against the current user's home
// directory. Unexpandable paths are returned unchanged.
func expandTilde(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	if p == "~" {
		return home
	}
	return filepath.Join(home, p[2:])
}
