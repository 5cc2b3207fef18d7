// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package sink hides the concrete encoding libraries behind narrow write
// capabilities. The extraction engine dispatches on rendition kind and never
// sees pdfcpu or image/png directly.
package sink

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
)

// DocumentSink serializes vector renditions to single-page documents.
type DocumentSink interface {
	// PageCount returns the number of pages in the raw PDF data.
	PageCount(pdfData []byte) (int, error)

	// WriteDocument writes a document containing only the first page of
	// pdfData to dst, preserving that page's geometry. The write is atomic:
	// dst either holds the complete document or is untouched.
	WriteDocument(dst string, pdfData []byte) error
}

// ImageSink serializes raster renditions to a lossless container.
type ImageSink interface {
	// WriteImage encodes img losslessly and writes it to dst atomically.
	WriteImage(dst string, img image.Image) error
}

// writeAtomic writes the output produced by fill to dst via a temporary file
// in the same directory, renamed into place on success.
func writeAtomic(dst string, fill func(f *os.File) error) error {
	tmp, err := os.CreateTemp(filepath.Dir(dst), "."+filepath.Base(dst)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if err := fill(tmp); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, dst); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming into place: %w", err)
	}
	return nil
}
