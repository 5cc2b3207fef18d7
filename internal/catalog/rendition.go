// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"bytes"
	"fmt"
	"image"
	"os"

	// Raster payload decoders. x/image covers the formats catalog payloads
	// show up in beyond the stdlib set.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

type payloadKind int

const (
	kindUnknown payloadKind = iota
	kindVector
	kindRaster
)

var pdfMagic = []byte("%PDF")

// fileRendition is a rendition whose payload lives in a file. The payload
// kind is sniffed once, on first probe; payload bytes are only read by the
// accessors.
type fileRendition struct {
	path string

	sniffed bool
	kind    payloadKind
}

func (r *fileRendition) HasVectorPage() bool  { return r.payloadKind() == kindVector }
func (r *fileRendition) HasRasterImage() bool { return r.payloadKind() == kindRaster }

// payloadKind classifies the payload by content, not extension: a PDF magic
// header means vector, a registered image format means raster. Unreadable
// or unrecognized payloads stay kindUnknown, so neither capability holds
// and the asset surfaces as missing data downstream.
func (r *fileRendition) payloadKind() payloadKind {
	if r.sniffed {
		return r.kind
	}
	r.sniffed = true

	f, err := os.Open(r.path)
	if err != nil {
		return kindUnknown
	}
	defer f.Close()

	hdr := make([]byte, len(pdfMagic))
	if _, err := f.ReadAt(hdr, 0); err == nil && bytes.Equal(hdr, pdfMagic) {
		r.kind = kindVector
		return r.kind
	}
	if _, err := f.Seek(0, 0); err != nil {
		return kindUnknown
	}
	if _, _, err := image.DecodeConfig(f); err == nil {
		r.kind = kindRaster
	}
	return r.kind
}

// VectorPage returns the raw PDF payload.
func (r *fileRendition) VectorPage() ([]byte, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("reading vector payload: %w", err)
	}
	return data, nil
}

// RasterImage decodes and returns the pixel payload.
func (r *fileRendition) RasterImage() (image.Image, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("opening raster payload: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding raster payload: %w", err)
	}
	return img, nil
}
