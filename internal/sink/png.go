// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sink

import (
	"fmt"
	"image"
	"image/png"
	"os"
)

// PNGSink writes raster renditions as PNG files. PNG is the lossless
// container every extracted pixel buffer lands in regardless of the payload's
// original compression.
type PNGSink struct{}

// NewPNGSink returns an image sink encoding to PNG.
func NewPNGSink() *PNGSink {
	return &PNGSink{}
}

// WriteImage encodes img to dst.
func (s *PNGSink) WriteImage(dst string, img image.Image) error {
	return writeAtomic(dst, func(f *os.File) error {
		if err := png.Encode(f, img); err != nil {
			return fmt.Errorf("encoding png: %w", err)
		}
		return nil
	})
}
