// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import "errors"

// Typed extraction errors. Per-asset errors are matched with errors.Is by
// reporters and tests; only ErrOutputNotDirectory (and root creation
// failures) terminate a run.
var (
	// ErrOutputNotDirectory means the output root exists but is not a
	// directory. Raised before any asset I/O.
	ErrOutputNotDirectory = errors.New("output path is not a directory")

	// ErrRenditionMissingData means a rendition exposes neither vector nor
	// raster content.
	ErrRenditionMissingData = errors.New("rendition has no image data")

	// ErrCannotSaveImage means the raster pixel buffer could not be
	// retrieved or encoded.
	ErrCannotSaveImage = errors.New("cannot save image")

	// ErrCannotCreatePDFDocument means the vector payload has zero pages or
	// the output document could not be constructed.
	ErrCannotCreatePDFDocument = errors.New("cannot create PDF document")
)
