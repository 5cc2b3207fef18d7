// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "image"

// Rendition is the opaque per-asset image payload. A well-formed rendition
// carries either vector page data or raster pixel data, never both; the
// capability probes let callers decide the output encoding before paying the
// cost of loading the payload.
type Rendition interface {
	// HasVectorPage reports whether the rendition carries vector page data.
	HasVectorPage() bool

	// HasRasterImage reports whether the rendition carries raster pixel data.
	HasRasterImage() bool

	// VectorPage returns the raw PDF data for a vector rendition.
	VectorPage() ([]byte, error)

	// RasterImage returns the decoded pixel data for a raster rendition.
	RasterImage() (image.Image, error)
}

// NamedAsset is one concrete image variant: a logical name plus a handle to
// its rendition. FullName may itself contain '/' segments (scale and idiom
// suffixes); only its last path component names the output file.
type NamedAsset struct {
	FullName  string
	Rendition Rendition
}

// AssetGroup is a named collection of related image variants. Name uses '/'
// as a hierarchy delimiter: all components except the last represent catalog
// folder nesting.
type AssetGroup struct {
	Name   string
	Assets []NamedAsset
}

// Catalog is the parsed in-memory representation of a compiled asset bundle.
// Implementations own their renditions; operations only borrow them for the
// duration of one pass.
type Catalog interface {
	// AssetGroups returns the catalog's groups in native order. The order is
	// whatever the underlying catalog yields and is not guaranteed stable
	// across catalog versions.
	AssetGroups() []AssetGroup
}
