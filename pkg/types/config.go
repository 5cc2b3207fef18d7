// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ExtractionConfig holds settings for the extraction stage.
type ExtractionConfig struct {
	// OutputDir is the root directory the extracted tree is written under.
	// A leading "~/" is expanded when the operation is constructed.
	OutputDir string `json:"output_dir" yaml:"output_dir"`
}

// IndexConfig holds settings for the asset lookup index.
type IndexConfig struct {
	// IndexDir is the directory holding the SQLite index database.
	IndexDir string `json:"index_dir" yaml:"index_dir"`

	// MaxResults is the default maximum number of lookup results (default 50).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// InspectionConfig holds settings for the catalog listing operation.
type InspectionConfig struct {
	// Verbose adds rendition kind and payload detail to each listed asset.
	Verbose bool `json:"verbose" yaml:"verbose"`
}

// Config groups all stage configurations for the tool.
type Config struct {
	Extraction ExtractionConfig `json:"extraction" yaml:"extraction"`
	Index      IndexConfig      `json:"index" yaml:"index"`
	Inspection InspectionConfig `json:"inspection" yaml:"inspection"`
}
