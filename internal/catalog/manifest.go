// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog loads asset catalogs from YAML manifests. A manifest is
// the interchange form of a parsed catalog: it lists groups and named assets
// with references to payload files relative to the manifest location.
// Parsing compiled catalog binaries is a separate concern and happens
// upstream of this package.
package catalog

import (
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/carver/pkg/types"
)

// manifest mirrors the on-disk YAML structure.
//
//	groups:
//	  - name: devices/mix/d_iphone_ipad_mac
//	    assets:
//	      - name: d_iphone_ipad_mac@2x.png
//	        file: payloads/d_iphone_ipad_mac@2x.png
type manifest struct {
	Groups []manifestGroup `yaml:"groups"`
}

type manifestGroup struct {
	Name   string          `yaml:"name"`
	Assets []manifestAsset `yaml:"assets"`
}

type manifestAsset struct {
	Name string `yaml:"name"`
	File string `yaml:"file"`
}

// Manifest is a types.Catalog backed by a YAML manifest and payload files.
type Manifest struct {
	groups []types.AssetGroup
}

// Load reads and validates the manifest at path. Payload files are resolved
// relative to the manifest's directory and opened lazily, when a rendition
// is probed or read.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}

	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}

	baseDir := filepath.Dir(path)
	groups := make([]types.AssetGroup, 0, len(m.Groups))
	for gi, g := range m.Groups {
		if g.Name == "" {
			return nil, fmt.Errorf("group %d: missing name", gi)
		}
		assets := make([]types.NamedAsset, 0, len(g.Assets))
		for ai, a := range g.Assets {
			if a.Name == "" {
				return nil, fmt.Errorf("group %q: asset %d: missing name", g.Name, ai)
			}
			if a.File == "" {
				return nil, fmt.Errorf("group %q: asset %q: missing file", g.Name, a.Name)
			}
			assets = append(assets, types.NamedAsset{
				FullName:  a.Name,
				Rendition: &fileRendition{path: filepath.Join(baseDir, a.File)},
			})
		}
		groups = append(groups, types.AssetGroup{Name: g.Name, Assets: assets})
	}

	return &Manifest{groups: groups}, nil
}

// AssetGroups returns the manifest's groups in declaration order.
func (m *Manifest) AssetGroups() []types.AssetGroup {
	return m.groups
}
