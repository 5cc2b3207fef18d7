// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeManifest writes content plus any payload files into a temp dir and
// returns the manifest path.
func writeManifest(t *testing.T, content string, payloads map[string][]byte) string {
	t.Helper()
	dir := t.TempDir()
	for name, data := range payloads {
		p := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, data, 0o644); err != nil {
			t.Fatal(err)
		}
	}
	path := filepath.Join(dir, "catalog.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func pngPayload(t *testing.T) []byte {
	t.Helper()
	var b bytes.Buffer
	if err := png.Encode(&b, image.NewNRGBA(image.Rect(0, 0, 2, 2))); err != nil {
		t.Fatal(err)
	}
	return b.Bytes()
}

const sampleManifest = `
groups:
  - name: devices/mix/d_iphone_ipad_mac
    assets:
      - name: d_iphone_ipad_mac@2x.png
        file: payloads/pad.png
  - name: shapes
    assets:
      - name: arrow.pdf
        file: payloads/arrow.pdf
`

func TestLoad(t *testing.T) {
	path := writeManifest(t, sampleManifest, map[string][]byte{
		"payloads/pad.png":   pngPayload(t),
		"payloads/arrow.pdf": []byte("%PDF-1.4\nfake"),
	})

	cat, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	groups := cat.AssetGroups()
	if len(groups) != 2 {
		t.Fatalf("groups = %d, want 2", len(groups))
	}
	if groups[0].Name != "devices/mix/d_iphone_ipad_mac" || groups[1].Name != "shapes" {
		t.Errorf("group order/names wrong: %q, %q", groups[0].Name, groups[1].Name)
	}

	raster := groups[0].Assets[0].Rendition
	if !raster.HasRasterImage() || raster.HasVectorPage() {
		t.Error("png payload not classified as raster")
	}
	img, err := raster.RasterImage()
	if err != nil {
		t.Fatalf("RasterImage: %v", err)
	}
	if img.Bounds().Dx() != 2 {
		t.Errorf("decoded width = %d, want 2", img.Bounds().Dx())
	}

	vector := groups[1].Assets[0].Rendition
	if !vector.HasVectorPage() || vector.HasRasterImage() {
		t.Error("pdf payload not classified as vector")
	}
	data, err := vector.VectorPage()
	if err != nil || !strings.HasPrefix(string(data), "%PDF") {
		t.Errorf("VectorPage = %q, %v", data, err)
	}
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name     string
		manifest string
		wantErr  string
	}{
		{
			name:     "missing group name",
			manifest: "groups:\n  - assets:\n      - name: a.png\n        file: a.png\n",
			wantErr:  "missing name",
		},
		{
			name:     "missing asset name",
			manifest: "groups:\n  - name: icons\n    assets:\n      - file: a.png\n",
			wantErr:  "missing name",
		},
		{
			name:     "missing asset file",
			manifest: "groups:\n  - name: icons\n    assets:\n      - name: a.png\n",
			wantErr:  "missing file",
		},
		{
			name:     "not yaml",
			manifest: "{{{",
			wantErr:  "parsing manifest",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeManifest(t, tt.manifest, nil)
			_, err := Load(path)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Load error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadMissingManifest(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load on missing file succeeded")
	}
}

func TestUnknownPayloadHasNoCapability(t *testing.T) {
	path := writeManifest(t, `
groups:
  - name: icons
    assets:
      - name: blob.bin
        file: payloads/blob.bin
      - name: ghost.png
        file: payloads/missing.png
`, map[string][]byte{
		"payloads/blob.bin": []byte("neither pdf nor image"),
	})

	cat, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	for _, asset := range cat.AssetGroups()[0].Assets {
		r := asset.Rendition
		if r.HasVectorPage() || r.HasRasterImage() {
			t.Errorf("asset %q: unknown payload claims a capability", asset.FullName)
		}
	}
}
