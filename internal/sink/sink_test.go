// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sink

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// buildPDF assembles a minimal PDF with one page per media box, computing
// xref offsets as it goes so the result is structurally valid.
func buildPDF(t *testing.T, boxes [][4]int) []byte {
	t.Helper()

	var b bytes.Buffer
	b.WriteString("%PDF-1.4\n")

	var offsets []int
	addObj := func(body string) {
		offsets = append(offsets, b.Len())
		fmt.Fprintf(&b, "%d 0 obj\n%s\nendobj\n", len(offsets), body)
	}

	kids := make([]string, len(boxes))
	for i := range boxes {
		kids[i] = fmt.Sprintf("%d 0 R", 3+i)
	}
	addObj("<< /Type /Catalog /Pages 2 0 R >>")
	addObj(fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>",
		strings.Join(kids, " "), len(boxes)))
	for _, bx := range boxes {
		addObj(fmt.Sprintf("<< /Type /Page /Parent 2 0 R /MediaBox [%d %d %d %d] /Resources << >> >>",
			bx[0], bx[1], bx[2], bx[3]))
	}

	xref := b.Len()
	fmt.Fprintf(&b, "xref\n0 %d\n", len(offsets)+1)
	b.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&b, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&b, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n",
		len(offsets)+1, xref)
	return b.Bytes()
}

func testImage(w, h int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{R: uint8(x * 16), G: uint8(y * 16), B: 0x80, A: 0xff})
		}
	}
	return img
}

func TestPNGSinkRoundTrip(t *testing.T) {
	dir := t.TempDir()
	dst := filepath.Join(dir, "icon.png")

	if err := NewPNGSink().WriteImage(dst, testImage(8, 4)); err != nil {
		t.Fatalf("WriteImage: %v", err)
	}

	f, err := os.Open(dst)
	if err != nil {
		t.Fatalf("opening output: %v", err)
	}
	defer f.Close()
	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decoding output: %v", err)
	}
	if got := decoded.Bounds(); got.Dx() != 8 || got.Dy() != 4 {
		t.Errorf("bounds = %v, want 8x4", got)
	}
}

func TestPNGSinkLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	dst := filepath.Join(dir, "icon.png")
	if err := NewPNGSink().WriteImage(dst, testImage(2, 2)); err != nil {
		t.Fatalf("WriteImage: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "icon.png" {
		t.Errorf("directory contents = %v, want only icon.png", entries)
	}
}

func TestPDFSinkPageCount(t *testing.T) {
	data := buildPDF(t, [][4]int{{0, 0, 612, 792}, {0, 0, 100, 100}})
	n, err := NewPDFSink().PageCount(data)
	if err != nil {
		t.Fatalf("PageCount: %v", err)
	}
	if n != 2 {
		t.Errorf("PageCount = %d, want 2", n)
	}
}

func TestPDFSinkPageCountInvalid(t *testing.T) {
	if _, err := NewPDFSink().PageCount([]byte("not a pdf")); err == nil {
		t.Error("PageCount on garbage succeeded")
	}
}

func TestPDFSinkWritesFirstPageOnly(t *testing.T) {
	s := NewPDFSink()
	data := buildPDF(t, [][4]int{{0, 0, 640, 480}, {0, 0, 100, 100}, {0, 0, 50, 50}})

	dir := t.TempDir()
	dst := filepath.Join(dir, "shape.pdf")
	if err := s.WriteDocument(dst, data); err != nil {
		t.Fatalf("WriteDocument: %v", err)
	}

	out, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	n, err := s.PageCount(out)
	if err != nil {
		t.Fatalf("PageCount on output: %v", err)
	}
	if n != 1 {
		t.Errorf("output page count = %d, want 1", n)
	}
}

func TestPDFSinkPreservesPageGeometry(t *testing.T) {
	s := NewPDFSink()
	data := buildPDF(t, [][4]int{{0, 0, 640, 480}, {0, 0, 100, 100}})

	dir := t.TempDir()
	dst := filepath.Join(dir, "shape.pdf")
	if err := s.WriteDocument(dst, data); err != nil {
		t.Fatalf("WriteDocument: %v", err)
	}

	// The single output page must carry the first source page's media box.
	dims, err := api.PageDimsFile(dst)
	if err != nil {
		t.Fatalf("PageDimsFile: %v", err)
	}
	if len(dims) != 1 {
		t.Fatalf("output has %d pages, want 1", len(dims))
	}
	if dims[0].Width != 640 || dims[0].Height != 480 {
		t.Errorf("output page geometry = %gx%g, want 640x480", dims[0].Width, dims[0].Height)
	}
}

func TestPDFSinkRejectsGarbage(t *testing.T) {
	dir := t.TempDir()
	dst := filepath.Join(dir, "bad.pdf")
	if err := NewPDFSink().WriteDocument(dst, []byte("not a pdf")); err == nil {
		t.Fatal("WriteDocument on garbage succeeded")
	}
	if _, err := os.Stat(dst); !os.IsNotExist(err) {
		t.Errorf("destination exists after failed write (stat err: %v)", err)
	}
}
