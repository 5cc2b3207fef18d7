// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sink

import (
	"bytes"
	"fmt"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// PDFSink writes vector renditions as single-page PDF documents using pdfcpu.
// Selecting page 1 carries the source page's boxes (and with them the
// bounding geometry) into the output document unchanged.
type PDFSink struct {
	conf *model.Configuration
}

// NewPDFSink returns a document sink with relaxed validation, matching the
// tolerance catalog payloads need in practice.
func NewPDFSink() *PDFSink {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return &PDFSink{conf: conf}
}

// PageCount parses pdfData and returns its page count.
func (s *PDFSink) PageCount(pdfData []byte) (int, error) {
	n, err := api.PageCount(bytes.NewReader(pdfData), s.conf)
	if err != nil {
		return 0, fmt.Errorf("reading document: %w", err)
	}
	return n, nil
}

// WriteDocument writes the first page of pdfData to dst.
func (s *PDFSink) WriteDocument(dst string, pdfData []byte) error {
	return writeAtomic(dst, func(f *os.File) error {
		if err := api.Trim(bytes.NewReader(pdfData), f, []string{"1"}, s.conf); err != nil {
			return fmt.Errorf("writing single-page document: %w", err)
		}
		return nil
	})
}
