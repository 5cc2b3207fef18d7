// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report carries per-asset extraction outcomes to the caller.
// The engine never formats terminal output itself; it talks to a Reporter
// and the CLI decides how the run is rendered.
package report

import (
	"fmt"
	"io"
)

// Reporter receives per-asset and per-group outcomes during an extraction
// pass. Extraction is a single-threaded batch job, so implementations are
// not required to be safe for concurrent use.
type Reporter interface {
	// AssetExtracted records a successfully written file.
	AssetExtracted(group, file string)

	// AssetFailed records a per-asset failure. The error is one of the typed
	// extraction errors, possibly wrapped with detail.
	AssetFailed(group, file string, err error)

	// GroupSkipped records a whole group skipped because its target
	// directory could not be created.
	GroupSkipped(group string, err error)
}

// Summary tallies the outcome of one extraction run.
type Summary struct {
	Extracted int
	Failed    int
	Skipped   int
}

// Total returns the number of assets accounted for.
func (s Summary) Total() int {
	return s.Extracted + s.Failed + s.Skipped
}

// HasFailures reports whether any asset failed or a group was skipped.
func (s Summary) HasFailures() bool {
	return s.Failed > 0 || s.Skipped > 0
}

// WriterReporter prints one status line per asset to an io.Writer and keeps
// a running tally.
type WriterReporter struct {
	w       io.Writer
	summary Summary
}

// NewWriterReporter returns a reporter writing progress lines to w.
func NewWriterReporter(w io.Writer) *WriterReporter {
	return &WriterReporter{w: w}
}

func (r *WriterReporter) AssetExtracted(group, file string) {
	r.summary.Extracted++
	fmt.Fprintf(r.w, "extracted: %s/%s\n", group, file)
}

func (r *WriterReporter) AssetFailed(group, file string, err error) {
	r.summary.Failed++
	fmt.Fprintf(r.w, "failed:    %s/%s (%v)\n", group, file, err)
}

func (r *WriterReporter) GroupSkipped(group string, err error) {
	r.summary.Skipped++
	fmt.Fprintf(r.w, "skipped:   %s (%v)\n", group, err)
}

// Summary returns the tally accumulated so far.
func (r *WriterReporter) Summary() Summary {
	return r.summary
}
