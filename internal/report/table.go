// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
)

// RenderSummary writes the run tally to w. When w is a terminal the tally is
// rendered as a table; otherwise a single machine-friendly line is printed.
func RenderSummary(w io.Writer, s Summary) {
	if !writerIsTerminal(w) {
		fmt.Fprintf(w, "summary: %d extracted, %d failed, %d skipped (total: %d)\n",
			s.Extracted, s.Failed, s.Skipped, s.Total())
		return
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Extracted", "Failed", "Skipped", "Total"})
	tw.AppendRow(table.Row{s.Extracted, s.Failed, s.Skipped, s.Total()})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
	})
	tw.Render()
}

func writerIsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
