package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/carver/internal/catalog"
	"github.com/pdiddy/carver/internal/extract"
	"github.com/pdiddy/carver/internal/inspect"
	"github.com/pdiddy/carver/internal/operation"
	"github.com/pdiddy/carver/internal/report"
	"github.com/pdiddy/carver/internal/sink"
)

var extractCmd = &cobra.Command{
	Use:   "extract <manifest>",
	Short: "Extract all image assets from a catalog to a directory tree",
	Long: `Extract walks every asset group in the catalog and writes one file per
named asset under the output root. Group names containing '/' become nested
folders; each file is named by the last path component of its asset's name.

Raster renditions are written as PNG, vector renditions as single-page PDF.
A failing asset is reported and skipped; the run only aborts if the output
root exists and is not a directory.`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func runExtract(cmd *cobra.Command, args []string) error {
	cat, err := catalog.Load(args[0])
	if err != nil {
		return err
	}

	outputDir, _ := cmd.Flags().GetString("output")
	if outputDir == "" {
		outputDir = viper.GetString("extraction.output_dir")
	}
	if outputDir == "" {
		outputDir = "extracted"
	}

	reporter := report.NewWriterReporter(os.Stdout)
	var ops []operation.Operation
	if list, _ := cmd.Flags().GetBool("list"); list {
		ops = append(ops, inspect.NewPrintOperation(os.Stdout, false))
	}
	ops = append(ops, extract.New(outputDir, sink.NewPDFSink(), sink.NewPNGSink(), reporter))

	if err := operation.NewCompound(ops...).Read(cat); err != nil {
		return err
	}

	summary := reporter.Summary()
	report.RenderSummary(os.Stdout, summary)
	if summary.HasFailures() {
		return fmt.Errorf("%d asset(s) failed, %d group(s) skipped", summary.Failed, summary.Skipped)
	}
	return nil
}

func init() {
	extractCmd.Flags().StringP("output", "o", "", `output root directory (default "extracted")`)
	extractCmd.Flags().Bool("list", false, "list catalog contents before extracting")

	rootCmd.AddCommand(extractCmd)
}
