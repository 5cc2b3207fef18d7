package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/carver/internal/catalog"
	"github.com/pdiddy/carver/internal/inspect"
)

var listCmd = &cobra.Command{
	Use:   "list <manifest>",
	Short: "List the groups and assets of a catalog",
	Long: `List prints every asset group and named asset in catalog order without
writing any files. With --verbose each asset is annotated with its rendition
kind (raster, vector, or missing).`,
	Args: cobra.ExactArgs(1),
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	cat, err := catalog.Load(args[0])
	if err != nil {
		return err
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	return inspect.NewPrintOperation(os.Stdout, verbose).Read(cat)
}

func init() {
	listCmd.Flags().BoolP("verbose", "v", false, "annotate assets with rendition kind")

	rootCmd.AddCommand(listCmd)
}
