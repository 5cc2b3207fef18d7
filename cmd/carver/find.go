package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/carver/internal/index"
)

var findCmd = &cobra.Command{
	Use:   "find <pattern>",
	Short: "Locate indexed assets by name",
	Long: `Find searches the lookup index for assets whose file name matches the
pattern. '*' acts as a wildcard; a pattern without wildcards matches as a
substring. Catalogs must have been indexed with 'carver index' first.`,
	Args: cobra.ExactArgs(1),
	RunE: runFind,
}

func runFind(cmd *cobra.Command, args []string) error {
	store, err := index.NewStore(indexConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := store.Find(context.Background(), args[0])
	if err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	if len(entries) == 0 {
		fmt.Println("no matching assets")
		return nil
	}
	for _, e := range entries {
		fmt.Printf("%s\t%s/%s\t[%s]\t%s\n", e.FileName, e.Group, e.FullName, e.Kind, e.Catalog)
	}
	return nil
}

func init() {
	findCmd.Flags().String("index-dir", "", `directory for the index database (default "index")`)
	findCmd.Flags().Int("max-results", 0, "maximum number of results (default 50)")
	findCmd.Flags().Bool("json", false, "emit results as JSON")

	rootCmd.AddCommand(findCmd)
}
