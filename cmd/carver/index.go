package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/carver/internal/catalog"
	"github.com/pdiddy/carver/internal/index"
	"github.com/pdiddy/carver/pkg/types"
)

var indexCmd = &cobra.Command{
	Use:   "index <manifest>",
	Short: "Add a catalog's assets to the lookup index",
	Long: `Index walks the catalog and records every named asset in a local SQLite
database so assets can be located by name across catalogs with 'carver find'.
Re-indexing a catalog replaces its previous entries.`,
	Args: cobra.ExactArgs(1),
	RunE: runIndex,
}

func runIndex(cmd *cobra.Command, args []string) error {
	cat, err := catalog.Load(args[0])
	if err != nil {
		return err
	}

	store, err := index.NewStore(indexConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	n, err := store.Ingest(context.Background(), args[0], cat)
	if err != nil {
		return err
	}
	fmt.Printf("indexed %d asset(s) from %s\n", n, args[0])
	return nil
}

// indexConfig resolves index settings from flags with config-file fallback.
func indexConfig(cmd *cobra.Command) types.IndexConfig {
	indexDir, _ := cmd.Flags().GetString("index-dir")
	if indexDir == "" {
		indexDir = viper.GetString("index.index_dir")
	}
	if indexDir == "" {
		indexDir = "index"
	}
	maxResults, _ := cmd.Flags().GetInt("max-results")

	return types.IndexConfig{
		IndexDir:   indexDir,
		MaxResults: maxResults,
	}
}

func init() {
	indexCmd.Flags().String("index-dir", "", `directory for the index database (default "index")`)

	rootCmd.AddCommand(indexCmd)
}
