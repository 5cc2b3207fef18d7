// Package main is the entry point for the carver CLI: a batch tool that
// lists, indexes, and extracts named image assets from parsed asset
// catalogs, reconstructing the folder hierarchy encoded in asset names.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the carver CLI.
var rootCmd = &cobra.Command{
	Use:   "carver",
	Short: "Extract image assets from asset catalogs",
	Long: `carver walks a parsed asset catalog and writes every named image asset
to a directory tree, mapping slash-delimited group names to nested folders
and choosing the output encoding per asset: raster renditions become PNG
files, vector renditions become single-page PDF documents.

Catalogs are described by YAML manifests referencing payload files. Each
operation is one read-only pass over the catalog; a failing asset is
reported and never aborts the run.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./carver.yaml or ~/.config/carver/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("carver")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "carver"))
		}
	}

	viper.SetEnvPrefix("CARVER")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
