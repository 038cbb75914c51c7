// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the outline-extractor CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/KamalKumarMachireddy/PDF-Outline-Extractor-Round-1A/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the outline-extractor CLI.
var rootCmd = &cobra.Command{
	Use:   "outline-extractor",
	Short: "Heuristic title and heading extraction from PDF documents",
	Long: `outline-extractor recovers the document title and a leveled heading
outline (H1-H3) from PDF files that carry no bookmarks or tagged
structure. Three heuristics vote on every text line: numbering and
keyword patterns, font prominence, and whitespace isolation.

Each surface is a subcommand: extract a single document, batch a
directory, index extraction results into SQLite, and search the index.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./outline-extractor.yaml or ~/.config/outline-extractor/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("outline-extractor")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "outline-extractor"))
		}
	}

	viper.SetEnvPrefix("OUTLINE_EXTRACTOR")
	viper.AutomaticEnv()

	defaults := types.DefaultExtractionConfig()
	viper.SetDefault("page_limit", defaults.PageLimit)
	viper.SetDefault("min_confidence", defaults.MinConfidence)
	viper.SetDefault("title_pages", defaults.TitlePages)

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// extractionConfig builds the pipeline configuration from config file
// values overridden by any flags the user set. Zero means "use the
// config default" at every layer, matching the flag help text, so an
// explicit --page-limit 0 never reaches Validate as an invalid value.
func extractionConfig(cmd *cobra.Command) types.ExtractionConfig {
	cfg := types.DefaultExtractionConfig()
	if v := viper.GetInt("page_limit"); v > 0 {
		cfg.PageLimit = v
	}
	if v := viper.GetFloat64("min_confidence"); v > 0 {
		cfg.MinConfidence = v
	}
	if v := viper.GetInt("title_pages"); v > 0 {
		cfg.TitlePages = v
	}

	if v, _ := cmd.Flags().GetInt("page-limit"); v > 0 {
		cfg.PageLimit = v
	}
	if v, _ := cmd.Flags().GetFloat64("min-confidence"); v > 0 {
		cfg.MinConfidence = v
	}
	if cmd.Flags().Changed("debug") {
		cfg.Debug, _ = cmd.Flags().GetBool("debug")
	}
	return cfg
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
