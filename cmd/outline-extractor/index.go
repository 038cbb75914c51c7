// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KamalKumarMachireddy/PDF-Outline-Extractor-Round-1A/internal/index"
	"github.com/KamalKumarMachireddy/PDF-Outline-Extractor-Round-1A/pkg/types"
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Ingest outline JSON files into the search index",
	Long: `Index reads *_outline.json files from a results directory into a
SQLite database with FTS5 over heading text. Files unchanged since the
last run are skipped.`,
	RunE: runIndex,
}

func runIndex(cmd *cobra.Command, args []string) error {
	resultsDir, _ := cmd.Flags().GetString("results")

	store, err := index.NewStore(indexConfigFromFlags(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	summary, err := store.Ingest(context.Background(), resultsDir, os.Stdout)
	if err != nil {
		return err
	}
	if summary.Failed > 0 {
		return fmt.Errorf("%d outline file(s) failed indexing", summary.Failed)
	}
	return nil
}

func indexConfigFromFlags(cmd *cobra.Command) types.IndexConfig {
	dbPath, _ := cmd.Flags().GetString("db")
	maxResults, _ := cmd.Flags().GetInt("max-results")
	return types.IndexConfig{DBPath: dbPath, MaxResults: maxResults}
}

func init() {
	indexCmd.Flags().String("results", "output", "directory containing *_outline.json files")
	indexCmd.Flags().String("db", "outlines.db", "SQLite database path")
	indexCmd.Flags().Int("max-results", 20, "default maximum search results")

	rootCmd.AddCommand(indexCmd)
}
