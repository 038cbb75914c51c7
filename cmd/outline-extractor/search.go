// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KamalKumarMachireddy/PDF-Outline-Extractor-Round-1A/internal/index"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search indexed headings with full-text search",
	Long: `Search runs an FTS5 query over the heading index and prints matches
in relevance order with their document, level, and page.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	store, err := index.NewStore(indexConfigFromFlags(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	limit, _ := cmd.Flags().GetInt("limit")
	matches, err := store.Search(context.Background(), strings.Join(args, " "), limit)
	if err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(matches)
	}

	if len(matches) == 0 {
		fmt.Println("No results found.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-4s  %-5s  %-50s  %-25s  %s\n",
		"Rank", "Level", "Heading", "Document", "Page")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 95))
	for i, m := range matches {
		text := m.Text
		if len(text) > 50 {
			text = text[:47] + "..."
		}
		doc := m.DocumentID
		if len(doc) > 25 {
			doc = doc[:22] + "..."
		}
		fmt.Fprintf(os.Stdout, "%-4d  %-5s  %-50s  %-25s  %d\n",
			i+1, m.Level, text, doc, m.Page)
	}
	fmt.Fprintf(os.Stdout, "\n%d results\n", len(matches))
	return nil
}

func init() {
	searchCmd.Flags().String("db", "outlines.db", "SQLite database path")
	searchCmd.Flags().Int("max-results", 20, "default maximum search results")
	searchCmd.Flags().Int("limit", 0, "maximum results (0 = use default)")
	searchCmd.Flags().Bool("json", false, "output results as JSON")

	rootCmd.AddCommand(searchCmd)
}
