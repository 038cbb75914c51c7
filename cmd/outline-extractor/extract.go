// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/KamalKumarMachireddy/PDF-Outline-Extractor-Round-1A/internal/outline"
)

var extractCmd = &cobra.Command{
	Use:   "extract <file.pdf>",
	Short: "Extract the title and heading outline from a single PDF",
	Long: `Extract runs the heuristic pipeline over one document and prints the
result as JSON (default) or YAML. A document with no detectable
structure yields an empty outline with method "none"; an unreadable
document is an error.`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg := extractionConfig(cmd)

	result, err := outline.ExtractOutline(args[0], cfg)
	if err != nil {
		return err
	}

	format, _ := cmd.Flags().GetString("format")
	var data []byte
	switch format {
	case "json", "":
		data, err = json.MarshalIndent(result, "", "  ")
		if err == nil {
			data = append(data, '\n')
		}
	case "yaml":
		data, err = yaml.Marshal(result)
	default:
		return fmt.Errorf("unsupported format %q: use json or yaml", format)
	}
	if err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}

	outPath, _ := cmd.Flags().GetString("output")
	if outPath == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	fmt.Fprintf(os.Stderr, "wrote %s\n", outPath)
	return nil
}

func init() {
	extractCmd.Flags().String("format", "json", "output format: json or yaml")
	extractCmd.Flags().String("output", "", "write to file instead of stdout")
	extractCmd.Flags().Int("page-limit", 0, "maximum pages to read (0 = config default)")
	extractCmd.Flags().Float64("min-confidence", 0, "minimum combined score for a heading (0 = config default)")
	extractCmd.Flags().Bool("debug", false, "include per-candidate scoring detail in the output")

	rootCmd.AddCommand(extractCmd)
}
