// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KamalKumarMachireddy/PDF-Outline-Extractor-Round-1A/internal/batch"
	"github.com/KamalKumarMachireddy/PDF-Outline-Extractor-Round-1A/pkg/types"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Extract outlines for every PDF in a directory",
	Long: `Batch walks the input directory, writes one <stem>_outline.json per
PDF to the output directory, and finishes with aggregate reports
(batch_report.json, batch_report.html, batch_summary.csv). A document
that fails is recorded and the run continues; the command exits
non-zero when any document failed.`,
	RunE: runBatch,
}

func runBatch(cmd *cobra.Command, args []string) error {
	inputDir, _ := cmd.Flags().GetString("input")
	outputDir, _ := cmd.Flags().GetString("output")

	cfg := types.BatchConfig{
		InputDir:   inputDir,
		OutputDir:  outputDir,
		Extraction: extractionConfig(cmd),
	}

	summary, _, err := batch.Run(cfg, os.Stdout)
	if err != nil {
		return err
	}
	if summary.HasFailures() {
		return fmt.Errorf("%d document(s) failed", summary.Failed)
	}
	return nil
}

func init() {
	batchCmd.Flags().String("input", "input", "directory scanned for *.pdf files")
	batchCmd.Flags().String("output", "output", "directory for outline JSON and reports")
	batchCmd.Flags().Int("page-limit", 0, "maximum pages to read per document (0 = config default)")
	batchCmd.Flags().Float64("min-confidence", 0, "minimum combined score for a heading (0 = config default)")
	batchCmd.Flags().Bool("debug", false, "include per-candidate scoring detail in each outline")

	rootCmd.AddCommand(batchCmd)
}
