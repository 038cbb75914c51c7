// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package batch runs the outline pipeline over a directory of PDF files,
// writing one outline JSON per document plus aggregate reports. One
// unreadable document never aborts the run; it is recorded as failed and
// the batch continues.
package batch

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/KamalKumarMachireddy/PDF-Outline-Extractor-Round-1A/internal/outline"
	"github.com/KamalKumarMachireddy/PDF-Outline-Extractor-Round-1A/pkg/types"
)

// FileResult records the outcome of one document in a batch run.
type FileResult struct {
	// Filename is the base name of the input PDF.
	Filename string `json:"filename"`

	// SizeBytes is the input file size.
	SizeBytes int64 `json:"size_bytes"`

	// Seconds is the wall-clock processing time for this document.
	Seconds float64 `json:"processing_seconds"`

	// Success is false only for unreadable documents. A readable
	// document with no detected headings is still a success.
	Success bool `json:"success"`

	// Title, Headings and Method summarize the written outline. Empty
	// on failure.
	Title    string `json:"title,omitempty"`
	Headings int    `json:"headings"`
	Method   string `json:"method,omitempty"`

	// Error holds the failure detail when Success is false.
	Error string `json:"error,omitempty"`
}

// Summary aggregates a batch run.
type Summary struct {
	Extracted int `json:"extracted"`
	Empty     int `json:"empty"`
	Failed    int `json:"failed"`
}

// Total returns the number of documents processed.
func (s Summary) Total() int {
	return s.Extracted + s.Empty + s.Failed
}

// HasFailures reports whether any document failed.
func (s Summary) HasFailures() bool {
	return s.Failed > 0
}

// Run extracts outlines for every *.pdf under cfg.InputDir, writing
// <stem>_outline.json files and the aggregate reports to cfg.OutputDir.
// Per-file status goes to w as the run progresses.
func Run(cfg types.BatchConfig, w io.Writer) (Summary, []FileResult, error) {
	if err := cfg.Validate(); err != nil {
		return Summary{}, nil, fmt.Errorf("configuration: %w", err)
	}

	pdfs, err := listPDFs(cfg.InputDir)
	if err != nil {
		return Summary{}, nil, err
	}
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return Summary{}, nil, fmt.Errorf("create output dir: %w", err)
	}

	var (
		summary Summary
		results []FileResult
	)
	for _, path := range pdfs {
		r := processOne(path, cfg, w)
		results = append(results, r)
		switch {
		case !r.Success:
			summary.Failed++
		case r.Headings == 0:
			summary.Empty++
		default:
			summary.Extracted++
		}
	}

	fmt.Fprintf(w, "\nBatch summary: %d extracted, %d empty, %d failed (total: %d)\n",
		summary.Extracted, summary.Empty, summary.Failed, summary.Total())

	if err := WriteReports(cfg.OutputDir, summary, results); err != nil {
		return summary, results, err
	}
	return summary, results, nil
}

// processOne runs the pipeline on a single PDF and writes its outline
// JSON. Failures are captured in the result, never returned.
func processOne(path string, cfg types.BatchConfig, w io.Writer) FileResult {
	base := filepath.Base(path)
	result := FileResult{Filename: base}
	if info, err := os.Stat(path); err == nil {
		result.SizeBytes = info.Size()
	}

	start := time.Now()
	out, err := outline.ExtractOutline(path, cfg.Extraction)
	result.Seconds = time.Since(start).Seconds()

	if err != nil {
		result.Error = err.Error()
		fmt.Fprintf(w, "failed:    %s (%v)\n", base, err)
		return result
	}

	stem := strings.TrimSuffix(base, filepath.Ext(base))
	outPath := filepath.Join(cfg.OutputDir, stem+"_outline.json")
	if err := writeJSON(outPath, out); err != nil {
		result.Error = err.Error()
		fmt.Fprintf(w, "failed:    %s (%v)\n", base, err)
		return result
	}

	result.Success = true
	result.Title = out.Title
	result.Headings = len(out.Outline)
	result.Method = out.Method

	if result.Headings == 0 {
		fmt.Fprintf(w, "empty:     %s (no headings detected)\n", base)
	} else {
		fmt.Fprintf(w, "extracted: %s (%d headings, method %s)\n", base, result.Headings, out.Method)
	}
	return result
}

// listPDFs returns the *.pdf files directly under dir, sorted by name so
// runs are reproducible.
func listPDFs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read input dir: %w", err)
	}
	var pdfs []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(e.Name()), ".pdf") {
			pdfs = append(pdfs, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(pdfs)
	return pdfs, nil
}

// writeJSON marshals v with indentation and a trailing newline.
func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", filepath.Base(path), err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}
