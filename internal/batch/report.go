// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package batch

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Report is the aggregate record written after a batch run.
type Report struct {
	GeneratedAt time.Time    `json:"generated_at"`
	Summary     Summary      `json:"summary"`
	Results     []FileResult `json:"results"`
}

// WriteReports writes batch_report.json, batch_report.html and
// batch_summary.csv to outputDir.
func WriteReports(outputDir string, summary Summary, results []FileResult) error {
	report := Report{
		GeneratedAt: time.Now().UTC(),
		Summary:     summary,
		Results:     results,
	}

	if err := writeJSON(filepath.Join(outputDir, "batch_report.json"), report); err != nil {
		return err
	}
	if err := writeHTML(filepath.Join(outputDir, "batch_report.html"), report); err != nil {
		return err
	}
	return writeCSV(filepath.Join(outputDir, "batch_summary.csv"), results)
}

// writeHTML renders the report as Markdown and converts it to HTML.
func writeHTML(path string, report Report) error {
	md := reportMarkdown(report)

	var buf bytes.Buffer
	converter := goldmark.New(goldmark.WithExtensions(extension.Table))
	if err := converter.Convert([]byte(md), &buf); err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}

// reportMarkdown builds the human-readable report body.
func reportMarkdown(report Report) string {
	var b bytes.Buffer
	fmt.Fprintf(&b, "# Outline Extraction Report\n\n")
	fmt.Fprintf(&b, "Generated: %s\n\n", report.GeneratedAt.Format(time.RFC3339))
	fmt.Fprintf(&b, "**%d extracted, %d empty, %d failed** (total: %d)\n\n",
		report.Summary.Extracted, report.Summary.Empty, report.Summary.Failed,
		report.Summary.Total())

	b.WriteString("| File | Size (bytes) | Time (s) | Headings | Method | Status |\n")
	b.WriteString("|------|--------------|----------|----------|--------|--------|\n")
	for _, r := range report.Results {
		status := "ok"
		if !r.Success {
			status = "failed: " + r.Error
		}
		fmt.Fprintf(&b, "| %s | %d | %.3f | %d | %s | %s |\n",
			r.Filename, r.SizeBytes, r.Seconds, r.Headings, r.Method, status)
	}
	return b.String()
}

// writeCSV writes one row per document for spreadsheet consumption.
func writeCSV(path string, results []FileResult) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	w := csv.NewWriter(f)
	header := []string{"filename", "size_bytes", "processing_seconds", "headings", "method", "success", "error"}
	if err := w.Write(header); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	for _, r := range results {
		row := []string{
			r.Filename,
			strconv.FormatInt(r.SizeBytes, 10),
			strconv.FormatFloat(r.Seconds, 'f', 3, 64),
			strconv.Itoa(r.Headings),
			r.Method,
			strconv.FormatBool(r.Success),
			r.Error,
		}
		if err := w.Write(row); err != nil {
			f.Close()
			return fmt.Errorf("write %s: %w", filepath.Base(path), err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return f.Close()
}
