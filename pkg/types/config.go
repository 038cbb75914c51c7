// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "fmt"

// ExtractionConfig holds the tunable heuristics of the outline pipeline.
// The zero value is not usable; start from DefaultExtractionConfig and
// override individual fields.
type ExtractionConfig struct {
	// PageLimit caps how many pages are read from a document. Documents
	// exceeding the cap are truncated, not rejected (default 50).
	PageLimit int `json:"page_limit" yaml:"page_limit"`

	// MinConfidence is the combined-score acceptance threshold for a
	// heading candidate (default 0.3).
	MinConfidence float64 `json:"min_confidence" yaml:"min_confidence"`

	// TitlePages is how many leading pages the title resolver considers
	// (default 2).
	TitlePages int `json:"title_pages" yaml:"title_pages"`

	// PatternWeight, FontWeight, and PositionWeight combine the three
	// strategy scores into one confidence (defaults 0.4, 0.4, 0.2).
	PatternWeight  float64 `json:"pattern_weight" yaml:"pattern_weight"`
	FontWeight     float64 `json:"font_weight" yaml:"font_weight"`
	PositionWeight float64 `json:"position_weight" yaml:"position_weight"`

	// PatternLevelThreshold is the pattern score above which the
	// pattern-derived level guess overrides the font-derived one
	// (default 0.5).
	PatternLevelThreshold float64 `json:"pattern_level_threshold" yaml:"pattern_level_threshold"`

	// MarginBand is the fraction of the page height treated as the
	// top/bottom margin band when detecting running headers and footers
	// (default 0.05).
	MarginBand float64 `json:"margin_band" yaml:"margin_band"`

	// HeaderRepeatPages is the number of pages a margin-band line must
	// repeat on before it is discarded as a running header or footer
	// (default 3).
	HeaderRepeatPages int `json:"header_repeat_pages" yaml:"header_repeat_pages"`

	// Stoplist lists boilerplate phrases that disqualify a span outright.
	// Matching is case-insensitive on the normalized text.
	Stoplist []string `json:"stoplist,omitempty" yaml:"stoplist,omitempty"`

	// Debug enables per-candidate scoring diagnostics on the result.
	Debug bool `json:"debug" yaml:"debug"`
}

// defaultStoplist covers boilerplate that shows up as false positives
// across document types: TOC labels, legal notices, link and figure text.
var defaultStoplist = []string{
	"table of contents",
	"contents",
	"copyright",
	"all rights reserved",
	"rights reserved",
	"confidential",
	"www",
	"http",
	"https",
	"@",
	".com",
	".org",
	".edu",
}

// DefaultExtractionConfig returns the extraction defaults. The weights and
// thresholds are tunables, not load-bearing constants; callers may override
// any of them before Validate.
func DefaultExtractionConfig() ExtractionConfig {
	stoplist := make([]string, len(defaultStoplist))
	copy(stoplist, defaultStoplist)
	return ExtractionConfig{
		PageLimit:             50,
		MinConfidence:         0.3,
		TitlePages:            2,
		PatternWeight:         0.4,
		FontWeight:            0.4,
		PositionWeight:        0.2,
		PatternLevelThreshold: 0.5,
		MarginBand:            0.05,
		HeaderRepeatPages:     3,
		Stoplist:              stoplist,
	}
}

// Validate checks the configuration for values that would make the
// pipeline misbehave. It is called before any document is read so that
// bad options fail fast.
func (c ExtractionConfig) Validate() error {
	if c.PageLimit <= 0 {
		return fmt.Errorf("page limit must be positive, got %d", c.PageLimit)
	}
	if c.MinConfidence < 0 || c.MinConfidence > 1 {
		return fmt.Errorf("min confidence must be in [0,1], got %g", c.MinConfidence)
	}
	if c.TitlePages <= 0 {
		return fmt.Errorf("title pages must be positive, got %d", c.TitlePages)
	}
	if c.PatternWeight < 0 || c.FontWeight < 0 || c.PositionWeight < 0 {
		return fmt.Errorf("strategy weights must be non-negative, got %g/%g/%g",
			c.PatternWeight, c.FontWeight, c.PositionWeight)
	}
	if c.PatternWeight+c.FontWeight+c.PositionWeight == 0 {
		return fmt.Errorf("at least one strategy weight must be positive")
	}
	if c.PatternLevelThreshold < 0 || c.PatternLevelThreshold > 1 {
		return fmt.Errorf("pattern level threshold must be in [0,1], got %g", c.PatternLevelThreshold)
	}
	if c.MarginBand < 0 || c.MarginBand >= 0.5 {
		return fmt.Errorf("margin band must be in [0,0.5), got %g", c.MarginBand)
	}
	if c.HeaderRepeatPages < 2 {
		return fmt.Errorf("header repeat pages must be at least 2, got %d", c.HeaderRepeatPages)
	}
	return nil
}

// BatchConfig holds settings for the batch surface.
type BatchConfig struct {
	// InputDir is the directory scanned for *.pdf files.
	InputDir string `json:"input_dir" yaml:"input_dir"`

	// OutputDir receives one outline JSON per input plus the aggregate
	// reports.
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// Extraction is the per-document pipeline configuration.
	Extraction ExtractionConfig `json:"extraction" yaml:"extraction"`
}

// Validate checks the batch settings and the embedded extraction config.
func (c BatchConfig) Validate() error {
	if c.InputDir == "" {
		return fmt.Errorf("input directory required")
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output directory required")
	}
	return c.Extraction.Validate()
}

// IndexConfig holds settings for the heading index.
type IndexConfig struct {
	// DBPath is the SQLite database file location.
	DBPath string `json:"db_path" yaml:"db_path"`

	// MaxResults is the default maximum number of search results
	// (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}
