// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the shared records and configuration for the
// outline extraction pipeline.
package types

// HeadingLevel is the outline nesting depth of a detected heading.
type HeadingLevel string

const (
	LevelH1 HeadingLevel = "H1"
	LevelH2 HeadingLevel = "H2"
	LevelH3 HeadingLevel = "H3"
)

// Depth returns the numeric nesting depth (H1 = 1, H2 = 2, H3 = 3).
// Unknown levels report 0.
func (l HeadingLevel) Depth() int {
	switch l {
	case LevelH1:
		return 1
	case LevelH2:
		return 2
	case LevelH3:
		return 3
	}
	return 0
}

// Shallower reports whether l nests less deeply than other.
func (l HeadingLevel) Shallower(other HeadingLevel) bool {
	return l.Depth() != 0 && l.Depth() < other.Depth()
}

// TextSpan is one line of text as reported by the PDF collaborator, with
// position and style metadata. Spans are produced once per document and
// read-only thereafter.
//
// Coordinates are top-down page points: Y0 is the distance from the top
// edge of the page to the top of the line, X0 the distance from the left
// edge. Pages are numbered from 1.
type TextSpan struct {
	// Text is the line content with surrounding whitespace trimmed.
	Text string

	// Page is the 1-based page number the span appears on.
	Page int

	// FontSize is the dominant font size of the line in points.
	FontSize float64

	// Bold reports whether the line's font name indicates a bold weight.
	Bold bool

	// X0, Y0, X1, Y1 is the bounding box in top-down page coordinates.
	X0, Y0, X1, Y1 float64

	// LineGapAbove is the vertical distance to the previous line on the
	// page, or to the page top for the first line.
	LineGapAbove float64

	// LineGapBelow is the vertical distance to the next line on the page,
	// or to the page bottom for the last line.
	LineGapBelow float64

	// PageHeight is the height of the containing page in points, used to
	// place the span relative to the margin bands.
	PageHeight float64
}

// Heading is one entry of the final outline.
type Heading struct {
	// Level is the nesting depth: H1, H2, or H3.
	Level HeadingLevel `json:"level" yaml:"level"`

	// Text is the heading text as it appears in the document.
	Text string `json:"text" yaml:"text"`

	// Page is the 1-based page number the heading appears on.
	Page int `json:"page" yaml:"page"`
}

// CandidateScore records the per-strategy scoring detail for one accepted
// heading candidate. Populated only when debug output is requested.
type CandidateScore struct {
	// Text is the candidate text.
	Text string `json:"text" yaml:"text"`

	// Page is the candidate's page number.
	Page int `json:"page" yaml:"page"`

	// Level is the resolved level guess.
	Level HeadingLevel `json:"level" yaml:"level"`

	// Pattern, Font, and Position are the independent strategy scores in [0,1].
	Pattern  float64 `json:"pattern" yaml:"pattern"`
	Font     float64 `json:"font" yaml:"font"`
	Position float64 `json:"position" yaml:"position"`

	// Combined is the weighted aggregate used for acceptance and ranking.
	Combined float64 `json:"combined" yaml:"combined"`
}

// OutlineResult is the externally visible artifact of one extraction:
// the document title, the ordered outline, and a tag naming the strategy
// that dominated detection.
type OutlineResult struct {
	// Title is the resolved document title. Empty means undetermined,
	// never an error.
	Title string `json:"title" yaml:"title"`

	// Outline lists the detected headings ordered by page, then by
	// vertical position within the page.
	Outline []Heading `json:"outline" yaml:"outline"`

	// Method identifies the dominant detection strategy: "pattern",
	// "font", "position", "mixed", or "none" for a document with no
	// extractable text.
	Method string `json:"method" yaml:"method"`

	// Diagnostics carries per-candidate scoring detail when debug output
	// was requested. Omitted otherwise.
	Diagnostics []CandidateScore `json:"diagnostics,omitempty" yaml:"diagnostics,omitempty"`
}

// Detection method tags.
const (
	MethodPattern  = "pattern"
	MethodFont     = "font"
	MethodPosition = "position"
	MethodMixed    = "mixed"
	MethodNone     = "none"
)
