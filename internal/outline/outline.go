// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package outline turns a document's text spans into a ranked heading
// outline. Three independent heuristics vote on every span — numbering
// and keyword patterns, font prominence against a document-wide baseline,
// and whitespace isolation — and the weighted consensus decides which
// spans become headings and at which level.
//
// The pipeline is strictly linear per document: filter → score →
// dedupe/rank → title → assemble. It holds no state across documents, so
// concurrent extractions of different documents need no coordination.
package outline

import (
	"fmt"

	"github.com/KamalKumarMachireddy/PDF-Outline-Extractor-Round-1A/internal/spans"
	"github.com/KamalKumarMachireddy/PDF-Outline-Extractor-Round-1A/pkg/types"
)

// ExtractOutline extracts the title and heading outline of the PDF at
// pdfPath. Configuration errors fail before the file is touched; open and
// parse failures carry spans.ErrDocumentRead. A readable document with no
// text spans yields an empty result with method "none", not an error.
func ExtractOutline(pdfPath string, cfg types.ExtractionConfig) (*types.OutlineResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration: %w", err)
	}
	sp, err := spans.Extract(pdfPath, cfg.PageLimit)
	if err != nil {
		return nil, err
	}
	return ExtractFromSpans(sp, cfg), nil
}

// ExtractFromSpans runs the classification pipeline over already-extracted
// spans. It is deterministic: identical spans and configuration produce an
// identical result.
func ExtractFromSpans(sp []types.TextSpan, cfg types.ExtractionConfig) *types.OutlineResult {
	result := &types.OutlineResult{
		Outline: []types.Heading{},
		Method:  types.MethodNone,
	}
	if cfg.PageLimit > 0 {
		sp = capPages(sp, cfg.PageLimit)
	}
	if len(sp) == 0 {
		return result
	}

	// The font baseline covers every span, filtered or not: the body
	// text the filter throws away is exactly what prominence is
	// measured against.
	baseline := ComputeBaseline(sp)

	filtered := Filter(sp, cfg)
	candidates := ScoreSpans(filtered, baseline, cfg)
	winners := Dedupe(candidates)

	// The title and the outline are distinct: whichever span wins the
	// title is dropped from the heading list.
	if title, ok := ResolveTitle(filtered, baseline, winners, cfg); ok {
		result.Title = title.Text
		winners = withoutSpan(winners, title)
	}

	result.Outline = headings(winners)
	result.Method = methodTag(winners, cfg)

	if cfg.Debug {
		result.Diagnostics = diagnostics(winners)
	}
	return result
}

// capPages keeps only spans within the first limit pages. The span
// extractor already truncates while reading; this guards callers that
// feed spans from elsewhere.
func capPages(sp []types.TextSpan, limit int) []types.TextSpan {
	out := sp[:0:0]
	for _, s := range sp {
		if s.Page <= limit {
			out = append(out, s)
		}
	}
	return out
}

// withoutSpan removes the winner occupying the same position as the
// title span, if any.
func withoutSpan(winners []Candidate, title types.TextSpan) []Candidate {
	key := normalizeText(title.Text)
	out := winners[:0]
	for _, w := range winners {
		if w.Span.Page == title.Page && normalizeText(w.Span.Text) == key {
			continue
		}
		out = append(out, w)
	}
	return out
}

// methodTag names the strategy that contributed the majority of the
// weighted combined-score mass across the accepted headings: "pattern",
// "font", or "position" when one strategy exceeds 60% of the total,
// "mixed" otherwise, and "none" when nothing was accepted.
func methodTag(winners []Candidate, cfg types.ExtractionConfig) string {
	var pattern, font, position float64
	for _, w := range winners {
		pattern += cfg.PatternWeight * w.Pattern
		font += cfg.FontWeight * w.Font
		position += cfg.PositionWeight * w.Position
	}
	total := pattern + font + position
	if total == 0 {
		return types.MethodNone
	}

	const dominance = 0.6
	switch {
	case pattern/total > dominance:
		return types.MethodPattern
	case font/total > dominance:
		return types.MethodFont
	case position/total > dominance:
		return types.MethodPosition
	}
	return types.MethodMixed
}

// diagnostics exposes the winners' scoring detail for debug output,
// in outline order.
func diagnostics(winners []Candidate) []types.CandidateScore {
	out := make([]types.CandidateScore, len(winners))
	for i, w := range winners {
		out[i] = types.CandidateScore{
			Text:     w.Span.Text,
			Page:     w.Span.Page,
			Level:    w.Level,
			Pattern:  w.Pattern,
			Font:     w.Font,
			Position: w.Position,
			Combined: w.Combined,
		}
	}
	return out
}
