// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package outline

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/KamalKumarMachireddy/PDF-Outline-Extractor-Round-1A/pkg/types"
)

// bodyIndicatorWords are function and hedge words that dominate prose but
// rarely appear in headings. A high ratio of them marks a span as body text.
var bodyIndicatorWords = map[string]bool{
	"the": true, "this": true, "that": true, "these": true, "those": true,
	"within": true, "can": true, "will": true, "should": true, "would": true,
	"could": true, "may": true, "might": true, "must": true, "shall": true,
	"during": true, "through": true, "between": true, "among": true,
	"including": true, "such": true, "example": true, "however": true,
	"therefore": true, "furthermore": true, "moreover": true,
	"additionally": true, "consequently": true, "is": true, "are": true,
	"was": true, "were": true, "has": true, "have": true,
}

// Filter discards spans that cannot be headings: too short or long,
// numeric or punctuation-only lines, running headers and footers repeated
// in the margin bands, stoplisted boilerplate, and prose-like lines.
// Each check short-circuits; the function is pure in (spans, cfg).
func Filter(spans []types.TextSpan, cfg types.ExtractionConfig) []types.TextSpan {
	repeated := marginRepeats(spans, cfg)

	kept := make([]types.TextSpan, 0, len(spans))
	for _, s := range spans {
		// Length bounds count characters, not bytes, so multi-byte
		// scripts are measured the same as ASCII.
		if n := utf8.RuneCountInString(s.Text); n < 2 || n > 200 {
			continue
		}
		if !hasLetters(s.Text) {
			continue
		}
		if inMarginBand(s, cfg.MarginBand) && repeated[normalizeText(s.Text)] {
			continue
		}
		if matchesStoplist(s.Text, cfg.Stoplist) {
			continue
		}
		if isLikelyBodyText(s.Text) {
			continue
		}
		kept = append(kept, s)
	}
	return kept
}

// marginRepeats returns the normalized texts that occur in the top or
// bottom margin band on at least cfg.HeaderRepeatPages distinct pages.
// Those are running headers and footers, not content.
func marginRepeats(spans []types.TextSpan, cfg types.ExtractionConfig) map[string]bool {
	pages := make(map[string]map[int]bool)
	for _, s := range spans {
		if !inMarginBand(s, cfg.MarginBand) {
			continue
		}
		key := normalizeText(s.Text)
		if key == "" {
			continue
		}
		if pages[key] == nil {
			pages[key] = make(map[int]bool)
		}
		pages[key][s.Page] = true
	}

	repeated := make(map[string]bool)
	for key, seen := range pages {
		if len(seen) >= cfg.HeaderRepeatPages {
			repeated[key] = true
		}
	}
	return repeated
}

// inMarginBand reports whether the span sits in the top or bottom band of
// its page.
func inMarginBand(s types.TextSpan, band float64) bool {
	if s.PageHeight <= 0 {
		return false
	}
	edge := s.PageHeight * band
	return s.Y1 <= edge || s.Y0 >= s.PageHeight-edge
}

// normalizeText case-folds and collapses whitespace, the key used for
// repeat detection and deduplication.
func normalizeText(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}

// hasLetters reports whether text contains at least one letter. Lines of
// pure digits and punctuation are page numbers and separators.
func hasLetters(text string) bool {
	for _, r := range text {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

// matchesStoplist reports whether the normalized text contains any
// stoplisted phrase.
func matchesStoplist(text string, stoplist []string) bool {
	norm := normalizeText(text)
	for _, phrase := range stoplist {
		if phrase != "" && strings.Contains(norm, phrase) {
			return true
		}
	}
	return false
}

// isLikelyBodyText flags prose: lines dominated by function words or
// carrying sentence punctuation. The numbering prefix is stripped first
// so deep section numbers like "2.1.3" do not count as sentence periods.
func isLikelyBodyText(text string) bool {
	stripped := numberedSegRe.ReplaceAllString(text, "")

	if strings.Count(stripped, ".") > 1 || strings.Count(stripped, ",") > 2 {
		return true
	}

	words := strings.Fields(strings.ToLower(text))
	if len(words) == 0 {
		return true
	}
	bodyCount := 0
	for _, w := range words {
		if bodyIndicatorWords[strings.Trim(w, ".,;:!?")] {
			bodyCount++
		}
	}
	return float64(bodyCount)/float64(len(words)) > 0.4
}
