// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package outline

import (
	"unicode/utf8"

	"github.com/KamalKumarMachireddy/PDF-Outline-Extractor-Round-1A/pkg/types"
)

// Title length bounds; a plausible document title is a phrase, not a word
// fragment or a paragraph.
const (
	minTitleLen = 5
	maxTitleLen = 100
)

// ResolveTitle picks the document title from the filtered spans of the
// first cfg.TitlePages pages: the most font-prominent span that does not
// look like a section heading. Spans already claimed as pattern-backed H1
// headings ("1. Introduction", "Chapter 2") are never titles. Returns
// false when no span qualifies; callers treat a missing title as
// undetermined, not as an error.
func ResolveTitle(filtered []types.TextSpan, baseline Baseline, winners []Candidate, cfg types.ExtractionConfig) (types.TextSpan, bool) {
	consumed := make(map[string]bool)
	for _, w := range winners {
		if w.Level == types.LevelH1 && w.Pattern > cfg.PatternLevelThreshold {
			consumed[normalizeText(w.Span.Text)] = true
		}
	}

	var (
		best      types.TextSpan
		found     bool
		bestScore float64
	)
	for _, s := range filtered {
		if s.Page > cfg.TitlePages {
			continue
		}
		if n := utf8.RuneCountInString(s.Text); n < minTitleLen || n > maxTitleLen {
			continue
		}
		// Numbered or keyword lines are section headings, not titles.
		if pm := matchPattern(s.Text); pm.Score > cfg.PatternLevelThreshold {
			continue
		}
		if consumed[normalizeText(s.Text)] {
			continue
		}

		score, _, ok := fontScore(s, baseline)
		if !ok {
			continue
		}
		// Strictly-greater keeps the earliest span on ties; filtered
		// spans arrive in document order.
		if !found || score > bestScore {
			best = s
			found = true
			bestScore = score
		}
	}
	return best, found
}
