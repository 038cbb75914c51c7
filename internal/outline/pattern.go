// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package outline

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/KamalKumarMachireddy/PDF-Outline-Extractor-Round-1A/pkg/types"
)

// patternMatch is the outcome of the pattern strategy for one span.
type patternMatch struct {
	// Score is the strategy confidence in [0,1]; 0 means no match.
	Score float64

	// Level is the pattern-derived level guess, valid only when HasLevel.
	Level types.HeadingLevel

	// HasLevel reports whether the matched pattern implies a level.
	HasLevel bool
}

var (
	// numberedRe matches decimal section numbering: "1 ", "2.1 ", "3.4.2 ",
	// with an optional trailing dot or parenthesis before the text.
	numberedRe = regexp.MustCompile(`^(\d+(?:\.\d+)*)[.)]?\s+\S`)

	// numberedSegRe extracts the numeric prefix for depth counting.
	numberedSegRe = regexp.MustCompile(`^\d+(?:\.\d+)*`)

	chapterRe  = regexp.MustCompile(`(?i)^(chapter|part|section)\s+\d+`)
	appendixRe = regexp.MustCompile(`(?i)^appendix\s+[A-Z0-9]`)
	romanRe    = regexp.MustCompile(`^[IVXLC]+[.)]\s+\S`)
	letterRe   = regexp.MustCompile(`^[A-Z][.)]\s+\S`)
)

// sectionKeywords are standalone lines that conventionally open a major
// section of academic, business, and technical documents.
var sectionKeywords = map[string]bool{
	"abstract":          true,
	"introduction":      true,
	"background":        true,
	"literature review": true,
	"methodology":       true,
	"methods":           true,
	"results":           true,
	"discussion":        true,
	"conclusion":        true,
	"conclusions":       true,
	"summary":           true,
	"references":        true,
	"bibliography":      true,
	"acknowledgements":  true,
	"acknowledgments":   true,
	"glossary":          true,
	"executive summary": true,
	"overview":          true,
	"objectives":        true,
	"goals":             true,
	"strategy":          true,
	"requirements":      true,
	"specifications":    true,
	"architecture":      true,
	"design":            true,
	"implementation":    true,
	"testing":           true,
	"deployment":        true,
}

// matchPattern scores a span's text against the numbering and keyword
// conventions. Patterns are tried from most to least specific; the first
// hit wins. A miss yields score 0 and no level guess.
func matchPattern(text string) patternMatch {
	text = strings.TrimSpace(text)
	if text == "" {
		return patternMatch{}
	}

	if numberedRe.MatchString(text) {
		depth := strings.Count(numberedSegRe.FindString(text), ".") + 1
		return patternMatch{Score: 0.9, Level: levelForDepth(depth), HasLevel: true}
	}
	if chapterRe.MatchString(text) || appendixRe.MatchString(text) {
		return patternMatch{Score: 0.9, Level: types.LevelH1, HasLevel: true}
	}
	if romanRe.MatchString(text) {
		return patternMatch{Score: 0.8, Level: types.LevelH1, HasLevel: true}
	}
	if letterRe.MatchString(text) {
		return patternMatch{Score: 0.7, Level: types.LevelH2, HasLevel: true}
	}

	keyword := strings.ToLower(strings.TrimSuffix(text, ":"))
	if sectionKeywords[keyword] {
		return patternMatch{Score: 0.8, Level: types.LevelH1, HasLevel: true}
	}

	if isAllCapsLine(text) {
		return patternMatch{Score: 0.6, Level: types.LevelH2, HasLevel: true}
	}
	if isTitleCaseLine(text) {
		// Sits at the level threshold: title case alone never
		// overrides the font-derived level.
		return patternMatch{Score: 0.5, Level: types.LevelH2, HasLevel: true}
	}

	return patternMatch{}
}

// levelForDepth maps a numbering depth ("2.1.3" has depth 3) onto a level,
// capped at H3.
func levelForDepth(depth int) types.HeadingLevel {
	switch depth {
	case 1:
		return types.LevelH1
	case 2:
		return types.LevelH2
	}
	return types.LevelH3
}

// isAllCapsLine reports whether text is a short line of capitals, like
// "EXECUTIVE SUMMARY". Requires at least four letters and no lowercase.
func isAllCapsLine(text string) bool {
	if n := utf8.RuneCountInString(text); n < 4 || n > 60 {
		return false
	}
	letters := 0
	for _, r := range text {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			letters++
		}
	}
	return letters >= 4
}

// isTitleCaseLine reports whether text is a short line with every word
// capitalized, like "Related Work" or "System Design:". Small connective
// words are allowed in lowercase.
func isTitleCaseLine(text string) bool {
	text = strings.TrimSuffix(text, ":")
	if utf8.RuneCountInString(text) > 60 {
		return false
	}
	words := strings.Fields(text)
	if len(words) == 0 || len(words) > 8 {
		return false
	}
	for i, w := range words {
		r := []rune(w)[0]
		if unicode.IsUpper(r) {
			continue
		}
		if i > 0 && connectiveWords[strings.ToLower(w)] {
			continue
		}
		return false
	}
	return unicode.IsUpper([]rune(words[0])[0])
}

// connectiveWords may stay lowercase inside a title-case line.
var connectiveWords = map[string]bool{
	"a": true, "an": true, "and": true, "as": true, "at": true,
	"by": true, "for": true, "in": true, "of": true, "on": true,
	"or": true, "the": true, "to": true, "with": true,
}
