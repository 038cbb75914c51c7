// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package outline

import (
	"sort"

	"github.com/KamalKumarMachireddy/PDF-Outline-Extractor-Round-1A/pkg/types"
)

// Dedupe collapses duplicate detections and orders the survivors by
// document position. Candidates with the same normalized text on the same
// or an adjacent page form one group (a heading split across a page break
// is still one heading); each group keeps its highest-confidence member.
// Confidence ties resolve toward the shallower level, since under-nesting
// is the safer default for a table of contents.
//
// The returned winners are sorted by (page, top offset); the sort is
// stable, so equal positions preserve extraction order. No two winners
// share the same (normalized text, page).
func Dedupe(candidates []Candidate) []Candidate {
	type group struct {
		winner   Candidate
		lastPage int
	}

	var groups []group
	byText := make(map[string][]int)

	for _, c := range candidates {
		key := normalizeText(c.Span.Text)

		merged := false
		for _, gi := range byText[key] {
			g := &groups[gi]
			if c.Span.Page < g.lastPage-1 || c.Span.Page > g.lastPage+1 {
				continue
			}
			if betterCandidate(c, g.winner) {
				g.winner = c
			}
			if c.Span.Page > g.lastPage {
				g.lastPage = c.Span.Page
			}
			merged = true
			break
		}
		if !merged {
			groups = append(groups, group{winner: c, lastPage: c.Span.Page})
			byText[key] = append(byText[key], len(groups)-1)
		}
	}

	winners := make([]Candidate, len(groups))
	for i, g := range groups {
		winners[i] = g.winner
	}

	sort.SliceStable(winners, func(i, j int) bool {
		if winners[i].Span.Page != winners[j].Span.Page {
			return winners[i].Span.Page < winners[j].Span.Page
		}
		return winners[i].Span.Y0 < winners[j].Span.Y0
	})
	return winners
}

// betterCandidate reports whether a should replace b as a group's winner:
// strictly higher confidence, or equal confidence at a shallower level.
func betterCandidate(a, b Candidate) bool {
	if a.Combined != b.Combined {
		return a.Combined > b.Combined
	}
	return a.Level.Shallower(b.Level)
}

// headings converts deduplicated winners into the final outline entries.
func headings(winners []Candidate) []types.Heading {
	out := make([]types.Heading, len(winners))
	for i, w := range winners {
		out[i] = types.Heading{
			Level: w.Level,
			Text:  w.Span.Text,
			Page:  w.Span.Page,
		}
	}
	return out
}
