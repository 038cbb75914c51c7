// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package outline

import (
	"testing"

	"github.com/KamalKumarMachireddy/PDF-Outline-Extractor-Round-1A/pkg/types"
)

// cand builds a Candidate at a given position with a combined score.
func cand(text string, page int, y, combined float64, level types.HeadingLevel) Candidate {
	s := bodySpan(text, page)
	s.Y0, s.Y1 = y, y+12
	return Candidate{Span: s, Combined: combined, Level: level}
}

func TestDedupe_CollapsesDuplicates(t *testing.T) {
	// The same heading detected twice on one page with different
	// confidence: the stronger detection wins, once.
	in := []Candidate{
		cand("Introduction", 1, 100, 0.5, types.LevelH2),
		cand("INTRODUCTION", 1, 102, 0.8, types.LevelH1),
	}
	out := Dedupe(in)
	if len(out) != 1 {
		t.Fatalf("got %d winners, want 1", len(out))
	}
	if out[0].Level != types.LevelH1 || out[0].Combined != 0.8 {
		t.Errorf("winner = %+v, want the 0.8 H1 detection", out[0])
	}
}

func TestDedupe_TieResolvesShallower(t *testing.T) {
	in := []Candidate{
		cand("Results", 2, 100, 0.6, types.LevelH3),
		cand("Results", 2, 100, 0.6, types.LevelH1),
	}
	out := Dedupe(in)
	if len(out) != 1 {
		t.Fatalf("got %d winners, want 1", len(out))
	}
	if out[0].Level != types.LevelH1 {
		t.Errorf("level = %q, want H1 (shallower wins ties)", out[0].Level)
	}
}

func TestDedupe_PageBreakMerge(t *testing.T) {
	// A heading straddling a page break is one logical heading.
	in := []Candidate{
		cand("Experimental Results", 3, 780, 0.7, types.LevelH1),
		cand("Experimental Results", 4, 20, 0.4, types.LevelH1),
	}
	out := Dedupe(in)
	if len(out) != 1 {
		t.Fatalf("got %d winners, want 1", len(out))
	}
	if out[0].Span.Page != 3 {
		t.Errorf("winner page = %d, want 3", out[0].Span.Page)
	}
}

func TestDedupe_DistantRepeatsStaySeparate(t *testing.T) {
	// The same text far apart in the document is two headings
	// (e.g. "Summary" closing two different chapters).
	in := []Candidate{
		cand("Summary", 2, 100, 0.7, types.LevelH2),
		cand("Summary", 9, 100, 0.7, types.LevelH2),
	}
	if out := Dedupe(in); len(out) != 2 {
		t.Errorf("got %d winners, want 2", len(out))
	}
}

func TestDedupe_Ordering(t *testing.T) {
	in := []Candidate{
		cand("Late Section", 3, 50, 0.5, types.LevelH1),
		cand("Lower On Page One", 1, 400, 0.5, types.LevelH2),
		cand("Top Of Page One", 1, 90, 0.5, types.LevelH1),
		cand("Middle Section", 2, 200, 0.5, types.LevelH2),
	}
	out := Dedupe(in)
	if len(out) != 4 {
		t.Fatalf("got %d winners, want 4", len(out))
	}

	wantOrder := []string{"Top Of Page One", "Lower On Page One", "Middle Section", "Late Section"}
	for i, want := range wantOrder {
		if out[i].Span.Text != want {
			t.Errorf("position %d = %q, want %q", i, out[i].Span.Text, want)
		}
	}

	// Invariant: sorted by (page, top offset), unique (text, page).
	type key struct {
		text string
		page int
	}
	seen := make(map[key]bool)
	for i, w := range out {
		if i > 0 {
			prev := out[i-1]
			if w.Span.Page < prev.Span.Page ||
				(w.Span.Page == prev.Span.Page && w.Span.Y0 < prev.Span.Y0) {
				t.Errorf("ordering violated at %d", i)
			}
		}
		k := key{normalizeText(w.Span.Text), w.Span.Page}
		if seen[k] {
			t.Errorf("duplicate (text, page) at %d", i)
		}
		seen[k] = true
	}
}
