// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package outline

import (
	"testing"

	"github.com/KamalKumarMachireddy/PDF-Outline-Extractor-Round-1A/pkg/types"
)

// sized builds a span with a given font size and bold flag on a page.
func sized(text string, page int, size float64, bold bool) types.TextSpan {
	s := bodySpan(text, page)
	s.FontSize = size
	s.Bold = bold
	return s
}

// sampleDoc is a page of mostly 10pt body text with two larger headings.
func sampleDoc() []types.TextSpan {
	spans := []types.TextSpan{
		sized("Architecture Overview", 1, 18, true),
		sized("Deployment Notes", 1, 14, false),
	}
	for i := 0; i < 10; i++ {
		spans = append(spans, sized("body line", 1, 10, false))
	}
	return spans
}

func TestComputeBaseline(t *testing.T) {
	b := ComputeBaseline(sampleDoc())

	if b.MedianSize != 10 {
		t.Errorf("median size = %g, want 10", b.MedianSize)
	}
	if b.SizeStdDev <= 0 {
		t.Errorf("stddev = %g, want positive", b.SizeStdDev)
	}
	if b.LineSpacing != 14 {
		t.Errorf("line spacing = %g, want 14", b.LineSpacing)
	}
	if got := b.leftMargin[1]; got != 72 {
		t.Errorf("left margin = %g, want 72", got)
	}
	// Two above-body sizes on page 1, largest first.
	if tiers := b.sizeTiers[1]; len(tiers) != 2 || tiers[0] != 18 || tiers[1] != 14 {
		t.Errorf("size tiers = %v, want [18 14]", tiers)
	}
}

func TestComputeBaseline_Empty(t *testing.T) {
	b := ComputeBaseline(nil)
	if b.SizeStdDev <= 0 {
		t.Errorf("stddev = %g, want positive for empty input", b.SizeStdDev)
	}
}

func TestFontScore_Tiers(t *testing.T) {
	doc := sampleDoc()
	b := ComputeBaseline(doc)

	score1, level1, ok1 := fontScore(doc[0], b)
	if !ok1 || level1 != types.LevelH1 {
		t.Errorf("largest size: level = %q ok = %v, want H1 true", level1, ok1)
	}
	score2, level2, ok2 := fontScore(doc[1], b)
	if !ok2 || level2 != types.LevelH2 {
		t.Errorf("second size: level = %q ok = %v, want H2 true", level2, ok2)
	}
	if score1 <= score2 {
		t.Errorf("H1 score %g not above H2 score %g", score1, score2)
	}

	// Body-size regular text carries no font evidence at all.
	if s, _, ok := fontScore(doc[2], b); ok || s != 0 {
		t.Errorf("body text: score = %g ok = %v, want 0 false", s, ok)
	}
}

func TestFontScore_BoldBoost(t *testing.T) {
	doc := sampleDoc()
	b := ComputeBaseline(doc)

	regular := sized("heading", 1, 14, false)
	bold := sized("heading", 1, 14, true)

	rs, _, _ := fontScore(regular, b)
	bs, _, _ := fontScore(bold, b)
	if bs <= rs {
		t.Errorf("bold score %g not above regular %g", bs, rs)
	}

	// Bold alone at body size still registers, in the deepest tier.
	boldBody := sized("inline emphasis", 1, 10, true)
	s, level, ok := fontScore(boldBody, b)
	if !ok || level != types.LevelH3 {
		t.Errorf("bold body: level = %q ok = %v, want H3 true", level, ok)
	}
	if s <= 0 || s > 0.2 {
		t.Errorf("bold body score = %g, want (0,0.2]", s)
	}
}

func TestMedian(t *testing.T) {
	tests := []struct {
		name string
		in   []float64
		want float64
	}{
		{"odd", []float64{3, 1, 2}, 2},
		{"even", []float64{4, 1, 3, 2}, 2.5},
		{"single", []float64{7}, 7},
		{"empty", nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := median(tt.in); got != tt.want {
				t.Errorf("median(%v) = %g, want %g", tt.in, got, tt.want)
			}
		})
	}
}

func TestPositionScore(t *testing.T) {
	doc := sampleDoc()
	b := ComputeBaseline(doc)

	isolated := sized("Isolated Heading", 1, 10, false)
	isolated.LineGapAbove, isolated.LineGapBelow = 42, 42

	crowded := sized("crowded line", 1, 10, false)
	crowded.LineGapAbove, crowded.LineGapBelow = 14, 14

	indented := sized("indented isolated line", 1, 10, false)
	indented.LineGapAbove, indented.LineGapBelow = 42, 42
	indented.X0 = 140

	iso := positionScore(isolated, b)
	cro := positionScore(crowded, b)
	ind := positionScore(indented, b)

	if iso <= cro {
		t.Errorf("isolated %g not above crowded %g", iso, cro)
	}
	if iso <= ind {
		t.Errorf("margin-aligned %g not above indented %g", iso, ind)
	}
	if cro < 0 || iso > 1 {
		t.Errorf("scores out of range: crowded %g isolated %g", cro, iso)
	}
}
