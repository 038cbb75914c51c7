// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package outline

import "github.com/KamalKumarMachireddy/PDF-Outline-Extractor-Round-1A/pkg/types"

// leftAlignTolerance is how far a span may start from the page's leftmost
// text edge and still count as margin-aligned, in points.
const leftAlignTolerance = 6.0

// positionScore computes the layout strategy's confidence for one span:
// vertical isolation relative to the document's typical line spacing,
// combined with alignment to the left text margin. Headings tend to be
// surrounded by whitespace and flush left, unlike indented body lines.
//
// The strategy contributes confidence only; it yields no level guess.
func positionScore(span types.TextSpan, b Baseline) float64 {
	isolation := 0.0
	if b.LineSpacing > 0 {
		isolation = (span.LineGapAbove + span.LineGapBelow) / (2 * b.LineSpacing)
	}
	// One typical line of air on each side scores 0, three lines score 1.
	isolationNorm := clamp01((isolation - 1) / 2)

	align := 0.0
	if margin, ok := b.leftMargin[span.Page]; ok && span.X0 <= margin+leftAlignTolerance {
		align = 1
	}

	return clamp01(0.7*isolationNorm + 0.3*align)
}
