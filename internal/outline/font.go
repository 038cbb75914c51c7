// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package outline

import (
	"math"
	"sort"

	"github.com/KamalKumarMachireddy/PDF-Outline-Extractor-Round-1A/pkg/types"
)

// Baseline holds document-wide statistics computed in a first pass over
// all spans. The per-span scorers read it in the second pass, which keeps
// them pure functions of (span, baseline).
type Baseline struct {
	// MedianSize is the median font size across the document, taken as
	// the body-text size.
	MedianSize float64

	// SizeStdDev is the standard deviation of font sizes, used to
	// normalize prominence. At least a small epsilon so division is safe.
	SizeStdDev float64

	// LineSpacing is the median positive gap between adjacent lines,
	// taken as the document's typical line spacing.
	LineSpacing float64

	// leftMargin is each page's leftmost text edge.
	leftMargin map[int]float64

	// sizeTiers lists each page's distinct font sizes larger than the
	// body size, in descending order. A span's rank in its page's tier
	// list determines the font-derived level guess.
	sizeTiers map[int][]float64
}

// ComputeBaseline runs the first pass: it aggregates font sizes, line
// spacing, and page margins over every span of the document.
func ComputeBaseline(spans []types.TextSpan) Baseline {
	b := Baseline{
		MedianSize:  0,
		SizeStdDev:  1,
		LineSpacing: 0,
		leftMargin:  make(map[int]float64),
		sizeTiers:   make(map[int][]float64),
	}
	if len(spans) == 0 {
		return b
	}

	sizes := make([]float64, 0, len(spans))
	var gaps []float64
	for _, s := range spans {
		if s.FontSize > 0 {
			sizes = append(sizes, s.FontSize)
		}
		if s.LineGapAbove > 0 {
			gaps = append(gaps, s.LineGapAbove)
		}
		if cur, ok := b.leftMargin[s.Page]; !ok || s.X0 < cur {
			b.leftMargin[s.Page] = s.X0
		}
	}

	b.MedianSize = median(sizes)
	b.SizeStdDev = stdDev(sizes, b.MedianSize)
	if b.SizeStdDev < 0.1 {
		b.SizeStdDev = 0.1
	}
	b.LineSpacing = median(gaps)
	if b.LineSpacing <= 0 {
		b.LineSpacing = b.MedianSize * 1.2
	}

	// Distinct above-body sizes per page, largest first.
	perPage := make(map[int]map[float64]bool)
	for _, s := range spans {
		if s.FontSize <= b.MedianSize {
			continue
		}
		if perPage[s.Page] == nil {
			perPage[s.Page] = make(map[float64]bool)
		}
		perPage[s.Page][s.FontSize] = true
	}
	for page, set := range perPage {
		tiers := make([]float64, 0, len(set))
		for size := range set {
			tiers = append(tiers, size)
		}
		sort.Sort(sort.Reverse(sort.Float64Slice(tiers)))
		b.sizeTiers[page] = tiers
	}

	return b
}

// fontScore computes the font strategy's confidence and level guess for
// one span against the document baseline. Prominence is the span's size
// expressed in standard deviations above the body size, with a boost for
// bold weights. Spans at or below body size with a regular weight score 0
// and carry no level guess.
func fontScore(span types.TextSpan, b Baseline) (score float64, level types.HeadingLevel, ok bool) {
	z := (span.FontSize - b.MedianSize) / b.SizeStdDev

	score = clamp01(z / 2.5)
	if span.Bold {
		score = clamp01(score + 0.2)
	}
	if score <= 0 {
		return 0, "", false
	}

	// Level from the span's rank among its page's above-body sizes:
	// largest tier is H1, next H2, everything else H3. Bold-only spans
	// at body size land in H3.
	tier := tierRank(b.sizeTiers[span.Page], span.FontSize)
	switch tier {
	case 0:
		level = types.LevelH1
	case 1:
		level = types.LevelH2
	default:
		level = types.LevelH3
	}
	return score, level, true
}

// tierRank returns the index of size in the descending tier list, or the
// list length when the size is not present (body-size bold spans).
func tierRank(tiers []float64, size float64) int {
	for i, t := range tiers {
		if size == t {
			return i
		}
	}
	return len(tiers)
}

// median returns the middle value of vs, or 0 for an empty slice.
func median(vs []float64) float64 {
	if len(vs) == 0 {
		return 0
	}
	sorted := make([]float64, len(vs))
	copy(sorted, vs)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

// stdDev returns the standard deviation of vs around center.
func stdDev(vs []float64, center float64) float64 {
	if len(vs) < 2 {
		return 0
	}
	var sum float64
	for _, v := range vs {
		d := v - center
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(vs)))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
