// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package spans turns PDF glyph runs into line-level text spans.
//
// PDF byte parsing is delegated entirely to github.com/ledongthuc/pdf;
// this package only reassembles the library's per-run output into ordered
// lines with position, size, and weight metadata. All geometry is reported
// in top-down page coordinates so that downstream heuristics can reason
// about "distance from the top of the page" directly.
package spans

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	pdflib "github.com/ledongthuc/pdf"

	"github.com/KamalKumarMachireddy/PDF-Outline-Extractor-Round-1A/pkg/types"
)

// ErrDocumentRead marks a document that could not be opened or parsed:
// missing, corrupt, or encrypted without a password. Batch callers match
// it with errors.Is to record the failure and move on.
var ErrDocumentRead = errors.New("document unreadable")

const (
	// rowTolerance is the Y distance in points within which glyph runs
	// are treated as the same visual line.
	rowTolerance = 3.0

	// wordGapFactor is the fraction of the font size beyond which a
	// horizontal gap between runs becomes a word boundary.
	wordGapFactor = 0.3

	// fallbackPageHeight is used when no MediaBox can be resolved
	// (US Letter, 11in at 72dpi).
	fallbackPageHeight = 792.0
)

// Extract opens the PDF at pdfPath and returns its text spans in document
// order, truncated to the first pageLimit pages. A document that opens but
// contains no text yields an empty slice and a nil error; open and parse
// failures are reported as ErrDocumentRead.
func Extract(pdfPath string, pageLimit int) ([]types.TextSpan, error) {
	f, reader, err := open(pdfPath)
	if err != nil {
		return nil, fmt.Errorf("%w: opening %s: %v", ErrDocumentRead, pdfPath, err)
	}
	defer f.Close()

	numPages := reader.NumPage()
	if pageLimit > 0 && numPages > pageLimit {
		numPages = pageLimit
	}

	var all []types.TextSpan
	for pageNum := 1; pageNum <= numPages; pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}
		texts, ok := pageTexts(page)
		if !ok {
			// A single malformed content stream should not sink the
			// document; remaining pages are still processed.
			continue
		}
		all = append(all, AssemblePage(texts, pageNum, pageHeight(page))...)
	}
	return all, nil
}

// open wraps the library's Open, converting its panics on malformed
// cross-reference tables into ordinary errors.
func open(pdfPath string) (f *os.File, reader *pdflib.Reader, err error) {
	defer func() {
		if r := recover(); r != nil {
			if f != nil {
				f.Close()
			}
			f, reader, err = nil, nil, fmt.Errorf("parsing: %v", r)
		}
	}()
	return pdflib.Open(pdfPath)
}

// pageTexts reads the page's glyph runs, converting the library's panics
// on malformed content streams into a skipped page.
func pageTexts(page pdflib.Page) (texts []pdflib.Text, ok bool) {
	defer func() {
		if recover() != nil {
			texts, ok = nil, false
		}
	}()
	return page.Content().Text, true
}

// pageHeight resolves the page height from the MediaBox, walking up the
// page tree for inherited values.
func pageHeight(page pdflib.Page) float64 {
	v := page.V
	for i := 0; i < 16 && !v.IsNull(); i++ {
		if mb := v.Key("MediaBox"); !mb.IsNull() && mb.Len() == 4 {
			if h := mb.Index(3).Float64() - mb.Index(1).Float64(); h > 0 {
				return h
			}
		}
		v = v.Key("Parent")
	}
	return fallbackPageHeight
}

// AssemblePage groups one page's glyph runs into line-level TextSpans,
// ordered top to bottom. The library reports bottom-up baselines; output
// spans use top-down coordinates and carry the vertical gap to their
// neighbors. Exported so tests can drive the assembly without PDF files.
func AssemblePage(texts []pdflib.Text, pageNum int, height float64) []types.TextSpan {
	rows := groupRows(texts)
	if len(rows) == 0 {
		return nil
	}

	result := make([]types.TextSpan, 0, len(rows))
	for _, row := range rows {
		if s, ok := rowToSpan(row, pageNum, height); ok {
			result = append(result, s)
		}
	}

	// Rows come out ordered by descending baseline (top of page first),
	// which after coordinate flipping is ascending Y0. Gaps are measured
	// between adjacent lines, with the page edges closing the ends.
	for i := range result {
		if i == 0 {
			result[i].LineGapAbove = result[i].Y0
		} else {
			result[i].LineGapAbove = clampNonNeg(result[i].Y0 - result[i-1].Y1)
		}
		if i == len(result)-1 {
			result[i].LineGapBelow = clampNonNeg(height - result[i].Y1)
		} else {
			result[i].LineGapBelow = clampNonNeg(result[i+1].Y0 - result[i].Y1)
		}
	}
	return result
}

// groupRows buckets glyph runs by baseline Y within rowTolerance and
// returns the rows ordered top of page first (descending Y).
func groupRows(texts []pdflib.Text) [][]pdflib.Text {
	type bucket struct {
		yMin, yMax float64
		texts      []pdflib.Text
	}

	var buckets []bucket
	for _, t := range texts {
		if strings.TrimSpace(t.S) == "" {
			continue
		}
		placed := false
		for i := range buckets {
			if t.Y >= buckets[i].yMin-rowTolerance && t.Y <= buckets[i].yMax+rowTolerance {
				buckets[i].texts = append(buckets[i].texts, t)
				if t.Y < buckets[i].yMin {
					buckets[i].yMin = t.Y
				}
				if t.Y > buckets[i].yMax {
					buckets[i].yMax = t.Y
				}
				placed = true
				break
			}
		}
		if !placed {
			buckets = append(buckets, bucket{yMin: t.Y, yMax: t.Y, texts: []pdflib.Text{t}})
		}
	}

	sort.SliceStable(buckets, func(i, j int) bool {
		return buckets[i].yMax > buckets[j].yMax
	})

	rows := make([][]pdflib.Text, len(buckets))
	for i, b := range buckets {
		rows[i] = b.texts
	}
	return rows
}

// rowToSpan merges one row's runs left to right into a single span,
// inserting spaces at word-sized gaps. Returns false for rows that end up
// empty after trimming.
func rowToSpan(row []pdflib.Text, pageNum int, height float64) (types.TextSpan, bool) {
	sort.SliceStable(row, func(i, j int) bool {
		return row[i].X < row[j].X
	})

	var (
		b          strings.Builder
		x0         = row[0].X
		x1         = row[0].X + row[0].W
		baseMin    = row[0].Y
		baseMax    = row[0].Y
		sizeCount  = map[float64]int{}
		boldCount  int
		totalCount int
	)

	prevEnd := row[0].X
	for i, t := range row {
		if i > 0 {
			gap := t.X - prevEnd
			threshold := wordGapFactor * t.FontSize
			if threshold <= 0 {
				threshold = 3.0
			}
			if gap > threshold {
				b.WriteByte(' ')
			}
		}
		b.WriteString(t.S)
		prevEnd = t.X + t.W
		if prevEnd > x1 {
			x1 = prevEnd
		}
		if t.X < x0 {
			x0 = t.X
		}
		if t.Y < baseMin {
			baseMin = t.Y
		}
		if t.Y > baseMax {
			baseMax = t.Y
		}
		n := len(t.S)
		sizeCount[t.FontSize] += n
		if IsBoldFont(t.Font) {
			boldCount += n
		}
		totalCount += n
	}

	text := strings.Join(strings.Fields(b.String()), " ")
	if text == "" {
		return types.TextSpan{}, false
	}

	size := dominantSize(sizeCount)

	// Flip to top-down coordinates. The baseline sits at the bottom of
	// the glyphs, so the line's top edge is roughly one font size above
	// the highest baseline in the row.
	top := clampNonNeg(height - baseMax - size)
	bottom := clampNonNeg(height - baseMin)

	return types.TextSpan{
		Text:       text,
		Page:       pageNum,
		FontSize:   size,
		Bold:       totalCount > 0 && boldCount*2 >= totalCount,
		X0:         x0,
		Y0:         top,
		X1:         x1,
		Y1:         bottom,
		PageHeight: height,
	}, true
}

// dominantSize returns the font size covering the most characters.
func dominantSize(counts map[float64]int) float64 {
	var size float64
	best := -1
	for s, n := range counts {
		if n > best || (n == best && s > size) {
			size, best = s, n
		}
	}
	return size
}

// IsBoldFont reports whether a PDF font name indicates a bold weight.
// Font names embed the style after a dash or plus, e.g. "Helvetica-Bold"
// or "ABCDEF+TimesNewRoman,BoldItalic".
func IsBoldFont(name string) bool {
	lower := strings.ToLower(name)
	for _, marker := range []string{"bold", "black", "heavy", "semib"} {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

func clampNonNeg(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
