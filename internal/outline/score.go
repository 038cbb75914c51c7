// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package outline

import "github.com/KamalKumarMachireddy/PDF-Outline-Extractor-Round-1A/pkg/types"

// Candidate is one span promoted to a potential heading, carrying the
// three independent strategy scores and the merged confidence. Created by
// ScoreSpans and consumed by Dedupe; never mutated afterwards.
type Candidate struct {
	Span     types.TextSpan
	Pattern  float64
	Font     float64
	Position float64
	Combined float64
	Level    types.HeadingLevel
}

// ScoreSpans runs the multi-strategy scorer over filtered spans. The font
// baseline must come from a first pass over the whole document so that
// prominence is measured against body text, not against other headings.
//
// A span becomes a Candidate only when its weighted combined score reaches
// cfg.MinConfidence and some strategy yields a level guess: pattern wins
// above cfg.PatternLevelThreshold, the font tier otherwise. Spans with no
// determinable level are dropped regardless of confidence.
func ScoreSpans(spans []types.TextSpan, baseline Baseline, cfg types.ExtractionConfig) []Candidate {
	var candidates []Candidate
	for _, s := range spans {
		pm := matchPattern(s.Text)
		fs, fontLevel, fontOK := fontScore(s, baseline)
		ps := positionScore(s, baseline)

		combined := cfg.PatternWeight*pm.Score + cfg.FontWeight*fs + cfg.PositionWeight*ps
		if combined < cfg.MinConfidence {
			continue
		}

		var level types.HeadingLevel
		switch {
		case pm.HasLevel && pm.Score > cfg.PatternLevelThreshold:
			level = pm.Level
		case fontOK:
			level = fontLevel
		default:
			continue
		}

		candidates = append(candidates, Candidate{
			Span:     s,
			Pattern:  pm.Score,
			Font:     fs,
			Position: ps,
			Combined: combined,
			Level:    level,
		})
	}
	return candidates
}
