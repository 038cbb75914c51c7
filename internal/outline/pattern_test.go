// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package outline

import (
	"testing"

	"github.com/KamalKumarMachireddy/PDF-Outline-Extractor-Round-1A/pkg/types"
)

func TestMatchPattern(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantScore float64
		wantLevel types.HeadingLevel
		wantHas   bool
	}{
		{"numbered depth 1", "1. Introduction", 0.9, types.LevelH1, true},
		{"numbered depth 1 no dot", "3 Evaluation Setup", 0.9, types.LevelH1, true},
		{"numbered depth 2", "2.1 Related Work", 0.9, types.LevelH2, true},
		{"numbered depth 3", "2.1.3 Edge Cases", 0.9, types.LevelH3, true},
		{"numbered depth 4 caps at H3", "1.2.3.4 Deep Nesting", 0.9, types.LevelH3, true},
		{"chapter", "Chapter 7", 0.9, types.LevelH1, true},
		{"chapter lowercase", "chapter 2 begins here", 0.9, types.LevelH1, true},
		{"appendix", "Appendix B", 0.9, types.LevelH1, true},
		{"roman numeral", "IV. Methodology", 0.8, types.LevelH1, true},
		{"letter enumeration", "A. Scope", 0.7, types.LevelH2, true},
		{"keyword", "Introduction", 0.8, types.LevelH1, true},
		{"keyword with colon", "References:", 0.8, types.LevelH1, true},
		{"keyword mixed case", "EXECUTIVE SUMMARY", 0.8, types.LevelH1, true},
		{"all caps", "SYSTEM REQUIREMENTS AND SCOPE", 0.6, types.LevelH2, true},
		{"title case", "Future Work and Open Problems", 0.5, types.LevelH2, true},
		{"plain sentence", "the quick brown fox jumps over everything", 0, "", false},
		{"empty", "", 0, "", false},
		{"lone number", "42", 0, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := matchPattern(tt.text)
			if got.Score != tt.wantScore {
				t.Errorf("score = %g, want %g", got.Score, tt.wantScore)
			}
			if got.HasLevel != tt.wantHas {
				t.Errorf("hasLevel = %v, want %v", got.HasLevel, tt.wantHas)
			}
			if tt.wantHas && got.Level != tt.wantLevel {
				t.Errorf("level = %q, want %q", got.Level, tt.wantLevel)
			}
		})
	}
}

func TestIsTitleCaseLine(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"Related Work", true},
		{"The State of the Art", true},
		{"System Design:", true},
		{"a lowercase start", false},
		{"Mixed case sentence here", false},
		{"Way Too Many Words To Plausibly Be A Heading Line Now", false},
	}
	for _, tt := range tests {
		if got := isTitleCaseLine(tt.text); got != tt.want {
			t.Errorf("isTitleCaseLine(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}
