// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"testing"

	"github.com/spf13/cobra"

	"github.com/KamalKumarMachireddy/PDF-Outline-Extractor-Round-1A/pkg/types"
)

func flagCmd(t *testing.T) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{}
	cmd.Flags().Int("page-limit", 0, "")
	cmd.Flags().Float64("min-confidence", 0, "")
	cmd.Flags().Bool("debug", false, "")
	return cmd
}

func TestExtractionConfig(t *testing.T) {
	defaults := types.DefaultExtractionConfig()

	t.Run("no flags keeps defaults", func(t *testing.T) {
		cfg := extractionConfig(flagCmd(t))
		if cfg.PageLimit != defaults.PageLimit || cfg.MinConfidence != defaults.MinConfidence {
			t.Errorf("cfg = %+v, want defaults %+v", cfg, defaults)
		}
		if err := cfg.Validate(); err != nil {
			t.Errorf("default config invalid: %v", err)
		}
	})

	t.Run("explicit zero means config default", func(t *testing.T) {
		cmd := flagCmd(t)
		if err := cmd.Flags().Set("page-limit", "0"); err != nil {
			t.Fatal(err)
		}
		cfg := extractionConfig(cmd)
		if cfg.PageLimit != defaults.PageLimit {
			t.Errorf("page limit = %d, want default %d", cfg.PageLimit, defaults.PageLimit)
		}
		if err := cfg.Validate(); err != nil {
			t.Errorf("--page-limit 0 produced invalid config: %v", err)
		}
	})

	t.Run("positive flags override", func(t *testing.T) {
		cmd := flagCmd(t)
		for flag, value := range map[string]string{
			"page-limit":     "10",
			"min-confidence": "0.55",
			"debug":          "true",
		} {
			if err := cmd.Flags().Set(flag, value); err != nil {
				t.Fatal(err)
			}
		}
		cfg := extractionConfig(cmd)
		if cfg.PageLimit != 10 || cfg.MinConfidence != 0.55 || !cfg.Debug {
			t.Errorf("cfg = %+v, want overrides applied", cfg)
		}
	})
}
