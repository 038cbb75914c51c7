// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package index

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/KamalKumarMachireddy/PDF-Outline-Extractor-Round-1A/pkg/types"
)

// --- test helpers ---

func testSetup(t *testing.T) (*Store, string) {
	t.Helper()
	tmpDir := t.TempDir()

	cfg := types.IndexConfig{
		DBPath:     filepath.Join(tmpDir, "index", "outlines.db"),
		MaxResults: 20,
	}
	store, err := NewStore(cfg)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { store.Close() })

	resultsDir := filepath.Join(tmpDir, "results")
	if err := os.MkdirAll(resultsDir, 0o755); err != nil {
		t.Fatal(err)
	}
	return store, resultsDir
}

func writeOutline(t *testing.T, resultsDir, docID string, outline types.OutlineResult) {
	t.Helper()
	data, err := json.Marshal(&outline)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(resultsDir, docID+outlineSuffix)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
}

func sampleOutline(title string) types.OutlineResult {
	return types.OutlineResult{
		Title:  title,
		Method: types.MethodMixed,
		Outline: []types.Heading{
			{Level: types.LevelH1, Text: "1. Introduction", Page: 1},
			{Level: types.LevelH2, Text: "1.1 Attention Mechanisms", Page: 2},
			{Level: types.LevelH1, Text: "2. Evaluation", Page: 5},
		},
	}
}

// --- tests ---

func TestIngestAndSearch(t *testing.T) {
	store, resultsDir := testSetup(t)
	ctx := context.Background()

	writeOutline(t, resultsDir, "paper-a", sampleOutline("Efficient Attention"))
	writeOutline(t, resultsDir, "paper-b", types.OutlineResult{
		Title:  "Storage Systems",
		Method: types.MethodPattern,
		Outline: []types.Heading{
			{Level: types.LevelH1, Text: "1. Write-Ahead Logging", Page: 1},
		},
	})

	var log bytes.Buffer
	summary, err := store.Ingest(ctx, resultsDir, &log)
	if err != nil {
		t.Fatalf("Ingest: %v", err)
	}
	if summary.Indexed != 2 || summary.Failed != 0 {
		t.Fatalf("summary = %+v, want 2 indexed", summary)
	}

	n, err := store.DocumentCount(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Errorf("document count = %d, want 2", n)
	}

	matches, err := store.Search(ctx, "attention", 0)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("got %d matches, want 1: %+v", len(matches), matches)
	}
	m := matches[0]
	if m.DocumentID != "paper-a" || m.DocumentTitle != "Efficient Attention" {
		t.Errorf("match provenance = %s / %s", m.DocumentID, m.DocumentTitle)
	}
	if m.Level != types.LevelH2 || m.Page != 2 {
		t.Errorf("match = %+v, want H2 page 2", m)
	}
}

func TestIngest_SkipsUnchanged(t *testing.T) {
	store, resultsDir := testSetup(t)
	ctx := context.Background()

	writeOutline(t, resultsDir, "paper-a", sampleOutline("Efficient Attention"))

	var log bytes.Buffer
	if _, err := store.Ingest(ctx, resultsDir, &log); err != nil {
		t.Fatal(err)
	}

	summary, err := store.Ingest(ctx, resultsDir, &log)
	if err != nil {
		t.Fatal(err)
	}
	if summary.Skipped != 1 || summary.Indexed != 0 {
		t.Errorf("second run summary = %+v, want 1 skipped", summary)
	}
}

func TestIngest_UpdatesChanged(t *testing.T) {
	store, resultsDir := testSetup(t)
	ctx := context.Background()

	writeOutline(t, resultsDir, "paper-a", sampleOutline("Efficient Attention"))
	var log bytes.Buffer
	if _, err := store.Ingest(ctx, resultsDir, &log); err != nil {
		t.Fatal(err)
	}

	// Rewrite with different headings and a newer mod time.
	updated := types.OutlineResult{
		Title:  "Efficient Attention, Revised",
		Method: types.MethodFont,
		Outline: []types.Heading{
			{Level: types.LevelH1, Text: "Sparse Transformers", Page: 3},
		},
	}
	writeOutline(t, resultsDir, "paper-a", updated)
	path := filepath.Join(resultsDir, "paper-a"+outlineSuffix)
	future := time.Now().Add(2 * time.Second)
	if err := os.Chtimes(path, future, future); err != nil {
		t.Fatal(err)
	}

	summary, err := store.Ingest(ctx, resultsDir, &log)
	if err != nil {
		t.Fatal(err)
	}
	if summary.Updated != 1 {
		t.Fatalf("summary = %+v, want 1 updated", summary)
	}

	// Old headings are gone from the search index.
	if matches, err := store.Search(ctx, "attention", 0); err != nil {
		t.Fatal(err)
	} else if len(matches) != 0 {
		t.Errorf("stale matches survived update: %+v", matches)
	}

	matches, err := store.Search(ctx, "transformers", 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) != 1 || matches[0].DocumentTitle != "Efficient Attention, Revised" {
		t.Errorf("matches = %+v", matches)
	}
}

func TestIngest_BadFileDoesNotAbort(t *testing.T) {
	store, resultsDir := testSetup(t)
	ctx := context.Background()

	writeOutline(t, resultsDir, "good", sampleOutline("Good Document"))
	bad := filepath.Join(resultsDir, "bad"+outlineSuffix)
	if err := os.WriteFile(bad, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	var log bytes.Buffer
	summary, err := store.Ingest(ctx, resultsDir, &log)
	if err != nil {
		t.Fatalf("Ingest: %v", err)
	}
	if summary.Indexed != 1 || summary.Failed != 1 {
		t.Errorf("summary = %+v, want 1 indexed 1 failed", summary)
	}
}

func TestSearch_EmptyQuery(t *testing.T) {
	store, _ := testSetup(t)
	if _, err := store.Search(context.Background(), "", 0); err == nil {
		t.Error("empty query succeeded, want error")
	}
}

func TestSearch_MaxResults(t *testing.T) {
	store, resultsDir := testSetup(t)
	ctx := context.Background()

	outline := types.OutlineResult{Title: "Big Document", Method: types.MethodPattern}
	for i := 1; i <= 5; i++ {
		outline.Outline = append(outline.Outline, types.Heading{
			Level: types.LevelH2, Text: "Evaluation Round", Page: i,
		})
	}
	writeOutline(t, resultsDir, "big", outline)

	var log bytes.Buffer
	if _, err := store.Ingest(ctx, resultsDir, &log); err != nil {
		t.Fatal(err)
	}

	matches, err := store.Search(ctx, "evaluation", 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) != 2 {
		t.Errorf("got %d matches, want 2", len(matches))
	}
}
