// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package index

import (
	"context"
	"fmt"

	"github.com/KamalKumarMachireddy/PDF-Outline-Extractor-Round-1A/pkg/types"
)

// Match is one heading returned by Search, with its document provenance.
type Match struct {
	DocumentID    string             `json:"document_id" yaml:"document_id"`
	DocumentTitle string             `json:"document_title" yaml:"document_title"`
	Level         types.HeadingLevel `json:"level" yaml:"level"`
	Text          string             `json:"text" yaml:"text"`
	Page          int                `json:"page" yaml:"page"`
}

// Search runs an FTS5 query over heading text and returns matches in
// relevance order. maxResults of zero uses the store default.
func (s *Store) Search(ctx context.Context, query string, maxResults int) ([]Match, error) {
	if query == "" {
		return nil, fmt.Errorf("search query required")
	}
	if maxResults <= 0 {
		maxResults = s.maxResults
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT h.document_id, COALESCE(d.title, ''), h.level, h.text, h.page
		 FROM headings_fts
		 JOIN headings h ON h.rowid = headings_fts.rowid
		 LEFT JOIN documents d ON h.document_id = d.id
		 WHERE headings_fts MATCH ?
		 ORDER BY headings_fts.rank
		 LIMIT ?`,
		query, maxResults,
	)
	if err != nil {
		return nil, fmt.Errorf("querying index: %w", err)
	}
	defer rows.Close()

	var matches []Match
	for rows.Next() {
		var m Match
		var level string
		if err := rows.Scan(&m.DocumentID, &m.DocumentTitle, &level, &m.Text, &m.Page); err != nil {
			return nil, fmt.Errorf("scanning match: %w", err)
		}
		m.Level = types.HeadingLevel(level)
		matches = append(matches, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating matches: %w", err)
	}
	return matches, nil
}

// DocumentCount returns the number of indexed documents.
func (s *Store) DocumentCount(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM documents`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting documents: %w", err)
	}
	return n, nil
}
