package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"jobmatch-engine/internal/domain"
)

// Search is one recorded search event: the raw query, the facet state it
// ran with, and how many jobs survived filtering.
type Search struct {
	ID           int64              `json:"id"`
	Query        string             `json:"query"`
	Filters      domain.FilterState `json:"filters"`
	ResultsCount int                `json:"resultsCount"`
	At           string             `json:"at"`
}

type ListSearchesOpts struct {
	Window string // 24h | 7d | all
	Limit  int
}

func Migrate(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var v int
	if err := tx.QueryRow(`PRAGMA user_version;`).Scan(&v); err != nil {
		return err
	}
	if v >= 1 {
		return tx.Commit()
	}

	if _, err := tx.Exec(`
CREATE TABLE IF NOT EXISTS searches (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  query TEXT NOT NULL,
  filters TEXT NOT NULL DEFAULT '{}',
  results_count INTEGER NOT NULL DEFAULT 0,
  at TEXT NOT NULL
);
`); err != nil {
		return err
	}

	if _, err := tx.Exec(`
CREATE INDEX IF NOT EXISTS idx_searches_at
ON searches(at);
`); err != nil {
		return err
	}

	if _, err := tx.Exec(`PRAGMA user_version = 1;`); err != nil {
		return err
	}
	return tx.Commit()
}

func InsertSearch(ctx context.Context, db *sql.DB, s Search) (int64, error) {
	filtersB, _ := json.Marshal(s.Filters)
	at := s.At
	if at == "" {
		at = time.Now().UTC().Format(time.RFC3339)
	}

	res, err := db.ExecContext(ctx, `
INSERT INTO searches(query, filters, results_count, at)
VALUES(?,?,?,?);`,
		s.Query, string(filtersB), s.ResultsCount, at)
	if err != nil {
		return 0, fmt.Errorf("insert search: %w", err)
	}
	return res.LastInsertId()
}

func ListSearches(ctx context.Context, db *sql.DB, opts ListSearchesOpts) ([]Search, error) {
	if opts.Limit <= 0 || opts.Limit > 2000 {
		opts.Limit = 200
	}

	// at is TEXT holding RFC3339; datetime() compares it fine
	where := ""
	switch opts.Window {
	case "24h":
		where = "WHERE at >= datetime('now','-24 hours')"
	case "all":
		// no filter
	default:
		where = "WHERE at >= datetime('now','-7 days')"
	}

	query := fmt.Sprintf(`
SELECT id, query, filters, results_count, at
FROM searches
%s
ORDER BY at DESC
LIMIT ?;
`, where)

	rows, err := db.QueryContext(ctx, query, opts.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Search
	for rows.Next() {
		var s Search
		var filtersJSON string
		if err := rows.Scan(&s.ID, &s.Query, &filtersJSON, &s.ResultsCount, &s.At); err != nil {
			return nil, err
		}
		_ = json.Unmarshal([]byte(filtersJSON), &s.Filters)
		out = append(out, s)
	}
	return out, rows.Err()
}

func CleanupOldSearches(db *sql.DB) (deleted int64, err error) {
	res, err := db.Exec(`
DELETE FROM searches
WHERE at < datetime('now', '-3 months');
`)
	if err != nil {
		return 0, fmt.Errorf("cleanup old searches: %w", err)
	}
	n, _ := res.RowsAffected()
	return n, nil
}
