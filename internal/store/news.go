package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/biocapital/intel/internal/intel"
)

func insertNews(ctx context.Context, tx *sql.Tx, n intel.NewsItem) error {
	open := 0
	if n.IsOpenAccess {
		open = 1
	}
	_, err := tx.ExecContext(ctx,
		`INSERT INTO news (id, title, source, url, summary, open_access, type, topic, jurisdiction, ts)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		n.ID, n.Title, n.Source, n.URL, n.Summary, open, string(n.Type), n.Topic, n.Jurisdiction, n.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("store: insert news %s: %w", n.ID, err)
	}
	return nil
}

// ListNews returns all news items in reverse-chronological order.
func (s *Store) ListNews(ctx context.Context) ([]intel.NewsItem, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, source, url, summary, open_access, type, topic, jurisdiction, ts
		 FROM news ORDER BY ts DESC, rowid ASC`)
	if err != nil {
		return nil, fmt.Errorf("store: list news: %w", err)
	}
	defer rows.Close()

	items := []intel.NewsItem{}
	for rows.Next() {
		var n intel.NewsItem
		var source, topic, jurisdiction sql.NullString
		var open int
		var typ string
		if err := rows.Scan(&n.ID, &n.Title, &source, &n.URL, &n.Summary, &open, &typ, &topic, &jurisdiction, &n.Timestamp); err != nil {
			return nil, fmt.Errorf("store: scan news: %w", err)
		}
		n.Source = source.String
		n.Topic = topic.String
		n.Jurisdiction = jurisdiction.String
		n.IsOpenAccess = open != 0
		n.Type = intel.NewsType(typ)
		items = append(items, n)
	}
	return items, rows.Err()
}
