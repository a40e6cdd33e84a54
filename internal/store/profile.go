package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/biocapital/intel/internal/intel"
)

// ReplaceProfile stores p as the installation's single profile,
// overwriting any previous one. Replace-by-assignment into a fixed slot:
// there is never a window where no profile exists mid-replace.
func (s *Store) ReplaceProfile(ctx context.Context, p *intel.Profile) error {
	names, err := json.Marshal(p.FileNames)
	if err != nil {
		return fmt.Errorf("profile: marshal file names: %w", err)
	}
	keywords, err := json.Marshal(p.RankedKeywords)
	if err != nil {
		return fmt.Errorf("profile: marshal keywords: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO profile (slot, id, file_names, ranked_keywords, summary, ts)
		 VALUES (1, ?, ?, ?, ?, ?)
		 ON CONFLICT(slot) DO UPDATE SET
		   id = excluded.id,
		   file_names = excluded.file_names,
		   ranked_keywords = excluded.ranked_keywords,
		   summary = excluded.summary,
		   ts = excluded.ts`,
		p.ID, string(names), string(keywords), p.Summary, p.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("profile: replace: %w", err)
	}
	return nil
}

// LatestProfile returns the stored profile, or nil if none exists.
func (s *Store) LatestProfile(ctx context.Context) (*intel.Profile, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, file_names, ranked_keywords, summary, ts FROM profile WHERE slot = 1`)

	var p intel.Profile
	var names, keywords string
	err := row.Scan(&p.ID, &names, &keywords, &p.Summary, &p.Timestamp)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("profile: read: %w", err)
	}
	if err := json.Unmarshal([]byte(names), &p.FileNames); err != nil {
		return nil, fmt.Errorf("profile: decode file names: %w", err)
	}
	if err := json.Unmarshal([]byte(keywords), &p.RankedKeywords); err != nil {
		return nil, fmt.Errorf("profile: decode keywords: %w", err)
	}
	return &p, nil
}

// DeleteProfile removes the stored profile, if any.
func (s *Store) DeleteProfile(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM profile WHERE slot = 1`); err != nil {
		return fmt.Errorf("profile: delete: %w", err)
	}
	return nil
}
