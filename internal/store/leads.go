package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/biocapital/intel/internal/intel"
)

// ErrLeadNotFound is returned for patches against an unknown lead id.
var ErrLeadNotFound = errors.New("store: lead not found")

// ReplaceCollections replaces the leads and news collections in a single
// transaction. Either both collections reflect the new snapshot or
// neither does.
func (s *Store) ReplaceCollections(ctx context.Context, leads []intel.Lead, news []intel.NewsItem) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("store: begin replace: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM leads`); err != nil {
		return fmt.Errorf("store: clear leads: %w", err)
	}
	for _, l := range leads {
		if err := insertLead(ctx, tx, l); err != nil {
			return err
		}
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM news`); err != nil {
		return fmt.Errorf("store: clear news: %w", err)
	}
	for _, n := range news {
		if err := insertNews(ctx, tx, n); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("store: commit replace: %w", err)
	}
	return nil
}

func insertLead(ctx context.Context, tx *sql.Tx, l intel.Lead) error {
	funding, err := json.Marshal(l.Funding)
	if err != nil {
		return fmt.Errorf("store: marshal funding: %w", err)
	}
	matched, err := json.Marshal(l.MatchedKeywords)
	if err != nil {
		return fmt.Errorf("store: marshal keywords: %w", err)
	}
	poc, err := json.Marshal(l.POC)
	if err != nil {
		return fmt.Errorf("store: marshal poc: %w", err)
	}
	links, err := json.Marshal(l.ContextualLinks)
	if err != nil {
		return fmt.Errorf("store: marshal links: %w", err)
	}
	_, err = tx.ExecContext(ctx,
		`INSERT INTO leads (id, company_name, website, description, ai_summary, employees,
		   funding, matched_keywords, poc, fit_statement, contextual_links,
		   outreach_email, outreach_linkedin, status, ts)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		l.ID, l.CompanyName, l.Website, l.Description, l.AISummary, l.Employees,
		string(funding), string(matched), string(poc), l.FitStatement, string(links),
		l.OutreachEmail, l.OutreachLinkedIn, string(l.Status), l.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("store: insert lead %s: %w", l.ID, err)
	}
	return nil
}

// ListLeads returns all leads in reverse-chronological order. Leads from
// the same capture batch share a timestamp and keep their insert order.
func (s *Store) ListLeads(ctx context.Context) ([]intel.Lead, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, company_name, website, description, ai_summary, employees,
		   funding, matched_keywords, poc, fit_statement, contextual_links,
		   outreach_email, outreach_linkedin, status, ts
		 FROM leads ORDER BY ts DESC, rowid ASC`)
	if err != nil {
		return nil, fmt.Errorf("store: list leads: %w", err)
	}
	defer rows.Close()

	leads := []intel.Lead{}
	for rows.Next() {
		l, err := scanLead(rows)
		if err != nil {
			return nil, err
		}
		leads = append(leads, l)
	}
	return leads, rows.Err()
}

// GetLead returns a single lead by id.
func (s *Store) GetLead(ctx context.Context, id string) (*intel.Lead, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, company_name, website, description, ai_summary, employees,
		   funding, matched_keywords, poc, fit_statement, contextual_links,
		   outreach_email, outreach_linkedin, status, ts
		 FROM leads WHERE id = ?`, id)
	if err != nil {
		return nil, fmt.Errorf("store: get lead: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("store: get lead: %w", err)
		}
		return nil, ErrLeadNotFound
	}
	l, err := scanLead(rows)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func scanLead(rows *sql.Rows) (intel.Lead, error) {
	var l intel.Lead
	var website, description, aiSummary, employees, fit sql.NullString
	var email, linkedin sql.NullString
	var funding, matched, poc, links, status string
	err := rows.Scan(&l.ID, &l.CompanyName, &website, &description, &aiSummary, &employees,
		&funding, &matched, &poc, &fit, &links, &email, &linkedin, &status, &l.Timestamp)
	if err != nil {
		return intel.Lead{}, fmt.Errorf("store: scan lead: %w", err)
	}
	l.Website = website.String
	l.Description = description.String
	l.AISummary = aiSummary.String
	l.Employees = employees.String
	l.FitStatement = fit.String
	l.OutreachEmail = email.String
	l.OutreachLinkedIn = linkedin.String
	l.Status = intel.LeadStatus(status)
	if err := json.Unmarshal([]byte(funding), &l.Funding); err != nil {
		return intel.Lead{}, fmt.Errorf("store: decode funding for %s: %w", l.ID, err)
	}
	if err := json.Unmarshal([]byte(matched), &l.MatchedKeywords); err != nil {
		return intel.Lead{}, fmt.Errorf("store: decode keywords for %s: %w", l.ID, err)
	}
	if err := json.Unmarshal([]byte(poc), &l.POC); err != nil {
		return intel.Lead{}, fmt.Errorf("store: decode poc for %s: %w", l.ID, err)
	}
	if err := json.Unmarshal([]byte(links), &l.ContextualLinks); err != nil {
		return intel.Lead{}, fmt.Errorf("store: decode links for %s: %w", l.ID, err)
	}
	return l, nil
}

// UpdateLeadStatus applies a manual status change after validating the
// transition against the pipeline rules.
func (s *Store) UpdateLeadStatus(ctx context.Context, id string, next intel.LeadStatus) error {
	current, err := s.GetLead(ctx, id)
	if err != nil {
		return err
	}
	if !current.Status.CanTransition(next) {
		return &intel.ErrBadTransition{From: current.Status, To: next}
	}
	if _, err := s.db.ExecContext(ctx, `UPDATE leads SET status = ? WHERE id = ?`, string(next), id); err != nil {
		return fmt.Errorf("store: update status: %w", err)
	}
	return nil
}

// SetOutreach patches both outreach drafts onto a lead. Drafts are
// written together; a lead still on New Lead is bumped to Contacted,
// further-along leads keep their stage.
func (s *Store) SetOutreach(ctx context.Context, id string, drafts intel.OutreachDrafts) error {
	current, err := s.GetLead(ctx, id)
	if err != nil {
		return err
	}
	status := current.Status
	if status == intel.StatusNewLead {
		status = intel.StatusContacted
	}
	_, err = s.db.ExecContext(ctx,
		`UPDATE leads SET outreach_email = ?, outreach_linkedin = ?, status = ? WHERE id = ?`,
		drafts.Email, drafts.LinkedIn, string(status), id)
	if err != nil {
		return fmt.Errorf("store: set outreach: %w", err)
	}
	return nil
}

// CountLeadsByStatus returns per-status lead totals for pipeline stats.
func (s *Store) CountLeadsByStatus(ctx context.Context) (map[intel.LeadStatus]int, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT status, COUNT(*) FROM leads GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("store: count leads: %w", err)
	}
	defer rows.Close()

	counts := make(map[intel.LeadStatus]int)
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("store: scan count: %w", err)
		}
		counts[intel.LeadStatus(status)] = n
	}
	return counts, rows.Err()
}
