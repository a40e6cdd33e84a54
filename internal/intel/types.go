// Package intel holds the core domain model: the semantic profile derived
// from uploaded documents, candidate lead records, the news feed, and the
// pure transforms (scoring, filtering) that operate on them.
package intel

import "fmt"

// LeadStatus represents the pipeline stage of a lead.
type LeadStatus string

const (
	StatusNewLead           LeadStatus = "New Lead"
	StatusContacted         LeadStatus = "Contacted"
	StatusMeetingScheduled  LeadStatus = "Meeting Scheduled"
	StatusSolutionDiscussed LeadStatus = "Solution Discussed"
	StatusArchived          LeadStatus = "Archived"
)

// statusRank orders the pipeline stages. Archived sits outside the chain.
var statusRank = map[LeadStatus]int{
	StatusNewLead:           0,
	StatusContacted:         1,
	StatusMeetingScheduled:  2,
	StatusSolutionDiscussed: 3,
}

// Valid reports whether s is a known status value.
func (s LeadStatus) Valid() bool {
	switch s {
	case StatusNewLead, StatusContacted, StatusMeetingScheduled, StatusSolutionDiscussed, StatusArchived:
		return true
	}
	return false
}

// CanTransition reports whether a lead may move from s to next.
// The pipeline only moves forward; any active stage may be archived,
// and an archived lead stays archived.
func (s LeadStatus) CanTransition(next LeadStatus) bool {
	if !s.Valid() || !next.Valid() {
		return false
	}
	if s == next {
		return true
	}
	if s == StatusArchived {
		return false
	}
	if next == StatusArchived {
		return true
	}
	return statusRank[next] > statusRank[s]
}

// ErrBadTransition wraps an illegal status change for caller branching.
type ErrBadTransition struct {
	From, To LeadStatus
}

func (e *ErrBadTransition) Error() string {
	return fmt.Sprintf("invalid status transition %q -> %q", e.From, e.To)
}

// KeywordScore is one ranked keyword in the semantic profile.
// BaseScore comes from the model; UserAdjustment is the manual ±5
// calibration and is never written by the gateway.
type KeywordScore struct {
	Keyword            string  `json:"keyword"`
	BaseScore          float64 `json:"baseScore"`
	UserAdjustment     float64 `json:"userAdjustment"`
	MultiplierApplied  bool    `json:"multiplierApplied"`
	VisualBoostApplied bool    `json:"visualBoostApplied"`
}

// Profile is the singleton semantic fingerprint derived from uploaded
// documents. At most one profile exists per installation.
type Profile struct {
	ID             string         `json:"id"`
	FileNames      []string       `json:"fileNames"`
	RankedKeywords []KeywordScore `json:"rankedKeywords"`
	Summary        string         `json:"summary"`
	Timestamp      int64          `json:"timestamp"` // unix millis
}

// Funding describes a lead's most recent financing round. Everything but
// Round is optional; AmountValue is derived from Amount at normalization.
type Funding struct {
	Round        string `json:"round"`
	Amount       string `json:"amount,omitempty"`
	AmountValue  int64  `json:"amountValue"`
	Date         string `json:"date,omitempty"`
	LeadInvestor string `json:"leadInvestor,omitempty"`
}

// PointOfContact is the key stakeholder at a lead company.
type PointOfContact struct {
	Role     string `json:"role"`
	Name     string `json:"name,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
}

// ContextualLink is a source link attached to a lead.
type ContextualLink struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Lead is a candidate organization record. Outreach drafts are generated
// together: either both fields are set or neither is.
type Lead struct {
	ID               string           `json:"id"`
	CompanyName      string           `json:"companyName"`
	Website          string           `json:"website,omitempty"`
	Description      string           `json:"description"`
	AISummary        string           `json:"aiSummary"`
	Employees        string           `json:"employees"`
	Funding          Funding          `json:"funding"`
	MatchedKeywords  []string         `json:"matchedKeywords"`
	POC              PointOfContact   `json:"poc"`
	FitStatement     string           `json:"fitStatement"`
	ContextualLinks  []ContextualLink `json:"contextualLinks"`
	OutreachEmail    string           `json:"outreachEmail,omitempty"`
	OutreachLinkedIn string           `json:"outreachLinkedIn,omitempty"`
	Status           LeadStatus       `json:"status"`
	Timestamp        int64            `json:"timestamp"` // unix millis
}

// NewsType classifies a news item.
type NewsType string

const (
	NewsScientific NewsType = "Scientific"
	NewsRegulatory NewsType = "Regulatory"
)

// NewsItem is one entry in the regulatory/scientific feed. Items are
// replaced wholesale on refresh, never mutated individually.
type NewsItem struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Source       string   `json:"source"`
	URL          string   `json:"url"`
	Summary      string   `json:"summary"`
	IsOpenAccess bool     `json:"isOpenAccess"`
	Type         NewsType `json:"type"`
	Topic        string   `json:"topic"`
	Jurisdiction string   `json:"jurisdiction,omitempty"`
	Timestamp    int64    `json:"timestamp"` // unix millis
}

// FileInput is one uploaded document handed to profile analysis.
type FileInput struct {
	Name     string
	MIMEType string
	Data     []byte
}

// OutreachDrafts is the pair of generated outreach messages.
type OutreachDrafts struct {
	Email    string `json:"email"`
	LinkedIn string `json:"linkedin"`
}
