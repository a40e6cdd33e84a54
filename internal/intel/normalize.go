package intel

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Named defaults filled in for absent model output fields.
const (
	ProfileID        = "user-profile"
	DefaultSummary   = "No analysis available."
	DefaultRound     = "Unknown"
	DefaultPOCRole   = "Unknown"
	DefaultPOCName   = "Unknown"
	DefaultNewsURL   = "#"
	EmailDraftFailed = "Email draft failed."
	DMDraftFailed    = "LinkedIn draft failed."
)

// ParseAmountValue derives a numeric funding amount by stripping every
// non-digit rune and parsing the remainder. "$50,000,000" parses to
// 50000000, but "$1.5M" parses to 15 — the decimal point is dropped with
// the rest of the punctuation. Absent or unparsable input yields 0.
func ParseAmountValue(amount string) int64 {
	var digits strings.Builder
	for _, r := range amount {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return 0
	}
	v, err := strconv.ParseInt(digits.String(), 10, 64)
	if err != nil {
		return 0
	}
	return v
}

// rawKeyword mirrors the profile-analysis response schema.
type rawKeyword struct {
	Keyword            string  `json:"keyword"`
	Score              float64 `json:"score"`
	MultiplierApplied  bool    `json:"multiplierApplied"`
	VisualBoostApplied bool    `json:"visualBoostApplied"`
}

// rawProfile mirrors the profile-analysis response schema.
type rawProfile struct {
	Summary        string       `json:"summary"`
	RankedKeywords []rawKeyword `json:"rankedKeywords"`
}

// NormalizeProfile decodes a profile-analysis payload. Empty or
// unparsable text degrades to an empty profile rather than an error.
// BaseScore is copied from the model's score and UserAdjustment is
// force-initialized to zero.
func NormalizeProfile(text string, fileNames []string, nowMillis int64) *Profile {
	var raw rawProfile
	if text != "" {
		_ = json.Unmarshal([]byte(text), &raw)
	}

	keywords := make([]KeywordScore, 0, len(raw.RankedKeywords))
	for _, k := range raw.RankedKeywords {
		keywords = append(keywords, KeywordScore{
			Keyword:            k.Keyword,
			BaseScore:          k.Score,
			UserAdjustment:     0,
			MultiplierApplied:  k.MultiplierApplied,
			VisualBoostApplied: k.VisualBoostApplied,
		})
	}

	summary := raw.Summary
	if summary == "" {
		summary = DefaultSummary
	}

	return &Profile{
		ID:             ProfileID,
		FileNames:      fileNames,
		RankedKeywords: keywords,
		Summary:        summary,
		Timestamp:      nowMillis,
	}
}

// rawLead mirrors the lead-discovery response schema.
type rawLead struct {
	CompanyName string `json:"companyName"`
	Website     string `json:"website"`
	Description string `json:"description"`
	AISummary   string `json:"aiSummary"`
	Employees   string `json:"employees"`
	Funding     struct {
		Round        string `json:"round"`
		Amount       string `json:"amount"`
		Date         string `json:"date"`
		LeadInvestor string `json:"leadInvestor"`
	} `json:"funding"`
	MatchedKeywords []string         `json:"matchedKeywords"`
	POC             *PointOfContact  `json:"poc"`
	FitStatement    string           `json:"fitStatement"`
	RelevantLinks   []ContextualLink `json:"relevantLinks"`
}

// NormalizeLeads decodes a lead-discovery payload into Lead records.
// Empty or unparsable text degrades to no leads. Every optional field is
// filled with its named default so downstream code never sees an absent
// value: round "Unknown", POC {Unknown, Unknown}, empty keyword and link
// lists. IDs are assigned as lead-<millis>-<index> and the status is
// forced to New Lead.
func NormalizeLeads(text string, nowMillis int64) []Lead {
	var raws []rawLead
	if text != "" {
		_ = json.Unmarshal([]byte(text), &raws)
	}

	leads := make([]Lead, 0, len(raws))
	for i, r := range raws {
		round := r.Funding.Round
		if round == "" {
			round = DefaultRound
		}
		poc := PointOfContact{Role: DefaultPOCRole, Name: DefaultPOCName}
		if r.POC != nil {
			poc = *r.POC
		}
		matched := r.MatchedKeywords
		if matched == nil {
			matched = []string{}
		}
		links := r.RelevantLinks
		if links == nil {
			links = []ContextualLink{}
		}

		leads = append(leads, Lead{
			ID:          fmt.Sprintf("lead-%d-%d", nowMillis, i),
			CompanyName: r.CompanyName,
			Website:     r.Website,
			Description: r.Description,
			AISummary:   r.AISummary,
			Employees:   r.Employees,
			Funding: Funding{
				Round:        round,
				Amount:       r.Funding.Amount,
				AmountValue:  ParseAmountValue(r.Funding.Amount),
				Date:         r.Funding.Date,
				LeadInvestor: r.Funding.LeadInvestor,
			},
			MatchedKeywords: matched,
			POC:             poc,
			FitStatement:    r.FitStatement,
			ContextualLinks: links,
			Status:          StatusNewLead,
			Timestamp:       nowMillis,
		})
	}
	return leads
}

// rawNews mirrors the news-discovery response schema.
type rawNews struct {
	Title        string `json:"title"`
	Source       string `json:"source"`
	URL          string `json:"url"`
	Summary      string `json:"summary"`
	IsOpenAccess bool   `json:"isOpenAccess"`
	Type         string `json:"type"`
	Topic        string `json:"topic"`
	Jurisdiction string `json:"jurisdiction"`
}

// NormalizeNews decodes a news-discovery payload. Empty or unparsable
// text degrades to no items. Absent URLs default to "#"; IDs are
// assigned as news-<millis>-<index>.
func NormalizeNews(text string, nowMillis int64) []NewsItem {
	var raws []rawNews
	if text != "" {
		_ = json.Unmarshal([]byte(text), &raws)
	}

	items := make([]NewsItem, 0, len(raws))
	for i, r := range raws {
		url := r.URL
		if url == "" {
			url = DefaultNewsURL
		}
		items = append(items, NewsItem{
			ID:           fmt.Sprintf("news-%d-%d", nowMillis, i),
			Title:        r.Title,
			Source:       r.Source,
			URL:          url,
			Summary:      r.Summary,
			IsOpenAccess: r.IsOpenAccess,
			Type:         NewsType(r.Type),
			Topic:        r.Topic,
			Jurisdiction: r.Jurisdiction,
			Timestamp:    nowMillis,
		})
	}
	return items
}

// NormalizeOutreach decodes an outreach payload, substituting the
// literal failure strings for either missing draft.
func NormalizeOutreach(text string) OutreachDrafts {
	var drafts OutreachDrafts
	if text != "" {
		_ = json.Unmarshal([]byte(text), &drafts)
	}
	if drafts.Email == "" {
		drafts.Email = EmailDraftFailed
	}
	if drafts.LinkedIn == "" {
		drafts.LinkedIn = DMDraftFailed
	}
	return drafts
}
