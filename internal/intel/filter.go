package intel

import "strings"

// LeadFilter is the dashboard filter configuration. Zero values disable
// the corresponding rule: Stage "" or "All", empty substrings, and a
// MinAmountMillions of 0 all pass everything through.
type LeadFilter struct {
	Stage             string  `json:"stage,omitempty"`
	Investor          string  `json:"investor,omitempty"`
	RoleOrName        string  `json:"role_or_name,omitempty"`
	MinAmountMillions float64 `json:"min_amount_millions,omitempty"`
}

// Match reports whether l survives the filter. Archived leads are
// excluded unconditionally; all substring rules are case-insensitive.
func (f LeadFilter) Match(l Lead) bool {
	if l.Status == StatusArchived {
		return false
	}
	if f.Stage != "" && f.Stage != "All" {
		if !containsFold(l.Funding.Round, f.Stage) {
			return false
		}
	}
	if f.Investor != "" {
		// Absent lead investor never matches an investor filter.
		if !containsFold(l.Funding.LeadInvestor, f.Investor) {
			return false
		}
	}
	if f.RoleOrName != "" {
		if !containsFold(l.POC.Role, f.RoleOrName) && !containsFold(l.POC.Name, f.RoleOrName) {
			return false
		}
	}
	if f.MinAmountMillions > 0 {
		if float64(l.Funding.AmountValue) < f.MinAmountMillions*1_000_000 {
			return false
		}
	}
	return true
}

// FilterLeads returns the ordered subset of leads matching f.
func FilterLeads(leads []Lead, f LeadFilter) []Lead {
	out := make([]Lead, 0, len(leads))
	for _, l := range leads {
		if f.Match(l) {
			out = append(out, l)
		}
	}
	return out
}

// containsFold is a case-insensitive substring test. An empty haystack
// matches nothing (an empty needle is handled by the callers).
func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
