package intel

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Metrics tracks operational counters across the gateway and refresher.
var metrics struct {
	LLMCalls        atomic.Int64
	LLMErrors       atomic.Int64
	ProfileAnalyses atomic.Int64
	LeadSearches    atomic.Int64
	NewsFetches     atomic.Int64
	OutreachDrafts  atomic.Int64
	Refreshes       atomic.Int64
	RefreshFailures atomic.Int64
}

func IncrLLMCalls()        { metrics.LLMCalls.Add(1) }
func IncrLLMErrors()       { metrics.LLMErrors.Add(1) }
func IncrProfileAnalyses() { metrics.ProfileAnalyses.Add(1) }
func IncrLeadSearches()    { metrics.LeadSearches.Add(1) }
func IncrNewsFetches()     { metrics.NewsFetches.Add(1) }
func IncrOutreachDrafts()  { metrics.OutreachDrafts.Add(1) }
func IncrRefreshes()       { metrics.Refreshes.Add(1) }
func IncrRefreshFailures() { metrics.RefreshFailures.Add(1) }

// GetMetrics returns a snapshot of all counters.
func GetMetrics() map[string]int64 {
	return map[string]int64{
		"llm_calls":        metrics.LLMCalls.Load(),
		"llm_errors":       metrics.LLMErrors.Load(),
		"profile_analyses": metrics.ProfileAnalyses.Load(),
		"lead_searches":    metrics.LeadSearches.Load(),
		"news_fetches":     metrics.NewsFetches.Load(),
		"outreach_drafts":  metrics.OutreachDrafts.Load(),
		"refreshes":        metrics.Refreshes.Load(),
		"refresh_failures": metrics.RefreshFailures.Load(),
	}
}

// FormatMetrics returns counters as a simple text format for the HTTP endpoint.
func FormatMetrics() string {
	m := GetMetrics()
	keys := []string{
		"llm_calls", "llm_errors",
		"profile_analyses", "lead_searches", "news_fetches", "outreach_drafts",
		"refreshes", "refresh_failures",
	}
	var sb strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&sb, "%s %d\n", k, m[k])
	}
	return sb.String()
}
