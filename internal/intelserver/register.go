// Package intelserver exposes the intelligence feed as MCP tools so an
// agent can drive the same store, gateway, and refresher the dashboard
// uses. The refresh busy guard is shared, so concurrent triggering
// across surfaces stays single-flight.
package intelserver

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/biocapital/intel/internal/intel"
	"github.com/biocapital/intel/internal/store"
)

// Deps are the shared components the tools operate on.
type Deps struct {
	Store     *store.Store
	Gateway   intel.Intelligence
	Refresher *intel.Refresher
}

// RegisterTools registers all intelligence tools on the given MCP server:
// lead_feed_refresh, lead_list, lead_status_update, outreach_generate,
// news_list, profile_get, keyword_adjust.
func RegisterTools(server *mcp.Server, deps Deps) {
	registerRefresh(server, deps)
	registerLeadList(server, deps)
	registerLeadStatusUpdate(server, deps)
	registerOutreachGenerate(server, deps)
	registerNewsList(server, deps)
	registerProfileGet(server, deps)
	registerKeywordAdjust(server, deps)
}
