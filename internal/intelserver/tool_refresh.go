package intelserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/biocapital/intel/internal/intel"
)

// RefreshInput is the input for lead_feed_refresh.
type RefreshInput struct{}

func registerRefresh(server *mcp.Server, deps Deps) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "lead_feed_refresh",
		Description: "Re-fetch candidate leads and the regulatory/scientific news feed from the intelligence service and replace the persisted collections. Requires an analyzed profile; refuses if a sync is already running.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, _ RefreshInput) (*mcp.CallToolResult, *intel.RefreshResult, error) {
		result, err := deps.Refresher.Refresh(ctx)
		if err != nil {
			return nil, nil, err
		}
		return nil, result, nil
	})
}
