package intelserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/biocapital/intel/internal/intel"
)

// NewsListInput is the input for news_list.
type NewsListInput struct {
	Type string `json:"type,omitempty" jsonschema:"Filter by item type: Scientific or Regulatory; empty returns both"`
}

// NewsListOutput is the structured output for news_list.
type NewsListOutput struct {
	Items []intel.NewsItem `json:"items"`
	Total int              `json:"total"`
}

func registerNewsList(server *mcp.Server, deps Deps) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "news_list",
		Description: "List the stored industry news feed, newest first: scientific publications and regulatory updates gathered during the last refresh.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input NewsListInput) (*mcp.CallToolResult, NewsListOutput, error) {
		items, err := deps.Store.ListNews(ctx)
		if err != nil {
			return nil, NewsListOutput{}, err
		}
		if input.Type != "" {
			want := intel.NewsType(input.Type)
			kept := items[:0]
			for _, it := range items {
				if it.Type == want {
					kept = append(kept, it)
				}
			}
			items = kept
		}
		return nil, NewsListOutput{Items: items, Total: len(items)}, nil
	})
}
