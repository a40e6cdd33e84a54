package intelserver

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/biocapital/intel/internal/intel"
)

// ProfileGetInput is the input for profile_get.
type ProfileGetInput struct{}

// ProfileGetOutput is the structured output for profile_get.
type ProfileGetOutput struct {
	Profile         *intel.Profile `json:"profile,omitempty"`
	EffectiveScores []float64      `json:"effectiveScores,omitempty"`
	Message         string         `json:"message,omitempty"`
}

func registerProfileGet(server *mcp.Server, deps Deps) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "profile_get",
		Description: "Return the stored expertise profile: source file names, summary, and the ranked keywords with their effective scores after user adjustments.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, _ ProfileGetInput) (*mcp.CallToolResult, ProfileGetOutput, error) {
		profile, err := deps.Store.LatestProfile(ctx)
		if err != nil {
			return nil, ProfileGetOutput{}, err
		}
		if profile == nil {
			return nil, ProfileGetOutput{Message: "no profile yet; analyze documents first"}, nil
		}
		scores := make([]float64, len(profile.RankedKeywords))
		for i, k := range profile.RankedKeywords {
			scores[i] = intel.EffectiveScore(k)
		}
		return nil, ProfileGetOutput{Profile: profile, EffectiveScores: scores}, nil
	})
}

// KeywordAdjustInput is the input for keyword_adjust.
type KeywordAdjustInput struct {
	Index int     `json:"index" jsonschema:"Zero-based position of the keyword in the ranked list"`
	Delta float64 `json:"delta" jsonschema:"Adjustment step: +5 or -5"`
}

// KeywordAdjustOutput is the structured output for keyword_adjust.
type KeywordAdjustOutput struct {
	Keyword        intel.KeywordScore `json:"keyword"`
	EffectiveScore float64            `json:"effectiveScore"`
}

func registerKeywordAdjust(server *mcp.Server, deps Deps) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "keyword_adjust",
		Description: "Nudge one ranked keyword's weight by +5 or -5. The adjustment accumulates on the keyword and shifts its effective score, which stays clamped to 0-100.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input KeywordAdjustInput) (*mcp.CallToolResult, *KeywordAdjustOutput, error) {
		if input.Delta != 5 && input.Delta != -5 {
			return nil, nil, errors.New("delta must be +5 or -5")
		}
		profile, err := deps.Store.LatestProfile(ctx)
		if err != nil {
			return nil, nil, err
		}
		if profile == nil {
			return nil, nil, intel.ErrNoProfile
		}
		adjusted, err := intel.Adjust(profile.RankedKeywords, input.Index, input.Delta)
		if err != nil {
			return nil, nil, err
		}
		profile.RankedKeywords = adjusted
		if err := deps.Store.ReplaceProfile(ctx, profile); err != nil {
			return nil, nil, err
		}
		k := adjusted[input.Index]
		return nil, &KeywordAdjustOutput{Keyword: k, EffectiveScore: intel.EffectiveScore(k)}, nil
	})
}
