package intelserver

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/biocapital/intel/internal/intel"
)

// LeadListInput is the input for lead_list.
type LeadListInput struct {
	Stage             string  `json:"stage,omitempty" jsonschema:"Funding round substring filter (e.g. Series A); All or empty disables"`
	Investor          string  `json:"investor,omitempty" jsonschema:"Lead-investor substring filter"`
	RoleOrName        string  `json:"role_or_name,omitempty" jsonschema:"Point-of-contact role or name substring filter"`
	MinAmountMillions float64 `json:"min_amount_millions,omitempty" jsonschema:"Minimum funding amount in millions; 0 disables"`
	IncludeArchived   bool    `json:"include_archived,omitempty" jsonschema:"Return the raw pipeline including archived leads, ignoring all filters"`
}

// LeadListOutput is the structured output for lead_list.
type LeadListOutput struct {
	Leads []intel.Lead `json:"leads"`
	Total int          `json:"total"`
}

func registerLeadList(server *mcp.Server, deps Deps) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "lead_list",
		Description: "List candidate leads from the local store, newest first, with optional stage/investor/contact/amount filters. Archived leads are excluded unless include_archived is set.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input LeadListInput) (*mcp.CallToolResult, LeadListOutput, error) {
		leads, err := deps.Store.ListLeads(ctx)
		if err != nil {
			return nil, LeadListOutput{}, err
		}
		if !input.IncludeArchived {
			leads = intel.FilterLeads(leads, intel.LeadFilter{
				Stage:             input.Stage,
				Investor:          input.Investor,
				RoleOrName:        input.RoleOrName,
				MinAmountMillions: input.MinAmountMillions,
			})
		}
		return nil, LeadListOutput{Leads: leads, Total: len(leads)}, nil
	})
}

// LeadStatusUpdateInput is the input for lead_status_update.
type LeadStatusUpdateInput struct {
	ID     string `json:"id" jsonschema:"Lead identifier"`
	Status string `json:"status" jsonschema:"Target status: New Lead, Contacted, Meeting Scheduled, Solution Discussed, Archived"`
}

// LeadStatusUpdateOutput is the output for lead_status_update.
type LeadStatusUpdateOutput struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

func registerLeadStatusUpdate(server *mcp.Server, deps Deps) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "lead_status_update",
		Description: "Move a lead to a new pipeline status. The pipeline only moves forward (New Lead, Contacted, Meeting Scheduled, Solution Discussed); any active lead may be archived.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input LeadStatusUpdateInput) (*mcp.CallToolResult, *LeadStatusUpdateOutput, error) {
		if input.ID == "" {
			return nil, nil, errors.New("id is required")
		}
		next := intel.LeadStatus(input.Status)
		if !next.Valid() {
			return nil, nil, errors.New("unknown status")
		}
		if err := deps.Store.UpdateLeadStatus(ctx, input.ID, next); err != nil {
			return nil, nil, err
		}
		return nil, &LeadStatusUpdateOutput{
			ID:      input.ID,
			Message: "lead " + input.ID + " moved to " + input.Status,
		}, nil
	})
}

// OutreachGenerateInput is the input for outreach_generate.
type OutreachGenerateInput struct {
	ID string `json:"id" jsonschema:"Lead identifier to draft outreach for"`
}

func registerOutreachGenerate(server *mcp.Server, deps Deps) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "outreach_generate",
		Description: "Generate the dual-format outreach drafts (approximately 200-word email plus an under-200-character direct message) for a lead and store them on the record. Regeneration overwrites both drafts; a New Lead is bumped to Contacted.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input OutreachGenerateInput) (*mcp.CallToolResult, *intel.OutreachDrafts, error) {
		if input.ID == "" {
			return nil, nil, errors.New("id is required")
		}
		lead, err := deps.Store.GetLead(ctx, input.ID)
		if err != nil {
			return nil, nil, err
		}
		profile, err := deps.Store.LatestProfile(ctx)
		if err != nil {
			return nil, nil, err
		}
		if profile == nil {
			return nil, nil, intel.ErrNoProfile
		}
		drafts, err := deps.Gateway.GenerateOutreach(ctx, *lead, profile)
		if err != nil {
			return nil, nil, err
		}
		if err := deps.Store.SetOutreach(ctx, input.ID, drafts); err != nil {
			return nil, nil, err
		}
		return nil, &drafts, nil
	})
}
