package intel

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"
)

// Intelligence is the external-model boundary. All ranking, lead
// discovery, and summarization is delegated through it; the rest of the
// system only reshapes what comes back. Implemented by Gateway in
// production and by deterministic fakes in tests.
type Intelligence interface {
	AnalyzeProfile(ctx context.Context, files []FileInput) (*Profile, error)
	FindLeads(ctx context.Context, profile *Profile) ([]Lead, error)
	GenerateOutreach(ctx context.Context, lead Lead, profile *Profile) (OutreachDrafts, error)
	FetchNews(ctx context.Context) ([]NewsItem, error)
}

// Gateway calls the Gemini API. Each operation is a point-in-time
// snapshot: one request, no retry, no caching.
type Gateway struct {
	client *genai.Client
	model  string
}

// NewGateway creates a Gemini-backed gateway.
func NewGateway(ctx context.Context, apiKey, model string) (*Gateway, error) {
	if apiKey == "" {
		return nil, errors.New("gateway: GEMINI_API_KEY is required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gateway: create client: %w", err)
	}
	return &Gateway{client: client, model: model}, nil
}

// generate issues one GenerateContent call and returns the text payload.
func (g *Gateway) generate(ctx context.Context, contents []*genai.Content, config *genai.GenerateContentConfig) (string, error) {
	IncrLLMCalls()
	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, config)
	if err != nil {
		IncrLLMErrors()
		return "", fmt.Errorf("gemini: %w", err)
	}
	return resp.Text(), nil
}

// AnalyzeProfile runs multimodal analysis over the uploaded documents
// and returns the semantic profile. Fails if no files are supplied —
// callers must guard the empty case.
func (g *Gateway) AnalyzeProfile(ctx context.Context, files []FileInput) (*Profile, error) {
	if len(files) == 0 {
		return nil, errors.New("analyze_profile: at least one document is required")
	}
	IncrProfileAnalyses()

	parts := make([]*genai.Part, 0, len(files)+1)
	parts = append(parts, genai.NewPartFromText(profileUserPrompt))
	names := make([]string, 0, len(files))
	for _, f := range files {
		parts = append(parts, genai.NewPartFromBytes(f.Data, f.MIMEType))
		names = append(names, f.Name)
	}

	text, err := g.generate(ctx,
		[]*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)},
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(profileSystemInstruction, genai.RoleUser),
			ResponseMIMEType:  "application/json",
			ResponseSchema:    profileSchema,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("analyze_profile: %w", err)
	}
	return NormalizeProfile(text, names, time.Now().UnixMilli()), nil
}

// FindLeads requests up to 5 candidate companies matching the profile's
// top keywords. The funding/stage/size criteria live in the instruction
// text; the model applies them, not this code.
func (g *Gateway) FindLeads(ctx context.Context, profile *Profile) ([]Lead, error) {
	IncrLeadSearches()
	hint := strings.Join(TopKeywords(profile.RankedKeywords, 5), ", ")

	text, err := g.generate(ctx,
		[]*genai.Content{genai.NewContentFromText(fmt.Sprintf(leadUserPrompt, hint), genai.RoleUser)},
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(fmt.Sprintf(leadSystemInstruction, hint), genai.RoleUser),
			Tools:             []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}},
			ResponseMIMEType:  "application/json",
			ResponseSchema:    leadListSchema,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("find_leads: %w", err)
	}
	return NormalizeLeads(text, time.Now().UnixMilli()), nil
}

// GenerateOutreach drafts the ~200-word email and the <200-character
// direct message for a lead. The keyword context uses the profile's top
// 3 entries in stored order, not recomputed effective scores.
func (g *Gateway) GenerateOutreach(ctx context.Context, lead Lead, profile *Profile) (OutreachDrafts, error) {
	IncrOutreachDrafts()
	top := profile.RankedKeywords
	if len(top) > 3 {
		top = top[:3]
	}
	kws := make([]string, 0, len(top))
	for _, k := range top {
		kws = append(kws, k.Keyword)
	}
	keywords := strings.Join(kws, ", ")

	text, err := g.generate(ctx,
		[]*genai.Content{genai.NewContentFromText(fmt.Sprintf(outreachUserPrompt, lead.CompanyName), genai.RoleUser)},
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(
				fmt.Sprintf(outreachSystemInstruction, lead.CompanyName, lead.CompanyName, keywords),
				genai.RoleUser,
			),
			ResponseMIMEType: "application/json",
			ResponseSchema:   outreachSchema,
		},
	)
	if err != nil {
		return OutreachDrafts{}, fmt.Errorf("generate_outreach: %w", err)
	}
	return NormalizeOutreach(text), nil
}

// FetchNews requests 3 regulatory and 3 scientific items.
func (g *Gateway) FetchNews(ctx context.Context) ([]NewsItem, error) {
	IncrNewsFetches()

	text, err := g.generate(ctx,
		[]*genai.Content{genai.NewContentFromText(newsUserPrompt, genai.RoleUser)},
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(newsSystemInstruction, genai.RoleUser),
			Tools:             []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}},
			ResponseMIMEType:  "application/json",
			ResponseSchema:    newsListSchema,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("fetch_news: %w", err)
	}
	return NormalizeNews(text, time.Now().UnixMilli()), nil
}
