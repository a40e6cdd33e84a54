package intel

import "google.golang.org/genai"

// Response schemas for the four gateway operations. Each mirrors the
// shape the normalizers decode; the model is constrained to emit JSON
// matching these exactly.

var profileSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"summary": {Type: genai.TypeString},
		"rankedKeywords": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"keyword":            {Type: genai.TypeString},
					"score":              {Type: genai.TypeNumber},
					"multiplierApplied":  {Type: genai.TypeBoolean},
					"visualBoostApplied": {Type: genai.TypeBoolean},
				},
			},
		},
	},
}

var leadListSchema = &genai.Schema{
	Type: genai.TypeArray,
	Items: &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"companyName": {Type: genai.TypeString},
			"website":     {Type: genai.TypeString},
			"description": {Type: genai.TypeString},
			"aiSummary":   {Type: genai.TypeString, Description: "3-5 sentence summary"},
			"employees":   {Type: genai.TypeString},
			"funding": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"round":        {Type: genai.TypeString},
					"amount":       {Type: genai.TypeString},
					"date":         {Type: genai.TypeString},
					"leadInvestor": {Type: genai.TypeString},
				},
			},
			"matchedKeywords": {
				Type:  genai.TypeArray,
				Items: &genai.Schema{Type: genai.TypeString},
			},
			"poc": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"role":     {Type: genai.TypeString},
					"name":     {Type: genai.TypeString},
					"linkedin": {Type: genai.TypeString, Description: "Full LinkedIn URL if found"},
				},
			},
			"fitStatement": {Type: genai.TypeString},
			"relevantLinks": {
				Type:        genai.TypeArray,
				Description: "2-3 relevant source links for this specific lead.",
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"title": {Type: genai.TypeString},
						"url":   {Type: genai.TypeString},
					},
				},
			},
		},
	},
}

var outreachSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"email":    {Type: genai.TypeString},
		"linkedin": {Type: genai.TypeString},
	},
}

var newsListSchema = &genai.Schema{
	Type: genai.TypeArray,
	Items: &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"title":        {Type: genai.TypeString},
			"source":       {Type: genai.TypeString},
			"url":          {Type: genai.TypeString, Description: "The direct URL to the source article."},
			"summary":      {Type: genai.TypeString, Description: "3-5 sentence summary"},
			"isOpenAccess": {Type: genai.TypeBoolean},
			"type":         {Type: genai.TypeString, Enum: []string{"Scientific", "Regulatory"}},
			"topic":        {Type: genai.TypeString},
			"jurisdiction": {Type: genai.TypeString, Enum: []string{"USA", "EU", "UK", "Canada", "Global"}},
		},
	},
}
