package intel

import "testing"

func TestParseAmountValue(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"$50,000,000", 50000000},
		{"$40M", 40},
		// The decimal point is stripped with the rest of the punctuation.
		{"$1.5M", 15},
		{"€12 million", 12},
		{"undisclosed", 0},
		{"", 0},
	}
	for _, tt := range tests {
		if got := ParseAmountValue(tt.in); got != tt.want {
			t.Errorf("ParseAmountValue(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeProfile(t *testing.T) {
	text := `{"summary":"Deep expertise in oncology.","rankedKeywords":[
		{"keyword":"oncology","score":95,"multiplierApplied":true},
		{"keyword":"crispr","score":60,"visualBoostApplied":true}]}`

	p := NormalizeProfile(text, []string{"cv.pdf", "deck.pdf"}, 1700000000000)

	if p.ID != ProfileID {
		t.Errorf("ID = %q, want %q", p.ID, ProfileID)
	}
	if p.Summary != "Deep expertise in oncology." {
		t.Errorf("Summary = %q", p.Summary)
	}
	if p.Timestamp != 1700000000000 {
		t.Errorf("Timestamp = %d", p.Timestamp)
	}
	if len(p.RankedKeywords) != 2 {
		t.Fatalf("expected 2 keywords, got %d", len(p.RankedKeywords))
	}
	k := p.RankedKeywords[0]
	if k.Keyword != "oncology" || k.BaseScore != 95 || !k.MultiplierApplied {
		t.Errorf("first keyword = %+v", k)
	}
	if k.UserAdjustment != 0 {
		t.Errorf("fresh keyword carries adjustment %v", k.UserAdjustment)
	}
}

func TestNormalizeProfile_Garbage(t *testing.T) {
	for _, text := range []string{"", "not json", "[]"} {
		p := NormalizeProfile(text, nil, 1)
		if p == nil {
			t.Fatalf("NormalizeProfile(%q) returned nil", text)
		}
		if p.Summary != DefaultSummary {
			t.Errorf("Summary = %q, want %q", p.Summary, DefaultSummary)
		}
		if len(p.RankedKeywords) != 0 {
			t.Errorf("expected no keywords, got %d", len(p.RankedKeywords))
		}
	}
}

func TestNormalizeLeads(t *testing.T) {
	text := `[
		{"companyName":"Genorix","description":"RNA therapeutics","aiSummary":"Strong fit.",
		 "employees":"~80","funding":{"round":"Series B","amount":"$40M","leadInvestor":"Sofinnova"},
		 "matchedKeywords":["oncology"],"poc":{"role":"CEO","name":"Dana Wells"},
		 "fitStatement":"Direct overlap.","relevantLinks":[{"title":"Announcement","url":"https://x.test"}]},
		{"companyName":"Bare Bio"}
	]`

	leads := NormalizeLeads(text, 1700000000000)
	if len(leads) != 2 {
		t.Fatalf("expected 2 leads, got %d", len(leads))
	}

	first := leads[0]
	if first.ID != "lead-1700000000000-0" {
		t.Errorf("ID = %q", first.ID)
	}
	if first.Status != StatusNewLead {
		t.Errorf("Status = %q", first.Status)
	}
	if first.Funding.AmountValue != 40 {
		t.Errorf("AmountValue = %d", first.Funding.AmountValue)
	}
	if len(first.ContextualLinks) != 1 || first.ContextualLinks[0].Title != "Announcement" {
		t.Errorf("ContextualLinks = %+v", first.ContextualLinks)
	}

	// The sparse record gets every named default.
	second := leads[1]
	if second.ID != "lead-1700000000000-1" {
		t.Errorf("ID = %q", second.ID)
	}
	if second.Funding.Round != DefaultRound {
		t.Errorf("Round = %q", second.Funding.Round)
	}
	if second.POC.Role != DefaultPOCRole || second.POC.Name != DefaultPOCName {
		t.Errorf("POC = %+v", second.POC)
	}
	if second.MatchedKeywords == nil || second.ContextualLinks == nil {
		t.Error("list fields should be empty, not nil")
	}
}

func TestNormalizeLeads_Garbage(t *testing.T) {
	for _, text := range []string{"", "not json", "{}"} {
		if leads := NormalizeLeads(text, 1); len(leads) != 0 {
			t.Errorf("NormalizeLeads(%q) = %d leads", text, len(leads))
		}
	}
}

func TestNormalizeNews(t *testing.T) {
	text := `[
		{"title":"FDA clears device","source":"FDA","summary":"Cleared.","type":"Regulatory",
		 "topic":"Devices","jurisdiction":"USA","url":"https://fda.test"},
		{"title":"New CAR-T data","source":"Nature","summary":"Published.","type":"Scientific",
		 "topic":"Cell Therapy","isOpenAccess":true}
	]`

	items := NormalizeNews(text, 1700000000000)
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].ID != "news-1700000000000-0" {
		t.Errorf("ID = %q", items[0].ID)
	}
	if items[0].Type != NewsRegulatory || items[0].Jurisdiction != "USA" {
		t.Errorf("first item = %+v", items[0])
	}
	// Absent URL falls back to the placeholder.
	if items[1].URL != DefaultNewsURL {
		t.Errorf("URL = %q, want %q", items[1].URL, DefaultNewsURL)
	}
	if !items[1].IsOpenAccess {
		t.Error("IsOpenAccess lost")
	}
}

func TestNormalizeOutreach(t *testing.T) {
	tests := []struct {
		name         string
		in           string
		wantEmail    string
		wantLinkedIn string
	}{
		{"both present", `{"email":"Hello","linkedin":"Hi"}`, "Hello", "Hi"},
		{"email missing", `{"linkedin":"Hi"}`, EmailDraftFailed, "Hi"},
		{"linkedin missing", `{"email":"Hello"}`, "Hello", DMDraftFailed},
		{"garbage", "not json", EmailDraftFailed, DMDraftFailed},
		{"empty", "", EmailDraftFailed, DMDraftFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeOutreach(tt.in)
			if got.Email != tt.wantEmail {
				t.Errorf("Email = %q, want %q", got.Email, tt.wantEmail)
			}
			if got.LinkedIn != tt.wantLinkedIn {
				t.Errorf("LinkedIn = %q, want %q", got.LinkedIn, tt.wantLinkedIn)
			}
		})
	}
}
