package intel

import "testing"

func sampleLead() Lead {
	return Lead{
		ID:          "lead-1",
		CompanyName: "Genorix",
		Funding: Funding{
			Round:        "Series B",
			Amount:       "$40M",
			AmountValue:  40_000_000,
			LeadInvestor: "Sofinnova Partners",
		},
		POC:    PointOfContact{Role: "Chief Scientific Officer", Name: "Dana Wells"},
		Status: StatusNewLead,
	}
}

func TestLeadFilter_Match(t *testing.T) {
	tests := []struct {
		name   string
		filter LeadFilter
		mutate func(*Lead)
		want   bool
	}{
		{"empty filter passes", LeadFilter{}, nil, true},
		{"stage All passes", LeadFilter{Stage: "All"}, nil, true},
		{"stage match", LeadFilter{Stage: "series b"}, nil, true},
		{"stage mismatch", LeadFilter{Stage: "Seed"}, nil, false},
		{"investor match", LeadFilter{Investor: "sofinnova"}, nil, true},
		{"investor mismatch", LeadFilter{Investor: "a16z"}, nil, false},
		{"investor filter vs absent investor", LeadFilter{Investor: "a16z"}, func(l *Lead) { l.Funding.LeadInvestor = "" }, false},
		{"role match", LeadFilter{RoleOrName: "scientific"}, nil, true},
		{"name match", LeadFilter{RoleOrName: "dana"}, nil, true},
		{"role/name mismatch", LeadFilter{RoleOrName: "finance"}, nil, false},
		{"amount at threshold", LeadFilter{MinAmountMillions: 40}, nil, true},
		{"amount below threshold", LeadFilter{MinAmountMillions: 50}, nil, false},
		{"archived always excluded", LeadFilter{}, func(l *Lead) { l.Status = StatusArchived }, false},
		{"archived excluded even when matching", LeadFilter{Stage: "Series B"}, func(l *Lead) { l.Status = StatusArchived }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := sampleLead()
			if tt.mutate != nil {
				tt.mutate(&l)
			}
			if got := tt.filter.Match(l); got != tt.want {
				t.Errorf("Match = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilterLeads_PreservesOrder(t *testing.T) {
	a, b, c := sampleLead(), sampleLead(), sampleLead()
	a.ID, b.ID, c.ID = "lead-a", "lead-b", "lead-c"
	b.Status = StatusArchived

	got := FilterLeads([]Lead{a, b, c}, LeadFilter{})
	if len(got) != 2 {
		t.Fatalf("expected 2 leads, got %d", len(got))
	}
	if got[0].ID != "lead-a" || got[1].ID != "lead-c" {
		t.Errorf("order not preserved: %s, %s", got[0].ID, got[1].ID)
	}
}
