package intel

import (
	"reflect"
	"testing"
)

func TestEffectiveScore_Clamping(t *testing.T) {
	tests := []struct {
		name string
		k    KeywordScore
		want float64
	}{
		{"no adjustment", KeywordScore{BaseScore: 72}, 72},
		{"positive adjustment", KeywordScore{BaseScore: 72, UserAdjustment: 5}, 77},
		{"negative adjustment", KeywordScore{BaseScore: 72, UserAdjustment: -10}, 62},
		{"clamped high", KeywordScore{BaseScore: 90, UserAdjustment: 50}, 100},
		{"clamped low", KeywordScore{BaseScore: 10, UserAdjustment: -50}, 0},
		{"exactly 100", KeywordScore{BaseScore: 95, UserAdjustment: 5}, 100},
		{"exactly 0", KeywordScore{BaseScore: 5, UserAdjustment: -5}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EffectiveScore(tt.k); got != tt.want {
				t.Errorf("EffectiveScore = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAdjust(t *testing.T) {
	entries := []KeywordScore{
		{Keyword: "oncology", BaseScore: 90},
		{Keyword: "biologics", BaseScore: 80, UserAdjustment: -5},
	}

	out, err := Adjust(entries, 1, 5)
	if err != nil {
		t.Fatalf("Adjust error: %v", err)
	}
	if out[1].UserAdjustment != 0 {
		t.Errorf("adjustment = %v, want 0", out[1].UserAdjustment)
	}
	if out[1].BaseScore != 80 {
		t.Errorf("base score changed to %v", out[1].BaseScore)
	}
	if out[0] != entries[0] {
		t.Error("untouched entry changed")
	}
	// The input slice must not be mutated.
	if entries[1].UserAdjustment != -5 {
		t.Errorf("input mutated: adjustment = %v", entries[1].UserAdjustment)
	}
}

func TestAdjust_IndexOutOfRange(t *testing.T) {
	entries := []KeywordScore{{Keyword: "oncology"}}
	for _, idx := range []int{-1, 1, 42} {
		if _, err := Adjust(entries, idx, 5); err == nil {
			t.Errorf("Adjust(index=%d) expected error", idx)
		}
	}
}

func TestTopKeywords(t *testing.T) {
	entries := []KeywordScore{
		{Keyword: "crispr", BaseScore: 60},
		{Keyword: "oncology", BaseScore: 95},
		// Adjustment lifts biologics past crispr.
		{Keyword: "biologics", BaseScore: 55, UserAdjustment: 10},
		{Keyword: "regulatory", BaseScore: 40},
	}

	got := TopKeywords(entries, 3)
	want := []string{"oncology", "biologics", "crispr"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TopKeywords = %v, want %v", got, want)
	}
}

func TestTopKeywords_StableOnTies(t *testing.T) {
	entries := []KeywordScore{
		{Keyword: "first", BaseScore: 50},
		{Keyword: "second", BaseScore: 50},
		{Keyword: "third", BaseScore: 50},
	}
	got := TopKeywords(entries, 3)
	want := []string{"first", "second", "third"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("tie order not preserved: %v", got)
	}
}

func TestTopKeywords_NLargerThanList(t *testing.T) {
	entries := []KeywordScore{{Keyword: "only", BaseScore: 10}}
	if got := TopKeywords(entries, 5); len(got) != 1 {
		t.Errorf("expected 1 keyword, got %v", got)
	}
	if got := TopKeywords(nil, 5); len(got) != 0 {
		t.Errorf("expected empty result, got %v", got)
	}
}
