package intel

import (
	"fmt"
	"sort"
)

// EffectiveScore is the base score plus the user's manual adjustment,
// clamped to [0,100].
func EffectiveScore(k KeywordScore) float64 {
	v := k.BaseScore + k.UserAdjustment
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// Adjust returns a copy of entries with entries[index].UserAdjustment
// shifted by delta. No other entry or field changes; scores are never
// renormalized.
func Adjust(entries []KeywordScore, index int, delta float64) ([]KeywordScore, error) {
	if index < 0 || index >= len(entries) {
		return nil, fmt.Errorf("adjust: index %d out of range (%d keywords)", index, len(entries))
	}
	out := make([]KeywordScore, len(entries))
	copy(out, entries)
	out[index].UserAdjustment += delta
	return out, nil
}

// TopKeywords returns the texts of the n highest-scoring keywords by
// effective score, descending. The sort is stable: entries with equal
// effective scores keep their model-provided order.
func TopKeywords(entries []KeywordScore, n int) []string {
	ranked := make([]KeywordScore, len(entries))
	copy(ranked, entries)
	sort.SliceStable(ranked, func(i, j int) bool {
		return EffectiveScore(ranked[i]) > EffectiveScore(ranked[j])
	})
	if n > len(ranked) {
		n = len(ranked)
	}
	out := make([]string, 0, n)
	for _, k := range ranked[:n] {
		out = append(out, k.Keyword)
	}
	return out
}
