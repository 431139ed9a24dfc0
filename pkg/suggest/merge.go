package suggest

import (
	"sort"
	"strings"

	"github.com/lmarchetti/bangserve/pkg/predict"
)

const externalBaseScore = 0.9
const externalBoostOnMatch = 0.15

// mergeWithExternal folds externals into local predictions: an external
// that exact-matches (lowercased) an existing local prediction boosts its
// score by 0.15 (clamped at 1.0) instead of adding a duplicate; otherwise
// it is added with source "external" and base score 0.9. Results are
// sorted descending by score and truncated to limit.
func mergeWithExternal(local []predict.Prediction, externals []string, limit int) []predict.Prediction {
	byKey := make(map[string]int, len(local)) // lowercased text -> index in merged
	merged := make([]predict.Prediction, len(local))
	copy(merged, local)
	for i, p := range merged {
		byKey[strings.ToLower(p.Text)] = i
	}

	for _, ext := range externals {
		key := strings.ToLower(ext)
		if idx, ok := byKey[key]; ok {
			merged[idx].Score += externalBoostOnMatch
			if merged[idx].Score > 1.0 {
				merged[idx].Score = 1.0
			}
			continue
		}
		merged = append(merged, predict.Prediction{
			Text:   ext,
			Source: predict.SourceExternal,
			Score:  externalBaseScore,
		})
		byKey[key] = len(merged) - 1
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Score > merged[j].Score
	})

	if len(merged) > limit {
		merged = merged[:limit]
	}
	return merged
}
