package suggest

import (
	"testing"

	"github.com/lmarchetti/bangserve/pkg/predict"
)

func TestMergeWithExternalBoostsExistingMatch(t *testing.T) {
	local := []predict.Prediction{
		{Text: "golang", Source: predict.SourcePrefix, Score: 0.7},
	}
	merged := mergeWithExternal(local, []string{"Golang"}, 8)

	if len(merged) != 1 {
		t.Fatalf("expected a single merged entry for a case-insensitive match, got %d", len(merged))
	}
	if merged[0].Source != predict.SourcePrefix {
		t.Fatalf("expected boosted entry to retain its original source, got %q", merged[0].Source)
	}
	want := 0.7 + externalBoostOnMatch
	if merged[0].Score != want {
		t.Fatalf("expected boosted score %v, got %v", want, merged[0].Score)
	}
}

func TestMergeWithExternalClampsScoreAtOne(t *testing.T) {
	local := []predict.Prediction{
		{Text: "golang", Source: predict.SourcePrefix, Score: 0.95},
	}
	merged := mergeWithExternal(local, []string{"golang"}, 8)
	if merged[0].Score != 1.0 {
		t.Fatalf("expected score clamped to 1.0, got %v", merged[0].Score)
	}
}

func TestMergeWithExternalAppendsNewEntry(t *testing.T) {
	local := []predict.Prediction{
		{Text: "golang", Source: predict.SourcePrefix, Score: 0.7},
	}
	merged := mergeWithExternal(local, []string{"golang tutorial"}, 8)

	if len(merged) != 2 {
		t.Fatalf("expected local entry plus new external entry, got %d", len(merged))
	}
	var found bool
	for _, p := range merged {
		if p.Text == "golang tutorial" {
			found = true
			if p.Source != predict.SourceExternal {
				t.Fatalf("expected new entry source %q, got %q", predict.SourceExternal, p.Source)
			}
			if p.Score != externalBaseScore {
				t.Fatalf("expected new entry score %v, got %v", externalBaseScore, p.Score)
			}
		}
	}
	if !found {
		t.Fatalf("expected merged result to contain the new external suggestion")
	}
}

func TestMergeWithExternalSortsDescendingAndTruncates(t *testing.T) {
	local := []predict.Prediction{
		{Text: "a", Source: predict.SourcePrefix, Score: 0.3},
		{Text: "b", Source: predict.SourcePrefix, Score: 0.9},
	}
	merged := mergeWithExternal(local, []string{"c"}, 2)

	if len(merged) != 2 {
		t.Fatalf("expected truncation to limit 2, got %d", len(merged))
	}
	if merged[0].Text != "b" {
		t.Fatalf("expected highest-scoring entry first, got %q", merged[0].Text)
	}
	for i := 1; i < len(merged); i++ {
		if merged[i].Score > merged[i-1].Score {
			t.Fatalf("expected descending score order, got %v then %v", merged[i-1].Score, merged[i].Score)
		}
	}
}

func TestMergeWithExternalHandlesNoExternals(t *testing.T) {
	local := []predict.Prediction{
		{Text: "a", Source: predict.SourcePrefix, Score: 0.3},
		{Text: "b", Source: predict.SourceTrie, Score: 0.9},
	}
	merged := mergeWithExternal(local, nil, 8)
	if len(merged) != 2 {
		t.Fatalf("expected no change in count with nil externals, got %d", len(merged))
	}
	if merged[0].Text != "b" || merged[1].Text != "a" {
		t.Fatalf("expected sort by score with nil externals, got %+v", merged)
	}
}
