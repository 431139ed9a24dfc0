package bangs

import "testing"

func TestMatchBangsTier1PrecedesTier2(t *testing.T) {
	r := testRegistry()
	matches := r.MatchBangs("g", 5, 2)

	sawTier2 := false
	for _, b := range matches {
		isTier1 := len(b.Trigger) > 0 && b.Trigger[0] == 'g' && hasPrefixTrigger(b.Trigger, "g")
		if !isTier1 {
			sawTier2 = true
		} else if sawTier2 {
			t.Fatalf("tier 1 match %q found after a tier 2 match", b.Trigger)
		}
	}
}

func hasPrefixTrigger(trigger, prefix string) bool {
	return len(trigger) >= len(prefix) && trigger[:len(prefix)] == prefix
}

func TestMatchBangsTier1Truncation(t *testing.T) {
	r := testRegistry()
	matches := r.MatchBangs("g", 2, 0)

	// Tier 1 keeps only the first two trigger matches, "g" and "gh". A zero
	// maxTier2 selects the default of 2, so Tier 2 adds "ghr" and "maps" by
	// name ("GitHub Repo", "Google Maps"). "ghr" also has a trigger starting
	// with "g", so the tiers are checked by position, not by trigger prefix.
	want := []string{"g", "gh", "ghr", "maps"}
	same := len(matches) == len(want)
	for i := 0; same && i < len(want); i++ {
		same = matches[i].Trigger == want[i]
	}
	if !same {
		t.Fatalf("expected tier 1 [g gh] then tier 2 [ghr maps], got %+v", matches)
	}
}

func TestMatchBangsNoDuplicateBetweenTiers(t *testing.T) {
	r := testRegistry()
	matches := r.MatchBangs("g", 5, 5)

	seen := map[string]bool{}
	for _, b := range matches {
		if seen[b.Trigger] {
			t.Fatalf("bang %q appeared twice across tiers", b.Trigger)
		}
		seen[b.Trigger] = true
	}
}

func TestMatchBangsFindsNameMatchInTier2(t *testing.T) {
	r := testRegistry()
	// "github" matches the "GitHub" name but not any trigger starting with it
	matches := r.MatchBangs("github", 5, 2)

	found := false
	for _, b := range matches {
		if b.Name == "GitHub" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected tier-2 name match for 'github', got %+v", matches)
	}
}
