package bangs

import "strings"

const (
	defaultMaxTier1 = 5
	defaultMaxTier2 = 2
)

// MatchBangs ranks bangs against a bang-prefix in two tiers: Tier 1 is
// bangs whose trigger starts with prefix (registry order, truncated to
// maxTier1); Tier 2 is bangs not already in Tier 1 whose name starts with
// prefix (registry order, truncated to maxTier2). Tier 1 always precedes
// Tier 2 and is never displaced by it.
func (r *Registry) MatchBangs(prefix string, maxTier1, maxTier2 int) []Bang {
	if maxTier1 <= 0 {
		maxTier1 = defaultMaxTier1
	}
	if maxTier2 <= 0 {
		maxTier2 = defaultMaxTier2
	}
	lowerPrefix := strings.ToLower(prefix)

	tier1 := make([]Bang, 0, maxTier1)
	inTier1 := make(map[string]bool)
	for _, b := range r.bangs {
		if len(tier1) >= maxTier1 {
			break
		}
		if strings.HasPrefix(b.Trigger, lowerPrefix) {
			tier1 = append(tier1, b)
			inTier1[b.Trigger] = true
		}
	}

	tier2 := make([]Bang, 0, maxTier2)
	for _, b := range r.bangs {
		if len(tier2) >= maxTier2 {
			break
		}
		if inTier1[b.Trigger] {
			continue
		}
		if strings.HasPrefix(strings.ToLower(b.Name), lowerPrefix) {
			tier2 = append(tier2, b)
		}
	}

	return append(tier1, tier2...)
}
