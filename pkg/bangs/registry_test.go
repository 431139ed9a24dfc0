package bangs

import "testing"

func TestDefaultBangsTriggersAreUniqueLowercaseNoSpace(t *testing.T) {
	seen := map[string]bool{}
	for _, b := range DefaultBangs() {
		if b.Trigger == "" {
			t.Fatalf("bang %+v has empty trigger", b)
		}
		for _, r := range b.Trigger {
			if r >= 'A' && r <= 'Z' {
				t.Fatalf("trigger %q is not lowercase", b.Trigger)
			}
			if r == ' ' || r == '\t' {
				t.Fatalf("trigger %q contains whitespace", b.Trigger)
			}
		}
		if seen[b.Trigger] {
			t.Fatalf("duplicate trigger %q", b.Trigger)
		}
		seen[b.Trigger] = true
	}
}

func TestRegistryHasDefaultBang(t *testing.T) {
	r := NewRegistry(DefaultBangs(), "g")
	if r.Default().Trigger != "g" {
		t.Fatalf("expected default trigger 'g', got %q", r.Default().Trigger)
	}
}

func TestRegistryLookup(t *testing.T) {
	r := NewRegistry(DefaultBangs(), "g")
	b, ok := r.Lookup("y")
	if !ok || b.Name != "YouTube" {
		t.Fatalf("expected to find YouTube bang, got %+v ok=%v", b, ok)
	}
	if _, ok := r.Lookup("nope"); ok {
		t.Fatalf("expected lookup of unknown trigger to fail")
	}
}
