package suggest

import (
	"regexp"
	"strings"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// norm normalizes s for dedup comparison: lowercased, internal whitespace
// runs collapsed to a single space, leading/trailing space trimmed.
func norm(s string) string {
	s = strings.ToLower(s)
	s = whitespaceRun.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// Deduper owns a seen-set keyed by norm(s) and a result sink, replacing
// the closure-captured mutable set pattern with an explicit value.
type Deduper struct {
	seen   map[string]bool
	result []string
	limit  int
}

// NewDeduper returns a Deduper that accepts at most limit items.
func NewDeduper(limit int) *Deduper {
	return &Deduper{seen: make(map[string]bool), limit: limit}
}

// Add appends s to the result if its normalized key is non-empty and not
// already seen, and the limit has not been reached. Returns true if added.
func (d *Deduper) Add(s string) bool {
	if len(d.result) >= d.limit {
		return false
	}
	key := norm(s)
	if key == "" || d.seen[key] {
		return false
	}
	d.seen[key] = true
	d.result = append(d.result, s)
	return true
}

// Full reports whether the Deduper has reached its limit.
func (d *Deduper) Full() bool {
	return len(d.result) >= d.limit
}

// Result returns the accumulated, deduplicated suggestions in insertion
// order.
func (d *Deduper) Result() []string {
	if d.result == nil {
		return []string{}
	}
	return d.result
}
