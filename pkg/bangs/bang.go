// Package bangs implements the bang registry, URL resolver, and two-tier
// trigger/name match policy.
package bangs

// Bang is a single shortcut: a trigger token that redirects a query to a
// target search engine's result page.
type Bang struct {
	// Trigger is the token following "!"; unique, nonempty, lowercase
	// ASCII, no whitespace.
	Trigger string
	// URLTemplate contains exactly one "{{{s}}}" placeholder, or is a
	// bare-site template to which the encoded query is appended.
	URLTemplate string
	// Domain is the bare host used as the bare-site fallback target.
	Domain string
	// Name is the display name, also matched against in Tier 2.
	Name string
	// Description is free text, display only.
	Description string
}

// HomeURL returns the bang's engine home page, used when a query resolves
// to this bang but carries no remaining text.
func (b Bang) HomeURL() string {
	return "https://" + b.Domain
}
