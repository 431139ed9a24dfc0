package bangs

// Registry is a static, ordered catalogue of bangs. Constructed once at
// process start and immutable thereafter.
type Registry struct {
	bangs       []Bang
	byTrigger   map[string]Bang
	defaultBang Bang
}

// NewRegistry builds a Registry from an ordered bang list. defaultTrigger
// names the bang used when no "!token" matches; if no bang has that
// trigger, the first bang in allBangs is the default.
func NewRegistry(allBangs []Bang, defaultTrigger string) *Registry {
	byTrigger := make(map[string]Bang, len(allBangs))
	for _, b := range allBangs {
		byTrigger[b.Trigger] = b
	}

	def, ok := byTrigger[defaultTrigger]
	if !ok && len(allBangs) > 0 {
		def = allBangs[0]
	}

	return &Registry{
		bangs:       allBangs,
		byTrigger:   byTrigger,
		defaultBang: def,
	}
}

// All returns the registry's bangs in their original, registry order.
func (r *Registry) All() []Bang {
	return r.bangs
}

// Default returns the registry's default bang.
func (r *Registry) Default() Bang {
	return r.defaultBang
}

// Lookup returns the bang for an exact (lowercase) trigger match.
func (r *Registry) Lookup(trigger string) (Bang, bool) {
	b, ok := r.byTrigger[trigger]
	return b, ok
}

// Names returns every bang's name, in registry order — part of the
// prediction engine's corpus extension.
func (r *Registry) Names() []string {
	names := make([]string, len(r.bangs))
	for i, b := range r.bangs {
		names[i] = b.Name
	}
	return names
}

// Triggers returns every bang's trigger, in registry order — the other
// half of the corpus extension.
func (r *Registry) Triggers() []string {
	triggers := make([]string, len(r.bangs))
	for i, b := range r.bangs {
		triggers[i] = b.Trigger
	}
	return triggers
}

// DefaultBangs returns a reasonably broad catalogue of well-known engines,
// in the style of DuckDuckGo's seed !bangs. The first entry, "g", is the
// registry's intended default.
func DefaultBangs() []Bang {
	return []Bang{
		{Trigger: "g", URLTemplate: "https://www.google.com/search?q={{{s}}}", Domain: "www.google.com", Name: "Google", Description: "Google Search"},
		{Trigger: "ddg", URLTemplate: "https://duckduckgo.com/?q={{{s}}}", Domain: "duckduckgo.com", Name: "DuckDuckGo", Description: "DuckDuckGo Search"},
		{Trigger: "y", URLTemplate: "https://www.youtube.com/results?search_query={{{s}}}", Domain: "www.youtube.com", Name: "YouTube", Description: "YouTube video search"},
		{Trigger: "w", URLTemplate: "https://en.wikipedia.org/w/index.php?search={{{s}}}", Domain: "en.wikipedia.org", Name: "Wikipedia", Description: "Wikipedia article search"},
		{Trigger: "gh", URLTemplate: "https://github.com/search?q={{{s}}}", Domain: "github.com", Name: "GitHub", Description: "GitHub code and repo search"},
		{Trigger: "ghr", URLTemplate: "https://github.com/{{{s}}}", Domain: "github.com", Name: "GitHub Repo", Description: "Jump directly to a GitHub owner/repo"},
		{Trigger: "so", URLTemplate: "https://stackoverflow.com/search?q={{{s}}}", Domain: "stackoverflow.com", Name: "Stack Overflow", Description: "Stack Overflow question search"},
		{Trigger: "r", URLTemplate: "https://www.reddit.com/search/?q={{{s}}}", Domain: "www.reddit.com", Name: "Reddit", Description: "Reddit search"},
		{Trigger: "a", URLTemplate: "https://www.amazon.com/s?k={{{s}}}", Domain: "www.amazon.com", Name: "Amazon", Description: "Amazon product search"},
		{Trigger: "tw", URLTemplate: "https://twitter.com/search?q={{{s}}}", Domain: "twitter.com", Name: "Twitter", Description: "Twitter/X search"},
		{Trigger: "maps", URLTemplate: "https://www.google.com/maps/search/{{{s}}}", Domain: "www.google.com/maps", Name: "Google Maps", Description: "Google Maps location search"},
		{Trigger: "gi", URLTemplate: "https://www.google.com/search?tbm=isch&q={{{s}}}", Domain: "images.google.com", Name: "Google Images", Description: "Google Image search"},
		{Trigger: "npm", URLTemplate: "https://www.npmjs.com/search?q={{{s}}}", Domain: "www.npmjs.com", Name: "npm", Description: "npm package search"},
		{Trigger: "pypi", URLTemplate: "https://pypi.org/search/?q={{{s}}}", Domain: "pypi.org", Name: "PyPI", Description: "Python package index search"},
		{Trigger: "mdn", URLTemplate: "https://developer.mozilla.org/en-US/search?q={{{s}}}", Domain: "developer.mozilla.org", Name: "MDN Web Docs", Description: "MDN Web Docs search"},
		{Trigger: "imdb", URLTemplate: "https://www.imdb.com/find/?q={{{s}}}", Domain: "www.imdb.com", Name: "IMDb", Description: "IMDb title and name search"},
		{Trigger: "tr", URLTemplate: "https://translate.google.com/?text={{{s}}}", Domain: "translate.google.com", Name: "Google Translate", Description: "Google Translate"},
		{Trigger: "n", URLTemplate: "https://news.google.com/search?q={{{s}}}", Domain: "news.google.com", Name: "Google News", Description: "Google News search"},
	}
}
