package bangs

import "testing"

func testRegistry() *Registry {
	return NewRegistry(DefaultBangs(), "g")
}

func TestResolveYouTubeQuery(t *testing.T) {
	r := NewResolver(testRegistry())
	got := r.Resolve("!y lofi music")
	want := "https://www.youtube.com/results?search_query=lofi%20music"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestResolveGitHubRepoShortcutPreservesSlash(t *testing.T) {
	r := NewResolver(testRegistry())
	got := r.Resolve("!ghr vercel/next.js")
	want := "https://github.com/vercel/next.js"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestResolveBangAloneGivesHomeURL(t *testing.T) {
	r := NewResolver(testRegistry())
	got := r.Resolve("!y")
	want := "https://www.youtube.com"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestResolvePlainQueryUsesDefaultBang(t *testing.T) {
	r := NewResolver(testRegistry())
	got := r.Resolve("hello world")
	want := "https://www.google.com/search?q=hello%20world"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestResolveEmptyQueryReturnsDefaultHome(t *testing.T) {
	r := NewResolver(testRegistry())
	got := r.Resolve("   ")
	want := "https://www.google.com"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestResolveUnknownBangFallsBackToDefault(t *testing.T) {
	r := NewResolver(testRegistry())
	got := r.Resolve("!nosuchbang something")
	want := "https://www.google.com/search?q=something"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestResolveLeftmostBangWins(t *testing.T) {
	r := NewResolver(testRegistry())
	got := r.Resolve("!y !gh query")
	// leftmost "!y" wins; "!gh" becomes part of the remainder text
	want := "https://www.youtube.com/results?search_query=%21gh%20query"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestResolveIsPureFunction(t *testing.T) {
	r := NewResolver(testRegistry())
	a := r.Resolve("!y lofi")
	b := r.Resolve("!y lofi")
	if a != b {
		t.Fatalf("expected deterministic resolve, got %q then %q", a, b)
	}
}

func TestResolvePathWithMultipleSlashes(t *testing.T) {
	r := NewResolver(testRegistry())
	got := r.Resolve("!ghr a/b/c")
	want := "https://github.com/a/b/c"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
