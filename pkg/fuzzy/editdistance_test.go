package fuzzy

import "testing"

func TestDistanceIdentity(t *testing.T) {
	if d := Distance("hello", "hello"); d != 0 {
		t.Fatalf("expected d(a,a)=0, got %d", d)
	}
}

func TestDistanceSymmetric(t *testing.T) {
	a, b := "kitten", "sitting"
	if Distance(a, b) != Distance(b, a) {
		t.Fatalf("expected symmetric distance for %q/%q", a, b)
	}
}

func TestDistanceKnownValue(t *testing.T) {
	if d := Distance("kitten", "sitting"); d != 3 {
		t.Fatalf("expected kitten/sitting distance 3, got %d", d)
	}
}

func TestDistanceTransposition(t *testing.T) {
	// restricted adjacent transposition costs exactly 1
	if d := Distance("ab", "ba"); d != 1 {
		t.Fatalf("expected single transposition to cost 1, got %d", d)
	}
	if d := Distance("javascrpt", "javascript"); d != 1 {
		t.Fatalf("expected single-character typo to cost 1, got %d", d)
	}
}

func TestDistanceCaseInsensitive(t *testing.T) {
	if d := Distance("Hello", "hello"); d != 0 {
		t.Fatalf("expected case-insensitive comparison, got %d", d)
	}
}

func TestDistanceTriangleInequality(t *testing.T) {
	a, b, c := "flaw", "lawn", "claw"
	dab := Distance(a, b)
	dac := Distance(a, c)
	dcb := Distance(c, b)
	if dab > dac+dcb {
		t.Fatalf("triangle inequality violated: d(a,b)=%d > d(a,c)+d(c,b)=%d", dab, dac+dcb)
	}
}

func TestSearchPreFilterAndThreshold(t *testing.T) {
	corpus := []string{"javascript", "java", "typescript", "python"}
	matches := Search("javascrpt", corpus, -1)
	if len(matches) == 0 {
		t.Fatalf("expected at least one match")
	}
	if matches[0].Word != "javascript" {
		t.Fatalf("expected closest match to be javascript, got %s", matches[0].Word)
	}
	for _, m := range matches {
		if m.Distance > DefaultMaxDistance(len("javascrpt")) {
			t.Fatalf("match %q exceeds default max distance", m.Word)
		}
	}
}

func TestSearchOrdering(t *testing.T) {
	corpus := []string{"cat", "bat", "cats"}
	matches := Search("cat", corpus, 2)
	for i := 1; i < len(matches); i++ {
		if matches[i-1].Distance > matches[i].Distance {
			t.Fatalf("matches not sorted ascending by distance: %+v", matches)
		}
	}
}

func TestDefaultMaxDistance(t *testing.T) {
	cases := map[int]int{1: 1, 2: 1, 3: 1, 6: 2, 9: 3}
	for qlen, want := range cases {
		if got := DefaultMaxDistance(qlen); got != want {
			t.Fatalf("DefaultMaxDistance(%d) = %d, want %d", qlen, got, want)
		}
	}
}
