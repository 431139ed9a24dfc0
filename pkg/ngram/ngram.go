// Package ngram implements a character-trigram inverted index scored by
// Jaccard similarity, in the style of a simple trigram posting-list index.
package ngram

import (
	"sort"
	"strings"
)

// noiseFloor is the hard lower bound below which a candidate is discarded
// as too dissimilar to be useful.
const noiseFloor = 0.1

// Match is a single scored candidate from the index.
type Match struct {
	Word    string
	Jaccard float64
}

// Index is a trigram inverted index: gram -> set of corpus words containing
// it. Grams are 3-character windows over "$<lowercase(word)>$".
type Index struct {
	postings map[string]map[string]bool
	grams    map[string]map[string]bool // word -> its own gram set, for Jaccard denominators
}

// Build constructs an Index over corpus using n=3 character grams.
func Build(corpus []string) *Index {
	idx := &Index{
		postings: make(map[string]map[string]bool),
		grams:    make(map[string]map[string]bool),
	}
	for _, word := range corpus {
		idx.insert(word)
	}
	return idx
}

func (idx *Index) insert(word string) {
	lower := strings.ToLower(word)
	if _, exists := idx.grams[lower]; exists {
		return
	}
	gset := grams(lower)
	idx.grams[lower] = gset
	for g := range gset {
		bucket, ok := idx.postings[g]
		if !ok {
			bucket = make(map[string]bool)
			idx.postings[g] = bucket
		}
		bucket[lower] = true
	}
}

// grams returns the set of trigrams for "$<s>$".
func grams(s string) map[string]bool {
	padded := "$" + s + "$"
	runes := []rune(padded)
	out := make(map[string]bool)
	for i := 0; i+3 <= len(runes); i++ {
		out[string(runes[i:i+3])] = true
	}
	return out
}

// Search returns up to limit candidate words scored by Jaccard similarity
// of query's trigram set against each candidate's, discarding candidates
// at or below the 0.1 noise floor.
func (idx *Index) Search(query string, limit int) []Match {
	if query == "" || limit <= 0 {
		return nil
	}
	queryGrams := grams(strings.ToLower(query))
	if len(queryGrams) == 0 {
		return nil
	}

	shared := make(map[string]int)
	for g := range queryGrams {
		for word := range idx.postings[g] {
			shared[word]++
		}
	}

	var matches []Match
	for word, sharedCount := range shared {
		candidateGrams := idx.grams[word]
		union := len(queryGrams) + len(candidateGrams) - sharedCount
		if union <= 0 {
			continue
		}
		jaccard := float64(sharedCount) / float64(union)
		if jaccard <= noiseFloor {
			continue
		}
		matches = append(matches, Match{Word: word, Jaccard: jaccard})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Jaccard != matches[j].Jaccard {
			return matches[i].Jaccard > matches[j].Jaccard
		}
		return matches[i].Word < matches[j].Word
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}
