// Package predict implements the multi-algorithm prediction engine that
// fuses exact-prefix, trie, trigram, and fuzzy-match sources over a shared
// in-memory corpus.
package predict

import (
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/lmarchetti/bangserve/pkg/fuzzy"
	"github.com/lmarchetti/bangserve/pkg/ngram"
	"github.com/lmarchetti/bangserve/pkg/trie"
)

// Source tags the algorithm that ultimately produced a Prediction.
type Source string

const (
	SourcePrefix   Source = "prefix"
	SourceTrie     Source = "trie"
	SourceNgram    Source = "ngram"
	SourceFuzzy    Source = "fuzzy"
	SourceExternal Source = "external"
)

const (
	weightPrefix = 1.0
	weightTrie   = 0.8
	weightNgram  = 0.55
	weightFuzzy  = 0.4

	ngramBoostFactor = 0.3
	fuzzyBoostFactor = 0.2

	defaultNgramMinQueryLen = 2
	defaultFuzzyMinQueryLen = 3
)

// Config tunes the length thresholds that gate the n-gram and fuzzy
// layers; zero values fall back to the package defaults.
type Config struct {
	NgramMinQueryLen int
	FuzzyMinQueryLen int
}

// Prediction is a single scored, source-tagged candidate.
type Prediction struct {
	Text   string
	Source Source
	Score  float64
}

// Engine combines a trie and a trigram index over a fixed corpus to answer
// prefix, fuzzy, and fuzzy-neighbor queries. Built once; read-only
// thereafter, so concurrent Predict calls require no locking.
type Engine struct {
	corpus           []string
	tr               *trie.Trie
	ngr              *ngram.Index
	ngramMinQueryLen int
	fuzzyMinQueryLen int
}

// New builds an Engine over base plus extensions (e.g. bang triggers and
// names), using the package's default length thresholds. The corpus is
// retained verbatim for prefix scanning and fuzzy matching; both the trie
// and n-gram index are built once at construction.
func New(base []string, extensions ...string) *Engine {
	return NewWithConfig(Config{}, base, extensions...)
}

// NewWithConfig builds an Engine like New, but with cfg's length
// thresholds governing when the n-gram and fuzzy layers activate.
func NewWithConfig(cfg Config, base []string, extensions ...string) *Engine {
	corpus := make([]string, 0, len(base)+len(extensions))
	corpus = append(corpus, base...)
	corpus = append(corpus, extensions...)

	tr := trie.New()
	for _, w := range corpus {
		tr.Insert(w)
	}

	ngramMinQueryLen := cfg.NgramMinQueryLen
	if ngramMinQueryLen <= 0 {
		ngramMinQueryLen = defaultNgramMinQueryLen
	}
	fuzzyMinQueryLen := cfg.FuzzyMinQueryLen
	if fuzzyMinQueryLen <= 0 {
		fuzzyMinQueryLen = defaultFuzzyMinQueryLen
	}

	return &Engine{
		corpus:           corpus,
		tr:               tr,
		ngr:              ngram.Build(corpus),
		ngramMinQueryLen: ngramMinQueryLen,
		fuzzyMinQueryLen: fuzzyMinQueryLen,
	}
}

type accumulator struct {
	score      float64
	fromPrefix bool
	fromTrie   bool
}

// Predict returns up to limit Predictions for query, ordered by descending
// score. Four layers accumulate candidates keyed by lowercased word; the
// first layer to contribute a word establishes its base score, later
// layers may only boost (never overwrite) an established score.
func (e *Engine) Predict(query string, limit int) []Prediction {
	if query == "" || limit <= 0 {
		return nil
	}
	lowerQuery := strings.ToLower(query)

	acc := make(map[string]*accumulator)
	order := make([]string, 0, limit*2)

	touch := func(word string) *accumulator {
		key := strings.ToLower(word)
		a, ok := acc[key]
		if !ok {
			a = &accumulator{}
			acc[key] = a
			order = append(order, key)
		}
		return a
	}

	// Layer 1: linear corpus scan for startsWith(query). Always applied.
	for _, word := range e.corpus {
		lw := strings.ToLower(word)
		if lw == lowerQuery {
			continue
		}
		if strings.HasPrefix(lw, lowerQuery) {
			a := touch(word)
			if a.score == 0 && !a.fromPrefix && !a.fromTrie {
				a.score = weightPrefix * scoreLen(query, word)
				a.fromPrefix = true
			}
		}
	}

	// Layer 2: trie prefix search. Always applied.
	for _, word := range e.tr.PrefixSearch(lowerQuery, 10) {
		if strings.ToLower(word) == lowerQuery {
			continue
		}
		a := touch(word)
		if a.score == 0 && !a.fromPrefix && !a.fromTrie {
			a.score = weightTrie * scoreLen(query, word)
			a.fromTrie = true
		}
	}

	// Layer 3: n-gram/Jaccard. Applied when |query| >= cfg.NgramMinQueryLen.
	if len(lowerQuery) >= e.ngramMinQueryLen {
		for _, m := range e.ngr.Search(lowerQuery, 10) {
			if m.Word == lowerQuery {
				continue
			}
			a := touch(m.Word)
			layerScore := weightNgram * m.Jaccard
			if a.score == 0 && !a.fromPrefix && !a.fromTrie {
				a.score = layerScore
			} else {
				a.score += weightNgram * m.Jaccard * ngramBoostFactor
			}
		}
	}

	// Layer 4: fuzzy match. Applied when |query| >= cfg.FuzzyMinQueryLen.
	if len(lowerQuery) >= e.fuzzyMinQueryLen {
		maxDist := fuzzy.DefaultMaxDistance(len(lowerQuery))
		for _, m := range fuzzy.Search(lowerQuery, e.corpus, maxDist) {
			maxLen := len(lowerQuery)
			if len(m.Word) > maxLen {
				maxLen = len(m.Word)
			}
			if strings.ToLower(m.Word) == lowerQuery {
				continue
			}
			layerScore := weightFuzzy * (1 - float64(m.Distance)/float64(maxLen))
			a := touch(m.Word)
			if a.score == 0 && !a.fromPrefix && !a.fromTrie {
				a.score = layerScore
			} else {
				a.score += layerScore * fuzzyBoostFactor
			}
		}
	}

	maxDist := fuzzy.DefaultMaxDistance(len(lowerQuery))
	trieHits := make(map[string]bool)
	for _, w := range e.tr.PrefixSearch(lowerQuery, 10) {
		trieHits[strings.ToLower(w)] = true
	}

	predictions := make([]Prediction, 0, len(order))
	for _, word := range order {
		a := acc[word]
		predictions = append(predictions, Prediction{
			Text:   word,
			Source: classify(lowerQuery, word, trieHits, maxDist),
			Score:  a.score,
		})
	}

	sort.SliceStable(predictions, func(i, j int) bool {
		return predictions[i].Score > predictions[j].Score
	})

	if len(predictions) > limit {
		predictions = predictions[:limit]
	}

	log.Debugf("predict: query=%q returned %d candidates", query, len(predictions))
	return predictions
}

// classify assigns the source tag per the precedence: prefix, then trie,
// then fuzzy, then ngram.
func classify(lowerQuery, word string, trieHits map[string]bool, maxDist int) Source {
	lw := strings.ToLower(word)
	switch {
	case strings.HasPrefix(lw, lowerQuery):
		return SourcePrefix
	case trieHits[lw]:
		return SourceTrie
	case fuzzy.Distance(lowerQuery, lw) <= maxDist:
		return SourceFuzzy
	default:
		return SourceNgram
	}
}

// scoreLen implements W * |query|/|word| for the prefix/trie layers.
func scoreLen(query, word string) float64 {
	if len(word) == 0 {
		return 0
	}
	return float64(len(query)) / float64(len(word))
}

// Corpus returns the engine's underlying corpus, for callers that need to
// layer additional matching on top of it.
func (e *Engine) Corpus() []string {
	return e.corpus
}
