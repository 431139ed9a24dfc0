// Package trie provides a case-insensitive prefix index over a corpus of
// strings, backed by a Patricia trie.
package trie

import (
	"strings"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// Trie is a case-insensitive, append-only prefix index. Lookups are keyed
// by the lowercased form of a word; the original casing is retained as the
// stored item so PrefixSearch can return words as they were inserted.
type Trie struct {
	t *patricia.Trie
}

// New returns an empty Trie.
func New() *Trie {
	return &Trie{t: patricia.NewTrie()}
}

// Insert adds word to the trie. Comparisons use the lowercased form; the
// original casing is preserved for retrieval. O(|word|).
func (tr *Trie) Insert(word string) {
	if word == "" {
		return
	}
	key := patricia.Prefix(strings.ToLower(word))
	if tr.t.Get(key) != nil {
		return
	}
	tr.t.Insert(key, word)
}

// PrefixSearch walks the trie by the lowercased prefix and collects
// terminal words beneath that node, stopping once limit words have been
// gathered. If the path breaks early, an empty slice is returned. Results
// preserve original casing and keep the trie's own DFS visitation order
// (first-insert-wins), not a re-sort — VisitSubtree visits in edge order,
// which is insertion order for siblings at the same node.
func (tr *Trie) PrefixSearch(prefix string, limit int) []string {
	if prefix == "" || limit <= 0 {
		return nil
	}
	lower := strings.ToLower(prefix)

	var words []string
	err := tr.t.VisitSubtree(patricia.Prefix(lower), func(p patricia.Prefix, item patricia.Item) error {
		if len(words) >= limit {
			return nil
		}
		word, ok := item.(string)
		if !ok {
			log.Errorf("trie: unexpected item type %T for key %s", item, p)
			return nil
		}
		words = append(words, word)
		return nil
	})
	if err != nil {
		log.Errorf("trie: error visiting subtree for prefix %q: %v", prefix, err)
		return nil
	}

	return words
}

// Contains reports whether word (case-insensitive) was inserted.
func (tr *Trie) Contains(word string) bool {
	return tr.t.Get(patricia.Prefix(strings.ToLower(word))) != nil
}
