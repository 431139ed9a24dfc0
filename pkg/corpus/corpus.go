// Package corpus loads the plain-word corpus that seeds the prediction
// engine's trie, n-gram index, and fuzzy search.
package corpus

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

// Loader scans a data directory for corpus*.txt word-list files and
// merges them into a deduplicated word slice, mirroring the directory-scan
// and incremental-merge idiom of a chunked dictionary loader but for plain
// newline-delimited word files instead of binary frequency chunks.
type Loader struct {
	mu    sync.RWMutex
	words []string
	seen  map[string]bool
}

// NewLoader returns an empty Loader.
func NewLoader() *Loader {
	return &Loader{seen: make(map[string]bool)}
}

// LoadDir reads every corpus*.txt file in dirPath, one word per line,
// blank lines and lines starting with '#' ignored. Missing or empty
// dirPath is not an error: the Loader simply stays empty.
func (l *Loader) LoadDir(dirPath string) error {
	if dirPath == "" {
		return nil
	}
	matches, err := filepath.Glob(filepath.Join(dirPath, "corpus*.txt"))
	if err != nil {
		return err
	}
	for _, path := range matches {
		if err := l.loadFile(path); err != nil {
			log.Warnf("corpus: failed to load %s: %v", path, err)
		}
	}
	return nil
}

func (l *Loader) loadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		l.Add(word)
	}
	return scanner.Err()
}

// Add inserts word into the corpus if it has not been seen before
// (case-insensitive).
func (l *Loader) Add(word string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	key := strings.ToLower(word)
	if l.seen[key] {
		return
	}
	l.seen[key] = true
	l.words = append(l.words, word)
}

// AddAll inserts every word in words.
func (l *Loader) AddAll(words []string) {
	for _, w := range words {
		l.Add(w)
	}
}

// Words returns the accumulated corpus words.
func (l *Loader) Words() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]string, len(l.words))
	copy(out, l.words)
	return out
}

// DefaultWords returns a small built-in seed corpus. bangd always loads it
// ahead of any extra_words config and corpus directory, so the prediction
// engine never starts out completely empty.
func DefaultWords() []string {
	return []string{
		"golang", "google", "github", "gitlab", "gopher",
		"wikipedia", "weather", "wireshark",
		"youtube", "yahoo",
		"duckduckgo", "docker",
		"amazon", "android",
		"reddit", "rust",
		"stackoverflow", "swift",
		"translate", "twitter",
		"images", "imdb", "npm", "pypi", "mdn",
	}
}
