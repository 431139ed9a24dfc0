package corpus

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoaderAddDeduplicatesCaseInsensitively(t *testing.T) {
	l := NewLoader()
	l.Add("Golang")
	l.Add("golang")
	l.Add("GOLANG")
	if len(l.Words()) != 1 {
		t.Fatalf("expected 1 deduplicated word, got %d", len(l.Words()))
	}
}

func TestLoaderLoadDirReadsCorpusFiles(t *testing.T) {
	dir := t.TempDir()
	content := "golang\n# a comment\n\nweather\n"
	if err := os.WriteFile(filepath.Join(dir, "corpus_base.txt"), []byte(content), 0644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	l := NewLoader()
	if err := l.LoadDir(dir); err != nil {
		t.Fatalf("LoadDir returned error: %v", err)
	}

	words := l.Words()
	if len(words) != 2 {
		t.Fatalf("expected 2 words, got %d: %v", len(words), words)
	}
}

func TestLoaderLoadDirEmptyPathIsNoop(t *testing.T) {
	l := NewLoader()
	if err := l.LoadDir(""); err != nil {
		t.Fatalf("expected no error for empty dir, got %v", err)
	}
	if len(l.Words()) != 0 {
		t.Fatalf("expected no words loaded")
	}
}

func TestDefaultWordsNonEmpty(t *testing.T) {
	if len(DefaultWords()) == 0 {
		t.Fatalf("expected a non-empty default seed corpus")
	}
}
