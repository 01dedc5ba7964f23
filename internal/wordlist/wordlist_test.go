package wordlist

import (
	"os"
	"path/filepath"
	"testing"
)

func TestBuiltin(t *testing.T) {
	words := Builtin()
	expected := []string{"javascript", "blue", "frontend", "coding", "happy"}
	if len(words) != len(expected) {
		t.Fatalf("expected %d words, got %d", len(expected), len(words))
	}
	for i, w := range expected {
		if words[i] != w {
			t.Fatalf("expected %q at %d, got %q", w, i, words[i])
		}
	}
}

func TestLoadWordsSkipsBlankLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte("one\n\n  two  \n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	words, err := LoadWords(path)
	if err != nil {
		t.Fatalf("LoadWords failed: %v", err)
	}
	if len(words) != 2 || words[0] != "one" || words[1] != "two" {
		t.Fatalf("unexpected words: %v", words)
	}
}

func TestLoadWordsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	if err := os.WriteFile(path, []byte("\n\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadWords(path); err == nil {
		t.Fatalf("expected error for empty list")
	}
}

func TestResolveOrder(t *testing.T) {
	dir := t.TempDir()

	src, err := Resolve("", dir, "en")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if src.Path != BuiltinName {
		t.Fatalf("expected builtin fallback, got %s", src.Path)
	}

	langPath := LangPath(dir, "en")
	if err := os.WriteFile(langPath, []byte("go\nGopher\nrust\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	src, err = Resolve("", dir, "en")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if src.Path != langPath || len(src.Words) != 2 {
		t.Fatalf("expected filtered lang list, got %+v", src)
	}

	explicit := filepath.Join(dir, "custom.txt")
	if err := os.WriteFile(explicit, []byte("Zed\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	src, err = Resolve(explicit, dir, "en")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if src.Path != explicit || len(src.Words) != 1 || src.Words[0] != "Zed" {
		t.Fatalf("expected explicit list untouched, got %+v", src)
	}
}
