// Package wordlist loads word lists from files or the built-in default.
package wordlist

import (
	"bufio"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

//go:embed builtin.txt
var builtinWords string

// BuiltinName labels the embedded default list in session records.
const BuiltinName = "builtin"

// Builtin returns the embedded default word list.
func Builtin() []string {
	return parseWords(builtinWords)
}

// LoadWords reads one word per line from the provided file path.
func LoadWords(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only word list.
			_ = cerr
		}
	}()

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("word list is empty")
	}
	return words, nil
}

// Source describes where a resolved word list came from.
type Source struct {
	Words []string
	// Path is the file the words were read from, or BuiltinName.
	Path string
}

// Resolve picks the word list for a game: an explicit path wins, then the
// per-language file under dir when it exists, then the built-in list.
func Resolve(explicitPath, dir, lang string) (Source, error) {
	if explicitPath != "" {
		words, err := LoadWords(explicitPath)
		if err != nil {
			return Source{}, fmt.Errorf("failed to load word list %s: %w", explicitPath, err)
		}
		return Source{Words: words, Path: explicitPath}, nil
	}
	if dir != "" && lang != "" {
		path := LangPath(dir, lang)
		if _, err := os.Stat(path); err == nil {
			words, err := LoadWords(path)
			if err != nil {
				return Source{}, fmt.Errorf("failed to load word list %s: %w", path, err)
			}
			words = Filter(words, FilterForLang(lang))
			if len(words) == 0 {
				return Source{}, fmt.Errorf("word list %s has no usable %s words", path, lang)
			}
			return Source{Words: words, Path: path}, nil
		} else if !os.IsNotExist(err) {
			return Source{}, fmt.Errorf("failed to stat word list: %w", err)
		}
	}
	return Source{Words: Builtin(), Path: BuiltinName}, nil
}

// LangPath returns the file for a language inside a word list directory.
func LangPath(dir, lang string) string {
	return filepath.Join(dir, lang+".txt")
}

func parseWords(text string) []string {
	var words []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			words = append(words, line)
		}
	}
	return words
}
