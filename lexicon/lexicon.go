package lexicon

import (
	"bufio"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
)

// Lexicon is a read-only word list.
type Lexicon interface {
	Name() string
	Words() []string
	HasWord(word string) bool
}

// ErrDictionaryTooLarge is matched by every DictionaryTooLargeError.
var ErrDictionaryTooLarge = errors.New("dictionary too large")

// DictionaryTooLargeError is returned when a word list holds more words than
// the configured cap. Loading never truncates silently.
type DictionaryTooLargeError struct {
	Name  string
	Limit int
}

func (e *DictionaryTooLargeError) Error() string {
	return fmt.Sprintf("dictionary %s has more than %d words", e.Name, e.Limit)
}

func (e *DictionaryTooLargeError) Is(target error) bool {
	return target == ErrDictionaryTooLarge
}

// Dictionary is an ordered word list. It is immutable once loaded and safe to
// share between goroutines.
type Dictionary struct {
	name  string
	words []string

	setOnce sync.Once
	set     map[string]struct{}
}

// NewDictionary wraps words, which are used as-is and must not be modified
// afterwards.
func NewDictionary(name string, words []string) *Dictionary {
	return &Dictionary{name: name, words: words}
}

func (d *Dictionary) Name() string {
	return d.name
}

// Words returns the words in file order. Callers borrow the slice read-only.
func (d *Dictionary) Words() []string {
	return d.words
}

func (d *Dictionary) Len() int {
	return len(d.words)
}

// HasWord reports whether word (lowercase) is in the dictionary.
func (d *Dictionary) HasWord(word string) bool {
	d.setOnce.Do(func() {
		d.set = make(map[string]struct{}, len(d.words))
		for _, w := range d.words {
			d.set[w] = struct{}{}
		}
	})
	_, ok := d.set[word]
	return ok
}

// ScanDictionary reads one word per line. Surrounding whitespace is trimmed,
// blank lines and lines starting with # are skipped, and words are
// lowercased. Order and duplicates are kept. If maxWords > 0 and the list
// holds more words, a DictionaryTooLargeError is returned.
func ScanDictionary(name string, r io.Reader, maxWords int) (*Dictionary, error) {
	words := []string{}
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if maxWords > 0 && len(words) == maxWords {
			return nil, &DictionaryTooLargeError{Name: name, Limit: maxWords}
		}
		words = append(words, strings.ToLower(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s at line %d: %w", name, lineNo, err)
	}
	return NewDictionary(name, words), nil
}

// Load reads a word list from path. Files ending in .gz are decompressed.
func Load(path string, maxWords int) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("opening %s: %w", path, err)
		}
		defer gz.Close()
		r = gz
	}
	name := strings.TrimSuffix(strings.TrimSuffix(filepath.Base(path), ".gz"), ".txt")
	d, err := ScanDictionary(name, r, maxWords)
	if err != nil {
		return nil, err
	}
	log.Info().Str("path", path).Int("words", d.Len()).Msg("loaded dictionary")
	return d, nil
}
