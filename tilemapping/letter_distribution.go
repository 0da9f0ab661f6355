package tilemapping

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/domino14/wordfinder/cache"
	"github.com/domino14/wordfinder/config"
)

//go:embed letterdistributions/english.csv
var englishCSV []byte

// LetterDistribution encodes the tile counts and tile values of a game.
type LetterDistribution struct {
	Name         string
	Vowels       []MachineLetter
	distribution [NumLetters]uint8
	scores       ScoreTable
	numBlanks    uint8
}

type ldEntry struct {
	letter string
	count  int
	score  int
	vowel  bool
}

// ScanLetterDistribution reads a distribution in the CSV format
// `letter,quantity,value,vowel`, one row per letter. A `?` row gives the
// number of blanks. Letters are case-insensitive.
func ScanLetterDistribution(name string, data io.Reader) (*LetterDistribution, error) {
	r := csv.NewReader(data)
	r.FieldsPerRecord = 4
	r.TrimLeadingSpace = true
	entries := []ldEntry{}
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		n, err := strconv.Atoi(record[1])
		if err != nil {
			return nil, fmt.Errorf("quantity for %s: %w", record[0], err)
		}
		p, err := strconv.Atoi(record[2])
		if err != nil {
			return nil, fmt.Errorf("value for %s: %w", record[0], err)
		}
		v, err := strconv.Atoi(record[3])
		if err != nil {
			return nil, fmt.Errorf("vowel flag for %s: %w", record[0], err)
		}
		entries = append(entries, ldEntry{letter: record[0], count: n, score: p, vowel: v == 1})
	}
	return newLetterDistribution(name, entries)
}

type yamlLetter struct {
	Letter string `yaml:"letter"`
	Count  int    `yaml:"count"`
	Score  int    `yaml:"score"`
	Vowel  bool   `yaml:"vowel"`
}

type yamlDistribution struct {
	Name    string       `yaml:"name"`
	Letters []yamlLetter `yaml:"letters"`
}

// ScanYAMLLetterDistribution reads a distribution such as
//
//	name: english
//	letters:
//	  - {letter: a, count: 9, score: 1, vowel: true}
//	  - {letter: "?", count: 2, score: 0}
func ScanYAMLLetterDistribution(name string, data io.Reader) (*LetterDistribution, error) {
	yd := yamlDistribution{}
	if err := yaml.NewDecoder(data).Decode(&yd); err != nil {
		return nil, err
	}
	if yd.Name != "" {
		name = yd.Name
	}
	entries := make([]ldEntry, len(yd.Letters))
	for i, l := range yd.Letters {
		entries[i] = ldEntry{letter: l.Letter, count: l.Count, score: l.Score, vowel: l.Vowel}
	}
	return newLetterDistribution(name, entries)
}

func newLetterDistribution(name string, entries []ldEntry) (*LetterDistribution, error) {
	ld := &LetterDistribution{Name: name}
	var seen [NumLetters]bool
	for _, e := range entries {
		letter := strings.ToLower(strings.TrimSpace(e.letter))
		if e.count < 0 || e.count > 255 {
			return nil, fmt.Errorf("quantity for %s out of range: %d", letter, e.count)
		}
		if letter == string(BlankToken) {
			ld.numBlanks = uint8(e.count)
			continue
		}
		if len(letter) != 1 {
			return nil, fmt.Errorf("distribution %s: bad letter %q: %w", name, letter, ErrInvalidCharacter)
		}
		ml, ok := Val(letter[0])
		if !ok {
			return nil, &InvalidCharacterError{Char: rune(letter[0])}
		}
		if seen[ml] {
			return nil, fmt.Errorf("letter %s listed twice", letter)
		}
		seen[ml] = true
		ld.distribution[ml] = uint8(e.count)
		ld.scores[ml] = e.score
		if e.vowel {
			ld.Vowels = append(ld.Vowels, ml)
		}
	}
	missing := []byte{}
	for i, ok := range seen {
		if !ok {
			missing = append(missing, MachineLetter(i).Letter())
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("distribution %s is missing letters %s", name, missing)
	}
	return ld, nil
}

// Scores returns the tile values as a score table.
func (ld *LetterDistribution) Scores() ScoreTable {
	return ld.scores
}

// WordScore returns the score of word under this distribution's tile values.
func (ld *LetterDistribution) WordScore(word string) (int, error) {
	return ld.scores.WordScore(word)
}

// Distribution returns the number of tiles of each letter, blanks excluded.
func (ld *LetterDistribution) Distribution() [NumLetters]uint8 {
	return ld.distribution
}

func (ld *LetterDistribution) NumBlanks() int {
	return int(ld.numBlanks)
}

// NumTotalTiles includes the blanks.
func (ld *LetterDistribution) NumTotalTiles() int {
	n := int(ld.numBlanks)
	for _, ct := range ld.distribution {
		n += int(ct)
	}
	return n
}

// EnglishLetterDistribution returns the built-in English distribution.
func EnglishLetterDistribution() (*LetterDistribution, error) {
	return ScanLetterDistribution("english", bytes.NewReader(englishCSV))
}

// LetterDistributionFromFile picks the parser from the file extension.
func LetterDistributionFromFile(name, path string) (*LetterDistribution, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ScanYAMLLetterDistribution(name, f)
	default:
		return ScanLetterDistribution(name, f)
	}
}

// CacheLoadFunc loads keys of the form `letterdist:<name>`. It looks for
// <name>.csv, <name>.yaml and <name>.yml in the letter distribution path,
// falling back to the built-in English distribution for "english".
func CacheLoadFunc(cfg *config.Config, key string) (any, error) {
	kind, name, ok := strings.Cut(key, ":")
	if !ok || kind != "letterdist" || name == "" {
		return nil, errors.New("letterdist cacheloadfunc - bad cache key: " + key)
	}
	dir := cfg.GetString(config.ConfigLetterDistributionPath)
	for _, ext := range []string{".csv", ".yaml", ".yml"} {
		path := filepath.Join(dir, name+ext)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		log.Debug().Str("path", path).Msg("loading letter distribution")
		ld, err := LetterDistributionFromFile(name, path)
		if err != nil {
			return nil, fmt.Errorf("letter distribution %s: %w", path, err)
		}
		return ld, nil
	}
	if name == "english" {
		return EnglishLetterDistribution()
	}
	return nil, fmt.Errorf("letter distribution %s not found in %s", name, dir)
}

// NamedLetterDistribution returns the named distribution from the cache.
func NamedLetterDistribution(cfg *config.Config, name string) (*LetterDistribution, error) {
	name = strings.ToLower(name)
	return cache.Get[*LetterDistribution](cfg, "letterdist:"+name, CacheLoadFunc)
}
