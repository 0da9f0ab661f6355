// Package anagrammer finds the words of a word list that can be built from a
// hand of letters.
package anagrammer

import (
	"strings"

	"github.com/samber/lo"

	"github.com/domino14/wordfinder/lexicon"
	"github.com/domino14/wordfinder/tilemapping"
)

// Matches reports whether every letter of word can be drawn from letters,
// using each letter of letters at most once. In other words, whether word
// is a sub-multiset of letters. Both arguments are expected in lowercase;
// a character of word outside a-z can never be drawn. The empty word always
// matches.
func Matches(word, letters string) bool {
	if len(word) > len(letters) {
		return false
	}
	rack := tilemapping.RackFromString(letters)
	return drawAll(word, rack)
}

// drawAll takes each letter of word from rack, which it consumes.
func drawAll(word string, rack *tilemapping.Rack) bool {
	for i := 0; i < len(word); i++ {
		ml, ok := tilemapping.Val(word[i])
		if !ok || !rack.Take(ml) {
			return false
		}
	}
	return true
}

// FindAllWords returns, in order, the lowercased words of the list that
// match letters. Duplicates in the list stay duplicated. letters may be in
// any case.
func FindAllWords(words []string, letters string) []string {
	letters = strings.ToLower(letters)
	hand := tilemapping.RackFromString(letters)
	var scratch tilemapping.Rack
	return lo.FilterMap(words, func(w string, _ int) (string, bool) {
		w = strings.ToLower(w)
		if len(w) > len(letters) {
			return "", false
		}
		scratch = *hand
		return w, drawAll(w, &scratch)
	})
}

// Finder runs queries against one loaded word list.
type Finder struct {
	lex lexicon.Lexicon
}

func NewFinder(lex lexicon.Lexicon) *Finder {
	return &Finder{lex: lex}
}

func (f *Finder) Lexicon() lexicon.Lexicon {
	return f.lex
}

// FindAllWords runs FindAllWords over the finder's word list.
func (f *Finder) FindAllWords(letters string) []string {
	return FindAllWords(f.lex.Words(), letters)
}
