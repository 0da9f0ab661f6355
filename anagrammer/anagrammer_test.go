package anagrammer

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"

	"github.com/domino14/wordfinder/lexicon"
	"github.com/domino14/wordfinder/testhelpers"
)

type matchtest struct {
	word    string
	letters string
	match   bool
}

var matchTests = []matchtest{
	{"", "", true},
	{"", "xyz", true},
	{"cat", "tac", true},
	{"cat", "tacs", true},
	{"cats", "tac", false},
	{"noon", "noon", true},
	{"noon", "nono", true},
	{"noon", "non", false},
	{"noon", "nooo", false},
	{"aa", "a", false},
	{"a", "aa", true},
	{"retain", "aeinrst", true},
	{"tennis", "aeinrst", false},
	{"dog", "tac", false},
	{"it's", "its'", false},
	{"cat", "", false},
}

func TestMatches(t *testing.T) {
	is := is.New(t)
	for _, tc := range matchTests {
		is.Equal(Matches(tc.word, tc.letters), tc.match) // Matches(word, letters)
	}
}

func TestMatchesDoesNotConsumeHand(t *testing.T) {
	is := is.New(t)
	hand := "tac"
	is.True(Matches("cat", hand))
	is.True(Matches("act", hand))
	is.Equal(hand, "tac")
}

func TestMatchesLongerWordNeverMatches(t *testing.T) {
	is := is.New(t)
	is.True(!Matches("aaaa", "aaa"))
	is.True(!Matches("abcd", "abc"))
}

// removeFirst is the letter-removal formulation of the matching predicate:
// take each letter of word out of letters, failing if it is not there.
func removeFirst(word, letters string) bool {
	for _, c := range word {
		idx := strings.IndexRune(letters, c)
		if idx < 0 {
			return false
		}
		letters = letters[:idx] + letters[idx+1:]
	}
	return true
}

func randomString(r *rand.Rand, alphabet string, maxLen int) string {
	n := r.Intn(maxLen + 1)
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[r.Intn(len(alphabet))]
	}
	return string(b)
}

func TestMatchesAgreesWithRemoval(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	// A small alphabet makes repeated letters common.
	for i := 0; i < 20000; i++ {
		word := randomString(r, "aeinst", 7)
		letters := randomString(r, "aeinst", 9)
		if got, want := Matches(word, letters), removeFirst(word, letters); got != want {
			t.Fatalf("Matches(%q, %q) = %v, want %v", word, letters, got, want)
		}
	}
}

func TestFindAllWords(t *testing.T) {
	dict := []string{"cat", "act", "tac", "dog", "cats"}
	assert.Equal(t, []string{"cat", "act", "tac"}, FindAllWords(dict, "tac"))
}

func TestFindAllWordsNormalizesCase(t *testing.T) {
	dict := []string{"Cat", "ACT", "dog"}
	assert.Equal(t, []string{"cat", "act"}, FindAllWords(dict, "TaC"))
	// The caller's list is left alone.
	assert.Equal(t, []string{"Cat", "ACT", "dog"}, dict)
}

func TestFindAllWordsKeepsDuplicatesAndOrder(t *testing.T) {
	dict := []string{"tac", "a", "cat", "tac", "at"}
	assert.Equal(t, []string{"tac", "a", "cat", "tac", "at"}, FindAllWords(dict, "cat"))
}

func TestFindAllWordsNoMatches(t *testing.T) {
	is := is.New(t)
	dict := []string{"cat", "act", "tac", "dog", "cats"}
	is.Equal(len(FindAllWords(dict, "xyz")), 0)
	is.Equal(len(FindAllWords(nil, "xyz")), 0)
}

func TestFindAllWordsIsSubsequence(t *testing.T) {
	is := is.New(t)
	dict := testhelpers.SmallLexicon
	found := FindAllWords(dict, "aeinrstcz")
	// every result is a dictionary word and appears in dictionary order
	j := 0
	for _, w := range found {
		for j < len(dict) && dict[j] != w {
			j++
		}
		is.True(j < len(dict))
		j++
	}
	is.Equal(found, []string{"cat", "act", "tac", "cats", "at", "ta", "a", "retina", "retain"})
}

func TestFinder(t *testing.T) {
	is := is.New(t)
	d := lexicon.NewDictionary("small", testhelpers.SmallLexicon)
	f := NewFinder(d)
	is.Equal(f.Lexicon().Name(), "small")
	is.Equal(f.FindAllWords("noon"), []string{"noon", "on", "no"})
}

func BenchmarkFindAllWords(b *testing.B) {
	r := rand.New(rand.NewSource(7))
	words := make([]string, 100000)
	for i := range words {
		words[i] = randomString(r, "abcdefghijklmnopqrstuvwxyz", 10)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		FindAllWords(words, "aeinrstlo")
	}
}
