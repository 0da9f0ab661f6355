package equity

import (
	"errors"
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/wordfinder/tilemapping"
)

func TestScore(t *testing.T) {
	is := is.New(t)
	score, err := Score("cat", tilemapping.ScrabbleScores)
	is.NoErr(err)
	is.Equal(score, 5)

	ld, err := tilemapping.EnglishLetterDistribution()
	is.NoErr(err)
	score, err = Score("quiz", ld)
	is.NoErr(err)
	is.Equal(score, 22)
}

func TestScoreIsOrderIndependent(t *testing.T) {
	is := is.New(t)
	perms := []string{"quiet", "quite", "etiuq", "tuiqe"}
	for _, p := range perms {
		score, err := Score(p, tilemapping.ScrabbleScores)
		is.NoErr(err)
		is.Equal(score, 14)
	}
}

func TestBestWordFirstWinsOnTies(t *testing.T) {
	is := is.New(t)
	best, err := BestWord([]string{"cat", "act", "tac"}, tilemapping.ScrabbleScores)
	is.NoErr(err)
	is.Equal(best, Result{Word: "cat", Score: 5})

	best, err = BestWord([]string{"act", "cat"}, tilemapping.ScrabbleScores)
	is.NoErr(err)
	is.Equal(best.Word, "act")
}

func TestBestWordPicksHighest(t *testing.T) {
	is := is.New(t)
	best, err := BestWord([]string{"a", "at", "tax", "zax", "cat"}, tilemapping.ScrabbleScores)
	is.NoErr(err)
	is.Equal(best, Result{Word: "zax", Score: 19})
}

func TestBestWordEmpty(t *testing.T) {
	is := is.New(t)
	best, err := BestWord(nil, tilemapping.ScrabbleScores)
	is.NoErr(err)
	is.Equal(best, Result{})
	is.True(!best.Found())

	best, err = BestWord([]string{}, tilemapping.ScrabbleScores)
	is.NoErr(err)
	is.True(!best.Found())
	is.Equal(best.Score, 0)
}

func TestBestWordNonPositiveScoresNeverWin(t *testing.T) {
	is := is.New(t)
	var zero tilemapping.ScoreTable
	best, err := BestWord([]string{"cat", "dog"}, zero)
	is.NoErr(err)
	is.Equal(best, Result{})

	var negative tilemapping.ScoreTable
	for i := range negative {
		negative[i] = -1
	}
	negative['z'-'a'] = 3
	best, err = BestWord([]string{"cat", "zzz", "za"}, negative)
	is.NoErr(err)
	// cat: -3, zzz: 9, za: 2
	is.Equal(best, Result{Word: "zzz", Score: 9})

	best, err = BestWord([]string{"", "a"}, negative)
	is.NoErr(err)
	is.True(!best.Found())
}

func TestBestWordSkipsInvalidWords(t *testing.T) {
	is := is.New(t)
	best, err := BestWord([]string{"cat", "qu!z", "zax", "Dog"}, tilemapping.ScrabbleScores)
	is.Equal(best, Result{Word: "zax", Score: 19})
	is.True(errors.Is(err, tilemapping.ErrInvalidCharacter))

	var ice *tilemapping.InvalidCharacterError
	is.True(errors.As(err, &ice))
	is.Equal(ice.Word, "qu!z")
}
