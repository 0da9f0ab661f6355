package tilemapping

import (
	"fmt"
)

// ScoreTable maps each letter, in alphabetical order, to its point value.
// Values may be zero or negative.
type ScoreTable [NumLetters]int

// ScrabbleScores are the standard English crossword-game tile values.
var ScrabbleScores = ScoreTable{
	1, 3, 3, 2, 1, 4, 2, 4, 1, 8, 5, 1, 3,
	1, 1, 3, 10, 1, 1, 1, 1, 4, 4, 8, 4, 10,
}

// ScoreTableFromSlice builds a table from exactly NumLetters values.
func ScoreTableFromSlice(vals []int) (ScoreTable, error) {
	var t ScoreTable
	if len(vals) != NumLetters {
		return t, fmt.Errorf("score table needs %d values, got %d", NumLetters, len(vals))
	}
	copy(t[:], vals)
	return t, nil
}

// WordScore sums the values of every letter in word. A character outside a-z
// fails the word with an InvalidCharacterError.
func (t ScoreTable) WordScore(word string) (int, error) {
	score := 0
	for i := 0; i < len(word); i++ {
		ml, ok := Val(word[i])
		if !ok {
			return 0, invalidAt(word, i)
		}
		score += t[ml]
	}
	return score, nil
}

// String shows the table as letter=value pairs.
func (t ScoreTable) String() string {
	s := make([]byte, 0, NumLetters*5)
	for i, v := range t {
		if i > 0 {
			s = append(s, ' ')
		}
		s = fmt.Appendf(s, "%c=%d", MachineLetter(i).Letter(), v)
	}
	return string(s)
}
