package tilemapping

import (
	"strings"
)

// Rack is a multiset of letters, stored as a count per machine letter.
type Rack struct {
	LetArr     [NumLetters]int
	numLetters int
}

// RackFromString creates a rack holding every a-z character of s. Other
// characters add nothing, since no word letter can ever be drawn from them.
func RackFromString(s string) *Rack {
	r := &Rack{}
	r.Set(s)
	return r
}

// Set replaces the contents of the rack with the letters of s.
func (r *Rack) Set(s string) {
	r.Clear()
	for i := 0; i < len(s); i++ {
		if ml, ok := Val(s[i]); ok {
			r.Add(ml)
		}
	}
}

func (r *Rack) Clear() {
	r.LetArr = [NumLetters]int{}
	r.numLetters = 0
}

func (r *Rack) Add(ml MachineLetter) {
	r.LetArr[ml]++
	r.numLetters++
}

// Take removes one ml from the rack. It returns false, leaving the rack
// untouched, if there is no ml left; counts never go negative.
func (r *Rack) Take(ml MachineLetter) bool {
	if r.LetArr[ml] == 0 {
		return false
	}
	r.LetArr[ml]--
	r.numLetters--
	return true
}

func (r *Rack) NumTiles() int {
	return r.numLetters
}

// String returns the rack's letters in alphabetical order.
func (r *Rack) String() string {
	var sb strings.Builder
	sb.Grow(r.numLetters)
	for i, ct := range r.LetArr {
		for j := 0; j < ct; j++ {
			sb.WriteByte(MachineLetter(i).Letter())
		}
	}
	return sb.String()
}

// ScoreOn returns the total score of the tiles on this rack.
func (r *Rack) ScoreOn(t ScoreTable) int {
	score := 0
	for i, ct := range r.LetArr {
		score += ct * t[i]
	}
	return score
}
