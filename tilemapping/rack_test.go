package tilemapping

import (
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"
)

func TestRackFromString(t *testing.T) {
	rack := RackFromString("aenppsw")

	expected := [NumLetters]int{}
	expected[0] = 1
	expected[4] = 1
	expected[13] = 1
	expected[15] = 2
	expected[18] = 1
	expected[22] = 1

	assert.Equal(t, expected, rack.LetArr)
	assert.Equal(t, 7, rack.NumTiles())
}

func TestRackIgnoresNonLetters(t *testing.T) {
	is := is.New(t)
	rack := RackFromString("a?B-c")
	is.Equal(rack.NumTiles(), 2)
	is.Equal(rack.String(), "ac")
}

func TestRackTake(t *testing.T) {
	is := is.New(t)
	rack := RackFromString("aenppsw")
	is.True(rack.Take(15))
	is.Equal(rack.LetArr[15], 1)
	is.True(rack.Take(15))
	is.Equal(rack.LetArr[15], 0)
	is.True(!rack.Take(15))
	is.Equal(rack.LetArr[15], 0)
	is.Equal(rack.NumTiles(), 5)
	is.Equal(rack.String(), "aensw")
}

func TestScoreOn(t *testing.T) {
	is := is.New(t)
	type racktest struct {
		rack string
		pts  int
	}
	testCases := []racktest{
		{"abcdefg", 16},
		{"xyz", 22},
		{"??", 0},
		{"?qwerty", 21},
		{"retinao", 7},
	}
	for _, tc := range testCases {
		r := RackFromString(tc.rack)
		is.Equal(r.ScoreOn(ScrabbleScores), tc.pts)
	}
}
