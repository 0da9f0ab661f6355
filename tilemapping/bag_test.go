package tilemapping

import (
	"testing"

	"github.com/matryer/is"
)

func TestBag(t *testing.T) {
	is := is.New(t)

	ld, err := EnglishLetterDistribution()
	is.NoErr(err)
	bag := NewBag(ld)
	is.Equal(bag.TilesRemaining(), 98)

	var counts [NumLetters]uint8
	for bag.TilesRemaining() > 0 {
		mls, err := bag.Draw(1)
		is.NoErr(err)
		counts[mls[0]]++
	}
	is.Equal(counts, ld.Distribution())

	_, err = bag.Draw(1)
	is.True(err != nil) // empty bag
}

func TestDrawHand(t *testing.T) {
	is := is.New(t)

	ld, err := EnglishLetterDistribution()
	is.NoErr(err)
	bag := NewBag(ld)
	hand, err := bag.DrawHand(7)
	is.NoErr(err)
	is.Equal(len(hand), 7)
	is.NoErr(Validate(hand))
	is.Equal(bag.TilesRemaining(), 91)

	bag.Refill()
	is.Equal(bag.TilesRemaining(), 98)

	_, err = bag.Draw(99)
	is.True(err != nil)
	_, err = bag.Draw(-1)
	is.True(err != nil)
}
