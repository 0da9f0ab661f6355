package tilemapping

import (
	"fmt"

	"github.com/samber/lo"
	"lukechampine.com/frand"
)

// A Bag is the bag o'tiles! It only holds lettered tiles; blanks never go
// into a hand because hands are plain a-z strings.
type Bag struct {
	tiles              []MachineLetter
	letterDistribution *LetterDistribution
}

// NewBag fills a bag with every lettered tile of ld.
func NewBag(ld *LetterDistribution) *Bag {
	dist := ld.Distribution()
	total := lo.Sum(lo.Map(dist[:], func(ct uint8, _ int) int { return int(ct) }))
	b := &Bag{
		tiles:              make([]MachineLetter, 0, total),
		letterDistribution: ld,
	}
	b.Refill()
	return b
}

// Refill puts every tile back in the bag.
func (b *Bag) Refill() {
	b.tiles = b.tiles[:0]
	for i, ct := range b.letterDistribution.Distribution() {
		for j := uint8(0); j < ct; j++ {
			b.tiles = append(b.tiles, MachineLetter(i))
		}
	}
}

// Draw removes n random tiles from the bag.
func (b *Bag) Draw(n int) ([]MachineLetter, error) {
	if n < 0 {
		return nil, fmt.Errorf("cannot draw %d tiles", n)
	}
	if n > len(b.tiles) {
		return nil, fmt.Errorf("tried to draw %v tiles, tile bag has %v", n, len(b.tiles))
	}
	drawn := make([]MachineLetter, n)
	for i := 0; i < n; i++ {
		last := len(b.tiles) - 1
		idx := frand.Intn(len(b.tiles))
		drawn[i] = b.tiles[idx]
		b.tiles[idx] = b.tiles[last]
		b.tiles = b.tiles[:last]
	}
	return drawn, nil
}

// DrawHand draws n tiles and returns them as a hand string.
func (b *Bag) DrawHand(n int) (string, error) {
	mls, err := b.Draw(n)
	if err != nil {
		return "", err
	}
	hand := make([]byte, len(mls))
	for i, ml := range mls {
		hand[i] = ml.Letter()
	}
	return string(hand), nil
}

func (b *Bag) TilesRemaining() int {
	return len(b.tiles)
}
