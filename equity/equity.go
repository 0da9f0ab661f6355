// Package equity scores words and picks the best of a set of candidates.
package equity

import (
	"errors"

	"github.com/rs/zerolog/log"
)

// WordValuer scores a single word. Both tilemapping.ScoreTable and
// *tilemapping.LetterDistribution satisfy it.
type WordValuer interface {
	WordScore(word string) (int, error)
}

// Result is the outcome of a best-word search. The zero value means no word
// was selected.
type Result struct {
	Word  string
	Score int
}

// Found reports whether a word was selected.
func (r Result) Found() bool {
	return r.Word != ""
}

// Score returns the score of word under v.
func Score(word string, v WordValuer) (int, error) {
	return v.WordScore(word)
}

// BestWord returns the highest-scoring candidate. The running best starts at
// a score of 0 and is only replaced by a strictly higher score, so the first
// candidate reaching the maximum wins and a word scoring 0 or less is never
// selected. With no candidates, or none scoring above 0, the zero Result is
// returned.
//
// A candidate that cannot be scored is skipped and the scan goes on. The
// returned error joins every such failure; the Result is valid either way.
func BestWord(candidates []string, v WordValuer) (Result, error) {
	best := Result{}
	var errs []error
	for _, w := range candidates {
		score, err := v.WordScore(w)
		if err != nil {
			log.Warn().Err(err).Str("word", w).Msg("skipping-unscorable-word")
			errs = append(errs, err)
			continue
		}
		if score > best.Score {
			best = Result{Word: w, Score: score}
		}
	}
	return best, errors.Join(errs...)
}
