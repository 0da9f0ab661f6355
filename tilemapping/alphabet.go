package tilemapping

import (
	"errors"
	"fmt"
)

// The alphabet is fixed to the 26 lowercase ASCII letters. A letter is
// internally represented by its offset from 'a', so 'a' is 0 and 'z' is 25.
const (
	NumLetters = 26
	// BlankToken is the user-friendly representation of a blank tile. Blanks
	// only appear in letter distributions; hands and words never contain them.
	BlankToken = '?'
)

// MachineLetter is the 0-25 offset of a letter in the alphabet.
type MachineLetter uint8

// ErrInvalidCharacter is matched by every InvalidCharacterError.
var ErrInvalidCharacter = errors.New("invalid character")

// InvalidCharacterError reports a character outside a-z.
type InvalidCharacterError struct {
	Word string
	Char rune
	Pos  int
}

func (e *InvalidCharacterError) Error() string {
	if e.Word == "" {
		return fmt.Sprintf("invalid character %q: only a-z are allowed", e.Char)
	}
	return fmt.Sprintf("invalid character %q at position %d of %q: only a-z are allowed",
		e.Char, e.Pos, e.Word)
}

func (e *InvalidCharacterError) Is(target error) bool {
	return target == ErrInvalidCharacter
}

// Val returns the machine letter for c. ok is false for anything outside a-z,
// so callers never compute an offset for uppercase or non-letter input.
func Val(c byte) (MachineLetter, bool) {
	if c < 'a' || c > 'z' {
		return 0, false
	}
	return MachineLetter(c - 'a'), true
}

// Letter returns the user-visible letter for ml.
func (ml MachineLetter) Letter() byte {
	return 'a' + byte(ml)
}

// Validate returns an InvalidCharacterError for the first character of word
// outside a-z, or nil.
func Validate(word string) error {
	for i := 0; i < len(word); i++ {
		if _, ok := Val(word[i]); !ok {
			return invalidAt(word, i)
		}
	}
	return nil
}

func invalidAt(word string, i int) error {
	// Report the whole rune rather than a stray UTF-8 byte.
	r := []rune(word[i:])[0]
	return &InvalidCharacterError{Word: word, Char: r, Pos: i}
}
