package shell

import (
	"fmt"
	"io"

	"github.com/samber/lo"

	"github.com/domino14/wordfinder/equity"
)

// writeWordGrid prints words left-justified in columns of width characters,
// perLine words to a row.
func writeWordGrid(w io.Writer, words []string, perLine, width int) {
	if len(words) == 0 {
		io.WriteString(w, "No words found.\n")
		return
	}
	for _, row := range lo.Chunk(words, perLine) {
		for _, word := range row {
			fmt.Fprintf(w, "%-*s", width, word)
		}
		io.WriteString(w, "\n")
	}
}

func writeBestWord(w io.Writer, best equity.Result) {
	word := best.Word
	if !best.Found() {
		word = "(none)"
	}
	fmt.Fprintf(w, "Highest scoring word: %s\nScore = %d\n", word, best.Score)
}
