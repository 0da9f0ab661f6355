package shell

import (
	"os"
	"sort"
	"strings"

	"github.com/kballard/go-shellquote"

	"github.com/domino14/wordfinder/config"
)

// ShellCompleter provides context-aware autocomplete for shell commands
type ShellCompleter struct {
	sc *ShellController
}

func NewShellCompleter(sc *ShellController) *ShellCompleter {
	return &ShellCompleter{sc: sc}
}

// CommandMetadata holds autocomplete information for a command
type CommandMetadata struct {
	Options []string // Available options for this command (e.g., "-reload")
	Args    []string // Possible argument values (for non-option arguments)
}

var commandMetadata = map[string]CommandMetadata{
	"lexicon": {
		Options: []string{"-reload"},
	},
	"set": {
		Args: optionNames,
	},
	"help": {
		Args: []string{"find", "best", "score", "random", "lexicon", "dist", "set", "script", "version"},
	},
}

// Common command names for command completion
var commandNames = []string{
	"help", "find", "best", "score", "random", "lexicon", "dist", "set",
	"script", "version", "exit",
}

var boolValues = []string{"true", "false"}

// filesWithExt lists the names, minus extension, of the files in dir that
// end in one of exts.
func filesWithExt(dir string, exts ...string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	names := []string{}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		for _, ext := range exts {
			if strings.HasSuffix(e.Name(), ext) {
				names = append(names, strings.TrimSuffix(e.Name(), ext))
				break
			}
		}
	}
	sort.Strings(names)
	return names
}

// Do implements the readline.AutoComplete interface
// It provides context-aware autocomplete based on what's been typed
func (c *ShellCompleter) Do(line []rune, pos int) ([][]rune, int) {
	// Get the text up to the cursor position
	text := string(line[:pos])

	// Parse the line using shellquote to handle quoted strings properly
	fields, err := shellquote.Split(text)
	if err != nil {
		// If we can't parse, fall back to simple space splitting
		fields = strings.Fields(text)
	}

	// Check if we're in the middle of typing a word or just after a space
	endsWithSpace := len(text) > 0 && text[len(text)-1] == ' '

	var prefix string
	var completions []string

	if len(fields) == 0 || (len(fields) == 1 && !endsWithSpace) {
		// Completing a command name
		if len(fields) == 1 {
			prefix = fields[0]
		}
		completions = commandNames
	} else {
		cmdName := fields[0]

		if !endsWithSpace {
			prefix = fields[len(fields)-1]
		}

		var lastCompleteField string
		if endsWithSpace {
			lastCompleteField = fields[len(fields)-1]
		} else if len(fields) > 1 {
			lastCompleteField = fields[len(fields)-2]
		}

		switch {
		case lastCompleteField == "-reload":
			completions = boolValues
		case cmdName == "lexicon" && !strings.HasPrefix(prefix, "-"):
			completions = filesWithExt(c.sc.config.GetString(config.ConfigLexiconPath), ".txt.gz", ".txt")
		case cmdName == "dist":
			completions = append([]string{"english"},
				filesWithExt(c.sc.config.GetString(config.ConfigLetterDistributionPath), ".csv", ".yaml", ".yml")...)
		case cmdName == "script":
			for _, name := range filesWithExt(".", ".lua") {
				completions = append(completions, name+".lua")
			}
		}

		// If we haven't determined completions yet, show command options/args
		if completions == nil {
			if metadata, exists := commandMetadata[cmdName]; exists {
				if strings.HasPrefix(prefix, "-") || len(metadata.Args) == 0 {
					completions = metadata.Options
				} else {
					completions = metadata.Args
				}
			}
		}
	}

	// Filter completions based on prefix
	var matches [][]rune
	for _, completion := range completions {
		if strings.HasPrefix(completion, prefix) {
			// Return only the part that needs to be added
			suffix := completion[len(prefix):]
			matches = append(matches, []rune(suffix))
		}
	}

	return matches, len(prefix)
}
