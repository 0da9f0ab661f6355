package shell

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/domino14/wordfinder/anagrammer"
	"github.com/domino14/wordfinder/config"
	"github.com/domino14/wordfinder/lexicon"
	"github.com/domino14/wordfinder/tilemapping"
)

var (
	errNoData            = errors.New("no data in this line")
	errWrongOptionSyntax = errors.New("wrong format; all options need arguments")
	errNoLexicon         = errors.New("no lexicon loaded; use `lexicon <name>` to load one")
)

type shellcmd struct {
	cmd     string
	args    []string
	options CmdOptions
}

type ShellController struct {
	l          *readline.Instance
	out        io.Writer
	config     *config.Config
	execPath   string
	gitVersion string

	options *ShellOptions

	dict       *lexicon.Dictionary
	finder     *anagrammer.Finder
	letterDist *tilemapping.LetterDistribution
	bag        *tilemapping.Bag
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func showMessage(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

// NewShellController creates a controller writing to stdout. The default
// lexicon and letter distribution are loaded right away; a lexicon that
// fails to load is logged, and the shell starts without one.
func NewShellController(cfg *config.Config, execPath, gitVersion string) *ShellController {
	sc := newController(cfg, os.Stdout)
	sc.execPath = execPath
	sc.gitVersion = gitVersion
	if err := sc.loadDefaults(); err != nil {
		log.Error().Err(err).Msg("could-not-load-defaults")
	}
	return sc
}

func newController(cfg *config.Config, out io.Writer) *ShellController {
	return &ShellController{
		out:     out,
		config:  cfg,
		options: newShellOptions(cfg),
	}
}

// loadDefaults loads the configured lexicon and letter distribution in
// parallel. The distribution is required; a missing lexicon is only logged.
func (sc *ShellController) loadDefaults() error {
	lexName := sc.config.GetString(config.ConfigDefaultLexicon)
	distName := sc.config.GetString(config.ConfigDefaultLetterDistribution)

	var dict *lexicon.Dictionary
	var ld *tilemapping.LetterDistribution
	var g errgroup.Group
	g.Go(func() error {
		var err error
		dict, err = lexicon.NamedDictionary(sc.config, lexName)
		if err != nil {
			log.Warn().Err(err).Str("lexicon", lexName).Msg("default-lexicon-not-loaded")
		}
		return nil
	})
	g.Go(func() error {
		var err error
		ld, err = tilemapping.NamedLetterDistribution(sc.config, distName)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}
	if dict != nil {
		sc.setDictionary(dict)
	}
	sc.setLetterDistribution(ld)
	return nil
}

func (sc *ShellController) setDictionary(d *lexicon.Dictionary) {
	sc.dict = d
	sc.finder = anagrammer.NewFinder(d)
}

func (sc *ShellController) setLetterDistribution(ld *tilemapping.LetterDistribution) {
	sc.letterDist = ld
	sc.bag = tilemapping.NewBag(ld)
}

func (sc *ShellController) showMessage(msg string) {
	showMessage(msg, sc.out)
}

func (sc *ShellController) showError(err error) {
	sc.showMessage("Error: " + err.Error())
}

func extractFields(line string) (*shellcmd, error) {
	fields, err := shellquote.Split(line)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, errNoData
	}
	cmd := fields[0]
	var args []string
	options := CmdOptions{}
	for i := 1; i < len(fields); i++ {
		if strings.HasPrefix(fields[i], "-") && len(fields[i]) > 1 {
			if i == len(fields)-1 {
				return nil, errWrongOptionSyntax
			}
			key := fields[i][1:]
			options[key] = append(options[key], fields[i+1])
			i++
			continue
		}
		args = append(args, fields[i])
	}
	return &shellcmd{cmd: cmd, args: args, options: options}, nil
}

func (sc *ShellController) dispatch(cmd *shellcmd) (*Response, error) {
	switch cmd.cmd {
	case "help":
		return sc.help(cmd)
	case "find":
		return sc.find(cmd)
	case "best":
		return sc.best(cmd)
	case "score":
		return sc.score(cmd)
	case "lexicon":
		return sc.lexicon(cmd)
	case "dist":
		return sc.dist(cmd)
	case "random":
		return sc.random(cmd)
	case "set":
		return sc.set(cmd)
	case "script":
		return sc.script(cmd)
	case "version":
		return sc.version(cmd)
	default:
		return nil, fmt.Errorf("command %v not found", strings.TrimSpace(cmd.cmd))
	}
}

// standardModeSwitch runs one line. It returns true if the shell should
// exit.
func (sc *ShellController) standardModeSwitch(line string, sig chan os.Signal) bool {
	cmd, err := extractFields(line)
	if err == errNoData {
		return false
	}
	if err != nil {
		sc.showError(err)
		return false
	}
	if cmd.cmd == "exit" || cmd.cmd == "bye" {
		sig <- syscall.SIGINT
		return true
	}
	resp, err := sc.dispatch(cmd)
	if err != nil {
		sc.showError(err)
		return false
	}
	if resp != nil && resp.message != "" {
		sc.showMessage(resp.message)
	}
	return false
}

// Execute runs a single command line, for non-interactive use.
func (sc *ShellController) Execute(sig chan os.Signal, line string) {
	sc.standardModeSwitch(line, sig)
}

// Loop reads commands until the user exits or closes the input.
func (sc *ShellController) Loop(sig chan os.Signal) {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31mwordfinder>\033[0m ",
		HistoryFile:     sc.config.GetString(config.ConfigHistoryFile),
		AutoComplete:    NewShellCompleter(sc),
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		log.Error().Err(err).Msg("could-not-start-readline")
		sig <- syscall.SIGINT
		return
	}
	sc.l = l
	sc.out = l.Stdout()
	defer sc.l.Close()

	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				sig <- syscall.SIGINT
				break
			} else {
				continue
			}
		} else if err == io.EOF {
			sig <- syscall.SIGINT
			break
		}
		line = strings.TrimSpace(line)
		if sc.standardModeSwitch(line, sig) {
			break
		}
	}
	log.Debug().Msgf("Exiting readline loop...")
}
