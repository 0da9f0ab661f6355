package shell

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/domino14/wordfinder/cache"
	"github.com/domino14/wordfinder/config"
	"github.com/domino14/wordfinder/equity"
	"github.com/domino14/wordfinder/lexicon"
	"github.com/domino14/wordfinder/tilemapping"
)

const defaultRandomHandSize = 7

type Response struct {
	message string
}

type CmdOptions map[string][]string

func (c CmdOptions) String(key string) string {
	v := c[key]
	if len(v) > 0 {
		return v[0]
	}
	return ""
}

func (c CmdOptions) Int(key string) (int, error) {
	v := c[key]
	if len(v) == 0 {
		return 0, errors.New(key + " not found in options")
	}
	return strconv.Atoi(v[0])
}

func (c CmdOptions) IntDefault(key string, defaultI int) (int, error) {
	v := c[key]
	if len(v) == 0 {
		return defaultI, nil
	}
	return strconv.Atoi(v[0])
}

func (c CmdOptions) Bool(key string) bool {
	v := c[key]
	if len(v) == 0 {
		return false
	}
	return strings.ToLower(v[0]) == "true"
}

func msg(message string) *Response {
	return &Response{message: message}
}

// ShellOptions are display settings the user can change with `set`.
type ShellOptions struct {
	wordsPerLine int
	columnWidth  int
}

var optionNames = []string{"wordsperline", "columnwidth"}

func newShellOptions(cfg *config.Config) *ShellOptions {
	return &ShellOptions{
		wordsPerLine: cfg.GetInt(config.ConfigWordsPerLine),
		columnWidth:  cfg.GetInt(config.ConfigColumnWidth),
	}
}

// Show returns whether opt exists, and its value.
func (so *ShellOptions) Show(opt string) (bool, string) {
	switch opt {
	case "wordsperline":
		return true, strconv.Itoa(so.wordsPerLine)
	case "columnwidth":
		return true, strconv.Itoa(so.columnWidth)
	}
	return false, "No such option: " + opt
}

func (so *ShellOptions) ToDisplayText() string {
	var sb strings.Builder
	sb.WriteString("Settings:\n")
	for _, opt := range optionNames {
		_, val := so.Show(opt)
		fmt.Fprintf(&sb, "  %s: %s\n", opt, val)
	}
	return sb.String()
}

// Set changes one display option and returns the new value.
func (sc *ShellController) Set(opt string, values []string) (string, error) {
	n, err := strconv.Atoi(values[0])
	if err != nil {
		return "", fmt.Errorf("%s needs a number: %w", opt, err)
	}
	switch opt {
	case "wordsperline":
		if n < 1 {
			return "", errors.New("wordsperline must be at least 1")
		}
		sc.options.wordsPerLine = n
	case "columnwidth":
		if n < 0 {
			return "", errors.New("columnwidth must not be negative")
		}
		sc.options.columnWidth = n
	default:
		return "", errors.New("option " + opt + " not settable")
	}
	return strconv.Itoa(n), nil
}

func (sc *ShellController) set(cmd *shellcmd) (*Response, error) {
	if cmd.args == nil {
		return msg(sc.options.ToDisplayText()), nil
	}
	opt := cmd.args[0]
	if len(cmd.args) == 1 {
		_, val := sc.options.Show(opt)
		return msg(val), nil
	}
	ret, err := sc.Set(opt, cmd.args[1:])
	if err != nil {
		return nil, err
	}
	return msg("set " + opt + " to " + ret), nil
}

var lowerCaser = cases.Lower(language.Und)

// normalizeHand turns user input into a hand: lowercase a-z only, with a
// length inside the configured bounds.
func (sc *ShellController) normalizeHand(raw string) (string, error) {
	hand := lowerCaser.String(strings.TrimSpace(raw))
	if err := tilemapping.Validate(hand); err != nil {
		return "", err
	}
	minLen := sc.config.GetInt(config.ConfigMinHandLength)
	maxLen := sc.config.GetInt(config.ConfigMaxHandLength)
	if len(hand) < minLen || len(hand) > maxLen {
		return "", fmt.Errorf("a hand must have %d to %d letters, got %d", minLen, maxLen, len(hand))
	}
	return hand, nil
}

func (sc *ShellController) handFromArgs(cmd *shellcmd) (string, error) {
	if len(cmd.args) != 1 {
		return "", fmt.Errorf("usage: %s <letters>, with no spaces", cmd.cmd)
	}
	return sc.normalizeHand(cmd.args[0])
}

type queryResult struct {
	hand     string
	words    []string
	best     equity.Result
	scoreErr error
}

// query runs the filter and best-word selection for one hand.
func (sc *ShellController) query(hand string) (*queryResult, error) {
	if sc.finder == nil {
		return nil, errNoLexicon
	}
	words := sc.finder.FindAllWords(hand)
	best, err := equity.BestWord(words, sc.letterDist)
	return &queryResult{hand: hand, words: words, best: best, scoreErr: err}, nil
}

func (sc *ShellController) renderQuery(qr *queryResult, withGrid bool) string {
	var sb strings.Builder
	if withGrid {
		sb.WriteString("\n")
		writeWordGrid(&sb, qr.words, sc.options.wordsPerLine, sc.options.columnWidth)
		sb.WriteString("\n")
	}
	writeBestWord(&sb, qr.best)
	if qr.scoreErr != nil {
		fmt.Fprintf(&sb, "Some words could not be scored:\n%s\n", qr.scoreErr)
	}
	return sb.String()
}

func (sc *ShellController) find(cmd *shellcmd) (*Response, error) {
	hand, err := sc.handFromArgs(cmd)
	if err != nil {
		return nil, err
	}
	qr, err := sc.query(hand)
	if err != nil {
		return nil, err
	}
	return msg(sc.renderQuery(qr, true)), nil
}

func (sc *ShellController) best(cmd *shellcmd) (*Response, error) {
	hand, err := sc.handFromArgs(cmd)
	if err != nil {
		return nil, err
	}
	qr, err := sc.query(hand)
	if err != nil {
		return nil, err
	}
	return msg(sc.renderQuery(qr, false)), nil
}

func (sc *ShellController) score(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		return nil, errors.New("usage: score <word> [word...]")
	}
	var sb strings.Builder
	var errs []error
	for _, arg := range cmd.args {
		word := lowerCaser.String(arg)
		pts, err := equity.Score(word, sc.letterDist)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		fmt.Fprintf(&sb, "%s: %d", word, pts)
		if sc.dict != nil && !sc.dict.HasWord(word) {
			fmt.Fprintf(&sb, " (not in %s)", sc.dict.Name())
		}
		sb.WriteString("\n")
	}
	if sb.Len() == 0 {
		return nil, errors.Join(errs...)
	}
	for _, err := range errs {
		fmt.Fprintf(&sb, "Error: %s\n", err)
	}
	return msg(strings.TrimSuffix(sb.String(), "\n")), nil
}

func (sc *ShellController) lexicon(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		if sc.dict == nil {
			return nil, errNoLexicon
		}
		return msg(fmt.Sprintf("Current lexicon: %s (%d words)", sc.dict.Name(), sc.dict.Len())), nil
	}
	name := cmd.args[0]
	if cmd.options.Bool("reload") {
		cache.Purge("lexicon:" + name)
	}
	d, err := lexicon.NamedDictionary(sc.config, name)
	if err != nil {
		return nil, err
	}
	sc.setDictionary(d)
	return msg(fmt.Sprintf("Loaded lexicon %s (%d words)", d.Name(), d.Len())), nil
}

func (sc *ShellController) dist(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		return msg("Current letter distribution: " + describeDist(sc.letterDist)), nil
	}
	ld, err := tilemapping.NamedLetterDistribution(sc.config, cmd.args[0])
	if err != nil {
		return nil, err
	}
	sc.setLetterDistribution(ld)
	return msg("Loaded letter distribution " + describeDist(ld)), nil
}

func describeDist(ld *tilemapping.LetterDistribution) string {
	vowels := make([]byte, len(ld.Vowels))
	for i, v := range ld.Vowels {
		vowels[i] = v.Letter()
	}
	return fmt.Sprintf("%s\n%s\nvowels: %s, tiles: %d (%d blanks)",
		ld.Name, ld.Scores(), vowels, ld.NumTotalTiles(), ld.NumBlanks())
}

func (sc *ShellController) random(cmd *shellcmd) (*Response, error) {
	n := defaultRandomHandSize
	if len(cmd.args) > 0 {
		var err error
		n, err = strconv.Atoi(cmd.args[0])
		if err != nil {
			return nil, fmt.Errorf("usage: random [number of tiles]: %w", err)
		}
	}
	sc.bag.Refill()
	drawn, err := sc.bag.DrawHand(n)
	if err != nil {
		return nil, err
	}
	hand, err := sc.normalizeHand(drawn)
	if err != nil {
		return nil, err
	}
	qr, err := sc.query(hand)
	if err != nil {
		return nil, err
	}
	rack := tilemapping.RackFromString(hand)
	return msg(fmt.Sprintf("Hand: %s (%d points)\n%s",
		rack, rack.ScoreOn(sc.letterDist.Scores()), sc.renderQuery(qr, true))), nil
}

func (sc *ShellController) version(cmd *shellcmd) (*Response, error) {
	v := sc.gitVersion
	if v == "" {
		v = "(development build)"
	}
	return msg(fmt.Sprintf("wordfinder %s\nexecutable path: %s", v, sc.execPath)), nil
}

func (sc *ShellController) help(cmd *shellcmd) (*Response, error) {
	if cmd.args == nil {
		return msg(usage("standard")), nil
	}
	return msg(usageTopic(cmd.args[0])), nil
}
