package tilemapping

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/wordfinder/config"
)

func TestEnglishDistribution(t *testing.T) {
	is := is.New(t)
	ld, err := EnglishLetterDistribution()
	is.NoErr(err)
	is.Equal(ld.Scores(), ScrabbleScores)
	is.Equal(ld.NumTotalTiles(), 100)
	is.Equal(ld.NumBlanks(), 2)
	is.Equal(len(ld.Vowels), 5)
	is.Equal(ld.Scores()[25], 10)
	is.Equal(ld.Distribution()[4], uint8(12))
}

func TestLetterDistributionWordScore(t *testing.T) {
	is := is.New(t)
	ld, err := EnglishLetterDistribution()
	is.NoErr(err)

	score, err := ld.WordScore("cookie")
	is.NoErr(err)
	is.Equal(score, 12)

	_, err = ld.WordScore("CoOKIE")
	is.True(errors.Is(err, ErrInvalidCharacter))
}

func TestScanYAMLLetterDistribution(t *testing.T) {
	is := is.New(t)
	var sb strings.Builder
	sb.WriteString("name: flat\nletters:\n")
	sb.WriteString("  - {letter: \"?\", count: 4, score: 0}\n")
	for c := 'a'; c <= 'z'; c++ {
		sb.WriteString("  - {letter: " + string(c) + ", count: 2, score: 2}\n")
	}
	ld, err := ScanYAMLLetterDistribution("ignored", strings.NewReader(sb.String()))
	is.NoErr(err)
	is.Equal(ld.Name, "flat")
	is.Equal(ld.NumBlanks(), 4)
	is.Equal(ld.NumTotalTiles(), 56)
	score, err := ld.WordScore("zzz")
	is.NoErr(err)
	is.Equal(score, 6)
}

func TestScanLetterDistributionErrors(t *testing.T) {
	is := is.New(t)
	full := string(englishCSV)

	// Missing a letter.
	missingZ := strings.Replace(full, "Z,1,10,0\n", "", 1)
	_, err := ScanLetterDistribution("x", strings.NewReader(missingZ))
	is.True(err != nil)
	is.True(strings.Contains(err.Error(), "missing letters z"))

	// Duplicate letter.
	_, err = ScanLetterDistribution("x", strings.NewReader(full+"A,1,1,1\n"))
	is.True(err != nil)

	// Non a-z letter.
	_, err = ScanLetterDistribution("x", strings.NewReader(full+"Ñ,1,8,0\n"))
	is.True(errors.Is(err, ErrInvalidCharacter))

	// Bad number.
	_, err = ScanLetterDistribution("x", strings.NewReader("A,lots,1,1\n"))
	is.True(err != nil)
}

func TestNamedLetterDistribution(t *testing.T) {
	is := is.New(t)
	dir := t.TempDir()
	doubled := []string{}
	for _, line := range strings.Split(strings.TrimSpace(string(englishCSV)), "\n") {
		fields := strings.Split(line, ",")
		// double every tile value
		switch fields[2] {
		case "1":
			fields[2] = "2"
		case "10":
			fields[2] = "20"
		}
		doubled = append(doubled, strings.Join(fields, ","))
	}
	err := os.WriteFile(filepath.Join(dir, "doubled.csv"), []byte(strings.Join(doubled, "\n")), 0o644)
	is.NoErr(err)

	cfg := config.DefaultConfig()
	cfg.Set(config.ConfigLetterDistributionPath, dir)

	ld, err := NamedLetterDistribution(&cfg, "Doubled")
	is.NoErr(err)
	score, err := ld.WordScore("quiz")
	is.NoErr(err)
	is.Equal(score, 20+2+2+20)

	eng, err := NamedLetterDistribution(&cfg, "english")
	is.NoErr(err)
	is.Equal(eng.Scores(), ScrabbleScores)

	_, err = NamedLetterDistribution(&cfg, "klingon")
	is.True(err != nil)
}

func TestCacheLoadFuncBadKey(t *testing.T) {
	is := is.New(t)
	cfg := config.DefaultConfig()
	_, err := CacheLoadFunc(&cfg, "lexicon:english")
	is.True(err != nil)
}
