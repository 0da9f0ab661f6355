package testhelpers

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/domino14/wordfinder/config"
)

// SmallLexicon is the word list most tests run queries against.
var SmallLexicon = []string{
	"cat", "act", "tac", "dog", "cats", "at", "ta", "a",
	"noon", "on", "no", "quiz", "zax", "tax", "retina", "retain",
}

// WriteLexicon writes words, one per line, to dir/name.txt and returns the
// path. A name ending in .gz is written gzipped instead.
func WriteLexicon(t testing.TB, dir, name string, words []string) string {
	t.Helper()
	data := []byte(strings.Join(words, "\n") + "\n")
	if strings.HasSuffix(name, ".gz") {
		path := filepath.Join(dir, name)
		f, err := os.Create(path)
		if err != nil {
			t.Fatal(err)
		}
		defer f.Close()
		gz := gzip.NewWriter(f)
		if _, err := gz.Write(data); err != nil {
			t.Fatal(err)
		}
		if err := gz.Close(); err != nil {
			t.Fatal(err)
		}
		return path
	}
	path := filepath.Join(dir, name+".txt")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// ConfigWithLexicon returns a config whose lexicon path holds one word list
// called name, which is also the default lexicon.
func ConfigWithLexicon(t testing.TB, name string, words []string) *config.Config {
	t.Helper()
	dir := t.TempDir()
	WriteLexicon(t, dir, name, words)
	cfg := config.DefaultConfig()
	cfg.Set(config.ConfigLexiconPath, dir)
	cfg.Set(config.ConfigLetterDistributionPath, dir)
	cfg.Set(config.ConfigDefaultLexicon, name)
	return &cfg
}
