package lexicon

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/domino14/wordfinder/cache"
	"github.com/domino14/wordfinder/config"
)

// CacheLoadFunc loads keys of the form `lexicon:<name>`. The name is looked
// up as <lexicon-path>/<name>.txt, then <name>.txt.gz, then as a literal
// path.
func CacheLoadFunc(cfg *config.Config, key string) (any, error) {
	kind, name, ok := strings.Cut(key, ":")
	if !ok || kind != "lexicon" || name == "" {
		return nil, errors.New("lexicon cacheloadfunc - bad cache key: " + key)
	}
	path, err := resolve(cfg, name)
	if err != nil {
		return nil, err
	}
	return Load(path, cfg.GetInt(config.ConfigMaxDictionaryWords))
}

func resolve(cfg *config.Config, name string) (string, error) {
	dir := cfg.GetString(config.ConfigLexiconPath)
	candidates := []string{
		filepath.Join(dir, name+".txt"),
		filepath.Join(dir, name+".txt.gz"),
		name,
	}
	for _, c := range candidates {
		if st, err := os.Stat(c); err == nil && !st.IsDir() {
			return c, nil
		}
	}
	return "", fmt.Errorf("lexicon %s not found in %s", name, dir)
}

// NamedDictionary returns the named word list from the cache.
func NamedDictionary(cfg *config.Config, name string) (*Dictionary, error) {
	return cache.Get[*Dictionary](cfg, "lexicon:"+name, CacheLoadFunc)
}
