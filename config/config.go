package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	ConfigDataPath                  = "data-path"
	ConfigLexiconPath               = "lexicon-path"
	ConfigLetterDistributionPath    = "letter-distribution-path"
	ConfigDefaultLexicon            = "default-lexicon"
	ConfigDefaultLetterDistribution = "default-letter-distribution"
	ConfigMaxDictionaryWords        = "max-dictionary-words"
	ConfigMinHandLength             = "min-hand-length"
	ConfigMaxHandLength             = "max-hand-length"
	ConfigWordsPerLine              = "words-per-line"
	ConfigColumnWidth               = "column-width"
	ConfigHistoryFile               = "history-file"
	ConfigDebug                     = "debug"
	ConfigCPUProfile                = "cpu-profile"
	ConfigFile                      = "config"
)

const envPrefix = "WORDFINDER"

// pathKeys are resolved against the executable directory when relative.
var pathKeys = []string{ConfigDataPath, ConfigLexiconPath, ConfigLetterDistributionPath}

// Config wraps a viper instance. Precedence, lowest first: defaults, config
// file, WORDFINDER_* environment variables, command-line flags.
type Config struct {
	*viper.Viper
	// Args holds the positional arguments left over after flag parsing.
	Args []string
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault(ConfigDataPath, "./data")
	v.SetDefault(ConfigLexiconPath, "./data/lexica")
	v.SetDefault(ConfigLetterDistributionPath, "./data/letterdistributions")
	v.SetDefault(ConfigDefaultLexicon, "wordlist")
	v.SetDefault(ConfigDefaultLetterDistribution, "english")
	v.SetDefault(ConfigMaxDictionaryWords, 500000)
	v.SetDefault(ConfigMinHandLength, 3)
	v.SetDefault(ConfigMaxHandLength, 12)
	v.SetDefault(ConfigWordsPerLine, 5)
	v.SetDefault(ConfigColumnWidth, 10)
	v.SetDefault(ConfigHistoryFile, "/tmp/wordfinder_readline.tmp")
	v.SetDefault(ConfigDebug, false)
	v.SetDefault(ConfigCPUProfile, "")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// DefaultConfig returns a configuration holding only the defaults and
// whatever the environment sets. Mostly useful for tests.
func DefaultConfig() Config {
	return Config{Viper: newViper()}
}

// Load parses the command-line args, reads the optional config file and
// binds everything into the viper instance.
func (c *Config) Load(args []string) error {
	c.Viper = newViper()

	fs := pflag.NewFlagSet("wordfinder", pflag.ContinueOnError)
	fs.String(ConfigFile, "", "path to a config file (yaml, toml or json)")
	fs.String(ConfigDataPath, "./data", "directory holding data files")
	fs.String(ConfigLexiconPath, "./data/lexica", "directory holding word lists")
	fs.String(ConfigLetterDistributionPath, "./data/letterdistributions", "directory holding letter distribution files")
	fs.String(ConfigDefaultLexicon, "wordlist", "the word list to load at startup")
	fs.String(ConfigDefaultLetterDistribution, "english", "the letter distribution whose tile values score words")
	fs.Int(ConfigMaxDictionaryWords, 500000, "refuse to load word lists larger than this; 0 disables the cap")
	fs.Int(ConfigMinHandLength, 3, "minimum number of letters in a hand")
	fs.Int(ConfigMaxHandLength, 12, "maximum number of letters in a hand")
	fs.Int(ConfigWordsPerLine, 5, "words printed per line of the result grid")
	fs.Int(ConfigColumnWidth, 10, "width of each column of the result grid")
	fs.String(ConfigHistoryFile, "/tmp/wordfinder_readline.tmp", "readline history file")
	fs.Bool(ConfigDebug, false, "debug logging on")
	fs.String(ConfigCPUProfile, "", "file to write a CPU profile to")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := c.BindPFlags(fs); err != nil {
		return err
	}
	c.Args = fs.Args()

	if cfgFile := c.GetString(ConfigFile); cfgFile != "" {
		c.SetConfigFile(cfgFile)
		if err := c.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if errors.As(err, &notFound) {
				return fmt.Errorf("config file %s not found: %w", cfgFile, err)
			}
			return fmt.Errorf("reading config file %s: %w", cfgFile, err)
		}
	}
	return c.Validate()
}

// Validate checks the numeric settings for consistency.
func (c *Config) Validate() error {
	minLen := c.GetInt(ConfigMinHandLength)
	maxLen := c.GetInt(ConfigMaxHandLength)
	if minLen < 0 {
		return fmt.Errorf("%s must not be negative, got %d", ConfigMinHandLength, minLen)
	}
	if maxLen < minLen {
		return fmt.Errorf("%s (%d) is smaller than %s (%d)",
			ConfigMaxHandLength, maxLen, ConfigMinHandLength, minLen)
	}
	if c.GetInt(ConfigWordsPerLine) < 1 {
		return fmt.Errorf("%s must be at least 1", ConfigWordsPerLine)
	}
	if c.GetInt(ConfigMaxDictionaryWords) < 0 {
		return fmt.Errorf("%s must not be negative", ConfigMaxDictionaryWords)
	}
	return nil
}

// AdjustRelativePaths makes relative data paths relative to basePath (the
// directory of the executable) instead of the working directory.
func (c *Config) AdjustRelativePaths(basePath string) {
	for _, key := range pathKeys {
		p := c.GetString(key)
		if p == "" || filepath.IsAbs(p) {
			continue
		}
		c.Set(key, filepath.Join(basePath, p))
	}
}

// SanitizedSettings returns the settings in a form suitable for logging.
func (c *Config) SanitizedSettings() map[string]any {
	return c.AllSettings()
}
