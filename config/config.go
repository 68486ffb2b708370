// Package config loads the tokenizer's runtime options (§6 "Configuration
// / options recognized") from a YAML file, in the same
// read-file-then-yaml.Unmarshal style used elsewhere in this codebase's
// surrounding ecosystem.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/linkgrammar/tokenizer/affix"
	"github.com/linkgrammar/tokenizer/tokenize"
)

// Config is the on-disk shape of a tokenizer configuration file.
type Config struct {
	// DictionaryDir is a filesystem directory (or doublestar-glob root)
	// holding the affix-class data files consumed by affix.Load.
	DictionaryDir string `yaml:"dictionary_dir"`

	UseSpellGuess     bool `yaml:"use_spell_guess"`
	DisplayMorphology bool `yaml:"display_morphology"`
	UseUnknownWord    bool `yaml:"use_unknown_word"`

	// NoSuffixes is the "no-suffixes" debug toggle.
	NoSuffixes bool `yaml:"no-suffixes"`

	// ParallelRegex and ParallelsRegex both back the same option; the
	// upstream source carries both spellings (§9 Open Questions), so
	// both are accepted here rather than picking one.
	ParallelRegex  bool `yaml:"parallel-regex"`
	ParallelsRegex bool `yaml:"parallels-regex"`

	MaxWordLen      int `yaml:"max_word_len"`
	MaxStrip        int `yaml:"max_strip"`
	MaxMultiPrefix  int `yaml:"max_multi_prefix"`
	MaxSpellGuesses int `yaml:"max_spell_guesses"`

	InfixMark     string `yaml:"infix_mark"`
	SubscriptMark string `yaml:"subscript_mark"`
	EmptyWord     string `yaml:"empty_word"`
	LeftWall      string `yaml:"left_wall"`
	RightWall     string `yaml:"right_wall"`
	UnknownWord   string `yaml:"unknown_word"`

	Verbosity int `yaml:"verbosity"`
}

// Load reads and parses a YAML config file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return &c, nil
}

// TokenizeOptions translates the parsed config into tokenize.Options.
func (c *Config) TokenizeOptions() tokenize.Options {
	maxGuesses := c.MaxSpellGuesses
	if maxGuesses <= 0 {
		maxGuesses = affix.DefaultMaxSpellGuesses
	}
	return tokenize.Options{
		UseSpellGuess:     c.UseSpellGuess,
		DisplayMorphology: c.DisplayMorphology,
		NoSuffixes:        c.NoSuffixes,
		ParallelRegex:     c.ParallelRegex || c.ParallelsRegex,
		UseUnknownWord:    c.UseUnknownWord,
		MaxSpellGuesses:   maxGuesses,
	}
}

// ApplyLimits overwrites table's tunable limits and marker bytes/strings
// from the config, where the config specifies a non-zero/non-empty value.
func (c *Config) ApplyLimits(table *affix.Table) {
	if len(c.InfixMark) > 0 {
		table.InfixMark = c.InfixMark[0]
	}
	if len(c.SubscriptMark) > 0 {
		table.SubscriptMark = c.SubscriptMark[0]
	}
	if c.MaxWordLen > 0 {
		table.MaxWordLen = c.MaxWordLen
	}
	if c.MaxStrip > 0 {
		table.MaxStrip = c.MaxStrip
	}
	if c.MaxMultiPrefix > 0 {
		table.MaxMultiPrefix = c.MaxMultiPrefix
	}
	if c.EmptyWord != "" {
		table.EmptyWord = c.EmptyWord
	}
	if c.LeftWall != "" {
		table.LeftWall = c.LeftWall
	}
	if c.RightWall != "" {
		table.RightWall = c.RightWall
	}
	if c.UnknownWord != "" {
		table.Unknown = c.UnknownWord
	}
}
