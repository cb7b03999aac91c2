package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/gnolang/wordtrie/internal/token"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the configuration file used when none is given.
const DefaultPath = ".wordtrie.yaml"

// EnvPrefix prefixes environment overrides, e.g. WORDTRIE_TOKENIZER.
const EnvPrefix = "WORDTRIE"

var (
	ErrInvalidWorkers  = errors.New("workers must be positive")
	ErrInvalidEncoding = errors.New("unsupported encoding")
	ErrInvalidOutput   = errors.New("unsupported output format")
)

// Config holds everything needed to build a word index from files.
type Config struct {
	Name string `yaml:"name" mapstructure:"name"`
	// Tokenizer is "byte", "rune" or "grapheme", optionally suffixed with "+nfc".
	Tokenizer string `yaml:"tokenizer" mapstructure:"tokenizer"`
	// Lowercase folds words before insertion.
	Lowercase bool `yaml:"lowercase" mapstructure:"lowercase"`
	// MinLength skips words with fewer runes.
	MinLength int `yaml:"min_length" mapstructure:"min_length"`
	// Encoding of the word lists: "utf-8" or "latin1".
	Encoding string `yaml:"encoding" mapstructure:"encoding"`
	// Workers bounds how many files are parsed at once.
	Workers int `yaml:"workers" mapstructure:"workers"`
	// Color enables highlighted terminal output.
	Color bool `yaml:"color" mapstructure:"color"`
	// Output is "text" or "json".
	Output string `yaml:"output" mapstructure:"output"`
}

// Default returns the configuration written by `wordtrie init`.
func Default() Config {
	return Config{
		Name:      "wordtrie",
		Tokenizer: "grapheme",
		Lowercase: false,
		MinLength: 1,
		Encoding:  "utf-8",
		Workers:   4,
		Color:     true,
		Output:    "text",
	}
}

// Load reads the configuration from path (if it exists) and from WORDTRIE_*
// environment variables, on top of the defaults. A missing file at the
// default path is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path == "" {
		path = DefaultPath
	}
	if _, err := os.Stat(path); err == nil || path != DefaultPath {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("name", d.Name)
	v.SetDefault("tokenizer", d.Tokenizer)
	v.SetDefault("lowercase", d.Lowercase)
	v.SetDefault("min_length", d.MinLength)
	v.SetDefault("encoding", d.Encoding)
	v.SetDefault("workers", d.Workers)
	v.SetDefault("color", d.Color)
	v.SetDefault("output", d.Output)
}

// Validate checks that every field holds a supported value.
func (c *Config) Validate() error {
	if _, err := token.ByName(c.Tokenizer); err != nil {
		return err
	}
	if c.Workers <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidWorkers, c.Workers)
	}
	switch strings.ToLower(c.Encoding) {
	case "", "utf-8", "utf8", "latin1", "iso-8859-1":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidEncoding, c.Encoding)
	}
	switch c.Output {
	case "", "text", "json":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidOutput, c.Output)
	}
	return nil
}

// IsLatin1 reports whether word lists must be decoded from ISO-8859-1.
func (c *Config) IsLatin1() bool {
	switch strings.ToLower(c.Encoding) {
	case "latin1", "iso-8859-1":
		return true
	}
	return false
}

// Write stores cfg as yaml at path, or at DefaultPath when path is empty.
func Write(path string, cfg Config) error {
	if path == "" {
		path = DefaultPath
	}

	d, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(d)
	return err
}
