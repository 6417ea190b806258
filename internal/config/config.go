// internal/config/config.go
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/bethropolis/spacer/internal/logger"
	"github.com/bethropolis/spacer/internal/spacing"
)

// Config holds the application's combined configuration.
type Config struct {
	Logger  logger.Config `toml:"logger" yaml:"logger"`   // [logger] table
	Spacing SpacingConfig `toml:"spacing" yaml:"spacing"` // [spacing] table
}

// SpacingConfig holds the knobs that become a spacing.RuleSet.
type SpacingConfig struct {
	AggressiveSpacing bool             `toml:"aggressive_spacing" yaml:"aggressive_spacing"`
	PreserveTabs      bool             `toml:"preserve_tabs" yaml:"preserve_tabs"`
	PreserveIndent    bool             `toml:"preserve_indent" yaml:"preserve_indent"`
	MaxOperationSize  int              `toml:"max_operation_size" yaml:"max_operation_size"`
	TimeoutMS         int              `toml:"timeout_ms" yaml:"timeout_ms"` // 0 disables the deadline
	Punctuation       PunctuationRules `toml:"punctuation_rules" yaml:"punctuation_rules"`
}

// PunctuationRules lists the characters of each rule as a plain string,
// e.g. no_space_before = ",.;:!?".
type PunctuationRules struct {
	NoSpaceAfter      string `toml:"no_space_after" yaml:"no_space_after"`
	NoSpaceBefore     string `toml:"no_space_before" yaml:"no_space_before"`
	AlwaysSpaceAfter  string `toml:"always_space_after" yaml:"always_space_after"`
	AlwaysSpaceBefore string `toml:"always_space_before" yaml:"always_space_before"`
}

// NewDefaultConfig creates a Config struct with default values.
func NewDefaultConfig() *Config {
	rules := spacing.DefaultRuleSet()
	return &Config{
		Logger: logger.Config{
			LogLevel:    DefaultLogLevel,
			LogFilePath: "", // Empty means stderr
		},
		Spacing: SpacingConfig{
			AggressiveSpacing: rules.AggressiveSpacing,
			PreserveTabs:      rules.PreserveTabs,
			PreserveIndent:    rules.PreserveIndent,
			MaxOperationSize:  rules.MaxOperationSize,
			TimeoutMS:         int(rules.Timeout / time.Millisecond),
			Punctuation: PunctuationRules{
				NoSpaceAfter:      spacing.DefaultNoSpaceAfter,
				NoSpaceBefore:     spacing.DefaultNoSpaceBefore,
				AlwaysSpaceAfter:  spacing.DefaultAlwaysSpaceAfter,
				AlwaysSpaceBefore: spacing.DefaultAlwaysSpaceBefore,
			},
		},
	}
}

// RuleSet builds the immutable rule set handed to the engine.
func (c *Config) RuleSet() spacing.RuleSet {
	return spacing.RuleSet{
		AggressiveSpacing: c.Spacing.AggressiveSpacing,
		PreserveTabs:      c.Spacing.PreserveTabs,
		PreserveIndent:    c.Spacing.PreserveIndent,
		NoSpaceAfter:      spacing.NewRuneSet(c.Spacing.Punctuation.NoSpaceAfter),
		NoSpaceBefore:     spacing.NewRuneSet(c.Spacing.Punctuation.NoSpaceBefore),
		AlwaysSpaceAfter:  spacing.NewRuneSet(c.Spacing.Punctuation.AlwaysSpaceAfter),
		AlwaysSpaceBefore: spacing.NewRuneSet(c.Spacing.Punctuation.AlwaysSpaceBefore),
		MaxOperationSize:  c.Spacing.MaxOperationSize,
		Timeout:           time.Duration(c.Spacing.TimeoutMS) * time.Millisecond,
	}
}

// isYAML reports whether path should be decoded as YAML rather than TOML.
func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// loadFromFile decodes the file at filePath over cfg. Keys missing from the
// file keep whatever cfg already holds.
func loadFromFile(filePath string, cfg *Config) error {
	if isYAML(filePath) {
		data, err := os.ReadFile(filePath)
		if err != nil {
			return fmt.Errorf("failed to read config file '%s': %w", filePath, err)
		}
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("failed to parse config file '%s': %w", filePath, err)
		}
		return nil
	}

	metadata, err := toml.DecodeFile(filePath, cfg)
	if err != nil {
		return fmt.Errorf("failed to parse config file '%s': %w", filePath, err)
	}
	if undecoded := metadata.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("config file '%s': unrecognized keys: %v", filePath, undecoded)
	}
	return nil
}

// defaultConfigPath returns the first existing config file in the user
// config directory, or "" when there is none.
func defaultConfigPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	for _, name := range []string{DefaultConfigFileName, DefaultYAMLConfigFileName} {
		path := filepath.Join(configDir, ConfigDirName, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// validate checks config values and resets invalid ones to defaults.
func (c *Config) validate() {
	defaults := NewDefaultConfig()

	if _, ok := logger.ParseLevel(c.Logger.LogLevel); !ok || c.Logger.LogLevel == "" {
		c.Logger.LogLevel = defaults.Logger.LogLevel
	}
	if c.Spacing.MaxOperationSize <= 0 {
		c.Spacing.MaxOperationSize = defaults.Spacing.MaxOperationSize
	}
	if c.Spacing.TimeoutMS < 0 {
		c.Spacing.TimeoutMS = defaults.Spacing.TimeoutMS
	}
}

// LoadConfig layers, in order: defaults, the config file, the .env file and
// SPACER_* environment variables, then flags that were set on the command
// line. The result is validated before it is returned.
//
// An empty configFilePath means the default location, which may be absent.
// An explicit path must exist.
func LoadConfig(configFilePath string, flags *Flags) (*Config, error) {
	envFile := DefaultEnvFileName
	if flags != nil && flags.EnvFile != nil {
		envFile = *flags.EnvFile
	}
	return load(configFilePath, envFile, os.Environ(), flags)
}

func load(configFilePath, envFile string, environ []string, flags *Flags) (*Config, error) {
	cfg := NewDefaultConfig()

	path := configFilePath
	if path == "" {
		path = defaultConfigPath()
	} else if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("error checking config file '%s': %w", path, err)
	}
	if path != "" {
		if err := loadFromFile(path, cfg); err != nil {
			return nil, err
		}
	}

	vars, err := readEnv(envFile, environ)
	if err != nil {
		return nil, err
	}
	if err := cfg.applyEnv(vars); err != nil {
		return nil, err
	}

	if flags != nil {
		flags.ApplyOverrides(cfg)
	}

	cfg.validate()
	return cfg, nil
}
