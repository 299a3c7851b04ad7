package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	tkerrors "github.com/msto63/textkit/foundation/core/errors"
	tklog "github.com/msto63/textkit/foundation/core/log"
	"github.com/msto63/textkit/foundation/utils/textx"
)

// Environment variables read by the config layer
const (
	EnvConfigPath = "TEXTKIT_CONFIG"
	EnvLogLevel   = "TEXTKIT_LOG_LEVEL"
	EnvLogFormat  = "TEXTKIT_LOG_FORMAT"
	EnvSeparator  = "TEXTKIT_SEPARATOR"
)

// Trim modes for the trim command
const (
	TrimUnicode = "unicode"
	TrimASCII   = "ascii"
)

// Config holds the complete textkit configuration
type Config struct {
	General GeneralConfig `toml:"general" yaml:"general"`
	Log     LogConfig     `toml:"log" yaml:"log"`
	Text    TextConfig    `toml:"text" yaml:"text"`

	// path the config was loaded from, empty for defaults
	source string
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	Name        string `toml:"name" yaml:"name"`
	Environment string `toml:"environment" yaml:"environment"`
}

// LogConfig holds diagnostic logging settings
type LogConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"`
}

// TextConfig holds defaults for the text commands
type TextConfig struct {
	// Separator is used by join and split when --sep is not given
	Separator string `toml:"separator" yaml:"separator"`
	// Trim selects unicode or ascii white space for the trim command
	Trim string `toml:"trim" yaml:"trim"`
	// Normalization is the form compare --norm uses by default
	Normalization string `toml:"normalization" yaml:"normalization"`
}

// DefaultSeparator is used by join and split when nothing else is set
const DefaultSeparator = ", "

// Default returns a configuration with every default applied
func Default() *Config {
	cfg := &Config{Text: TextConfig{Separator: DefaultSeparator}}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML or YAML file, chosen by extension.
// Defaults fill missing values and environment overrides are applied last.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, tkerrors.ConfigNotFound(path)
		}
		return nil, tkerrors.OperationFailed(tkerrors.ModuleConfig, "load", err)
	}

	// decode over the defaults so keys absent from the file keep them
	cfg := Default()
	switch format := formatOf(path); format {
	case "yaml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, tkerrors.ConfigParseError(path, format, err)
		}
	default:
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, tkerrors.ConfigParseError(path, format, err)
		}
	}

	cfg.source = path
	cfg.applyDefaults()
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromEnv loads the file named by TEXTKIT_CONFIG, falling back to the
// default locations. When no file exists the defaults are returned, with
// environment overrides applied.
func LoadFromEnv() (*Config, error) {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return Load(path)
	}

	for _, p := range DefaultPaths() {
		if _, err := os.Stat(p); err == nil {
			return Load(p)
		}
	}

	cfg := Default()
	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultPaths lists the locations LoadFromEnv searches, in order
func DefaultPaths() []string {
	paths := []string{
		"./textkit.toml",
		"./textkit.yaml",
		"./configs/textkit.toml",
	}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths,
			filepath.Join(dir, "textkit", "config.toml"),
			filepath.Join(dir, "textkit", "config.yaml"),
		)
	}
	return paths
}

func formatOf(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	default:
		return "toml"
	}
}

// Source returns the file the configuration was loaded from
func (c *Config) Source() string {
	return c.source
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.General.Name == "" {
		c.General.Name = "textkit"
	}
	if c.General.Environment == "" {
		c.General.Environment = "development"
	}

	if c.Log.Level == "" {
		c.Log.Level = tklog.DefaultLevel().String()
	}
	if c.Log.Format == "" {
		c.Log.Format = tklog.FormatText.String()
	}

	// Separator is left alone: an empty separator is a valid setting
	if c.Text.Trim == "" {
		c.Text.Trim = TrimUnicode
	}
	if c.Text.Normalization == "" {
		c.Text.Normalization = textx.NFC.String()
	}
}

// applyEnv overrides values from TEXTKIT_* environment variables
func (c *Config) applyEnv() {
	if v, ok := os.LookupEnv(EnvLogLevel); ok && v != "" {
		c.Log.Level = v
	}
	if v, ok := os.LookupEnv(EnvLogFormat); ok && v != "" {
		c.Log.Format = v
	}
	if v, ok := os.LookupEnv(EnvSeparator); ok {
		c.Text.Separator = v
	}
}

// Validate checks every enumerated setting
func (c *Config) Validate() error {
	if _, err := tklog.ParseLevel(c.Log.Level); err != nil {
		return tkerrors.ConfigInvalid("log.level", c.Log.Level, "trace|debug|info|warn|error|fatal")
	}
	if _, err := tklog.ParseFormat(c.Log.Format); err != nil {
		return tkerrors.ConfigInvalid("log.format", c.Log.Format, "json|text|console|logfmt")
	}
	if c.Text.Trim != TrimUnicode && c.Text.Trim != TrimASCII {
		return tkerrors.ConfigInvalid("text.trim", c.Text.Trim, TrimUnicode+"|"+TrimASCII)
	}
	if _, err := textx.ParseNormForm(c.Text.Normalization); err != nil {
		return tkerrors.ConfigInvalid("text.normalization", c.Text.Normalization, "NFC|NFD|NFKC|NFKD")
	}
	if _, err := textx.FromLiteral(c.Text.Separator); err != nil {
		return tkerrors.ConfigInvalid("text.separator", c.Text.Separator, "valid UTF-8")
	}
	return nil
}

// LogLevel returns the parsed log level
func (c *Config) LogLevel() tklog.Level {
	level, _ := tklog.ParseLevel(c.Log.Level)
	return level
}

// LogFormat returns the parsed log format
func (c *Config) LogFormat() tklog.Format {
	format, _ := tklog.ParseFormat(c.Log.Format)
	return format
}

// NormForm returns the parsed default normalization form
func (c *Config) NormForm() textx.NormForm {
	form, _ := textx.ParseNormForm(c.Text.Normalization)
	return form
}

// Separator returns the default separator as a view
func (c *Config) Separator() textx.View {
	return textx.MustLiteral(c.Text.Separator)
}
