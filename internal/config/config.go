// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/bethropolis/linecore/internal/logger"
)

// Config holds the application's combined configuration.
type Config struct {
	Logger  logger.Config                     `toml:"logger"`
	Editor  EditorConfig                      `toml:"editor"`
	Plugins map[string]map[string]interface{} `toml:"plugins"` // [plugins.<name>] tables
}

// EditorConfig holds editor-specific settings.
type EditorConfig struct {
	// ContinueOnError keeps running a script after a failing command.
	ContinueOnError bool `toml:"continue_on_error"`
	// PrintOnExit writes the document to stdout when a script finishes.
	PrintOnExit bool `toml:"print_on_exit"`
}

// NewDefaultConfig creates a Config struct with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Logger: logger.NewConfig(),
		Editor: EditorConfig{
			ContinueOnError: DefaultContinueOnError,
			PrintOnExit:     DefaultPrintOnExit,
		},
		Plugins: map[string]map[string]interface{}{},
	}
}

// DefaultPath returns the config file location under the user config dir,
// or "" if it cannot be determined.
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(configDir, AppName, DefaultConfigFileName)
}

// loadFromFile decodes a TOML file on top of cfg. A missing file is not an error.
func loadFromFile(filePath string, cfg *Config) error {
	metadata, err := toml.DecodeFile(filePath, cfg)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Debugf("Config file not found: %s", filePath)
			return nil
		}
		return fmt.Errorf("failed to parse config file '%s': %w", filePath, err)
	}
	if undecoded := metadata.Undecoded(); len(undecoded) > 0 {
		logger.Warnf("Config file '%s': Unrecognized keys: %v", filePath, undecoded)
	}
	logger.Infof("Loaded configuration from: %s", filePath)
	return nil
}

// validate resets invalid values to defaults.
func (c *Config) validate() {
	defaults := NewDefaultConfig()

	switch strings.ToLower(c.Logger.LogLevel) {
	case "debug", "info", "warn", "warning", "error", "err":
	default:
		c.Logger.LogLevel = defaults.Logger.LogLevel
	}
	if c.Plugins == nil {
		c.Plugins = defaults.Plugins
	}
}

// PluginValue returns one key of a [plugins.<name>] table.
func (c *Config) PluginValue(pluginName, key string) (interface{}, bool) {
	section, ok := c.Plugins[pluginName]
	if !ok {
		return nil, false
	}
	v, ok := section[key]
	return v, ok
}

// SetPluginValue sets one key of a [plugins.<name>] table.
func (c *Config) SetPluginValue(pluginName, key string, value interface{}) {
	if c.Plugins == nil {
		c.Plugins = map[string]map[string]interface{}{}
	}
	if c.Plugins[pluginName] == nil {
		c.Plugins[pluginName] = map[string]interface{}{}
	}
	c.Plugins[pluginName][key] = value
}

// Load builds the configuration: defaults, then the TOML file at
// configFilePath (DefaultPath when empty), then flag overrides.
func Load(configFilePath string, flags *Flags) (*Config, error) {
	cfg := NewDefaultConfig()

	effectivePath := configFilePath
	if effectivePath == "" {
		effectivePath = DefaultPath()
	}
	if effectivePath != "" {
		if err := loadFromFile(effectivePath, cfg); err != nil {
			return nil, err
		}
	}

	if flags != nil {
		flags.ApplyOverrides(cfg)
	}

	cfg.validate()
	return cfg, nil
}
