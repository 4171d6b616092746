package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned by Validate for out-of-range values.
var ErrInvalidConfig = errors.New("invalid configuration")

// configFileName is the name of the config file inside the config directory.
const configFileName = "config.yaml"

// Config is the vgrid configuration file.
type Config struct {
	Version string        `yaml:"version" json:"version"`
	Grid    GridConfig    `yaml:"grid" json:"grid"`
	Browse  BrowseConfig  `yaml:"browse" json:"browse"`
	Logging LoggingConfig `yaml:"logging" json:"logging"`

	configPath string
}

// GridConfig holds the sizing of grid cards, in terminal cells.
type GridConfig struct {
	ItemMaxWidth   int `yaml:"item_max_width" json:"item_max_width"`
	Gap            int `yaml:"gap" json:"gap"`
	EstimateHeight int `yaml:"estimate_height" json:"estimate_height"`
	MinItemHeight  int `yaml:"min_item_height" json:"min_item_height"`
	ScrollStep     int `yaml:"scroll_step" json:"scroll_step"`
}

// BrowseConfig controls how directory entries are turned into cards.
type BrowseConfig struct {
	PreviewLines int  `yaml:"preview_lines" json:"preview_lines"`
	Markdown     bool `yaml:"markdown" json:"markdown"`
	Concurrency  int  `yaml:"concurrency" json:"concurrency"`
	ShowHidden   bool `yaml:"show_hidden" json:"show_hidden"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level      string `yaml:"level" json:"level"`
	Format     string `yaml:"format" json:"format"`
	File       string `yaml:"file" json:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb" json:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups" json:"max_backups"`
}

// Default returns a configuration populated with default values.
func Default() *Config {
	return &Config{
		Version: CurrentVersion,
		Grid: GridConfig{
			ItemMaxWidth:   32,
			Gap:            1,
			EstimateHeight: 6,
			MinItemHeight:  3,
			ScrollStep:     1,
		},
		Browse: BrowseConfig{
			PreviewLines: 8,
			Markdown:     true,
			Concurrency:  8,
		},
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "console",
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
	}
}

// New returns the default configuration overlaid with the config file (when
// present) and environment overrides. A config file that cannot be loaded is
// reported on the logger and ignored.
func New() *Config {
	cfg := Default()

	path, err := DefaultConfigPath()
	if err != nil {
		Logger.Warn().Err(err).Msg("cannot resolve config path, using defaults")
		cfg.applyEnv()
		return cfg
	}
	cfg.configPath = path

	if _, statErr := os.Stat(path); statErr == nil {
		if loadErr := cfg.loadFile(path); loadErr != nil {
			Logger.Warn().Err(loadErr).Str("path", path).Msg("ignoring unreadable config file")
			cfg = Default()
			cfg.configPath = path
		}
	}

	cfg.applyEnv()
	return cfg
}

// Load reads the config file at path on top of the defaults, applies
// environment overrides and validates the result.
func Load(path string) (*Config, error) {
	cfg := Default()
	cfg.configPath = path
	if err := cfg.loadFile(path); err != nil {
		return nil, err
	}
	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file %s: %w", path, err)
	}
	if err = yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return nil
}

// applyEnv applies VGRID_* environment overrides.
func (c *Config) applyEnv() {
	if level := os.Getenv("VGRID_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
	if format := os.Getenv("VGRID_LOG_FORMAT"); format != "" {
		c.Logging.Format = format
	}
	if width := os.Getenv("VGRID_ITEM_MAX_WIDTH"); width != "" {
		if v, err := strconv.Atoi(width); err == nil {
			c.Grid.ItemMaxWidth = v
		}
	}
}

// Validate checks value ranges and the schema version.
func (c *Config) Validate() error {
	if err := CheckVersion(c.Version); err != nil {
		return err
	}
	switch {
	case c.Grid.ItemMaxWidth < 1:
		return fmt.Errorf("%w: grid.item_max_width must be >= 1, got %d", ErrInvalidConfig, c.Grid.ItemMaxWidth)
	case c.Grid.Gap < 0:
		return fmt.Errorf("%w: grid.gap must be >= 0, got %d", ErrInvalidConfig, c.Grid.Gap)
	case c.Grid.EstimateHeight < 1:
		return fmt.Errorf("%w: grid.estimate_height must be >= 1, got %d", ErrInvalidConfig, c.Grid.EstimateHeight)
	case c.Grid.MinItemHeight < 0:
		return fmt.Errorf("%w: grid.min_item_height must be >= 0, got %d", ErrInvalidConfig, c.Grid.MinItemHeight)
	case c.Grid.ScrollStep < 1:
		return fmt.Errorf("%w: grid.scroll_step must be >= 1, got %d", ErrInvalidConfig, c.Grid.ScrollStep)
	case c.Browse.PreviewLines < 0:
		return fmt.Errorf("%w: browse.preview_lines must be >= 0, got %d", ErrInvalidConfig, c.Browse.PreviewLines)
	case c.Browse.Concurrency < 1:
		return fmt.Errorf("%w: browse.concurrency must be >= 1, got %d", ErrInvalidConfig, c.Browse.Concurrency)
	}
	return nil
}

// ConfigPath returns the file this configuration was loaded from or will be
// saved to.
func (c *Config) ConfigPath() string {
	return c.configPath
}

// SetConfigPath changes the file used by Save.
func (c *Config) SetConfigPath(path string) {
	c.configPath = path
}

// Save writes the configuration as YAML to ConfigPath, creating parent
// directories as needed.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.New("no config path set")
	}
	if err := os.MkdirAll(filepath.Dir(c.configPath), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err = os.WriteFile(c.configPath, data, 0o600); err != nil {
		return fmt.Errorf("writing config file %s: %w", c.configPath, err)
	}
	return nil
}

// DefaultConfigPath returns the path of the global config file.
func DefaultConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}
