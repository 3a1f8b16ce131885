package config

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/penwyp/autotap/models"
)

// Source represents a configuration source
type Source interface {
	Name() string
	Load() (*Config, error)
	Priority() int
}

// Validator validates configuration
type Validator interface {
	Validate(cfg *Config) error
}

// Loader loads configuration from layered sources. Later (higher
// priority number) sources override earlier ones field by field.
type Loader struct {
	sources    []Source
	validators []Validator
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{
		sources:    make([]Source, 0),
		validators: make([]Validator, 0),
	}
}

// AddSource adds a configuration source
func (l *Loader) AddSource(source Source) {
	l.sources = append(l.sources, source)
}

// AddValidator adds a configuration validator
func (l *Loader) AddValidator(validator Validator) {
	l.validators = append(l.validators, validator)
}

// LoadWithDefaults loads configuration with defaults as the base layer
func (l *Loader) LoadWithDefaults() (*Config, error) {
	sort.SliceStable(l.sources, func(i, j int) bool {
		return l.sources[i].Priority() < l.sources[j].Priority()
	})

	config := DefaultConfig()
	for _, source := range l.sources {
		cfg, err := source.Load()
		if err != nil {
			// Missing or unreadable sources are skipped; the
			// remaining layers still apply
			continue
		}
		config = merge(config, cfg)
	}

	for _, validator := range l.validators {
		if err := validator.Validate(config); err != nil {
			return nil, fmt.Errorf("configuration validation failed: %w", err)
		}
	}

	return config, nil
}

// merge overlays set fields of override onto base
func merge(base, override *Config) *Config {
	result := *base

	if override.App.Name != "" {
		result.App.Name = override.App.Name
	}
	if override.App.LogLevel != "" {
		result.App.LogLevel = override.App.LogLevel
	}
	if override.App.LogFile != "" {
		result.App.LogFile = override.App.LogFile
	}

	if override.Clicker.Delay != 0 {
		result.Clicker.Delay = override.Clicker.Delay
	}
	if override.Clicker.CPS != 0 {
		result.Clicker.CPS = override.Clicker.CPS
	}
	if override.Clicker.Button != "" {
		result.Clicker.Button = override.Clicker.Button
	}

	if override.UI.Theme != "" {
		result.UI.Theme = override.UI.Theme
	}
	if override.UI.RefreshRate != 0 {
		result.UI.RefreshRate = override.UI.RefreshRate
	}
	if override.UI.NoColor {
		result.UI.NoColor = true
	}
	if override.UI.CompactMode {
		result.UI.CompactMode = true
	}

	if override.Debug.Enabled {
		result.Debug.Enabled = true
	}

	return &result
}

// FileSource loads configuration from a YAML file
type FileSource struct {
	path string
}

// NewFileSource creates a new file configuration source
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Name returns the source name
func (f *FileSource) Name() string {
	return fmt.Sprintf("file:%s", f.path)
}

// Priority returns the source priority (lower loads first)
func (f *FileSource) Priority() int {
	return 100
}

// Load loads configuration from the file
func (f *FileSource) Load() (*Config, error) {
	expandedPath := os.ExpandEnv(f.path)

	if _, err := os.Stat(expandedPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("configuration file not found: %s", expandedPath)
	}

	v := viper.New()
	v.SetConfigFile(expandedPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", expandedPath, err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config from %s: %w", expandedPath, err)
	}

	return &config, nil
}

// EnvSource loads configuration from environment variables
type EnvSource struct {
	prefix string
}

// NewEnvSource creates a new environment variable configuration source
func NewEnvSource(prefix string) *EnvSource {
	return &EnvSource{prefix: prefix}
}

// Name returns the source name
func (e *EnvSource) Name() string {
	return fmt.Sprintf("env:%s", e.prefix)
}

// Priority returns the source priority (lower loads first)
func (e *EnvSource) Priority() int {
	return 200
}

// Load loads configuration from environment variables
func (e *EnvSource) Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(e.prefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	// Keys must be registered before AutomaticEnv can see them
	v.SetDefault("app.name", "")
	v.SetDefault("app.log_level", "")
	v.SetDefault("app.log_file", "")
	v.SetDefault("clicker.delay", time.Duration(0))
	v.SetDefault("clicker.cps", float64(0))
	v.SetDefault("clicker.button", "")
	v.SetDefault("ui.theme", "")
	v.SetDefault("ui.refresh_rate", time.Duration(0))
	v.SetDefault("ui.no_color", false)
	v.SetDefault("ui.compact_mode", false)
	v.SetDefault("debug.enabled", false)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config from environment: %w", err)
	}

	return &config, nil
}

// FlagSource loads configuration overrides from command line flags
type FlagSource struct {
	flags *pflag.FlagSet
}

// NewFlagSource creates a new flag configuration source
func NewFlagSource(flags *pflag.FlagSet) *FlagSource {
	return &FlagSource{flags: flags}
}

// Name returns the source name
func (f *FlagSource) Name() string {
	return "flags"
}

// Priority returns the source priority (flags win over file and env)
func (f *FlagSource) Priority() int {
	return 300
}

// Load extracts configuration from changed flags only
func (f *FlagSource) Load() (*Config, error) {
	var config Config

	if f.flags == nil {
		return &config, nil
	}

	// The delay flag is expressed in seconds
	if f.flags.Changed("delay") {
		if secs, err := f.flags.GetFloat64("delay"); err == nil {
			d := time.Duration(secs * float64(time.Second))
			// Clamp here rather than in the validator: an explicit
			// sub-floor value must survive the merge, and merge treats
			// a zero duration as "not set"
			if d < models.MinClickDelay {
				d = models.MinClickDelay
			}
			config.Clicker.Delay = d
		}
	}
	if f.flags.Changed("cps") {
		if cps, err := f.flags.GetFloat64("cps"); err == nil {
			config.Clicker.CPS = cps
		}
	}
	if f.flags.Changed("button") {
		if b, err := f.flags.GetString("button"); err == nil {
			config.Clicker.Button = b
		}
	}
	if f.flags.Changed("log-level") {
		if lvl, err := f.flags.GetString("log-level"); err == nil {
			config.App.LogLevel = lvl
		}
	}
	if f.flags.Changed("log-file") {
		if path, err := f.flags.GetString("log-file"); err == nil {
			config.App.LogFile = path
		}
	}
	if f.flags.Changed("no-color") {
		if v, err := f.flags.GetBool("no-color"); err == nil {
			config.UI.NoColor = v
		}
	}

	return &config, nil
}

// clampRefreshRate keeps the dashboard redraw interval sane
func clampRefreshRate(rate time.Duration) time.Duration {
	switch {
	case rate <= 0:
		return 0
	case rate < 50*time.Millisecond:
		return 50 * time.Millisecond
	case rate > 5*time.Second:
		return 5 * time.Second
	}
	return rate
}
