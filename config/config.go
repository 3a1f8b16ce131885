package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/penwyp/autotap/models"
)

// Config represents the complete application configuration
type Config struct {
	// Application
	App AppConfig `mapstructure:"app" yaml:"app" json:"app"`

	// Click engine
	Clicker ClickerConfig `mapstructure:"clicker" yaml:"clicker" json:"clicker"`

	// User interface
	UI UIConfig `mapstructure:"ui" yaml:"ui" json:"ui"`

	// Debug
	Debug DebugConfig `mapstructure:"debug" yaml:"debug" json:"debug"`
}

// AppConfig contains general application settings
type AppConfig struct {
	Name     string `mapstructure:"name" yaml:"name" json:"name"`
	LogLevel string `mapstructure:"log_level" yaml:"log_level" json:"log_level"`
	LogFile  string `mapstructure:"log_file" yaml:"log_file" json:"log_file"`
}

// ClickerConfig contains click timing and targeting settings
type ClickerConfig struct {
	// Delay is the interval between clicks. Clamped to
	// models.MinClickDelay, never rejected.
	Delay time.Duration `mapstructure:"delay" yaml:"delay" json:"delay"`

	// CPS expresses the rate as clicks per second; when > 0 it
	// overrides Delay.
	CPS float64 `mapstructure:"cps" yaml:"cps" json:"cps"`

	// Button is the mouse button to press: left, right, or middle
	Button string `mapstructure:"button" yaml:"button" json:"button"`
}

// EffectiveDelay resolves Delay and CPS into the interval the click loop
// actually uses
func (c ClickerConfig) EffectiveDelay() time.Duration {
	return models.EffectiveDelay(c.Delay, c.CPS)
}

// MouseButton returns the parsed button, defaulting to left when unset
func (c ClickerConfig) MouseButton() models.MouseButton {
	if c.Button == "" {
		return models.ButtonLeft
	}
	b, err := models.ParseMouseButton(c.Button)
	if err != nil {
		return models.ButtonLeft
	}
	return b
}

// UIConfig contains user interface settings
type UIConfig struct {
	Theme       string        `mapstructure:"theme" yaml:"theme" json:"theme"`
	RefreshRate time.Duration `mapstructure:"refresh_rate" yaml:"refresh_rate" json:"refresh_rate"`
	NoColor     bool          `mapstructure:"no_color" yaml:"no_color" json:"no_color"`
	ShowSpinner bool          `mapstructure:"show_spinner" yaml:"show_spinner" json:"show_spinner"`
	CompactMode bool          `mapstructure:"compact_mode" yaml:"compact_mode" json:"compact_mode"`
}

// DebugConfig contains debugging settings
type DebugConfig struct {
	Enabled bool `mapstructure:"enabled" yaml:"enabled" json:"enabled"`
}

// DefaultConfig returns the configuration used when no source overrides it
func DefaultConfig() *Config {
	return &Config{
		App: AppConfig{
			Name:     "autotap",
			LogLevel: "info",
			LogFile:  "",
		},
		Clicker: ClickerConfig{
			Delay:  models.DefaultClickDelay,
			CPS:    0,
			Button: models.ButtonLeft.String(),
		},
		UI: UIConfig{
			Theme:       "dark",
			RefreshRate: models.DefaultRefreshRate,
			NoColor:     false,
			ShowSpinner: true,
			CompactMode: false,
		},
		Debug: DebugConfig{
			Enabled: false,
		},
	}
}

// ConfigPaths returns the default configuration file search paths
func ConfigPaths() []string {
	paths := []string{".autotap.yaml"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".autotap.yaml"))
	}
	return paths
}
