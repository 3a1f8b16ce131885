package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/penwyp/autotap/models"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.NotNil(t, cfg)
	assert.Equal(t, "autotap", cfg.App.Name)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, models.DefaultClickDelay, cfg.Clicker.Delay)
	assert.Equal(t, float64(0), cfg.Clicker.CPS)
	assert.Equal(t, "left", cfg.Clicker.Button)
	assert.Equal(t, models.DefaultRefreshRate, cfg.UI.RefreshRate)
}

func TestClickerConfig_EffectiveDelay(t *testing.T) {
	c := ClickerConfig{Delay: 100 * time.Millisecond}
	assert.Equal(t, 100*time.Millisecond, c.EffectiveDelay())

	// CPS overrides delay
	c = ClickerConfig{Delay: 100 * time.Millisecond, CPS: 50}
	assert.Equal(t, 20*time.Millisecond, c.EffectiveDelay())

	// sub-millisecond results clamp to the floor
	c = ClickerConfig{CPS: 100000}
	assert.Equal(t, models.MinClickDelay, c.EffectiveDelay())
}

func TestClickerConfig_MouseButton(t *testing.T) {
	assert.Equal(t, models.ButtonRight, ClickerConfig{Button: "right"}.MouseButton())
	assert.Equal(t, models.ButtonLeft, ClickerConfig{}.MouseButton())
	assert.Equal(t, models.ButtonLeft, ClickerConfig{Button: "bogus"}.MouseButton())
}

func TestLoader_LoadWithDefaults_NoSources(t *testing.T) {
	loader := NewLoader()
	loader.AddValidator(NewStandardValidator())

	cfg, err := loader.LoadWithDefaults()

	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Clicker, cfg.Clicker)
}

func TestLoader_FileSource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "autotap.yaml")
	content := `
clicker:
  delay: 25ms
  button: middle
ui:
  theme: light
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	loader := NewLoader()
	loader.AddSource(NewFileSource(path))
	loader.AddValidator(NewStandardValidator())

	cfg, err := loader.LoadWithDefaults()

	require.NoError(t, err)
	assert.Equal(t, 25*time.Millisecond, cfg.Clicker.Delay)
	assert.Equal(t, "middle", cfg.Clicker.Button)
	assert.Equal(t, "light", cfg.UI.Theme)
	// untouched fields keep their defaults
	assert.Equal(t, "info", cfg.App.LogLevel)
}

func TestLoader_MissingFileSkipped(t *testing.T) {
	loader := NewLoader()
	loader.AddSource(NewFileSource(filepath.Join(t.TempDir(), "missing.yaml")))
	loader.AddValidator(NewStandardValidator())

	cfg, err := loader.LoadWithDefaults()

	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Clicker.Delay, cfg.Clicker.Delay)
}

func TestLoader_FlagSourceOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "autotap.yaml")
	require.NoError(t, os.WriteFile(path, []byte("clicker:\n  delay: 40ms\n"), 0644))

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Float64P("delay", "d", 0.1, "")
	flags.Float64P("cps", "c", 0, "")
	flags.StringP("button", "b", "left", "")
	flags.String("log-level", "info", "")
	flags.String("log-file", "", "")
	flags.Bool("no-color", false, "")
	require.NoError(t, flags.Parse([]string{"--delay", "0.005", "--button", "right"}))

	loader := NewLoader()
	loader.AddSource(NewFileSource(path))
	loader.AddSource(NewFlagSource(flags))
	loader.AddValidator(NewStandardValidator())

	cfg, err := loader.LoadWithDefaults()

	require.NoError(t, err)
	assert.Equal(t, 5*time.Millisecond, cfg.Clicker.Delay)
	assert.Equal(t, "right", cfg.Clicker.Button)
}

func TestLoader_ExplicitDelayBelowFloorClamps(t *testing.T) {
	tests := []struct {
		name string
		arg  string
	}{
		{name: "zero", arg: "--delay=0"},
		{name: "sub-millisecond", arg: "--delay=0.0004"},
		{name: "negative", arg: "--delay=-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
			flags.Float64P("delay", "d", 0.1, "")
			flags.Float64P("cps", "c", 0, "")
			flags.StringP("button", "b", "left", "")
			flags.String("log-level", "info", "")
			flags.String("log-file", "", "")
			flags.Bool("no-color", false, "")
			require.NoError(t, flags.Parse([]string{tt.arg}))

			loader := NewLoader()
			loader.AddSource(NewFlagSource(flags))
			loader.AddValidator(NewStandardValidator())

			cfg, err := loader.LoadWithDefaults()

			require.NoError(t, err)
			assert.Equal(t, models.MinClickDelay, cfg.Clicker.Delay)
			assert.Equal(t, models.MinClickDelay, cfg.Clicker.EffectiveDelay())
		})
	}
}

func TestLoader_UnchangedFlagsDoNotOverride(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Float64P("delay", "d", 0.1, "")
	flags.Float64P("cps", "c", 0, "")
	flags.StringP("button", "b", "left", "")
	flags.String("log-level", "info", "")
	flags.String("log-file", "", "")
	flags.Bool("no-color", false, "")
	require.NoError(t, flags.Parse(nil))

	loader := NewLoader()
	loader.AddSource(NewFlagSource(flags))
	loader.AddValidator(NewStandardValidator())

	cfg, err := loader.LoadWithDefaults()

	require.NoError(t, err)
	assert.Equal(t, models.DefaultClickDelay, cfg.Clicker.Delay)
	assert.Equal(t, "left", cfg.Clicker.Button)
}
