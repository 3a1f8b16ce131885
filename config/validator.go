package config

import (
	"fmt"
	"strings"

	"github.com/penwyp/autotap/models"
)

// StandardValidator provides standard configuration validation. It also
// normalizes the few values that are clamped rather than rejected.
type StandardValidator struct{}

// NewStandardValidator creates a new standard validator
func NewStandardValidator() *StandardValidator {
	return &StandardValidator{}
}

// Validate validates the entire configuration
func (v *StandardValidator) Validate(cfg *Config) error {
	var errors []string

	if err := v.validateApp(&cfg.App); err != nil {
		errors = append(errors, fmt.Sprintf("app: %v", err))
	}
	if err := v.validateClicker(&cfg.Clicker); err != nil {
		errors = append(errors, fmt.Sprintf("clicker: %v", err))
	}
	if err := v.validateUI(&cfg.UI); err != nil {
		errors = append(errors, fmt.Sprintf("ui: %v", err))
	}

	if len(errors) > 0 {
		return fmt.Errorf("validation errors: %s", strings.Join(errors, "; "))
	}

	return nil
}

// validateApp validates application configuration
func (v *StandardValidator) validateApp(app *AppConfig) error {
	switch strings.ToLower(app.LogLevel) {
	case "", "debug", "info", "warn", "warning", "error":
		return nil
	}
	return fmt.Errorf("invalid log level: %s (valid options: debug, info, warn, error)", app.LogLevel)
}

// validateClicker validates and normalizes click engine configuration
func (v *StandardValidator) validateClicker(c *ClickerConfig) error {
	if c.CPS < 0 {
		return fmt.Errorf("cps must not be negative: %g", c.CPS)
	}

	if c.Button != "" {
		if _, err := models.ParseMouseButton(c.Button); err != nil {
			return err
		}
	}

	// A zero or sub-millisecond delay is clamped, never rejected
	if c.Delay < models.MinClickDelay {
		c.Delay = models.MinClickDelay
	}

	return nil
}

// validateUI validates and normalizes user interface configuration
func (v *StandardValidator) validateUI(ui *UIConfig) error {
	switch strings.ToLower(ui.Theme) {
	case "", "dark", "light":
	default:
		return fmt.Errorf("invalid theme: %s (valid options: dark, light)", ui.Theme)
	}

	if rate := clampRefreshRate(ui.RefreshRate); rate != 0 {
		ui.RefreshRate = rate
	} else {
		ui.RefreshRate = models.DefaultRefreshRate
	}

	return nil
}
