// Package config loads optional lantern settings from a YAML file: palette
// overrides for the theme and defaults for dialog behaviour.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/lanternui/lantern/pkg/components"
	"github.com/lanternui/lantern/pkg/overlay"
)

// ErrEmptyConfig indicates the file parsed to nothing usable.
var ErrEmptyConfig = errors.New("config: file is empty")

// ColourOverride replaces one palette slot's base colour per background mode.
type ColourOverride struct {
	Light string `yaml:"light" validate:"omitempty,hexcolor"`
	Dark  string `yaml:"dark" validate:"omitempty,hexcolor"`
}

// ThemeConfig holds palette overrides keyed by semantic slot.
type ThemeConfig struct {
	Primary   *ColourOverride `yaml:"primary"`
	Secondary *ColourOverride `yaml:"secondary"`
	Success   *ColourOverride `yaml:"success"`
	Warning   *ColourOverride `yaml:"warning"`
	Error     *ColourOverride `yaml:"error"`
	Info      *ColourOverride `yaml:"info"`
}

// DialogConfig holds defaults applied to dialogs the application opens.
type DialogConfig struct {
	DismissOnBackdrop *bool  `yaml:"dismiss_on_backdrop"`
	DismissOnEscape   *bool  `yaml:"dismiss_on_escape"`
	Size              string `yaml:"size" validate:"omitempty,oneof=sm md lg xl"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level" validate:"omitempty,oneof=trace debug info warn error"`
	Pretty bool   `yaml:"pretty"`
}

// Config is the root of the YAML document.
type Config struct {
	Theme  ThemeConfig  `yaml:"theme"`
	Dialog DialogConfig `yaml:"dialog"`
	Log    LogConfig    `yaml:"log"`
}

var validate = validator.New()

// Load reads, parses and validates the config file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes and validates raw YAML config bytes.
func Parse(data []byte) (*Config, error) {
	if len(data) == 0 {
		return nil, ErrEmptyConfig
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse: %w", err)
	}
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

// BuildTheme applies the palette overrides on top of the default theme.
func (c *Config) BuildTheme() components.Theme {
	theme := components.DefaultTheme()

	apply := func(set *components.ColourSet, override *ColourOverride) {
		if override == nil {
			return
		}
		if override.Light != "" {
			set.Base.Light = override.Light
		}
		if override.Dark != "" {
			set.Base.Dark = override.Dark
		}
	}

	apply(&theme.Palette.Primary, c.Theme.Primary)
	apply(&theme.Palette.Secondary, c.Theme.Secondary)
	apply(&theme.Palette.Success, c.Theme.Success)
	apply(&theme.Palette.Warning, c.Theme.Warning)
	apply(&theme.Palette.Error, c.Theme.Error)
	apply(&theme.Palette.Info, c.Theme.Info)

	return theme.Normalize()
}

// DismissPolicy resolves the configured dialog dismissal defaults.
func (c *Config) DismissPolicy() overlay.DismissPolicy {
	policy := overlay.DefaultDismissPolicy()
	if c.Dialog.DismissOnBackdrop != nil {
		policy.OnBackdrop = *c.Dialog.DismissOnBackdrop
	}
	if c.Dialog.DismissOnEscape != nil {
		policy.OnEscape = *c.Dialog.DismissOnEscape
	}
	return policy
}

// DialogSize resolves the configured default dialog size.
func (c *Config) DialogSize() overlay.Size {
	switch c.Dialog.Size {
	case "sm":
		return overlay.SizeSmall
	case "lg":
		return overlay.SizeLarge
	case "xl":
		return overlay.SizeExtraLarge
	default:
		return overlay.SizeMedium
	}
}
