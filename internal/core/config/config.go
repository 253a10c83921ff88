// Package config handles configuration loading and validation for pitch.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/hay-kot/pitch/internal/core/styles"
	"github.com/hay-kot/pitch/internal/terminal"
)

// Built-in action names for key bindings.
const (
	ActionNext    = "next"
	ActionPrev    = "prev"
	ActionTimer   = "timer"
	ActionSuspend = "suspend"
	ActionQuit    = "quit"
)

// Deck size limits. Two closing slides are always appended, so a deck holds
// between MinBodySlides+2 and MaxBodySlides+2 slides.
const (
	MinBodySlides = 1
	MaxBodySlides = 6
)

// Config holds the application configuration.
type Config struct {
	// Notes is a path or glob pattern for the notes shown on the closing slide.
	Notes        string          `yaml:"notes"`
	NotesHeader  string          `yaml:"notes_header"`
	ClosingTitle string          `yaml:"closing_title"`
	Theme        string          `yaml:"theme"`
	PollInterval time.Duration   `yaml:"poll_interval"`
	Slides       SlidesConfig    `yaml:"slides"`
	Animation    AnimationConfig `yaml:"animation"`
	Timer        TimerConfig     `yaml:"timer"`
	Keys         KeysConfig      `yaml:"keys"`
}

// SlidesConfig controls how many generated slides a deck holds.
type SlidesConfig struct {
	Min      int `yaml:"min"`
	Max      int `yaml:"max"`
	MinLines int `yaml:"min_lines"`
	MaxLines int `yaml:"max_lines"`
	// Seed makes deck generation reproducible. Zero picks a random seed.
	Seed uint64 `yaml:"seed"`
}

// AnimationConfig controls the typewriter reveal.
type AnimationConfig struct {
	CharDelay time.Duration `yaml:"char_delay"`
	ArtDelay  time.Duration `yaml:"art_delay"`
	// AnimateFrom is the zero-based index of the first generated slide that animates.
	AnimateFrom int `yaml:"animate_from"`
}

// TimerConfig controls the elapsed-time readout.
type TimerConfig struct {
	Visible bool `yaml:"visible"`
}

// KeysConfig maps each action to the keys that trigger it.
type KeysConfig struct {
	Next    []string `yaml:"next"`
	Prev    []string `yaml:"prev"`
	Timer   []string `yaml:"timer"`
	Suspend []string `yaml:"suspend"`
	Quit    []string `yaml:"quit"`
}

// Bindings returns the key lists keyed by action name.
func (k KeysConfig) Bindings() map[string][]string {
	return map[string][]string{
		ActionNext:    k.Next,
		ActionPrev:    k.Prev,
		ActionTimer:   k.Timer,
		ActionSuspend: k.Suspend,
		ActionQuit:    k.Quit,
	}
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Notes:        "todo.txt",
		NotesHeader:  "TODO!",
		ClosingTitle: "The end",
		Theme:        styles.DefaultTheme,
		PollInterval: 500 * time.Millisecond,
		Slides: SlidesConfig{
			Min:      3,
			Max:      5,
			MinLines: 2,
			MaxLines: 4,
		},
		Animation: AnimationConfig{
			CharDelay:   8 * time.Millisecond,
			ArtDelay:    time.Millisecond,
			AnimateFrom: 3,
		},
		Timer: TimerConfig{
			Visible: true,
		},
		Keys: DefaultKeys(),
	}
}

// DefaultKeys returns the built-in key bindings.
func DefaultKeys() KeysConfig {
	return KeysConfig{
		Next:    []string{"space", "enter", "n"},
		Prev:    []string{"p"},
		Timer:   []string{"t"},
		Suspend: []string{"ctrl+z"},
		Quit:    []string{"q", "ctrl+c"},
	}
}

// Load reads configuration from the given path.
// If configPath is empty or doesn't exist, returns defaults.
// A relative notes path is resolved against the working directory.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// Save writes the configuration as YAML, creating parent directories.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	return os.WriteFile(path, data, 0o644)
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Notes == "" {
		c.Notes = defaults.Notes
	}
	if c.NotesHeader == "" {
		c.NotesHeader = defaults.NotesHeader
	}
	if c.ClosingTitle == "" {
		c.ClosingTitle = defaults.ClosingTitle
	}
	if c.Theme == "" {
		c.Theme = defaults.Theme
	}
	if c.PollInterval == 0 {
		c.PollInterval = defaults.PollInterval
	}
	if c.Slides.Min == 0 {
		c.Slides.Min = defaults.Slides.Min
	}
	if c.Slides.Max == 0 {
		c.Slides.Max = max(defaults.Slides.Max, c.Slides.Min)
	}
	if c.Slides.MinLines == 0 {
		c.Slides.MinLines = defaults.Slides.MinLines
	}
	if c.Slides.MaxLines == 0 {
		c.Slides.MaxLines = max(defaults.Slides.MaxLines, c.Slides.MinLines)
	}

	keys := defaults.Keys
	if len(c.Keys.Next) == 0 {
		c.Keys.Next = keys.Next
	}
	if len(c.Keys.Prev) == 0 {
		c.Keys.Prev = keys.Prev
	}
	if len(c.Keys.Timer) == 0 {
		c.Keys.Timer = keys.Timer
	}
	if len(c.Keys.Suspend) == 0 {
		c.Keys.Suspend = keys.Suspend
	}
	if len(c.Keys.Quit) == 0 {
		c.Keys.Quit = keys.Quit
	}
}

// Validate checks that the configuration is structurally valid.
// It performs no I/O; see ValidateDeep for checks against the filesystem.
func (c *Config) Validate() error {
	if c.Notes == "" {
		return fmt.Errorf("notes cannot be empty")
	}

	if _, ok := styles.GetPalette(c.Theme); !ok {
		return fmt.Errorf("unknown theme %q (available: %v)", c.Theme, styles.ThemeNames())
	}

	if c.PollInterval < 10*time.Millisecond {
		return fmt.Errorf("poll_interval must be at least 10ms, got %s", c.PollInterval)
	}

	if c.Slides.Min < MinBodySlides || c.Slides.Max > MaxBodySlides {
		return fmt.Errorf("slides.min and slides.max must be within [%d, %d]", MinBodySlides, MaxBodySlides)
	}
	if c.Slides.Min > c.Slides.Max {
		return fmt.Errorf("slides.min (%d) cannot exceed slides.max (%d)", c.Slides.Min, c.Slides.Max)
	}
	if c.Slides.MinLines < 1 || c.Slides.MinLines > c.Slides.MaxLines {
		return fmt.Errorf("slides.min_lines must be at least 1 and at most slides.max_lines")
	}

	if c.Animation.CharDelay < 0 || c.Animation.ArtDelay < 0 {
		return fmt.Errorf("animation delays cannot be negative")
	}
	if c.Animation.AnimateFrom < 0 {
		return fmt.Errorf("animation.animate_from cannot be negative")
	}

	seen := make(map[terminal.Key]string)
	for action, keys := range c.Keys.Bindings() {
		for _, name := range keys {
			key, err := terminal.ParseKey(name)
			if err != nil {
				return fmt.Errorf("keys.%s: %w", action, err)
			}
			if other, ok := seen[key]; ok && other != action {
				return fmt.Errorf("key %q is bound to both %s and %s", name, other, action)
			}
			seen[key] = action
		}
	}

	return nil
}
