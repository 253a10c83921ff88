// Package initcmd implements the interactive first-run setup.
package initcmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/hay-kot/pitch/internal/core/config"
	"github.com/hay-kot/pitch/internal/core/styles"
	"github.com/hay-kot/pitch/internal/printer"
)

// StarterNotes is written to a new notes file.
const StarterNotes = `Circle back on the synergy roadmap
Align stakeholders on the north star
Take the hallway conversation offline
`

// WizardOptions configures the wizard behavior.
type WizardOptions struct {
	ConfigPath string
	Yes        bool // skip prompts, use defaults
	Force      bool // overwrite existing config
}

// Answers holds the values collected by the wizard.
type Answers struct {
	Notes        string
	Theme        string
	Slides       string
	TimerVisible bool
}

// Wizard orchestrates the init process.
type Wizard struct {
	opts WizardOptions
	// prompt collects answers; replaced in tests.
	prompt func(*Answers) error
}

// NewWizard creates a new init wizard.
func NewWizard(opts WizardOptions) *Wizard {
	return &Wizard{opts: opts, prompt: promptUser}
}

// DefaultAnswers mirrors the built-in configuration.
func DefaultAnswers() Answers {
	cfg := config.DefaultConfig()
	return Answers{
		Notes:        cfg.Notes,
		Theme:        cfg.Theme,
		Slides:       fmt.Sprintf("%d-%d", cfg.Slides.Min, cfg.Slides.Max),
		TimerVisible: cfg.Timer.Visible,
	}
}

// Run executes the wizard.
func (w *Wizard) Run(ctx context.Context) error {
	p := printer.Ctx(ctx)

	if FileExists(w.opts.ConfigPath) && !w.opts.Force {
		if w.opts.Yes {
			return fmt.Errorf("config exists at %s; use --force to overwrite", w.opts.ConfigPath)
		}

		var overwrite bool
		err := huh.NewConfirm().
			Title("Config file already exists").
			Description(w.opts.ConfigPath + "\nOverwrite? (a backup will be created)").
			Value(&overwrite).
			Run()
		if err != nil {
			return err
		}
		if !overwrite {
			p.Infof("Init cancelled")
			return nil
		}
	}

	answers := DefaultAnswers()
	if !w.opts.Yes {
		if err := w.prompt(&answers); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				p.Infof("Init cancelled")
				return nil
			}
			return err
		}
	}

	cfg, err := answers.Config()
	if err != nil {
		return err
	}

	if backupPath, err := BackupFile(w.opts.ConfigPath); err != nil {
		return fmt.Errorf("backup config: %w", err)
	} else if backupPath != "" {
		p.Successf("Backed up config to: %s", backupPath)
	}

	if err := config.Save(w.opts.ConfigPath, cfg); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	p.Successf("Created config: %s", w.opts.ConfigPath)

	created, err := EnsureNotes(cfg.Notes)
	if err != nil {
		p.Warnf("Could not create notes file: %v", err)
	} else if created {
		p.Successf("Created notes: %s", cfg.Notes)
	}

	p.Printf("")
	p.Section("Next Steps")
	p.Printf("  1. Edit %s with the items for your closing slide", cfg.Notes)
	p.Printf("  2. Run 'pitch' to start presenting")
	return nil
}

// Config converts the answers into a validated configuration.
func (a Answers) Config() (*config.Config, error) {
	cfg := config.DefaultConfig()
	cfg.Notes = strings.TrimSpace(a.Notes)
	cfg.Theme = a.Theme
	cfg.Timer.Visible = a.TimerVisible

	lo, hi, err := ParseRange(a.Slides)
	if err != nil {
		return nil, fmt.Errorf("slides: %w", err)
	}
	cfg.Slides.Min, cfg.Slides.Max = lo, hi

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ParseRange parses "3-5" or a single "4" into bounds.
func ParseRange(s string) (int, int, error) {
	loStr, hiStr, found := strings.Cut(strings.TrimSpace(s), "-")
	if !found {
		hiStr = loStr
	}

	lo, err := strconv.Atoi(strings.TrimSpace(loStr))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid range %q", s)
	}
	hi, err := strconv.Atoi(strings.TrimSpace(hiStr))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid range %q", s)
	}
	if lo > hi {
		return 0, 0, fmt.Errorf("invalid range %q: %d > %d", s, lo, hi)
	}
	return lo, hi, nil
}

// EnsureNotes writes StarterNotes to path unless a file is already there.
// Glob patterns are left alone.
func EnsureNotes(path string) (bool, error) {
	if strings.ContainsAny(path, "*?[{") || FileExists(path) {
		return false, nil
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return false, fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, []byte(StarterNotes), 0o644); err != nil {
		return false, err
	}
	return true, nil
}

func promptUser(a *Answers) error {
	themes := make([]huh.Option[string], 0)
	for _, name := range styles.ThemeNames() {
		themes = append(themes, huh.NewOption(name, name))
	}

	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Notes file").
			Description("Path or glob of the notes shown on the closing slide").
			Value(&a.Notes),
		huh.NewSelect[string]().
			Title("Theme").
			Options(themes...).
			Value(&a.Theme),
		huh.NewInput().
			Title("Generated slides").
			Description(fmt.Sprintf("A count or range between %d and %d", config.MinBodySlides, config.MaxBodySlides)).
			Validate(func(s string) error {
				_, _, err := ParseRange(s)
				return err
			}).
			Value(&a.Slides),
		huh.NewConfirm().
			Title("Show the elapsed-time readout?").
			Value(&a.TimerVisible),
	))
	return form.Run()
}
