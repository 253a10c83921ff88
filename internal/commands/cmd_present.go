package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/pitch/internal/core/deck"
	"github.com/hay-kot/pitch/internal/core/logging"
	"github.com/hay-kot/pitch/internal/present"
	"github.com/hay-kot/pitch/internal/render"
	"github.com/hay-kot/pitch/internal/terminal"
)

type PresentCmd struct {
	flags   *Flags
	seed    uint64
	noArt   bool
	noTimer bool
}

// NewPresentCmd creates a new present command.
func NewPresentCmd(flags *Flags) *PresentCmd {
	return &PresentCmd{flags: flags}
}

// Register adds the present command to the application.
func (cmd *PresentCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "present",
		Usage:     "Present a freshly generated deck",
		UsageText: "pitch present [options]",
		Description: `Takes over the terminal and presents a generated deck.

Keys (defaults, see the config file to change them):
  space, enter, n   next slide
  p                 previous slide
  t                 toggle the elapsed-time readout
  ctrl+z            suspend to the shell
  q, ctrl+c         quit`,
		Flags:  cmd.Flags(),
		Action: cmd.Run,
	})
	return app
}

// Flags returns the present flags, shared with the root command where
// presenting is the default action.
func (cmd *PresentCmd) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.Uint64Flag{
			Name:        "seed",
			Usage:       "seed for deck generation (0 = config value or random)",
			Sources:     cli.EnvVars("PITCH_SEED"),
			Destination: &cmd.seed,
		},
		&cli.BoolFlag{
			Name:        "no-art",
			Usage:       "render headers as plain text",
			Destination: &cmd.noArt,
		},
		&cli.BoolFlag{
			Name:        "no-timer",
			Usage:       "start with the elapsed-time readout hidden",
			Destination: &cmd.noTimer,
		},
	}
}

// Run builds the deck, then hands the terminal to the presenter until the
// user quits or the process is interrupted.
func (cmd *PresentCmd) Run(ctx context.Context, c *cli.Command) error {
	cfg := cmd.flags.Config

	tty, err := terminal.OpenTTY()
	if err != nil {
		return err
	}

	width, height, err := tty.Size()
	if err != nil {
		return fmt.Errorf("read terminal size: %w", err)
	}
	canvas, err := deck.NewCanvas(width, height)
	if err != nil {
		return err
	}

	keys, err := present.NewKeymap(cfg.Keys)
	if err != nil {
		return err
	}

	d, seed, err := buildDeck(deckRequest{Config: cfg, Canvas: canvas, Seed: cmd.seed, NoArt: cmd.noArt})
	if err != nil {
		return err
	}

	ctx = logging.WithDeckID(ctx, deckID(seed))
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	screen := terminal.NewScreen(tty, terminal.WithColorOutput(tty.Output()))

	logger := logging.Component("present").With().Ctx(ctx).Logger()
	logger.Info().
		Int("slides", d.Len()).
		Int("width", canvas.Width).
		Int("height", canvas.Height).
		Str("colors", screen.ColorProfile().Name()).
		Msg("presenting deck")

	input := terminal.NewInput(tty)
	session := terminal.NewSession(tty, screen, logging.Component("session").With().Ctx(ctx).Logger())
	renderer := render.New(screen, canvas, render.WithSkip(input.Buffered))

	p := present.New(d, input, session, renderer, present.Options{
		Keys:         keys,
		PollInterval: cfg.PollInterval,
		TimerVisible: cfg.Timer.Visible && !cmd.noTimer,
	}, logger)

	if err := p.Run(ctx); err != nil {
		log.Error().Err(err).Msg("presentation failed")
		return err
	}
	return nil
}
