package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/hay-kot/pitch/internal/core/deck"
	"github.com/hay-kot/pitch/internal/core/styles"
	"github.com/hay-kot/pitch/internal/printer"
)

type OutlineCmd struct {
	flags  *Flags
	width  int
	height int
	seed   uint64
	noArt  bool
}

// NewOutlineCmd creates a new outline command.
func NewOutlineCmd(flags *Flags) *OutlineCmd {
	return &OutlineCmd{flags: flags}
}

// Register adds the outline command to the application.
func (cmd *OutlineCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "outline",
		Usage:     "Print a generated deck without presenting it",
		UsageText: "pitch outline [options]",
		Description: `Generates a deck for the given terminal size and prints every slide with
its row numbers. Does not need a terminal; useful to preview a seed.`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:        "width",
				Usage:       "terminal width to lay out for",
				Value:       80,
				Destination: &cmd.width,
			},
			&cli.IntFlag{
				Name:        "height",
				Usage:       "terminal height to lay out for",
				Value:       24,
				Destination: &cmd.height,
			},
			&cli.Uint64Flag{
				Name:        "seed",
				Usage:       "seed for deck generation (0 = config value or random)",
				Destination: &cmd.seed,
			},
			&cli.BoolFlag{
				Name:        "no-art",
				Usage:       "render headers as plain text",
				Destination: &cmd.noArt,
			},
		},
		Action: cmd.run,
	})
	return app
}

func (cmd *OutlineCmd) run(ctx context.Context, c *cli.Command) error {
	p := printer.Ctx(ctx)

	canvas, err := deck.NewCanvas(cmd.width, cmd.height)
	if err != nil {
		return err
	}

	d, seed, err := buildDeck(deckRequest{
		Config: cmd.flags.Config,
		Canvas: canvas,
		Seed:   cmd.seed,
		NoArt:  cmd.noArt,
	})
	if err != nil {
		return err
	}

	p.Muted("seed %d, canvas %dx%d", seed, canvas.Width, canvas.Height)
	layout := deck.NewLayout(canvas, nil)

	for i, s := range d.Slides() {
		p.Printf("")
		title := fmt.Sprintf("Slide %d of %d", i+1, d.Len())
		if !layout.Fits(s) {
			title += " (clipped)"
		}
		p.Printf("%s", styles.SlideStyle(s.Color()).Bold(true).Render(title))

		for _, line := range s.Lines {
			marker := " "
			if line.Animate != nil {
				marker = "~"
			}
			p.Printf("%s%3d  %s", marker, line.Y, line.Content)
		}
	}
	return nil
}
