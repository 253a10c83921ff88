// Package printer writes styled, human-facing command output.
package printer

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/hay-kot/pitch/internal/core/styles"
)

type ctxKey struct{}

// Printer writes status lines prefixed with a colored marker.
type Printer struct {
	w io.Writer
}

func New(w io.Writer) *Printer {
	return &Printer{w: w}
}

// WithPrinter stores p in ctx.
func WithPrinter(ctx context.Context, p *Printer) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// Ctx returns the printer stored in ctx, or one writing to stdout.
func Ctx(ctx context.Context) *Printer {
	if p, ok := ctx.Value(ctxKey{}).(*Printer); ok {
		return p
	}
	return New(os.Stdout)
}

func (p *Printer) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(p.w, format+"\n", args...)
}

func (p *Printer) Successf(format string, args ...any) {
	p.marked(styles.TextSuccessStyle.Render("✔"), format, args...)
}

func (p *Printer) Infof(format string, args ...any) {
	p.marked(styles.TextPrimaryBoldStyle.Render("•"), format, args...)
}

func (p *Printer) Warnf(format string, args ...any) {
	p.marked(styles.TextWarningStyle.Render("!"), format, args...)
}

func (p *Printer) Errorf(format string, args ...any) {
	p.marked(styles.TextErrorStyle.Render("✘"), format, args...)
}

// Section prints a bold heading.
func (p *Printer) Section(title string) {
	p.Printf("%s", styles.TextForegroundBoldStyle.Render(title))
}

// Muted prints a dimmed line.
func (p *Printer) Muted(format string, args ...any) {
	p.Printf("%s", styles.TextMutedStyle.Render(fmt.Sprintf(format, args...)))
}

func (p *Printer) marked(marker, format string, args ...any) {
	_, _ = fmt.Fprintf(p.w, "%s %s\n", marker, fmt.Sprintf(format, args...))
}
