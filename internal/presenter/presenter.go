// Package presenter writes the user-facing result lines of the CLI. Status
// prefixes are coloured when the output is a terminal.
package presenter

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/processwire-skills/linkskills/internal/branding"
)

// Status selects the prefix and stream of a result line.
type Status int

const (
	StatusCreated Status = iota
	StatusRemoved
	StatusFailed
)

// ColorMode controls whether status prefixes are coloured.
type ColorMode int

const (
	// ColorAuto colours output written to a terminal.
	ColorAuto ColorMode = iota
	// ColorAlways forces colour.
	ColorAlways
	// ColorNever disables colour.
	ColorNever
)

// Terminal writes result lines to out and failures to errOut.
type Terminal struct {
	out    io.Writer
	errOut io.Writer

	created *color.Color
	removed *color.Color
	failed  *color.Color
}

// New creates a Terminal, picking the colour mode from the environment. In
// auto mode each stream is coloured only when it is a terminal.
func New(out, errOut io.Writer) *Terminal {
	return NewWithOptions(out, errOut, detectColorMode())
}

// NewWithOptions creates a Terminal with an explicit colour mode.
func NewWithOptions(out, errOut io.Writer, mode ColorMode) *Terminal {
	t := &Terminal{
		out:     out,
		errOut:  errOut,
		created: color.New(color.FgGreen),
		removed: color.New(color.FgYellow),
		failed:  color.New(color.FgRed, color.Bold),
	}

	setColor(t.created, useColor(mode, out))
	setColor(t.removed, useColor(mode, out))
	setColor(t.failed, useColor(mode, errOut))
	return t
}

func setColor(c *color.Color, on bool) {
	if on {
		c.EnableColor()
		return
	}
	c.DisableColor()
}

// detectColorMode reads the colour preference from the environment.
func detectColorMode() ColorMode {
	if os.Getenv("NO_COLOR") != "" {
		return ColorNever
	}

	switch os.Getenv(branding.EnvVar("COLOR")) {
	case "always", "force":
		return ColorAlways
	case "never", "off":
		return ColorNever
	}
	return ColorAuto
}

// useColor resolves mode for one stream.
func useColor(mode ColorMode, w io.Writer) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	return isTerminal(w)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Line writes one "<Prefix>: msg" line. Failures go to the error stream.
func (t *Terminal) Line(status Status, msg string) {
	switch status {
	case StatusCreated:
		t.created.Fprint(t.out, "Created:")
		fmt.Fprintf(t.out, " %s\n", msg)
	case StatusRemoved:
		t.removed.Fprint(t.out, "Removed:")
		fmt.Fprintf(t.out, " %s\n", msg)
	case StatusFailed:
		t.failed.Fprint(t.errOut, "Failed:")
		fmt.Fprintf(t.errOut, " %s\n", msg)
	}
}

// Summary writes a plain line to the output stream.
func (t *Terminal) Summary(msg string) {
	fmt.Fprintln(t.out, msg)
}
