// Package style renders terminal colors behind a one-time capability probe.
package style

import (
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Palette holds the colors used by the interactive flows. It is built once
// at startup and passed around explicitly; there is no mutable global state.
type Palette struct {
	Unit    *color.Color
	Service *color.Color
	Install *color.Color
	Key     *color.Color
	Hint    *color.Color
	Success *color.Color
	Warn    *color.Color
	Error   *color.Color
}

// Detect reports whether stdout can render ANSI sequences: either it is a
// terminal, or the environment explicitly advertises ANSI support.
func Detect() bool {
	fd := os.Stdout.Fd()
	if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		return true
	}
	return os.Getenv("TERM") == "ANSI"
}

// New builds a palette. With enabled false every color renders as a no-op,
// so callers never branch on capability themselves.
func New(enabled bool) Palette {
	build := func(attrs ...color.Attribute) *color.Color {
		c := color.New(attrs...)
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		return c
	}
	return Palette{
		Unit:    build(color.FgYellow, color.Bold),
		Service: build(color.FgBlue, color.Bold),
		Install: build(color.FgMagenta, color.Bold),
		Key:     build(color.FgGreen, color.Bold),
		Hint:    build(color.Faint),
		Success: build(color.FgGreen),
		Warn:    build(color.FgYellow),
		Error:   build(color.FgRed, color.Bold),
	}
}

// Section returns the palette color for a unit-file section header.
func (p Palette) Section(name string) *color.Color {
	switch name {
	case "Unit":
		return p.Unit
	case "Service":
		return p.Service
	case "Install":
		return p.Install
	}
	return p.Key
}
