// Copyright 2018 The Fuchsia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package color wraps log prefixes and status lines in ANSI color codes.
package color

import (
	"fmt"
	"os"

	"go.fuchsia.dev/fuchsia/tools/lib/isatty"
)

type Colorfn func(format string, a ...interface{}) string

const (
	escape = "\033["
	clear  = escape + "0m"
)

type ColorCode int

// Foreground text colors.
const (
	RedFg ColorCode = iota + 31
	GreenFg
	YellowFg
	BlueFg
	MagentaFg
	CyanFg
	WhiteFg
	DefaultFg ColorCode = 39
)

// Color formats strings, optionally surrounded by color escape codes.
type Color interface {
	Red(format string, a ...interface{}) string
	Green(format string, a ...interface{}) string
	Yellow(format string, a ...interface{}) string
	Blue(format string, a ...interface{}) string
	Cyan(format string, a ...interface{}) string
	WithColor(code ColorCode, format string, a ...interface{}) string
	Enabled() bool
}

type ansi struct{}

func (ansi) Red(format string, a ...interface{}) string    { return colorString(RedFg, format, a...) }
func (ansi) Green(format string, a ...interface{}) string  { return colorString(GreenFg, format, a...) }
func (ansi) Yellow(format string, a ...interface{}) string { return colorString(YellowFg, format, a...) }
func (ansi) Blue(format string, a ...interface{}) string   { return colorString(BlueFg, format, a...) }
func (ansi) Cyan(format string, a ...interface{}) string   { return colorString(CyanFg, format, a...) }
func (ansi) WithColor(code ColorCode, format string, a ...interface{}) string {
	return colorString(code, format, a...)
}
func (ansi) Enabled() bool { return true }

func colorString(c ColorCode, format string, a ...interface{}) string {
	if c == DefaultFg {
		return fmt.Sprintf(format, a...)
	}
	return fmt.Sprintf("%v%vm%v%v", escape, c, fmt.Sprintf(format, a...), clear)
}

type monochrome struct{}

func (monochrome) Red(format string, a ...interface{}) string    { return fmt.Sprintf(format, a...) }
func (monochrome) Green(format string, a ...interface{}) string  { return fmt.Sprintf(format, a...) }
func (monochrome) Yellow(format string, a ...interface{}) string { return fmt.Sprintf(format, a...) }
func (monochrome) Blue(format string, a ...interface{}) string   { return fmt.Sprintf(format, a...) }
func (monochrome) Cyan(format string, a ...interface{}) string   { return fmt.Sprintf(format, a...) }
func (monochrome) WithColor(_ ColorCode, format string, a ...interface{}) string {
	return fmt.Sprintf(format, a...)
}
func (monochrome) Enabled() bool { return false }

// EnableColor is a flag.Value selecting when color is used.
type EnableColor int

const (
	ColorNever EnableColor = iota
	ColorAuto
	ColorAlways
)

func isColorAvailable() bool {
	switch os.Getenv("TERM") {
	case "dumb", "":
		return false
	}
	return isatty.IsTerminal()
}

// NewColor returns a Color for the given setting. ColorAuto enables color
// only when stdout is a terminal with a capable TERM.
func NewColor(enableColor EnableColor) Color {
	enabled := enableColor == ColorAlways
	if enableColor == ColorAuto {
		enabled = isColorAvailable()
	}
	if enabled {
		return ansi{}
	}
	return monochrome{}
}

func (ec *EnableColor) String() string {
	switch *ec {
	case ColorNever:
		return "never"
	case ColorAuto:
		return "auto"
	case ColorAlways:
		return "always"
	}
	return ""
}

func (ec *EnableColor) Set(s string) error {
	switch s {
	case "never":
		*ec = ColorNever
	case "auto":
		*ec = ColorAuto
	case "always":
		*ec = ColorAlways
	default:
		return fmt.Errorf("%s is not a valid color value", s)
	}
	return nil
}
