// Copyright 2026 The Fuchsia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// gen_goldens bundles the fidlc golden tests' fixtures into source tables
// that the fidl-compiler test binary compiles in.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"

	"go.fuchsia.dev/fuchsia/tools/lib/color"
	"go.fuchsia.dev/fuchsia/tools/lib/logger"
)

var (
	colors = color.ColorAuto
	level  = logger.WarningLevel
)

func init() {
	flag.Var(&colors, "color", "use color in output, can be never, auto, always")
	flag.Var(&level, "level", "output verbosity, can be error, warning, info, debug or trace")
}

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(&generateCmd{}, "")
	subcommands.Register(&checkCmd{}, "")
	subcommands.Register(&listCmd{out: os.Stdout}, "")

	flag.Parse()
	l := logger.NewLogger(level, color.NewColor(colors), os.Stdout, os.Stderr, "gen_goldens: ")
	ctx := logger.WithLogger(context.Background(), l)
	os.Exit(int(subcommands.Execute(ctx)))
}
