// Copyright 2026 The Fuchsia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package main

import (
	"context"
	"flag"

	"github.com/dustin/go-humanize"
	"github.com/google/subcommands"

	"go.fuchsia.dev/fuchsia/tools/fidl/lib/fidlgen"
	"go.fuchsia.dev/fuchsia/tools/lib/logger"
)

type generateCmd struct {
	baseCommand
}

func (*generateCmd) Name() string { return "generate" }

func (*generateCmd) Synopsis() string { return "writes the golden tables for a set of fixture files" }

func (*generateCmd) Usage() string {
	return `gen_goldens generate [flags] OUTPUT INPUT...

Any argument of the form @FILE is replaced by the arguments listed in FILE.

flags:
`
}

func (c *generateCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return exitStatus(ctx, c.execute(ctx, f))
}

func (c *generateCmd) execute(ctx context.Context, f *flag.FlagSet) error {
	output, out, corpus, err := c.render(ctx, f)
	if err != nil {
		return err
	}
	if err := fidlgen.WriteFileIfChanged(output, out); err != nil {
		return err
	}
	logger.Debugf(ctx, "wrote %s (%s): %d tests, %d fidl files", output, humanize.Bytes(uint64(len(out))), len(corpus.Bundles), len(corpus.Sources))
	return nil
}
