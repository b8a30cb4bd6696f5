// Copyright 2026 The Fuchsia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"go.fuchsia.dev/fuchsia/tools/lib/logger"
)

type checkCmd struct {
	baseCommand
}

func (*checkCmd) Name() string { return "check" }

func (*checkCmd) Synopsis() string {
	return "fails if OUTPUT differs from what generate would write"
}

func (*checkCmd) Usage() string {
	return `gen_goldens check [flags] OUTPUT INPUT...

Takes the same arguments as generate, but only compares.

flags:
`
}

func (c *checkCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return exitStatus(ctx, c.execute(ctx, f))
}

func (c *checkCmd) execute(ctx context.Context, f *flag.FlagSet) error {
	output, out, _, err := c.render(ctx, f)
	if err != nil {
		return err
	}
	current, err := os.ReadFile(output)
	if os.IsNotExist(err) {
		return fmt.Errorf("%s does not exist; run `gen_goldens generate`", output)
	} else if err != nil {
		return err
	}
	if !bytes.Equal(current, out) {
		return fmt.Errorf("%s is stale; run `gen_goldens generate` with the same arguments", output)
	}
	logger.Infof(ctx, "%s is up to date", output)
	return nil
}
