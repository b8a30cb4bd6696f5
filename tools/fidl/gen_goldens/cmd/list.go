// Copyright 2026 The Fuchsia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"

	"github.com/google/subcommands"

	goldens "go.fuchsia.dev/fuchsia/tools/fidl/gen_goldens"
	"go.fuchsia.dev/fuchsia/tools/lib/logger"
)

type listCmd struct {
	out       io.Writer
	sourceExt string
	json      bool
}

func (*listCmd) Name() string { return "list" }

func (*listCmd) Synopsis() string { return "prints the fixture files found under directories" }

func (*listCmd) Usage() string {
	return `gen_goldens list [flags] ROOT...

Prints, one per line, every golden, order manifest and fixture source under
the given roots, in a form suitable as INPUT arguments to generate.

flags:
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.sourceExt, "source-ext", ".fidl", "only list fixture sources with this extension; empty for all")
	f.BoolVar(&c.json, "json", false, "print a JSON list instead of one path per line")
}

func (c *listCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		logger.Errorf(ctx, "expected at least one root directory")
		return subcommands.ExitUsageError
	}
	paths, err := goldens.Discover(f.Args(), c.sourceExt)
	if err != nil {
		logger.Errorf(ctx, "%s", err)
		return subcommands.ExitFailure
	}
	logger.Debugf(ctx, "found %d files", len(paths))
	if err := c.print(paths); err != nil {
		logger.Errorf(ctx, "%s", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func (c *listCmd) print(paths []string) error {
	if c.json {
		if paths == nil {
			paths = []string{}
		}
		encoder := json.NewEncoder(c.out)
		encoder.SetIndent("", "\t")
		return encoder.Encode(paths)
	}
	for _, p := range paths {
		if _, err := fmt.Fprintln(c.out, p); err != nil {
			return err
		}
	}
	return nil
}
