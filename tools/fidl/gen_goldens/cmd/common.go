// Copyright 2026 The Fuchsia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/shlex"
	"github.com/google/subcommands"
	"go.uber.org/multierr"

	goldens "go.fuchsia.dev/fuchsia/tools/fidl/gen_goldens"
	"go.fuchsia.dev/fuchsia/tools/fidl/lib/fidlgen"
	"go.fuchsia.dev/fuchsia/tools/lib/logger"
)

// Above this size clang-format takes longer than the rest of the build step.
const formatterSizeLimit = 128 * 1024

// baseCommand holds the flags and logic shared by generate and check: both
// take `OUTPUT INPUT...` and render the same artifact.
type baseCommand struct {
	backend       goldens.Backend
	goPackage     string
	formatter     string
	formatterArgs string
}

func (c *baseCommand) SetFlags(f *flag.FlagSet) {
	c.backend = goldens.CppBackend
	f.Var(&c.backend, "backend", fmt.Sprintf("language of the generated tables, one of %q", goldens.Backends))
	f.StringVar(&c.goPackage, "go-package", "goldens", "package name for -backend=go output")
	f.StringVar(&c.formatter, "formatter", "", "path to a stdin-to-stdout formatter for the generated source")
	f.StringVar(&c.formatterArgs, "formatter-args", "", "arguments to pass to the formatter, split like a shell would")
}

// render aggregates the inputs named on the command line and returns the
// output path along with the rendered artifact.
func (c *baseCommand) render(ctx context.Context, f *flag.FlagSet) (string, []byte, *goldens.Corpus, error) {
	args, err := expandResponseFiles(f.Args())
	if err != nil {
		return "", nil, nil, err
	}
	if len(args) == 0 {
		return "", nil, nil, errUsage
	}
	output, inputs := args[0], args[1:]

	fmtArgs, err := shlex.Split(c.formatterArgs)
	if err != nil {
		return "", nil, nil, fmt.Errorf("invalid -formatter-args: %w", err)
	}
	gen, err := goldens.NewGenerator(c.backend, fidlgen.NewFormatterWithSizeLimit(formatterSizeLimit, c.formatter, fmtArgs...), c.goPackage)
	if err != nil {
		return "", nil, nil, err
	}

	corpus, err := goldens.Aggregate(ctx, inputs, nil)
	if err != nil {
		return "", nil, nil, err
	}
	out, err := gen.Serialize(corpus)
	if err != nil {
		return "", nil, nil, err
	}
	return output, out, corpus, nil
}

var errUsage = errors.New("usage error")

// exitStatus logs err, one line per combined error, and maps it to an exit
// status.
func exitStatus(ctx context.Context, err error) subcommands.ExitStatus {
	if err == nil {
		return subcommands.ExitSuccess
	}
	if errors.Is(err, errUsage) {
		logger.Errorf(ctx, "expected an output path followed by input paths")
		return subcommands.ExitUsageError
	}
	for _, e := range multierr.Errors(err) {
		logger.Errorf(ctx, "%s", e)
	}
	return subcommands.ExitFailure
}

// expandResponseFiles replaces every "@path" argument with the arguments
// listed in path, which are split like a shell would split them. Response
// files are not expanded recursively.
func expandResponseFiles(args []string) ([]string, error) {
	var expanded []string
	for _, arg := range args {
		if !strings.HasPrefix(arg, "@") || arg == "@" {
			expanded = append(expanded, arg)
			continue
		}
		rsp := arg[1:]
		b, err := os.ReadFile(rsp)
		if err != nil {
			return nil, fmt.Errorf("failed to read response file: %w", err)
		}
		words, err := shlex.Split(string(b))
		if err != nil {
			return nil, fmt.Errorf("failed to parse response file %s: %w", rsp, err)
		}
		expanded = append(expanded, words...)
	}
	return expanded, nil
}
