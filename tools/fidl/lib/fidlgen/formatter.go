// Copyright 2026 The Fuchsia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package fidlgen

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"
)

// Formatter formats generated source code.
type Formatter interface {
	Format(source []byte) ([]byte, error)
}

// identityFormatter returns its input unchanged.
type identityFormatter struct{}

func (identityFormatter) Format(source []byte) ([]byte, error) {
	return source, nil
}

// externalFormatter pipes source through a stdin-to-stdout formatting tool.
type externalFormatter struct {
	path      string
	args      []string
	sizeLimit int
}

// NewFormatter returns a Formatter that runs the program at path with args.
// An empty path yields a formatter that leaves source unchanged.
func NewFormatter(path string, args ...string) Formatter {
	return NewFormatterWithSizeLimit(0, path, args...)
}

// NewFormatterWithSizeLimit is like NewFormatter, but sources larger than
// limit bytes are returned unformatted. A limit of 0 means no limit.
func NewFormatterWithSizeLimit(limit int, path string, args ...string) Formatter {
	if path == "" {
		return identityFormatter{}
	}
	return externalFormatter{path: path, args: args, sizeLimit: limit}
}

func (f externalFormatter) Format(source []byte) ([]byte, error) {
	if f.sizeLimit > 0 && len(source) > f.sizeLimit {
		return source, nil
	}
	var stdout, stderr bytes.Buffer
	cmd := exec.Command(f.path, f.args...)
	cmd.Stdin = bytes.NewReader(source)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("%s %s: %w: %s", f.path, strings.Join(f.args, " "), err, stderr.String())
	}
	return stdout.Bytes(), nil
}
