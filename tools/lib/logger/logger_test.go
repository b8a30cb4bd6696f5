// Copyright 2019 The Fuchsia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logger

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"go.fuchsia.dev/fuchsia/tools/lib/color"
)

func TestWithContext(t *testing.T) {
	logger := NewLogger(DebugLevel, color.NewColor(color.ColorNever), nil, nil, "")
	ctx := context.Background()
	if v := LoggerFromContext(ctx); v != nil {
		t.Fatalf("Default context should not have a logger, but got: %+v", v)
	}
	ctx = WithLogger(ctx, logger)
	if v := LoggerFromContext(ctx); v != logger {
		t.Fatalf("Updated context should have the logger, but got: %+v", v)
	}
}

func TestLevels(t *testing.T) {
	var out, errOut bytes.Buffer
	l := NewLogger(InfoLevel, color.NewColor(color.ColorNever), &out, &errOut, "tool: ")
	ctx := WithLogger(context.Background(), l)

	Errorf(ctx, "bad %d", 1)
	Warningf(ctx, "careful")
	Infof(ctx, "hello")
	Debugf(ctx, "hidden")
	Tracef(ctx, "hidden")

	if got, want := errOut.String(), "tool: ERROR: bad 1\n"; got != want {
		t.Errorf("error output: got %q, want %q", got, want)
	}
	if got, want := out.String(), "tool: WARN: careful\ntool: hello\n"; got != want {
		t.Errorf("output: got %q, want %q", got, want)
	}
}

func TestShortfileReportsCaller(t *testing.T) {
	var out bytes.Buffer
	l := NewLogger(InfoLevel, color.NewColor(color.ColorNever), &out, nil, "")
	l.SetFlags(Lshortfile)
	Infof(WithLogger(context.Background(), l), "x")
	l.Infof("y")
	for _, line := range strings.Split(strings.TrimSpace(out.String()), "\n") {
		if !strings.HasPrefix(line, "logger_test.go:") {
			t.Errorf("line %q should be attributed to logger_test.go", line)
		}
	}
}

func TestLogLevelFlag(t *testing.T) {
	var l LogLevel
	if err := l.Set("trace"); err != nil {
		t.Fatal(err)
	}
	if l != TraceLevel || l.String() != "trace" {
		t.Errorf("got %v (%q), want TraceLevel", int(l), l.String())
	}
	if err := l.Set("loud"); err == nil {
		t.Errorf("Set(%q) should have failed", "loud")
	}
}
