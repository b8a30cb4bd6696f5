// Copyright 2026 The Fuchsia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/subcommands"

	"go.fuchsia.dev/fuchsia/tools/lib/color"
	"go.fuchsia.dev/fuchsia/tools/lib/logger"
)

type testFixture struct {
	*testing.T
	root string
}

func newTestFixture(t *testing.T) testFixture {
	return testFixture{T: t, root: t.TempDir()}
}

func (t testFixture) path(name string) string {
	return filepath.Join(t.root, filepath.FromSlash(name))
}

func (t testFixture) write(name, content string) string {
	t.Helper()
	p := t.path(name)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func (t testFixture) read(name string) string {
	t.Helper()
	b, err := os.ReadFile(t.path(name))
	if err != nil {
		t.Fatal(err)
	}
	return string(b)
}

// scenario writes the fixtures of a single ordered test and returns their paths.
func (t testFixture) scenario() []string {
	return []string{
		t.write("fidl/testdata/mytest/order.txt", "b.fidl a.fidl\n"),
		t.write("fidl/testdata/mytest.a.fidl", "A"),
		t.write("fidl/testdata/mytest.b.fidl", "B"),
		t.write("fidl/goldens/mytest.test.json.golden", "{}"),
		t.write("fidl/goldens/mytest.tables.c.golden", "skipped"),
	}
}

func (t testFixture) run(cmd subcommands.Command, args ...string) (subcommands.ExitStatus, string) {
	t.Helper()
	f := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	cmd.SetFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatal(err)
	}
	var logs bytes.Buffer
	l := logger.NewLogger(logger.InfoLevel, color.NewColor(color.ColorNever), &logs, &logs, "")
	return cmd.Execute(logger.WithLogger(context.Background(), l), f), logs.String()
}

const wantScenario = `// Autogenerated: Do not modify!
#include <map>
#include <string>
#include <utility>
#include <vector>
#include "goldens.h"

std::map<std::string, std::vector<std::string>> Goldens::dep_order_ = {
	{"mytest", {"mytest/mytest.b.fidl", "mytest/mytest.a.fidl"}},
};

std::map<std::string, std::string> Goldens::json_ = {
	{"mytest", R"JSON({})JSON"},
};

std::map<std::string, std::string> Goldens::fidl_ = {
	{"mytest/mytest.a.fidl", R"FIDL(A)FIDL"},
	{"mytest/mytest.b.fidl", R"FIDL(B)FIDL"},
};
`

func TestGenerate(t *testing.T) {
	fx := newTestFixture(t)
	inputs := fx.scenario()
	status, logs := fx.run(&generateCmd{}, append([]string{fx.path("out/goldens.cc")}, inputs...)...)
	if status != subcommands.ExitSuccess {
		t.Fatalf("generate failed: %d\n%s", status, logs)
	}
	if diff := cmp.Diff(wantScenario, fx.read("out/goldens.cc")); diff != "" {
		t.Errorf("unexpected output (-want +got):\n%s", diff)
	}
}

func TestGenerateGoBackend(t *testing.T) {
	fx := newTestFixture(t)
	args := append([]string{"-backend", "go", "-go-package", "fidlcgoldens", fx.path("goldens.go")}, fx.scenario()...)
	if status, logs := fx.run(&generateCmd{}, args...); status != subcommands.ExitSuccess {
		t.Fatalf("generate failed: %d\n%s", status, logs)
	}
	got := fx.read("goldens.go")
	for _, want := range []string{
		"package fidlcgoldens\n",
		`"mytest": {"mytest/mytest.b.fidl", "mytest/mytest.a.fidl"},`,
		`"mytest/mytest.a.fidl": "A",`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output should contain %q:\n%s", want, got)
		}
	}
}

func TestGenerateResponseFile(t *testing.T) {
	fx := newTestFixture(t)
	var quoted []string
	for _, p := range fx.scenario() {
		quoted = append(quoted, "'"+p+"'")
	}
	rsp := fx.write("inputs.rsp", strings.Join(quoted, "\n  ")+"\n")
	if status, logs := fx.run(&generateCmd{}, fx.path("goldens.cc"), "@"+rsp); status != subcommands.ExitSuccess {
		t.Fatalf("generate failed: %d\n%s", status, logs)
	}
	if diff := cmp.Diff(wantScenario, fx.read("goldens.cc")); diff != "" {
		t.Errorf("unexpected output (-want +got):\n%s", diff)
	}
}

func TestGenerateFailures(t *testing.T) {
	fx := newTestFixture(t)
	out := fx.path("goldens.cc")

	if status, _ := fx.run(&generateCmd{}); status != subcommands.ExitUsageError {
		t.Errorf("no arguments: got status %d, want usage error", status)
	}

	golden := fx.write("goldens/x.test.json.golden", "{}")
	status, logs := fx.run(&generateCmd{}, out, golden, "/foo/bar.txt", "/foo/baz.txt")
	if status != subcommands.ExitFailure {
		t.Errorf("unrecognized paths: got status %d, want failure", status)
	}
	for _, want := range []string{"unknown path: /foo/bar.txt", "unknown path: /foo/baz.txt"} {
		if !strings.Contains(logs, want) {
			t.Errorf("logs should contain %q:\n%s", want, logs)
		}
	}

	status, logs = fx.run(&generateCmd{}, out, golden)
	if status != subcommands.ExitFailure || !strings.Contains(logs, "x") {
		t.Errorf("incomplete test: got status %d, logs:\n%s", status, logs)
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Errorf("failed runs should not write %s", out)
	}

	if status, _ := fx.run(&generateCmd{}, out, "@"+fx.path("missing.rsp")); status != subcommands.ExitFailure {
		t.Errorf("missing response file: got status %d, want failure", status)
	}
	if status, _ := fx.run(&generateCmd{}, "-formatter-args", "'unterminated", out, golden); status != subcommands.ExitFailure {
		t.Errorf("bad -formatter-args: got status %d, want failure", status)
	}
}

func TestCheck(t *testing.T) {
	fx := newTestFixture(t)
	inputs := fx.scenario()
	out := fx.path("goldens.cc")
	args := append([]string{out}, inputs...)

	if status, _ := fx.run(&checkCmd{}, args...); status != subcommands.ExitFailure {
		t.Errorf("missing output: got status %d, want failure", status)
	}
	if status, logs := fx.run(&generateCmd{}, args...); status != subcommands.ExitSuccess {
		t.Fatalf("generate failed: %d\n%s", status, logs)
	}
	if status, logs := fx.run(&checkCmd{}, args...); status != subcommands.ExitSuccess {
		t.Errorf("fresh output: got status %d\n%s", status, logs)
	}

	fx.write("fidl/testdata/mytest.a.fidl", "A changed")
	status, logs := fx.run(&checkCmd{}, args...)
	if status != subcommands.ExitFailure || !strings.Contains(logs, "stale") {
		t.Errorf("stale output: got status %d, logs:\n%s", status, logs)
	}
}

func TestList(t *testing.T) {
	fx := newTestFixture(t)
	fx.scenario()
	fx.write("fidl/BUILD.gn", "")

	var out bytes.Buffer
	status, logs := fx.run(&listCmd{out: &out}, "-json", fx.path("fidl"))
	if status != subcommands.ExitSuccess {
		t.Fatalf("list failed: %d\n%s", status, logs)
	}
	var got []string
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("list -json printed invalid JSON: %s\n%s", err, out.String())
	}
	want := []string{
		fx.path("fidl/goldens/mytest.test.json.golden"),
		fx.path("fidl/testdata/mytest.a.fidl"),
		fx.path("fidl/testdata/mytest.b.fidl"),
		fx.path("fidl/testdata/mytest/order.txt"),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("list (-want +got):\n%s", diff)
	}

	out.Reset()
	if status, _ := fx.run(&listCmd{out: &out}, fx.path("fidl")); status != subcommands.ExitSuccess {
		t.Fatalf("list failed: %d", status)
	}
	if diff := cmp.Diff(strings.Join(want, "\n")+"\n", out.String()); diff != "" {
		t.Errorf("list (-want +got):\n%s", diff)
	}

	if status, _ := fx.run(&listCmd{out: &out}); status != subcommands.ExitUsageError {
		t.Errorf("list without roots: got status %d, want usage error", status)
	}
}

func TestExpandResponseFiles(t *testing.T) {
	fx := newTestFixture(t)
	rsp := fx.write("args.rsp", `a "b c" 'd e'`+"\n"+`f\ g`)
	got, err := expandResponseFiles([]string{"first", "@" + rsp, "@", "last"})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"first", "a", "b c", "d e", "f g", "@", "last"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("expandResponseFiles (-want +got):\n%s", diff)
	}
}
