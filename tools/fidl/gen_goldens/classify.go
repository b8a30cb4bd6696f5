// Copyright 2026 The Fuchsia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package goldens

import (
	"path"
	"path/filepath"
	"strings"
)

// Role is the part a fixture file plays in a test case.
type Role int

const (
	// Skipped files are recognized but contribute nothing to the output.
	Skipped Role = iota
	OrderManifest
	GoldenOutput
	FixtureSource
)

func (r Role) String() string {
	switch r {
	case Skipped:
		return "skipped"
	case OrderManifest:
		return "order manifest"
	case GoldenOutput:
		return "golden"
	case FixtureSource:
		return "fixture source"
	}
	return "unknown"
}

const (
	goldensDir  = "goldens"
	testdataDir = "testdata"

	orderManifestSuffix = "order.txt"
	// Coding tables goldens live next to the JSON IR goldens but are checked
	// by a different test.
	tablesGoldenSuffix = ".tables.c.golden"

	// keySeparator joins a test name and a base name into a SourceKey.
	keySeparator = "/"
)

// Classification describes a single input path.
type Classification struct {
	Path     string
	Role     Role
	TestName string
	// BaseName is the final path element.
	BaseName string
	// SourceKey is only set for FixtureSource files.
	SourceKey string
}

// Classify determines which test case path belongs to and what role it plays.
//
// Golden outputs live under a "goldens" directory and fixture sources under a
// "testdata" directory; in both cases the test name is the first path element
// following that directory, cut at its first '.'. A file named order.txt
// under "testdata" is the test's order manifest.
func Classify(p string) (Classification, error) {
	p = filepath.ToSlash(p)
	c := Classification{Path: p, BaseName: path.Base(p)}
	if strings.HasSuffix(p, tablesGoldenSuffix) {
		c.Role = Skipped
		return c, nil
	}

	segments := strings.Split(p, "/")
	var marker string
	switch {
	case strings.HasSuffix(p, orderManifestSuffix) && contains(segments, testdataDir):
		c.Role, marker = OrderManifest, testdataDir
	case contains(segments, goldensDir):
		c.Role, marker = GoldenOutput, goldensDir
	case contains(segments, testdataDir):
		c.Role, marker = FixtureSource, testdataDir
	default:
		return Classification{}, &UnrecognizedPathError{Path: p}
	}

	name, ok := testName(segments, marker)
	if !ok {
		return Classification{}, &UnrecognizedPathError{Path: p}
	}
	c.TestName = name
	if c.Role == FixtureSource {
		c.SourceKey = name + keySeparator + c.BaseName
	}
	return c, nil
}

// testName returns the segment following the first occurrence of marker, cut
// at its first '.'.
func testName(segments []string, marker string) (string, bool) {
	for i, s := range segments {
		if s != marker {
			continue
		}
		if i+1 >= len(segments) {
			return "", false
		}
		name := segments[i+1]
		if dot := strings.IndexByte(name, '.'); dot >= 0 {
			name = name[:dot]
		}
		return name, name != ""
	}
	return "", false
}

func contains(segments []string, s string) bool {
	for _, seg := range segments {
		if seg == s {
			return true
		}
	}
	return false
}
