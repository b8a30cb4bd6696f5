// Copyright 2026 The Fuchsia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package goldens

import (
	"fmt"
	"strings"
)

// UnrecognizedPathError is returned for a path that is neither a golden, a
// fixture source nor an order manifest.
type UnrecognizedPathError struct {
	Path string
}

func (e *UnrecognizedPathError) Error() string {
	return fmt.Sprintf("unknown path: %s", e.Path)
}

// IncompleteBundleError lists every test that has a golden but no fixture
// sources, or fixture sources but no golden.
type IncompleteBundleError struct {
	MissingSources []string
	MissingGoldens []string
}

func (e *IncompleteBundleError) Error() string {
	var parts []string
	if len(e.MissingSources) > 0 {
		parts = append(parts, fmt.Sprintf("tests with a golden but no fidl files: %s", strings.Join(e.MissingSources, ", ")))
	}
	if len(e.MissingGoldens) > 0 {
		parts = append(parts, fmt.Sprintf("tests with fidl files but no golden: %s", strings.Join(e.MissingGoldens, ", ")))
	}
	return strings.Join(parts, "; ")
}

// Tests returns the names of all incomplete tests.
func (e *IncompleteBundleError) Tests() []string {
	return append(append([]string(nil), e.MissingSources...), e.MissingGoldens...)
}

// ManifestLookupError is returned when a fixture source is not listed in its
// test's order manifest.
type ManifestLookupError struct {
	Test     string
	File     string
	Manifest string
}

func (e *ManifestLookupError) Error() string {
	return fmt.Sprintf("test %s: %s is not listed in %s", e.Test, e.File, e.Manifest)
}

// DuplicateGoldenError is returned when a test receives more than one golden.
type DuplicateGoldenError struct {
	Test  string
	Paths []string
}

func (e *DuplicateGoldenError) Error() string {
	return fmt.Sprintf("test %s: duplicate golden: %s", e.Test, strings.Join(e.Paths, ", "))
}

// DuplicateManifestError is returned when a test receives more than one
// order manifest.
type DuplicateManifestError struct {
	Test  string
	Paths []string
}

func (e *DuplicateManifestError) Error() string {
	return fmt.Sprintf("test %s: duplicate order manifest: %s", e.Test, strings.Join(e.Paths, ", "))
}

// DuplicateSourceError is returned when two inputs map to the same SourceKey.
type DuplicateSourceError struct {
	Key   string
	Paths []string
}

func (e *DuplicateSourceError) Error() string {
	return fmt.Sprintf("duplicate fidl file %s: %s", e.Key, strings.Join(e.Paths, ", "))
}
