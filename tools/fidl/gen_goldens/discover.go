// Copyright 2026 The Fuchsia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package goldens

import (
	"sort"
	"strings"

	"github.com/kr/fs"
)

const goldenExt = ".golden"

// Discover walks each root and returns the sorted paths of every file that
// would be accepted as an input: order manifests, goldens ending in .golden,
// and fixture sources ending in sourceExt (any extension if empty). Table
// goldens are left out since Aggregate would skip them anyway.
func Discover(roots []string, sourceExt string) ([]string, error) {
	var paths []string
	for _, root := range roots {
		walker := fs.Walk(root)
		for walker.Step() {
			if err := walker.Err(); err != nil {
				return nil, err
			}
			if walker.Stat().IsDir() {
				continue
			}
			c, err := Classify(walker.Path())
			if err != nil {
				continue
			}
			switch c.Role {
			case GoldenOutput:
				if !strings.HasSuffix(c.BaseName, goldenExt) {
					continue
				}
			case FixtureSource:
				if sourceExt != "" && !strings.HasSuffix(c.BaseName, sourceExt) {
					continue
				}
			case Skipped:
				continue
			}
			paths = append(paths, walker.Path())
		}
	}
	sort.Strings(paths)
	return paths, nil
}
