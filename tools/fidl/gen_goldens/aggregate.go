// Copyright 2026 The Fuchsia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package goldens

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/kr/pretty"
	"go.uber.org/multierr"

	"go.fuchsia.dev/fuchsia/tools/lib/logger"
)

// ReadFileFunc reads the contents of the named file.
type ReadFileFunc func(path string) ([]byte, error)

// Bundle is the data for a single test case.
type Bundle struct {
	Name string
	// Sources holds the test's SourceKeys in dependency order.
	Sources    []string
	Golden     string
	GoldenPath string
	// Manifest holds the tokens of the test's order.txt, and is only
	// meaningful when ManifestPath is set.
	Manifest     []string
	ManifestPath string
}

// Source is a single fixture source file.
type Source struct {
	Key     string
	Path    string
	Content string
}

// Corpus is the validated, ordered result of aggregation. Bundles are sorted
// by name and Sources by key.
type Corpus struct {
	Bundles []*Bundle
	Sources []Source
}

// Bundle returns the bundle for the named test, or nil.
func (c *Corpus) Bundle(name string) *Bundle {
	i := sort.Search(len(c.Bundles), func(i int) bool { return c.Bundles[i].Name >= name })
	if i < len(c.Bundles) && c.Bundles[i].Name == name {
		return c.Bundles[i]
	}
	return nil
}

// Source returns the fixture source with the given key.
func (c *Corpus) Source(key string) (Source, bool) {
	i := sort.Search(len(c.Sources), func(i int) bool { return c.Sources[i].Key >= key })
	if i < len(c.Sources) && c.Sources[i].Key == key {
		return c.Sources[i], true
	}
	return Source{}, false
}

type aggregator struct {
	readFile ReadFileFunc
	bundles  map[string]*Bundle
	sources  map[string]*Source

	goldenPaths   map[string][]string
	manifestPaths map[string][]string
	sourcePaths   map[string][]string
}

func (a *aggregator) bundle(name string) *Bundle {
	b, ok := a.bundles[name]
	if !ok {
		b = &Bundle{Name: name}
		a.bundles[name] = b
	}
	return b
}

func (a *aggregator) read(p string) (string, error) {
	b, err := a.readFile(p)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", p, err)
	}
	return string(b), nil
}

func (a *aggregator) add(c Classification) error {
	switch c.Role {
	case OrderManifest:
		a.manifestPaths[c.TestName] = append(a.manifestPaths[c.TestName], c.Path)
		if len(a.manifestPaths[c.TestName]) > 1 {
			return nil
		}
		content, err := a.read(c.Path)
		if err != nil {
			return err
		}
		b := a.bundle(c.TestName)
		b.Manifest = strings.Fields(content)
		b.ManifestPath = c.Path
	case GoldenOutput:
		a.goldenPaths[c.TestName] = append(a.goldenPaths[c.TestName], c.Path)
		if len(a.goldenPaths[c.TestName]) > 1 {
			return nil
		}
		content, err := a.read(c.Path)
		if err != nil {
			return err
		}
		b := a.bundle(c.TestName)
		b.Golden = content
		b.GoldenPath = c.Path
	case FixtureSource:
		a.sourcePaths[c.SourceKey] = append(a.sourcePaths[c.SourceKey], c.Path)
		if len(a.sourcePaths[c.SourceKey]) > 1 {
			return nil
		}
		content, err := a.read(c.Path)
		if err != nil {
			return err
		}
		b := a.bundle(c.TestName)
		b.Sources = append(b.Sources, c.SourceKey)
		a.sources[c.SourceKey] = &Source{Key: c.SourceKey, Path: c.Path, Content: content}
	}
	return nil
}

// duplicates reports every test or key that received more than one file.
func (a *aggregator) duplicates() error {
	var errs error
	for _, test := range sortedKeys(a.goldenPaths) {
		if paths := a.goldenPaths[test]; len(paths) > 1 {
			errs = multierr.Append(errs, &DuplicateGoldenError{Test: test, Paths: paths})
		}
	}
	for _, test := range sortedKeys(a.manifestPaths) {
		if paths := a.manifestPaths[test]; len(paths) > 1 {
			errs = multierr.Append(errs, &DuplicateManifestError{Test: test, Paths: paths})
		}
	}
	for _, key := range sortedKeys(a.sourcePaths) {
		if paths := a.sourcePaths[key]; len(paths) > 1 {
			errs = multierr.Append(errs, &DuplicateSourceError{Key: key, Paths: paths})
		}
	}
	return errs
}

// completeness checks that the tests with a golden are exactly the tests
// with at least one fixture source.
func (a *aggregator) completeness() error {
	var e IncompleteBundleError
	for _, name := range sortedKeys(a.bundles) {
		b := a.bundles[name]
		hasGolden, hasSources := b.GoldenPath != "", len(b.Sources) > 0
		switch {
		case hasGolden && !hasSources:
			e.MissingSources = append(e.MissingSources, name)
		case hasSources && !hasGolden:
			e.MissingGoldens = append(e.MissingGoldens, name)
		}
	}
	if len(e.MissingSources) > 0 || len(e.MissingGoldens) > 0 {
		return &e
	}
	return nil
}

// order sorts b.Sources by the position of each file in b's order manifest.
// Bundles without a manifest keep encounter order.
func (b *Bundle) order(sources map[string]*Source) error {
	if b.ManifestPath == "" {
		return nil
	}
	index := make(map[string]int, len(b.Manifest))
	for i, token := range b.Manifest {
		if _, ok := index[token]; !ok {
			index[token] = i
		}
	}

	bases := make(map[string]bool, len(b.Sources))
	for _, key := range b.Sources {
		bases[strings.TrimPrefix(key, b.Name+keySeparator)] = true
	}

	positions := make(map[string]int, len(b.Sources))
	var errs error
	for _, key := range b.Sources {
		base := strings.TrimPrefix(key, b.Name+keySeparator)
		pos, ok := index[base]
		if !ok {
			// Manifests may also name files without their "<test>." prefix,
			// unless a sibling file is literally called that.
			if short := strings.TrimPrefix(base, b.Name+"."); short != base && !bases[short] {
				pos, ok = index[short]
			}
		}
		if !ok {
			file := base
			if s, found := sources[key]; found {
				file = s.Path
			}
			errs = multierr.Append(errs, &ManifestLookupError{Test: b.Name, File: file, Manifest: b.ManifestPath})
			continue
		}
		positions[key] = pos
	}
	if errs != nil {
		return errs
	}
	sort.SliceStable(b.Sources, func(i, j int) bool {
		return positions[b.Sources[i]] < positions[b.Sources[j]]
	})
	return nil
}

// Aggregate classifies paths, reads every input through readFile (os.ReadFile
// if nil), groups the inputs into one bundle per test and orders each
// bundle's sources by its order manifest.
//
// Every path is classified before any file is read. Unrecognized paths,
// duplicates, incomplete bundles and manifest lookup failures are each
// reported in full rather than stopping at the first; read failures are
// returned immediately.
func Aggregate(ctx context.Context, paths []string, readFile ReadFileFunc) (*Corpus, error) {
	if readFile == nil {
		readFile = os.ReadFile
	}

	var classified []Classification
	var errs error
	for _, p := range paths {
		c, err := Classify(p)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		if c.Role == Skipped {
			logger.Debugf(ctx, "skipping %s", c.Path)
			continue
		}
		classified = append(classified, c)
	}
	if errs != nil {
		return nil, errs
	}

	a := &aggregator{
		readFile:      readFile,
		bundles:       make(map[string]*Bundle),
		sources:       make(map[string]*Source),
		goldenPaths:   make(map[string][]string),
		manifestPaths: make(map[string][]string),
		sourcePaths:   make(map[string][]string),
	}
	for _, c := range classified {
		logger.Tracef(ctx, "%s: %s of test %s", c.Path, c.Role, c.TestName)
		if err := a.add(c); err != nil {
			return nil, err
		}
	}
	if err := a.duplicates(); err != nil {
		return nil, err
	}

	for _, name := range sortedKeys(a.bundles) {
		b := a.bundles[name]
		if b.GoldenPath == "" && len(b.Sources) == 0 {
			logger.Warningf(ctx, "ignoring %s: test %s has no golden and no fidl files", b.ManifestPath, name)
			delete(a.bundles, name)
		}
	}
	if err := a.completeness(); err != nil {
		return nil, err
	}

	corpus := &Corpus{}
	for _, name := range sortedKeys(a.bundles) {
		b := a.bundles[name]
		errs = multierr.Append(errs, b.order(a.sources))
		corpus.Bundles = append(corpus.Bundles, b)
		logger.Debugf(ctx, "test %s: %d fidl files, golden %s", name, len(b.Sources), b.GoldenPath)
	}
	if errs != nil {
		return nil, errs
	}
	for _, key := range sortedKeys(a.sources) {
		corpus.Sources = append(corpus.Sources, *a.sources[key])
	}

	logger.Tracef(ctx, "corpus: %# v", pretty.Formatter(corpus))
	return corpus, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
