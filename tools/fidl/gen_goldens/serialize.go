// Copyright 2026 The Fuchsia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package goldens

import (
	"embed"
	"fmt"
	"go/token"
	"strings"
	"text/template"

	"go.fuchsia.dev/fuchsia/tools/fidl/lib/fidlgen"
)

//go:embed templates/*
var templates embed.FS

// Backend selects the language of the generated tables.
type Backend string

const (
	// CppBackend emits definitions for the static members of the fidlc
	// test's Goldens class.
	CppBackend Backend = "cpp"
	// GoBackend emits a Go file with one map variable per table.
	GoBackend Backend = "go"
)

var Backends = []Backend{CppBackend, GoBackend}

// Raw string delimiters for the two kinds of blob.
const (
	goldenDelimiter = "JSON"
	sourceDelimiter = "FIDL"
)

var backendTemplates = map[Backend]string{
	CppBackend: "GenerateCppGoldens",
	GoBackend:  "GenerateGoGoldens",
}

func (b *Backend) String() string { return string(*b) }

func (b *Backend) Set(s string) error {
	if _, ok := backendTemplates[Backend(s)]; !ok {
		return fmt.Errorf("unsupported backend %q", s)
	}
	*b = Backend(s)
	return nil
}

// Generator renders a Corpus into a source file for one backend.
type Generator struct {
	*fidlgen.Generator
	backend   Backend
	goPackage string
}

// NewGenerator returns a Generator for backend. goPackage names the package
// of GoBackend output and is ignored otherwise.
func NewGenerator(backend Backend, formatter fidlgen.Formatter, goPackage string) (*Generator, error) {
	if _, ok := backendTemplates[backend]; !ok {
		return nil, fmt.Errorf("unsupported backend %q", backend)
	}
	if backend == GoBackend && !token.IsIdentifier(goPackage) {
		return nil, fmt.Errorf("invalid Go package name %q", goPackage)
	}
	var quote func(string) string
	var raw func(string, string) string
	switch backend {
	case CppBackend:
		quote = fidlgen.CppString
		raw = fidlgen.CppStringExpr
	case GoBackend:
		quote = fidlgen.GoString
		raw = func(s, _ string) string { return fidlgen.GoString(s) }
	}
	funcs := template.FuncMap{
		"Quote": quote,
		"QuoteList": func(ss []string) string {
			quoted := make([]string, len(ss))
			for i, s := range ss {
				quoted[i] = quote(s)
			}
			return strings.Join(quoted, ", ")
		},
		"Golden": func(s string) string { return raw(s, goldenDelimiter) },
		"Fidl":   func(s string) string { return raw(s, sourceDelimiter) },
	}
	return &Generator{
		Generator: fidlgen.NewGenerator("GoldensTemplates", templates, formatter, funcs),
		backend:   backend,
		goPackage: goPackage,
	}, nil
}

type tables struct {
	GoPackage string
	*Corpus
}

// Serialize renders the dependency order, golden and source tables of c.
func (g *Generator) Serialize(c *Corpus) ([]byte, error) {
	return g.Render(backendTemplates[g.backend], tables{g.goPackage, c})
}
