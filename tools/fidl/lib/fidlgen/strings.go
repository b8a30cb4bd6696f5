// Copyright 2020 The Fuchsia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package fidlgen

import (
	"fmt"
	"strconv"
	"strings"
)

// PrintableASCIIRune reports whether r is a printable ASCII rune, i.e. in the
// range 0x20 to 0x7E.
func PrintableASCIIRune(r rune) bool {
	return 0x20 <= r && r <= 0x7e
}

var cppEscapes = map[byte]string{
	'"':  `\"`,
	'\\': `\\`,
	'\n': `\n`,
	'\r': `\r`,
	'\t': `\t`,
}

// CppString formats s as a double-quoted C++ string literal. Control bytes
// use three-digit octal escapes, which unlike \x escapes cannot absorb a
// following character. Bytes at or above 0x80 are copied through so UTF-8
// text stays readable.
func CppString(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		if esc, ok := cppEscapes[c]; ok {
			b.WriteString(esc)
		} else if PrintableASCIIRune(rune(c)) || c >= 0x80 {
			b.WriteByte(c)
		} else {
			fmt.Fprintf(&b, `\%03o`, c)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// maxRawDelimiterLen is the longest d-char-sequence C++ allows.
const maxRawDelimiterLen = 16

// RawDelimiter returns the shortest of delim, delim1, delim2, ... whose
// closing sequence )DELIM" does not occur in s.
func RawDelimiter(s, delim string) string {
	d := delim
	for i := 1; strings.Contains(s, ")"+d+`"`); i++ {
		d = delim + strconv.Itoa(i)
	}
	if len(d) > maxRawDelimiterLen {
		panic(fmt.Sprintf("raw string delimiter %q exceeds %d characters", d, maxRawDelimiterLen))
	}
	return d
}

// CppRawString formats s as a C++ raw string literal R"DELIM(s)DELIM". The
// delimiter is derived from delim so that it never terminates early.
func CppRawString(s, delim string) string {
	d := RawDelimiter(s, delim)
	return `R"` + d + "(" + s + ")" + d + `"`
}

// CppStringExpr returns a C++ expression whose std::string value equals s.
// It is a raw literal as produced by CppRawString when that survives
// compilation intact. Raw literals go through line ending translation and
// const char* conversion stops at the first NUL, so content holding a '\r' or
// a NUL byte becomes an escaped literal with an explicit length instead.
func CppStringExpr(s, delim string) string {
	if !strings.ContainsAny(s, "\r\x00") {
		return CppRawString(s, delim)
	}
	return fmt.Sprintf("std::string(%s, %d)", CppString(s), len(s))
}

// GoString formats s as a double-quoted Go string literal.
func GoString(s string) string {
	return strconv.Quote(s)
}
