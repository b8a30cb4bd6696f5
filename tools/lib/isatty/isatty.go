// Copyright 2026 The Fuchsia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package isatty reports whether a file descriptor refers to a terminal.
package isatty

import "os"

// IsTerminal reports whether stdout is attached to a terminal.
func IsTerminal() bool {
	return IsTerminalFd(os.Stdout.Fd())
}
