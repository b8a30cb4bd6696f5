// Copyright 2026 The Fuchsia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

//go:build !linux && !darwin

package isatty

// IsTerminalFd always reports false on platforms without termios.
func IsTerminalFd(fd uintptr) bool {
	return false
}
