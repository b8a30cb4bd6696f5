// Copyright 2026 The Fuchsia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package goldens collects the fixtures of the fidlc golden tests (FIDL
// files, JSON IR goldens and order.txt manifests) into per-test bundles and
// renders them as static tables for a test binary that cannot read the
// fixtures from disk.
package goldens
