// Copyright 2021 The Fuchsia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package fidlgen

import (
	"bytes"
	"os"
	"path/filepath"
)

// WriteFileIfChanged overwrites filename with contents unless the file
// already has those contents. The new contents are written to a temporary
// file in the same directory and renamed into place, so readers never observe
// a partially written file.
func WriteFileIfChanged(filename string, contents []byte) error {
	if current, err := os.ReadFile(filename); err == nil {
		if bytes.Equal(current, contents) {
			return nil
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, os.FileMode(0777)); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(filename)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(contents); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(os.FileMode(0644)); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), filename)
}
