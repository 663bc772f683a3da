// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package axis

import (
	"bytes"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGofmt tests that all files are formatted.
func TestGofmt(t *testing.T) {
	if _, err := exec.LookPath("gofmt"); err != nil {
		t.Skip("gofmt not found")
	}
	root, fileMap := copyTree(t)

	gofmt := exec.Command("gofmt", "-w", ".")
	gofmt.Dir = root
	gofmt.Stdout, gofmt.Stderr = os.Stdout, os.Stderr
	require.NoError(t, gofmt.Run(), "gofmt failed")

	// Diff the trees.
	for orig, formatted := range fileMap {
		want, err := os.ReadFile(orig)
		require.NoError(t, err)
		got, err := os.ReadFile(formatted)
		require.NoError(t, err)
		assert.Truef(t, bytes.Equal(want, got), "%s is not gofmt clean. Please run gofmt.", orig)
	}
}

// copyTree copies the module's Go files into a temporary directory
// and returns it with a map from each source file to its copy.
func copyTree(t *testing.T) (string, map[string]string) {
	src, err := os.Getwd()
	require.NoError(t, err)
	src = filepath.Clean(src) + string(filepath.Separator)
	dst := t.TempDir()

	fileMap := make(map[string]string)
	err = filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel := strings.TrimPrefix(path, src)
		if d.IsDir() {
			// Reference material is not part of the module.
			if n := d.Name(); n == ".git" || strings.HasPrefix(n, "_") || n == "testdata" {
				return filepath.SkipDir
			}
			if rel == "" {
				return nil
			}
			return os.Mkdir(filepath.Join(dst, rel), 0777)
		}
		if filepath.Ext(path) != ".go" {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		fileMap[path] = filepath.Join(dst, rel)
		return os.WriteFile(fileMap[path], data, 0666)
	})
	require.NoError(t, err, "copying source tree")
	t.Logf("copied source tree to %s", dst)
	return dst, fileMap
}
