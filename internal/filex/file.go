// Package filex contains filesystem helpers.
package filex

import (
	"fmt"
	"os"
	"path/filepath"
)

const profileDirMode = 0o700

// EnsureParentDir creates the directory that will hold path, so a database
// or credentials file can be opened there. Paths without a directory part
// resolve against the working directory and need no work.
func EnsureParentDir(path string) (string, error) {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return path, nil
	}

	if err := os.MkdirAll(dir, profileDirMode); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}

	return path, nil
}
