// Package filex holds filesystem helpers for the client's data directory.
package filex

import (
	"fmt"
	"os"
	"path/filepath"
)

// PrivateDirPerm is used for directories holding secrets.
const PrivateDirPerm os.FileMode = 0o700

// EnsureDir creates dir (and parents) with PrivateDirPerm if needed and
// returns its absolute path. It fails when dir exists and is not a
// directory.
func EnsureDir(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", dir, err)
	}

	if err := os.MkdirAll(abs, PrivateDirPerm); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", abs, err)
	}

	return abs, nil
}
