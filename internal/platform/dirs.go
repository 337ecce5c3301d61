package platform

import (
	"os"
	"strings"
)

// DirPerm is the mode used for directories created by EnsureDir.
const DirPerm os.FileMode = 0755

// EnsureDir creates dir and any missing parents. An existing directory is not
// an error. An empty dir is a no-op.
func EnsureDir(dir string) error {
	if dir == "" {
		return nil
	}
	return os.MkdirAll(dir, DirPerm)
}

// Join places name inside dir with a forward slash. Unlike filepath.Join it
// keeps a leading "./" and treats an empty dir as the filesystem root, so the
// result matches what users see echoed on the console.
func Join(dir, name string) string {
	return strings.TrimRight(dir, `/\`) + "/" + name
}
