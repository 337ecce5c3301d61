package scaffold

import "fmt"

// FilesystemError reports a directory that could not be created.
type FilesystemError struct {
	Path string
	Err  error
}

func (e *FilesystemError) Error() string {
	return fmt.Sprintf("unable to create directory %s: %v", e.Path, e.Err)
}

func (e *FilesystemError) Unwrap() error { return e.Err }

// IOError reports a generated file that could not be opened, written or closed.
type IOError struct {
	Op   string // "open", "write" or "close"
	Path string
	Err  error
}

func (e *IOError) Error() string {
	if e.Op == "open" {
		return fmt.Sprintf("unable to open %s for writing: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }
