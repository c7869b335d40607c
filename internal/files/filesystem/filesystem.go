package filesystem

import (
	"errors"
	"io"
	"io/fs"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
// This provides compatibility with the fs.FS ecosystem while maintaining
// a stable local type for our abstraction layer.
type FileInfo = fs.FileInfo

// ErrReadOnly is returned by providers that cannot mutate their backing store.
var ErrReadOnly = errors.New("filesystem is read-only")

// FileSystemProvider is the set of primitives the path utilities delegate to.
// Every method receives a path that has already been normalized and converted
// by the caller; providers do not rewrite separators themselves unless their
// backing store requires it.
type FileSystemProvider interface {
	// Stat returns file information for the given path, following symlinks.
	Stat(path string) (FileInfo, error)

	// ReadDir reads the directory entries at the given path, sorted by name.
	// This returns a flat list of entries without descending into subdirectories.
	ReadDir(path string) ([]FileInfo, error)

	// Open opens a file for reading.
	Open(path string) (io.ReadCloser, error)

	// Create opens a file for writing, creating it with perm when missing.
	// When overwrite is false and the file already exists, the returned
	// error satisfies errors.Is(err, fs.ErrExist).
	Create(path string, perm fs.FileMode, overwrite bool) (io.WriteCloser, error)

	// MkdirAll creates a directory and all missing parents.
	MkdirAll(path string, perm fs.FileMode) error

	// Getwd returns the current working directory. Implementations must not cache it.
	Getwd() (string, error)

	// Abs resolves path against the current working directory.
	Abs(path string) (string, error)
}
