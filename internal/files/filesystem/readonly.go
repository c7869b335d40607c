package filesystem

import (
	"fmt"
	"io"
	"io/fs"
	"path"
	"sort"
	"strings"
)

// ReadOnlyFileSystem implements FileSystemProvider over an fs.FS such as an
// embed.FS. The virtual working directory is always "/", which maps to root
// inside the wrapped fs.FS. Mutating methods fail with ErrReadOnly.
type ReadOnlyFileSystem struct {
	fsys fs.FS
	root string // root path within the fs.FS (always uses forward slashes)
}

// NewReadOnlyFileSystem creates a new filesystem provider wrapping fsys.
// The root parameter specifies the subdirectory within fsys to treat as "/".
func NewReadOnlyFileSystem(fsys fs.FS, root string) *ReadOnlyFileSystem {
	// Normalize root path to use forward slashes and remove trailing slash
	root = path.Clean(strings.ReplaceAll(root, "\\", "/"))
	root = strings.TrimPrefix(root, "/")
	if root == "" {
		root = "."
	}
	return &ReadOnlyFileSystem{
		fsys: fsys,
		root: root,
	}
}

// virtual converts p to a clean absolute virtual path.
func (rfs *ReadOnlyFileSystem) virtual(p string) string {
	// Normalize path to forward slashes (explicit replace for cross-platform compatibility)
	p = strings.ReplaceAll(p, "\\", "/")
	return path.Clean("/" + p)
}

// fsPath converts p to a path valid for fs.FS.
func (rfs *ReadOnlyFileSystem) fsPath(p string) string {
	rel := strings.TrimPrefix(rfs.virtual(p), "/")
	if rel == "" {
		return rfs.root
	}
	return path.Join(rfs.root, rel)
}

// Stat implements FileSystemProvider.Stat
func (rfs *ReadOnlyFileSystem) Stat(statPath string) (FileInfo, error) {
	info, err := fs.Stat(rfs.fsys, rfs.fsPath(statPath))
	if err != nil {
		return nil, fmt.Errorf("failed to stat path %s: %w", statPath, err)
	}
	return info, nil
}

// ReadDir implements FileSystemProvider.ReadDir
func (rfs *ReadOnlyFileSystem) ReadDir(dirPath string) ([]FileInfo, error) {
	entries, err := fs.ReadDir(rfs.fsys, rfs.fsPath(dirPath))
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dirPath, err)
	}

	result := make([]FileInfo, 0, len(entries))
	for _, entry := range entries {
		info, err := entry.Info()
		if err != nil {
			return nil, fmt.Errorf("failed to get file info for %s: %w", entry.Name(), err)
		}
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name() < result[j].Name()
	})
	return result, nil
}

// Open implements FileSystemProvider.Open
func (rfs *ReadOnlyFileSystem) Open(filePath string) (io.ReadCloser, error) {
	f, err := rfs.fsys.Open(rfs.fsPath(filePath))
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", filePath, err)
	}
	return f, nil
}

// Create always fails with ErrReadOnly.
func (rfs *ReadOnlyFileSystem) Create(filePath string, perm fs.FileMode, overwrite bool) (io.WriteCloser, error) {
	return nil, &fs.PathError{Op: "open", Path: filePath, Err: ErrReadOnly}
}

// MkdirAll always fails with ErrReadOnly.
func (rfs *ReadOnlyFileSystem) MkdirAll(dirPath string, perm fs.FileMode) error {
	return &fs.PathError{Op: "mkdir", Path: dirPath, Err: ErrReadOnly}
}

// Getwd returns "/", the root of the wrapped fs.FS.
func (rfs *ReadOnlyFileSystem) Getwd() (string, error) {
	return "/", nil
}

// Abs implements FileSystemProvider.Abs
func (rfs *ReadOnlyFileSystem) Abs(p string) (string, error) {
	return rfs.virtual(p), nil
}
