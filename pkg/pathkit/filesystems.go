package pathkit

import (
	"io/fs"

	"github.com/vvka-141/pathkit/internal/files/filesystem"
)

// MemoryFileSystem is an in-memory FileSystem with a settable working
// directory. Paths use forward slashes and backslashes alike.
type MemoryFileSystem = filesystem.MemoryFileSystem

// NewOSFileSystem returns the FileSystem backed by the host operating system.
// It is what New uses when Options.FileSystem is nil.
func NewOSFileSystem() FileSystem {
	return filesystem.NewOSFileSystem()
}

// NewReadOnlyFileSystem exposes fsys (an embed.FS, os.DirFS, fstest.MapFS)
// as a FileSystem rooted at root. CreatePath and CopyFile into it fail with
// ErrReadOnly.
func NewReadOnlyFileSystem(fsys fs.FS, root string) FileSystem {
	return filesystem.NewReadOnlyFileSystem(fsys, root)
}

// NewMemoryFileSystem returns an empty MemoryFileSystem whose working
// directory is cwd.
func NewMemoryFileSystem(cwd string) *MemoryFileSystem {
	return filesystem.NewMemoryFileSystem(cwd)
}
