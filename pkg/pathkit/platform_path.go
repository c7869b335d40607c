package pathkit

import (
	"os"
	"path/filepath"
	"strings"
)

// PlatformPath is a normalized path as the platform filesystem layer
// understands it. Components are split on os.IsPathSeparator.
// The zero value is the empty path.
type PlatformPath struct {
	path string
}

// String returns the path as given to the filesystem.
func (p PlatformPath) String() string { return p.path }

// IsEmpty reports whether the path is the empty string.
func (p PlatformPath) IsEmpty() bool { return p.path == "" }

// IsAbs reports whether the path is absolute.
func (p PlatformPath) IsAbs() bool { return filepath.IsAbs(p.path) }

// Abs resolves the path against the process working directory. The result
// is cleaned; the target does not need to exist.
func (p PlatformPath) Abs() (string, error) {
	return filepath.Abs(p.path)
}

func (p PlatformPath) volumeLen() int {
	return len(filepath.VolumeName(p.path))
}

// lastSep returns the index of the last separator after the volume name, or -1.
func (p PlatformPath) lastSep() int {
	vol := p.volumeLen()
	for i := len(p.path) - 1; i >= vol; i-- {
		if os.IsPathSeparator(p.path[i]) {
			return i
		}
	}
	return -1
}

// Name returns the final component, including any extension.
// A path ending in a separator has an empty name.
func (p PlatformPath) Name() string {
	if i := p.lastSep(); i >= 0 {
		return p.path[i+1:]
	}
	return p.path[p.volumeLen():]
}

// Parent returns the path without its final component and the separators
// before it. Paths without a separator have no parent (""); a root is its
// own parent.
func (p PlatformPath) Parent() string {
	vol := p.volumeLen()
	i := p.lastSep()
	if i < 0 {
		return p.path[:vol]
	}

	j := i
	for j > vol && os.IsPathSeparator(p.path[j-1]) {
		j--
	}
	if j == vol {
		// Keep the root separator: "/" or `C:\`
		return p.path[:vol+1]
	}
	return p.path[:j]
}

// Suffix returns the extension of Name without its leading dot.
// It is absent when Name has no dot, when the only dot leads the name
// (".bashrc"), and for "." and "..".
func (p PlatformPath) Suffix() (string, bool) {
	name := p.Name()
	if name == "." || name == ".." {
		return "", false
	}
	i := strings.LastIndexByte(name, '.')
	if i <= 0 {
		return "", false
	}
	return name[i+1:], true
}

// Stem returns Name with exactly one trailing extension removed.
func (p PlatformPath) Stem() string {
	name := p.Name()
	if suffix, ok := p.Suffix(); ok {
		return name[:len(name)-len(suffix)-1]
	}
	return name
}

// Child appends name as a new final component, keeping the receiver's
// spelling and adding a separator only when one is missing.
func (p PlatformPath) Child(name string) PlatformPath {
	if p.path == "" {
		return PlatformPath{path: name}
	}
	if os.IsPathSeparator(p.path[len(p.path)-1]) {
		return PlatformPath{path: p.path + name}
	}
	return PlatformPath{path: p.path + string(filepath.Separator) + name}
}
