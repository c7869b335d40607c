package pathkit

import (
	"io/fs"

	"github.com/vvka-141/pathkit/internal/checksum"
	"github.com/vvka-141/pathkit/internal/files/filesystem"
	"github.com/vvka-141/pathkit/internal/logging"
)

// FileSystem is the set of primitives Files delegates to. Any type with these
// methods can be supplied through Options.FileSystem.
type FileSystem = filesystem.FileSystemProvider

// Options controls Files behavior. Zero-valued fields select defaults.
type Options struct {
	// FileSystem backs every query and mutation. Defaults to the OS filesystem.
	FileSystem FileSystem
	// Separator selects separator rewriting. Defaults to NativeStrategy.
	Separator SeparatorStrategy
	// Logger receives diagnostics. Defaults to a logger that discards everything.
	Logger Logger
	// CaseInsensitiveExtensions makes ListFolderFiles ignore case when
	// comparing extensions. Matching is case-sensitive otherwise.
	CaseInsensitiveExtensions bool
	// DirPerm is used for directories created by CreatePath. Defaults to DefaultDirPerm.
	DirPerm fs.FileMode
}

// applyDefaults fills zero-valued options with defaults.
func (opts *Options) applyDefaults() {
	if opts.FileSystem == nil {
		opts.FileSystem = filesystem.NewOSFileSystem()
	}
	if opts.Separator == nil {
		opts.Separator = NativeStrategy()
	}
	if opts.Logger == nil {
		opts.Logger = logging.NewNullLogger()
	}
	if opts.DirPerm == 0 {
		opts.DirPerm = DefaultDirPerm
	}
}

// Files runs path queries and mutations through a single Pipeline against a
// FileSystem. Files is immutable after New and safe for concurrent use; the
// filesystem and working directory it observes are shared process state and
// are not synchronized here.
type Files struct {
	fs              FileSystem
	pipeline        Pipeline
	logger          Logger
	caseInsensitive bool
	dirPerm         fs.FileMode
	calculator      checksum.Calculator
}

// New creates a Files instance.
func New(opts Options) *Files {
	opts.applyDefaults()
	return &Files{
		fs:              opts.FileSystem,
		pipeline:        NewPipeline(opts.Separator),
		logger:          opts.Logger,
		caseInsensitive: opts.CaseInsensitiveExtensions,
		dirPerm:         opts.DirPerm,
		calculator:      checksum.New(),
	}
}

// Pipeline returns the normalization pipeline used by f.
func (f *Files) Pipeline() Pipeline { return f.pipeline }

// Resolve normalizes and converts a raw path.
func (f *Files) Resolve(path string) PlatformPath { return f.pipeline.Resolve(path) }

// Normalize rewrites separators using f's strategy.
func (f *Files) Normalize(path string) string { return f.pipeline.Normalize(path) }

// AbsolutePath resolves path against the current working directory.
// The target does not need to exist.
func (f *Files) AbsolutePath(path string) (string, error) {
	return f.fs.Abs(f.Resolve(path).String())
}

// CurrentFolder returns the working directory. It is queried on every call.
func (f *Files) CurrentFolder() (string, error) {
	return f.fs.Getwd()
}

// FileExists reports whether path exists and is a regular file.
func (f *Files) FileExists(path string) bool {
	info, ok := f.stat(path)
	return ok && info.Mode().IsRegular()
}

// FolderExists reports whether path exists and is a directory.
func (f *Files) FolderExists(path string) bool {
	info, ok := f.stat(path)
	return ok && info.IsDir()
}

func (f *Files) stat(path string) (fs.FileInfo, bool) {
	p := f.Resolve(path)
	if p.IsEmpty() {
		return nil, false
	}
	info, err := f.fs.Stat(p.String())
	if err != nil {
		return nil, false
	}
	return info, true
}

// ParentFolder returns the parent component of path, or "" when it has none.
func (f *Files) ParentFolder(path string) string { return f.Resolve(path).Parent() }

// FileName returns the final component of path, including any extension.
func (f *Files) FileName(path string) string { return f.Resolve(path).Name() }

// FileStem returns the final component of path with one extension removed.
func (f *Files) FileStem(path string) string { return f.Resolve(path).Stem() }

// FileSuffix returns the extension of path without its leading dot.
// ok is false when the final component has no extension.
func (f *Files) FileSuffix(path string) (suffix string, ok bool) { return f.Resolve(path).Suffix() }
