package pathkit

import "sync/atomic"

var defaultFiles atomic.Pointer[Files]

func init() {
	defaultFiles.Store(New(Options{}))
}

// Default returns the Files instance behind the package-level functions.
// It uses the OS filesystem, NativeStrategy and a discarding logger unless
// replaced with SetDefault.
func Default() *Files {
	return defaultFiles.Load()
}

// SetDefault replaces the instance behind the package-level functions.
// A nil f restores the built-in default.
func SetDefault(f *Files) {
	if f == nil {
		f = New(Options{})
	}
	defaultFiles.Store(f)
}

// AbsolutePath resolves path against the current working directory.
// It returns "" when the working directory cannot be determined.
func AbsolutePath(path string) string {
	f := Default()
	abs, err := f.AbsolutePath(path)
	if err != nil {
		f.logger.Error("absolute path %s: %v", path, err)
		return ""
	}
	return abs
}

// CurrentFolder returns the process working directory, or "" on failure.
func CurrentFolder() string {
	f := Default()
	wd, err := f.CurrentFolder()
	if err != nil {
		f.logger.Error("current folder: %v", err)
		return ""
	}
	return wd
}

// FileExists reports whether path exists and is a regular file.
func FileExists(path string) bool { return Default().FileExists(path) }

// FolderExists reports whether path exists and is a directory.
func FolderExists(path string) bool { return Default().FolderExists(path) }

// ParentFolder returns the parent component of path, or "" when it has none.
func ParentFolder(path string) string { return Default().ParentFolder(path) }

// FileName returns the final component of path.
func FileName(path string) string { return Default().FileName(path) }

// FileStem returns the final component of path with one extension removed.
func FileStem(path string) string { return Default().FileStem(path) }

// FileSuffix returns the extension of path without its leading dot.
func FileSuffix(path string) (string, bool) { return Default().FileSuffix(path) }

// CreatePath ensures every directory of path exists and reports success.
// The underlying error goes to the default Logger.
func CreatePath(path string) bool {
	f := Default()
	if err := f.CreatePath(path); err != nil {
		f.logger.Error("%v", err)
		return false
	}
	return true
}

// CopyFile copies src to dst and reports success. An existing destination
// is never overwritten. When createDstPath is true the destination's parent
// directories are created first. The underlying error goes to the default Logger.
func CopyFile(src, dst string, createDstPath bool) bool {
	f := Default()
	if err := f.CopyFile(src, dst, CopyOptions{CreateDstPath: createDstPath}); err != nil {
		f.logger.Error("%v", err)
		return false
	}
	return true
}

// ListFolderFiles returns the files directly inside folder whose extension
// is one of extensions. Read failures yield an empty result.
func ListFolderFiles(folder string, extensions ...string) []string {
	f := Default()
	matches, err := f.ListFolderFiles(folder, extensions...)
	if err != nil {
		f.logger.Error("%v", err)
	}
	return matches
}
