package filesystem

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"
	"syscall"
	"time"
)

// memoryFileInfo implements fs.FileInfo for in-memory files
type memoryFileInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
}

func (f *memoryFileInfo) Name() string       { return f.name }
func (f *memoryFileInfo) Size() int64        { return f.size }
func (f *memoryFileInfo) Mode() fs.FileMode  { return f.mode }
func (f *memoryFileInfo) ModTime() time.Time { return f.modTime }
func (f *memoryFileInfo) IsDir() bool        { return f.mode.IsDir() }
func (f *memoryFileInfo) Sys() interface{}   { return nil }

// memoryEntry is one file or directory in the virtual tree
type memoryEntry struct {
	content []byte
	info    *memoryFileInfo
}

// MemoryFileSystem implements FileSystemProvider for in-memory testing.
// Paths use forward slashes; relative paths resolve against the virtual
// working directory. Safe for concurrent use by multiple goroutines.
type MemoryFileSystem struct {
	mu      sync.RWMutex
	entries map[string]*memoryEntry // map of absolute path -> entry
	cwd     string
}

// NewMemoryFileSystem creates a new in-memory filesystem whose working
// directory is cwd. The working directory and its parents are created.
func NewMemoryFileSystem(cwd string) *MemoryFileSystem {
	mfs := &MemoryFileSystem{
		entries: make(map[string]*memoryEntry),
		cwd:     "/",
	}
	mfs.entries["/"] = newDirEntry("/", time.Now())

	cwd = mfs.resolve(cwd)
	mfs.ensureDirectoriesExist(cwd)
	mfs.cwd = cwd
	return mfs
}

func newDirEntry(absPath string, modTime time.Time) *memoryEntry {
	return &memoryEntry{
		info: &memoryFileInfo{
			name:    path.Base(absPath),
			mode:    0755 | fs.ModeDir,
			modTime: modTime,
		},
	}
}

// resolve converts p to a clean absolute virtual path.
func (mfs *MemoryFileSystem) resolve(p string) string {
	p = strings.ReplaceAll(p, `\`, "/")
	if !strings.HasPrefix(p, "/") {
		p = path.Join(mfs.cwd, p)
	}
	return path.Clean(p)
}

// AddFile adds a file to the in-memory filesystem
func (mfs *MemoryFileSystem) AddFile(path string, content string) {
	mfs.AddFileWithTime(path, content, time.Now())
}

// AddFileWithTime adds a file with a specific modification time.
// Missing parent directories are created.
func (mfs *MemoryFileSystem) AddFileWithTime(filePath string, content string, modTime time.Time) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	absPath := mfs.resolve(filePath)
	mfs.ensureDirectoriesExist(path.Dir(absPath))
	mfs.putFile(absPath, []byte(content), 0644, modTime)
}

// AddDir adds a directory and all missing parents.
func (mfs *MemoryFileSystem) AddDir(dirPath string) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	mfs.ensureDirectoriesExist(mfs.resolve(dirPath))
}

// Chdir changes the virtual working directory. The directory must exist.
func (mfs *MemoryFileSystem) Chdir(dir string) error {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	absPath := mfs.resolve(dir)
	entry, exists := mfs.entries[absPath]
	if !exists {
		return &fs.PathError{Op: "chdir", Path: dir, Err: fs.ErrNotExist}
	}
	if !entry.info.IsDir() {
		return &fs.PathError{Op: "chdir", Path: dir, Err: syscall.ENOTDIR}
	}
	mfs.cwd = absPath
	return nil
}

func (mfs *MemoryFileSystem) putFile(absPath string, content []byte, perm fs.FileMode, modTime time.Time) {
	mfs.entries[absPath] = &memoryEntry{
		content: content,
		info: &memoryFileInfo{
			name:    path.Base(absPath),
			size:    int64(len(content)),
			mode:    perm.Perm(),
			modTime: modTime,
		},
	}
}

// ensureDirectoriesExist creates directory entries for dir and all of its
// parents. Existing file entries are left untouched.
func (mfs *MemoryFileSystem) ensureDirectoriesExist(dir string) {
	if _, exists := mfs.entries[dir]; exists {
		return
	}
	if dir != "/" {
		mfs.ensureDirectoriesExist(path.Dir(dir))
	}
	mfs.entries[dir] = newDirEntry(dir, time.Now())
}

// Stat implements FileSystemProvider.Stat
func (mfs *MemoryFileSystem) Stat(statPath string) (FileInfo, error) {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	entry, exists := mfs.entries[mfs.resolve(statPath)]
	if !exists {
		return nil, &fs.PathError{Op: "stat", Path: statPath, Err: fs.ErrNotExist}
	}

	info := *entry.info
	return &info, nil
}

// ReadDir implements FileSystemProvider.ReadDir
func (mfs *MemoryFileSystem) ReadDir(dirPath string) ([]FileInfo, error) {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	absPath := mfs.resolve(dirPath)
	entry, exists := mfs.entries[absPath]
	if !exists {
		return nil, fmt.Errorf("failed to read directory: %w",
			&fs.PathError{Op: "readdir", Path: dirPath, Err: fs.ErrNotExist})
	}
	if !entry.info.IsDir() {
		return nil, fmt.Errorf("failed to read directory: %w",
			&fs.PathError{Op: "readdir", Path: dirPath, Err: syscall.ENOTDIR})
	}

	prefix := absPath + "/"
	if absPath == "/" {
		prefix = "/"
	}

	var result []FileInfo
	for p, child := range mfs.entries {
		if p == absPath || !strings.HasPrefix(p, prefix) {
			continue
		}
		// Direct children only
		if strings.Contains(p[len(prefix):], "/") {
			continue
		}
		info := *child.info
		result = append(result, &info)
	}

	// Sort by name for deterministic order, like os.ReadDir
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name() < result[j].Name()
	})

	return result, nil
}

// Open implements FileSystemProvider.Open
func (mfs *MemoryFileSystem) Open(filePath string) (io.ReadCloser, error) {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	entry, exists := mfs.entries[mfs.resolve(filePath)]
	if !exists {
		return nil, &fs.PathError{Op: "open", Path: filePath, Err: fs.ErrNotExist}
	}
	if entry.info.IsDir() {
		return nil, &fs.PathError{Op: "open", Path: filePath, Err: syscall.EISDIR}
	}

	return io.NopCloser(bytes.NewReader(entry.content)), nil
}

// Create implements FileSystemProvider.Create.
// Content becomes visible when the returned writer is closed.
func (mfs *MemoryFileSystem) Create(filePath string, perm fs.FileMode, overwrite bool) (io.WriteCloser, error) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	absPath := mfs.resolve(filePath)

	parent, exists := mfs.entries[path.Dir(absPath)]
	if !exists {
		return nil, &fs.PathError{Op: "open", Path: filePath, Err: fs.ErrNotExist}
	}
	if !parent.info.IsDir() {
		return nil, &fs.PathError{Op: "open", Path: filePath, Err: syscall.ENOTDIR}
	}

	if existing, exists := mfs.entries[absPath]; exists {
		if existing.info.IsDir() {
			return nil, &fs.PathError{Op: "open", Path: filePath, Err: syscall.EISDIR}
		}
		if !overwrite {
			return nil, &fs.PathError{Op: "open", Path: filePath, Err: fs.ErrExist}
		}
		perm = existing.info.mode
	}

	// Reserve the name so a concurrent non-overwriting Create fails
	mfs.putFile(absPath, nil, perm, time.Now())

	return &memoryWriter{fs: mfs, absPath: absPath, perm: perm}, nil
}

// MkdirAll implements FileSystemProvider.MkdirAll
func (mfs *MemoryFileSystem) MkdirAll(dirPath string, perm fs.FileMode) error {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	absPath := mfs.resolve(dirPath)

	// Every existing component must be a directory
	for p := absPath; ; p = path.Dir(p) {
		if entry, exists := mfs.entries[p]; exists && !entry.info.IsDir() {
			return &fs.PathError{Op: "mkdir", Path: p, Err: syscall.ENOTDIR}
		}
		if p == "/" {
			break
		}
	}

	mfs.ensureDirectoriesExist(absPath)
	return nil
}

// Getwd implements FileSystemProvider.Getwd
func (mfs *MemoryFileSystem) Getwd() (string, error) {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()
	return mfs.cwd, nil
}

// Abs implements FileSystemProvider.Abs
func (mfs *MemoryFileSystem) Abs(p string) (string, error) {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()
	return mfs.resolve(p), nil
}

// memoryWriter buffers writes and commits them on Close
type memoryWriter struct {
	fs      *MemoryFileSystem
	absPath string
	perm    fs.FileMode
	buf     bytes.Buffer
	closed  bool
}

func (w *memoryWriter) Write(p []byte) (int, error) {
	if w.closed {
		return 0, fs.ErrClosed
	}
	return w.buf.Write(p)
}

func (w *memoryWriter) Close() error {
	if w.closed {
		return fs.ErrClosed
	}
	w.closed = true

	w.fs.mu.Lock()
	defer w.fs.mu.Unlock()
	w.fs.putFile(w.absPath, w.buf.Bytes(), w.perm, time.Now())
	return nil
}
