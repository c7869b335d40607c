// Package filesystem provides filesystem abstraction interfaces and implementations.
//
// This package defines the primitives that pathkit's leaf operations delegate
// to, enabling testability through in-memory implementations while maintaining
// compatibility with the OS filesystem.
//
// Key types:
//   - FileSystemProvider: Stat, ReadDir, Open, Create, MkdirAll, Getwd, Abs
//   - FileInfo: File metadata, an alias of fs.FileInfo
//
// Implementations:
//   - OSFileSystem: Production implementation using the OS filesystem
//   - MemoryFileSystem: In-memory implementation for testing
//   - ReadOnlyFileSystem: Read-only view over any fs.FS (embed.FS, fstest.MapFS)
package filesystem
