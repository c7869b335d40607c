package pathkit

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"syscall"
)

// CopyOptions controls CopyFile.
type CopyOptions struct {
	// CreateDstPath creates the destination's parent directories first.
	CreateDstPath bool
	// Overwrite replaces an existing destination file. Without it, an
	// existing destination fails with ErrDestinationExists.
	Overwrite bool
	// Verify re-reads the destination and compares its SHA-256 digest with the source.
	Verify bool
}

// CreatePath ensures every directory component of path exists.
// It succeeds when the directory already exists.
func (f *Files) CreatePath(path string) error {
	p := f.Resolve(path)
	if p.IsEmpty() {
		return fmt.Errorf("create path: %w", ErrEmptyPath)
	}

	if info, err := f.fs.Stat(p.String()); err == nil {
		if info.IsDir() {
			return nil
		}
		return fmt.Errorf("create path %s: %w", p, ErrNotDirectory)
	}

	f.logger.Verbose("creating path %s", p)
	if err := f.fs.MkdirAll(p.String(), f.dirPerm); err != nil {
		// A file somewhere above p blocks the walk.
		if errors.Is(err, syscall.ENOTDIR) {
			return fmt.Errorf("create path %s: %w: %w", p, ErrNotDirectory, err)
		}
		return fmt.Errorf("create path %s: %w", p, err)
	}
	return nil
}

// CopyFile copies the contents of the regular file src to dst.
//
// An existing destination is never replaced unless opts.Overwrite is set.
// New destinations get the source's permission bits. A failed copy may leave
// a partial destination behind.
func (f *Files) CopyFile(src, dst string, opts CopyOptions) error {
	srcPath := f.Resolve(src)
	dstPath := f.Resolve(dst)
	if srcPath.IsEmpty() || dstPath.IsEmpty() {
		return fmt.Errorf("copy %q to %q: %w", srcPath, dstPath, ErrEmptyPath)
	}

	srcInfo, err := f.fs.Stat(srcPath.String())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("copy %s: %w", srcPath, ErrSourceNotFound)
		}
		return fmt.Errorf("copy %s: %w", srcPath, err)
	}
	if !srcInfo.Mode().IsRegular() {
		return fmt.Errorf("copy %s: source: %w", srcPath, ErrNotRegularFile)
	}

	if opts.CreateDstPath {
		if parent := dstPath.Parent(); parent != "" {
			if err := f.CreatePath(parent); err != nil {
				return fmt.Errorf("copy %s to %s: %w", srcPath, dstPath, err)
			}
		}
	}

	if dstInfo, err := f.fs.Stat(dstPath.String()); err == nil {
		if !dstInfo.Mode().IsRegular() {
			return fmt.Errorf("copy %s to %s: destination: %w", srcPath, dstPath, ErrNotRegularFile)
		}
		if f.sameFile(srcPath, dstPath, srcInfo, dstInfo) {
			return fmt.Errorf("copy %s to %s: %w", srcPath, dstPath, ErrSameFile)
		}
		if !opts.Overwrite {
			return fmt.Errorf("copy %s to %s: %w", srcPath, dstPath, ErrDestinationExists)
		}
	}

	f.logger.Verbose("copying %s to %s", srcPath, dstPath)
	digest, err := f.copyContents(srcPath, dstPath, srcInfo.Mode().Perm(), opts)
	if err != nil {
		return fmt.Errorf("copy %s to %s: %w", srcPath, dstPath, err)
	}

	if opts.Verify {
		if err := f.verify(dstPath, digest); err != nil {
			return fmt.Errorf("copy %s to %s: %w", srcPath, dstPath, err)
		}
	}
	return nil
}

// copyContents streams src into dst. When opts.Verify is set it returns the
// SHA-256 digest of the bytes read from src.
func (f *Files) copyContents(src, dst PlatformPath, perm fs.FileMode, opts CopyOptions) (digest string, err error) {
	in, err := f.fs.Open(src.String())
	if err != nil {
		return "", err
	}
	defer in.Close()

	out, err := f.fs.Create(dst.String(), perm, opts.Overwrite)
	if err != nil {
		// Lost a race with another writer after the existence check
		if errors.Is(err, fs.ErrExist) {
			return "", ErrDestinationExists
		}
		return "", err
	}
	defer func() {
		if closeErr := out.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	if opts.Verify {
		return f.calculator.CalculateReader(io.TeeReader(in, out))
	}
	_, err = io.Copy(out, in)
	return "", err
}

func (f *Files) verify(dst PlatformPath, want string) error {
	r, err := f.fs.Open(dst.String())
	if err != nil {
		return err
	}
	defer r.Close()

	got, err := f.calculator.CalculateReader(r)
	if err != nil {
		return err
	}
	if got != want {
		return fmt.Errorf("%w: sha256 %s, want %s", ErrVerifyFailed, got, want)
	}
	return nil
}

func (f *Files) sameFile(src, dst PlatformPath, srcInfo, dstInfo fs.FileInfo) bool {
	// os.SameFile only understands infos produced by the os package
	if os.SameFile(srcInfo, dstInfo) {
		return true
	}
	srcAbs, err := f.fs.Abs(src.String())
	if err != nil {
		return false
	}
	dstAbs, err := f.fs.Abs(dst.String())
	if err != nil {
		return false
	}
	return srcAbs == dstAbs
}
