package pathkit

import (
	"errors"

	"github.com/vvka-141/pathkit/internal/files/filesystem"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	err := files.CopyFile(src, dst, pathkit.CopyOptions{})
//	if errors.Is(err, pathkit.ErrDestinationExists) {
//	    // Ask before retrying with Overwrite
//	}
var (
	// ErrEmptyPath indicates an operation received an empty path.
	ErrEmptyPath = errors.New("empty path")

	// ErrSourceNotFound indicates the copy source does not exist.
	ErrSourceNotFound = errors.New("source not found")

	// ErrDestinationExists indicates the copy destination exists and Overwrite was not set.
	ErrDestinationExists = errors.New("destination exists")

	// ErrNotRegularFile indicates a path that must be a regular file is something else.
	ErrNotRegularFile = errors.New("not a regular file")

	// ErrNotDirectory indicates a path that must be a directory is something else.
	ErrNotDirectory = errors.New("not a directory")

	// ErrSameFile indicates the copy source and destination are the same file.
	ErrSameFile = errors.New("source and destination are the same file")

	// ErrVerifyFailed indicates the copied content does not match the source.
	ErrVerifyFailed = errors.New("copy verification failed")

	// ErrReadOnly indicates the configured FileSystem cannot be mutated.
	ErrReadOnly = filesystem.ErrReadOnly

	// ErrUnknownStrategy indicates an unrecognized separator strategy name.
	ErrUnknownStrategy = errors.New("unknown separator strategy")

	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrUsage indicates the CLI was invoked with invalid arguments.
	ErrUsage = errors.New("usage error")
)

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Check for sentinel errors
	switch {
	case errors.Is(err, ErrUsage):
		return ExitUsageError
	case errors.Is(err, ErrInvalidConfig), errors.Is(err, ErrUnknownStrategy):
		return ExitConfigError
	case errors.Is(err, ErrSourceNotFound):
		return ExitNotFound
	case errors.Is(err, ErrDestinationExists):
		return ExitDestinationExists
	case errors.Is(err, ErrNotRegularFile), errors.Is(err, ErrNotDirectory):
		return ExitWrongType
	}

	return ExitGeneralError
}
