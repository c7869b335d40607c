package pathkit

import (
	"errors"
	"fmt"
	"testing"
	"testing/fstest"

	"github.com/vvka-141/pathkit/internal/files/filesystem"
)

func TestExitCodeForError_NilError(t *testing.T) {
	code := ExitCodeForError(nil)
	if code != ExitSuccess {
		t.Errorf("ExitCodeForError(nil) = %d, want %d", code, ExitSuccess)
	}
}

func TestExitCodeForError_SentinelErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"ErrUsage", ErrUsage, ExitUsageError},
		{"ErrInvalidConfig", ErrInvalidConfig, ExitConfigError},
		{"ErrUnknownStrategy", ErrUnknownStrategy, ExitConfigError},
		{"ErrSourceNotFound", ErrSourceNotFound, ExitNotFound},
		{"ErrDestinationExists", ErrDestinationExists, ExitDestinationExists},
		{"ErrNotRegularFile", ErrNotRegularFile, ExitWrongType},
		{"ErrNotDirectory", ErrNotDirectory, ExitWrongType},
		{"ErrEmptyPath", ErrEmptyPath, ExitGeneralError},
		{"ErrSameFile", ErrSameFile, ExitGeneralError},
		{"ErrVerifyFailed", ErrVerifyFailed, ExitGeneralError},
		{"ErrReadOnly", ErrReadOnly, ExitGeneralError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code := ExitCodeForError(tt.err)
			if code != tt.expected {
				t.Errorf("ExitCodeForError(%v) = %d, want %d", tt.err, code, tt.expected)
			}
		})
	}
}

func TestExitCodeForError_WrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("copy a.txt to b.txt: %w", ErrDestinationExists)
	if code := ExitCodeForError(wrapped); code != ExitDestinationExists {
		t.Errorf("ExitCodeForError(wrapped) = %d, want %d", code, ExitDestinationExists)
	}

	doubleWrapped := fmt.Errorf("cp: %w", fmt.Errorf("copy: %w", ErrSourceNotFound))
	if code := ExitCodeForError(doubleWrapped); code != ExitNotFound {
		t.Errorf("ExitCodeForError(doubleWrapped) = %d, want %d", code, ExitNotFound)
	}
}

func TestExitCodeForError_UnknownError(t *testing.T) {
	if code := ExitCodeForError(errors.New("boom")); code != ExitGeneralError {
		t.Errorf("ExitCodeForError(unknown) = %d, want %d", code, ExitGeneralError)
	}
}

func TestErrReadOnly_MatchesFilesystemSentinel(t *testing.T) {
	err := New(Options{FileSystem: NewReadOnlyFileSystem(fstest.MapFS{}, ".")}).CreatePath("/x")
	if !errors.Is(err, filesystem.ErrReadOnly) || !errors.Is(err, ErrReadOnly) {
		t.Errorf("CreatePath on a read-only filesystem = %v, want ErrReadOnly", err)
	}
}
