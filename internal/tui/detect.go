package tui

import (
	"io"
	"os"

	"golang.org/x/term"
)

// Mode represents how pathkit renders output.
type Mode int

const (
	// ModePlain is used for CI/CD pipelines, scripts, and piped output.
	ModePlain Mode = iota
	// ModeStyled is used when a human is reading a terminal.
	ModeStyled
)

// EnvPlain forces plain output when set to "1".
const EnvPlain = "PATHKIT_PLAIN"

// fdWriter is implemented by *os.File.
type fdWriter interface {
	Fd() uintptr
}

// DetectMode determines whether output written to out should be styled.
//
// Returns ModePlain if:
//   - PATHKIT_PLAIN=1 is set
//   - CI=true is set (common CI/CD convention)
//   - NO_COLOR is set (accessibility/automation indicator)
//   - out is not a terminal (pipes, files, buffers)
//
// Returns ModeStyled otherwise.
func DetectMode(out io.Writer) Mode {
	// Check environment overrides first
	if os.Getenv(EnvPlain) == "1" {
		return ModePlain
	}
	if os.Getenv("CI") != "" {
		return ModePlain
	}
	if os.Getenv("NO_COLOR") != "" {
		return ModePlain
	}

	f, ok := out.(fdWriter)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return ModePlain
	}

	return ModeStyled
}

// IsStyled is a convenience function that returns true if output to out is styled.
func IsStyled(out io.Writer) bool {
	return DetectMode(out) == ModeStyled
}
