package cli

import (
	"bytes"
	"os"
	"testing"
)

// executeCommand runs the root command with args and captures its output.
func executeCommand(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	resetRootFlags()
	resetCpFlags()
	resetLsFlags()
	infoJSON = false

	var outBuf, errBuf bytes.Buffer
	rootCmd.SetOut(&outBuf)
	rootCmd.SetErr(&errBuf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err = rootCmd.Execute()
	return outBuf.String(), errBuf.String(), err
}

// inTempDir changes into a fresh directory with no config, .env or
// PATHKIT_* variables in effect.
func inTempDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	chdirForTest(t, dir)
	for _, key := range []string{"PATHKIT_SEPARATOR", "PATHKIT_IGNORE_CASE", "PATHKIT_VERBOSE", "NO_COLOR"} {
		t.Setenv(key, "")
	}
	return dir
}

// chdirForTest changes the working directory for the duration of the test
// and restores it afterwards (equivalent of testing.T.Chdir, Go 1.24+).
func chdirForTest(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}
