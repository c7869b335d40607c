package pathkit

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPathCompleter_SingleMatch(t *testing.T) {
	dir := t.TempDir()
	os.Mkdir(filepath.Join(dir, "migrations"), 0755)
	os.Mkdir(filepath.Join(dir, "scripts"), 0755)

	c := New(Options{}).NewPathCompleter(true)
	result := c.Next(filepath.Join(dir, "mig"))

	if !strings.Contains(result, "migrations") {
		t.Errorf("expected completion to contain 'migrations', got: %s", result)
	}
	if !strings.HasSuffix(result, string(filepath.Separator)) {
		t.Errorf("expected trailing separator, got: %s", result)
	}
}

func TestPathCompleter_CyclesThroughMatches(t *testing.T) {
	dir := t.TempDir()
	os.Mkdir(filepath.Join(dir, "alpha"), 0755)
	os.Mkdir(filepath.Join(dir, "beta"), 0755)
	os.Mkdir(filepath.Join(dir, "gamma"), 0755)

	c := New(Options{}).NewPathCompleter(true)
	input := dir + string(filepath.Separator)

	r1 := c.Next(input)
	r2 := c.Next(input)
	r3 := c.Next(input)
	r4 := c.Next(input)

	results := []string{r1, r2, r3}
	if r1 == r2 || r2 == r3 {
		t.Errorf("expected cycling through matches, got: %v", results)
	}
	for _, r := range results {
		if !strings.HasPrefix(r, dir) {
			t.Errorf("expected result to start with %s, got: %s", dir, r)
		}
	}
	if r4 != r1 {
		t.Errorf("expected cycle to wrap around, got: %s vs %s", r4, r1)
	}
}

func TestPathCompleter_ResetStopsCycling(t *testing.T) {
	f, mfs := newMemoryFiles(t, Options{})
	mfs.AddDir("/work/alpha")
	mfs.AddDir("/work/beta")

	c := f.NewPathCompleter(true)

	r1 := c.Next("/work/")
	c.Reset()
	r2 := c.Next("/work/")

	assert.Equal(t, r1, r2, "after reset, cycling starts from the beginning")
}

func TestPathCompleter_DirsOnly(t *testing.T) {
	f, mfs := newMemoryFiles(t, Options{})
	mfs.AddDir("/work/subdir")
	mfs.AddFile("/work/file.txt", "data")

	assert.Equal(t, []string{"/work/subdir" + string(os.PathSeparator)}, f.NewPathCompleter(true).Complete("/work/"))
	assert.Equal(t, []string{"/work/file.txt", "/work/subdir" + string(os.PathSeparator)},
		f.NewPathCompleter(false).Complete("/work/"))
}

func TestPathCompleter_EmptyDir(t *testing.T) {
	f, mfs := newMemoryFiles(t, Options{})
	mfs.AddDir("/work/empty")

	c := f.NewPathCompleter(true)
	assert.Equal(t, "/work/empty/", c.Next("/work/empty/"), "no matches leaves input unchanged")
	assert.Equal(t, "/work/nowhere/x", c.Next("/work/nowhere/x"))
}

func TestPathCompleter_CommonPrefixFirst(t *testing.T) {
	f, mfs := newMemoryFiles(t, Options{})
	mfs.AddDir("/work/data1")
	mfs.AddDir("/work/data2")

	c := f.NewPathCompleter(true)
	assert.Equal(t, join("/work", "data"), c.Next("/work/da"))
}

func TestPathCompleter_CaseInsensitivePrefix(t *testing.T) {
	f, mfs := newMemoryFiles(t, Options{})
	mfs.AddFile("/work/README.md", "x")

	got := f.NewPathCompleter(false).Complete("read")
	assert.Equal(t, []string{"README.md"}, got)
}

func TestPathCompleter_SlashStrategy(t *testing.T) {
	f, mfs := newMemoryFiles(t, Options{Separator: SlashStrategy{}})
	mfs.AddFile("/work/assets/tex/wood.png", "png")

	got := f.NewPathCompleter(false).Complete(`assets\tex\wo`)
	assert.Equal(t, []string{join("assets/tex", "wood.png")}, got)
}

func TestPathCompleter_Split(t *testing.T) {
	c := New(Options{}).NewPathCompleter(false)

	tests := []struct {
		input          string
		expectedParent string
		expectedPrefix string
	}{
		{"", "", ""},
		{".", "", ""},
		{"my", "", "my"},
		{"./src/com", "./src", "com"},
		{"./src/", "./src", ""},
		{"./src//", "./src", ""},
		{"/", "/", ""},
	}

	for _, tt := range tests {
		parent, prefix := c.split(tt.input)
		if parent.String() != tt.expectedParent || prefix != tt.expectedPrefix {
			t.Errorf("split(%q) = (%q, %q), want (%q, %q)",
				tt.input, parent, prefix, tt.expectedParent, tt.expectedPrefix)
		}
	}
}

func TestLongestCommonPrefix(t *testing.T) {
	assert.Equal(t, "", longestCommonPrefix(nil))
	assert.Equal(t, "only", longestCommonPrefix([]string{"only"}))
	assert.Equal(t, "data", longestCommonPrefix([]string{"data1", "data2", "database"}))
	assert.Equal(t, "Migrat", longestCommonPrefix([]string{"Migrations", "migrate"}))
	assert.Equal(t, "Mig", longestCommonPrefix([]string{"Migrations", "mIGht"}), "spelling of the first match is kept")
	assert.Equal(t, "", longestCommonPrefix([]string{"alpha", "beta"}))
}
