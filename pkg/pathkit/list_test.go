package pathkit

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func join(parts ...string) string {
	out := parts[0]
	for _, p := range parts[1:] {
		out += string(filepath.Separator) + p
	}
	return out
}

func TestListFolderFiles(t *testing.T) {
	f, mfs := newMemoryFiles(t, Options{})
	mfs.AddFile("/work/data/a.txt", "a")
	mfs.AddFile("/work/data/b.md", "b")
	mfs.AddFile("/work/data/c.txt", "c")
	mfs.AddFile("/work/data/nested/d.txt", "d")
	mfs.AddDir("/work/data/folder.txt")
	mfs.AddFile("/work/data/.txt", "hidden")
	mfs.AddFile("/work/data/README", "readme")

	tests := []struct {
		name       string
		extensions []string
		want       []string
	}{
		{
			name:       "single extension",
			extensions: []string{"txt"},
			want:       []string{join("/work/data", "a.txt"), join("/work/data", "c.txt")},
		},
		{
			name:       "leading dot accepted",
			extensions: []string{".md"},
			want:       []string{join("/work/data", "b.md")},
		},
		{
			name:       "several extensions",
			extensions: []string{"md", "txt"},
			want: []string{
				join("/work/data", "a.txt"),
				join("/work/data", "b.md"),
				join("/work/data", "c.txt"),
			},
		},
		{
			name:       "duplicate extensions",
			extensions: []string{"txt", ".txt"},
			want:       []string{join("/work/data", "a.txt"), join("/work/data", "c.txt")},
		},
		{
			name:       "case-sensitive by default",
			extensions: []string{"TXT"},
			want:       []string{},
		},
		{
			name:       "no match",
			extensions: []string{"png"},
			want:       []string{},
		},
		{
			name:       "no extensions",
			extensions: nil,
			want:       []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := f.ListFolderFiles("/work/data", tt.extensions...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestListFolderFiles_CaseInsensitive(t *testing.T) {
	f, mfs := newMemoryFiles(t, Options{CaseInsensitiveExtensions: true})
	mfs.AddFile("/work/img/a.PNG", "a")
	mfs.AddFile("/work/img/b.png", "b")
	mfs.AddFile("/work/img/c.Png", "c")
	mfs.AddFile("/work/img/d.jpg", "d")

	got, err := f.ListFolderFiles("img", "png")
	require.NoError(t, err)
	assert.Equal(t, []string{join("img", "a.PNG"), join("img", "b.png"), join("img", "c.Png")}, got)

	got, err = f.ListFolderFiles("img", ".PNG")
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestListFolderFiles_MissingFolder(t *testing.T) {
	f, mfs := newMemoryFiles(t, Options{})
	mfs.AddFile("/work/file.txt", "x")

	got, err := f.ListFolderFiles("/work/missing", "txt")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	got, err = f.ListFolderFiles("/work/file.txt", "txt")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestListFolderFiles_TrailingSeparatorAndRelative(t *testing.T) {
	f, mfs := newMemoryFiles(t, Options{})
	mfs.AddFile("/work/levels/one.json", "{}")

	got, err := f.ListFolderFiles("levels/", "json")
	require.NoError(t, err)
	assert.Equal(t, []string{"levels/one.json"}, got, "an existing trailing separator is reused")

	got, err = f.ListFolderFiles("levels", "json")
	require.NoError(t, err)
	assert.Equal(t, []string{join("levels", "one.json")}, got)
}

func TestListFolderFiles_SlashStrategy(t *testing.T) {
	f, mfs := newMemoryFiles(t, Options{Separator: SlashStrategy{}})
	mfs.AddFile("/work/levels/one.json", "{}")

	got, err := f.ListFolderFiles(`levels\`, "json")
	require.NoError(t, err)
	assert.Equal(t, []string{"levels/one.json"}, got)
}
