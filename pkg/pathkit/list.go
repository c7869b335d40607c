package pathkit

import (
	"fmt"
	"sort"
	"strings"
)

// ListFolderFiles returns the regular files directly inside folder whose
// extension is one of extensions. Extensions may be given with or without
// the leading dot. Results are folder joined with the entry name, sorted.
//
// A missing folder, a folder that is not a directory, or no matches yield an
// empty slice and a nil error.
func (f *Files) ListFolderFiles(folder string, extensions ...string) ([]string, error) {
	matches := []string{}

	want := f.extensionSet(extensions)
	if len(want) == 0 {
		return matches, nil
	}

	dir := f.Resolve(folder)
	if !f.FolderExists(dir.String()) {
		return matches, nil
	}

	infos, err := f.fs.ReadDir(dir.String())
	if err != nil {
		return matches, fmt.Errorf("list %s: %w", dir, err)
	}

	for _, info := range infos {
		if !info.Mode().IsRegular() {
			continue
		}
		suffix, ok := PlatformPath{path: info.Name()}.Suffix()
		if !ok {
			continue
		}
		if _, hit := want[f.extensionKey(suffix)]; hit {
			matches = append(matches, dir.Child(info.Name()).String())
		}
	}

	sort.Strings(matches)
	return matches, nil
}

func (f *Files) extensionSet(extensions []string) map[string]struct{} {
	set := make(map[string]struct{}, len(extensions))
	for _, ext := range extensions {
		set[f.extensionKey(strings.TrimPrefix(ext, "."))] = struct{}{}
	}
	return set
}

func (f *Files) extensionKey(ext string) string {
	if f.caseInsensitive {
		return strings.ToLower(ext)
	}
	return ext
}
