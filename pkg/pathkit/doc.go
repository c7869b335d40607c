// Package pathkit normalizes path strings written with mixed directory
// separators and runs file queries and basic mutations on top of them.
//
// Every operation passes its input through the same two stages, composed once
// in Pipeline.Resolve:
//  1. Normalize: a SeparatorStrategy rewrites separators. The compiled-in
//     NativeStrategy rewrites backslashes to forward slashes on darwin and is
//     the identity everywhere else.
//  2. ToPlatformPath: the normalized string is wrapped in a PlatformPath,
//     which extracts parent, name, stem and suffix.
//
// Basic flow:
//
//	pathkit.FileExists(`assets\textures\wood.png`)
//	pathkit.ListFolderFiles("levels", "json", "yaml")
//	pathkit.CopyFile("a.txt", "backup/a.txt", true)
//
// The package-level functions use Default(), which wraps the OS filesystem.
// Mutations there collapse failures to a boolean. For the underlying error,
// or to swap the filesystem, strategy or logger, build a Files with New:
//
//	files := pathkit.New(pathkit.Options{Separator: pathkit.SlashStrategy{}})
//	err := files.CopyFile(src, dst, pathkit.CopyOptions{Overwrite: true, Verify: true})
//
// Policies:
//   - CopyFile never replaces an existing destination unless Overwrite is set.
//   - ListFolderFiles is non-recursive, lists regular files only, matches
//     extensions case-sensitively unless Options.CaseInsensitiveExtensions is
//     set, and returns sorted paths.
//   - Missing paths are ordinary outcomes: existence checks return false,
//     FileSuffix reports absence, listings come back empty.
package pathkit
