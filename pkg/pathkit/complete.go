package pathkit

import (
	"os"
	"sort"
	"strings"
)

// PathCompleter provides tab-completion and cycling for filesystem paths.
// It tracks state across Tab presses to cycle through matches and is not
// safe for concurrent use.
//
// Usage:
//
//	completer := pathkit.Default().NewPathCompleter(true) // dirs only
//
//	// On Tab press:
//	completed := completer.Next(input.Value())
//	input.SetValue(completed)
//
//	// On any other keypress:
//	completer.Reset()
type PathCompleter struct {
	files      *Files
	dirsOnly   bool
	matches    []string
	cycleIndex int
	lastDir    string
}

// NewPathCompleter creates a completer backed by f.
// If dirsOnly is true, only directories are matched.
func (f *Files) NewPathCompleter(dirsOnly bool) *PathCompleter {
	return &PathCompleter{files: f, dirsOnly: dirsOnly}
}

// Next returns the next completion for the given input.
// On first call (or after the directory part changes), it computes matches.
// On subsequent calls with the same directory, it cycles through matches.
func (c *PathCompleter) Next(input string) string {
	dir, prefix := c.split(input)

	// If the input changed from what we're cycling through, recompute
	if dir.String() != c.lastDir || c.matches == nil {
		c.matches = c.findMatches(dir, prefix)
		c.cycleIndex = 0
		c.lastDir = dir.String()

		if len(c.matches) == 0 {
			return input
		}

		// First Tab: if there's a unique common prefix longer than input, complete it
		if len(c.matches) > 1 {
			candidate := dir.Child(longestCommonPrefix(c.matches)).String()
			if len(candidate) > len(c.files.Normalize(input)) {
				return candidate
			}
		}

		// Single match or common prefix exhausted: return first match
		return c.formatMatch(dir, c.matches[c.cycleIndex])
	}

	// Same directory: cycle to next match
	if len(c.matches) == 0 {
		return input
	}

	c.cycleIndex = (c.cycleIndex + 1) % len(c.matches)
	return c.formatMatch(dir, c.matches[c.cycleIndex])
}

// Reset clears the cycle state. Call this when the user types a non-Tab key.
func (c *PathCompleter) Reset() {
	c.matches = nil
	c.cycleIndex = 0
	c.lastDir = ""
}

// Complete returns every candidate for input without touching cycle state.
// Directories carry a trailing separator.
func (c *PathCompleter) Complete(input string) []string {
	dir, prefix := c.split(input)
	names := c.findMatches(dir, prefix)

	candidates := make([]string, 0, len(names))
	for _, name := range names {
		candidates = append(candidates, c.formatMatch(dir, name))
	}
	return candidates
}

func (c *PathCompleter) findMatches(dir PlatformPath, prefix string) []string {
	listDir := dir.String()
	if dir.IsEmpty() {
		listDir = "."
	}

	infos, err := c.files.fs.ReadDir(listDir)
	if err != nil {
		return nil
	}

	var matches []string
	lowPrefix := strings.ToLower(prefix)

	for _, info := range infos {
		if c.dirsOnly && !info.IsDir() {
			continue
		}

		name := info.Name()
		if strings.HasPrefix(strings.ToLower(name), lowPrefix) {
			matches = append(matches, name)
		}
	}

	sort.Strings(matches)
	return matches
}

func (c *PathCompleter) formatMatch(dir PlatformPath, name string) string {
	result := dir.Child(name)

	// Directories get a trailing separator so the next Tab descends
	if c.files.FolderExists(result.String()) {
		return result.String() + string(os.PathSeparator)
	}
	return result.String()
}

// split splits an input into its directory and the name prefix to complete.
// An empty directory means the working directory.
//
//	"./src/com" → ("./src", "com")
//	"./src/"    → ("./src", "")
//	"my"        → ("", "my")
//	""          → ("", "")
//	"."         → ("", "")
func (c *PathCompleter) split(input string) (dir PlatformPath, prefix string) {
	p := c.files.Resolve(input)
	if p.IsEmpty() || p.String() == "." {
		return PlatformPath{}, ""
	}

	name := p.Name()
	if name == "" {
		// Trailing separator: complete inside the directory itself
		trimmed := strings.TrimRightFunc(p.String(), func(r rune) bool {
			return r < 0x80 && os.IsPathSeparator(uint8(r))
		})
		if trimmed == "" || trimmed == p.String()[:p.volumeLen()] {
			return PlatformPath{path: p.Parent()}, ""
		}
		return PlatformPath{path: trimmed}, ""
	}

	return PlatformPath{path: p.Parent()}, name
}

// longestCommonPrefix finds the longest common prefix among strings (case-insensitive).
func longestCommonPrefix(strs []string) string {
	if len(strs) == 0 {
		return ""
	}
	if len(strs) == 1 {
		return strs[0]
	}

	lowered := make([]string, len(strs))
	for i, s := range strs {
		lowered[i] = strings.ToLower(s)
	}

	first := lowered[0]
	rest := lowered[1:]
	for i := 0; i < len(first); i++ {
		ch := first[i]
		for _, s := range rest {
			if i >= len(s) || s[i] != ch {
				return strs[0][:i]
			}
		}
	}
	return strs[0]
}
