package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var infoJSON bool

var infoCmd = &cobra.Command{
	Use:   "info <path>",
	Short: "Show how a path resolves and what it points to",
	Long: `Show the normalized form of a path, its absolute form, its parent, name,
stem and suffix, and whether it exists as a file or a folder.

The path does not need to exist.`,
	Example: `  pathkit info ./levels/one.json
  pathkit info 'assets\wood.png' --json`,
	Args:              requireArgs("<path>", "./levels/one.json", 1, 1),
	ValidArgsFunction: completePaths(false, 1),
	RunE:              runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
	infoCmd.Flags().BoolVar(&infoJSON, "json", false, "Output as JSON")
}

// pathInfo is the JSON form of the info command's output.
type pathInfo struct {
	Input      string  `json:"input"`
	Normalized string  `json:"normalized"`
	Absolute   string  `json:"absolute"`
	Parent     string  `json:"parent"`
	Name       string  `json:"name"`
	Stem       string  `json:"stem"`
	Suffix     *string `json:"suffix"`
	IsFile     bool    `json:"is_file"`
	IsFolder   bool    `json:"is_folder"`
	Strategy   string  `json:"strategy"`
}

func runInfo(cmd *cobra.Command, args []string) error {
	s, err := loadSession(cmd, nil)
	if err != nil {
		return err
	}

	files := s.files
	input := args[0]
	abs, err := files.AbsolutePath(input)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", input, err)
	}

	info := pathInfo{
		Input:      input,
		Normalized: files.Normalize(input),
		Absolute:   abs,
		Parent:     files.ParentFolder(input),
		Name:       files.FileName(input),
		Stem:       files.FileStem(input),
		IsFile:     files.FileExists(input),
		IsFolder:   files.FolderExists(input),
		Strategy:   files.Pipeline().Strategy().Name(),
	}
	if suffix, ok := files.FileSuffix(input); ok {
		info.Suffix = &suffix
	}

	if infoJSON {
		jsonBytes, err := json.MarshalIndent(info, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(jsonBytes))
		return nil
	}

	p := s.printer
	orNone := func(v string) string {
		if v == "" {
			return p.Missing()
		}
		return v
	}
	p.Field("input", info.Input)
	p.Field("strategy", info.Strategy)
	p.Field("normalized", info.Normalized)
	p.Field("absolute", info.Absolute)
	p.Field("parent", orNone(info.Parent))
	p.Field("name", orNone(info.Name))
	p.Field("stem", orNone(info.Stem))
	if info.Suffix != nil {
		p.Field("suffix", *info.Suffix)
	} else {
		p.Field("suffix", p.Missing())
	}
	p.Field("file", p.YesNo(info.IsFile))
	p.Field("folder", p.YesNo(info.IsFolder))
	return nil
}
