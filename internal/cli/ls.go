package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/pathkit/internal/config"
	"github.com/vvka-141/pathkit/pkg/pathkit"
)

var lsFlags struct {
	extensions []string
	ignoreCase bool
	json       bool
}

var lsCmd = &cobra.Command{
	Use:   "ls <folder> --ext <ext>[,<ext>...]",
	Short: "List files in a folder by extension",
	Long: `List the regular files directly inside a folder whose extension is one of
the given extensions. Sub-folders are not descended into. Results are sorted.

Extensions may be written with or without the leading dot. Matching is
case-sensitive unless --ignore-case is given.`,
	Example: `  pathkit ls levels --ext json,yaml
  pathkit ls textures --ext .PNG --ignore-case --json`,
	Args:              requireArgs("<folder>", "levels --ext json", 1, 1),
	ValidArgsFunction: completePaths(true, 1),
	RunE:              runLs,
}

func init() {
	rootCmd.AddCommand(lsCmd)
	lsCmd.Flags().StringSliceVarP(&lsFlags.extensions, "ext", "e", nil, "Extensions to match (repeatable or comma-separated)")
	lsCmd.Flags().BoolVarP(&lsFlags.ignoreCase, "ignore-case", "i", false, "Match extensions case-insensitively")
	lsCmd.Flags().BoolVar(&lsFlags.json, "json", false, "Output as a JSON array")
}

// resetLsFlags restores flag defaults between test runs.
func resetLsFlags() {
	lsFlags.extensions = nil
	lsFlags.ignoreCase = false
	lsFlags.json = false
	if f := lsCmd.Flags().Lookup("ext"); f != nil {
		if sv, ok := f.Value.(interface{ Replace([]string) error }); ok {
			_ = sv.Replace(nil)
		}
		f.Changed = false
	}
}

func runLs(cmd *cobra.Command, args []string) error {
	if len(lsFlags.extensions) == 0 {
		return fmt.Errorf("%w: at least one --ext is required\n\nExample:\n  %s %s",
			pathkit.ErrUsage, cmd.CommandPath(), "levels --ext json")
	}

	s, err := loadSession(cmd, func(cfg *config.Config) {
		if lsFlags.ignoreCase {
			cfg.CaseInsensitiveExtensions = true
		}
	})
	if err != nil {
		return err
	}

	folder := args[0]
	if !s.files.FolderExists(folder) {
		s.logger.Verbose("folder %s does not exist", s.files.Normalize(folder))
	}

	matches, err := s.files.ListFolderFiles(folder, lsFlags.extensions...)
	if err != nil {
		return err
	}

	if lsFlags.json {
		jsonBytes, err := json.MarshalIndent(matches, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(jsonBytes))
		return nil
	}

	for _, m := range matches {
		s.printer.Path(m)
	}
	return nil
}
