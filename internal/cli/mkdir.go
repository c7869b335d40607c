package cli

import (
	"github.com/spf13/cobra"
)

var mkdirCmd = &cobra.Command{
	Use:   "mkdir <path>...",
	Short: "Create folders and any missing parents",
	Long: `Create every directory component of each path. Existing folders are left
alone; a path that names an existing file fails.`,
	Example: `  pathkit mkdir build/out/logs
  pathkit mkdir --separator slash 'cache\textures'`,
	Args:              requireArgs("<path>", "build/out/logs", 1, -1),
	ValidArgsFunction: completePaths(true, -1),
	RunE:              runMkdir,
}

func init() {
	rootCmd.AddCommand(mkdirCmd)
}

func runMkdir(cmd *cobra.Command, args []string) error {
	s, err := loadSession(cmd, nil)
	if err != nil {
		return err
	}
	for _, arg := range args {
		if err := s.files.CreatePath(arg); err != nil {
			return err
		}
		s.printer.Success("%s", s.files.Normalize(arg))
	}
	return nil
}
