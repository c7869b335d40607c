package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var pwdCmd = &cobra.Command{
	Use:   "pwd",
	Short: "Print the current working folder",
	Args:  requireArgs("", "", 0, 0),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSession(cmd, nil)
		if err != nil {
			return err
		}
		wd, err := s.files.CurrentFolder()
		if err != nil {
			return fmt.Errorf("failed to get current folder: %w", err)
		}
		s.printer.Path(wd)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pwdCmd)
}
