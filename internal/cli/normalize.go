package cli

import (
	"github.com/spf13/cobra"
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize <path>...",
	Short: "Print paths after separator normalization",
	Long: `Print each argument after the configured separator strategy has been
applied, one per line. No filesystem access takes place.`,
	Example: `  pathkit normalize 'assets\textures\wood.png'
  pathkit normalize --separator slash 'a\b' 'c/d'`,
	Args:              requireArgs("<path>", `'assets\textures\wood.png'`, 1, -1),
	ValidArgsFunction: completePaths(false, -1),
	RunE:              runNormalize,
}

func init() {
	rootCmd.AddCommand(normalizeCmd)
}

func runNormalize(cmd *cobra.Command, args []string) error {
	s, err := loadSession(cmd, nil)
	if err != nil {
		return err
	}
	for _, arg := range args {
		s.printer.Path(s.files.Normalize(arg))
	}
	return nil
}
