package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vvka-141/pathkit/pkg/pathkit"
)

var rootCmd = &cobra.Command{
	Use:   "pathkit",
	Short: "Inspect and manipulate paths the way pathkit resolves them",
	Long: `pathkit runs paths through the same normalization pipeline a host
application uses: separators are rewritten by the configured strategy, then
the result is handed to the platform filesystem layer.

Use it to see what a path with mixed separators resolves to, or to run the
library's file operations from a shell.

Configuration is read from ./pathkit.yaml (or --config), then PATHKIT_*
environment variables, then flags. A .env file in the working directory is
loaded first when present.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration
  20 - Source path not found
  21 - Copy destination already exists
  22 - Path is not the expected kind (file vs directory)`,
	SilenceUsage: true,
}

var rootFlags struct {
	verbose    bool
	configPath string
	envFile    string
	separator  string
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo(rootCmd)
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&rootFlags.verbose, "verbose", "v", false, "Enable verbose output for all commands")
	rootCmd.PersistentFlags().StringVar(&rootFlags.configPath, "config", "", "Path to a pathkit.yaml config file")
	rootCmd.PersistentFlags().StringVar(&rootFlags.envFile, "env-file", "", "Load environment variables from this file instead of .env")
	rootCmd.PersistentFlags().StringVar(&rootFlags.separator, "separator", "",
		fmt.Sprintf("Separator strategy: %s, %s or %s", pathkit.StrategyAuto, pathkit.StrategySlash, pathkit.StrategyPassthrough))

	_ = rootCmd.RegisterFlagCompletionFunc("separator", completeSeparators)

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", pathkit.ErrUsage, err)
	})
}

// resetRootFlags restores flag defaults between test runs.
func resetRootFlags() {
	rootFlags.verbose = false
	rootFlags.configPath = ""
	rootFlags.envFile = ""
	rootFlags.separator = ""
}
