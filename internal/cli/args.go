package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/pathkit/pkg/pathkit"
)

// requireArgs validates the number of positional arguments. max < 0 means
// no upper bound. Errors wrap pathkit.ErrUsage and include usage and an example.
func requireArgs(placeholder, example string, min, max int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) < min {
			return fmt.Errorf(`%w: missing required argument: %s

Usage: %s

Example:
  %s %s`, pathkit.ErrUsage, placeholder, cmd.UseLine(), cmd.CommandPath(), example)
		}
		if max >= 0 && len(args) > max {
			return fmt.Errorf("%w: accepts at most %d arg(s), received %d", pathkit.ErrUsage, max, len(args))
		}
		return nil
	}
}
