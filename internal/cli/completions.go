package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/vvka-141/pathkit/pkg/pathkit"
)

// separatorNames contains valid separator strategies for shell completion.
var separatorNames = []string{pathkit.StrategyAuto, pathkit.StrategySlash, pathkit.StrategyPassthrough}

// completeSeparators provides shell completion for --separator values.
func completeSeparators(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var matches []string
	for _, name := range separatorNames {
		if strings.HasPrefix(name, toComplete) {
			matches = append(matches, name)
		}
	}
	return matches, cobra.ShellCompDirectiveNoFileComp
}

// completePaths returns a completion function that resolves the partial
// argument through the configured pipeline. Completion stops after maxArgs
// positional arguments; maxArgs < 0 means no limit.
func completePaths(dirsOnly bool, maxArgs int) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if maxArgs >= 0 && len(args) >= maxArgs {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}

		s, err := loadSession(cmd, nil)
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}

		candidates := s.files.NewPathCompleter(dirsOnly).Complete(toComplete)
		// Directories end in a separator; keep the cursor there so the user can descend
		return candidates, cobra.ShellCompDirectiveNoSpace | cobra.ShellCompDirectiveNoFileComp
	}
}
