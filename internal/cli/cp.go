package cli

import (
	"github.com/spf13/cobra"

	"github.com/vvka-141/pathkit/pkg/pathkit"
)

var cpFlags struct {
	parents   bool
	overwrite bool
	verify    bool
}

var cpCmd = &cobra.Command{
	Use:   "cp <src> <dst>",
	Short: "Copy a file",
	Long: `Copy the contents of a regular file to a destination path.

An existing destination is never replaced unless --overwrite is given.
Defaults for every flag can be set under "copy:" in pathkit.yaml.`,
	Example: `  pathkit cp levels/one.json backup/levels/one.json --parents
  pathkit cp a.txt b.txt --overwrite --verify`,
	Args:              requireArgs("<src> <dst>", "a.txt backup/a.txt", 2, 2),
	ValidArgsFunction: completePaths(false, 2),
	RunE:              runCp,
}

func init() {
	rootCmd.AddCommand(cpCmd)
	cpCmd.Flags().BoolVarP(&cpFlags.parents, "parents", "p", false, "Create missing destination folders")
	cpCmd.Flags().BoolVar(&cpFlags.overwrite, "overwrite", false, "Replace an existing destination file")
	cpCmd.Flags().BoolVar(&cpFlags.verify, "verify", false, "Compare SHA-256 digests after copying")
}

// resetCpFlags restores flag defaults between test runs.
func resetCpFlags() {
	cpFlags.parents = false
	cpFlags.overwrite = false
	cpFlags.verify = false
	for _, name := range []string{"parents", "overwrite", "verify"} {
		if f := cpCmd.Flags().Lookup(name); f != nil {
			f.Changed = false
		}
	}
}

// resolveCopyOptions prefers explicitly set flags over configured defaults.
func resolveCopyOptions(cmd *cobra.Command, defaults pathkit.CopyOptions) pathkit.CopyOptions {
	opts := defaults
	if cmd.Flags().Changed("parents") {
		opts.CreateDstPath = cpFlags.parents
	}
	if cmd.Flags().Changed("overwrite") {
		opts.Overwrite = cpFlags.overwrite
	}
	if cmd.Flags().Changed("verify") {
		opts.Verify = cpFlags.verify
	}
	return opts
}

func runCp(cmd *cobra.Command, args []string) error {
	s, err := loadSession(cmd, nil)
	if err != nil {
		return err
	}

	src, dst := args[0], args[1]
	opts := resolveCopyOptions(cmd, s.cfg.CopyOptions())
	if err := s.files.CopyFile(src, dst, opts); err != nil {
		return err
	}

	if opts.Verify {
		s.printer.Success("%s → %s (verified)", s.files.Normalize(src), s.files.Normalize(dst))
	} else {
		s.printer.Success("%s → %s", s.files.Normalize(src), s.files.Normalize(dst))
	}
	return nil
}
