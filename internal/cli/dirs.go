package cli

import (
	"github.com/spf13/cobra"

	"github.com/zinzan-vdm/fs-simple/pkg/fstree"
)

var dirsCmd = &cobra.Command{
	Use:   "dirs <path>",
	Short: "List every non-empty directory under a directory",
	Long: `Resolve the subtree rooted at <path> and print the path of every
non-empty directory below it, one per line. The root itself and empty
directories are excluded.

Examples:
  fssimple dirs ./src
  fssimple dirs /var --relative`,
	Args: cobra.ExactArgs(1),
	RunE: runDirs,
}

func init() {
	rootCmd.AddCommand(dirsCmd)

	dirsCmd.Flags().BoolP("relative", "r", false, "Print paths relative to <path>")
}

func runDirs(cmd *cobra.Command, args []string) error {
	opts, err := resolveOptions(cmd)
	if err != nil {
		return err
	}

	node, err := resolveRoot(cmd, args[0], opts)
	if err != nil {
		return err
	}

	printPaths(cmd, fstree.Directories(node), node.Path(), opts.relative)
	return nil
}
