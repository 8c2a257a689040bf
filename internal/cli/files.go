package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zinzan-vdm/fs-simple/pkg/fspath"
	"github.com/zinzan-vdm/fs-simple/pkg/fstree"
)

var filesCmd = &cobra.Command{
	Use:   "files <path>",
	Short: "List every file under a directory",
	Long: `Resolve the subtree rooted at <path> and print the path of every file,
one per line. Directories are never printed.

Examples:
  fssimple files ./src
  fssimple files /etc --relative`,
	Args: cobra.ExactArgs(1),
	RunE: runFiles,
}

func init() {
	rootCmd.AddCommand(filesCmd)

	filesCmd.Flags().BoolP("relative", "r", false, "Print paths relative to <path>")
}

func runFiles(cmd *cobra.Command, args []string) error {
	opts, err := resolveOptions(cmd)
	if err != nil {
		return err
	}

	node, err := resolveRoot(cmd, args[0], opts)
	if err != nil {
		return err
	}

	printPaths(cmd, fstree.Files(node), node.Path(), opts.relative)
	return nil
}

// printPaths writes one path per line, optionally relative to root.
func printPaths(cmd *cobra.Command, paths []fspath.Path, root fspath.Path, relative bool) {
	out := cmd.OutOrStdout()
	for _, p := range paths {
		if relative {
			p = p.RelativeTo(root)
		}
		fmt.Fprintln(out, p)
	}
}
