package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zinzan-vdm/fs-simple/internal/logging"
	"github.com/zinzan-vdm/fs-simple/internal/render"
	"github.com/zinzan-vdm/fs-simple/pkg/fspath"
	"github.com/zinzan-vdm/fs-simple/pkg/fstree"
	"github.com/zinzan-vdm/fs-simple/pkg/storage"
)

var treeCmd = &cobra.Command{
	Use:   "tree <path>",
	Short: "Render a directory subtree",
	Long: `Resolve the subtree rooted at <path> and render it with box-drawing
branches. Directory entries keep the order the filesystem lists them in.

Examples:
  fssimple tree .
  fssimple tree /var/log --long
  fssimple tree ~/src --color never | less`,
	Args: cobra.ExactArgs(1),
	RunE: runTree,
}

func init() {
	rootCmd.AddCommand(treeCmd)

	treeCmd.Flags().BoolP("long", "l", false, "Show size and modification time per file")
}

func runTree(cmd *cobra.Command, args []string) error {
	opts, err := resolveOptions(cmd)
	if err != nil {
		return err
	}

	node, err := resolveRoot(cmd, args[0], opts)
	if err != nil {
		return err
	}

	renderer := render.NewRenderer(opts.color, opts.long)
	fmt.Fprint(cmd.OutOrStdout(), renderer.Tree(node))
	return nil
}

// resolveRoot builds the tree for a path argument using OS storage.
func resolveRoot(cmd *cobra.Command, arg string, opts options) (fstree.Node, error) {
	logger := logging.NewConsoleLoggerTo(cmd.ErrOrStderr(), opts.verbose)
	resolver := fstree.NewResolverWithLogger(storage.NewOS(), logger)
	return resolver.Resolve(cmd.Context(), fspath.New(arg))
}
