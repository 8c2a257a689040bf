// Package cli implements the fssimple command tree.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/zinzan-vdm/fs-simple/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "fssimple",
	Short: "Inspect directory trees",
	Long: `fssimple resolves a directory subtree into an in-memory tree and
prints it as a styled tree, a file listing, or a directory listing.

Sibling entries are stat'ed concurrently per directory level, so large
trees resolve quickly even on slow filesystems. Resolution is
all-or-nothing: the first failure aborts with the offending path.

Defaults can be set in fssimple.yaml in the working directory, or via
FSSIMPLE_COLOR in the environment (a .env file is honored).`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
	rootCmd.PersistentFlags().String("color", "", "Color mode: auto, always, or never")
}

// options is the merged view of flags, environment, and fssimple.yaml.
// Precedence: flags over environment over file over defaults.
type options struct {
	verbose  bool
	color    bool
	long     bool
	relative bool
}

func resolveOptions(cmd *cobra.Command) (options, error) {
	// A .env file in the working directory can supply FSSIMPLE_* vars.
	_ = godotenv.Load()

	cfg, err := config.Load(".")
	if errors.Is(err, config.ErrConfigNotFound) {
		cfg = &config.Config{}
	} else if err != nil {
		return options{}, fmt.Errorf("failed to load %s: %w", config.ConfigFileName, err)
	}

	colorMode := cfg.Color
	if colorMode == "" {
		colorMode = "auto"
	}
	if env := os.Getenv("FSSIMPLE_COLOR"); env != "" {
		colorMode = env
	}
	if cmd.Flags().Changed("color") {
		colorMode, _ = cmd.Flags().GetString("color")
	}

	enabled, err := colorEnabled(colorMode)
	if err != nil {
		return options{}, err
	}

	verbose, _ := cmd.Flags().GetBool("verbose")

	opts := options{
		verbose:  verbose,
		color:    enabled,
		long:     cfg.Long,
		relative: cfg.Relative,
	}
	if cmd.Flags().Lookup("long") != nil && cmd.Flags().Changed("long") {
		opts.long, _ = cmd.Flags().GetBool("long")
	}
	if cmd.Flags().Lookup("relative") != nil && cmd.Flags().Changed("relative") {
		opts.relative, _ = cmd.Flags().GetBool("relative")
	}
	return opts, nil
}

func colorEnabled(mode string) (bool, error) {
	switch mode {
	case "always":
		return true, nil
	case "never":
		return false, nil
	case "auto":
		return term.IsTerminal(int(os.Stdout.Fd())), nil
	}
	return false, fmt.Errorf("invalid color mode %q (expected auto, always, or never)", mode)
}
