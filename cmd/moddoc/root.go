package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

const version = "0.3.0"

type docOptions struct {
	Entry     string
	JSON      bool
	Filter    string
	Private   bool
	ImportMap string
	Reload    bool
	NoColor   bool
}

func newRootCommand(logger *log.Logger) *cobra.Command {
	var opts docOptions
	var builtin bool
	var verbose bool

	cmd := &cobra.Command{
		Use:   "moddoc [entry]",
		Short: "Generate documentation for TypeScript and JavaScript modules",
		Long: `moddoc resolves the dependency graph reachable from an entry point,
extracts every exported declaration with its documentation comment, and
renders the symbol tree as text or JSON.

With no entry (or with --builtin) the built-in declarations are documented.`,
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			if verbose {
				logger.SetLevel(log.DebugLevel)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 && !builtin {
				opts.Entry = args[0]
			}
			return runDoc(cmd.Context(), opts, logger)
		},
	}

	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Output documentation as JSON")
	cmd.Flags().StringVar(&opts.Filter, "filter", "", "Dotted-path name to filter the symbol tree by")
	cmd.Flags().BoolVar(&opts.Private, "private", false, "Include non-exported declarations")
	cmd.Flags().StringVar(&opts.ImportMap, "import-map", "", "Path to an import map file")
	cmd.Flags().BoolVar(&opts.Reload, "reload", false, "Bypass the remote module cache")
	cmd.Flags().BoolVar(&opts.NoColor, "no-color", false, "Disable ANSI styling")
	cmd.Flags().BoolVar(&builtin, "builtin", false, "Document the built-in declarations")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(newServeCommand(logger))
	return cmd
}

// useColor reports whether text output should carry ANSI styling.
func useColor(noColorFlag bool) bool {
	if noColorFlag || os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}
