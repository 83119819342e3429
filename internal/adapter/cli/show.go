package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// showCommand creates the show subcommand, which prints the design-system
// context an activated hook would inject right now. Unlike the hook itself it
// writes to stdout, for operators inspecting the shared constraints file.
func showCommand(loader SystemLoader, render, summarize RenderFunc, interactive func() bool) *cobra.Command {
	var summaryOnly bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the current design-system context",
		Long: `Print the design-system context block built from the shared constraints
file, exactly as the hook would inject it. When the file is missing or
unreadable the built-in defaults are shown instead.

Use --summary for a compact per-section overview.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			loaded := loader.Load(cmd.Context())
			out := cmd.OutOrStdout()

			if summaryOnly {
				// Source line only when a human is watching; piped output
				// stays machine-friendly.
				if interactive() {
					fmt.Fprintf(out, "Constraints source: %s\n\n", loaded.Source)
				}
				fmt.Fprint(out, summarize(loaded.System))
				return nil
			}

			fmt.Fprint(out, render(loaded.System))
			return nil
		},
	}

	cmd.Flags().BoolVar(&summaryOnly, "summary", false, "Print a compact per-section summary")

	return cmd
}
