package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// historyCommand creates the history subcommand, listing recently recorded
// injections from the audit store.
func historyCommand(lister HistoryLister) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recently recorded context injections",
		Long: `List context injections recorded by the hook, newest first.

Requires the audit store (store.enabled: true in ctxhook.yaml). The store is
off by default; without it the hook keeps no record of its activations.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if lister == nil {
				return errors.New("injection store is disabled; set store.enabled: true to record injections")
			}

			records, err := lister.RecentInjections(cmd.Context(), limit)
			if err != nil {
				return fmt.Errorf("list injections: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(records) == 0 {
				fmt.Fprintln(out, "No injections recorded.")
				return nil
			}

			for _, r := range records {
				fmt.Fprintf(out, "%s  %-24s  %s\n",
					r.CreatedAt.UTC().Format(time.RFC3339), r.ToolName, r.Source)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of records to list")

	return cmd
}
