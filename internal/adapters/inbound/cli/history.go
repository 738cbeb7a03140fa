package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abdidvp/addonlint/internal/adapters/outbound/history"
)

func newHistoryCmd() *cobra.Command {
	var (
		limit      int
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded validation runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := history.New().Load()
			if err != nil {
				return fmt.Errorf("loading history: %w", err)
			}

			if limit > 0 && len(entries) > limit {
				entries = entries[len(entries)-limit:]
			}

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(entries)
			}

			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no validation runs recorded")
				return nil
			}

			for _, e := range entries {
				line := fmt.Sprintf("%s  %-8s  %s", e.Timestamp.Format("2006-01-02 15:04:05"), e.Status, e.Source)
				if e.Errors > 0 {
					line += fmt.Sprintf("  (%d error(s))", e.Errors)
				}
				if e.Warnings > 0 {
					line += fmt.Sprintf("  (%d warning(s))", e.Warnings)
				}
				if e.CommitHash != "" {
					line += "  @" + e.CommitHash[:8]
				}
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Show only the most recent N runs")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}
