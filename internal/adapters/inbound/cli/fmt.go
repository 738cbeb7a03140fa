package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abdidvp/addonlint/internal/application"
)

func newFmtCmd() *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:   "fmt <file|->",
		Short: "Pretty-print a manifest with two-space indentation",
		Long: "Re-serialize a JSON manifest with two-space indentation. Input that is\n" +
			"not valid JSON passes through unchanged.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}

			pretty := application.Format(text)

			if write && args[0] != "-" {
				if err := os.WriteFile(args[0], []byte(pretty+"\n"), 0644); err != nil {
					return fmt.Errorf("writing %s: %w", args[0], err)
				}
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), pretty)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, "Rewrite the file in place")

	return cmd
}
