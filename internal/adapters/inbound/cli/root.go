package cli

import "github.com/spf13/cobra"

var (
	version = "dev"
	commit  = "none"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "addonlint",
		Short: "Validate Stremio addon manifests",
		Long: "addonlint checks a Stremio addon manifest against the published schema,\n" +
			"reporting structural errors and unknown-field warnings.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newValidateCmd())
	cmd.AddCommand(newFmtCmd())
	cmd.AddCommand(newShareCmd())
	cmd.AddCommand(newWatchCmd())
	cmd.AddCommand(newTUICmd())
	cmd.AddCommand(newMCPCmd())
	cmd.AddCommand(newHistoryCmd())
	cmd.AddCommand(newInitCmd())
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}
