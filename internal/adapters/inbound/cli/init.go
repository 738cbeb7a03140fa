package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	configAdapter "github.com/abdidvp/addonlint/internal/adapters/outbound/config"
	"github.com/abdidvp/addonlint/internal/domain"
)

func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a .addonlint.yaml configuration file",
		Long:  "Create a .addonlint.yaml with the default settings, ready to edit.",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			dest := filepath.Join(absDir, configAdapter.FileName)

			if !force {
				if _, err := os.Stat(dest); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", configAdapter.FileName)
				}
			}

			if err := os.WriteFile(dest, []byte(generateConfig()), 0644); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", configAdapter.FileName)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing .addonlint.yaml")

	return cmd
}

func generateConfig() string {
	cfg := domain.DefaultConfig()

	return fmt.Sprintf(`# addonlint configuration
# See: https://github.com/abdidvp/addonlint

# Timeout for fetching manifests from URLs.
fetch_timeout: %s

# Base URL for share links.
share_base_url: %s

# Idle delay before watch/tui revalidation.
debounce: %s

# Fail validation on unknown-field warnings.
strict: %t

# Record validation runs in ~/.addonlint/history.json.
history: %t
`, cfg.FetchTimeout, cfg.ShareBaseURL, cfg.Debounce, cfg.Strict, cfg.History)
}
