package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abdidvp/addonlint/internal/adapters/outbound/tui"
	"github.com/abdidvp/addonlint/internal/domain"
)

func newValidateCmd() *cobra.Command {
	var (
		strict     bool
		jsonOutput bool
		noHistory  bool
		timeout    string
	)

	cmd := &cobra.Command{
		Use:   "validate <file|url|share-link|-> ...",
		Short: "Validate manifests against the addon schema",
		Long: "Validate one or more Stremio addon manifests. Inputs may be local files,\n" +
			"manifest URLs, share links produced by the share command, or - for stdin.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if timeout != "" {
				cfg.FetchTimeout = timeout
				if err := cfg.Validate(); err != nil {
					return err
				}
			}
			if noHistory {
				cfg.History = false
			}
			strict = strict || cfg.Strict

			svc, err := newValidateService(cfg, zap.NewNop())
			if err != nil {
				return err
			}

			var reports []*domain.Report
			if len(args) == 1 && args[0] == "-" {
				text, err := readInput(cmd, "-")
				if err != nil {
					return err
				}
				report, err := svc.ValidateText("stdin", domain.SourceText, text)
				if err != nil {
					return err
				}
				reports = []*domain.Report{report}
			} else {
				reports, err = svc.ValidateAll(cmd.Context(), args)
				if err != nil {
					return fmt.Errorf("validate failed: %w", err)
				}
			}

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if len(reports) == 1 {
					if err := enc.Encode(reports[0]); err != nil {
						return err
					}
				} else if err := enc.Encode(reports); err != nil {
					return err
				}
			} else {
				for _, report := range reports {
					fmt.Fprintln(cmd.OutOrStdout(), tui.RenderReport(report))
				}
			}

			return exitStatus(reports, strict)
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Fail on unknown-field warnings")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().BoolVar(&noHistory, "no-history", false, "Skip the history record for this run")
	cmd.Flags().StringVar(&timeout, "timeout", "", "Fetch timeout for URL inputs (e.g. 5s)")

	return cmd
}

// exitStatus turns the report set into the command's exit behavior:
// errors always fail, warnings fail only under --strict.
func exitStatus(reports []*domain.Report, strict bool) error {
	errors, warnings := 0, 0
	for _, report := range reports {
		errors += report.Outcome.Errors()
		warnings += report.Outcome.Warnings()
	}

	if errors > 0 {
		return fmt.Errorf("validation failed: %d error(s)", errors)
	}
	if strict && warnings > 0 {
		return fmt.Errorf("validation failed (strict): %d unknown field(s)", warnings)
	}
	return nil
}
