package cli

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/abdidvp/addonlint/internal/adapters/outbound/tui"
	"github.com/abdidvp/addonlint/internal/adapters/outbound/watch"
	"github.com/abdidvp/addonlint/internal/domain"
	"github.com/abdidvp/addonlint/internal/logging"
)

func newWatchCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "watch <file>",
		Short: "Revalidate a manifest whenever it changes",
		Long: "Watch a manifest file and revalidate after each change, debounced so a\n" +
			"burst of editor saves triggers a single run. Stop with Ctrl+C.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			log, err := logging.New(verbose)
			if err != nil {
				return fmt.Errorf("building logger: %w", err)
			}
			defer func() { _ = log.Sync() }()

			svc, err := newValidateService(cfg, log)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			w, err := watch.New(args[0], cfg.DebounceDuration(), svc, func(report *domain.Report) {
				fmt.Fprintln(cmd.OutOrStdout(), tui.RenderReport(report))
			}, log)
			if err != nil {
				return err
			}

			if err := w.Start(ctx); err != nil {
				return err
			}
			<-ctx.Done()
			w.Stop()
			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log file events and validation runs")

	return cmd
}
