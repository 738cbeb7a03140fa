package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abdidvp/addonlint/internal/adapters/inbound/editor"
)

func newTUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Interactive manifest editor with live validation",
		Long: "Open an interactive editor. Paste or type manifest JSON and it is\n" +
			"revalidated after a short idle delay; a URL ending in manifest.json is\n" +
			"fetched automatically. Ctrl+D toggles the dark palette, Ctrl+S shows a\n" +
			"share link, Ctrl+C quits.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			svc, err := newValidateService(cfg, zap.NewNop())
			if err != nil {
				return err
			}

			m := editor.New(svc, cfg)
			p := tea.NewProgram(m, tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("running editor: %w", err)
			}
			return nil
		},
	}
}
