package cli

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	mcpadapter "github.com/abdidvp/addonlint/internal/adapters/inbound/mcp"
	"github.com/abdidvp/addonlint/internal/logging"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the addonlint MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd())
	return cmd
}

func newMCPServeCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the addonlint MCP server (stdio)",
		Long: "Start the addonlint MCP server using stdio transport. This lets AI\n" +
			"coding assistants validate manifests, fetch them from URLs, and build\n" +
			"share links.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			log, err := logging.New(verbose)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			svc, err := newValidateService(cfg, log)
			if err != nil {
				return err
			}

			s := mcpadapter.NewAddonlintMCPServer(svc)
			return server.ServeStdio(s)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log fetches and validation runs")

	return cmd
}
