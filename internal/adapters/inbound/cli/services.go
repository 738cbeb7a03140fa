package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	configAdapter "github.com/abdidvp/addonlint/internal/adapters/outbound/config"
	"github.com/abdidvp/addonlint/internal/adapters/outbound/fetch"
	"github.com/abdidvp/addonlint/internal/adapters/outbound/gitinfo"
	"github.com/abdidvp/addonlint/internal/adapters/outbound/history"
	"github.com/abdidvp/addonlint/internal/adapters/outbound/schema"
	"github.com/abdidvp/addonlint/internal/adapters/outbound/share"
	"github.com/abdidvp/addonlint/internal/application"
	"github.com/abdidvp/addonlint/internal/domain"
)

// loadConfig reads .addonlint.yaml from the working directory.
func loadConfig() (domain.ToolConfig, error) {
	cfg, err := configAdapter.New().Load(".")
	if err != nil {
		return domain.ToolConfig{}, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// newValidateService assembles the standard set of outbound adapters.
func newValidateService(cfg domain.ToolConfig, log *zap.Logger) (*application.ValidateService, error) {
	validator, err := schema.NewValidator()
	if err != nil {
		return nil, fmt.Errorf("compiling manifest schema: %w", err)
	}

	return application.NewValidateService(
		validator,
		fetch.New(cfg.FetchTimeoutDuration(), log),
		share.New(cfg.ShareBaseURL),
		history.New(),
		gitinfo.New(),
		cfg,
	), nil
}

// readInput returns the contents of a file argument, or stdin for "-".
func readInput(cmd *cobra.Command, arg string) (string, error) {
	if arg == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(arg)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", arg, err)
	}
	return string(data), nil
}
