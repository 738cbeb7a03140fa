package mcp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	mcpadapter "github.com/abdidvp/addonlint/internal/adapters/inbound/mcp"
	"github.com/abdidvp/addonlint/internal/adapters/outbound/fetch"
	"github.com/abdidvp/addonlint/internal/adapters/outbound/history"
	"github.com/abdidvp/addonlint/internal/adapters/outbound/schema"
	"github.com/abdidvp/addonlint/internal/adapters/outbound/share"
	"github.com/abdidvp/addonlint/internal/application"
	"github.com/abdidvp/addonlint/internal/domain"
)

func newTestServer(t *testing.T) *application.ValidateService {
	t.Helper()

	cfg := domain.DefaultConfig()
	validator, err := schema.NewValidator()
	require.NoError(t, err)

	return application.NewValidateService(
		validator,
		fetch.New(cfg.FetchTimeoutDuration(), zap.NewNop()),
		share.New(cfg.ShareBaseURL),
		history.NewAt(t.TempDir()),
		nil,
		cfg,
	)
}

func TestNewAddonlintMCPServer(t *testing.T) {
	s := mcpadapter.NewAddonlintMCPServer(newTestServer(t))
	require.NotNil(t, s)
}

func TestMCPServerHasTools(t *testing.T) {
	s := mcpadapter.NewAddonlintMCPServer(newTestServer(t))
	require.NotNil(t, s)

	tools := s.ListTools()
	require.NotNil(t, tools)

	expectedTools := []string{
		"addonlint_validate",
		"addonlint_fetch",
		"addonlint_share_link",
		"addonlint_decode_link",
	}

	for _, name := range expectedTools {
		_, exists := tools[name]
		assert.True(t, exists, "tool %q should be registered", name)
	}

	assert.Len(t, tools, len(expectedTools), "should have exactly %d tools", len(expectedTools))
}
