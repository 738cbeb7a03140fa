package editor

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/abdidvp/addonlint/internal/adapters/outbound/fetch"
	"github.com/abdidvp/addonlint/internal/adapters/outbound/history"
	"github.com/abdidvp/addonlint/internal/adapters/outbound/schema"
	"github.com/abdidvp/addonlint/internal/adapters/outbound/share"
	"github.com/abdidvp/addonlint/internal/application"
	"github.com/abdidvp/addonlint/internal/domain"
)

func newModel(t *testing.T) Model {
	t.Helper()

	cfg := domain.DefaultConfig()
	validator, err := schema.NewValidator()
	require.NoError(t, err)

	svc := application.NewValidateService(
		validator,
		fetch.New(cfg.FetchTimeoutDuration(), zap.NewNop()),
		share.New(cfg.ShareBaseURL),
		history.NewAt(t.TempDir()),
		nil,
		cfg,
	)
	return New(svc, cfg)
}

func sized(m Model) Model {
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return next.(Model)
}

func TestEditor_ThemeToggle(t *testing.T) {
	m := newModel(t)
	assert.True(t, m.dark)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlD})
	m = next.(Model)
	assert.False(t, m.dark)

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlD})
	m = next.(Model)
	assert.True(t, m.dark)
}

func TestEditor_TypingArmsDebounce(t *testing.T) {
	m := sized(newModel(t))

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("{")})
	m = next.(Model)
	assert.Equal(t, 1, m.seq)
	assert.NotNil(t, cmd, "a buffer change should start the idle timer")
}

func TestEditor_StaleDebounceIgnored(t *testing.T) {
	m := sized(newModel(t))
	m.seq = 3

	_, cmd := m.Update(debounceMsg{seq: 2})
	assert.Nil(t, cmd, "an outdated timer must not trigger validation")
}

func TestEditor_DebounceValidatesBuffer(t *testing.T) {
	m := sized(newModel(t))
	m.textarea.SetValue("not json")
	m.seq = 1

	next, cmd := m.Update(debounceMsg{seq: 1})
	m = next.(Model)
	require.NotNil(t, cmd)

	msg := cmd()
	report, ok := msg.(reportMsg)
	require.True(t, ok)
	require.NotNil(t, report.report)
	assert.Equal(t, domain.StatusInvalid, report.report.Outcome.Status)

	next, _ = m.Update(msg)
	m = next.(Model)
	assert.Contains(t, m.viewport.View(), "invalid manifest")
}

func TestEditor_StaleReportIgnored(t *testing.T) {
	m := sized(newModel(t))
	m.seq = 5

	next, _ := m.Update(reportMsg{seq: 4, report: &domain.Report{Outcome: &domain.Outcome{Status: domain.StatusValid}}})
	m = next.(Model)
	assert.Nil(t, m.report)
}

func TestEditor_ShareLink(t *testing.T) {
	m := sized(newModel(t))
	m.textarea.SetValue(`{"id":"org.example"}`)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	m = next.(Model)
	require.NotNil(t, cmd)

	next, _ = m.Update(cmd())
	m = next.(Model)
	assert.Contains(t, m.shareLink, share.Param+"=")
	assert.Contains(t, m.View(), m.shareLink)
}

func TestIsManifestURL(t *testing.T) {
	cases := map[string]bool{
		"https://example.com/manifest.json":        true,
		"  https://example.com/manifest.json\n":    true,
		"https://example.com/manifest.json?x=1":    true,
		"http://localhost:7000/manifest.json":      true,
		"https://example.com/addon.json":           false,
		"example.com/manifest.json":                false,
		`{"id": "https://example.com/manifest.json"}`: false,
		"": false,
	}
	for input, want := range cases {
		assert.Equal(t, want, isManifestURL(input), "input %q", input)
	}
}
