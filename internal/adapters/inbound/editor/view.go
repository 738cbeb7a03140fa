package editor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// chromeStyles is the editor frame palette. The results pane keeps the
// renderer's own colors; only the chrome around it flips with Ctrl+D.
type chromeStyles struct {
	title  lipgloss.Style
	hint   lipgloss.Style
	status lipgloss.Style
	frame  lipgloss.Style
}

var darkChrome = chromeStyles{
	title:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#D97706")),
	hint:   lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280")),
	status: lipgloss.NewStyle().Foreground(lipgloss.Color("#E8E6E3")),
	frame: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#3F3F46")).
		Padding(0, 1),
}

var lightChrome = chromeStyles{
	title:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#B45309")),
	hint:   lipgloss.NewStyle().Foreground(lipgloss.Color("#9CA3AF")),
	status: lipgloss.NewStyle().Foreground(lipgloss.Color("#1F2937")),
	frame: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#D1D5DB")).
		Padding(0, 1),
}

func (m Model) chrome() chromeStyles {
	if m.dark {
		return darkChrome
	}
	return lightChrome
}

func (m Model) View() string {
	if !m.ready {
		return "loading..."
	}

	c := m.chrome()

	var b strings.Builder
	b.WriteString(c.title.Render("addonlint editor"))
	b.WriteString("\n")
	b.WriteString(c.frame.Render(m.textarea.View()))
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(m.statusLine(c))
	return b.String()
}

func (m Model) statusLine(c chromeStyles) string {
	parts := []string{"ctrl+s share", "ctrl+d theme", "ctrl+c quit"}
	if m.fetching {
		parts = append([]string{"fetching..."}, parts...)
	}
	line := c.hint.Render(strings.Join(parts, "  ·  "))
	if m.shareLink != "" {
		line += "\n" + c.status.Render(m.shareLink)
	}
	return line
}
