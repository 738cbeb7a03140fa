// Package tui renders validation reports for the terminal.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/abdidvp/addonlint/internal/domain"
)

// ── Claude-inspired warm palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 2).
			Width(68)

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	warnStyle     = lipgloss.NewStyle().Foreground(warning)
	errorTagStyle = lipgloss.NewStyle().Foreground(danger).Bold(true)
	warnTagStyle  = lipgloss.NewStyle().Foreground(warning).Bold(true)
	pathStyle     = lipgloss.NewStyle().Foreground(dim)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

// RenderReport renders one report as one of the three display blocks.
func RenderReport(report *domain.Report) string {
	var b strings.Builder

	title := headerStyle.Render("addonlint")
	source := dimStyle.Render(report.Source)

	var statusLine string
	box := boxStyle
	switch report.Outcome.Status {
	case domain.StatusValid:
		statusLine = passStyle.Bold(true).Render("✓ valid manifest")
		box = box.BorderForeground(success)
	case domain.StatusWarnings:
		statusLine = warnStyle.Bold(true).Render(fmt.Sprintf("⚠ valid with %d unknown field(s)", len(report.Outcome.Issues)))
		box = box.BorderForeground(warning)
	case domain.StatusInvalid:
		statusLine = failStyle.Bold(true).Render(fmt.Sprintf("✗ invalid manifest (%d error(s))", len(report.Outcome.Issues)))
		box = box.BorderForeground(danger)
	}

	b.WriteString(box.Render(title + "  " + source + "\n" + statusLine))
	b.WriteString("\n")

	if m := report.Outcome.Manifest; m != nil {
		renderSummary(&b, m)
	}

	if len(report.Outcome.Issues) > 0 {
		b.WriteString("\n  " + separatorLine + "\n\n")
		renderIssues(&b, report.Outcome)
	}

	return b.String()
}

func renderSummary(b *strings.Builder, m *domain.Manifest) {
	b.WriteString("\n  " + titleStyle.Render(m.Summary()) + "\n")
	if m.Description != "" {
		b.WriteString("  " + dimStyle.Render(m.Description) + "\n")
	}

	line := fmt.Sprintf("%d resource(s)  %d type(s)  %d catalog(s)",
		len(m.Resources), len(m.Types), len(m.Catalogs))
	if m.BehaviorHints != nil && m.BehaviorHints.ConfigurationRequired {
		line += "  configuration required"
	}
	b.WriteString("  " + faintStyle.Render(line) + "\n")
}

func renderIssues(b *strings.Builder, outcome *domain.Outcome) {
	label := "Errors"
	if outcome.Status == domain.StatusWarnings {
		label = "Warnings"
	}
	b.WriteString("  " + titleStyle.Render(label) + "\n\n")

	for _, issue := range outcome.Issues {
		renderIssue(b, outcome.Status, issue)
	}
}

func renderIssue(b *strings.Builder, status domain.Status, issue domain.Issue) {
	tag := errorTagStyle.Render(padRight(issue.Code, 14))
	if status == domain.StatusWarnings {
		tag = warnTagStyle.Render(padRight(issue.Code, 14))
	}

	path := "(document)"
	if issue.Path != "" {
		path = issue.Path
	}

	fmt.Fprintf(b, "    %s %s\n", tag, pathStyle.Render(path))
	fmt.Fprintf(b, "    %s %s\n", strings.Repeat(" ", 14), dimStyle.Render(issue.Message))
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
