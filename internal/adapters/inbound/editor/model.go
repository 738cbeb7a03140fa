// Package editor is the interactive manifest editor. It wraps a textarea
// for the manifest JSON and a viewport showing the rendered validation
// report, revalidating after a short idle delay.
package editor

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/abdidvp/addonlint/internal/adapters/outbound/tui"
	"github.com/abdidvp/addonlint/internal/application"
	"github.com/abdidvp/addonlint/internal/domain"
)

const editorSource = "editor"

// Model holds the editor state. It is a plain bubbletea model and is
// driven entirely through Update.
type Model struct {
	svc *application.ValidateService
	cfg domain.ToolConfig

	textarea textarea.Model
	viewport viewport.Model

	report    *domain.Report
	shareLink string
	dark      bool
	fetching  bool

	// seq invalidates in-flight debounce timers and validations after
	// the buffer changed again.
	seq int

	width  int
	height int
	ready  bool
}

// debounceMsg fires when the idle delay for a given buffer revision expires.
type debounceMsg struct {
	seq int
}

// reportMsg carries the result of a background validation.
type reportMsg struct {
	seq    int
	report *domain.Report
}

type shareMsg struct {
	link string
	err  error
}

// New builds the editor around an assembled validation service.
func New(svc *application.ValidateService, cfg domain.ToolConfig) Model {
	ta := textarea.New()
	ta.Placeholder = "Paste manifest JSON, or a manifest.json URL..."
	ta.Prompt = "│ "
	ta.CharLimit = 0
	ta.ShowLineNumbers = false
	ta.Focus()

	return Model{
		svc:      svc,
		cfg:      cfg,
		textarea: ta,
		dark:     true,
	}
}

func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		taCmd tea.Cmd
		vpCmd tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			return m, tea.Quit
		case tea.KeyCtrlD:
			m.dark = !m.dark
			return m, nil
		case tea.KeyCtrlS:
			text := m.textarea.Value()
			return m, func() tea.Msg {
				link, err := m.svc.ShareLink(text)
				return shareMsg{link: link, err: err}
			}
		}

		before := m.textarea.Value()
		m.textarea, taCmd = m.textarea.Update(msg)
		if m.textarea.Value() != before {
			m.seq++
			m.shareLink = ""
			return m, tea.Batch(taCmd, m.scheduleValidate())
		}
		return m, taCmd

	case debounceMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		cmd := m.validate(msg.seq)
		return m, cmd

	case reportMsg:
		m.fetching = false
		if msg.seq != m.seq {
			return m, nil
		}
		m.report = msg.report
		m.syncViewport()
		return m, nil

	case shareMsg:
		if msg.err != nil {
			m.shareLink = "share link unavailable: " + msg.err.Error()
		} else {
			m.shareLink = msg.link
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil
	}

	m.textarea, taCmd = m.textarea.Update(msg)
	m.viewport, vpCmd = m.viewport.Update(msg)
	return m, tea.Batch(taCmd, vpCmd)
}

// scheduleValidate arms the idle timer for the current buffer revision.
// A newer revision simply outruns the older timer via seq.
func (m Model) scheduleValidate() tea.Cmd {
	seq := m.seq
	return tea.Tick(m.cfg.DebounceDuration(), func(time.Time) tea.Msg {
		return debounceMsg{seq: seq}
	})
}

func (m *Model) validate(seq int) tea.Cmd {
	text := m.textarea.Value()
	if isManifestURL(text) {
		m.fetching = true
		return func() tea.Msg {
			report, err := m.svc.ValidateURL(context.Background(), strings.TrimSpace(text))
			if err != nil {
				return reportMsg{seq: seq}
			}
			return reportMsg{seq: seq, report: report}
		}
	}
	return func() tea.Msg {
		report, err := m.svc.ValidateText(editorSource, domain.SourceText, text)
		if err != nil {
			return reportMsg{seq: seq}
		}
		return reportMsg{seq: seq, report: report}
	}
}

func (m *Model) layout() {
	if m.width == 0 || m.height == 0 {
		return
	}
	editorHeight := m.height / 3
	if editorHeight < 5 {
		editorHeight = 5
	}
	resultsHeight := m.height - editorHeight - 3
	if resultsHeight < 3 {
		resultsHeight = 3
	}

	m.textarea.SetWidth(m.width - 2)
	m.textarea.SetHeight(editorHeight)

	if !m.ready {
		m.viewport = viewport.New(m.width-2, resultsHeight)
		m.ready = true
	} else {
		m.viewport.Width = m.width - 2
		m.viewport.Height = resultsHeight
	}
	m.syncViewport()
}

func (m *Model) syncViewport() {
	if !m.ready {
		return
	}
	if m.report == nil {
		m.viewport.SetContent(m.chrome().hint.Render("Validation runs after you stop typing."))
		return
	}
	m.viewport.SetContent(tui.RenderReport(m.report))
}

// isManifestURL reports whether the whole buffer is a single URL that
// points at a manifest file, in which case it is fetched instead of
// parsed as JSON.
func isManifestURL(text string) bool {
	text = strings.TrimSpace(text)
	if strings.ContainsAny(text, " \t\n{") {
		return false
	}
	if !strings.HasPrefix(text, "http://") && !strings.HasPrefix(text, "https://") {
		return false
	}
	base := text
	if i := strings.IndexAny(base, "?#"); i >= 0 {
		base = base[:i]
	}
	return strings.HasSuffix(base, "/manifest.json")
}
