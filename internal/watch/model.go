package watch

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// RefreshFn produces the rendered listing for the watched directory.
// Width is the current terminal width.
type RefreshFn func(width int) (string, error)

type refreshedMsg string

type refreshErrMsg struct{ err error }

type fsEventMsg struct{}

// Model is the bubbletea model for watch mode. It shows the listing in
// a viewport and re-renders it whenever the watcher signals activity.
type Model struct {
	viewport viewport.Model
	refresh  RefreshFn
	watcher  *Watcher
	title    string
	width    int
	height   int
	ready    bool
	quitting bool
	err      error

	titleStyle lipgloss.Style
	helpStyle  lipgloss.Style
}

// NewModel creates a watch-mode model. watcher may be nil, in which
// case the listing refreshes only on manual request.
func NewModel(title string, refresh RefreshFn, watcher *Watcher) *Model {
	return &Model{
		refresh:    refresh,
		watcher:    watcher,
		title:      title,
		titleStyle: lipgloss.NewStyle().Bold(true),
		helpStyle:  lipgloss.NewStyle().Faint(true),
	}
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.refreshCmd(), m.waitForEvent())
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		vh := msg.Height - 2
		if vh < 1 {
			vh = 1
		}
		if !m.ready {
			m.viewport = viewport.New(msg.Width, vh)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = vh
		}
		return m, m.refreshCmd()
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			if m.watcher != nil {
				m.watcher.Stop()
			}
			return m, tea.Quit
		case "r":
			return m, m.refreshCmd()
		}
	case fsEventMsg:
		cmds := []tea.Cmd{m.waitForEvent()}
		if m.watcher == nil || m.watcher.ShouldRefresh(time.Now()) {
			cmds = append(cmds, m.refreshCmd())
		}
		return m, tea.Batch(cmds...)
	case refreshedMsg:
		m.err = nil
		if m.ready {
			m.viewport.SetContent(string(msg))
		}
		return m, nil
	case refreshErrMsg:
		m.err = msg.err
		return m, nil
	}

	if m.ready {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "loading..."
	}
	header := m.titleStyle.Render(m.title)
	if m.err != nil {
		header = fmt.Sprintf("%s  (error: %v)", header, m.err)
	}
	help := m.helpStyle.Render("q quit · r refresh")
	return header + "\n" + m.viewport.View() + "\n" + help
}

func (m *Model) refreshCmd() tea.Cmd {
	width := m.width
	if width <= 0 {
		width = 80
	}
	return func() tea.Msg {
		out, err := m.refresh(width)
		if err != nil {
			return refreshErrMsg{err: err}
		}
		return refreshedMsg(out)
	}
}

func (m *Model) waitForEvent() tea.Cmd {
	if m.watcher == nil || m.watcher.Events == nil {
		return nil
	}
	events := m.watcher.Events
	return func() tea.Msg {
		if _, ok := <-events; !ok {
			return nil
		}
		return fsEventMsg{}
	}
}
