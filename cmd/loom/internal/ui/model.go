// Package ui renders the dev server status TUI.
package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	addrStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Underline(true)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	eventStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	borderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 2)
)

// ReloadMsg reports one watcher-triggered reload to the TUI.
type ReloadMsg struct {
	Reason string
	Time   time.Time
}

// ClientsMsg updates the connected browser count.
type ClientsMsg int

// Model is the dev server status view.
type Model struct {
	addr    string
	spin    spinner.Model
	reloads []ReloadMsg
	clients int
	width   int

	// QuitRequested is set when the user exits; the caller shuts the
	// server down.
	QuitRequested bool
}

// New builds the status model for a server at addr.
func New(addr string) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	return Model{addr: addr, spin: s}
}

func (m Model) Init() tea.Cmd {
	return m.spin.Tick
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.QuitRequested = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case ReloadMsg:
		m.reloads = append(m.reloads, msg)
		if len(m.reloads) > 5 {
			m.reloads = m.reloads[len(m.reloads)-5:]
		}
	case ClientsMsg:
		m.clients = int(msg)
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("loom dev"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("%s serving gallery at %s\n",
		m.spin.View(), addrStyle.Render("http://"+m.addr)))
	b.WriteString(fmt.Sprintf("  %s\n", dimStyle.Render(
		fmt.Sprintf("%d browser(s) connected", m.clients))))

	if len(m.reloads) > 0 {
		b.WriteString("\n" + dimStyle.Render("recent reloads") + "\n")
		for _, r := range m.reloads {
			b.WriteString(fmt.Sprintf("  %s %s\n",
				dimStyle.Render(r.Time.Format("15:04:05")),
				eventStyle.Render(r.Reason)))
		}
	}

	b.WriteString("\n" + dimStyle.Render("press q to quit"))
	return borderStyle.Render(b.String())
}
