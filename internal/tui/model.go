package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Phase represents the current state of the TUI
type Phase int

const (
	PhaseCopying Phase = iota
	PhaseDone
)

// Messages for the TUI
type (
	UpdateMsg struct {
		Label   string
		Status  string
		Percent float64
	}
	CompleteMsg struct {
		Label  string
		Status string
	}
)

// Config for the TUI
type Config struct {
	SourceDir string
	TargetDir string
	// Cancel is called when the user asks to stop the copy.
	Cancel func()
}

// Model renders the live transfer: a spinner, a progress bar and the status line.
type Model struct {
	config     Config
	Phase      Phase
	spinner    spinner.Model
	progress   progress.Model
	Label      string
	Status     string
	Percent    float64
	Final      string
	Cancelling bool
	width      int
}

func NewModel(cfg Config) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	p := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(50),
		progress.WithoutPercentage(),
	)

	return Model{
		config:   cfg,
		Phase:    PhaseCopying,
		spinner:  s,
		progress: p,
		Label:    "Copying",
		width:    80,
	}
}

func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.progress.Width = min(msg.Width-20, 60)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			// the monitor answers with a CompleteMsg once the process is killed
			if !m.Cancelling && m.Phase == PhaseCopying {
				m.Cancelling = true
				if m.config.Cancel != nil {
					m.config.Cancel()
				}
			}
		}
		return m, nil

	case UpdateMsg:
		if msg.Label != "" {
			m.Label = msg.Label
		}
		m.Status = msg.Status
		m.Percent = msg.Percent
		return m, nil

	case CompleteMsg:
		m.Phase = PhaseDone
		m.Final = msg.Status
		return m, tea.Quit

	case spinner.TickMsg:
		if m.Phase == PhaseCopying {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	icon := m.spinner.View()
	label := m.Label
	if m.Phase == PhaseDone {
		icon = successStyle.Render(iconSuccess)
		if m.Final != "" {
			label = fmt.Sprintf("%s: %s", m.Label, m.Final)
		}
	}
	b.WriteString(fmt.Sprintf("  %s %s\n\n", icon, sectionStyle.Render(label)))
	b.WriteString(fmt.Sprintf("  %s\n", m.progress.ViewAs(clampFraction(m.Percent/100))))

	percentStyle := lipgloss.NewStyle().Foreground(dimTextColor)
	b.WriteString(fmt.Sprintf("  %s %s\n",
		statusStyle.Render(m.Status),
		percentStyle.Render(fmt.Sprintf("(%.2f%%)", m.Percent)),
	))

	b.WriteString(m.renderHelp())
	b.WriteString("\n")
	return b.String()
}

func (m Model) renderHeader() string {
	dimStyle := lipgloss.NewStyle().Foreground(dimTextColor)

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("robosync"),
		dimStyle.Render(fmt.Sprintf("%s Source: %s", iconFolder, shortenPath(m.config.SourceDir))),
		dimStyle.Render(fmt.Sprintf("%s Target: %s", iconFolder, shortenPath(m.config.TargetDir))),
	)
}

func (m Model) renderHelp() string {
	var help string
	switch {
	case m.Phase == PhaseDone:
		help = ""
	case m.Cancelling:
		help = "Stopping copy..."
	default:
		help = "Press q or ctrl+c to cancel"
	}
	return helpStyle.Render(help)
}

func clampFraction(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// shortenPath replaces the home directory prefix with ~ for display
func shortenPath(path string) string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return path
	}
	if strings.HasPrefix(path, home) {
		return "~" + path[len(home):]
	}
	return path
}
