package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"preshub/internal/core"
)

var (
	promptStyle   = lipgloss.NewStyle().Bold(true)
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	selectedStyle = lipgloss.NewStyle().Faint(true)
	helpStyle     = lipgloss.NewStyle().Faint(true).MarginTop(1)
)

// step indexes the selection the picker is currently on.
type step int

const (
	stepIndustry step = iota
	stepMeetingType
	stepClientRole
	stepDone
)

// model walks the user through the three catalog selections needed for a
// brief request.
type model struct {
	step      step
	cursor    int
	selection core.BriefRequest
	cancelled bool
}

// initialModel returns the picker positioned on the industry list.
func initialModel() model {
	return model{}
}

func (m model) options() []string {
	switch m.step {
	case stepIndustry:
		return core.Industries
	case stepMeetingType:
		return core.MeetingTypes
	default:
		return core.ClientRoles
	}
}

func (m model) prompt() string {
	switch m.step {
	case stepIndustry:
		return "Select an industry"
	case stepMeetingType:
		return "Select a meeting type"
	default:
		return "Select the client role"
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "ctrl+c", "q", "esc":
		m.cancelled = true
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.options())-1 {
			m.cursor++
		}
	case "enter":
		choice := m.options()[m.cursor]
		switch m.step {
		case stepIndustry:
			m.selection.Industry = choice
		case stepMeetingType:
			m.selection.MeetingType = choice
		case stepClientRole:
			m.selection.ClientRole = choice
		}
		m.step++
		m.cursor = 0
		if m.step == stepDone {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m model) View() string {
	if m.step == stepDone || m.cancelled {
		return ""
	}

	s := promptStyle.Render(m.prompt()) + "\n\n"
	for i, option := range m.options() {
		cursor := "  "
		if i == m.cursor {
			cursor = cursorStyle.Render("> ")
		}
		s += cursor + option + "\n"
	}

	var picked []string
	for _, v := range []string{m.selection.Industry, m.selection.MeetingType} {
		if v != "" {
			picked = append(picked, v)
		}
	}
	if len(picked) > 0 {
		s += selectedStyle.Render(fmt.Sprintf("\nSelected: %v", picked)) + "\n"
	}

	s += helpStyle.Render("↑/↓ move · enter select · q quit") + "\n"
	return s
}

// PickBriefRequest runs the interactive picker and returns the selections.
// The context field is left empty; callers collect it separately.
func PickBriefRequest() (core.BriefRequest, error) {
	p := tea.NewProgram(initialModel())
	final, err := p.Run()
	if err != nil {
		return core.BriefRequest{}, fmt.Errorf("picker failed: %w", err)
	}

	m, ok := final.(model)
	if !ok || m.cancelled || m.step != stepDone {
		return core.BriefRequest{}, fmt.Errorf("selection cancelled")
	}
	return m.selection, nil
}
