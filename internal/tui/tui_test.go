package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"preshub/internal/core"
)

func key(t *testing.T, m model, k string) model {
	t.Helper()
	msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	if k == "enter" {
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	}
	next, _ := m.Update(msg)
	out, ok := next.(model)
	if !ok {
		t.Fatalf("unexpected model type %T", next)
	}
	return out
}

func TestPickerWalksAllSteps(t *testing.T) {
	m := initialModel()
	if m.step != stepIndustry {
		t.Fatalf("picker should start on the industry step, got %v", m.step)
	}

	m = key(t, m, "enter")
	if m.selection.Industry != core.Industries[0] {
		t.Errorf("expected first industry selected, got %q", m.selection.Industry)
	}
	if m.step != stepMeetingType {
		t.Errorf("expected meeting type step, got %v", m.step)
	}

	m = key(t, m, "j")
	m = key(t, m, "enter")
	if m.selection.MeetingType != core.MeetingTypes[1] {
		t.Errorf("expected second meeting type, got %q", m.selection.MeetingType)
	}

	m = key(t, m, "enter")
	if m.step != stepDone {
		t.Errorf("picker should finish after the role step, got %v", m.step)
	}
	if m.selection.ClientRole != core.ClientRoles[0] {
		t.Errorf("expected first client role, got %q", m.selection.ClientRole)
	}
}

func TestPickerCursorBounds(t *testing.T) {
	m := initialModel()

	m = key(t, m, "k")
	if m.cursor != 0 {
		t.Errorf("cursor must not move above the first option, got %d", m.cursor)
	}

	for i := 0; i < len(core.Industries)+5; i++ {
		m = key(t, m, "j")
	}
	if m.cursor != len(core.Industries)-1 {
		t.Errorf("cursor must not move past the last option, got %d", m.cursor)
	}
}

func TestPickerCancel(t *testing.T) {
	m := initialModel()
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(model).cancelled {
		t.Error("esc should cancel the picker")
	}
}

func TestPickerView(t *testing.T) {
	m := initialModel()
	view := m.View()
	if !strings.Contains(view, "Select an industry") {
		t.Errorf("view should show the industry prompt:\n%s", view)
	}
	if !strings.Contains(view, core.Industries[0]) {
		t.Errorf("view should list the catalog entries:\n%s", view)
	}
}
