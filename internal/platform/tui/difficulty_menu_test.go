package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

func testMenuItems() []MenuItem {
	return []MenuItem{
		{Preset: config.DifficultyNormal, Title: "Normal", Desc: "As configured", Best: 12},
		{Preset: config.DifficultyEasy, Title: "Easy", Desc: "Slower pipes", Best: 30},
		{Preset: config.DifficultyHard, Title: "Hard", Desc: "Faster pipes", Best: 4},
	}
}

func menuUpdate(m DifficultyModel, msg tea.Msg) (DifficultyModel, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(DifficultyModel), cmd
}

func TestDifficultyMenuNavigation(t *testing.T) {
	m := NewDifficultyModel(testMenuItems(), 80, 24)

	m, _ = menuUpdate(m, tea.KeyMsg{Type: tea.KeyUp})
	if m.cursor != 0 {
		t.Errorf("cursor = %d after up at top, expected 0", m.cursor)
	}

	for i := 0; i < 5; i++ {
		m, _ = menuUpdate(m, keyMsg("j"))
	}
	if m.cursor != 2 {
		t.Errorf("cursor = %d after moving past the end, expected 2", m.cursor)
	}

	m, cmd := menuUpdate(m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected quit command on select")
	}
	item, ok := m.Selected()
	if !ok || item.Preset != config.DifficultyHard {
		t.Errorf("Selected() = %+v, %v, expected hard", item, ok)
	}
}

func TestDifficultyMenuQuit(t *testing.T) {
	m := NewDifficultyModel(testMenuItems(), 80, 24)
	m, cmd := menuUpdate(m, keyMsg("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := m.Selected(); ok {
		t.Error("expected no selection after quit")
	}
	if m.View() != "" {
		t.Error("expected empty view after quit")
	}
}

func TestDifficultyMenuView(t *testing.T) {
	m := NewDifficultyModel(testMenuItems(), 80, 24)
	m, _ = menuUpdate(m, keyMsg("j"))

	view := m.View()
	for _, want := range []string{"F L A P P Y", "Normal", "best 12", "Easy", "best 30", "Slower pipes"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestDifficultyMenuEmpty(t *testing.T) {
	m := NewDifficultyModel(nil, 80, 24)
	m, cmd := menuUpdate(m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Error("expected no command selecting from an empty menu")
	}
	if _, ok := m.Selected(); ok {
		t.Error("expected no selection")
	}
}
