package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-forage/internal/config"
	"github.com/vovakirdan/tui-forage/internal/core"
	"github.com/vovakirdan/tui-forage/internal/registry"
)

func init() {
	registry.Register(registry.GameInfo{
		ID:    "menu-a",
		Title: "Alpha",
		Blurb: "First game.",
		Facts: []registry.Fact{{Name: "Goal", Value: "3 acorns"}},
	}, func() (registry.Game, error) { return &stubGame{}, nil })
	registry.Register(registry.GameInfo{
		ID:    "menu-b",
		Title: "Beta",
		Blurb: "Second game.",
		Facts: []registry.Fact{{Name: "Goal", Value: "5 berries"}},
	}, func() (registry.Game, error) { return &stubGame{}, nil })
}

func menuUpdate(t *testing.T, m MenuModel, msg tea.Msg) (MenuModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(MenuModel)
	if !ok {
		t.Fatalf("Update() returned %T, expected MenuModel", next)
	}
	return nm, cmd
}

func TestMenuNavigateAndSelect(t *testing.T) {
	m := NewMenuModel(core.RuntimeConfig{ScreenW: 80, ScreenH: 24})

	view := m.View()
	if !strings.Contains(view, "Alpha") || !strings.Contains(view, "3 acorns") {
		t.Error("menu should list games and show facts for the first")
	}

	m, _ = menuUpdate(t, m, runeKey("k"))
	if m.cursor != 0 {
		t.Errorf("cursor = %d, expected it to stay at the top", m.cursor)
	}

	m, _ = menuUpdate(t, m, runeKey("j"))
	if !strings.Contains(m.View(), "5 berries") {
		t.Error("facts table should follow the cursor")
	}
	m, _ = menuUpdate(t, m, runeKey("j"))
	if m.cursor != 1 {
		t.Errorf("cursor = %d, expected it to stop at the last game", m.cursor)
	}

	m, cmd := menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("select should exit the menu")
	}
	if m.Selected() == nil || m.Selected().ID != "menu-b" {
		t.Errorf("Selected() = %+v, expected menu-b", m.Selected())
	}
}

func TestMenuQuitAndResize(t *testing.T) {
	m := NewMenuModel(core.RuntimeConfig{ScreenW: 80, ScreenH: 24})

	m, _ = menuUpdate(t, m, tea.WindowSizeMsg{Width: 50, Height: 20})
	if cfg := m.Config(); cfg.ScreenW != 50 || cfg.ScreenH != 20 {
		t.Errorf("Config() = %dx%d, expected 50x20", cfg.ScreenW, cfg.ScreenH)
	}
	if !strings.Contains(m.View(), "Alpha") {
		t.Error("narrow layout should still list games")
	}

	m, _ = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.IsQuitting() || m.Selected() != nil {
		t.Error("back from the menu should quit without a selection")
	}
}

func TestDifficultySelector(t *testing.T) {
	tests := []struct {
		name   string
		keys   []tea.KeyMsg
		want   config.DifficultyPreset
		chosen bool
		back   bool
	}{
		{"default", []tea.KeyMsg{{Type: tea.KeyEnter}}, "", true, false},
		{"hard", []tea.KeyMsg{runeKey("j"), runeKey("j"), runeKey("j"), {Type: tea.KeyEnter}}, config.DifficultyHard, true, false},
		{"clamped", []tea.KeyMsg{runeKey("j"), runeKey("j"), runeKey("j"), runeKey("j"), runeKey("j"), {Type: tea.KeyEnter}}, config.DifficultyFixed, true, false},
		{"back", []tea.KeyMsg{{Type: tea.KeyEsc}}, "", false, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var model tea.Model = NewDifficultyModel("CAMPFIRE", 80, 24)
			for _, k := range tc.keys {
				model, _ = model.Update(k)
			}
			m := model.(DifficultyModel)

			preset, chosen := m.Selected()
			if preset != tc.want || chosen != tc.chosen {
				t.Errorf("Selected() = %q, %v, expected %q, %v", preset, chosen, tc.want, tc.chosen)
			}
			if m.WantsBack() != tc.back {
				t.Errorf("WantsBack() = %v, expected %v", m.WantsBack(), tc.back)
			}
		})
	}
}
