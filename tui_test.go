package main

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"il2ge/config"
	"il2ge/host"
	"il2ge/hotkeys"
)

func TestComboFromKey(t *testing.T) {
	tests := []struct {
		msg      tea.KeyMsg
		want     string
		wantRune rune
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, "up", 0},
		{tea.KeyMsg{Type: tea.KeyPgDown}, "pagedown", 0},
		{tea.KeyMsg{Type: tea.KeyEsc}, "escape", 0},
		{tea.KeyMsg{Type: tea.KeyF10}, "f10", 0},
		{tea.KeyMsg{Type: tea.KeyShiftRight}, "shift+right", 0},
		{tea.KeyMsg{Type: tea.KeyCtrlE}, "ctrl+e", 0},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}}, "r", 'r'},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'R'}}, "shift+r", 'R'},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'+'}}, "add", '+'},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}, Alt: true}, "alt+x", 'x'},
		{tea.KeyMsg{Type: tea.KeySpace}, "space", ' '},
	}
	for _, tt := range tests {
		got, r, ok := comboFromKey(tt.msg)
		if !ok {
			t.Errorf("%s: not mapped", tt.msg)
			continue
		}
		if got.String() != tt.want || r != tt.wantRune {
			t.Errorf("%s: got %s %q, want %s %q", tt.msg, got, r, tt.want, tt.wantRune)
		}
	}
}

func TestComboFromKeyUnmapped(t *testing.T) {
	if _, _, ok := comboFromKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("ab")}); ok {
		t.Error("multi-rune paste should not map")
	}
}

func newTUIHost(t *testing.T) *host.Host {
	t.Helper()
	cfg := config.Default()
	cfg.Menu.Hotkey = "f10"
	h, err := host.New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	h.SetClipboard(func(string) error { return nil })
	hotkeys.NewRegistrar(h).Initialize()
	return h
}

func update(t *testing.T, m tuiModel, msg tea.Msg) tuiModel {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(tuiModel)
}

func TestTUIMenuFlow(t *testing.T) {
	h := newTUIHost(t)
	m := update(t, newTUIModel(h), tea.WindowSizeMsg{Width: 100, Height: 60})

	m = update(t, m, tea.KeyMsg{Type: tea.KeyF10})
	if !h.Menu().Shown() {
		t.Fatal("f10 did not open the menu")
	}
	if view := m.View(); !strings.Contains(view, "Escape: exit menu") {
		t.Errorf("menu not rendered:\n%s", view)
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if h.Menu().Active() != 1 {
		t.Errorf("active = %d, want 1", h.Menu().Active())
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if h.Menu().Shown() || h.Focused() {
		t.Fatal("escape did not close the menu")
	}
	if view := m.View(); !strings.Contains(view, "f10") {
		t.Errorf("bindings view missing menu combo:\n%s", view)
	}
}

func TestTUIGlobalShortcut(t *testing.T) {
	h := newTUIHost(t)
	m := update(t, newTUIModel(h), globalMenuMsg{})
	if !h.Menu().Shown() {
		t.Fatal("global shortcut did not open the menu")
	}
	if m.lastKey != "global shortcut" {
		t.Errorf("lastKey = %q", m.lastKey)
	}
}

func TestTUIQuit(t *testing.T) {
	_, cmd := newTUIModel(newTUIHost(t)).Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("ctrl+c returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("ctrl+c did not quit")
	}
}

func TestRenderBindingsTruncates(t *testing.T) {
	cfg := config.Default()
	for i, name := range []string{"ResetParameters", "CopyParameters", "exposure.increase_by_1", "exposure.decrease_by_1", "saturation.increase_by_1", "saturation.decrease_by_1"} {
		cfg.Bindings[hotkeys.Namespace+name] = "f" + string(rune('1'+i))
	}
	h, err := host.New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	hotkeys.NewRegistrar(h).Initialize()

	out := renderBindings(h, 5)
	if n := strings.Count(out, "\n"); n != 5 {
		t.Errorf("got %d lines, want 5:\n%s", n, out)
	}
	if !strings.Contains(out, "... 3 more") {
		t.Errorf("missing overflow line:\n%s", out)
	}
}
