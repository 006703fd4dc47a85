package menu

import (
	"math"
	"testing"

	"il2ge/keys"
	"il2ge/param"
)

func newMenu(t *testing.T, values ...float64) (*Menu, *param.Set) {
	t.Helper()
	var params []*param.Parameter
	for i, v := range values {
		params = append(params, param.New(string(rune('a'+i)), v))
	}
	set, err := param.NewSet(params...)
	if err != nil {
		t.Fatal(err)
	}
	return New(set), set
}

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestNavigationWraps(t *testing.T) {
	m, _ := newMenu(t, 0, 0, 0)

	m.HandleKey(keys.Up, keys.ModNone)
	if m.Active() != 2 {
		t.Fatalf("Up from 0: active = %d, want 2", m.Active())
	}
	m.HandleKey(keys.Down, keys.ModNone)
	m.HandleKey(keys.Down, keys.ModNone)
	if m.Active() != 1 {
		t.Errorf("active = %d, want 1", m.Active())
	}
}

func TestValueChanges(t *testing.T) {
	tests := []struct {
		key  keys.Code
		mods keys.Mod
		want float64
	}{
		{keys.Right, keys.ModNone, 0.01},
		{keys.Left, keys.ModNone, -0.01},
		{keys.Right, keys.ModShift, 0.1},
		{keys.Add, keys.ModNone, 1},
		{keys.Subtract, keys.ModShift, -10},
		{keys.PageUp, keys.ModNone, 100},
		{keys.PageDown, keys.ModShift | keys.ModCtrl, -1000},
	}
	for _, tt := range tests {
		m, set := newMenu(t, 0)
		if !m.HandleKey(tt.key, tt.mods) {
			t.Errorf("%s not handled", tt.key)
		}
		if got := set.At(0).Get(); !near(got, tt.want) {
			t.Errorf("%s %s: value = %v, want %v", tt.mods, tt.key, got, tt.want)
		}
	}
}

func TestResetAndUnknownKey(t *testing.T) {
	m, set := newMenu(t, 5)
	set.At(0).Set(42)
	m.HandleKey(keys.Letter('r'), keys.ModNone)
	if set.At(0).Get() != 5 {
		t.Errorf("after reset value = %v, want 5", set.At(0).Get())
	}
	if m.HandleKey(keys.F5, keys.ModNone) {
		t.Error("F5 should not be handled")
	}
}

func TestEmptyMenu(t *testing.T) {
	m, _ := newMenu(t)
	m.HandleKey(keys.Down, keys.ModNone)
	m.HandleKey(keys.Add, keys.ModNone)
	if m.Active() != 0 {
		t.Errorf("active = %d, want 0", m.Active())
	}
	lines := m.Lines()
	for _, l := range lines {
		if l.Kind == LineParam || l.Kind == LineActiveParam {
			t.Errorf("unexpected parameter line %q", l.Text)
		}
	}
}

func TestLinesMarkActive(t *testing.T) {
	m, _ := newMenu(t, 1, 2)
	m.HandleKey(keys.Down, keys.ModNone)

	var active []string
	for _, l := range m.Lines() {
		if l.Kind == LineActiveParam {
			active = append(active, l.Text)
		}
	}
	if len(active) != 1 || active[0] != "b: 2.00" {
		t.Errorf("active lines = %q, want [b: 2.00]", active)
	}
}

func TestShow(t *testing.T) {
	m, _ := newMenu(t)
	if m.Shown() {
		t.Fatal("menu should start hidden")
	}
	m.Show(true)
	if !m.Shown() {
		t.Error("Show(true) did not show menu")
	}
}
