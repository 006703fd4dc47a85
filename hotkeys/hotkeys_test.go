package hotkeys

import (
	"slices"
	"testing"

	"il2ge/keys"
)

func openMenu(t *testing.T, h *FakeHost) {
	t.Helper()
	NewMenuToggle(h).Activate()
	if h.Focus == nil {
		t.Fatal("menu toggle did not take focus")
	}
	h.ResetCalls()
}

func TestInitializeIdempotent(t *testing.T) {
	h := NewFakeHost("toggle_wireframe", "toggle_hud")
	r := NewRegistrar(h)

	if !r.Initialize() {
		t.Fatal("first Initialize should register")
	}
	for i := 0; i < 3; i++ {
		if r.Initialize() {
			t.Fatal("repeat Initialize should be a no-op")
		}
	}
	if !r.Initialized() {
		t.Error("Initialized() = false after registration")
	}
	if n := len(h.Bindings[CategoryHotkeys]); n != 1 {
		t.Errorf("hotkeys bindings = %d, want 1", n)
	}
	if n := len(h.Bindings[CategoryMisc]); n != 2 {
		t.Errorf("misc bindings = %d, want 2", n)
	}
}

func TestInitializeUnavailable(t *testing.T) {
	h := NewFakeHost("a", "b")
	h.Available = false
	r := NewRegistrar(h)

	if r.Initialize() {
		t.Fatal("Initialize should not register when unavailable")
	}
	if len(h.Calls) != 0 {
		t.Errorf("calls = %q, want none", h.Calls)
	}
	if r.Initialized() {
		t.Error("unavailable host must not mark registrar initialized")
	}

	h.Available = true
	if !r.Initialize() {
		t.Error("Initialize should register once the feature becomes available")
	}
}

func TestScenarioTwoCommands(t *testing.T) {
	h := NewFakeHost("toggle_wireframe", "toggle_hud")
	h.Texts["toggle_hud"] = "Toggle HUD"
	NewRegistrar(h).Initialize()

	want := []string{
		"AddBinding(hotkeys,GraphicsExtender.ShowMenu)",
		"AddBinding(misc,GraphicsExtender.toggle_wireframe)",
		"AddBinding(misc,GraphicsExtender.toggle_hud)",
	}
	if !slices.Equal(h.Calls, want) {
		t.Fatalf("calls = %q, want %q", h.Calls, want)
	}

	hud := h.Binding("GraphicsExtender.toggle_hud")
	if hud == nil {
		t.Fatal("toggle_hud binding missing")
	}
	if hud.DisplayText() != "Toggle HUD" {
		t.Errorf("DisplayText = %q, want Toggle HUD", hud.DisplayText())
	}

	h.ResetCalls()
	hud.Activate()
	if !slices.Equal(h.Calls, []string{"ExecuteCommand(toggle_hud)"}) {
		t.Errorf("calls = %q, want one ExecuteCommand(toggle_hud)", h.Calls)
	}
}

func TestEveryCommandTriggersItsOwnName(t *testing.T) {
	names := []string{"a", "b.increase_by_0.1", "c"}
	h := NewFakeHost(names...)
	NewRegistrar(h).Initialize()

	misc := h.Bindings[CategoryMisc]
	if len(misc) != len(names) {
		t.Fatalf("misc bindings = %d, want %d", len(misc), len(names))
	}
	for i, b := range misc {
		h.ResetCalls()
		b.Activate()
		want := []string{"ExecuteCommand(" + names[i] + ")"}
		if !slices.Equal(h.Calls, want) {
			t.Errorf("binding %d calls = %q, want %q", i, h.Calls, want)
		}
	}
}

func TestMenuToggleOrder(t *testing.T) {
	h := NewFakeHost()
	NewMenuToggle(h).Activate()

	want := []string{"SetFocus(listener)", "ShowMenu(true)"}
	if !slices.Equal(h.Calls, want) {
		t.Fatalf("calls = %q, want %q", h.Calls, want)
	}
	if _, ok := h.Focus.(*FocusCapture); !ok {
		t.Errorf("focus = %T, want *FocusCapture", h.Focus)
	}
}

func TestMenuToggleFreshListener(t *testing.T) {
	h := NewFakeHost()
	toggle := NewMenuToggle(h)

	toggle.Activate()
	first := h.Focus
	toggle.Activate()
	if h.Focus == first {
		t.Error("second activation reused the focus listener")
	}
}

func TestEscapePressReleaseClosesOnce(t *testing.T) {
	h := NewFakeHost()
	openMenu(t, h)

	h.SimPress(keys.Escape)
	if len(h.Calls) != 0 {
		t.Fatalf("escape press produced calls %q", h.Calls)
	}
	h.SimRelease(keys.Escape)

	want := []string{"ShowMenu(false)", "SetFocus(nil)"}
	if !slices.Equal(h.Calls, want) {
		t.Fatalf("calls = %q, want %q", h.Calls, want)
	}
	if h.Focus != nil {
		t.Error("focus still held after escape release")
	}
}

func TestEscapeAutoRepeatIgnored(t *testing.T) {
	h := NewFakeHost()
	openMenu(t, h)
	capture := h.Focus

	for i := 0; i < 5; i++ {
		capture.KeyEvent(keys.Escape, true)
	}
	if len(h.Calls) != 0 {
		t.Errorf("repeated escape presses produced %q", h.Calls)
	}
}

func TestNonEscapeKeyRouting(t *testing.T) {
	h := NewFakeHost()
	openMenu(t, h)

	h.pressed[keys.Control] = true
	h.SimPress(keys.Up)
	h.SimRelease(keys.Up)

	want := []string{"HandleMenuKey(up,Ctrl)"}
	if !slices.Equal(h.Calls, want) {
		t.Fatalf("calls = %q, want %q", h.Calls, want)
	}
}

func TestModifierStateIsLive(t *testing.T) {
	h := NewFakeHost()
	openMenu(t, h)
	capture := h.Focus

	h.pressed[keys.Shift] = true
	h.pressed[keys.Alt] = true
	capture.KeyEvent(keys.Right, true)
	delete(h.pressed, keys.Shift)
	capture.KeyEvent(keys.Right, true)

	want := []string{
		"HandleMenuKey(right,Alt+Shift)",
		"HandleMenuKey(right,Alt)",
	}
	if !slices.Equal(h.Calls, want) {
		t.Fatalf("calls = %q, want %q", h.Calls, want)
	}
}

func TestCharEventIgnored(t *testing.T) {
	h := NewFakeHost()
	openMenu(t, h)
	h.Focus.CharEvent('x')
	if len(h.Calls) != 0 {
		t.Errorf("char event produced %q", h.Calls)
	}
}

func TestFocusLifecycleInvariant(t *testing.T) {
	h := NewFakeHost("cmd")
	NewRegistrar(h).Initialize()
	toggle := h.Binding(ShowMenuID)
	h.ResetCalls()

	for session := 0; session < 3; session++ {
		toggle.Activate()
		h.SimPress(keys.Down)
		h.SimRelease(keys.Down)
		h.SimPress(keys.Escape)
		h.SimRelease(keys.Escape)
	}

	if got, want := h.Count("SetFocus(listener)"), h.Count("ShowMenu(true)"); got != want {
		t.Errorf("focus grants = %d, menu shows = %d", got, want)
	}
	for i, c := range h.Calls {
		if c != "SetFocus(nil)" {
			continue
		}
		if i == 0 || h.Calls[i-1] != "ShowMenu(false)" {
			t.Errorf("SetFocus(nil) at %d not preceded by ShowMenu(false): %q", i, h.Calls)
		}
	}
	if h.Count("SetFocus(nil)") != 3 {
		t.Errorf("focus releases = %d, want 3", h.Count("SetFocus(nil)"))
	}
}

func TestModifierState(t *testing.T) {
	h := NewFakeHost()
	if ModifierState(h) != keys.ModNone {
		t.Fatal("expected no modifiers")
	}
	h.pressed[keys.Control] = true
	h.pressed[keys.Shift] = true
	if got := ModifierState(h); got != keys.ModCtrl|keys.ModShift {
		t.Errorf("got %s, want Ctrl+Shift", got)
	}
}
