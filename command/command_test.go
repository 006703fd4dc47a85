package command

import (
	"errors"
	"math"
	"testing"

	"il2ge/param"
)

func newSet(t *testing.T, params ...*param.Parameter) *param.Set {
	t.Helper()
	s, err := param.NewSet(params...)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestAddKeepsNamesUnique(t *testing.T) {
	r := NewRegistry()
	calls := ""
	r.Add("toggle_hud", "Toggle HUD", func() { calls += "a" })
	r.Add("toggle_wireframe", "", nil)
	r.Add("toggle_hud", "Toggle HUD", func() { calls += "b" })

	if r.Count() != 2 {
		t.Fatalf("Count = %d, want 2", r.Count())
	}
	if r.NameAt(0) != "toggle_hud" || r.NameAt(1) != "toggle_wireframe" {
		t.Errorf("names = %q, %q", r.NameAt(0), r.NameAt(1))
	}
	if err := r.Execute("toggle_hud"); err != nil {
		t.Fatal(err)
	}
	if calls != "b" {
		t.Errorf("calls = %q, want replaced action only", calls)
	}
	if err := r.Execute("toggle_wireframe"); err != nil {
		t.Errorf("nil action should be a no-op, got %v", err)
	}
}

func TestExecuteUnknown(t *testing.T) {
	r := NewRegistry()
	err := r.Execute("nope")
	if !errors.Is(err, ErrUnknown) {
		t.Fatalf("err = %v, want ErrUnknown", err)
	}
	if r.DisplayText("nope") != "" {
		t.Error("unknown command should have empty display text")
	}
}

func TestAddParameterCommands(t *testing.T) {
	exposure := param.New("exposure", 1)
	set := newSet(t, exposure, param.New("saturation", 1))

	r := NewRegistry()
	r.AddParameterCommands(set)

	if want := set.Len() * len(Increments) * 2; r.Count() != want {
		t.Fatalf("Count = %d, want %d", r.Count(), want)
	}

	wantNames := []string{
		"exposure.decrease_by_0.1", "exposure.increase_by_0.1",
		"exposure.decrease_by_1", "exposure.increase_by_1",
		"exposure.decrease_by_10", "exposure.increase_by_10",
		"exposure.decrease_by_100", "exposure.increase_by_100",
	}
	for i, want := range wantNames {
		if got := r.NameAt(i); got != want {
			t.Errorf("NameAt(%d) = %q, want %q", i, got, want)
		}
	}

	if err := r.Execute("exposure.increase_by_10"); err != nil {
		t.Fatal(err)
	}
	if err := r.Execute("exposure.decrease_by_0.1"); err != nil {
		t.Fatal(err)
	}
	if got := exposure.Get(); math.Abs(got-10.9) > 1e-9 {
		t.Errorf("exposure = %v, want 10.9", got)
	}
	if got := r.DisplayText("saturation.increase_by_100"); got != "saturation: increase by 100" {
		t.Errorf("DisplayText = %q", got)
	}
}
