package hotkeys

import (
	"fmt"

	"il2ge/keys"
)

// FakeHost is an in-memory Host that records every call made into it.
type FakeHost struct {
	Available bool
	Names     []string
	Texts     map[string]string

	Focus    Listener
	Bindings map[Category][]Binding
	Calls    []string

	pressed map[keys.Code]bool
}

func NewFakeHost(names ...string) *FakeHost {
	return &FakeHost{
		Available: true,
		Names:     names,
		Texts:     make(map[string]string),
		Bindings:  make(map[Category][]Binding),
		pressed:   make(map[keys.Code]bool),
	}
}

func (f *FakeHost) record(format string, args ...any) {
	f.Calls = append(f.Calls, fmt.Sprintf(format, args...))
}

func (f *FakeHost) FeatureAvailable() bool { return f.Available }

func (f *FakeHost) CommandCount() int { return len(f.Names) }

func (f *FakeHost) CommandNameAt(i int) string { return f.Names[i] }

func (f *FakeHost) CommandDisplayText(name string) string { return f.Texts[name] }

func (f *FakeHost) ExecuteCommand(name string) { f.record("ExecuteCommand(%s)", name) }

func (f *FakeHost) IsPressed(key keys.Code) bool { return f.pressed[key] }

func (f *FakeHost) SetFocus(l Listener) {
	f.Focus = l
	if l == nil {
		f.record("SetFocus(nil)")
		return
	}
	f.record("SetFocus(listener)")
}

func (f *FakeHost) ShowMenu(visible bool) { f.record("ShowMenu(%t)", visible) }

func (f *FakeHost) HandleMenuKey(key keys.Code, mods keys.Mod) {
	f.record("HandleMenuKey(%s,%s)", key, mods)
}

func (f *FakeHost) AddBinding(category Category, b Binding) {
	f.Bindings[category] = append(f.Bindings[category], b)
	f.record("AddBinding(%s,%s)", category, b.ID())
}

// SimPress marks key held and delivers the press to the focus holder.
func (f *FakeHost) SimPress(key keys.Code) {
	f.pressed[key] = true
	if f.Focus != nil {
		f.Focus.KeyEvent(key, true)
	}
}

// SimRelease clears key and delivers the release to the focus holder.
func (f *FakeHost) SimRelease(key keys.Code) {
	delete(f.pressed, key)
	if f.Focus != nil {
		f.Focus.KeyEvent(key, false)
	}
}

// Binding returns the registered binding with id, or nil.
func (f *FakeHost) Binding(id string) Binding {
	for _, bs := range f.Bindings {
		for _, b := range bs {
			if b.ID() == id {
				return b
			}
		}
	}
	return nil
}

// Count returns how many recorded calls equal call.
func (f *FakeHost) Count(call string) int {
	n := 0
	for _, c := range f.Calls {
		if c == call {
			n++
		}
	}
	return n
}

func (f *FakeHost) ResetCalls() { f.Calls = nil }
