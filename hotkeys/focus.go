package hotkeys

import "il2ge/keys"

// FocusCapture holds keyboard focus while the menu is open. It is alive
// exactly as long as it is the host's focus target; releasing Escape hides
// the menu and clears focus, after which the instance is dropped.
type FocusCapture struct {
	host Host
}

func NewFocusCapture(host Host) *FocusCapture {
	return &FocusCapture{host: host}
}

// KeyEvent acts on Escape only when it is released, so auto-repeat presses
// cannot close the menu. Other keys are forwarded on press with the
// modifier state sampled at that moment.
func (f *FocusCapture) KeyEvent(key keys.Code, pressed bool) {
	switch {
	case key == keys.Escape && !pressed:
		f.host.ShowMenu(false)
		f.host.SetFocus(nil)
	case key == keys.Escape:
	case pressed:
		f.host.HandleMenuKey(key, ModifierState(f.host))
	}
}

// CharEvent ignores text input.
func (f *FocusCapture) CharEvent(rune) {}
