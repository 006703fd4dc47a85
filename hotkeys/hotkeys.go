// Package hotkeys binds host commands to hotkeys and owns the modal menu's
// keyboard focus.
//
// Everything here is driven synchronously from the host's input goroutine:
// the host calls Registrar.Initialize once during startup, calls
// Binding.Activate when a bound combination is released, and delivers raw
// key events to whichever Listener currently holds focus.
package hotkeys

import "il2ge/keys"

// Category names a section of the host's binding table.
type Category string

const (
	CategoryHotkeys Category = "hotkeys"
	CategoryMisc    Category = "misc"
)

// Namespace prefixes every binding ID registered by this package.
const Namespace = "GraphicsExtender."

// ShowMenuID is the binding ID of the menu toggle.
const ShowMenuID = Namespace + "ShowMenu"

// Binding is an action the host invokes when its key combination is released.
type Binding interface {
	ID() string
	DisplayText() string
	Activate()
}

// Listener receives raw keyboard input while it holds the host's focus.
type Listener interface {
	KeyEvent(key keys.Code, pressed bool)
	CharEvent(r rune)
}

// Commands enumerates and executes host commands.
type Commands interface {
	CommandCount() int
	CommandNameAt(i int) string
	CommandDisplayText(name string) string
	ExecuteCommand(name string)
}

// Keyboard is the host's keyboard dispatcher. SetFocus(nil) clears focus.
type Keyboard interface {
	IsPressed(key keys.Code) bool
	SetFocus(l Listener)
}

// Overlay is the host's menu overlay.
type Overlay interface {
	ShowMenu(visible bool)
	HandleMenuKey(key keys.Code, mods keys.Mod)
}

// BindingTable is the host's global hotkey table.
type BindingTable interface {
	AddBinding(category Category, b Binding)
}

// Host is everything the subsystem needs from the surrounding application.
type Host interface {
	FeatureAvailable() bool
	Commands
	Keyboard
	Overlay
	BindingTable
}

// ModifierState queries the live pressed state of Control, Alt and Shift.
func ModifierState(kb Keyboard) keys.Mod {
	var mods keys.Mod
	if kb.IsPressed(keys.Control) {
		mods = mods.With(keys.ModCtrl)
	}
	if kb.IsPressed(keys.Alt) {
		mods = mods.With(keys.ModAlt)
	}
	if kb.IsPressed(keys.Shift) {
		mods = mods.With(keys.ModShift)
	}
	return mods
}
