// Package shortcut registers a system-wide key combination and reports its
// press and release. It lets the menu hotkey work while the terminal is
// unfocused. Linux reads evdev devices directly; other platforms go through
// golang.design/x/hotkey (Cocoa, Win32).
package shortcut

import (
	"errors"
	"fmt"

	"il2ge/keys"
)

// Hotkey provides global shortcut registration with press/release events.
type Hotkey interface {
	Register() error
	Unregister()
	Keydown() <-chan struct{}
	Keyup() <-chan struct{}
}

// ErrUnsupported is returned for combos the platform backend cannot grab.
var ErrUnsupported = errors.New("combo cannot be registered globally")

// New creates a global hotkey for combo. Nothing is grabbed until Register.
func New(combo keys.Combo) (Hotkey, error) {
	return newHotkey(combo)
}

// Supported reports whether combo has a global mapping on this platform.
func Supported(combo keys.Combo) bool {
	_, err := newHotkey(combo)
	return err == nil
}

// Diagnose grabs and releases combo and returns a status message.
func Diagnose(combo keys.Combo) (string, error) {
	hk, err := New(combo)
	if err != nil {
		return "", err
	}
	if err := hk.Register(); err != nil {
		return "", fmt.Errorf("registering %s: %w", combo, err)
	}
	hk.Unregister()
	return fmt.Sprintf("global shortcut available (%s)", combo), nil
}

func notify(ch chan struct{}) {
	select {
	case ch <- struct{}{}:
	default:
	}
}
