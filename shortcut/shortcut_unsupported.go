//go:build !linux && !darwin && !windows

package shortcut

import (
	"fmt"

	"il2ge/keys"
)

func newHotkey(combo keys.Combo) (Hotkey, error) {
	return nil, fmt.Errorf("%w: no global shortcut backend on this platform", ErrUnsupported)
}
