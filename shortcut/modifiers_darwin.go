//go:build darwin

package shortcut

import (
	"golang.design/x/hotkey"

	"il2ge/keys"
)

var modifierMap = map[keys.Mod]hotkey.Modifier{
	keys.ModCtrl:  hotkey.ModCtrl,
	keys.ModShift: hotkey.ModShift,
	keys.ModAlt:   hotkey.ModOption,
}
