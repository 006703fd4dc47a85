package keys

import (
	"fmt"
	"strings"
)

// Mod is a set of held modifier keys.
type Mod uint8

const ModNone Mod = 0

const (
	ModCtrl Mod = 1 << iota
	ModAlt
	ModShift
)

func (m Mod) Has(mod Mod) bool { return m&mod != 0 }
func (m Mod) HasCtrl() bool { return m.Has(ModCtrl) }
func (m Mod) HasAlt() bool { return m.Has(ModAlt) }
func (m Mod) HasShift() bool { return m.Has(ModShift) }

// With returns m with mod added.
func (m Mod) With(mod Mod) Mod { return m | mod }

// String returns "Ctrl+Alt+Shift" style text, empty for ModNone.
func (m Mod) String() string {
	var parts []string
	if m.HasCtrl() {
		parts = append(parts, "Ctrl")
	}
	if m.HasAlt() {
		parts = append(parts, "Alt")
	}
	if m.HasShift() {
		parts = append(parts, "Shift")
	}
	return strings.Join(parts, "+")
}

// Codes returns the modifier key codes held in m, in Ctrl, Alt, Shift order.
func (m Mod) Codes() []Code {
	var codes []Code
	if m.HasCtrl() {
		codes = append(codes, Control)
	}
	if m.HasAlt() {
		codes = append(codes, Alt)
	}
	if m.HasShift() {
		codes = append(codes, Shift)
	}
	return codes
}

// ModFor returns the Mod bit of a modifier key code, ModNone otherwise.
func ModFor(c Code) Mod {
	switch c {
	case Control:
		return ModCtrl
	case Alt:
		return ModAlt
	case Shift:
		return ModShift
	}
	return ModNone
}

// Combo is a non-modifier key plus the modifiers that must be held with it.
type Combo struct {
	Key  Code
	Mods Mod
}

func (c Combo) IsZero() bool { return c.Key == None }

// String renders the combo the way ParseCombo reads it, e.g. "ctrl+shift+m".
func (c Combo) String() string {
	if c.IsZero() {
		return ""
	}
	var parts []string
	for _, m := range c.Mods.Codes() {
		parts = append(parts, m.Name())
	}
	return strings.Join(append(parts, c.Key.Name()), "+")
}

// ParseCombo parses "ctrl+shift+m", "Alt+PageUp" or a bare key name.
// A trailing "+" key is written as "ctrl+plus".
func ParseCombo(s string) (Combo, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Combo{}, fmt.Errorf("%w: empty combo", ErrUnknownKey)
	}
	if s == "+" {
		return Combo{Key: Add}, nil
	}

	parts := strings.Split(s, "+")
	var combo Combo
	for i, part := range parts {
		code, err := Parse(part)
		if err != nil {
			return Combo{}, fmt.Errorf("parsing combo %q: %w", s, err)
		}
		last := i == len(parts)-1
		if !last {
			mod := ModFor(code)
			if mod == ModNone {
				return Combo{}, fmt.Errorf("parsing combo %q: %q is not a modifier", s, part)
			}
			combo.Mods = combo.Mods.With(mod)
			continue
		}
		if code.IsModifier() {
			return Combo{}, fmt.Errorf("parsing combo %q: combo needs a non-modifier key", s)
		}
		combo.Key = code
	}
	return combo, nil
}

// MustParseCombo is ParseCombo for literals; it panics on error.
func MustParseCombo(s string) Combo {
	c, err := ParseCombo(s)
	if err != nil {
		panic(err)
	}
	return c
}
