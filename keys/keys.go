// Package keys enumerates the host's virtual key codes and parses key
// combinations such as "ctrl+shift+m".
package keys

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Code is a host virtual key code.
type Code int

const (
	None      Code = 0
	Cancel    Code = 3
	BackSpace Code = 8
	Tab       Code = 9
	Enter     Code = 10
	Clear     Code = 12
	Shift     Code = 16
	Control   Code = 17
	Alt       Code = 18
	Pause     Code = 19
	CapsLock  Code = 20
	Escape    Code = 27
	Space     Code = 32
	PageUp    Code = 33
	PageDown  Code = 34
	End       Code = 35
	Home      Code = 36
	Left      Code = 37
	Up        Code = 38
	Right     Code = 39
	Down      Code = 40
	Comma     Code = 44
	Period    Code = 46
	Slash     Code = 47
	Semicolon Code = 59
	Equals    Code = 61

	OpenBracket  Code = 91
	BackSlash    Code = 92
	CloseBracket Code = 93

	Multiply Code = 106
	Add      Code = 107
	Subtract Code = 109
	Decimal  Code = 110
	Divide   Code = 111

	F1  Code = 112
	F2  Code = 113
	F3  Code = 114
	F4  Code = 115
	F5  Code = 116
	F6  Code = 117
	F7  Code = 118
	F8  Code = 119
	F9  Code = 120
	F10 Code = 121
	F11 Code = 122
	F12 Code = 123

	Delete     Code = 127
	NumLock    Code = 144
	ScrollLock Code = 145
	Insert     Code = 155
	Meta       Code = 157
	BackQuote  Code = 192
	Quote      Code = 222
)

// Digit and letter codes follow ASCII: '0'..'9' and 'A'..'Z'.
const (
	Digit0  Code = 48
	Digit9  Code = 57
	LetterA Code = 65
	LetterZ Code = 90
	Numpad0 Code = 96
	Numpad9 Code = 105
)

// Letter returns the code of an ASCII letter (either case).
func Letter(r rune) Code {
	if r >= 'a' && r <= 'z' {
		r -= 'a' - 'A'
	}
	if r < 'A' || r > 'Z' {
		return None
	}
	return Code(r)
}

// Digit returns the code of an ASCII digit.
func Digit(r rune) Code {
	if r < '0' || r > '9' {
		return None
	}
	return Code(r)
}

var ErrUnknownKey = errors.New("unknown key")

var names = map[Code]string{
	Cancel:       "cancel",
	BackSpace:    "backspace",
	Tab:          "tab",
	Enter:        "enter",
	Clear:        "clear",
	Shift:        "shift",
	Control:      "ctrl",
	Alt:          "alt",
	Pause:        "pause",
	CapsLock:     "capslock",
	Escape:       "escape",
	Space:        "space",
	PageUp:       "pageup",
	PageDown:     "pagedown",
	End:          "end",
	Home:         "home",
	Left:         "left",
	Up:           "up",
	Right:        "right",
	Down:         "down",
	Comma:        "comma",
	Period:       "period",
	Slash:        "slash",
	Semicolon:    "semicolon",
	Equals:       "equals",
	OpenBracket:  "openbracket",
	BackSlash:    "backslash",
	CloseBracket: "closebracket",
	Multiply:     "multiply",
	Add:          "add",
	Subtract:     "subtract",
	Decimal:      "decimal",
	Divide:       "divide",
	F1:           "f1",
	F2:           "f2",
	F3:           "f3",
	F4:           "f4",
	F5:           "f5",
	F6:           "f6",
	F7:           "f7",
	F8:           "f8",
	F9:           "f9",
	F10:          "f10",
	F11:          "f11",
	F12:          "f12",
	Delete:       "delete",
	NumLock:      "numlock",
	ScrollLock:   "scrolllock",
	Insert:       "insert",
	Meta:         "meta",
	BackQuote:    "backquote",
	Quote:        "quote",
}

// aliases accepted by Parse in addition to the canonical names.
var aliases = map[string]Code{
	"esc":       Escape,
	"control":   Control,
	"return":    Enter,
	"pgup":      PageUp,
	"pgdown":    PageDown,
	"pgdn":      PageDown,
	"plus":      Add,
	"+":         Add,
	"minus":     Subtract,
	"-":         Subtract,
	"del":       Delete,
	"ins":       Insert,
	"super":     Meta,
	"win":       Meta,
	"cmd":       Meta,
	"option":    Alt,
	"backspace": BackSpace,
}

var byName = func() map[string]Code {
	m := make(map[string]Code, len(names)+len(aliases))
	for c, n := range names {
		m[n] = c
	}
	for n, c := range aliases {
		m[n] = c
	}
	return m
}()

// Name returns the canonical lowercase name of c, e.g. "escape" or "a".
func (c Code) Name() string {
	if n, ok := names[c]; ok {
		return n
	}
	switch {
	case c >= LetterA && c <= LetterZ:
		return string(rune('a' + (c - LetterA)))
	case c >= Digit0 && c <= Digit9:
		return string(rune(c))
	case c >= Numpad0 && c <= Numpad9:
		return "numpad" + strconv.Itoa(int(c-Numpad0))
	}
	return "key" + strconv.Itoa(int(c))
}

func (c Code) String() string {
	return c.Name()
}

// IsModifier reports whether c is Control, Alt or Shift.
func (c Code) IsModifier() bool {
	return c == Control || c == Alt || c == Shift
}

// Parse returns the code for a key name (case-insensitive).
func Parse(name string) (Code, error) {
	s := strings.ToLower(strings.TrimSpace(name))
	if s == "" {
		return None, fmt.Errorf("%w: empty name", ErrUnknownKey)
	}
	if c, ok := byName[s]; ok {
		return c, nil
	}
	if len(s) == 1 {
		r := rune(s[0])
		if c := Letter(r); c != None {
			return c, nil
		}
		if c := Digit(r); c != None {
			return c, nil
		}
	}
	if strings.HasPrefix(s, "numpad") {
		if n, err := strconv.Atoi(s[len("numpad"):]); err == nil && n >= 0 && n <= 9 {
			return Numpad0 + Code(n), nil
		}
	}
	if strings.HasPrefix(s, "key") {
		if n, err := strconv.Atoi(s[len("key"):]); err == nil && n > 0 {
			return Code(n), nil
		}
	}
	return None, fmt.Errorf("%w: %q", ErrUnknownKey, name)
}
