//go:build linux

package shortcut

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"il2ge/keys"
)

const (
	evKey      = 1
	keyRelease = 0
	keyPress   = 1
	keyRepeat  = 2
)

// input_event is 24 bytes on 64-bit Linux:
// timeval (16 bytes) + type (2) + code (2) + value (4)
const inputEventSize = 24

// Linux input-event-codes.h values.
var evdevModifiers = map[uint16]keys.Mod{
	29:  keys.ModCtrl,  // KEY_LEFTCTRL
	97:  keys.ModCtrl,  // KEY_RIGHTCTRL
	42:  keys.ModShift, // KEY_LEFTSHIFT
	54:  keys.ModShift, // KEY_RIGHTSHIFT
	56:  keys.ModAlt,   // KEY_LEFTALT
	100: keys.ModAlt,   // KEY_RIGHTALT
}

// a=30, b=48, c=46, d=32, e=18, f=33, g=34, h=35, i=23, j=36,
// k=37, l=38, m=50, n=49, o=24, p=25, q=16, r=19, s=31, t=20,
// u=22, v=47, w=17, x=45, y=21, z=44
var letterCodes = [26]uint16{
	30, 48, 46, 32, 18, 33, 34, 35, 23, 36,
	37, 38, 50, 49, 24, 25, 16, 19, 31, 20,
	22, 47, 17, 45, 21, 44,
}

// 0=11, 1=2, 2=3, ..., 9=10
var digitCodes = [10]uint16{11, 2, 3, 4, 5, 6, 7, 8, 9, 10}

// 0=82, 1=79, 2=80, 3=81, 4=75, 5=76, 6=77, 7=71, 8=72, 9=73
var numpadCodes = [10]uint16{82, 79, 80, 81, 75, 76, 77, 71, 72, 73}

var evdevKeys = map[keys.Code]uint16{
	keys.Escape:    1,
	keys.BackSpace: 14,
	keys.Tab:       15,
	keys.Enter:     28,
	keys.Space:     57,
	keys.Subtract:  74, // KEY_KPMINUS
	keys.Add:       78, // KEY_KPPLUS
	keys.F11:       87,
	keys.F12:       88,
	keys.Home:      102,
	keys.Up:        103,
	keys.PageUp:    104,
	keys.Left:      105,
	keys.Right:     106,
	keys.End:       107,
	keys.Down:      108,
	keys.PageDown:  109,
	keys.Insert:    110,
	keys.Delete:    111,
}

func evdevCode(c keys.Code) (uint16, bool) {
	switch {
	case c >= keys.LetterA && c <= keys.LetterZ:
		return letterCodes[c-keys.LetterA], true
	case c >= keys.Digit0 && c <= keys.Digit9:
		return digitCodes[c-keys.Digit0], true
	case c >= keys.Numpad0 && c <= keys.Numpad9:
		return numpadCodes[c-keys.Numpad0], true
	case c >= keys.F1 && c <= keys.F10:
		return 59 + uint16(c-keys.F1), true
	}
	code, ok := evdevKeys[c]
	return code, ok
}

// matcher follows one device's key stream and reports when the combo key
// goes down with exactly the combo's modifiers held, and when it comes up.
type matcher struct {
	key  uint16
	mods keys.Mod
	held map[uint16]bool
	down bool
}

func newMatcher(key uint16, mods keys.Mod) *matcher {
	return &matcher{key: key, mods: mods, held: make(map[uint16]bool)}
}

func (m *matcher) modState() keys.Mod {
	var mods keys.Mod
	for code := range m.held {
		mods = mods.With(evdevModifiers[code])
	}
	return mods
}

// feed returns +1 for a combo press, -1 for its release, 0 otherwise.
func (m *matcher) feed(code uint16, value int32) int {
	if _, ok := evdevModifiers[code]; ok {
		switch value {
		case keyPress:
			m.held[code] = true
		case keyRelease:
			delete(m.held, code)
		}
		return 0
	}
	if code != m.key {
		return 0
	}
	switch value {
	case keyPress:
		if !m.down && m.modState() == m.mods {
			m.down = true
			return 1
		}
	case keyRelease:
		if m.down {
			m.down = false
			return -1
		}
	}
	return 0
}

type evdevHotkey struct {
	key     uint16
	mods    keys.Mod
	keydown chan struct{}
	keyup   chan struct{}
	files   []*os.File
	stop    chan struct{}
	once    sync.Once
}

// newHotkey creates a hotkey using evdev (reads /dev/input directly).
// Register requires the user to be in the 'input' group.
func newHotkey(combo keys.Combo) (Hotkey, error) {
	code, ok := evdevCode(combo.Key)
	if !ok {
		return nil, fmt.Errorf("%w: key %s", ErrUnsupported, combo.Key)
	}
	return &evdevHotkey{
		key:     code,
		mods:    combo.Mods,
		keydown: make(chan struct{}, 1),
		keyup:   make(chan struct{}, 1),
	}, nil
}

func (h *evdevHotkey) Register() error {
	keyboards, err := findKeyboards()
	if err != nil {
		return fmt.Errorf("finding keyboards: %w", err)
	}
	if len(keyboards) == 0 {
		return errors.New("no keyboard devices found (is user in 'input' group?)")
	}

	h.stop = make(chan struct{})

	for _, path := range keyboards {
		f, err := os.Open(path)
		if err != nil {
			continue
		}
		h.files = append(h.files, f)
		go h.readEvents(f)
	}

	if len(h.files) == 0 {
		return errors.New("could not open any keyboard device (run: sudo usermod -aG input $USER, then re-login)")
	}
	return nil
}

// readEvents runs until r fails, which Unregister forces by closing it.
func (h *evdevHotkey) readEvents(r io.Reader) {
	m := newMatcher(h.key, h.mods)
	buf := make([]byte, inputEventSize*16)

	for {
		n, err := io.ReadAtLeast(r, buf, inputEventSize)
		if err != nil {
			return
		}
		for i := 0; i+inputEventSize <= n; i += inputEventSize {
			if binary.LittleEndian.Uint16(buf[i+16:]) != evKey {
				continue
			}
			code := binary.LittleEndian.Uint16(buf[i+18:])
			value := int32(binary.LittleEndian.Uint32(buf[i+20:]))

			switch m.feed(code, value) {
			case 1:
				notify(h.keydown)
			case -1:
				notify(h.keyup)
			}
		}
	}
}

func (h *evdevHotkey) Unregister() {
	h.once.Do(func() {
		if h.stop != nil {
			close(h.stop)
		}
		for _, f := range h.files {
			f.Close()
		}
	})
}

func (h *evdevHotkey) Keydown() <-chan struct{} {
	return h.keydown
}

func (h *evdevHotkey) Keyup() <-chan struct{} {
	return h.keyup
}

func findKeyboards() ([]string, error) {
	entries, err := os.ReadDir("/dev/input")
	if err != nil {
		return nil, err
	}

	var keyboards []string
	for _, e := range entries {
		if !strings.HasPrefix(e.Name(), "event") {
			continue
		}
		if isKeyboard(e.Name()) {
			keyboards = append(keyboards, filepath.Join("/dev/input", e.Name()))
		}
	}
	return keyboards, nil
}

func isKeyboard(eventName string) bool {
	capsPath := filepath.Join("/sys/class/input", eventName, "device", "capabilities", "key")
	data, err := os.ReadFile(capsPath)
	if err != nil {
		return false
	}
	// Real keyboards have long key capability bitmaps
	return len(strings.TrimSpace(string(data))) > 10
}
