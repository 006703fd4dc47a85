//go:build darwin || windows

package shortcut

import (
	"fmt"
	"sync"

	"golang.design/x/hotkey"

	"il2ge/keys"
)

var keyMap = map[keys.Code]hotkey.Key{
	keys.Space:  hotkey.KeySpace,
	keys.Enter:  hotkey.KeyReturn,
	keys.Tab:    hotkey.KeyTab,
	keys.Escape: hotkey.KeyEscape,
	keys.Delete: hotkey.KeyDelete,
	keys.Left:   hotkey.KeyLeft,
	keys.Right:  hotkey.KeyRight,
	keys.Up:     hotkey.KeyUp,
	keys.Down:   hotkey.KeyDown,

	keys.Digit('0'): hotkey.Key0,
	keys.Digit('1'): hotkey.Key1,
	keys.Digit('2'): hotkey.Key2,
	keys.Digit('3'): hotkey.Key3,
	keys.Digit('4'): hotkey.Key4,
	keys.Digit('5'): hotkey.Key5,
	keys.Digit('6'): hotkey.Key6,
	keys.Digit('7'): hotkey.Key7,
	keys.Digit('8'): hotkey.Key8,
	keys.Digit('9'): hotkey.Key9,

	keys.Letter('a'): hotkey.KeyA,
	keys.Letter('b'): hotkey.KeyB,
	keys.Letter('c'): hotkey.KeyC,
	keys.Letter('d'): hotkey.KeyD,
	keys.Letter('e'): hotkey.KeyE,
	keys.Letter('f'): hotkey.KeyF,
	keys.Letter('g'): hotkey.KeyG,
	keys.Letter('h'): hotkey.KeyH,
	keys.Letter('i'): hotkey.KeyI,
	keys.Letter('j'): hotkey.KeyJ,
	keys.Letter('k'): hotkey.KeyK,
	keys.Letter('l'): hotkey.KeyL,
	keys.Letter('m'): hotkey.KeyM,
	keys.Letter('n'): hotkey.KeyN,
	keys.Letter('o'): hotkey.KeyO,
	keys.Letter('p'): hotkey.KeyP,
	keys.Letter('q'): hotkey.KeyQ,
	keys.Letter('r'): hotkey.KeyR,
	keys.Letter('s'): hotkey.KeyS,
	keys.Letter('t'): hotkey.KeyT,
	keys.Letter('u'): hotkey.KeyU,
	keys.Letter('v'): hotkey.KeyV,
	keys.Letter('w'): hotkey.KeyW,
	keys.Letter('x'): hotkey.KeyX,
	keys.Letter('y'): hotkey.KeyY,
	keys.Letter('z'): hotkey.KeyZ,

	keys.F1:  hotkey.KeyF1,
	keys.F2:  hotkey.KeyF2,
	keys.F3:  hotkey.KeyF3,
	keys.F4:  hotkey.KeyF4,
	keys.F5:  hotkey.KeyF5,
	keys.F6:  hotkey.KeyF6,
	keys.F7:  hotkey.KeyF7,
	keys.F8:  hotkey.KeyF8,
	keys.F9:  hotkey.KeyF9,
	keys.F10: hotkey.KeyF10,
	keys.F11: hotkey.KeyF11,
	keys.F12: hotkey.KeyF12,
}

func translate(combo keys.Combo) ([]hotkey.Modifier, hotkey.Key, error) {
	key, ok := keyMap[combo.Key]
	if !ok {
		return nil, 0, fmt.Errorf("%w: key %s", ErrUnsupported, combo.Key)
	}
	var mods []hotkey.Modifier
	for _, m := range []keys.Mod{keys.ModCtrl, keys.ModAlt, keys.ModShift} {
		if combo.Mods.Has(m) {
			mods = append(mods, modifierMap[m])
		}
	}
	return mods, key, nil
}

type xHotkey struct {
	hk      *hotkey.Hotkey
	keydown chan struct{}
	keyup   chan struct{}
	stop    chan struct{}
	once    sync.Once
}

// newHotkey creates a hotkey using golang.design/x/hotkey (Cocoa/Win32).
func newHotkey(combo keys.Combo) (Hotkey, error) {
	mods, key, err := translate(combo)
	if err != nil {
		return nil, err
	}
	return &xHotkey{
		hk:      hotkey.New(mods, key),
		keydown: make(chan struct{}, 1),
		keyup:   make(chan struct{}, 1),
	}, nil
}

func (h *xHotkey) Register() error {
	if err := h.hk.Register(); err != nil {
		return err
	}
	h.stop = make(chan struct{})
	go h.forward(h.hk.Keydown(), h.keydown)
	go h.forward(h.hk.Keyup(), h.keyup)
	return nil
}

func (h *xHotkey) forward(in <-chan hotkey.Event, out chan struct{}) {
	for {
		select {
		case <-in:
			notify(out)
		case <-h.stop:
			return
		}
	}
}

func (h *xHotkey) Unregister() {
	h.once.Do(func() {
		if h.stop != nil {
			close(h.stop)
		}
		h.hk.Unregister()
	})
}

func (h *xHotkey) Keydown() <-chan struct{} {
	return h.keydown
}

func (h *xHotkey) Keyup() <-chan struct{} {
	return h.keyup
}
