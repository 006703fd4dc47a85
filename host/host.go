// Package host is a reference implementation of the application side of the
// hotkey contract: the binding table and key store, the keyboard dispatcher
// with its single focus slot, the menu overlay and command execution.
//
// A Host is not safe for concurrent use. Feed it from one event loop.
// Executed is the exception and may be read from any goroutine.
package host

import (
	"errors"
	"fmt"
	"sync/atomic"

	"il2ge/clipboard"
	"il2ge/command"
	"il2ge/config"
	"il2ge/hotkeys"
	"il2ge/keys"
	"il2ge/log"
	"il2ge/menu"
	"il2ge/param"
)

// Built-in commands registered next to the parameter commands.
const (
	CmdResetParameters = "ResetParameters"
	CmdCopyParameters  = "CopyParameters"
	CmdToggleEnable    = "ToggleEnable"
)

// categoryOrder is the lookup order when two bindings share a combo.
var categoryOrder = []hotkeys.Category{hotkeys.CategoryHotkeys, hotkeys.CategoryMisc}

type Host struct {
	enabled  bool
	params   *param.Set
	commands *command.Registry
	menu     *menu.Menu

	bindings map[hotkeys.Category][]hotkeys.Binding
	combos   map[string]keys.Combo

	pressed map[keys.Code]bool
	focus   hotkeys.Listener

	executed  atomic.Int64
	clipboard func(string) error
}

var _ hotkeys.Host = (*Host)(nil)

// New builds a host from cfg. The menu hotkey is stored as the combo of
// hotkeys.ShowMenuID; [bindings] supply the rest of the key store.
func New(cfg config.Config) (*Host, error) {
	params, err := cfg.ParamSet()
	if err != nil {
		return nil, fmt.Errorf("building parameters: %w", err)
	}
	menuCombo, err := cfg.MenuCombo()
	if err != nil {
		return nil, fmt.Errorf("menu hotkey: %w", err)
	}

	h := &Host{
		enabled:   cfg.Enabled,
		params:    params,
		commands:  command.NewRegistry(),
		menu:      menu.New(params),
		bindings:  make(map[hotkeys.Category][]hotkeys.Binding),
		combos:    cfg.Combos(),
		pressed:   make(map[keys.Code]bool),
		clipboard: clipboard.Copy,
	}
	h.combos[hotkeys.ShowMenuID] = menuCombo

	h.commands.AddParameterCommands(params)
	h.commands.Add(CmdResetParameters, "Reset all parameters", params.ResetAll)
	h.commands.Add(CmdCopyParameters, "Copy parameter values", h.copyParameters)
	h.commands.Add(CmdToggleEnable, "Toggle enable", h.toggleEnable)
	return h, nil
}

// SetClipboard replaces the clipboard writer used by CopyParameters.
func (h *Host) SetClipboard(fn func(string) error) {
	h.clipboard = fn
}

func (h *Host) copyParameters() {
	if err := h.clipboard(h.params.Dump()); err != nil {
		log.Errorf("copy parameters: %v", err)
	}
}

// toggleEnable suspends or resumes the feature. Registered bindings stay in
// the table; while suspended only the toggle itself dispatches.
func (h *Host) toggleEnable() {
	h.enabled = !h.enabled
	log.FeatureToggled(h.enabled)
}

func (h *Host) FeatureAvailable() bool { return h.enabled }

func (h *Host) CommandCount() int { return h.commands.Count() }

func (h *Host) CommandNameAt(i int) string { return h.commands.NameAt(i) }

func (h *Host) CommandDisplayText(name string) string { return h.commands.DisplayText(name) }

func (h *Host) ExecuteCommand(name string) {
	if err := h.commands.Execute(name); err != nil {
		if errors.Is(err, command.ErrUnknown) {
			log.UnknownCommand(name)
			return
		}
		log.Errorf("command %s: %v", name, err)
		return
	}
	h.executed.Add(1)
	log.CommandExecuted(name)
}

func (h *Host) IsPressed(key keys.Code) bool { return h.pressed[key] }

func (h *Host) SetFocus(l hotkeys.Listener) {
	h.focus = l
	log.FocusChanged(l != nil)
}

func (h *Host) ShowMenu(visible bool) {
	h.menu.Show(visible)
	log.MenuVisibility(visible)
}

func (h *Host) HandleMenuKey(key keys.Code, mods keys.Mod) {
	h.menu.HandleKey(key, mods)
}

func (h *Host) AddBinding(category hotkeys.Category, b hotkeys.Binding) {
	h.bindings[category] = append(h.bindings[category], b)
	log.BindingAdded(string(category), b.ID(), h.combos[b.ID()].String())
}

// KeyEvent is the input pump entry point. While a listener holds focus it
// receives every event; otherwise releasing a key activates the binding
// whose combo matches the key and the modifiers held at that moment.
func (h *Host) KeyEvent(key keys.Code, pressed bool) {
	if pressed {
		h.pressed[key] = true
	} else {
		delete(h.pressed, key)
	}

	if h.focus != nil {
		h.focus.KeyEvent(key, pressed)
		return
	}
	if pressed || key.IsModifier() {
		return
	}
	if b := h.lookup(keys.Combo{Key: key, Mods: hotkeys.ModifierState(h)}); b != nil {
		b.Activate()
	}
}

// Char routes text input to the focus holder.
func (h *Host) Char(r rune) {
	if h.focus != nil {
		h.focus.CharEvent(r)
	}
}

// Tap plays a full press and release of combo: modifiers down, key down,
// key up, modifiers up.
func (h *Host) Tap(combo keys.Combo) {
	mods := combo.Mods.Codes()
	for _, m := range mods {
		h.KeyEvent(m, true)
	}
	h.KeyEvent(combo.Key, true)
	h.KeyEvent(combo.Key, false)
	for i := len(mods) - 1; i >= 0; i-- {
		h.KeyEvent(mods[i], false)
	}
}

func (h *Host) lookup(combo keys.Combo) hotkeys.Binding {
	for _, cat := range categoryOrder {
		for _, b := range h.bindings[cat] {
			if c, ok := h.combos[b.ID()]; ok && c == combo && h.dispatches(b) {
				return b
			}
		}
	}
	return nil
}

func (h *Host) dispatches(b hotkeys.Binding) bool {
	return h.enabled || b.ID() == hotkeys.Namespace+CmdToggleEnable
}

// Activate runs the registered binding with id, as if its combo had been
// released. It reports whether such a binding exists.
func (h *Host) Activate(id string) bool {
	for _, cat := range categoryOrder {
		for _, b := range h.bindings[cat] {
			if b.ID() == id {
				if h.dispatches(b) {
					b.Activate()
				}
				return true
			}
		}
	}
	return false
}

func (h *Host) Bindings(category hotkeys.Category) []hotkeys.Binding {
	return h.bindings[category]
}

// Combo returns the key combination stored for a binding ID.
func (h *Host) Combo(id string) (keys.Combo, bool) {
	c, ok := h.combos[id]
	return c, ok
}

func (h *Host) Menu() *menu.Menu { return h.menu }

func (h *Host) Params() *param.Set { return h.params }

// Focused reports whether a listener currently holds keyboard focus.
func (h *Host) Focused() bool { return h.focus != nil }

// Executed counts successfully executed commands.
func (h *Host) Executed() int { return int(h.executed.Load()) }
