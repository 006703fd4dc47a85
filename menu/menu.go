// Package menu implements the parameter menu state: which entry is active and
// how navigation keys change parameter values. Drawing is left to the caller.
package menu

import (
	"fmt"

	"il2ge/keys"
	"il2ge/param"
)

// LineKind tells a renderer how to style a line.
type LineKind int

const (
	LineBlank LineKind = iota
	LineHelp
	LineParam
	LineActiveParam
)

type Line struct {
	Text string
	Kind LineKind
}

type Menu struct {
	params *param.Set
	shown  bool
	active int
}

func New(params *param.Set) *Menu {
	return &Menu{params: params}
}

func (m *Menu) Shown() bool { return m.shown }

func (m *Menu) Show(show bool) { m.shown = show }

// Active returns the index of the selected parameter.
func (m *Menu) Active() int { return m.active }

func (m *Menu) hasActive() bool {
	return m.active >= 0 && m.active < m.params.Len()
}

func (m *Menu) setActive(index int) {
	size := m.params.Len()
	if size == 0 {
		return
	}
	index %= size
	if index < 0 {
		index += size
	}
	m.active = index
}

func (m *Menu) changeValue(delta float64) {
	if !m.hasActive() {
		return
	}
	m.params.At(m.active).Add(delta)
}

// HandleKey applies one navigation key press. Shift multiplies value
// changes by 10. It reports whether the key was recognised.
func (m *Menu) HandleKey(key keys.Code, mods keys.Mod) bool {
	scale := 1.0
	if mods.HasShift() {
		scale = 10
	}

	switch key {
	case keys.Up:
		m.setActive(m.active - 1)
	case keys.Down:
		m.setActive(m.active + 1)
	case keys.Letter('r'):
		if m.hasActive() {
			m.params.At(m.active).Reset()
		}
	case keys.Left:
		m.changeValue(-0.01 * scale)
	case keys.Right:
		m.changeValue(0.01 * scale)
	case keys.Subtract:
		m.changeValue(-1 * scale)
	case keys.Add:
		m.changeValue(1 * scale)
	case keys.PageDown:
		m.changeValue(-100 * scale)
	case keys.PageUp:
		m.changeValue(100 * scale)
	default:
		return false
	}
	return true
}

// Lines returns the help text followed by one line per parameter.
func (m *Menu) Lines() []Line {
	help := func(text string) Line { return Line{Text: text, Kind: LineHelp} }
	blank := Line{Kind: LineBlank}

	lines := []Line{blank, help("Escape: exit menu")}
	if m.params.Len() > 0 {
		lines = append(lines,
			help("Down/Up: navigate menu"),
			blank,
			help("Left/Right: change value by 0.01"),
			help("-/+: change value by 1.00"),
			help("PageDown/PageUp: change value by 100"),
			blank,
			help("(Shift multiplies change amount by 10)"),
			blank,
			help("r: reset value"),
		)
	}
	lines = append(lines, blank)

	for i := 0; i < m.params.Len(); i++ {
		p := m.params.At(i)
		kind := LineParam
		if i == m.active {
			kind = LineActiveParam
		}
		lines = append(lines, Line{Text: fmt.Sprintf("%s: %.2f", p.Name, p.Get()), Kind: kind}, blank)
	}
	return lines
}
