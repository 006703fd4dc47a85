package main

import (
	"fmt"
	"strings"
	"sync"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"il2ge/host"
	"il2ge/hotkeys"
	"il2ge/keys"
	"il2ge/menu"
	"il2ge/shortcut"
)

// TUI message types
type globalMenuMsg struct{}

type tuiModel struct {
	h             *host.Host
	width, height int
	lastKey       string
	status        string
}

var (
	tuiProgram *tea.Program
	tuiMu      sync.Mutex
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("239"))
	boldStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("239")).Bold(true)
	comboStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	offStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	activeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("214"))
	paramStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	menuBox     = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("214")).
			Padding(0, 2)
)

func newTUIModel(h *host.Host) tuiModel {
	return tuiModel{h: h}
}

func runTUI(h *host.Host, hk shortcut.Hotkey) error {
	p := tea.NewProgram(newTUIModel(h), tea.WithAltScreen())
	tuiMu.Lock()
	tuiProgram = p
	tuiMu.Unlock()
	defer func() {
		tuiMu.Lock()
		tuiProgram = nil
		tuiMu.Unlock()
	}()

	done := make(chan struct{})
	defer close(done)
	if hk != nil {
		go forwardShortcut(hk, p, done)
	}

	_, err := p.Run()
	return err
}

// forwardShortcut posts global shortcut releases into the program's event
// loop so the host is only touched from one goroutine.
func forwardShortcut(hk shortcut.Hotkey, p *tea.Program, done <-chan struct{}) {
	for {
		select {
		case <-hk.Keyup():
			p.Send(globalMenuMsg{})
		case <-done:
			return
		}
	}
}

// quitTUI asks a running TUI to exit and reports whether one was running.
func quitTUI() bool {
	tuiMu.Lock()
	p := tuiProgram
	tuiMu.Unlock()
	if p == nil {
		return false
	}
	p.Quit()
	return true
}

func (m tuiModel) Init() tea.Cmd {
	return nil
}

func (m tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		combo, r, ok := comboFromKey(msg)
		if !ok {
			m.status = "unmapped key " + msg.String()
			return m, nil
		}
		m.lastKey = combo.String()
		m.status = ""
		executed := m.h.Executed()
		m.h.Tap(combo)
		if r != 0 {
			m.h.Char(r)
		}
		if n := m.h.Executed() - executed; n > 0 {
			m.status = fmt.Sprintf("ran %d command(s)", n)
		}

	case globalMenuMsg:
		if m.h.Activate(hotkeys.ShowMenuID) {
			m.lastKey = "global shortcut"
		}
	}
	return m, nil
}

// comboFromKey maps a terminal key event to a host key combination. The
// rune is non-zero for printable input, which is also routed as a char.
func comboFromKey(msg tea.KeyMsg) (keys.Combo, rune, bool) {
	var mods keys.Mod
	if msg.Alt {
		mods = mods.With(keys.ModAlt)
	}

	switch msg.Type {
	case tea.KeySpace:
		return keys.Combo{Key: keys.Space, Mods: mods}, ' ', true
	case tea.KeyRunes:
		if len(msg.Runes) != 1 {
			return keys.Combo{}, 0, false
		}
		r := msg.Runes[0]
		lower := unicode.ToLower(r)
		if lower != r {
			mods = mods.With(keys.ModShift)
		}
		code, err := keys.Parse(string(lower))
		if err != nil {
			return keys.Combo{}, 0, false
		}
		return keys.Combo{Key: code, Mods: mods}, r, true
	}

	combo, err := keys.ParseCombo(msg.String())
	if err != nil {
		return keys.Combo{}, 0, false
	}
	return combo, 0, true
}

func (m tuiModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("il2ge "+version) + "\n\n")

	switch {
	case m.h.FeatureAvailable():
		b.WriteString(okStyle.Render("● hotkeys registered") + "\n")
	case len(m.h.Bindings(hotkeys.CategoryMisc)) > 0:
		b.WriteString(offStyle.Render("○ suspended (ToggleEnable resumes)") + "\n")
	default:
		b.WriteString(offStyle.Render("○ feature disabled") + "\n")
	}
	b.WriteString(dimStyle.Render(fmt.Sprintf("commands executed: %d", m.h.Executed())) + "\n")
	if m.lastKey != "" {
		b.WriteString(dimStyle.Render("last key: "+m.lastKey) + "\n")
	}
	if m.status != "" {
		b.WriteString(dimStyle.Render(m.status) + "\n")
	}
	b.WriteString("\n")

	if m.h.Menu().Shown() {
		b.WriteString(menuBox.Render(renderMenu(m.h.Menu())) + "\n")
	} else {
		b.WriteString(renderBindings(m.h, m.height-10))
	}

	b.WriteString("\n")
	if c, ok := m.h.Combo(hotkeys.ShowMenuID); ok {
		b.WriteString(boldStyle.Render(c.String()) + helpStyle.Render(" to open menu") + "\n")
	}
	b.WriteString(boldStyle.Render("ctrl+c") + helpStyle.Render(" to quit"))

	return lipgloss.NewStyle().MaxWidth(m.width).MaxHeight(m.height).Render(b.String())
}

func renderMenu(mn *menu.Menu) string {
	var lines []string
	for _, l := range mn.Lines() {
		switch l.Kind {
		case menu.LineBlank:
			lines = append(lines, "")
		case menu.LineHelp:
			lines = append(lines, helpStyle.Render(l.Text))
		case menu.LineParam:
			lines = append(lines, paramStyle.Render(l.Text))
		case menu.LineActiveParam:
			lines = append(lines, activeStyle.Render(l.Text))
		}
	}
	return strings.Join(lines, "\n")
}

// renderBindings lists registered bindings that have a key combo.
func renderBindings(h *host.Host, maxLines int) string {
	var lines []string
	for _, cat := range []hotkeys.Category{hotkeys.CategoryHotkeys, hotkeys.CategoryMisc} {
		for _, b := range h.Bindings(cat) {
			c, ok := h.Combo(b.ID())
			if !ok {
				continue
			}
			lines = append(lines, comboStyle.Render(fmt.Sprintf("%-16s", c))+" "+b.DisplayText())
		}
	}
	if len(lines) == 0 {
		return dimStyle.Render("no key combos bound") + "\n"
	}
	if maxLines > 0 && len(lines) > maxLines {
		more := len(lines) - maxLines + 1
		lines = append(lines[:maxLines-1], dimStyle.Render(fmt.Sprintf("... %d more", more)))
	}
	return strings.Join(lines, "\n") + "\n"
}
