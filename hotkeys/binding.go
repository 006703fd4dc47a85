package hotkeys

// CommandTrigger executes one named host command.
type CommandTrigger struct {
	host Commands
	name string
	text string
}

// NewCommandTrigger binds name; text is passed through for the host's
// binding table and is not interpreted.
func NewCommandTrigger(host Commands, name, text string) *CommandTrigger {
	return &CommandTrigger{host: host, name: name, text: text}
}

func (c *CommandTrigger) ID() string { return Namespace + c.name }

func (c *CommandTrigger) Name() string { return c.name }

func (c *CommandTrigger) DisplayText() string { return c.text }

func (c *CommandTrigger) Activate() {
	c.host.ExecuteCommand(c.name)
}

// MenuToggle opens the menu and hands keyboard focus to a new FocusCapture.
type MenuToggle struct {
	host Host
}

func NewMenuToggle(host Host) *MenuToggle {
	return &MenuToggle{host: host}
}

func (m *MenuToggle) ID() string { return ShowMenuID }

func (m *MenuToggle) DisplayText() string { return "Show menu" }

// Activate installs a new listener as focus owner, then shows the menu.
func (m *MenuToggle) Activate() {
	m.host.SetFocus(NewFocusCapture(m.host))
	m.host.ShowMenu(true)
}
