package settings

import "strings"

// ActionKind is what activating a row did.
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionToggle
	ActionOpen
	ActionSelect
	ActionBack
)

// String returns the action name for logging.
func (k ActionKind) String() string {
	switch k {
	case ActionToggle:
		return "toggle"
	case ActionOpen:
		return "open"
	case ActionSelect:
		return "select"
	case ActionBack:
		return "back"
	default:
		return "none"
	}
}

// Action describes the outcome of Activate for the caller to apply.
type Action struct {
	Kind    ActionKind
	Label   string
	Value   string
	Checked bool
}

// Menu is the settings menu state machine. Visibility is tracked apart
// from the Main/Submenu state.
type Menu struct {
	canonical Schema
	schema    Schema
	state     MenuState
	open      bool
}

// NewMenu returns a closed menu at Main over a copy of canonical.
func NewMenu(canonical Schema) *Menu {
	c := canonical.Clone()
	return &Menu{canonical: c, schema: c.Clone()}
}

// Rebuild merges live values into a fresh copy of the canonical schema and
// returns to Main.
func (m *Menu) Rebuild(live Live) {
	m.schema = Build(m.canonical, live)
	m.state = Main()
}

// Schema returns the working schema.
func (m *Menu) Schema() Schema { return m.schema }

// State returns the Main/Submenu state.
func (m *Menu) State() MenuState { return m.state }

// View renders the current state.
func (m *Menu) View() View { return Render(m.schema, m.state) }

// IsOpen reports whether the menu is shown.
func (m *Menu) IsOpen() bool { return m.open }

// SetOpen shows or hides the menu. Hiding returns to Main.
func (m *Menu) SetOpen(open bool) {
	m.open = open
	if !open {
		m.state = Main()
	}
}

// Toggle flips visibility and returns the new value.
func (m *Menu) Toggle() bool {
	m.SetOpen(!m.open)
	return m.open
}

// Activate applies a click on the row identified by attr (and value for
// choices). Rows that do not belong to the current state are ignored.
func (m *Menu) Activate(attr, value string) Action {
	if !m.state.IsMain() {
		label := m.state.Attr()
		switch attr {
		case HeaderAttr(label):
			m.state = Main()
			return Action{Kind: ActionBack, Label: label}
		case OptionsAttr(label):
			o := m.schema.Find(label)
			if o == nil || !o.Select(value) {
				return Action{}
			}
			m.state = Main()
			return Action{Kind: ActionSelect, Label: label, Value: value}
		}
		return Action{}
	}

	if strings.HasSuffix(attr, optionsSuffix) || strings.HasSuffix(attr, headerSuffix) {
		return Action{}
	}
	o := m.schema.Find(attr)
	if o == nil || o.Disabled {
		return Action{}
	}
	switch o.Role {
	case RoleCheckbox:
		o.Value = !o.Value
		return Action{Kind: ActionToggle, Label: o.Label, Checked: o.Value}
	case RoleDropdown:
		m.state = Submenu(o.Label)
		return Action{Kind: ActionOpen, Label: o.Label}
	}
	return Action{}
}
