package settings

// MenuState is either the main menu or the submenu of one dropdown.
type MenuState struct {
	attr string
}

// Main returns the main menu state.
func Main() MenuState { return MenuState{} }

// Submenu returns the state showing the choices of the dropdown attr.
func Submenu(attr string) MenuState { return MenuState{attr: attr} }

// IsMain reports whether the state is the main menu.
func (s MenuState) IsMain() bool { return s.attr == "" }

// Attr returns the dropdown label of a submenu, "" for the main menu.
func (s MenuState) Attr() string { return s.attr }

func (s MenuState) String() string {
	if s.IsMain() {
		return "main"
	}
	return "submenu(" + s.attr + ")"
}

// Row attribute suffixes.
const (
	optionsSuffix = "-options"
	headerSuffix  = "-options-header"
)

// OptionsAttr returns the data-attr of the choice rows of dropdown label.
func OptionsAttr(label string) string { return label + optionsSuffix }

// HeaderAttr returns the data-attr of the submenu header of dropdown label.
func HeaderAttr(label string) string { return label + headerSuffix }

// RowKind distinguishes rendered rows.
type RowKind int

const (
	RowOption RowKind = iota
	RowHeader
	RowChoice
)

// Row is one rendered line of the menu.
type Row struct {
	Kind RowKind
	// Attr is the data-attr the row is dispatched by.
	Attr string
	// Parent is the dropdown label, for choices.
	Parent   string
	Title    string
	Role     Role
	Checked  bool
	Value    string
	Disabled bool
}

// View is the rendering of a menu state.
type View struct {
	State MenuState
	Rows  []Row
}

// Render is a pure function of the schema and the menu state. A submenu
// for an unknown or non-dropdown label renders the main menu.
func Render(s Schema, st MenuState) View {
	if !st.IsMain() {
		if o := s.Find(st.Attr()); o != nil && o.Role == RoleDropdown {
			return renderSubmenu(o, st)
		}
		st = Main()
	}
	v := View{State: st}
	for _, o := range s {
		row := Row{
			Kind:     RowOption,
			Attr:     o.Label,
			Title:    o.Title,
			Role:     o.Role,
			Disabled: o.Disabled,
		}
		switch o.Role {
		case RoleCheckbox:
			row.Checked = o.Value
		case RoleDropdown:
			if sel := o.Selected(); sel != nil {
				row.Value = sel.Label
			}
		}
		v.Rows = append(v.Rows, row)
	}
	return v
}

func renderSubmenu(o *Option, st MenuState) View {
	v := View{State: st}
	v.Rows = append(v.Rows, Row{
		Kind:  RowHeader,
		Attr:  HeaderAttr(o.Label),
		Title: o.Title,
	})
	for _, e := range o.Options {
		v.Rows = append(v.Rows, Row{
			Kind:    RowChoice,
			Attr:    OptionsAttr(o.Label),
			Parent:  o.Label,
			Title:   e.Label,
			Checked: e.Selected,
			Value:   e.Value,
		})
	}
	return v
}
