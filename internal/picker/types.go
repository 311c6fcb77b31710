package picker

// State is the tag of the picker's state machine.
type State int

const (
	// Closed: the dropdown is hidden and nothing is committed.
	Closed State = iota
	// Searching: the dropdown is visible.
	Searching
	// Selected: a country is committed and the dropdown is hidden.
	Selected
)

func (s State) String() string {
	switch s {
	case Closed:
		return "closed"
	case Searching:
		return "searching"
	case Selected:
		return "selected"
	default:
		return "unknown"
	}
}

// Selection is what the host receives on every commit. A reset commits the
// zero Selection.
type Selection struct {
	Country string `json:"country"`
	Code    string `json:"code"`
}

// IsZero reports whether nothing is selected.
func (s Selection) IsZero() bool {
	return s.Code == ""
}

// Snapshot is a copy of the picker's observable state.
type Snapshot struct {
	State        State
	Query        string
	SelectedCode string
	Open         bool
	Visible      []string
}
