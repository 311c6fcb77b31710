// Package picker implements the country picker's selection state machine.
//
// A Picker tracks the query text, the committed country code and whether
// the result list is open. Every transition runs synchronously; lookup
// misses are absorbed and never reported as errors.
package picker

import (
	"log"
	"strings"

	"countrypick/internal/countries"
	"countrypick/internal/filter"
)

// Lookup resolves codes to display names.
type Lookup interface {
	NameOf(code string) string
}

// Filterer computes the visible codes for a query.
type Filterer interface {
	Filter(query string) []string
	All() []string
}

// Picker is one widget instance's state. It is not safe for concurrent use.
type Picker struct {
	lookup   Lookup
	filterer Filterer
	onSelect func(Selection)

	initialCode string
	resetToken  string

	state    State
	query    string
	selected string
	visible  []string
}

// Option configures a Picker.
type Option func(*Picker)

// WithInitialCode pre-selects code when Init runs.
func WithInitialCode(code string) Option {
	return func(p *Picker) {
		p.initialCode = code
	}
}

// WithResetToken sets the token the first Reset call is compared against.
func WithResetToken(token string) Option {
	return func(p *Picker) {
		p.resetToken = token
	}
}

// WithOnSelect sets the callback fired on every commit.
func WithOnSelect(fn func(Selection)) Option {
	return func(p *Picker) {
		p.onSelect = fn
	}
}

// New creates a picker in the Closed state showing the full list. Nil
// collaborators fall back to the bundled table and a plain engine over it.
func New(lookup Lookup, filterer Filterer, opts ...Option) *Picker {
	if lookup == nil {
		lookup = countries.Default()
	}
	if filterer == nil {
		filterer = filter.New(nil)
	}
	p := &Picker{
		lookup:   lookup,
		filterer: filterer,
		onSelect: func(Selection) {},
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.onSelect == nil {
		p.onSelect = func(Selection) {}
	}
	p.visible = p.filterer.All()
	return p
}

// Init applies the initial code, if it resolves, and commits it.
func (p *Picker) Init() {
	if p.initialCode == "" {
		return
	}
	code := canonical(p.initialCode)
	name := p.lookup.NameOf(code)
	if name == "" {
		log.Printf("picker: ignoring unknown initial code %q", p.initialCode)
		return
	}
	p.commit(code, name)
}

// QueryChanged handles a user edit of the text field.
func (p *Picker) QueryChanged(text string) {
	p.query = text
	p.selected = ""
	if text == "" {
		p.visible = p.filterer.All()
		p.state = Closed
		return
	}
	p.visible = p.filterer.Filter(text)
	p.state = Searching
}

// Focus opens the list without touching the query or the visible codes.
func (p *Picker) Focus() {
	p.state = Searching
}

// Blur closes the list, keeping the query and any selection.
func (p *Picker) Blur() {
	if p.selected != "" {
		p.state = Selected
		return
	}
	p.state = Closed
}

// Select commits code. Codes without a name are ignored.
func (p *Picker) Select(code string) {
	code = canonical(code)
	name := p.lookup.NameOf(code)
	if name == "" {
		log.Printf("picker: ignoring selection of unknown code %q", code)
		return
	}
	p.commit(code, name)
}

// Reset clears all state when token differs from the last token seen.
func (p *Picker) Reset(token string) {
	if token == p.resetToken {
		return
	}
	p.resetToken = token
	p.ForceReset()
}

// ForceReset clears all state and commits the empty selection.
func (p *Picker) ForceReset() {
	p.query = ""
	p.selected = ""
	p.visible = p.filterer.All()
	p.state = Closed
	p.notify(Selection{})
}

// canonical returns code in the table's form: trimmed and upper case.
func canonical(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func (p *Picker) commit(code, name string) {
	p.selected = code
	p.query = name
	p.state = Selected
	p.notify(Selection{Country: name, Code: code})
}

func (p *Picker) notify(sel Selection) {
	log.Printf("picker: commit country=%q code=%q", sel.Country, sel.Code)
	p.onSelect(sel)
}

// State returns the current state tag.
func (p *Picker) State() State {
	return p.state
}

// Query returns the text shown in the field.
func (p *Picker) Query() string {
	return p.query
}

// SelectedCode returns the committed code, or "".
func (p *Picker) SelectedCode() string {
	return p.selected
}

// Selection returns the committed country, or the zero Selection.
func (p *Picker) Selection() Selection {
	if p.selected == "" {
		return Selection{}
	}
	return Selection{Country: p.lookup.NameOf(p.selected), Code: p.selected}
}

// IsOpen reports whether the result list is visible.
func (p *Picker) IsOpen() bool {
	return p.state == Searching
}

// Visible returns the codes currently listed.
func (p *Picker) Visible() []string {
	out := make([]string, len(p.visible))
	copy(out, p.visible)
	return out
}

// ResetToken returns the last reset token seen.
func (p *Picker) ResetToken() string {
	return p.resetToken
}

// Snapshot returns a copy of the observable state.
func (p *Picker) Snapshot() Snapshot {
	return Snapshot{
		State:        p.state,
		Query:        p.query,
		SelectedCode: p.selected,
		Open:         p.IsOpen(),
		Visible:      p.Visible(),
	}
}
