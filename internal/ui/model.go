package ui

import (
	"log"
	"os"
	"strconv"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"countrypick/internal/config"
	"countrypick/internal/countries"
	"countrypick/internal/filter"
	"countrypick/internal/picker"
	"countrypick/internal/ui/views"
)

// Model is the Bubble Tea component wrapping a picker.Picker
type Model struct {
	config *config.Config
	table  *countries.Table
	picker *picker.Picker

	input    textinput.Model
	keys     keyMap
	help     help.Model
	renderer *views.Renderer
	helpText *HelpRenderer
	helpOps  *HelpOps

	width   int
	height  int
	cursor  int
	offset  int
	resets  int
	done    bool
	e2eMode bool

	onSelect func(picker.Selection)
	pending  []picker.Selection
}

// Option configures a Model
type Option func(*modelOptions)

type modelOptions struct {
	table       *countries.Table
	engine      *filter.Engine
	onSelect    func(picker.Selection)
	initialCode string
	resetToken  string
}

// WithTable renders a custom country table instead of the bundled one
func WithTable(t *countries.Table) Option {
	return func(o *modelOptions) { o.table = t }
}

// WithEngine shares an existing filter engine
func WithEngine(e *filter.Engine) Option {
	return func(o *modelOptions) { o.engine = e }
}

// WithOnSelect sets the host callback fired on every commit
func WithOnSelect(fn func(picker.Selection)) Option {
	return func(o *modelOptions) { o.onSelect = fn }
}

// WithInitialCode overrides the configured initial code
func WithInitialCode(code string) Option {
	return func(o *modelOptions) { o.initialCode = code }
}

// WithResetToken sets the starting reset token
func WithResetToken(token string) Option {
	return func(o *modelOptions) { o.resetToken = token }
}

// New creates a picker component from the configuration
func New(cfg *config.Config, opts ...Option) *Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	o := &modelOptions{initialCode: cfg.InitialCode}
	for _, opt := range opts {
		opt(o)
	}
	if o.table == nil {
		o.table = countries.Default()
	}
	if o.engine == nil {
		o.engine = filter.New(o.table, filter.WithCache(cfg.Filter.CacheSize))
	}

	m := &Model{
		config:   cfg,
		table:    o.table,
		keys:     defaultKeyMap(),
		help:     help.New(),
		renderer: views.NewRenderer(cfg),
		onSelect: o.onSelect,
		e2eMode:  os.Getenv("COUNTRYPICK_E2E_TEST") == "1",
	}
	m.helpText = NewHelpRenderer(m.keys)

	m.input = textinput.New()
	m.input.Prompt = ""
	m.input.Placeholder = cfg.UISettings.Placeholder
	m.input.PlaceholderStyle = m.renderer.Styles().Placeholder
	m.input.TextStyle = m.renderer.Styles().Text

	m.picker = picker.New(o.table, o.engine,
		picker.WithInitialCode(o.initialCode),
		picker.WithResetToken(o.resetToken),
		picker.WithOnSelect(m.handleCommit),
	)

	return m
}

// SetProgram gives the model the program it runs in, needed for the pager
func (m *Model) SetProgram(p *tea.Program) {
	m.helpOps = NewHelpOps(p)
}

// Init commits the initial code, if any, and focuses the input
func (m *Model) Init() tea.Cmd {
	m.picker.Init()
	m.syncInput()
	m.input.Focus()
	if m.picker.State() != picker.Selected {
		m.picker.Focus()
	}
	return tea.Batch(textinput.Blink, m.drainCommits())
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case ResetMsg:
		m.reset(msg.Token)

	case helpPagerMsg:
		if msg.err != nil {
			log.Printf("Help pager failed: %v", msg.err)
		}

	case tea.KeyMsg:
		if cmd := m.handleKey(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}

	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		cmds = append(cmds, cmd)
	}

	cmds = append(cmds, m.drainCommits())
	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit

	case key.Matches(msg, m.keys.Help):
		return m.showHelp()

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
		return nil

	case key.Matches(msg, m.keys.Down):
		if !m.picker.IsOpen() {
			m.focus()
			return nil
		}
		m.moveCursor(1)
		return nil

	case key.Matches(msg, m.keys.PageUp):
		m.moveCursor(-m.pageSize())
		return nil

	case key.Matches(msg, m.keys.PageDown):
		m.moveCursor(m.pageSize())
		return nil

	case key.Matches(msg, m.keys.Select):
		return m.selectCurrent()

	case key.Matches(msg, m.keys.Close):
		if m.picker.IsOpen() {
			m.picker.Blur()
		} else {
			m.input.Blur()
		}
		return nil

	case key.Matches(msg, m.keys.Focus):
		m.focus()
		return nil

	case key.Matches(msg, m.keys.Reset):
		m.resets++
		m.reset(m.picker.ResetToken() + "#" + strconv.Itoa(m.resets))
		return nil
	}

	if !m.input.Focused() {
		m.focus()
	}
	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if after := m.input.Value(); after != before {
		m.picker.QueryChanged(after)
		m.cursor, m.offset = 0, 0
	}
	return cmd
}

func (m *Model) selectCurrent() tea.Cmd {
	if m.picker.IsOpen() {
		visible := m.picker.Visible()
		if len(visible) == 0 {
			return nil
		}
		m.clampCursor(len(visible))
		m.picker.Select(visible[m.cursor])
		m.syncInput()
		return nil
	}
	if m.picker.State() == picker.Selected {
		m.done = true
		return tea.Quit
	}
	return nil
}

func (m *Model) showHelp() tea.Cmd {
	if m.helpOps == nil {
		log.Printf("Help pager unavailable: program not set")
		return nil
	}
	content := m.helpText.renderHelpContent()
	ops := m.helpOps
	return func() tea.Msg {
		return helpPagerMsg{err: ops.ShowHelpInPager(content)}
	}
}

func (m *Model) focus() {
	m.input.Focus()
	m.picker.Focus()
}

// syncInput mirrors the picker's query into the text field after a commit
// or reset.
func (m *Model) syncInput() {
	if m.input.Value() != m.picker.Query() {
		m.input.SetValue(m.picker.Query())
		m.input.CursorEnd()
	}
}

// reset forwards token to the picker and, when it triggers a reset, moves
// the cursor back to the top of the restored list.
func (m *Model) reset(token string) {
	if token == m.picker.ResetToken() {
		return
	}
	m.picker.Reset(token)
	m.syncInput()
	m.cursor, m.offset = 0, 0
}

func (m *Model) handleCommit(sel picker.Selection) {
	m.pending = append(m.pending, sel)
	if m.onSelect != nil {
		m.onSelect(sel)
	}
}

func (m *Model) drainCommits() tea.Cmd {
	if len(m.pending) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(m.pending))
	for _, sel := range m.pending {
		sel := sel
		cmds = append(cmds, func() tea.Msg { return SelectedMsg{Selection: sel} })
	}
	m.pending = nil
	return tea.Batch(cmds...)
}

func (m *Model) pageSize() int {
	if m.config.UISettings.MaxRows < 1 {
		return 1
	}
	return m.config.UISettings.MaxRows
}

func (m *Model) moveCursor(delta int) {
	n := len(m.picker.Visible())
	if n == 0 {
		return
	}
	m.cursor += delta
	m.clampCursor(n)
}

// clampCursor keeps the cursor inside the list and the window around it
func (m *Model) clampCursor(n int) {
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	rows := m.pageSize()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+rows {
		m.offset = m.cursor - rows + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

// View renders the component
func (m *Model) View() string {
	visible := m.picker.Visible()
	rows := make([]views.RowState, 0, len(visible))
	for _, code := range visible {
		name := m.table.NameOf(code)
		if name == "" {
			continue
		}
		rows = append(rows, views.RowState{Code: code, Name: name})
	}

	return m.renderer.Render(views.ViewState{
		Width:        m.width,
		Input:        m.input.View(),
		Query:        m.picker.Query(),
		Open:         m.picker.IsOpen(),
		Rows:         rows,
		Cursor:       m.cursor,
		Offset:       m.offset,
		MaxRows:      m.pageSize(),
		Total:        m.table.Len(),
		SelectedCode: m.picker.SelectedCode(),
		SelectedName: m.table.NameOf(m.picker.SelectedCode()),
		HelpView:     m.help.View(m.keys),
		ReadyMarker:  m.e2eMode,
	})
}

// Done reports whether the user confirmed a selection
func (m *Model) Done() bool {
	return m.done
}

// Selection returns the committed country, or the zero Selection
func (m *Model) Selection() picker.Selection {
	return m.picker.Selection()
}

// Picker exposes the underlying state machine
func (m *Model) Picker() *picker.Picker {
	return m.picker
}

// Cursor returns the highlighted row index
func (m *Model) Cursor() int {
	return m.cursor
}
