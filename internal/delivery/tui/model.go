package tui

import (
	"context"
	"strconv"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dexview/backend/internal/domain"
	"github.com/dexview/backend/internal/presenter"
	"github.com/dexview/backend/internal/usecase"
)

// Catalog is the slice of the catalog service the browser needs
type Catalog interface {
	NewBrowser(ctx context.Context) (*usecase.Browser, error)
	GetRecord(ctx context.Context, id string) (*domain.Record, error)
}

// ViewState is the screen currently shown
type ViewState int

const (
	// ViewStateLoading waits for the reference list.
	ViewStateLoading ViewState = iota
	// ViewStateList shows the filter input and cards.
	ViewStateList
	// ViewStateDetail shows one record.
	ViewStateDetail
	// ViewStateQuitting is terminal.
	ViewStateQuitting
)

const (
	defaultWidth         = 100
	defaultHeight        = 30
	filterInputCharLimit = 64
	filterInputWidth     = 40
)

const (
	keyCtrlC = "ctrl+c"
	keyEsc   = "esc"
	keyEnter = "enter"
	keyUp    = "up"
	keyDown  = "down"
	keyCtrlP = "ctrl+p"
	keyCtrlN = "ctrl+n"
)

// Messages
type browserLoadedMsg struct {
	browser *usecase.Browser
	err     error
}

type enrichedMsg struct {
	generation uint64
	applied    bool
	err        error
}

type detailLoadedMsg struct {
	record *domain.Record
	err    error
}

// Model is the Bubble Tea model for interactive catalog browsing.
//
// Each change of the filter text starts a new enrichment batch. Batches are
// not cancelled; the Browser only applies the latest one, and the model
// repaints from Browser.Displayed when a batch reports it was applied.
type Model struct {
	ctx          context.Context
	catalog      Catalog
	browser      *usecase.Browser
	initialQuery string

	state    ViewState
	input    textinput.Model
	cards    []presenter.Card
	selected int
	detail   *presenter.Detail
	pending  bool

	width  int
	height int

	err error
}

// NewModel creates a model that loads the reference list on Init
func NewModel(ctx context.Context, catalog Catalog, initialQuery string) *Model {
	return &Model{
		ctx:          ctx,
		catalog:      catalog,
		initialQuery: initialQuery,
		state:        ViewStateLoading,
		input:        newFilterInput(initialQuery),
		width:        defaultWidth,
		height:       defaultHeight,
	}
}

func newFilterInput(initial string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "Search Pokémon by name..."
	ti.CharLimit = filterInputCharLimit
	ti.Width = filterInputWidth
	ti.Cursor.SetMode(cursor.CursorStatic)
	ti.SetValue(initial)
	ti.Focus()
	return ti
}

// Err returns the error that terminated the program, if any
func (m *Model) Err() error {
	return m.err
}

// State returns the current view state
func (m *Model) State() ViewState {
	return m.state
}

// Init starts loading the reference list
func (m *Model) Init() tea.Cmd {
	return m.loadBrowser()
}

// Update handles messages and updates the model state
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case browserLoadedMsg:
		return m.handleBrowserLoaded(msg)
	case enrichedMsg:
		return m.handleEnriched(msg)
	case detailLoadedMsg:
		return m.handleDetailLoaded(msg)
	case tea.KeyMsg:
		if msg.String() == keyCtrlC {
			m.state = ViewStateQuitting
			return m, tea.Quit
		}
		switch m.state {
		case ViewStateList:
			return m.handleListKey(msg)
		case ViewStateDetail:
			return m.handleDetailKey(msg)
		}
	}
	return m, nil
}

func (m *Model) handleBrowserLoaded(msg browserLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		return m.fail(msg.err)
	}

	m.browser = msg.browser
	m.state = ViewStateList

	batch := m.browser.Pending()
	if m.initialQuery != "" {
		batch = m.browser.SetQuery(m.initialQuery)
	}
	return m, m.enrich(batch)
}

func (m *Model) handleEnriched(msg enrichedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		return m.fail(msg.err)
	}

	if msg.applied {
		m.cards = m.cards[:0]
		for _, r := range m.browser.Displayed() {
			m.cards = append(m.cards, presenter.NewCard(r))
		}
		if m.selected >= len(m.cards) {
			m.selected = max(len(m.cards)-1, 0)
		}
	}
	// A superseded batch says nothing about the one still in flight
	if msg.generation == m.browser.Generation() {
		m.pending = false
	}
	return m, nil
}

func (m *Model) handleDetailLoaded(msg detailLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		return m.fail(msg.err)
	}
	detail := presenter.NewDetail(*msg.record)
	m.detail = &detail
	m.state = ViewStateDetail
	return m, nil
}

func (m *Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case keyUp, keyCtrlP:
		if m.selected > 0 {
			m.selected--
		}
		return m, nil
	case keyDown, keyCtrlN:
		if m.selected < len(m.cards)-1 {
			m.selected++
		}
		return m, nil
	case keyEnter:
		if len(m.cards) == 0 {
			return m, nil
		}
		return m, m.loadDetail(m.cards[m.selected].ID)
	case keyEsc:
		if m.input.Value() == "" {
			return m, nil
		}
		m.input.SetValue("")
		return m, m.enrich(m.browser.SetQuery(""))
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	if m.input.Value() == before {
		return m, cmd
	}
	return m, tea.Batch(cmd, m.enrich(m.browser.SetQuery(m.input.Value())))
}

func (m *Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case keyEsc, "backspace", "q":
		m.state = ViewStateList
		m.detail = nil
	}
	return m, nil
}

func (m *Model) fail(err error) (tea.Model, tea.Cmd) {
	m.err = err
	m.state = ViewStateQuitting
	return m, tea.Quit
}

// Commands

func (m *Model) loadBrowser() tea.Cmd {
	return func() tea.Msg {
		browser, err := m.catalog.NewBrowser(m.ctx)
		return browserLoadedMsg{browser: browser, err: err}
	}
}

func (m *Model) enrich(batch usecase.Batch) tea.Cmd {
	m.pending = true
	browser := m.browser
	ctx := m.ctx
	return func() tea.Msg {
		applied, err := browser.ReEnrich(ctx, batch)
		return enrichedMsg{generation: batch.Generation, applied: applied, err: err}
	}
}

func (m *Model) loadDetail(id int) tea.Cmd {
	ctx := m.ctx
	catalog := m.catalog
	return func() tea.Msg {
		record, err := catalog.GetRecord(ctx, strconv.Itoa(id))
		return detailLoadedMsg{record: record, err: err}
	}
}

// Run starts the interactive browser and blocks until it exits. An upstream
// failure that ended the program is returned as the error.
func Run(ctx context.Context, catalog Catalog, initialQuery string, opts ...tea.ProgramOption) error {
	model := NewModel(ctx, catalog, initialQuery)
	opts = append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)

	final, err := tea.NewProgram(model, opts...).Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(*Model); ok && fm.err != nil {
		return fm.err
	}
	return nil
}
