package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/platter/internal/catalog"
	"github.com/five82/platter/internal/prefs"
	"github.com/five82/platter/internal/state"
)

// CatalogStore is the part of state.Store the UI drives.
type CatalogStore interface {
	Snapshot() state.Snapshot
	SetQuery(q string)
	Refresh(ctx context.Context) <-chan error
}

// Options configures the UI.
type Options struct {
	Context   context.Context
	Store     CatalogStore
	LogPath   string
	PollTick  time.Duration
	ThemeName string
	PrefsPath string
	// Now overrides time.Now for relative timestamps.
	Now func() time.Time
}

// Model is the root application state for Bubble Tea.
type Model struct {
	ctx       context.Context
	store     CatalogStore
	keys      keyMap
	prefsPath string
	logPath   string
	pollTick  time.Duration
	now       func() time.Time

	theme    Theme
	width    int
	height   int
	ready    bool
	showHelp bool

	snapshot state.Snapshot

	selectedRow int
	offset      int

	search    textinput.Model
	searching bool

	spinner   spinner.Model
	statusMsg string
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	pollTick := opts.PollTick
	if pollTick <= 0 {
		pollTick = 500 * time.Millisecond
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = prefs.DefaultTheme
	}

	now := opts.Now
	if now == nil {
		now = time.Now
	}

	ti := textinput.New()
	ti.Prompt = "/"
	ti.Placeholder = "filter by name"
	ti.CharLimit = 128

	m := Model{
		ctx:       ctx,
		store:     opts.Store,
		keys:      DefaultKeyMap(),
		prefsPath: opts.PrefsPath,
		logPath:   opts.LogPath,
		pollTick:  pollTick,
		now:       now,
		search:    ti,
		spinner:   spinner.New(spinner.WithSpinner(spinner.MiniDot)),
	}
	m.setTheme(GetTheme(themeName))
	if m.store != nil {
		m.snapshot = m.store.Snapshot()
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tickCmd(m.pollTick),
		m.spinner.Tick,
	}
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.search.Width = max(msg.Width-4, 10)
		m.ready = true
		m.clampSelection()
		return m, nil

	case tickMsg:
		cmds := []tea.Cmd{tickCmd(m.pollTick)}
		if m.store != nil {
			cmds = append(cmds, fetchSnapshotCmd(m.store))
		}
		return m, tea.Batch(cmds...)

	case snapshotMsg:
		m.applySnapshot(state.Snapshot(msg))
		return m, nil

	case StoreReadyMsg:
		if m.store == nil {
			return m, nil
		}
		return m, fetchSnapshotCmd(m.store)

	case refreshDoneMsg:
		m.statusMsg = ""
		if msg.err != nil {
			m.statusMsg = "Refresh failed: " + msg.err.Error()
		}
		if m.store == nil {
			return m, nil
		}
		return m, fetchSnapshotCmd(m.store)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	if m.searching {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	return m.renderMain()
}

func (m *Model) setTheme(t Theme) {
	m.theme = t
	styles := t.Styles()
	m.search.PromptStyle = styles.AccentText
	m.search.TextStyle = styles.Text
	m.search.PlaceholderStyle = styles.FaintText
	m.search.Cursor.Style = styles.AccentText
	m.spinner.Style = styles.WarningText
}

// applySnapshot swaps in a fresh snapshot, keeping the cursor on the same
// item when it is still visible.
func (m *Model) applySnapshot(snap state.Snapshot) {
	var selectedID string
	if item, ok := m.selectedItem(); ok {
		selectedID = item.ID
	}
	m.snapshot = snap

	if selectedID != "" {
		for i, item := range m.visibleItems() {
			if item.ID == selectedID {
				m.selectedRow = i
				m.ensureVisible()
				return
			}
		}
	}
	m.clampSelection()
}

func (m Model) visibleItems() []catalog.Item {
	return m.snapshot.Filtered()
}

func (m Model) selectedItem() (catalog.Item, bool) {
	items := m.visibleItems()
	if m.selectedRow < 0 || m.selectedRow >= len(items) {
		return catalog.Item{}, false
	}
	return items[m.selectedRow], true
}

func (m Model) renderMain() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.renderSearchBar(),
		m.renderBody(),
		m.renderCommandBar(),
	)
}

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

type refreshDoneMsg struct{ err error }

// StoreReadyMsg tells the model the initial fetch has settled so it can
// render without waiting for the next tick.
type StoreReadyMsg struct{}

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store CatalogStore) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

func waitRefreshCmd(done <-chan error) tea.Cmd {
	return func() tea.Msg {
		return refreshDoneMsg{err: <-done}
	}
}

// NewProgram builds the Bubble Tea program. The program exits when ctx is
// cancelled.
func NewProgram(ctx context.Context, opts Options) *tea.Program {
	if opts.Context == nil {
		opts.Context = ctx
	}
	return tea.NewProgram(New(opts), tea.WithAltScreen(), tea.WithContext(ctx))
}
