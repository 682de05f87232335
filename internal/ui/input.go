package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/platter/internal/prefs"
)

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if m.searching {
		return m.handleSearchKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.setTheme(GetTheme(NextTheme(m.theme.Name)))
		if m.prefsPath != "" {
			if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name}); err != nil {
				m.statusMsg = "Theme not saved: " + err.Error()
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		return m.startRefresh()

	case key.Matches(msg, m.keys.Search):
		m.searching = true
		m.search.SetValue(m.snapshot.Query)
		m.search.CursorEnd()
		return m, tea.Batch(m.search.Focus(), textinput.Blink)

	case key.Matches(msg, m.keys.Escape):
		if m.snapshot.Query != "" {
			m.setQuery("")
		}
		m.statusMsg = ""
		return m, nil
	}

	m.handleNavigation(msg)
	return m, nil
}

// handleSearchKey routes keys to the search input. Every edit is pushed to
// the store so the list narrows as the user types.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit

	case key.Matches(msg, m.keys.Escape):
		m.searching = false
		m.search.Blur()
		m.setQuery("")
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		m.searching = false
		m.search.Blur()
		return m, nil

	case msg.Type == tea.KeyUp, msg.Type == tea.KeyDown:
		m.handleNavigation(msg)
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if value := m.search.Value(); value != m.snapshot.Query {
		m.setQuery(value)
	}
	return m, cmd
}

func (m *Model) handleNavigation(msg tea.KeyMsg) {
	count := len(m.visibleItems())
	if count == 0 {
		return
	}
	page := max(m.bodyHeight()-1, 1)

	switch {
	case key.Matches(msg, m.keys.Down):
		m.selectedRow++
	case key.Matches(msg, m.keys.Up):
		m.selectedRow--
	case key.Matches(msg, m.keys.Top):
		m.selectedRow = 0
	case key.Matches(msg, m.keys.Bottom):
		m.selectedRow = count - 1
	case key.Matches(msg, m.keys.PageDown):
		m.selectedRow += page
	case key.Matches(msg, m.keys.PageUp):
		m.selectedRow -= page
	default:
		return
	}
	m.clampSelection()
}

func (m Model) startRefresh() (tea.Model, tea.Cmd) {
	if m.store == nil {
		return m, nil
	}
	done := m.store.Refresh(m.ctx)
	m.statusMsg = ""
	m.applySnapshot(m.store.Snapshot())
	return m, waitRefreshCmd(done)
}

func (m *Model) setQuery(q string) {
	if m.search.Value() != q {
		m.search.SetValue(q)
	}
	if m.store != nil {
		m.store.SetQuery(q)
		m.snapshot = m.store.Snapshot()
	} else {
		m.snapshot.Query = q
	}
	m.selectedRow = 0
	m.offset = 0
}

func (m *Model) clampSelection() {
	count := len(m.visibleItems())
	if m.selectedRow >= count {
		m.selectedRow = count - 1
	}
	if m.selectedRow < 0 {
		m.selectedRow = 0
	}
	m.ensureVisible()
}

// ensureVisible scrolls so the selected row is inside the body.
func (m *Model) ensureVisible() {
	height := m.bodyHeight()
	if m.selectedRow < m.offset {
		m.offset = m.selectedRow
	}
	if m.selectedRow >= m.offset+height {
		m.offset = m.selectedRow - height + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

// bodyHeight is the number of list rows below the header and search bar and
// above the command bar.
func (m Model) bodyHeight() int {
	return max(m.height-3, 1)
}
