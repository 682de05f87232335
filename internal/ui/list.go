package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderSearchBar shows the live input while searching and the applied
// filter otherwise.
func (m Model) renderSearchBar() string {
	styles := m.theme.Styles()
	var line string
	switch {
	case m.searching:
		line = m.search.View()
	case m.snapshot.Query != "":
		line = styles.AccentText.Render("/"+m.snapshot.Query) + "  " + styles.FaintText.Render("esc to clear")
	default:
		line = styles.FaintText.Render("Press / to filter by name")
	}
	return lipgloss.NewStyle().Padding(0, 1).Width(m.width).Render(line)
}

// renderBody picks exactly one of the error view, the loading view, the
// empty state or the list.
func (m Model) renderBody() string {
	styles := m.theme.Styles()
	height := m.bodyHeight()
	snap := m.snapshot

	center := func(content string) string {
		return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, content)
	}

	switch {
	case snap.ShowError():
		return center(m.renderError())

	case !snap.HasLoaded:
		return center(m.spinner.View() + " " + styles.MutedText.Render("Loading..."))

	case snap.IsEmpty():
		msg := "No recipes found"
		if snap.Query != "" && len(snap.Items) > 0 {
			msg = fmt.Sprintf("No recipes match %q", snap.Query)
		}
		return center(styles.MutedText.Render(msg))
	}

	items := m.visibleItems()

	end := min(m.offset+height, len(items))
	idWidth := 0
	for _, item := range items[m.offset:end] {
		idWidth = max(idWidth, len(item.ID))
	}
	nameWidth := max(m.width-idWidth-5, 8)

	rows := make([]string, 0, height)
	for i := m.offset; i < end; i++ {
		item := items[i]
		selected := i == m.selectedRow

		cursor := "  "
		if selected {
			cursor = "› "
		}
		name := truncate(item.DisplayName, nameWidth)
		gap := max(m.width-2-lipgloss.Width(name)-len(item.ID)-2, 1)

		var row string
		if selected {
			row = styles.Selected.Width(m.width).Render(cursor + name + strings.Repeat(" ", gap) + item.ID)
		} else {
			row = styles.AccentText.Render(cursor) +
				highlightMatch(name, snap.Query, styles.Text, styles.MatchText) +
				strings.Repeat(" ", gap) +
				styles.FaintText.Render(item.ID)
		}
		rows = append(rows, row)
	}
	for len(rows) < height {
		rows = append(rows, "")
	}
	return strings.Join(rows, "\n")
}

func (m Model) renderError() string {
	styles := m.theme.Styles()
	var b strings.Builder
	b.WriteString(styles.DangerText.Render("Could not load recipes"))
	b.WriteString("\n\n")
	b.WriteString(styles.Text.Render(m.snapshot.Error.Error()))
	if m.logPath != "" {
		b.WriteString("\n\n")
		b.WriteString(styles.FaintText.Render("Details: " + truncateMiddle(m.logPath, 50)))
	}
	panel := styles.Panel.BorderForeground(lipgloss.Color(m.theme.Danger))
	return panel.Width(min(max(m.width-4, 20), 64)).Render(b.String())
}

// highlightMatch renders the first case-insensitive occurrence of query in
// name with match and the rest with base.
func highlightMatch(name, query string, base, match lipgloss.Style) string {
	if query == "" {
		return base.Render(name)
	}
	lowerName := strings.ToLower(name)
	lowerQuery := strings.ToLower(query)
	// Byte offsets are only safe when lowering kept the lengths.
	if len(lowerName) != len(name) || len(lowerQuery) != len(query) {
		return base.Render(name)
	}
	idx := strings.Index(lowerName, lowerQuery)
	if idx < 0 {
		return base.Render(name)
	}
	end := idx + len(query)
	return base.Render(name[:idx]) + match.Render(name[idx:end]) + base.Render(name[end:])
}
