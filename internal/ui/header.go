package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// renderHeader renders the status bar: logo, counts, fetch state and the
// time of the last settled fetch.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	snap := m.snapshot
	compact := m.width < 80

	parts := []string{bg.Render("platter", styles.Logo)}

	switch {
	case snap.Loading && snap.HasLoaded:
		parts = append(parts, bg.Render(m.spinner.View(), lipgloss.NewStyle())+bg.Space()+
			bg.Render("Refreshing", styles.WarningText))
	case snap.Loading:
		parts = append(parts, bg.Render(m.spinner.View(), lipgloss.NewStyle())+bg.Space()+
			bg.Render("Loading", styles.WarningText))
	case snap.ShowError():
		parts = append(parts, bg.Render("● ERROR", styles.DangerText))
	case snap.HasLoaded:
		parts = append(parts, bg.Render("● OK", styles.SuccessText))
	}

	total := len(snap.Items)
	count := fmt.Sprintf("%d", total)
	if snap.Query != "" {
		count = fmt.Sprintf("%d/%d", len(snap.Filtered()), total)
	}
	label := "Recipes:"
	if compact {
		label = "N:"
	}
	parts = append(parts, bg.Render(label, styles.MutedText)+bg.Space()+bg.Render(count, styles.Text))

	// A failed refresh over a populated list is only hinted at here.
	if snap.LastError != nil && !snap.ShowError() {
		hint := "refresh failed"
		if snap.IsOffline() {
			hint = fmt.Sprintf("OFFLINE (%d failures)", snap.ConsecutiveFailures)
		}
		parts = append(parts, bg.Render("⚠", styles.WarningText.Bold(true))+bg.Space()+
			bg.Render(hint, styles.WarningText))
	}

	if ts := formatTimestamp(snap.LastUpdated, m.now()); ts != "" {
		parts = append(parts, bg.Render(ts, styles.MutedText))
	}

	return styles.Header.Width(m.width).Render(bg.Join(parts, "  "))
}

// renderCommandBar renders key hints, the transient status message and the
// active theme.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	colon := bg.Render(":", styles.FaintText)
	sep := bg.Spaces(2)

	var segments []string
	if m.searching {
		segments = append(segments,
			bg.Render("enter", styles.AccentText)+colon+bg.Render("Keep", styles.MutedText),
			bg.Render("esc", styles.AccentText)+colon+bg.Render("Clear", styles.MutedText),
		)
	} else {
		for _, b := range m.keys.ShortHelp() {
			h := b.Help()
			segments = append(segments, bg.Render(h.Key, styles.AccentText)+colon+bg.Render(h.Desc, styles.MutedText))
		}
	}

	if m.statusMsg != "" {
		segments = append(segments, bg.Render(truncate(m.statusMsg, max(m.width/2, 20)), styles.WarningText))
	}

	segments = append(segments,
		bg.Render("T", styles.AccentText)+colon+bg.Render(m.theme.Name, styles.FaintText))

	line := segments[0]
	for _, s := range segments[1:] {
		line += sep + s
	}
	return styles.Header.Width(m.width).Render(line)
}
