package tui

import (
	"fmt"
	"strings"

	"atlas/internal/derive"

	"github.com/charmbracelet/lipgloss"
)

// renderSidebar draws the category list and the tag filter.
func (m appModel) renderSidebar(width, height int) string {
	focused := m.focus == focusSidebar
	head := lipgloss.NewStyle().Bold(true)
	selStyle := lipgloss.NewStyle().Background(colorSelectedBg).Foreground(colorSelectedFg)
	activeStyle := lipgloss.NewStyle().Background(colorAccent).Foreground(colorAccentFg)

	var b strings.Builder
	b.WriteString(head.Render("Categories") + "\n")

	catRows := height/2 - 2
	if catRows < 3 {
		catRows = 3
	}
	start := windowStart(m.catCursor, len(m.cats), catRows)
	for i := start; i < len(m.cats) && i < start+catRows; i++ {
		c := m.cats[i]
		row := truncate(fmt.Sprintf("%s (%d)", c.Name, len(c.Topics)), width-2)
		switch {
		case focused && m.sidebarSection == 0 && i == m.catCursor:
			row = selStyle.Render("> " + row)
		case c.ID == m.activeCatID:
			row = activeStyle.Render("  " + row)
		default:
			row = "  " + row
		}
		b.WriteString(row + "\n")
	}

	b.WriteString("\n" + head.Render("Tag filter") + "\n")
	tags := derive.TagUniverse(m.cats)
	on := map[string]bool{}
	for _, t := range m.filterTags {
		on[t] = true
	}
	tagRows := height - catRows - 4
	if tagRows < 3 {
		tagRows = 3
	}
	start = windowStart(m.tagCursor, len(tags), tagRows)
	for i := start; i < len(tags) && i < start+tagRows; i++ {
		tag := tags[i]
		mark := "  "
		if on[tag] {
			mark = "✓ "
		}
		row := truncate(mark+tag, width-2)
		if focused && m.sidebarSection == 1 && i == m.tagCursor {
			row = selStyle.Render("> " + row)
		} else {
			row = "  " + row
		}
		b.WriteString(row + "\n")
	}
	if len(m.filterTags) > 0 {
		b.WriteString(styleMuted().Render(fmt.Sprintf("%d active · c clears", len(m.filterTags))))
	}
	return b.String()
}

// windowStart keeps cursor visible inside a rows-tall scrolling window.
func windowStart(cursor, total, rows int) int {
	if total <= rows || rows <= 0 {
		return 0
	}
	start := cursor - rows/2
	if start < 0 {
		start = 0
	}
	if start > total-rows {
		start = total - rows
	}
	return start
}
