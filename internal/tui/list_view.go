package tui

import (
	"fmt"
	"strings"

	"atlas/internal/derive"

	"github.com/charmbracelet/lipgloss"
)

// confidenceDot is a compact confidence marker for list and kanban rows.
func confidenceDot(confidence int) string {
	switch {
	case confidence >= 70:
		return "●"
	case confidence >= 40:
		return "◐"
	default:
		return "○"
	}
}

// renderList draws the filtered/searched topic set in pipeline order.
func (m appModel) renderList(width, height int) string {
	vis := m.visible()

	head := fmt.Sprintf("Topics · %d shown", len(vis))
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render(head) + "\n\n")

	if len(vis) == 0 {
		b.WriteString(styleMuted().Render("No topics match your filters."))
		return b.String()
	}

	selStyle := lipgloss.NewStyle().Background(colorSelectedBg).Foreground(colorSelectedFg)
	rows := (height - 2) / 2
	if rows < 1 {
		rows = 1
	}
	start := windowStart(m.listCursor, len(vis), rows)
	for i := start; i < len(vis) && i < start+rows; i++ {
		t := vis[i]
		tags := ""
		if len(t.Tags) > 0 {
			show := t.Tags
			if len(show) > 4 {
				show = show[:4]
			}
			tags = "  [" + strings.Join(show, " ") + "]"
		}
		line := truncate(fmt.Sprintf("%s %s%s", confidenceDot(t.ConfidenceOrDefault()), t.Title, tags), width-2)
		caption := styleMuted().Render(truncate("  "+t.CatName, width-2))

		if m.isSelected(t) {
			line = selStyle.Render(line)
		}
		cursor := "  "
		if m.focus == focusMain && i == m.listCursor {
			cursor = lipgloss.NewStyle().Foreground(colorAccent).Render("> ")
		}
		b.WriteString(cursor + line + "\n" + "  " + caption + "\n")
	}
	return b.String()
}

func (m appModel) isSelected(t derive.FlatTopic) bool {
	return m.sel.CatID == t.CatID && m.sel.TopicID == t.ID
}
