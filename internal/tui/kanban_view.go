package tui

import (
	"fmt"
	"strings"

	"atlas/internal/derive"

	"github.com/charmbracelet/lipgloss"
)

// renderKanban draws the board over the FULL topic corpus: the active
// category and any search query deliberately do not apply here.
func (m appModel) renderKanban(width, height int) string {
	board := derive.KanbanBoard(m.cats, m.kanbanGroup)
	if len(board) == 0 {
		return styleMuted().Render("No topics yet. Press a to add one.")
	}

	gap := 2
	colW := 24
	visCols := (width + gap) / (colW + gap)
	if visCols < 1 {
		visCols = 1
	}
	if visCols > len(board) {
		visCols = len(board)
	}
	start := windowStart(m.kanbanCol, len(board), visCols)

	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(colorSurfaceFg)
	headerSelStyle := lipgloss.NewStyle().Bold(true).Background(colorSelectedBg).Foreground(colorSelectedFg)
	cardSelStyle := lipgloss.NewStyle().Background(colorSelectedBg).Foreground(colorSelectedFg).Bold(true)

	cols := make([]string, 0, visCols)
	for ci := start; ci < start+visCols; ci++ {
		col := board[ci]
		var b strings.Builder

		head := fmt.Sprintf("%s (%d)", col.Key, len(col.Topics))
		if ci == m.kanbanCol && m.focus == focusMain {
			b.WriteString(headerSelStyle.Render(truncate(head, colW)) + "\n\n")
		} else {
			b.WriteString(headerStyle.Render(truncate(head, colW)) + "\n\n")
		}

		if len(col.Topics) == 0 {
			// Empty columns stay on the board with an explicit marker.
			b.WriteString(styleMuted().Render("—") + "\n")
		}
		for ii, t := range col.Topics {
			title := fmt.Sprintf("%s %s", confidenceDot(t.ConfidenceOrDefault()), t.Title)
			meta := ""
			if t.Year != nil {
				meta = fmt.Sprintf("  %d", *t.Year)
			}
			lines := wrapPlainText(title+meta, colW-2)
			card := strings.Join(lines, "\n")
			if ci == m.kanbanCol && ii == m.kanbanItem && m.focus == focusMain {
				card = cardSelStyle.Render(card)
			} else if m.isSelected(t) {
				card = lipgloss.NewStyle().Foreground(colorAccent).Render(card)
			}
			b.WriteString(card + "\n")
			if len(t.Tags) > 0 {
				show := t.Tags
				if len(show) > 3 {
					show = show[:3]
				}
				b.WriteString(styleMuted().Render(truncate(strings.Join(show, " "), colW-2)) + "\n")
			}
			b.WriteString("\n")
		}
		cols = append(cols, lipgloss.NewStyle().
			Width(colW).
			MaxWidth(colW).
			Height(height).
			MaxHeight(height).
			MarginRight(gap).
			Render(b.String()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}
