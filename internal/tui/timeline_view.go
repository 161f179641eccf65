package tui

import (
	"fmt"
	"strconv"
	"strings"

	"atlas/internal/derive"

	"github.com/charmbracelet/lipgloss"
)

// renderTimeline lays dated topics on a character axis. Labels cycle over a
// fixed set of lanes above the axis so neighbours don't pile on one row.
func (m appModel) renderTimeline(width, height int) string {
	tl := derive.BuildTimeline(m.cats)
	if tl == nil {
		return styleMuted().Render("No dated topics. Add a numeric Year to a topic to place it here.")
	}
	if width < 20 {
		width = 20
	}

	col := func(x float64) int {
		c := int(x * float64(width-1))
		if c < 0 {
			c = 0
		}
		if c > width-1 {
			c = width - 1
		}
		return c
	}

	lanes := make([][]rune, derive.TimelineLanes)
	for i := range lanes {
		lanes[i] = blankRow(width)
	}
	for pi, p := range tl.Points {
		row := lanes[p.Lane]
		c := col(p.X)
		marker := '•'
		if pi == m.timelineCursor {
			marker = '◆'
		}
		row[c] = marker
		label := " " + truncate(p.Title, width-c-2)
		placeRunes(row, c+1, label)
	}

	axis := blankRow(width)
	for i := range axis {
		axis[i] = '─'
	}
	tickRow := blankRow(width)
	for _, t := range tl.Ticks {
		c := col(tl.ScaleX(float64(t)))
		axis[c] = '┬'
		placeRunes(tickRow, c, strconv.Itoa(t))
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Years %d to %d · %d topics\n\n", tl.Min, tl.Max, len(tl.Points)))
	for _, row := range lanes {
		b.WriteString(strings.TrimRight(string(row), " ") + "\n")
	}
	b.WriteString(styleMuted().Render(string(axis)) + "\n")
	b.WriteString(styleMuted().Render(strings.TrimRight(string(tickRow), " ")) + "\n")

	if m.timelineCursor >= 0 && m.timelineCursor < len(tl.Points) {
		p := tl.Points[m.timelineCursor]
		line := fmt.Sprintf("▸ %s · %d · %s", p.Title, *p.Year, p.CatName)
		b.WriteString("\n" + lipgloss.NewStyle().Foreground(colorAccent).Render(truncate(line, width)))
	}
	return b.String()
}

func blankRow(width int) []rune {
	row := make([]rune, width)
	for i := range row {
		row[i] = ' '
	}
	return row
}

// placeRunes writes s into row starting at col, clipping at both ends.
func placeRunes(row []rune, col int, s string) {
	for _, r := range s {
		if col < 0 {
			col++
			continue
		}
		if col >= len(row) {
			return
		}
		row[col] = r
		col++
	}
}
