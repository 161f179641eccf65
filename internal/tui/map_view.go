package tui

import (
	"fmt"
	"strings"

	"atlas/internal/derive"

	"github.com/charmbracelet/lipgloss"
)

// renderMap projects located topics onto a character canvas with a simple
// equirectangular graticule. Not a basemap, just enough geometry to orient.
func (m appModel) renderMap(width, height int) string {
	points := derive.BuildMap(m.cats)
	if len(points) == 0 {
		return styleMuted().Render("No located topics. Add Lat and Lng to a topic to place it here.")
	}
	if width < 20 {
		width = 20
	}
	rows := height - 3
	if rows < 6 {
		rows = 6
	}

	colOf := func(x float64) int {
		c := int(x * float64(width-1))
		if c < 0 {
			c = 0
		}
		if c > width-1 {
			c = width - 1
		}
		return c
	}
	rowOf := func(y float64) int {
		r := int(y * float64(rows-1))
		if r < 0 {
			r = 0
		}
		if r > rows-1 {
			r = rows - 1
		}
		return r
	}

	canvas := make([][]rune, rows)
	for i := range canvas {
		canvas[i] = blankRow(width)
	}
	for _, lat := range derive.GraticuleLats {
		r := rowOf(derive.ProjectY(lat))
		for c := range canvas[r] {
			canvas[r][c] = '·'
		}
	}
	for _, lng := range derive.GraticuleLngs {
		c := colOf(derive.ProjectX(lng))
		for r := range canvas {
			if canvas[r][c] == '·' {
				canvas[r][c] = '+'
			} else {
				canvas[r][c] = '·'
			}
		}
	}

	// Points last so they always win over the graticule.
	for pi, p := range points {
		r, c := rowOf(p.Y), colOf(p.X)
		marker := '●'
		if pi == m.mapCursor {
			marker = '◆'
		}
		canvas[r][c] = marker
		if pi == m.mapCursor || m.isSelected(p.FlatTopic) {
			placeRunes(canvas[r], c+1, " "+truncate(p.Title, width-c-2))
		}
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Map · %d located topics\n", len(points)))
	for _, row := range canvas {
		b.WriteString(strings.TrimRight(string(row), " ") + "\n")
	}
	if m.mapCursor >= 0 && m.mapCursor < len(points) {
		p := points[m.mapCursor]
		line := fmt.Sprintf("▸ %s · %.1f, %.1f · %s", p.Title, *p.Lat, *p.Lng, p.CatName)
		b.WriteString(lipgloss.NewStyle().Foreground(colorAccent).Render(truncate(line, width)))
	}
	return b.String()
}
