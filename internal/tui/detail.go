package tui

import (
	"fmt"
	"strings"

	"atlas/internal/model"

	"github.com/charmbracelet/lipgloss"
)

// renderDetail draws the right-hand panel: the selected topic in read mode,
// or the field editor while edit mode is on.
func (m appModel) renderDetail(width, height int) string {
	t := m.selectedTopic()
	if t == nil {
		return styleMuted().Render("Select a topic to view details.")
	}
	if m.editMode && m.editor != nil {
		return m.renderEditor(*t, width)
	}

	var b strings.Builder
	if cat := model.FindCategory(m.cats, m.sel.CatID); cat != nil {
		b.WriteString(styleMuted().Render(cat.Name) + "\n")
	}
	b.WriteString(lipgloss.NewStyle().Bold(true).Render(t.Title) + "\n\n")

	b.WriteString(styleChipOn().Render(t.RoleOrDefault()))
	b.WriteString("  " + confidenceBar(t.ConfidenceOrDefault(), 10))
	b.WriteString(styleMuted().Render(fmt.Sprintf(" %d%%", t.ConfidenceOrDefault())) + "\n")

	if len(t.Tags) > 0 {
		chips := make([]string, len(t.Tags))
		for i, tag := range t.Tags {
			chips[i] = styleChip().Render(tag)
		}
		b.WriteString("\n" + strings.Join(chips, " ") + "\n")
	}

	var facts []string
	if t.Year != nil {
		facts = append(facts, fmt.Sprintf("Year %d", *t.Year))
	}
	if t.HasCoords() {
		facts = append(facts, fmt.Sprintf("At %.2f, %.2f", *t.Lat, *t.Lng))
	}
	if len(facts) > 0 {
		b.WriteString(styleMuted().Render(strings.Join(facts, " · ")) + "\n")
	}

	if t.Summary != "" {
		b.WriteString("\n" + renderMarkdown(t.Summary, width) + "\n")
	}
	if t.Notes != "" {
		b.WriteString("\n" + styleMuted().Render("Notes") + "\n")
		b.WriteString(renderMarkdown(t.Notes, width) + "\n")
	}
	if len(t.Links) > 0 {
		b.WriteString("\n" + styleMuted().Render("Links") + "\n")
		for _, l := range t.Links {
			b.WriteString("  " + truncate(l, width-2) + "\n")
		}
	}
	return b.String()
}

// confidenceBar renders a fixed-width block gauge for a 0-100 value.
func confidenceBar(confidence, cells int) string {
	filled := confidence * cells / 100
	if filled > cells {
		filled = cells
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", cells-filled)
	return lipgloss.NewStyle().Foreground(colorAccent).Render(bar)
}
