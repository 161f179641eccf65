package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	sidebarWidth   = 26
	minDetailWidth = 36
)

func (m appModel) View() string {
	if m.width == 0 {
		return "loading…"
	}

	header := m.renderHeader()
	footer := m.renderFooter()
	bodyH := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if bodyH < 3 {
		bodyH = 3
	}

	detailW := m.width / 3
	if detailW < minDetailWidth {
		detailW = minDetailWidth
	}
	mainW := m.width - detailW
	var panes []string
	if m.sidebarOpen && m.width > sidebarWidth+minDetailWidth+20 {
		mainW -= sidebarWidth
		panes = append(panes, pane(m.renderSidebar(sidebarWidth-2, bodyH-2), sidebarWidth, bodyH))
	}
	panes = append(panes,
		pane(m.renderMain(mainW-2, bodyH-2), mainW, bodyH),
		pane(m.renderDetail(detailW-2, bodyH-2), detailW, bodyH),
	)

	body := lipgloss.JoinHorizontal(lipgloss.Top, panes...)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

// pane clips and pads content to an exact box so JoinHorizontal stays stable.
func pane(content string, w, h int) string {
	return lipgloss.NewStyle().
		Width(w-1).
		Height(h).
		MaxWidth(w).
		MaxHeight(h).
		Padding(0, 1).
		Render(content)
}

func (m appModel) renderHeader() string {
	title := lipgloss.NewStyle().Bold(true).Foreground(colorAccent).Render("Atlas")

	var tabs []string
	for _, v := range []viewMode{viewList, viewKanban, viewTimeline, viewMap} {
		lbl := fmt.Sprintf("%d:%s", int(v)+1, v.label())
		if v == m.view {
			tabs = append(tabs, styleChipOn().Render(lbl))
		} else {
			tabs = append(tabs, styleChip().Render(lbl))
		}
	}
	group := ""
	if m.view == viewKanban {
		group = styleMuted().Render(" grouped by " + string(m.kanbanGroup))
	}

	search := m.search.View()
	if !m.searchFocused && strings.TrimSpace(m.search.Value()) == "" {
		search = styleMuted().Render("ctrl+k to search")
	}

	line := title + "  " + strings.Join(tabs, " ") + group + "  " + search

	second := ""
	switch {
	case m.prompt != promptNone:
		second = m.promptInput.View()
	case m.status != "":
		second = styleMuted().Render(m.status)
	}
	return lipgloss.NewStyle().MaxWidth(m.width).Render(line) + "\n" +
		lipgloss.NewStyle().MaxWidth(m.width).Render(second)
}

func (m appModel) renderFooter() string {
	hints := "q quit · tab focus · 1-4 views · e edit · a topic · A category · g group · E export · I import · T theme · C accent · ctrl+b sidebar"
	return styleMuted().Render(truncate(hints, m.width))
}

func (m appModel) renderMain(width, height int) string {
	switch m.view {
	case viewKanban:
		return m.renderKanban(width, height)
	case viewTimeline:
		return m.renderTimeline(width, height)
	case viewMap:
		return m.renderMap(width, height)
	default:
		return m.renderList(width, height)
	}
}
