package tui

import (
	"fmt"
	"os"
	"strings"

	"atlas/internal/derive"
	"atlas/internal/store"

	tea "github.com/charmbracelet/bubbletea"
)

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.prompt != promptNone {
			return m.updatePrompt(msg)
		}
		if m.searchFocused {
			return m.updateSearch(msg)
		}
		if m.editMode && m.editor != nil && m.editor.editing {
			return m.updateEditorInput(msg)
		}
		return m.updateKeys(msg)
	}
	return m, nil
}

// updateKeys handles the non-typing key surface.
func (m appModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""

	switch msg.String() {
	case "q":
		return m, tea.Quit

	// Global accelerators; both require the modifier.
	case "ctrl+k":
		m.searchFocused = true
		m.search.Focus()
		return m, nil
	case "ctrl+b":
		m.sidebarOpen = !m.sidebarOpen
		if !m.sidebarOpen && m.focus == focusSidebar {
			m.focus = focusMain
		}
		return m, nil

	case "1":
		m.view = viewList
		return m, nil
	case "2":
		m.view = viewKanban
		return m, nil
	case "3":
		m.view = viewTimeline
		return m, nil
	case "4":
		m.view = viewMap
		return m, nil

	case "tab":
		if m.sidebarOpen {
			if m.focus == focusSidebar {
				m.focus = focusMain
			} else {
				m.focus = focusSidebar
			}
		}
		return m, nil

	case "g":
		if m.kanbanGroup == derive.GroupByRole {
			m.kanbanGroup = derive.GroupByTag
		} else {
			m.kanbanGroup = derive.GroupByRole
		}
		m.kanbanCol, m.kanbanItem = 0, 0
		return m, nil

	case "e":
		if m.editMode {
			m.closeEditor()
		} else if m.selectedTopic() != nil {
			m.openEditor()
		}
		return m, nil

	case "a":
		return m.openPrompt(promptAddTopic, "New topic title…")
	case "A":
		return m.openPrompt(promptAddCategory, "New category name…")
	case "E":
		return m.openPrompt(promptExport, "Export to file… (default atlas-export.json)")
	case "I":
		return m.openPrompt(promptImport, "Import from file…")

	case "T":
		if m.theme == "dark" {
			m.setTheme("light")
		} else {
			m.setTheme("dark")
		}
		return m, nil
	case "C":
		m.cycleAccent()
		return m, nil
	}

	if m.editMode && m.editor != nil {
		return m.updateEditorKeys(msg)
	}
	if m.focus == focusSidebar && m.sidebarOpen {
		return m.updateSidebarKeys(msg)
	}
	return m.updateMainKeys(msg)
}

func (m appModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.search.SetValue("")
		m.search.Blur()
		m.searchFocused = false
		m.ensureSelection()
		return m, nil
	case "enter", "ctrl+k":
		m.search.Blur()
		m.searchFocused = false
		return m, nil
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.listCursor = 0
	m.ensureSelection()
	return m, cmd
}

func (m appModel) openPrompt(kind promptKind, placeholder string) (tea.Model, tea.Cmd) {
	m.prompt = kind
	m.promptInput.Placeholder = placeholder
	m.promptInput.SetValue("")
	m.promptInput.Focus()
	return m, nil
}

func (m appModel) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.prompt = promptNone
		m.promptInput.Blur()
		return m, nil
	case "enter":
		value := strings.TrimSpace(m.promptInput.Value())
		kind := m.prompt
		m.prompt = promptNone
		m.promptInput.Blur()
		m.submitPrompt(kind, value)
		return m, nil
	}
	var cmd tea.Cmd
	m.promptInput, cmd = m.promptInput.Update(msg)
	return m, cmd
}

func (m *appModel) submitPrompt(kind promptKind, value string) {
	switch kind {
	case promptAddCategory:
		if value != "" {
			m.addCategory(value)
		}
	case promptAddTopic:
		if value != "" {
			m.addTopic(value)
		}
	case promptExport:
		if value == "" {
			value = "atlas-export.json"
		}
		m.exportTree(value)
	case promptImport:
		if value != "" {
			m.importTree(value)
		}
	}
}

func (m *appModel) exportTree(path string) {
	b, err := store.EncodeTree(m.cats)
	if err != nil {
		m.status = "export failed: " + err.Error()
		return
	}
	if err := os.WriteFile(path, append(b, '\n'), 0o644); err != nil {
		m.status = "export failed: " + err.Error()
		return
	}
	m.status = "exported to " + path
}

// importTree replaces the whole tree, or rejects the file and changes
// nothing. No partial-import merging.
func (m *appModel) importTree(path string) {
	b, err := os.ReadFile(path)
	if err != nil {
		m.status = "import failed: " + err.Error()
		return
	}
	cats, err := store.DecodeTree(b)
	if err != nil {
		m.status = "import rejected: " + err.Error()
		return
	}
	m.cats = cats
	m.sel = selection{}
	m.filterTags = nil
	m.activeCatID = ""
	if len(cats) > 0 {
		m.activeCatID = cats[0].ID
	}
	m.listCursor, m.catCursor, m.tagCursor = 0, 0, 0
	m.closeEditor()
	m.ensureSelection()
	m.persist()
	m.status = fmt.Sprintf("imported %d categories", len(cats))
}

func (m appModel) updateSidebarKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	tags := derive.TagUniverse(m.cats)
	switch msg.String() {
	case "s":
		m.sidebarSection = 1 - m.sidebarSection
		return m, nil
	case "j", "down":
		if m.sidebarSection == 0 {
			if m.catCursor < len(m.cats)-1 {
				m.catCursor++
			}
		} else if m.tagCursor < len(tags)-1 {
			m.tagCursor++
		}
		return m, nil
	case "k", "up":
		if m.sidebarSection == 0 {
			if m.catCursor > 0 {
				m.catCursor--
			}
		} else if m.tagCursor > 0 {
			m.tagCursor--
		}
		return m, nil
	case "enter", " ":
		if m.sidebarSection == 0 {
			if m.catCursor < len(m.cats) {
				m.activeCatID = m.cats[m.catCursor].ID
				m.search.SetValue("")
				m.listCursor = 0
				m.ensureSelection()
			}
		} else if m.tagCursor < len(tags) {
			m.toggleFilterTag(tags[m.tagCursor])
		}
		return m, nil
	case "c":
		m.filterTags = nil
		m.ensureSelection()
		return m, nil
	}
	return m, nil
}

// updateMainKeys routes navigation to the active view.
func (m appModel) updateMainKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.view {
	case viewKanban:
		return m.updateKanbanKeys(msg)
	case viewTimeline:
		return m.updateTimelineKeys(msg)
	case viewMap:
		return m.updateMapKeys(msg)
	default:
		return m.updateListKeys(msg)
	}
}

func (m appModel) updateListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	vis := m.visible()
	switch msg.String() {
	case "j", "down":
		if m.listCursor < len(vis)-1 {
			m.listCursor++
		}
	case "k", "up":
		if m.listCursor > 0 {
			m.listCursor--
		}
	default:
		return m, nil
	}
	if m.listCursor < len(vis) {
		t := vis[m.listCursor]
		m.selectTopic(t.CatID, t.ID)
	}
	return m, nil
}

func (m appModel) updateKanbanKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	board := derive.KanbanBoard(m.cats, m.kanbanGroup)
	if len(board) == 0 {
		return m, nil
	}
	switch msg.String() {
	case "h", "left":
		if m.kanbanCol > 0 {
			m.kanbanCol--
		}
	case "l", "right":
		if m.kanbanCol < len(board)-1 {
			m.kanbanCol++
		}
	case "j", "down":
		if m.kanbanItem < len(board[m.kanbanCol].Topics)-1 {
			m.kanbanItem++
		}
	case "k", "up":
		if m.kanbanItem > 0 {
			m.kanbanItem--
		}
	case "enter":
		col := board[m.kanbanCol]
		if m.kanbanItem < len(col.Topics) {
			t := col.Topics[m.kanbanItem]
			m.selectTopic(t.CatID, t.ID)
		}
		return m, nil
	default:
		return m, nil
	}
	if n := len(board[m.kanbanCol].Topics); m.kanbanItem >= n {
		m.kanbanItem = n - 1
		if m.kanbanItem < 0 {
			m.kanbanItem = 0
		}
	}
	return m, nil
}

func (m appModel) updateTimelineKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	tl := derive.BuildTimeline(m.cats)
	if tl == nil {
		return m, nil
	}
	switch msg.String() {
	case "j", "down", "l", "right":
		if m.timelineCursor < len(tl.Points)-1 {
			m.timelineCursor++
		}
	case "k", "up", "h", "left":
		if m.timelineCursor > 0 {
			m.timelineCursor--
		}
	case "enter":
		if m.timelineCursor < len(tl.Points) {
			p := tl.Points[m.timelineCursor]
			m.selectTopic(p.CatID, p.ID)
		}
		return m, nil
	}
	return m, nil
}

func (m appModel) updateMapKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	points := derive.BuildMap(m.cats)
	if len(points) == 0 {
		return m, nil
	}
	switch msg.String() {
	case "j", "down", "l", "right":
		if m.mapCursor < len(points)-1 {
			m.mapCursor++
		}
	case "k", "up", "h", "left":
		if m.mapCursor > 0 {
			m.mapCursor--
		}
	case "enter":
		if m.mapCursor < len(points) {
			p := points[m.mapCursor]
			m.selectTopic(p.CatID, p.ID)
		}
		return m, nil
	}
	return m, nil
}
