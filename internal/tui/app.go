package tui

import (
	"context"

	"atlas/internal/derive"
	"atlas/internal/model"
	"atlas/internal/store"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type viewMode int

const (
	viewList viewMode = iota
	viewKanban
	viewTimeline
	viewMap
)

func (v viewMode) label() string {
	switch v {
	case viewKanban:
		return "Kanban"
	case viewTimeline:
		return "Timeline"
	case viewMap:
		return "Map"
	default:
		return "List"
	}
}

type focusArea int

const (
	focusSidebar focusArea = iota
	focusMain
)

type promptKind int

const (
	promptNone promptKind = iota
	promptAddCategory
	promptAddTopic
	promptExport
	promptImport
)

// selection addresses a topic by owning category; a dangling pointer simply
// renders the empty detail state.
type selection struct {
	CatID   string
	TopicID string
}

func (s selection) zero() bool { return s.CatID == "" && s.TopicID == "" }

// accentPalette are the accent choices the settings keys cycle through. The
// first entry matches the stored default.
var accentPalette = []string{"#111827", "#2563eb", "#16a34a", "#b45309", "#7c3aed", "#be123c"}

type appModel struct {
	store store.Store
	cats  []model.Category

	width  int
	height int

	view        viewMode
	kanbanGroup derive.KanbanGroup
	sidebarOpen bool
	editMode    bool
	focus       focusArea

	activeCatID string
	sel         selection
	filterTags  []string

	search        textinput.Model
	searchFocused bool

	// Sidebar has two sections: categories, then the tag filter.
	sidebarSection int
	catCursor      int
	tagCursor      int

	// Cursors for the main area, one per view.
	listCursor     int
	kanbanCol      int
	kanbanItem     int
	timelineCursor int
	mapCursor      int

	prompt      promptKind
	promptInput textinput.Model

	editor *editorState

	theme  string
	accent string

	status string
}

// Run starts the interactive TUI on the given store.
func Run(s store.Store) error {
	ctx := context.Background()

	applyColorProfilePreference()
	theme := s.LoadPref(ctx, store.KeyTheme, store.DefaultTheme)
	applyThemePreference(theme)
	accent := s.LoadPref(ctx, store.KeyAccent, store.DefaultAccent)
	setAccent(accent)

	m := newAppModel(s, s.Load(ctx), theme, accent)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newAppModel(s store.Store, cats []model.Category, theme, accent string) appModel {
	search := textinput.New()
	search.Placeholder = "Search topics…"
	search.Prompt = "/ "
	search.CharLimit = 0

	prompt := textinput.New()
	prompt.CharLimit = 0

	m := appModel{
		store:       s,
		cats:        cats,
		view:        viewList,
		kanbanGroup: derive.GroupByRole,
		sidebarOpen: true,
		focus:       focusMain,
		search:      search,
		promptInput: prompt,
		theme:       theme,
		accent:      accent,
	}
	if len(cats) > 0 {
		m.activeCatID = cats[0].ID
	}
	m.ensureSelection()
	return m
}

func (m appModel) Init() tea.Cmd { return nil }

// visible computes the current view subset through the derivation pipeline.
func (m *appModel) visible() []derive.FlatTopic {
	return derive.VisibleTopics(m.cats, m.search.Value(), m.activeCatID, m.filterTags)
}

// ensureSelection implements the default-selection policy: whenever the
// visible list is non-empty and the current pointer does not resolve to an
// existing topic, the first visible topic becomes selected.
func (m *appModel) ensureSelection() {
	if !m.sel.zero() && model.FindTopic(m.cats, m.sel.CatID, m.sel.TopicID) != nil {
		return
	}
	vis := m.visible()
	if len(vis) > 0 {
		m.sel = selection{CatID: vis[0].CatID, TopicID: vis[0].ID}
	}
}

func (m *appModel) selectTopic(catID, topicID string) {
	m.sel = selection{CatID: catID, TopicID: topicID}
}

func (m *appModel) selectedTopic() *model.Topic {
	if m.sel.zero() {
		return nil
	}
	return model.FindTopic(m.cats, m.sel.CatID, m.sel.TopicID)
}

// persist saves the whole tree. A failure never blocks the action; the
// in-memory tree stays authoritative and the failure shows on the status
// line.
func (m *appModel) persist() {
	if err := m.store.Save(context.Background(), m.cats); err != nil {
		m.status = "warning: changes not saved (" + err.Error() + ")"
	}
}

func (m *appModel) patchSelected(patch model.TopicPatch) {
	if model.PatchTopic(m.cats, m.sel.CatID, m.sel.TopicID, patch) {
		m.persist()
	}
}

func (m *appModel) addCategory(name string) {
	id := model.CategoryID(name)
	if model.FindCategory(m.cats, id) != nil {
		m.status = "category " + id + " already exists"
		return
	}
	m.cats = append(m.cats, model.Category{ID: id, Name: name, Topics: []model.Topic{}})
	m.activeCatID = id
	m.search.SetValue("")
	m.persist()
}

// addTopic prepends a new topic to the active category and selects it.
func (m *appModel) addTopic(title string) {
	catID := m.activeCatID
	if catID == "" && len(m.cats) > 0 {
		catID = m.cats[0].ID
	}
	c := model.FindCategory(m.cats, catID)
	if c == nil {
		m.status = "no category to add to"
		return
	}
	t := model.NewTopic(model.TopicID(title), title)
	c.Topics = append([]model.Topic{t}, c.Topics...)
	m.selectTopic(c.ID, t.ID)
	m.listCursor = 0
	m.persist()
}

func (m *appModel) toggleFilterTag(tag string) {
	for i, t := range m.filterTags {
		if t == tag {
			m.filterTags = append(m.filterTags[:i], m.filterTags[i+1:]...)
			m.ensureSelection()
			return
		}
	}
	m.filterTags = append(m.filterTags, tag)
	m.ensureSelection()
}

func (m *appModel) setTheme(theme string) {
	m.theme = theme
	applyThemePreference(theme)
	if err := m.store.SavePref(context.Background(), store.KeyTheme, theme); err != nil {
		m.status = "warning: theme not saved (" + err.Error() + ")"
	}
}

func (m *appModel) cycleAccent() {
	next := accentPalette[0]
	for i, a := range accentPalette {
		if a == m.accent {
			next = accentPalette[(i+1)%len(accentPalette)]
			break
		}
	}
	m.accent = next
	setAccent(next)
	if err := m.store.SavePref(context.Background(), store.KeyAccent, next); err != nil {
		m.status = "warning: accent not saved (" + err.Error() + ")"
	}
}
