package tui

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"atlas/internal/model"
	"atlas/internal/store"

	tea "github.com/charmbracelet/bubbletea"
)

func newTestModel(t *testing.T, cats []model.Category) appModel {
	t.Helper()
	s := store.Store{Dir: t.TempDir()}
	m := newAppModel(s, cats, "light", "#111827")
	m.width = 120
	m.height = 40
	return m
}

func twoCategoryTree() []model.Category {
	year := 1200
	lat, lng := 29.98, 31.13
	return []model.Category{
		{ID: "alpha", Name: "Alpha", Topics: []model.Topic{
			{ID: "pyramids", Title: "Pyramid masonry", Tags: []string{"site", "craft"}, Role: model.RoleSite, Year: &year, Lat: &lat, Lng: &lng},
			{ID: "undated", Title: "Undated claim", Tags: []string{"debate"}},
		}},
		{ID: "beta", Name: "Beta", Topics: []model.Topic{
			{ID: "beta-topic", Title: "Beta finding", Tags: []string{"evidence"}},
		}},
	}
}

func press(t *testing.T, m appModel, msgs ...tea.Msg) appModel {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(appModel)
		if !ok {
			t.Fatalf("Update returned %T, want appModel", next)
		}
	}
	return m
}

func runes(s string) tea.Msg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func key(k tea.KeyType) tea.Msg {
	return tea.KeyMsg{Type: k}
}

func TestAddCategoryThenTopicFlow(t *testing.T) {
	m := newTestModel(t, []model.Category{})

	m = press(t, m, runes("A"), runes("Test"), key(tea.KeyEnter))
	c := model.FindCategory(m.cats, "test")
	if c == nil {
		t.Fatalf("expected category 'test' after prompt, have %v", m.cats)
	}
	if m.activeCatID != "test" {
		t.Fatalf("new category should become active, got %q", m.activeCatID)
	}

	m = press(t, m, runes("a"), runes("Hello World"), key(tea.KeyEnter))
	c = model.FindCategory(m.cats, "test")
	if len(c.Topics) != 1 || c.Topics[0].ID != "hello-world" {
		t.Fatalf("expected new topic 'hello-world' first in category, got %+v", c.Topics)
	}
	top := c.Topics[0]
	if top.RoleOrDefault() != model.RoleNote || top.ConfidenceOrDefault() != 50 {
		t.Fatalf("new topic defaults wrong: role=%q conf=%d", top.RoleOrDefault(), top.ConfidenceOrDefault())
	}
	if m.sel.CatID != "test" || m.sel.TopicID != "hello-world" {
		t.Fatalf("new topic should be selected, got %+v", m.sel)
	}
}

func TestNewTopicPrependsToActiveCategory(t *testing.T) {
	m := newTestModel(t, twoCategoryTree())
	m.activeCatID = "alpha"

	m = press(t, m, runes("a"), runes("Newest"), key(tea.KeyEnter))
	c := model.FindCategory(m.cats, "alpha")
	if c.Topics[0].ID != "newest" {
		t.Fatalf("new topic should be first, got order %v", c.Topics)
	}
	if len(c.Topics) != 3 {
		t.Fatalf("expected 3 topics, got %d", len(c.Topics))
	}
}

func TestViewSwitchingKeys(t *testing.T) {
	m := newTestModel(t, twoCategoryTree())
	for _, tc := range []struct {
		key  string
		want viewMode
	}{
		{"2", viewKanban}, {"3", viewTimeline}, {"4", viewMap}, {"1", viewList},
	} {
		m = press(t, m, runes(tc.key))
		if m.view != tc.want {
			t.Fatalf("key %q: view = %v, want %v", tc.key, m.view, tc.want)
		}
	}
}

func TestSearchRequiresModifier(t *testing.T) {
	m := newTestModel(t, twoCategoryTree())
	m = press(t, m, runes("k"))
	if m.searchFocused {
		t.Fatal("plain k must not open search")
	}
	m = press(t, m, key(tea.KeyCtrlK))
	if !m.searchFocused {
		t.Fatal("ctrl+k must open search")
	}
}

func TestSidebarToggleRequiresModifier(t *testing.T) {
	m := newTestModel(t, twoCategoryTree())
	open := m.sidebarOpen
	m = press(t, m, runes("b"))
	if m.sidebarOpen != open {
		t.Fatal("plain b must not toggle sidebar")
	}
	m = press(t, m, key(tea.KeyCtrlB))
	if m.sidebarOpen == open {
		t.Fatal("ctrl+b must toggle sidebar")
	}
}

func TestSearchBypassesActiveCategory(t *testing.T) {
	m := newTestModel(t, twoCategoryTree())
	m.activeCatID = "alpha"

	m = press(t, m, key(tea.KeyCtrlK), runes("Beta finding"), key(tea.KeyEnter))
	vis := m.visible()
	if len(vis) != 1 || vis[0].ID != "beta-topic" {
		t.Fatalf("search should reach all categories, got %+v", vis)
	}
	if !strings.Contains(m.renderList(80, 30), "Beta finding") {
		t.Fatal("list should render the search hit from the other category")
	}
}

func TestEscClearsSearch(t *testing.T) {
	m := newTestModel(t, twoCategoryTree())
	m = press(t, m, key(tea.KeyCtrlK), runes("Beta"), key(tea.KeyEsc))
	if m.searchFocused || m.search.Value() != "" {
		t.Fatalf("esc should clear and close search, got focused=%v value=%q", m.searchFocused, m.search.Value())
	}
}

func TestSelectionFollowsVisibleList(t *testing.T) {
	m := newTestModel(t, twoCategoryTree())
	m.activeCatID = "alpha"
	m.ensureSelection()
	if m.sel.TopicID != "pyramids" {
		t.Fatalf("first visible topic should be selected, got %+v", m.sel)
	}

	m = press(t, m, runes("j"))
	if m.sel.TopicID != "undated" {
		t.Fatalf("j should move selection, got %+v", m.sel)
	}
}

func TestImportRejectionLeavesTreeUnchanged(t *testing.T) {
	m := newTestModel(t, twoCategoryTree())
	before := append([]model.Category{}, m.cats...)

	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte(`{"not":"a tree"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	m.importTree(path)

	if !strings.Contains(m.status, "import rejected") {
		t.Fatalf("expected rejection status, got %q", m.status)
	}
	if !reflect.DeepEqual(m.cats, before) {
		t.Fatal("rejected import must not change the tree")
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	m := newTestModel(t, twoCategoryTree())
	before := append([]model.Category{}, m.cats...)

	path := filepath.Join(t.TempDir(), "out.json")
	m.exportTree(path)
	if !strings.Contains(m.status, "exported") {
		t.Fatalf("export failed: %q", m.status)
	}

	m.importTree(path)
	if !reflect.DeepEqual(m.cats, before) {
		t.Fatal("import(export(tree)) should reproduce the tree")
	}
}

func TestKanbanGroupToggle(t *testing.T) {
	m := newTestModel(t, twoCategoryTree())
	m = press(t, m, runes("g"))
	if m.kanbanGroup != "tag" {
		t.Fatalf("g should switch grouping to tag, got %q", m.kanbanGroup)
	}
	m = press(t, m, runes("g"))
	if m.kanbanGroup != "role" {
		t.Fatalf("g should switch grouping back to role, got %q", m.kanbanGroup)
	}
}
