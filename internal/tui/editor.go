package tui

import (
	"fmt"
	"strconv"
	"strings"

	"atlas/internal/derive"
	"atlas/internal/model"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type editorField int

const (
	fieldTitle editorField = iota
	fieldRole
	fieldConfidence
	fieldTags
	fieldSummary
	fieldNotes
	fieldLinks
	fieldYear
	fieldLat
	fieldLng
	fieldCount
)

var editorFieldLabels = [fieldCount]string{
	"Title", "Role", "Confidence", "Tags", "Summary", "Notes", "Links",
	"Year (negative = BCE)", "Latitude", "Longitude",
}

func (f editorField) multiline() bool {
	return f == fieldSummary || f == fieldNotes || f == fieldLinks
}

// editorState is the edit-mode half of the detail panel. Edit mode is a
// global toggle: it follows whichever topic is selected.
type editorState struct {
	cursor  editorField
	editing bool
	input   textinput.Model
	text    textarea.Model
}

func (m *appModel) openEditor() {
	input := textinput.New()
	input.CharLimit = 0
	text := textarea.New()
	text.CharLimit = 0
	text.ShowLineNumbers = false
	m.editor = &editorState{input: input, text: text}
	m.editMode = true
}

func (m *appModel) closeEditor() {
	m.editor = nil
	m.editMode = false
}

// updateEditorKeys handles field navigation while no field input is open.
func (m appModel) updateEditorKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ed := m.editor
	t := m.selectedTopic()
	if t == nil {
		m.closeEditor()
		return m, nil
	}

	switch msg.String() {
	case "esc":
		m.closeEditor()
		return m, nil
	case "j", "down":
		if ed.cursor < fieldCount-1 {
			ed.cursor++
		}
		return m, nil
	case "k", "up":
		if ed.cursor > 0 {
			ed.cursor--
		}
		return m, nil
	case "h", "left", "l", "right":
		if ed.cursor == fieldRole {
			m.cycleRole(msg.String() == "l" || msg.String() == "right")
		}
		return m, nil
	case "enter":
		if ed.cursor == fieldRole {
			m.cycleRole(true)
			return m, nil
		}
		m.beginFieldEdit(*t)
		return m, nil
	}
	return m, nil
}

func (m *appModel) cycleRole(forward bool) {
	t := m.selectedTopic()
	if t == nil {
		return
	}
	idx := model.RoleIndex(t.RoleOrDefault())
	if forward {
		idx = (idx + 1) % len(model.Roles)
	} else {
		idx = (idx + len(model.Roles) - 1) % len(model.Roles)
	}
	role := model.Roles[idx]
	m.patchSelected(model.TopicPatch{Role: &role})
}

func (m *appModel) beginFieldEdit(t model.Topic) {
	ed := m.editor
	ed.editing = true

	switch ed.cursor {
	case fieldTitle:
		ed.input.SetValue(t.Title)
	case fieldConfidence:
		ed.input.SetValue(strconv.Itoa(t.ConfidenceOrDefault()))
	case fieldTags:
		ed.input.SetValue("")
		ed.input.Placeholder = "Add tag…"
	case fieldYear:
		ed.input.SetValue(optIntString(t.Year))
	case fieldLat:
		ed.input.SetValue(optFloatString(t.Lat))
	case fieldLng:
		ed.input.SetValue(optFloatString(t.Lng))
	case fieldSummary:
		ed.text.SetValue(t.Summary)
	case fieldNotes:
		ed.text.SetValue(t.Notes)
	case fieldLinks:
		ed.text.SetValue(strings.Join(t.Links, "\n"))
	}
	if ed.cursor.multiline() {
		ed.text.Focus()
	} else {
		ed.input.Focus()
	}
}

// updateEditorInput handles keys while a field input is open.
func (m appModel) updateEditorInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ed := m.editor

	if ed.cursor.multiline() {
		switch msg.String() {
		case "esc": // commit
			m.commitField(ed.text.Value())
			ed.text.Blur()
			ed.editing = false
			return m, nil
		case "ctrl+x": // discard
			ed.text.Blur()
			ed.editing = false
			return m, nil
		}
		var cmd tea.Cmd
		ed.text, cmd = ed.text.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "esc":
		ed.input.Blur()
		ed.editing = false
		return m, nil
	case "enter":
		value := ed.input.Value()
		if ed.cursor == fieldTags {
			// Enter adds a tag; enter on an empty input finishes.
			tag := strings.TrimSpace(value)
			if tag == "" {
				ed.input.Blur()
				ed.editing = false
				return m, nil
			}
			m.addTagToSelected(tag)
			ed.input.SetValue("")
			return m, nil
		}
		m.commitField(value)
		ed.input.Blur()
		ed.editing = false
		return m, nil
	case "ctrl+r":
		if ed.cursor == fieldTags {
			m.removeLastTagFromSelected()
			return m, nil
		}
	}
	var cmd tea.Cmd
	ed.input, cmd = ed.input.Update(msg)
	return m, cmd
}

func (m *appModel) addTagToSelected(tag string) {
	t := m.selectedTopic()
	if t == nil {
		return
	}
	tags := model.Uniq(append(append([]string{}, t.Tags...), tag))
	m.patchSelected(model.TopicPatch{Tags: &tags})
}

func (m *appModel) removeLastTagFromSelected() {
	t := m.selectedTopic()
	if t == nil || len(t.Tags) == 0 {
		return
	}
	tags := append([]string{}, t.Tags[:len(t.Tags)-1]...)
	m.patchSelected(model.TopicPatch{Tags: &tags})
}

// commitField parses the raw input and issues the patch. Empty numeric
// inputs unset the field rather than storing zero.
func (m *appModel) commitField(raw string) {
	ed := m.editor
	switch ed.cursor {
	case fieldTitle:
		v := raw
		m.patchSelected(model.TopicPatch{Title: &v})
	case fieldConfidence:
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" {
			var unset *int
			m.patchSelected(model.TopicPatch{Confidence: &unset})
			return
		}
		n, err := strconv.Atoi(trimmed)
		if err != nil {
			m.status = "confidence must be a number"
			return
		}
		n = model.Clamp(n, 0, 100)
		p := &n
		m.patchSelected(model.TopicPatch{Confidence: &p})
	case fieldSummary:
		v := raw
		m.patchSelected(model.TopicPatch{Summary: &v})
	case fieldNotes:
		v := raw
		m.patchSelected(model.TopicPatch{Notes: &v})
	case fieldLinks:
		// Newline-separated, blank lines discarded.
		var links []string
		for _, line := range strings.Split(raw, "\n") {
			if line = strings.TrimSpace(line); line != "" {
				links = append(links, line)
			}
		}
		if links == nil {
			links = []string{}
		}
		m.patchSelected(model.TopicPatch{Links: &links})
	case fieldYear:
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" {
			var unset *int
			m.patchSelected(model.TopicPatch{Year: &unset})
			return
		}
		n, err := strconv.Atoi(trimmed)
		if err != nil {
			m.status = "year must be an integer (negative for BCE)"
			return
		}
		p := &n
		m.patchSelected(model.TopicPatch{Year: &p})
	case fieldLat, fieldLng:
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" {
			var unset *float64
			if ed.cursor == fieldLat {
				m.patchSelected(model.TopicPatch{Lat: &unset})
			} else {
				m.patchSelected(model.TopicPatch{Lng: &unset})
			}
			return
		}
		f, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			m.status = "coordinates must be decimal degrees"
			return
		}
		p := &f
		if ed.cursor == fieldLat {
			m.patchSelected(model.TopicPatch{Lat: &p})
		} else {
			m.patchSelected(model.TopicPatch{Lng: &p})
		}
	}
}

func optIntString(p *int) string {
	if p == nil {
		return ""
	}
	return strconv.Itoa(*p)
}

func optFloatString(p *float64) string {
	if p == nil {
		return ""
	}
	return strconv.FormatFloat(*p, 'f', -1, 64)
}

// renderEditor draws the edit-mode detail panel.
func (m *appModel) renderEditor(t model.Topic, width int) string {
	ed := m.editor
	label := styleMuted()
	cursorStyle := lipgloss.NewStyle().Foreground(colorAccent).Bold(true)

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render("Edit: "+t.Title) + "\n")
	b.WriteString(styleMuted().Render(m.sel.CatID+" / "+m.sel.TopicID) + "\n\n")

	for f := editorField(0); f < fieldCount; f++ {
		marker := "  "
		if f == ed.cursor {
			marker = cursorStyle.Render("> ")
		}
		b.WriteString(marker + label.Render(editorFieldLabels[f]) + "\n")

		if ed.editing && f == ed.cursor {
			if f.multiline() {
				ed.text.SetWidth(width - 4)
				ed.text.SetHeight(4)
				b.WriteString(ed.text.View() + "\n")
			} else {
				ed.input.Width = width - 6
				b.WriteString("  " + ed.input.View() + "\n")
				if f == fieldTags {
					b.WriteString(m.renderTagSuggestions(t, width) + "\n")
				}
			}
			continue
		}
		b.WriteString("  " + truncate(editorFieldValue(t, f), width-4) + "\n")
	}

	b.WriteString("\n" + styleMuted().Render("enter edit · h/l cycle role · ctrl+r drop tag · esc done"))
	return b.String()
}

func editorFieldValue(t model.Topic, f editorField) string {
	switch f {
	case fieldTitle:
		return t.Title
	case fieldRole:
		return t.RoleOrDefault()
	case fieldConfidence:
		return fmt.Sprintf("%d%%", t.ConfidenceOrDefault())
	case fieldTags:
		if len(t.Tags) == 0 {
			return "—"
		}
		return strings.Join(t.Tags, ", ")
	case fieldSummary:
		return firstLineOr(t.Summary, "—")
	case fieldNotes:
		return firstLineOr(t.Notes, "—")
	case fieldLinks:
		if len(t.Links) == 0 {
			return "—"
		}
		return fmt.Sprintf("%d link(s)", len(t.Links))
	case fieldYear:
		if t.Year == nil {
			return "—"
		}
		return strconv.Itoa(*t.Year)
	case fieldLat:
		if t.Lat == nil {
			return "—"
		}
		return strconv.FormatFloat(*t.Lat, 'f', 3, 64)
	case fieldLng:
		if t.Lng == nil {
			return "—"
		}
		return strconv.FormatFloat(*t.Lng, 'f', 3, 64)
	}
	return ""
}

func firstLineOr(s, fallback string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback
	}
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i] + " …"
	}
	return s
}

// renderTagSuggestions shows tag-universe completions for the current input,
// excluding tags already on the topic.
func (m *appModel) renderTagSuggestions(t model.Topic, width int) string {
	input := strings.ToLower(strings.TrimSpace(m.editor.input.Value()))
	on := map[string]bool{}
	for _, tag := range t.Tags {
		on[tag] = true
	}
	var opts []string
	for _, tag := range derive.TagUniverse(m.cats) {
		if on[tag] || !strings.Contains(strings.ToLower(tag), input) {
			continue
		}
		opts = append(opts, tag)
		if len(opts) == 8 {
			break
		}
	}
	if len(opts) == 0 {
		return ""
	}
	return "  " + styleMuted().Render(truncate(strings.Join(opts, " · "), width-4))
}
