package derive

import (
	"sort"

	"atlas/internal/model"
)

type KanbanGroup string

const (
	GroupByRole KanbanGroup = "role"
	GroupByTag  KanbanGroup = "tag"
)

// KanbanColumn is one column of the board. Columns with zero topics are kept
// so the renderer can show an explicit empty state instead of omitting them.
type KanbanColumn struct {
	Key    string
	Topics []FlatTopic
}

// KanbanBoard groups the FULL topic corpus (the board deliberately ignores
// the active category and any search query).
//
// Grouping by role produces one column per role in the fixed enumeration,
// in enumeration order; every topic lands in exactly one column (its role,
// defaulting to Note). Grouping by tag produces one column per distinct tag
// in use; a topic with several tags appears in several columns.
func KanbanBoard(cats []model.Category, groupBy KanbanGroup) []KanbanColumn {
	items := Flatten(cats)

	if groupBy == GroupByTag {
		var tags []string
		for _, t := range items {
			tags = append(tags, t.Tags...)
		}
		tags = model.Uniq(tags)
		cols := make([]KanbanColumn, 0, len(tags))
		for _, tag := range tags {
			col := KanbanColumn{Key: tag}
			for _, t := range items {
				for _, tt := range t.Tags {
					if tt == tag {
						col.Topics = append(col.Topics, t)
						break
					}
				}
			}
			cols = append(cols, col)
		}
		return cols
	}

	// Every role gets a column, in use or not, plus any unknown roles found
	// in the data (sorted after the known set).
	keys := append([]string{}, model.Roles...)
	var extra []string
	for _, t := range items {
		if model.RoleIndex(t.RoleOrDefault()) == len(model.Roles) {
			extra = append(extra, t.RoleOrDefault())
		}
	}
	keys = append(keys, model.Uniq(extra)...)
	sort.SliceStable(keys, func(i, j int) bool {
		return model.RoleIndex(keys[i]) < model.RoleIndex(keys[j])
	})
	cols := make([]KanbanColumn, 0, len(keys))
	for _, key := range keys {
		col := KanbanColumn{Key: key}
		for _, t := range items {
			if t.RoleOrDefault() == key {
				col.Topics = append(col.Topics, t)
			}
		}
		cols = append(cols, col)
	}
	return cols
}
