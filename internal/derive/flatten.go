// Package derive holds the pure derivation pipeline: every function here is
// a deterministic projection of the category tree, recomputed on demand and
// never stored.
package derive

import (
	"sort"
	"strings"

	"atlas/internal/model"
)

// FlatTopic is a topic denormalized with its owning category's id and name.
type FlatTopic struct {
	model.Topic
	CatID   string
	CatName string
}

// Flatten concatenates every category's topics in category order, then topic
// order. Source order is preserved.
func Flatten(cats []model.Category) []FlatTopic {
	out := make([]FlatTopic, 0, 64)
	for _, c := range cats {
		for _, t := range c.Topics {
			out = append(out, FlatTopic{Topic: t, CatID: c.ID, CatName: c.Name})
		}
	}
	return out
}

// TagUniverse is the union of the fixed default vocabulary and every tag in
// use, deduplicated and sorted ascending.
func TagUniverse(cats []model.Category) []string {
	all := append([]string{}, model.DefaultTags...)
	for _, c := range cats {
		for _, t := range c.Topics {
			all = append(all, t.Tags...)
		}
	}
	all = model.Uniq(all)
	sort.Strings(all)
	return all
}

// VisibleTopics computes the current view's topic subset.
//
// A non-empty (trimmed) query searches ALL topics, bypassing the active
// category: case-insensitive substring match over title, summary, notes, or
// any tag. An empty query restricts to the active category. In either mode a
// non-empty tagFilter keeps only topics carrying at least one filtered tag
// (OR semantics). Filtering never reorders.
func VisibleTopics(cats []model.Category, query, activeCatID string, tagFilter []string) []FlatTopic {
	var topics []FlatTopic
	if q := strings.TrimSpace(query); q != "" {
		q = strings.ToLower(q)
		for _, t := range Flatten(cats) {
			if topicMatches(t.Topic, q) {
				topics = append(topics, t)
			}
		}
	} else {
		if c := model.FindCategory(cats, activeCatID); c != nil {
			for _, t := range c.Topics {
				topics = append(topics, FlatTopic{Topic: t, CatID: c.ID, CatName: c.Name})
			}
		}
	}

	if len(tagFilter) == 0 {
		return topics
	}
	keep := topics[:0:0]
	for _, t := range topics {
		if hasAnyTag(t.Tags, tagFilter) {
			keep = append(keep, t)
		}
	}
	return keep
}

func topicMatches(t model.Topic, lowerQuery string) bool {
	if strings.Contains(strings.ToLower(t.Title), lowerQuery) ||
		strings.Contains(strings.ToLower(t.Summary), lowerQuery) ||
		strings.Contains(strings.ToLower(t.Notes), lowerQuery) {
		return true
	}
	for _, tag := range t.Tags {
		if strings.Contains(strings.ToLower(tag), lowerQuery) {
			return true
		}
	}
	return false
}

func hasAnyTag(tags, filter []string) bool {
	for _, tag := range tags {
		for _, f := range filter {
			if tag == f {
				return true
			}
		}
	}
	return false
}
