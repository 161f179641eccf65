package model

// Category is a named, ordered grouping of topics. A topic belongs to exactly
// one category; deleting a category removes its topics with it.
type Category struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Topics []Topic `json:"topics"`
}

// Topic is a single note/claim/fact. Optional fields are pointers so that
// "unset" survives a JSON round-trip; consumers default them at read time via
// RoleOrDefault/ConfidenceOrDefault rather than at store time.
type Topic struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Tags    []string `json:"tags,omitempty"`
	Summary string   `json:"summary,omitempty"`
	Notes   string   `json:"notes,omitempty"`
	Links   []string `json:"links,omitempty"`

	Role       string `json:"role,omitempty"`       // one of Roles; "" reads as "Note"
	Confidence *int   `json:"confidence,omitempty"` // 0-100; nil reads as 50

	// Year is signed: negative for BCE-style years, positive for CE. No
	// calendar semantics beyond ordering.
	Year *int `json:"year,omitempty"`

	Lat *float64 `json:"lat,omitempty"`
	Lng *float64 `json:"lng,omitempty"`
}

const (
	RoleEvidence   = "Evidence"
	RoleHypothesis = "Hypothesis"
	RoleMethod     = "Method"
	RoleDebate     = "Debate"
	RoleSite       = "Site"
	RoleTheory     = "Theory"
	RoleSpec       = "Spec"
	RoleQuestion   = "Question"
	RoleNote       = "Note"

	DefaultConfidence = 50
)

// Roles is the fixed role enumeration, in display/column order.
var Roles = []string{
	RoleEvidence,
	RoleHypothesis,
	RoleMethod,
	RoleDebate,
	RoleSite,
	RoleTheory,
	RoleSpec,
	RoleQuestion,
	RoleNote,
}

// RoleIndex returns the position of role in Roles, or len(Roles) for unknown
// values so they sort after the known set.
func RoleIndex(role string) int {
	for i, r := range Roles {
		if r == role {
			return i
		}
	}
	return len(Roles)
}

// DefaultTags is the fixed base vocabulary; the tag universe is the union of
// this list and every tag in use.
var DefaultTags = []string{
	"site", "evidence", "debate", "method", "theory", "spec", "craft",
	"astro", "paleo", "ai", "diet", "texts", "history", "americas",
	"migration", "climate", "data", "space", "norms", "person", "quote",
	"mantra", "note", "coasts", "recovery", "timeline", "inference", "sea",
}

func (t Topic) RoleOrDefault() string {
	if t.Role == "" {
		return RoleNote
	}
	return t.Role
}

func (t Topic) ConfidenceOrDefault() int {
	if t.Confidence == nil {
		return DefaultConfidence
	}
	return Clamp(*t.Confidence, 0, 100)
}

// HasYear reports whether the topic qualifies for the timeline view.
func (t Topic) HasYear() bool { return t.Year != nil }

// HasCoords reports whether the topic qualifies for the map view. A topic
// with only one of lat/lng is simply excluded.
func (t Topic) HasCoords() bool { return t.Lat != nil && t.Lng != nil }

// FindCategory returns a pointer into cats, or nil.
func FindCategory(cats []Category, catID string) *Category {
	for i := range cats {
		if cats[i].ID == catID {
			return &cats[i]
		}
	}
	return nil
}

// FindTopic resolves a (category, topic) address, or nil if either is missing.
func FindTopic(cats []Category, catID, topicID string) *Topic {
	c := FindCategory(cats, catID)
	if c == nil {
		return nil
	}
	for i := range c.Topics {
		if c.Topics[i].ID == topicID {
			return &c.Topics[i]
		}
	}
	return nil
}

// NewTopic builds a topic with the creation defaults (role Note,
// confidence 50, all optionals unset).
func NewTopic(id, title string) Topic {
	conf := DefaultConfidence
	return Topic{
		ID:         id,
		Title:      title,
		Tags:       []string{},
		Links:      []string{},
		Role:       RoleNote,
		Confidence: &conf,
	}
}
