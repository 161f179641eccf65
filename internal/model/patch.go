package model

// TopicPatch is a partial update: nil fields are left untouched, non-nil
// fields fully replace the prior value. Optional topic fields use a double
// pointer so a patch can distinguish "leave alone" (nil) from "unset"
// (pointer to nil).
type TopicPatch struct {
	Title   *string
	Tags    *[]string
	Summary *string
	Notes   *string
	Links   *[]string
	Role    *string

	Confidence **int
	Year       **int
	Lat        **float64
	Lng        **float64
}

// Apply merges the patch into t in place. Confidence is clamped to [0,100]
// on every edit; tags are deduplicated. An empty patch is a no-op.
func (p TopicPatch) Apply(t *Topic) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Tags != nil {
		t.Tags = Uniq(*p.Tags)
	}
	if p.Summary != nil {
		t.Summary = *p.Summary
	}
	if p.Notes != nil {
		t.Notes = *p.Notes
	}
	if p.Links != nil {
		t.Links = *p.Links
	}
	if p.Role != nil {
		t.Role = *p.Role
	}
	if p.Confidence != nil {
		if c := *p.Confidence; c != nil {
			v := Clamp(*c, 0, 100)
			t.Confidence = &v
		} else {
			t.Confidence = nil
		}
	}
	if p.Year != nil {
		t.Year = *p.Year
	}
	if p.Lat != nil {
		t.Lat = *p.Lat
	}
	if p.Lng != nil {
		t.Lng = *p.Lng
	}
}

// PatchTopic applies patch to the addressed topic. An address that does not
// resolve is a silent no-op. Reports whether a topic was modified so callers
// know to persist.
func PatchTopic(cats []Category, catID, topicID string, patch TopicPatch) bool {
	t := FindTopic(cats, catID, topicID)
	if t == nil {
		return false
	}
	patch.Apply(t)
	return true
}
