package model

import (
	"encoding/json"
	"testing"
)

func intPtr(n int) *int { return &n }

func TestEmptyPatchIsIdempotent(t *testing.T) {
	cats := Seed()
	before, _ := json.Marshal(FindTopic(cats, "cataclysms", "lbac"))

	if !PatchTopic(cats, "cataclysms", "lbac", TopicPatch{}) {
		t.Fatal("patch should resolve the topic")
	}

	after, _ := json.Marshal(FindTopic(cats, "cataclysms", "lbac"))
	if string(before) != string(after) {
		t.Fatalf("empty patch changed topic:\nbefore=%s\nafter=%s", before, after)
	}
}

func TestPatchClampsConfidence(t *testing.T) {
	for _, tc := range []struct{ set, want int }{
		{-20, 0}, {0, 0}, {73, 73}, {100, 100}, {350, 100},
	} {
		cats := Seed()
		c := intPtr(tc.set)
		PatchTopic(cats, "cataclysms", "lbac", TopicPatch{Confidence: &c})
		got := FindTopic(cats, "cataclysms", "lbac").ConfidenceOrDefault()
		if got != tc.want {
			t.Errorf("confidence %d stored as %d, want %d", tc.set, got, tc.want)
		}
	}
}

func TestPatchUnsetsNumericFields(t *testing.T) {
	cats := Seed()
	// lbac has a year in the seed; an empty input clears it rather than
	// storing zero.
	var nilYear *int
	PatchTopic(cats, "cataclysms", "lbac", TopicPatch{Year: &nilYear})
	if tp := FindTopic(cats, "cataclysms", "lbac"); tp.Year != nil {
		t.Fatalf("year should be unset, got %d", *tp.Year)
	}
}

func TestPatchDeduplicatesTags(t *testing.T) {
	cats := Seed()
	tags := []string{"astro", "astro", "texts"}
	PatchTopic(cats, "cataclysms", "lbac", TopicPatch{Tags: &tags})
	got := FindTopic(cats, "cataclysms", "lbac").Tags
	if len(got) != 2 || got[0] != "astro" || got[1] != "texts" {
		t.Fatalf("tags=%v want [astro texts]", got)
	}
}

func TestPatchMissingAddressIsNoOp(t *testing.T) {
	cats := Seed()
	title := "changed"
	if PatchTopic(cats, "cataclysms", "no-such-topic", TopicPatch{Title: &title}) {
		t.Fatal("patch to a nonexistent topic must report no change")
	}
	if PatchTopic(cats, "no-such-cat", "lbac", TopicPatch{Title: &title}) {
		t.Fatal("patch to a nonexistent category must report no change")
	}
}

func TestPatchReplacesOnlyProvidedFields(t *testing.T) {
	cats := Seed()
	title := "Renamed"
	PatchTopic(cats, "cataclysms", "lbac", TopicPatch{Title: &title})
	tp := FindTopic(cats, "cataclysms", "lbac")
	if tp.Title != "Renamed" {
		t.Fatalf("title=%q", tp.Title)
	}
	if tp.Role != RoleEvidence || tp.Year == nil || *tp.Year != -1200 {
		t.Fatal("untouched fields must survive a partial patch")
	}
}
