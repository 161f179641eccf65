package model

import (
	"strings"
	"testing"
)

func TestSlug(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Hello World", "hello-world"},
		{"Göbekli Tepe!!", "g-bekli-tepe"},
		{"  spaced   out  ", "spaced-out"},
		{"ALLCAPS", "allcaps"},
		{"---", ""},
		{"", ""},
		{"a--b__c", "a-b-c"},
		{"2k-year-old computer", "2k-year-old-computer"},
	}
	for _, tc := range cases {
		if got := Slug(tc.in); got != tc.want {
			t.Errorf("Slug(%q)=%q want %q", tc.in, got, tc.want)
		}
	}
}

func TestTopicIDFallback(t *testing.T) {
	id := TopicID("!!!")
	if !strings.HasPrefix(id, "t-") || len(id) <= len("t-") {
		t.Fatalf("expected timestamp fallback id, got %q", id)
	}
	if got := TopicID("Hello World"); got != "hello-world" {
		t.Fatalf("TopicID=%q want hello-world", got)
	}
}

func TestClamp(t *testing.T) {
	for _, tc := range []struct{ n, want int }{
		{-5, 0}, {0, 0}, {50, 50}, {100, 100}, {101, 100}, {100000, 100},
	} {
		if got := Clamp(tc.n, 0, 100); got != tc.want {
			t.Errorf("Clamp(%d)=%d want %d", tc.n, got, tc.want)
		}
	}
}

func TestUniqPreservesOrder(t *testing.T) {
	got := Uniq([]string{"b", "a", "b", "c", "a"})
	want := []string{"b", "a", "c"}
	if len(got) != len(want) {
		t.Fatalf("Uniq=%v want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Uniq=%v want %v", got, want)
		}
	}
}

func TestReadTimeDefaults(t *testing.T) {
	var tp Topic
	if got := tp.RoleOrDefault(); got != RoleNote {
		t.Errorf("RoleOrDefault=%q want %q", got, RoleNote)
	}
	if got := tp.ConfidenceOrDefault(); got != DefaultConfidence {
		t.Errorf("ConfidenceOrDefault=%d want %d", got, DefaultConfidence)
	}
	// Stored out-of-range values clamp on read too (old stored data is
	// tolerated, not migrated).
	over := 250
	tp.Confidence = &over
	if got := tp.ConfidenceOrDefault(); got != 100 {
		t.Errorf("ConfidenceOrDefault=%d want 100", got)
	}
}

func TestFindTopicMissing(t *testing.T) {
	cats := Seed()
	if FindTopic(cats, "nope", "jebel-irhoud") != nil {
		t.Fatal("expected nil for missing category")
	}
	if FindTopic(cats, "h-sapiens-deeptime", "nope") != nil {
		t.Fatal("expected nil for missing topic")
	}
	if FindTopic(cats, "h-sapiens-deeptime", "jebel-irhoud") == nil {
		t.Fatal("expected to resolve a seed topic")
	}
}

func TestHasCoordsRequiresBoth(t *testing.T) {
	lat := 29.97
	tp := Topic{Lat: &lat}
	if tp.HasCoords() {
		t.Fatal("lat without lng must not qualify for the map")
	}
	lng := 31.13
	tp.Lng = &lng
	if !tp.HasCoords() {
		t.Fatal("lat+lng should qualify")
	}
}
