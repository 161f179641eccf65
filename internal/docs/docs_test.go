package docs

import (
	"strings"
	"testing"
)

func TestTopicsListsEmbeddedContent(t *testing.T) {
	topics := Topics()
	for _, want := range []string{"data", "keybindings", "views"} {
		found := false
		for _, got := range topics {
			if got == want {
				found = true
			}
		}
		if !found {
			t.Fatalf("missing topic %q in %v", want, topics)
		}
	}
}

func TestGetIsCaseInsensitive(t *testing.T) {
	body, ok := Get("VIEWS")
	if !ok || !strings.Contains(body, "# Views") {
		t.Fatalf("Get(VIEWS) = %v, %q", ok, body)
	}
	if _, ok := Get("no-such-topic"); ok {
		t.Fatal("unknown topic must report !ok")
	}
	if _, ok := Get("  "); ok {
		t.Fatal("blank topic must report !ok")
	}
}
