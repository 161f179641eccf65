package format

import (
	"bytes"
	"strings"
	"testing"
)

type row struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Tags       []string `json:"tags,omitempty"`
	Confidence *int     `json:"confidence,omitempty"`
}

func TestWriteJSONCompactAndPretty(t *testing.T) {
	conf := 80
	v := []row{{ID: "antikythera", Title: "Antikythera mechanism", Tags: []string{"astro"}, Confidence: &conf}}

	var buf bytes.Buffer
	if err := Write(&buf, v, "json", false); err != nil {
		t.Fatal(err)
	}
	got := buf.String()
	if !strings.HasSuffix(got, "\n") || strings.Count(got, "\n") != 1 {
		t.Fatalf("compact JSON should be a single line, got %q", got)
	}

	buf.Reset()
	if err := Write(&buf, v, "", true); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "  \"id\": \"antikythera\"") {
		t.Fatalf("pretty JSON should indent, got %q", buf.String())
	}
}

func TestWriteEDNKeywordsAndNumbers(t *testing.T) {
	conf := 80
	v := row{ID: "gobekli", Title: "Göbekli Tepe", Confidence: &conf}

	var buf bytes.Buffer
	if err := Write(&buf, v, "edn", false); err != nil {
		t.Fatal(err)
	}
	got := buf.String()
	if !strings.Contains(got, ":id") || !strings.Contains(got, ":confidence 80") {
		t.Fatalf("edn = %q", got)
	}
	if strings.Contains(got, "80.0") {
		t.Fatalf("integral numbers must print as ints, got %q", got)
	}
}

func TestWriteEDNPrettyNestsVectors(t *testing.T) {
	v := map[string]any{"tags": []string{"site", "craft"}}
	var buf bytes.Buffer
	if err := WriteEDN(&buf, v, true); err != nil {
		t.Fatal(err)
	}
	got := buf.String()
	if !strings.Contains(got, ":tags [") || !strings.Contains(got, "\"site\"") {
		t.Fatalf("edn = %q", got)
	}
}

func TestWriteUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, 1, "yaml", false); err == nil {
		t.Fatal("unknown format must error")
	}
}
