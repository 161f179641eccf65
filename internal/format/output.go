// Package format renders CLI command output. JSON is the default; EDN is
// offered for Clojure-side tooling that consumes exports.
package format

import (
	"encoding/json"
	"fmt"
	"io"
)

// Write writes v in the requested format ("json" or "edn"; empty means json).
func Write(w io.Writer, v any, format string, pretty bool) error {
	switch format {
	case "", "json":
		return WriteJSON(w, v, pretty)
	case "edn":
		return WriteEDN(w, v, pretty)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// WriteJSON writes strict JSON with a trailing newline. Output stays plain
// machine-readable JSON; human hints belong on stderr.
func WriteJSON(w io.Writer, v any, pretty bool) error {
	var b []byte
	var err error
	if pretty {
		b, err = json.MarshalIndent(v, "", "  ")
	} else {
		b, err = json.Marshal(v)
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}
