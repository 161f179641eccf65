package model

import (
	"fmt"
	"strings"
	"time"
)

// Slug derives a stable id from a human title: lowercase, runs of
// non-alphanumerics collapsed to a single hyphen, leading/trailing hyphens
// stripped. May return "" (e.g. all-punctuation titles); callers fall back to
// a timestamp id.
func Slug(s string) string {
	var b strings.Builder
	pendingHyphen := false
	for _, r := range strings.ToLower(s) {
		isAlnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if !isAlnum {
			pendingHyphen = b.Len() > 0
			continue
		}
		if pendingHyphen {
			b.WriteByte('-')
			pendingHyphen = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// CategoryID slugs name, falling back to a timestamp-based id.
func CategoryID(name string) string {
	if id := Slug(name); id != "" {
		return id
	}
	return fmt.Sprintf("cat-%d", time.Now().UnixMilli())
}

// TopicID slugs title, falling back to a timestamp-based id.
func TopicID(title string) string {
	if id := Slug(title); id != "" {
		return id
	}
	return fmt.Sprintf("t-%d", time.Now().UnixMilli())
}

func Clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

// Uniq keeps the first occurrence of each string, preserving order.
func Uniq(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}
