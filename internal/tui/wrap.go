package tui

import (
	"strings"

	xansi "github.com/charmbracelet/x/ansi"
)

// wrapPlainText word-wraps s to maxW columns (ANSI-aware widths), breaking
// overlong words hard. Always returns at least one line.
func wrapPlainText(s string, maxW int) []string {
	if maxW <= 0 {
		return []string{""}
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return []string{""}
	}

	words := strings.Fields(s)
	lines := make([]string, 0, 4)
	cur := ""
	curW := 0

	flush := func() {
		lines = append(lines, cur)
		cur = ""
		curW = 0
	}

	for _, w := range words {
		wordW := xansi.StringWidth(w)
		if cur != "" && curW+1+wordW <= maxW {
			cur += " " + w
			curW += 1 + wordW
			continue
		}
		if cur != "" {
			flush()
		}
		for wordW > maxW {
			lines = append(lines, xansi.Cut(w, 0, maxW))
			w = xansi.Cut(w, maxW, wordW)
			wordW = xansi.StringWidth(w)
		}
		cur = w
		curW = wordW
	}
	if cur != "" || len(lines) == 0 {
		flush()
	}
	return lines
}

// truncate cuts s to maxW columns, appending an ellipsis when it was longer.
func truncate(s string, maxW int) string {
	if maxW <= 0 {
		return ""
	}
	if xansi.StringWidth(s) <= maxW {
		return s
	}
	if maxW == 1 {
		return "…"
	}
	return xansi.Cut(s, 0, maxW-1) + "…"
}
