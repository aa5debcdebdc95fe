package tabular

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

const ellipsis = "..."

// WrapText splits s into lines no wider than width display columns.
//
// Words are packed greedily and joined by single spaces. A word wider than
// width is split at the width boundary. Line breaks in s are kept and each
// segment is wrapped on its own; a blank segment yields an empty line.
// An empty s, or a width below one, yields a single empty line.
func WrapText(s string, width int) []string {
	if s == "" || width < 1 {
		return []string{""}
	}
	var lines []string
	for _, seg := range splitLines(s) {
		lines = wrapSegment(lines, seg, width)
	}
	return lines
}

func wrapSegment(lines []string, seg string, width int) []string {
	words := strings.Fields(seg)
	if len(words) == 0 {
		return append(lines, "")
	}
	var cur strings.Builder
	curWidth := 0
	for _, w := range words {
		ww := runewidth.StringWidth(w)
		if curWidth > 0 && curWidth+1+ww <= width {
			cur.WriteByte(' ')
			cur.WriteString(w)
			curWidth += 1 + ww
			continue
		}
		if curWidth > 0 {
			lines = append(lines, cur.String())
			cur.Reset()
			curWidth = 0
		}
		if ww <= width {
			cur.WriteString(w)
			curWidth = ww
			continue
		}
		chunks := breakWord(w, width)
		lines = append(lines, chunks[:len(chunks)-1]...)
		tail := chunks[len(chunks)-1]
		cur.WriteString(tail)
		curWidth = runewidth.StringWidth(tail)
	}
	if curWidth > 0 {
		lines = append(lines, cur.String())
	}
	return lines
}

// breakWord hard-splits w into chunks of at most width display columns.
func breakWord(w string, width int) []string {
	var chunks []string
	for len(w) > 0 {
		chunk := runewidth.Truncate(w, width, "")
		if chunk == "" {
			// A single rune wider than width; emit it alone to make progress.
			_, size := utf8.DecodeRuneInString(w)
			chunk = w[:size]
		}
		chunks = append(chunks, chunk)
		w = w[len(chunk):]
	}
	return chunks
}

// TruncateText keeps the first line of s up to limit display columns and
// appends "..." when anything was cut. A limit below one disables
// truncation.
func TruncateText(s string, limit int) string {
	if limit < 1 {
		return s
	}
	first, rest, multi := strings.Cut(s, "\n")
	first = strings.TrimSuffix(first, "\r")
	cut := multi && strings.TrimSpace(rest) != ""
	if runewidth.StringWidth(first) > limit {
		first = runewidth.Truncate(first, limit, "")
		cut = true
	}
	if cut {
		return first + ellipsis
	}
	return first
}

// fitLine shortens a single line to width display columns, ending it with
// "..." when there is room for one.
func fitLine(s string, width int) string {
	if width < 1 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	if width <= len(ellipsis) {
		return runewidth.Truncate(s, width, "")
	}
	return runewidth.Truncate(s, width, ellipsis)
}

// splitLines splits s on "\n", dropping a "\r" before each break.
func splitLines(s string) []string {
	segs := strings.Split(s, "\n")
	for i, seg := range segs {
		segs[i] = strings.TrimSuffix(seg, "\r")
	}
	return segs
}

// textWidth returns the widest line of s in display columns.
func textWidth(s string) int {
	w := 0
	for _, line := range splitLines(s) {
		w = max(w, runewidth.StringWidth(line))
	}
	return w
}
