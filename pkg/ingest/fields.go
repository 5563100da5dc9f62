package ingest

import "strings"

// stripComment removes a trailing "# ..." comment from line. Comment
// syntax is not escapable: the first '#' always starts one.
func stripComment(line string) string {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		return line[:i]
	}
	return line
}

// splitFields splits line on runs of spaces/tabs, except within a
// parenthesized span (an action-combination's component list may itself
// contain spaces, e.g. "c(a & b)"), which is kept as a single field.
func splitFields(line string) []string {
	var fields []string
	depth := 0
	start := -1

	flush := func(end int) {
		if start >= 0 {
			fields = append(fields, line[start:end])
			start = -1
		}
	}

	for i := 0; i < len(line); i++ {
		c := line[i]
		switch c {
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		}
		isSpace := (c == ' ' || c == '\t') && depth == 0
		if isSpace {
			flush(i)
		} else if start < 0 {
			start = i
		}
	}
	flush(len(line))
	return fields
}
