package testutil

import "strings"

// Dedent removes any common leading whitespace from every line in text. An
// initial newline is removed. Lines consisting only of whitespace are
// emptied and do not count towards the common prefix.
//
// This is used to line up multiline raw strings with the left edge while
// keeping them indented in the source code.
func Dedent(text string) string {
	text = strings.TrimPrefix(text, "\n")
	lines := strings.Split(text, "\n")
	margin, haveMargin := "", false
	for i, line := range lines {
		if strings.TrimLeft(line, " \t") == "" {
			lines[i] = ""
			continue
		}
		indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
		if !haveMargin {
			margin, haveMargin = indent, true
		} else {
			margin = commonPrefix(margin, indent)
		}
	}
	for i, line := range lines {
		lines[i] = strings.TrimPrefix(line, margin)
	}
	return strings.Join(lines, "\n")
}

func commonPrefix(a, b string) string {
	i := 0
	for i < len(a) && i < len(b) && a[i] == b[i] {
		i++
	}
	return a[:i]
}
