package console

import "strings"

const separator = "---"

// RenderHeader announces the query and file, ending with the separator and
// an empty line.
func RenderHeader(query, filename string) string {
	var b strings.Builder
	b.WriteString("Searching for '" + query + "'\n")
	b.WriteString("In file " + filename + "\n")
	b.WriteString(separator + "\n\n")
	return b.String()
}

// RenderMatches writes one line per match in the given order.
func RenderMatches(lines []string) string {
	var b strings.Builder
	for _, l := range lines {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	return b.String()
}

func RenderFooter() string { return separator + "\n" }
