// Package search filters the lines of a document by substring.
package search

import "strings"

// Request is one search: the query and the case policy to apply.
type Request struct {
	Query         string
	CaseSensitive bool
}

// Run applies the request's case policy to contents.
func (r Request) Run(contents string) []string {
	if r.CaseSensitive {
		return Search(r.Query, contents)
	}
	return SearchCaseInsensitive(r.Query, contents)
}

// Search returns the lines of contents that contain query exactly, in order.
// Returned lines share storage with contents.
func Search(query, contents string) []string {
	out := make([]string, 0)
	for _, line := range Lines(contents) {
		if strings.Contains(line, query) {
			out = append(out, line)
		}
	}
	return out
}

// SearchCaseInsensitive is Search with both sides lowercased before
// comparing. The original line text is returned.
func SearchCaseInsensitive(query, contents string) []string {
	q := strings.ToLower(query)
	out := make([]string, 0)
	for _, line := range Lines(contents) {
		if strings.Contains(strings.ToLower(line), q) {
			out = append(out, line)
		}
	}
	return out
}

// Lines splits contents on "\n". A "\r" before the terminator is dropped and
// a final terminator does not yield an empty trailing line.
func Lines(contents string) []string {
	lines := make([]string, 0)
	for len(contents) > 0 {
		i := strings.IndexByte(contents, '\n')
		var line string
		if i < 0 {
			line, contents = contents, ""
		} else {
			line, contents = contents[:i], contents[i+1:]
			line = strings.TrimSuffix(line, "\r")
		}
		lines = append(lines, line)
	}
	return lines
}
