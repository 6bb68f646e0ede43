package adgen

import (
	"regexp"
	"strings"
)

var snippetHeaderRe = regexp.MustCompile(`(?i)\bHeader:`)

// SnippetGroup is one structured snippet header with its values.
type SnippetGroup struct {
	Header string   `json:"header"`
	Values []string `json:"values"`

	// Raw is the block text when no bulleted values were found. Such a group
	// is auxiliary content to be shown as-is, not a snippet.
	Raw string `json:"raw,omitempty"`
}

// Parsed reports whether the group yielded bulleted values.
func (g SnippetGroup) Parsed() bool {
	return len(g.Values) > 0
}

// ExtractSnippets splits the body of a STRUCTURED SNIPPETS section on
// "Header:" labels. Text before the first label is discarded. Blocks without
// bulleted values are returned with Raw set so callers can surface them.
func ExtractSnippets(body string) []SnippetGroup {
	groups := []SnippetGroup{}

	blocks := snippetHeaderRe.Split(body, -1)
	for _, block := range blocks[1:] {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}

		lines := strings.Split(block, "\n")
		g := SnippetGroup{
			Header: strings.TrimSpace(strings.Trim(strings.TrimSpace(lines[0]), ":")),
			Values: []string{},
		}
		for _, line := range lines[1:] {
			if item, ok := bulletItem(line); ok {
				g.Values = append(g.Values, item)
			}
		}
		if !g.Parsed() {
			g.Raw = block
		}
		groups = append(groups, g)
	}

	return groups
}
