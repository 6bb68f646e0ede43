package adgen

import (
	"fmt"
	"strings"
)

// Messages shown in place of content the parser could not structure.
const (
	MsgUnparsed     = "Could not parse ad copy content correctly, displaying raw output:"
	MsgNoAdCopyRows = "No headlines or descriptions found for this variation."
)

// FormatDocument renders a parsed document as Markdown.
// Ad copy becomes a Headlines/Descriptions table, snippet groups become
// bulleted lists, and pass-through sections are shown in fenced blocks.
// Empty entries are skipped.
func FormatDocument(doc *Document) string {
	if doc.Unstructured() {
		return MsgUnparsed + "\n\n" + fence(doc.Entries[0].Text)
	}

	parts := make([]string, 0, len(doc.Entries))
	for _, e := range doc.Entries {
		if e.Empty && e.Kind != EntryAdCopy {
			continue
		}

		var b strings.Builder
		b.WriteString("## " + e.Title + "\n\n")
		switch e.Kind {
		case EntryAdCopy:
			writeAdCopy(&b, e.AdCopy)
		case EntrySnippets:
			writeSnippets(&b, e.Snippets)
		default:
			b.WriteString(fence(e.Text))
		}
		parts = append(parts, strings.TrimRight(b.String(), "\n"))
	}

	return strings.Join(parts, "\n\n")
}

// FormatBrief renders the marketing brief as a fenced block under a heading.
func FormatBrief(brief string) string {
	return "## Marketing Brief\n\n" + fence(brief)
}

func writeAdCopy(b *strings.Builder, v *AdCopyVariation) {
	if v == nil || v.IsEmpty() {
		b.WriteString(MsgNoAdCopyRows)
		return
	}
	b.WriteString("| Headlines | Descriptions |\n")
	b.WriteString("| --- | --- |\n")
	for _, row := range v.Rows() {
		fmt.Fprintf(b, "| %s | %s |\n", escapeCell(row.Headline), escapeCell(row.Description))
	}
}

func writeSnippets(b *strings.Builder, groups []SnippetGroup) {
	for i, g := range groups {
		if i > 0 {
			b.WriteString("\n")
		}
		if g.Header == "" || !g.Parsed() {
			b.WriteString(fence(g.Raw) + "\n")
			continue
		}
		b.WriteString("### " + g.Header + "\n\n")
		for _, v := range g.Values {
			b.WriteString("* " + v + "\n")
		}
	}
}

// fence wraps text in a Markdown code block.
func fence(text string) string {
	return "```text\n" + text + "\n```"
}

// escapeCell keeps pipes in model output from breaking the table.
func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
