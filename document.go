package adgen

import (
	"encoding/json"
	"strings"
)

// EntryKind identifies which payload of an Entry is set.
type EntryKind string

// EntryKind constants.
const (
	EntryAdCopy   EntryKind = "ad_copy"
	EntrySnippets EntryKind = "snippets"
	EntryText     EntryKind = "text"
)

// Entry is one parsed section of a response. Exactly one payload is set,
// selected by Kind.
type Entry struct {
	Kind  EntryKind `json:"kind"`
	Title string    `json:"title"`

	AdCopy   *AdCopyVariation `json:"adCopy,omitempty"`
	Snippets []SnippetGroup   `json:"snippets,omitempty"`
	Text     string           `json:"text,omitempty"`

	// Empty is set when extraction produced nothing to show.
	Empty bool `json:"empty"`
}

// MarshalJSON encodes a snippets entry with its group list even when the
// list is empty. Other kinds omit it.
func (e Entry) MarshalJSON() ([]byte, error) {
	type entry Entry
	if e.Kind != EntrySnippets {
		return json.Marshal(entry(e))
	}
	groups := e.Snippets
	if groups == nil {
		groups = []SnippetGroup{}
	}
	return json.Marshal(struct {
		entry
		Snippets []SnippetGroup `json:"snippets"`
	}{entry(e), groups})
}

// Document is the structured form of a model response. Entries keep the
// order of the sections in the response.
type Document struct {
	Entries []Entry `json:"entries"`

	// Intro is any text before the first marker. It is not rendered.
	Intro string `json:"intro,omitempty"`
}

// Parse segments a raw model response and extracts each section by title.
// Parse never fails: unrecognized input yields a single Raw Output entry.
func Parse(raw string) *Document {
	doc := &Document{Entries: []Entry{}}

	for _, s := range Segment(raw) {
		if s.Title == TitleIntro {
			doc.Intro = s.Body
			continue
		}
		doc.Entries = append(doc.Entries, parseSection(s))
	}

	return doc
}

// parseSection dispatches a section to its extractor by title prefix.
func parseSection(s Section) Entry {
	switch {
	case hasTitlePrefix(s.Title, TitleAdCopyPrefix):
		v := ExtractAdCopy(s.Body)
		return Entry{Kind: EntryAdCopy, Title: s.Title, AdCopy: &v, Empty: v.IsEmpty()}
	case hasTitlePrefix(s.Title, TitleStructuredSnippets):
		groups := ExtractSnippets(s.Body)
		return Entry{Kind: EntrySnippets, Title: s.Title, Snippets: groups, Empty: len(groups) == 0}
	default:
		return Entry{Kind: EntryText, Title: s.Title, Text: s.Body, Empty: strings.TrimSpace(s.Body) == ""}
	}
}

// Unstructured reports whether no section marker was found, in which case
// the document holds the whole response as a single Raw Output entry.
func (d *Document) Unstructured() bool {
	return len(d.Entries) == 1 && d.Entries[0].Title == TitleRawOutput
}

// Find returns the entries of the given kind, in document order.
func (d *Document) Find(kind EntryKind) []Entry {
	var entries []Entry
	for _, e := range d.Entries {
		if e.Kind == kind {
			entries = append(entries, e)
		}
	}
	return entries
}

// Variations returns the ad copy variations in document order.
func (d *Document) Variations() []AdCopyVariation {
	var variations []AdCopyVariation
	for _, e := range d.Find(EntryAdCopy) {
		variations = append(variations, *e.AdCopy)
	}
	return variations
}
