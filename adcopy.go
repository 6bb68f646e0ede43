package adgen

import (
	"regexp"
	"strings"
)

// Placeholder fills the shorter column when headlines and descriptions are
// paired row by row.
const Placeholder = "–"

// bulletPrefix is the only list-item convention recognized in model output.
const bulletPrefix = "- "

var (
	headlinesRe    = regexp.MustCompile(`(?is)Headlines:\s*(.*?)(?:Descriptions:|$)`)
	descriptionsRe = regexp.MustCompile(`(?is)Descriptions:\s*(.*)`)
)

// AdCopyVariation holds the headlines and descriptions of one ad copy block.
// Neither list is validated for length or count.
type AdCopyVariation struct {
	Headlines    []string `json:"headlines"`
	Descriptions []string `json:"descriptions"`
}

// AdCopyRow pairs a headline with a description for tabular display.
type AdCopyRow struct {
	Headline    string `json:"headline"`
	Description string `json:"description"`
}

// ExtractAdCopy extracts the bulleted headlines and descriptions from the
// body of an AD COPY VARIATION section. A missing label yields an empty list.
func ExtractAdCopy(body string) AdCopyVariation {
	v := AdCopyVariation{
		Headlines:    []string{},
		Descriptions: []string{},
	}
	if m := headlinesRe.FindStringSubmatch(body); m != nil {
		v.Headlines = bulletItems(m[1])
	}
	if m := descriptionsRe.FindStringSubmatch(body); m != nil {
		v.Descriptions = bulletItems(m[1])
	}
	return v
}

// IsEmpty reports whether the variation has neither headlines nor descriptions.
func (v AdCopyVariation) IsEmpty() bool {
	return len(v.Headlines) == 0 && len(v.Descriptions) == 0
}

// Rows pairs headlines with descriptions by position. The shorter list is
// padded with Placeholder.
func (v AdCopyVariation) Rows() []AdCopyRow {
	n := max(len(v.Headlines), len(v.Descriptions))
	rows := make([]AdCopyRow, n)
	for i := range rows {
		rows[i] = AdCopyRow{Headline: Placeholder, Description: Placeholder}
		if i < len(v.Headlines) {
			rows[i].Headline = v.Headlines[i]
		}
		if i < len(v.Descriptions) {
			rows[i].Description = v.Descriptions[i]
		}
	}
	return rows
}

// bulletItems returns the items of all "- " bullet lines in s, in order.
// Lines using any other bullet style are ignored.
func bulletItems(s string) []string {
	items := []string{}
	for _, line := range strings.Split(s, "\n") {
		if item, ok := bulletItem(line); ok {
			items = append(items, item)
		}
	}
	return items
}

// bulletItem strips the bullet marker from a "- " line.
func bulletItem(line string) (string, bool) {
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, bulletPrefix) {
		return "", false
	}
	return strings.TrimSpace(strings.TrimPrefix(line, bulletPrefix)), true
}
