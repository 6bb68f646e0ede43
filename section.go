package adgen

import (
	"regexp"
	"strings"
)

// Titles of sections that do not come from a marker in the response.
const (
	// TitleIntro holds any text the model wrote before the first marker.
	TitleIntro = "Intro"

	// TitleRawOutput holds the whole response when no marker was found.
	TitleRawOutput = "Raw Output"
)

// Canonical marker titles.
const (
	TitleAdCopyPrefix       = "AD COPY VARIATION"
	TitleSitelinks          = "SITELINKS"
	TitleStructuredSnippets = "STRUCTURED SNIPPETS"
	TitleCallouts           = "CALLOUTS"
)

// Section is one titled span of a model response.
type Section struct {
	// Title is the normalized marker text, e.g.
	// "AD COPY VARIATION 1 (Service Focus: Widgets)" or "SITELINKS".
	Title string `json:"title"`

	// Body is the text between this marker and the next one, trimmed.
	Body string `json:"body"`

	// Marker is the marker exactly as it appeared in the response.
	// Empty for Intro and Raw Output sections.
	Marker string `json:"marker,omitempty"`
}

// markerRe matches section markers. Markdown headings and bold/underline
// emphasis wrapped around a marker are consumed as part of it.
//
// Submatches: 1 ad copy prefix with its number, 2 free text up to a colon
// ending the line, 3 free text up to the first colon outside parentheses,
// 4 free text up to the first colon (used when parentheses are unbalanced),
// 5 literal marker.
var markerRe = regexp.MustCompile(`(?im)` +
	`(?:#+[ \t]*)?(?:\*\*|__)?` +
	`(?:` +
	`\b(AD[ \t]+COPY[ \t]+VARIATION[ \t]+\d+)` +
	`(?:([^\n]*):[ \t]*(?:\*\*|__)?[ \t]*\r?$|((?:\([^)\n]*\)|[^\n:(])*):|([^\n:]*):)` +
	`|\b(SITELINKS|STRUCTURED[ \t]+SNIPPETS|CALLOUTS)[ \t]*:` +
	`)` +
	`(?:\*\*|__)?`)

// Variation headers cut at their first colon when content follows on the
// same line.
var (
	headColonRe    = regexp.MustCompile(`^((?:\([^)\n]*\)|[^\n:(])*):(?:\*\*|__)?`)
	headAnyColonRe = regexp.MustCompile(`^([^\n:]*):(?:\*\*|__)?`)
	inlineLabelRe  = regexp.MustCompile(`(?i)\b(?:HEADLINES|DESCRIPTIONS|SITELINKS|STRUCTURED[ \t]+SNIPPETS|CALLOUTS)[ \t]*:`)
)

// Segment partitions a raw model response into an ordered list of sections.
//
// Text before the first marker becomes an Intro section unless it is blank.
// If the response contains no marker at all, Segment returns a single
// Raw Output section holding the trimmed response. Segment never fails.
func Segment(raw string) []Section {
	markers := findMarkers(raw)
	if len(markers) == 0 {
		return []Section{{Title: TitleRawOutput, Body: strings.TrimSpace(raw)}}
	}

	sections := make([]Section, 0, len(markers)+1)
	if intro := strings.TrimSpace(raw[:markers[0].start]); intro != "" {
		sections = append(sections, Section{Title: TitleIntro, Body: intro})
	}

	for i, mk := range markers {
		end := len(raw)
		if i+1 < len(markers) {
			end = markers[i+1].start
		}
		sections = append(sections, Section{
			Title:  mk.title,
			Body:   strings.TrimSpace(raw[mk.end:end]),
			Marker: raw[mk.start:mk.end],
		})
	}

	return sections
}

// marker is one section marker located in a response.
type marker struct {
	start, end int
	title      string
}

// findMarkers scans raw from left to right. Scanning resumes after each
// marker, so a variation header cut short leaves the rest of its line to be
// searched again.
func findMarkers(raw string) []marker {
	var markers []marker
	for pos := 0; pos < len(raw); {
		m := markerRe.FindStringSubmatchIndex(raw[pos:])
		if m == nil {
			break
		}
		for i := range m {
			if m[i] >= 0 {
				m[i] += pos
			}
		}
		mk := newMarker(raw, m)
		markers = append(markers, mk)
		pos = mk.end
	}
	return markers
}

// newMarker builds the normalized title and extent of a marker match.
func newMarker(raw string, m []int) marker {
	mk := marker{start: m[0], end: m[1]}
	if m[10] >= 0 {
		mk.title = strings.Join(strings.Fields(strings.ToUpper(raw[m[10]:m[11]])), " ")
		return mk
	}

	// Fields are AD, COPY, VARIATION and the number.
	fields := strings.Fields(raw[m[2]:m[3]])
	mk.title = TitleAdCopyPrefix + " " + fields[len(fields)-1]

	var rest string
	switch {
	case m[4] >= 0:
		rest = raw[m[4]:m[5]]
		if text, n, ok := cutInlineHeader(raw[m[3]:m[1]]); ok {
			rest = text
			mk.end = m[3] + n
		}
	case m[6] >= 0:
		rest = raw[m[6]:m[7]]
	case m[8] >= 0:
		rest = raw[m[8]:m[9]]
	}
	rest = strings.TrimSpace(strings.TrimRight(strings.TrimSpace(rest), "*_:"))
	if rest != "" {
		mk.title += " " + rest
	}
	return mk
}

// cutInlineHeader reports whether a variation header that runs to the end of
// its line really ends at an earlier colon because a label or marker follows
// it, as in "AD COPY VARIATION 1 (General Focus): Headlines:". It returns the
// header text and the length consumed.
func cutInlineHeader(line string) (string, int, bool) {
	h := headColonRe.FindStringSubmatchIndex(line)
	if h == nil {
		h = headAnyColonRe.FindStringSubmatchIndex(line)
	}
	if h == nil || !inlineLabelRe.MatchString(line[h[1]:]) {
		return "", 0, false
	}
	return line[h[2]:h[3]], h[1], true
}

// hasTitlePrefix reports whether title starts with prefix, ignoring case.
func hasTitlePrefix(title, prefix string) bool {
	return len(title) >= len(prefix) && strings.EqualFold(title[:len(prefix)], prefix)
}
