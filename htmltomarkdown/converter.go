// Package htmltomarkdown implements adgen.Converter using html-to-markdown.
package htmltomarkdown

import (
	"regexp"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/adgen"
)

// Ensure Converter implements adgen.Converter at compile time.
var _ adgen.Converter = (*Converter)(nil)

var (
	// imageRe matches Markdown images, which carry no copy worth prompting on.
	imageRe = regexp.MustCompile(`!\[[^\]]*\]\([^)]*\)`)

	blankLinesRe = regexp.MustCompile(`\n{3,}`)
)

// Converter wraps html-to-markdown to convert page content to Markdown for
// inclusion in a prompt. Images are dropped and blank lines collapsed.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms HTML content into Markdown.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", adgen.Errorf(adgen.EINVALID, "empty HTML input")
	}

	result, err := c.conv.ConvertString(html)
	if err != nil {
		return "", err
	}

	result = imageRe.ReplaceAllString(result, "")
	result = blankLinesRe.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result), nil
}
