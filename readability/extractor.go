// Package readability implements adgen.Extractor using go-readability. It is
// the fallback when trafilatura finds no main content.
package readability

import (
	"strings"

	"github.com/fwojciec/adgen"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements adgen.Extractor at compile time.
var _ adgen.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content. The article
// excerpt serves as the description.
func (e *Extractor) Extract(rawHTML string) (*adgen.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, adgen.Errorf(adgen.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	return &adgen.ExtractResult{
		Title:       strings.TrimSpace(article.Title),
		Description: strings.TrimSpace(article.Excerpt),
		ContentHTML: article.Content,
	}, nil
}
