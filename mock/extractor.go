package mock

import "github.com/fwojciec/adgen"

var _ adgen.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of adgen.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*adgen.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*adgen.ExtractResult, error) {
	return e.ExtractFn(html)
}

var _ adgen.MetaExtractor = (*MetaExtractor)(nil)

// MetaExtractor is a mock implementation of adgen.MetaExtractor.
type MetaExtractor struct {
	ExtractMetaFn func(html, pageURL string) (*adgen.PageMeta, error)
}

func (e *MetaExtractor) ExtractMeta(html, pageURL string) (*adgen.PageMeta, error) {
	return e.ExtractMetaFn(html, pageURL)
}
