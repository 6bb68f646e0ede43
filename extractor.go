package adgen

// ExtractResult holds the extracted content from an HTML page.
type ExtractResult struct {
	// Title is the page title extracted from metadata.
	Title string

	// Description is the page summary from metadata, if any.
	Description string

	// ContentHTML is the main content as clean HTML.
	// Boilerplate (nav, footer, sidebar, ads) has been removed.
	ContentHTML string
}

// Extractor extracts main content from HTML pages, removing boilerplate.
type Extractor interface {
	// Extract processes raw HTML and returns the main content.
	Extract(html string) (*ExtractResult, error)
}

// PageMeta holds the metadata a page declares about itself.
type PageMeta struct {
	Title       string
	Description string

	// Headings are the page's h1 and h2 texts in document order.
	Headings []string

	// Links are the absolute same-host links on the page in document
	// order, without fragments or duplicates.
	Links []string
}

// MetaExtractor reads page metadata from raw HTML. pageURL resolves
// relative links.
type MetaExtractor interface {
	ExtractMeta(html, pageURL string) (*PageMeta, error)
}
