package radasync

// ExtractResult holds the extracted content from an edition page.
type ExtractResult struct {
	// Title is the page title extracted from metadata.
	Title string

	// ContentHTML is the text of the act with page chrome removed.
	ContentHTML string
}

// Extractor narrows an edition page down to the text of the act before it
// is converted. Extraction is optional; without it the whole page is
// converted.
type Extractor interface {
	Extract(html string) (*ExtractResult, error)
}
