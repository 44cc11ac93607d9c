package radasync

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms an edition's HTML into the Markdown stored in the
	// repository.
	Convert(html string) (string, error)
}
