package readability

import (
	"strings"

	"github.com/fwojciec/radasync"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements radasync.Extractor at compile time.
var _ radasync.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract the document body from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML string) (*radasync.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, radasync.Errorf(radasync.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, radasync.Errorf(radasync.ENOCONTENT, "extract content: %v", err)
	}
	if strings.TrimSpace(article.Content) == "" {
		return nil, radasync.Errorf(radasync.ENOCONTENT, "no main content found")
	}

	return &radasync.ExtractResult{
		Title:       article.Title,
		ContentHTML: article.Content,
	}, nil
}
