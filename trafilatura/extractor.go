package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/radasync"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements radasync.Extractor at compile time.
var _ radasync.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to isolate the document body from the
// surrounding portal chrome.
type Extractor struct {
	opts trafilatura.Options
}

// NewExtractor creates a new Extractor. Fallback extractors are enabled and
// tables are kept, since legal acts carry schedules as tables.
func NewExtractor() *Extractor {
	return &Extractor{
		opts: trafilatura.Options{
			EnableFallback: true,
			ExcludeTables:  false,
			IncludeLinks:   true,
		},
	}
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML string) (*radasync.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, radasync.Errorf(radasync.EINVALID, "empty HTML input")
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), e.opts)
	if err != nil {
		return nil, radasync.Errorf(radasync.ENOCONTENT, "extract content: %v", err)
	}
	if result == nil || result.ContentNode == nil {
		return nil, radasync.Errorf(radasync.ENOCONTENT, "no main content found")
	}

	contentHTML, err := renderNode(result.ContentNode)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(contentHTML) == "" {
		return nil, radasync.Errorf(radasync.ENOCONTENT, "no main content found")
	}

	return &radasync.ExtractResult{
		Title:       result.Metadata.Title,
		ContentHTML: contentHTML,
	}, nil
}

func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
