package radasync

import (
	"net/url"
	"strings"
)

// DefaultBaseURL is the open data portal of the Verkhovna Rada.
const DefaultBaseURL = "https://data.rada.gov.ua"

// Endpoint builds the URLs of documents and cards on the source.
type Endpoint struct {
	BaseURL string
}

// NewEndpoint returns an Endpoint for baseURL, or DefaultBaseURL when empty.
func NewEndpoint(baseURL string) Endpoint {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return Endpoint{BaseURL: strings.TrimSuffix(baseURL, "/")}
}

// DocumentURL returns the page of a document, or of one of its editions when
// editionKey is not empty.
func (e Endpoint) DocumentURL(documentID, editionKey string) string {
	return e.join("laws/show/"+documentID, editionKey)
}

// CardURL returns the JSON card of a document or edition.
func (e Endpoint) CardURL(documentID, editionKey string) string {
	return e.join("laws/card/"+documentID+".json", editionKey)
}

func (e Endpoint) join(p, editionKey string) string {
	base := e.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	s := strings.TrimSuffix(base, "/") + "/" + p
	if editionKey != "" {
		s += "/" + editionKey
	}
	u, err := url.Parse(s)
	if err != nil {
		return s
	}
	return u.String()
}
