package mock

import "github.com/fwojciec/radasync"

var _ radasync.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of radasync.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*radasync.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*radasync.ExtractResult, error) {
	return e.ExtractFn(html)
}
