package mock

import "github.com/fwojciec/radasync"

var _ radasync.Converter = (*Converter)(nil)

// Converter is a mock implementation of radasync.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
