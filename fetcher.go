package radasync

import "context"

// Fetcher retrieves the body of a URL from the source.
// Implementations may use browser automation when the source serves a
// JavaScript check before the page.
type Fetcher interface {
	// Fetch returns the response body of url.
	// Returns ENOTFOUND if the source reports the page as missing.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (body string, err error)

	// Close releases resources held by the fetcher.
	Close() error
}
