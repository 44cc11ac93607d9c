// Package goquery discovers editions by scraping the edition selector of a
// document page, for deployments where the JSON cards are not available.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/radasync"
)

// Markers select the edition options on a document page and tell the
// options apart by the colour in their style attribute.
type Markers struct {
	// Options is the CSS selector of the edition options.
	Options string

	// Previous, Current and Future are matched against the option's
	// style attribute after lowercasing and removing whitespace.
	Previous string
	Current  string
	Future   string
}

// DefaultMarkers returns the markers used by the portal's edition selector.
func DefaultMarkers() Markers {
	return Markers{
		Options:  "select option",
		Previous: "color:#808080",
		Current:  "color:#000000",
		Future:   "color:#0000ff",
	}
}

// ParseEditions returns the options of the edition selector in DOM order,
// classified by their style markers. Options without a value or without a
// known marker are skipped.
func ParseEditions(html string, markers Markers) ([]radasync.Edition, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, radasync.Errorf(radasync.EINVALID, "failed to parse HTML: %v", err)
	}

	previous := normalizeStyle(markers.Previous)
	current := normalizeStyle(markers.Current)
	future := normalizeStyle(markers.Future)

	var editions []radasync.Edition
	doc.Find(markers.Options).Each(func(_ int, sel *goquery.Selection) {
		key, ok := sel.Attr("value")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return
		}

		style := normalizeStyle(sel.AttrOr("style", ""))
		var status radasync.EditionStatus
		switch {
		case future != "" && strings.Contains(style, future):
			status = radasync.EditionFuture
		case current != "" && strings.Contains(style, current):
			status = radasync.EditionCurrent
		case previous != "" && strings.Contains(style, previous):
			status = radasync.EditionPrevious
		default:
			return
		}

		editions = append(editions, radasync.Edition{
			Key:      key,
			Position: len(editions),
			Status:   status,
		})
	})

	return editions, nil
}

// normalizeStyle lowercases s and strips whitespace and a trailing
// semicolon so "Color: #000000;" matches "color:#000000".
func normalizeStyle(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		switch r {
		case ' ', '\t', '\n', '\r':
			continue
		}
		b.WriteRune(r)
	}
	return strings.TrimSuffix(b.String(), ";")
}
