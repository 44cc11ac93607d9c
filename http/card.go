package http

import (
	"context"
	"strings"

	"github.com/fwojciec/radasync"
	"github.com/tidwall/gjson"
)

// Ensure CardService implements radasync.CardService at compile time.
var _ radasync.CardService = (*CardService)(nil)

// CardService reads document cards from the portal's JSON API.
type CardService struct {
	fetcher  radasync.Fetcher
	endpoint radasync.Endpoint
}

// NewCardService creates a new CardService.
func NewCardService(fetcher radasync.Fetcher, endpoint radasync.Endpoint) *CardService {
	return &CardService{fetcher: fetcher, endpoint: endpoint}
}

// FindCard fetches and decodes the card of a document or edition.
func (s *CardService) FindCard(ctx context.Context, documentID, editionKey string) (*radasync.Card, error) {
	body, err := s.fetcher.Fetch(ctx, s.endpoint.CardURL(documentID, editionKey))
	if err != nil {
		return nil, err
	}
	return ParseCard(body)
}

// ParseCard decodes a card. The eds_dates object maps edition dates to their
// offset from the current edition; object order is chronological and is
// preserved. The first entry with offset 0 is the current edition, entries
// after it are scheduled for the future.
func ParseCard(body string) (*radasync.Card, error) {
	if !gjson.Valid(body) {
		return nil, radasync.Errorf(radasync.EINVALID, "malformed card JSON")
	}
	root := gjson.Parse(body)
	if !root.IsObject() {
		return nil, radasync.Errorf(radasync.EINVALID, "card is not a JSON object")
	}

	card := &radasync.Card{
		Title:        strings.TrimSpace(root.Get("nazva").String()),
		RegNumber:    strings.TrimSpace(root.Get("nreg").String()),
		RevisionDate: strings.TrimSpace(root.Get("datred").String()),
		Basis:        basis(root.Get("pidstava")),
	}

	status := radasync.EditionPrevious
	var err error
	root.Get("eds_dates").ForEach(func(key, value gjson.Result) bool {
		if value.Type != gjson.Number {
			err = radasync.Errorf(radasync.EINVALID, "edition %s has a non-numeric offset: %s", key.String(), value.Raw)
			return false
		}
		e := radasync.Edition{
			Key:      editionKey(key.String()),
			Position: len(card.Editions),
			Status:   status,
		}
		if status == radasync.EditionPrevious && value.Float() == 0 {
			e.Status = radasync.EditionCurrent
			status = radasync.EditionFuture
		}
		card.Editions = append(card.Editions, e)
		return true
	})
	if err != nil {
		return nil, err
	}

	return card, nil
}

// editionKey turns an eds_dates key such as "20150304" into "ed20150304".
func editionKey(k string) string {
	if strings.HasPrefix(k, "ed") {
		return k
	}
	return "ed" + k
}

func basis(v gjson.Result) string {
	if !v.IsArray() {
		return strings.TrimSpace(v.String())
	}
	var parts []string
	for _, item := range v.Array() {
		if s := strings.TrimSpace(item.String()); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, ", ")
}
