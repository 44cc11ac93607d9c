package main_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/fwojciec/radasync"
	main "github.com/fwojciec/radasync/cmd/radasync"
	"github.com/fwojciec/radasync/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const browserCard = `{"nazva": "Цивільний кодекс України", "eds_dates": {"20030116": -4444, "20150304": 0}}`

const browserPage = `<html><body><select>
	<option value="ed20030116" style="color:#808080">16.01.2003</option>
	<option value="ed20150304" style="color:#000000">04.03.2015</option>
</select></body></html>`

// newBrowserMain returns a Main whose browser renders JSON the way Chrome
// does, inside its viewer markup, and records every URL it is asked for.
func newBrowserMain(urls *[]string, closed *bool) *main.Main {
	m := main.NewMain()
	m.NewBrowser = func(timeout time.Duration) (radasync.Fetcher, error) {
		return &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				*urls = append(*urls, url)
				if strings.Contains(url, "/laws/card/") {
					return `<html><head></head><body><pre>` + browserCard + `</pre></body></html>`, nil
				}
				return browserPage, nil
			},
			CloseFn: func() error {
				*closed = true
				return nil
			},
		}, nil
	}
	return m
}

func newCardServer(t *testing.T) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/laws/card/435-15.json" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(browserCard))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestMain_Run_Browser(t *testing.T) {
	t.Parallel()

	t.Run("card source reads cards over http", func(t *testing.T) {
		t.Parallel()

		server := newCardServer(t)
		var urls []string
		var closed bool
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := newBrowserMain(&urls, &closed).Run(context.Background(),
			[]string{"--browser", "--base-url", server.URL, "editions", "435-15"}, stdout, stderr)

		require.NoError(t, err, stderr.String())
		assert.Contains(t, stdout.String(), "ed20150304  (current)")
		assert.Contains(t, stdout.String(), "2 editions, 2 pending")
		assert.Empty(t, urls)
		assert.True(t, closed)
	})

	t.Run("page source renders the page in the browser", func(t *testing.T) {
		t.Parallel()

		server := newCardServer(t)
		var urls []string
		var closed bool
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := newBrowserMain(&urls, &closed).Run(context.Background(),
			[]string{"--browser", "--source", "page", "--base-url", server.URL, "editions", "435-15"}, stdout, stderr)

		require.NoError(t, err, stderr.String())
		assert.Contains(t, stdout.String(), "ed20150304  (current)")
		assert.Equal(t, []string{server.URL + "/laws/show/435-15"}, urls)
	})
}
