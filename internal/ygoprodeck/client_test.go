package ygoprodeck

import (
	"compress/gzip"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/andybalholm/brotli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ygofr/ygosync/internal/config"
)

func testClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(config.API{
		BaseURL:  srv.URL,
		Language: "fr",
		Pause:    time.Millisecond,
		Timeout:  5 * time.Second,
	})
}

func TestListCardSets(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/cardsets.php", r.URL.Path)
		assert.Contains(t, r.Header.Get("User-Agent"), "ygosync")
		fmt.Fprint(w, `[
  {"set_name": "Legend of Blue Eyes White Dragon", "set_code": "LOB", "num_of_cards": 126, "tcg_date": "2002-03-08"},
  {"set_name": "Metal Raiders", "set_code": "MRD", "num_of_cards": 144, "tcg_date": "2002-06-26"}
]`)
	}))

	sets, err := c.ListCardSets(context.Background())
	require.NoError(t, err)
	require.Len(t, sets, 2)
	assert.Equal(t, "LOB", sets[0].SetCode)
	assert.Equal(t, 126, sets[0].NumOfCards)
	assert.Equal(t, "2002-06-26", sets[1].TCGDate)
}

func TestCardsBySetQueryParams(t *testing.T) {
	var got url.Values
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/cardinfo.php", r.URL.Path)
		got = r.URL.Query()
		fmt.Fprint(w, `{"data": []}`)
	}))

	_, err := c.CardsBySet(context.Background(), "Metal Raiders", "fr")
	require.NoError(t, err)
	assert.Equal(t, "Metal Raiders", got.Get("cardset"))
	assert.Equal(t, "fr", got.Get("language"))

	_, err = c.CardsBySet(context.Background(), "Metal Raiders", "")
	require.NoError(t, err)
	_, hasLanguage := got["language"]
	assert.False(t, hasLanguage, "default locale must not send a language param")
}

func TestCardsBySetEmptyData(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{}`)
	}))

	cards, err := c.CardsBySet(context.Background(), "Empty", "fr")
	require.NoError(t, err)
	assert.Empty(t, cards)
}

func TestCardsBySetAPIError(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"error": "No card matching your query was found in the database."}`)
	}))

	_, err := c.CardsBySet(context.Background(), "Nope", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "api error (400)")
	assert.Contains(t, err.Error(), "No card matching your query")
}

func TestCardsBySetUndecodableBody(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html>maintenance</html>`)
	}))

	_, err := c.CardsBySet(context.Background(), "X", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode response")
}

func TestSetCardsPrefersLocalized(t *testing.T) {
	calls := 0
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, "fr", r.URL.Query().Get("language"))
		fmt.Fprint(w, `{"data": [{"id": 1, "name": "un"}]}`)
	}))

	cards, err := c.SetCards(context.Background(), "Some Set")
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, "un", cards[0].Name)
	assert.Equal(t, 1, calls)
}

func TestSetCardsFallsBackToDefaultLocale(t *testing.T) {
	var langs []string
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lang := r.URL.Query().Get("language")
		langs = append(langs, lang)
		if lang != "" {
			fmt.Fprint(w, `{"data": []}`)
			return
		}
		fmt.Fprint(w, `{"data": [{"id": 1, "name": "one"}]}`)
	}))

	cards, err := c.SetCards(context.Background(), "Some Set")
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, []string{"fr", ""}, langs)
}

func TestSetCardsFallsBackOnLocalizedError(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("language") != "" {
			w.WriteHeader(http.StatusBadRequest)
			fmt.Fprint(w, `{"error": "No card matching your query was found in the database."}`)
			return
		}
		fmt.Fprint(w, `{"data": [{"id": 2, "name": "two"}]}`)
	}))

	cards, err := c.SetCards(context.Background(), "Some Set")
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, 2, cards[0].ID)
}

func TestDecodeGzipResponse(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.Header.Get("Accept-Encoding"), "gzip")
		w.Header().Set("Content-Encoding", "gzip")
		gz := gzip.NewWriter(w)
		fmt.Fprint(gz, `[{"set_name": "Legend of Blue Eyes White Dragon", "set_code": "LOB"}]`)
		require.NoError(t, gz.Close())
	}))

	sets, err := c.ListCardSets(context.Background())
	require.NoError(t, err)
	require.Len(t, sets, 1)
	assert.Equal(t, "LOB", sets[0].SetCode)
}

func TestDecodeBrotliResponse(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.Header.Get("Accept-Encoding"), "br")
		w.Header().Set("Content-Encoding", "br")
		bw := brotli.NewWriter(w)
		fmt.Fprint(bw, `[{"set_name": "Metal Raiders", "set_code": "MRD"}]`)
		require.NoError(t, bw.Close())
	}))

	sets, err := c.ListCardSets(context.Background())
	require.NoError(t, err)
	require.Len(t, sets, 1)
	assert.Equal(t, "MRD", sets[0].SetCode)
}
