package ygoprodeck

import (
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/andybalholm/brotli"
	"golang.org/x/time/rate"

	"github.com/ygofr/ygosync/internal/config"
)

const userAgent = "ygosync/0.1 (https://github.com/ygofr/ygosync)"

type Client struct {
	httpClient  *http.Client
	baseURL     string
	language    string
	userAgent   string
	rateLimiter *rate.Limiter
}

// NewClient creates a new YGOPRODeck API client. The rate limiter enforces
// the configured pause between any two requests, which is the only pacing
// the whole tool does.
func NewClient(cfg config.API) *Client {
	pause := cfg.Pause
	if pause <= 0 {
		pause = config.DefaultPause
	}
	return &Client{
		httpClient:  &http.Client{Timeout: cfg.Timeout},
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		language:    cfg.Language,
		userAgent:   userAgent,
		rateLimiter: rate.NewLimiter(rate.Every(pause), 1),
	}
}

// doRequest performs an HTTP GET against the API (raw, no JSON decoding).
func (c *Client) doRequest(ctx context.Context, endpoint string, params url.Values) (*http.Response, error) {
	// Rate limiting
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit error: %w", err)
	}

	fullURL := c.baseURL + endpoint
	if len(params) > 0 {
		fullURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	// Setting Accept-Encoding manually disables the transport's automatic
	// gzip handling, so decodeBody has to cover both encodings.
	req.Header.Set("Accept-Encoding", "gzip, br")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	return resp, nil
}

// doJSON executes a request and decodes the response body into out.
func (c *Client) doJSON(ctx context.Context, endpoint string, params url.Values, out any) error {
	resp, err := c.doRequest(ctx, endpoint, params)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	reader, err := decodeBody(resp)
	if err != nil {
		return fmt.Errorf("decompress response: %w", err)
	}

	b, err := io.ReadAll(reader)
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var env errorEnvelope
		if json.Unmarshal(b, &env) == nil && env.Error != "" {
			return fmt.Errorf("api error (%d): %s", resp.StatusCode, env.Error)
		}
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(b))
	}

	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("decode response: %w (body: %s)", err, truncateBody(b))
	}
	return nil
}

// decodeBody picks the right reader for the response's Content-Encoding.
func decodeBody(resp *http.Response) (io.Reader, error) {
	switch resp.Header.Get("Content-Encoding") {
	case "gzip":
		gz, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, err
		}
		return gz, nil
	case "br":
		return brotli.NewReader(resp.Body), nil
	}
	return resp.Body, nil
}

func truncateBody(b []byte) string {
	const max = 512
	if len(b) > max {
		return string(b[:max]) + "..."
	}
	return string(b)
}

// ListCardSets returns every set known to the API. Unlike cardinfo.php this
// endpoint responds with a bare JSON array, no envelope.
func (c *Client) ListCardSets(ctx context.Context) ([]CardSet, error) {
	var sets []CardSet
	if err := c.doJSON(ctx, "/cardsets.php", nil, &sets); err != nil {
		return nil, fmt.Errorf("list card sets: %w", err)
	}
	return sets, nil
}

// CardsBySet returns all cards printed in the named set. An empty or absent
// data array means the set has no cards for this query, not an error.
func (c *Client) CardsBySet(ctx context.Context, setName, language string) ([]Card, error) {
	params := url.Values{}
	params.Set("cardset", setName)
	if language != "" {
		params.Set("language", language)
	}

	var env cardsEnvelope
	if err := c.doJSON(ctx, "/cardinfo.php", params, &env); err != nil {
		return nil, fmt.Errorf("cards for set %q: %w", setName, err)
	}
	return env.Data, nil
}

// SetCards fetches a set's card list in the configured language, falling
// back to the API default locale when the localized query errors or comes
// back empty.
func (c *Client) SetCards(ctx context.Context, setName string) ([]Card, error) {
	if c.language != "" {
		cards, err := c.CardsBySet(ctx, setName, c.language)
		if err == nil && len(cards) > 0 {
			return cards, nil
		}
		if err != nil {
			fmt.Printf("No %s data for %q (%v), retrying with the default locale.\n", c.language, setName, err)
		} else {
			fmt.Printf("No %s data for %q, retrying with the default locale.\n", c.language, setName)
		}
	}
	return c.CardsBySet(ctx, setName, "")
}

