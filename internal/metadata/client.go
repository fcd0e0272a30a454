package metadata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

const (
	// Rate limiting: the provider allows ~60 requests per minute on the
	// free tier.
	rateLimit = 1 // requests per second
	rateBurst = 5

	requestTimeout = 30 * time.Second
)

// Client talks to the external movie-metadata provider. Every request
// carries the two static credential headers the provider requires.
type Client struct {
	baseURL     string
	apiKey      string
	apiHost     string
	httpClient  *http.Client
	rateLimiter *rate.Limiter
}

// NewClient creates a new metadata API client.
func NewClient(baseURL, apiKey, apiHost string) *Client {
	return &Client{
		baseURL:     baseURL,
		apiKey:      apiKey,
		apiHost:     apiHost,
		rateLimiter: rate.NewLimiter(rate.Limit(rateLimit), rateBurst),
		httpClient: &http.Client{
			Timeout: requestTimeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

// MostPopularMovies fetches the provider's full most-popular collection.
// The endpoint answers with either a bare array or `{movies: [...]}`;
// both shapes are accepted.
func (c *Client) MostPopularMovies(ctx context.Context) ([]Movie, error) {
	body, err := c.get(ctx, "/imdb/most-popular-movies", nil)
	if err != nil {
		return nil, err
	}

	var bare []Movie
	if err := json.Unmarshal(body, &bare); err == nil {
		return bare, nil
	}

	var wrapped popularResponse
	if err := json.Unmarshal(body, &wrapped); err != nil {
		return nil, fmt.Errorf("unexpected most-popular-movies response shape: %w", err)
	}
	return wrapped.Movies, nil
}

// Autocomplete fetches title suggestions for a search query.
func (c *Client) Autocomplete(ctx context.Context, query string) ([]Movie, error) {
	body, err := c.get(ctx, "/imdb/autocomplete", url.Values{"query": {query}})
	if err != nil {
		return nil, err
	}

	var movies []Movie
	if err := json.Unmarshal(body, &movies); err != nil {
		return nil, fmt.Errorf("unexpected autocomplete response shape: %w", err)
	}
	return movies, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter wait: %w", err)
	}

	endpoint := c.baseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("X-RapidAPI-Key", c.apiKey)
	req.Header.Set("X-RapidAPI-Host", c.apiHost)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("metadata request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("metadata API returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return body, nil
}
