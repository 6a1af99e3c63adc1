// Package shorten provides the client for the is.gd URL shortening service.
package shorten

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"flom/internal/core"
)

const (
	// endpointURL is the is.gd JSON shortening endpoint.
	endpointURL = "https://is.gd/create.php"
	// requestTimeout bounds the single shortening call.
	requestTimeout = 10 * time.Second
	// maxErrorBodySize limits how much of an error response body is read
	// back into the error message.
	maxErrorBodySize = 4096

	userAgent = "flom/0.1"
)

// response is the is.gd JSON payload; exactly one of the fields is set.
type response struct {
	ShortURL     string `json:"shorturl"`
	ErrorMessage string `json:"errormessage"`
}

// Client shortens URLs via is.gd. One call per invocation, no retry.
type Client struct {
	httpClient *http.Client
	endpoint   string
	logger     *zap.Logger
}

// NewClient creates a shortener client.
func NewClient(logger *zap.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
		endpoint: endpointURL,
		logger:   logger,
	}
}

// Shorten issues one shortening request for the given URL.
func (c *Client) Shorten(ctx context.Context, longURL string) (*core.ShortenedLink, error) {
	if err := core.ValidateURL(longURL); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("format", "json")
	params.Set("url", longURL)
	reqURL := c.endpoint + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to build shorten request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	c.logger.Debug("Shortening URL", zap.String("url", longURL))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: shorten request failed: %v", core.ErrNetwork, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
		return nil, fmt.Errorf("%w: shortener returned status %d: %s",
			core.ErrUpstream, resp.StatusCode, string(body))
	}

	var decoded response
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("%w: failed to decode shortener response: %v", core.ErrUpstream, err)
	}

	if decoded.ErrorMessage != "" {
		return nil, fmt.Errorf("%w: %s", core.ErrUpstream, decoded.ErrorMessage)
	}
	if decoded.ShortURL == "" {
		return nil, fmt.Errorf("%w: shortener response missing shorturl", core.ErrUpstream)
	}

	return &core.ShortenedLink{
		LongURL:  longURL,
		ShortURL: decoded.ShortURL,
	}, nil
}
