// Package odesli provides the client for the Odesli (song.link) link
// resolution API.
package odesli

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
	// apiBaseURL is the Odesli links endpoint.
	apiBaseURL = "https://api.song.link/v1-alpha.1/links"
	// requestTimeout bounds the single lookup call.
	requestTimeout = 10 * time.Second
	// maxErrorBodySize limits how much of an error response body is read
	// back into the error message.
	maxErrorBodySize = 4096

	userAgent = "flom/0.1"
)

// Link is one platform's equivalent URL in a lookup response.
type Link struct {
	EntityUniqueID string `json:"entityUniqueId"`
	URL            string `json:"url"`
}

// Entity carries track metadata referenced by links.
type Entity struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	ArtistName  string `json:"artistName"`
	AlbumName   string `json:"albumName"`
	APIProvider string `json:"apiProvider"`
}

// Response is the decoded Odesli lookup response: the set of equivalent links
// keyed by platform, plus the entities they reference.
type Response struct {
	EntityUniqueID     string            `json:"entityUniqueId"`
	PageURL            string            `json:"pageUrl"`
	LinksByPlatform    map[string]Link   `json:"linksByPlatform"`
	EntitiesByUniqueID map[string]Entity `json:"entitiesByUniqueId"`
}

// Client performs lookups against the Odesli API. Every call re-queries; there
// is no cache and no retry.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	apiKey      string
	userCountry string
	logger      *zap.Logger
}

// NewClient creates an Odesli client from the effective configuration.
func NewClient(cfg *core.Config, logger *zap.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
		baseURL:     apiBaseURL,
		apiKey:      cfg.API.OdesliKey,
		userCountry: cfg.Defaults.UserCountry,
		logger:      logger,
	}
}

// FetchLinks performs one lookup for the given source URL. It refuses to make
// a network call without a configured API key.
func (c *Client) FetchLinks(ctx context.Context, sourceURL string) (*Response, error) {
	if c.apiKey == "" {
		return nil, core.ErrMissingCredential
	}

	params := url.Values{}
	params.Set("url", sourceURL)
	params.Set("userCountry", c.userCountry)
	params.Set("key", c.apiKey)
	reqURL := c.baseURL + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to build odesli request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	c.logger.Debug("Fetching links",
		zap.String("url", sourceURL),
		zap.String("userCountry", c.userCountry))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: odesli request failed: %v", core.ErrNetwork, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
		return nil, fmt.Errorf("%w: odesli returned status %d: %s",
			core.ErrUpstream, resp.StatusCode, string(body))
	}

	var decoded Response
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("%w: failed to decode odesli response: %v", core.ErrUpstream, err)
	}

	c.logger.Debug("Lookup succeeded",
		zap.String("entity", decoded.EntityUniqueID),
		zap.Int("platforms", len(decoded.LinksByPlatform)))

	return &decoded, nil
}
