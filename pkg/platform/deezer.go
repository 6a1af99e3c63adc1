package platform

import (
	"net/url"
	"strings"
)

// DeezerMatcher classifies Deezer links, including deezer.page.link share
// redirects.
type DeezerMatcher struct{}

// Platform returns Deezer.
func (DeezerMatcher) Platform() Platform { return Deezer }

// Match checks if the URL is a Deezer link.
func (DeezerMatcher) Match(u *url.URL) bool {
	switch strings.ToLower(u.Hostname()) {
	case "deezer.com", "www.deezer.com", "deezer.page.link":
		return true
	}
	return false
}
