package platform

import (
	"net/url"
	"strings"
)

// TidalMatcher classifies Tidal links.
type TidalMatcher struct{}

// Platform returns Tidal.
func (TidalMatcher) Platform() Platform { return Tidal }

// Match checks if the URL is a Tidal link.
func (TidalMatcher) Match(u *url.URL) bool {
	switch strings.ToLower(u.Hostname()) {
	case "tidal.com", "www.tidal.com", "listen.tidal.com":
		return true
	}
	return false
}
