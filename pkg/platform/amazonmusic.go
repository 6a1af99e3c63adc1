package platform

import (
	"net/url"
	"strings"
)

// AmazonMusicMatcher classifies Amazon Music links.
type AmazonMusicMatcher struct{}

// Platform returns AmazonMusic.
func (AmazonMusicMatcher) Platform() Platform { return AmazonMusic }

// Match checks if the URL is an Amazon Music link. Covers the regional
// storefronts (music.amazon.com, music.amazon.co.uk, music.amazon.de, ...).
func (AmazonMusicMatcher) Match(u *url.URL) bool {
	return strings.HasPrefix(strings.ToLower(u.Hostname()), "music.amazon.")
}
