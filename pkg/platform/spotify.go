package platform

import (
	"net/url"
	"regexp"
	"strings"
)

// spotifyTrackIDPattern matches track IDs in Spotify URLs, including the
// regional intl-xx path segment (open.spotify.com/intl-ja/track/...).
var spotifyTrackIDPattern = regexp.MustCompile(`open\.spotify\.com/(?:intl-[a-z]{2}/)?track/([A-Za-z0-9]+)`)

// SpotifyMatcher classifies Spotify links.
type SpotifyMatcher struct{}

// Platform returns Spotify.
func (SpotifyMatcher) Platform() Platform { return Spotify }

// Match checks if the URL is a Spotify link.
func (SpotifyMatcher) Match(u *url.URL) bool {
	hostname := strings.ToLower(u.Hostname())
	return hostname == "open.spotify.com" || hostname == "play.spotify.com"
}

// SpotifyTrackID extracts the track ID from a Spotify track URL.
func SpotifyTrackID(rawURL string) (string, bool) {
	matches := spotifyTrackIDPattern.FindStringSubmatch(rawURL)
	if len(matches) < 2 {
		return "", false
	}
	return matches[1], true
}
