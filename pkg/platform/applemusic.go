package platform

import (
	"net/url"
	"regexp"
	"strings"
)

// appleMusicTrackIDPattern matches the trailing numeric ID of song and album
// paths (music.apple.com/us/song/<name>/<id>).
var appleMusicTrackIDPattern = regexp.MustCompile(`music\.apple\.com/.*/(?:song|album)/.+/(\d+)`)

// AppleMusicMatcher classifies Apple Music links.
type AppleMusicMatcher struct{}

// Platform returns AppleMusic.
func (AppleMusicMatcher) Platform() Platform { return AppleMusic }

// Match checks if the URL is an Apple Music link.
func (AppleMusicMatcher) Match(u *url.URL) bool {
	return strings.ToLower(u.Hostname()) == "music.apple.com"
}

// ITunesMatcher classifies legacy iTunes store links.
type ITunesMatcher struct{}

// Platform returns ITunes.
func (ITunesMatcher) Platform() Platform { return ITunes }

// Match checks if the URL is a legacy itunes.apple.com link.
func (ITunesMatcher) Match(u *url.URL) bool {
	return strings.ToLower(u.Hostname()) == "itunes.apple.com"
}

// AppleMusicTrackID extracts the track ID from an Apple Music URL. Album links
// carry the track ID in the ?i= query parameter; direct song links carry it as
// the final path segment.
func AppleMusicTrackID(rawURL string) (string, bool) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", false
	}
	if strings.ToLower(u.Hostname()) != "music.apple.com" {
		return "", false
	}

	if id := u.Query().Get("i"); id != "" {
		return id, true
	}

	matches := appleMusicTrackIDPattern.FindStringSubmatch(rawURL)
	if len(matches) < 2 {
		return "", false
	}
	return matches[1], true
}
