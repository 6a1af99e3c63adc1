package platform

import (
	"net/url"
	"strings"
)

// YouTubeMusicMatcher classifies YouTube Music links. It must run before
// YouTubeMatcher: music.youtube.com is the more specific host.
type YouTubeMusicMatcher struct{}

// Platform returns YouTubeMusic.
func (YouTubeMusicMatcher) Platform() Platform { return YouTubeMusic }

// Match checks if the URL is a YouTube Music link.
func (YouTubeMusicMatcher) Match(u *url.URL) bool {
	return strings.ToLower(u.Hostname()) == "music.youtube.com"
}

// YouTubeMatcher classifies plain YouTube links.
type YouTubeMatcher struct{}

// Platform returns YouTube.
func (YouTubeMatcher) Platform() Platform { return YouTube }

// Match checks if the URL is a YouTube link.
func (YouTubeMatcher) Match(u *url.URL) bool {
	switch strings.ToLower(u.Hostname()) {
	case "youtube.com", "www.youtube.com", "m.youtube.com", "youtu.be":
		return true
	}
	return false
}
