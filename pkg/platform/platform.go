// Package platform classifies streaming-service URLs into a closed set of
// supported platforms and maps platform identifiers to display names.
package platform

import (
	"strings"
)

// Platform identifies one supported streaming service.
type Platform int

const (
	// Unknown is the zero value for URLs that match no supported platform.
	Unknown Platform = iota
	Spotify
	AppleMusic
	ITunes
	YouTube
	YouTubeMusic
	Tidal
	Deezer
	AmazonMusic
)

// All returns every supported platform in canonical order. This order is
// stable: it drives interactive selection menus and "all" output.
func All() []Platform {
	return []Platform{
		Spotify,
		AppleMusic,
		ITunes,
		YouTube,
		YouTubeMusic,
		Tidal,
		Deezer,
		AmazonMusic,
	}
}

// Key returns the platform identifier used by the Odesli API.
func (p Platform) Key() string {
	switch p {
	case Spotify:
		return "spotify"
	case AppleMusic:
		return "appleMusic"
	case ITunes:
		return "itunes"
	case YouTube:
		return "youtube"
	case YouTubeMusic:
		return "youtubeMusic"
	case Tidal:
		return "tidal"
	case Deezer:
		return "deezer"
	case AmazonMusic:
		return "amazonMusic"
	default:
		return "unknown"
	}
}

// DisplayName returns the human-readable name of the platform.
func (p Platform) DisplayName() string {
	switch p {
	case Spotify:
		return "Spotify"
	case AppleMusic:
		return "Apple Music"
	case ITunes:
		return "iTunes"
	case YouTube:
		return "YouTube"
	case YouTubeMusic:
		return "YouTube Music"
	case Tidal:
		return "Tidal"
	case Deezer:
		return "Deezer"
	case AmazonMusic:
		return "Amazon Music"
	default:
		return "Unknown"
	}
}

func (p Platform) String() string {
	return p.Key()
}

// FromKey maps an Odesli platform identifier back to a Platform.
func FromKey(key string) (Platform, bool) {
	for _, p := range All() {
		if p.Key() == key {
			return p, true
		}
	}
	return Unknown, false
}

// ParseTarget normalizes a user-supplied target platform name. It accepts the
// common spellings of each platform ("apple-music", "apple_music",
// "applemusic", any casing) and reports false for anything else.
func ParseTarget(input string) (Platform, bool) {
	normalized := strings.ToLower(strings.TrimSpace(input))
	normalized = strings.ReplaceAll(normalized, "-", "")
	normalized = strings.ReplaceAll(normalized, "_", "")

	switch normalized {
	case "spotify":
		return Spotify, true
	case "applemusic":
		return AppleMusic, true
	case "itunes":
		return ITunes, true
	case "youtube":
		return YouTube, true
	case "youtubemusic":
		return YouTubeMusic, true
	case "tidal":
		return Tidal, true
	case "deezer":
		return Deezer, true
	case "amazonmusic":
		return AmazonMusic, true
	default:
		return Unknown, false
	}
}
