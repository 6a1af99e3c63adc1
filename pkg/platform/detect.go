package platform

import (
	"errors"
	"net/url"
)

var (
	// ErrMalformedURL is returned when the input is not syntactically a URL.
	ErrMalformedURL = errors.New("input is not a valid URL")
	// ErrUnrecognized is returned for well-formed URLs that match no
	// supported platform.
	ErrUnrecognized = errors.New("platform not recognized")
)

// Matcher reports whether a parsed URL belongs to one platform.
type Matcher interface {
	// Platform returns the platform this matcher classifies.
	Platform() Platform

	// Match checks if the URL belongs to this matcher's platform.
	Match(u *url.URL) bool
}

// matchers lists one matcher per platform. YouTubeMusicMatcher comes before
// YouTubeMatcher so the more specific music.youtube.com host wins; every other
// matcher owns a disjoint host set, verified by the detector tests.
var matchers = []Matcher{
	SpotifyMatcher{},
	AppleMusicMatcher{},
	ITunesMatcher{},
	YouTubeMusicMatcher{},
	YouTubeMatcher{},
	TidalMatcher{},
	DeezerMatcher{},
	AmazonMusicMatcher{},
}

// Detect classifies a URL string into a supported platform. It returns
// ErrMalformedURL when the input does not parse as an absolute http(s) URL and
// ErrUnrecognized when no platform pattern matches.
func Detect(rawURL string) (Platform, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return Unknown, ErrMalformedURL
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return Unknown, ErrMalformedURL
	}

	for _, m := range matchers {
		if m.Match(u) {
			return m.Platform(), nil
		}
	}

	return Unknown, ErrUnrecognized
}
