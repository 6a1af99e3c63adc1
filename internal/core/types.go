package core

import (
	"fmt"
	"net/url"
)

// MediaInfo holds track metadata returned by the lookup service.
type MediaInfo struct {
	Title  string
	Artist string
	Album  string
}

// ConversionResult is one resolved conversion: the source URL and the
// equivalent link on the chosen target platform. Platform fields carry Odesli
// platform keys; rendering to display names is the presenter's job.
type ConversionResult struct {
	SourceURL      string
	TargetURL      string
	SourcePlatform string
	TargetPlatform string
	SourceInfo     *MediaInfo
	TargetInfo     *MediaInfo
	Warning        string
}

// ShortenedLink pairs a shortened URL with the original it replaces.
type ShortenedLink struct {
	LongURL  string
	ShortURL string
}

// ValidateURL checks that the input is syntactically an absolute http(s) URL.
func ValidateURL(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("%w: invalid url: %v", ErrMalformedInput, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: invalid url: %q", ErrMalformedInput, rawURL)
	}
	return nil
}
