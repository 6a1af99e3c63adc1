package platform

import (
	"testing"
)

func TestAppleMusicTrackID(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		expected string
		ok       bool
	}{
		{
			name:     "Album URL with ?i= track query",
			url:      "https://music.apple.com/us/album/blinding-lights/1496794033?i=1496794038",
			expected: "1496794038",
			ok:       true,
		},
		{
			name:     "Direct song URL",
			url:      "https://music.apple.com/us/song/blinding-lights/1496794038",
			expected: "1496794038",
			ok:       true,
		},
		{
			name:     "Album URL without track query falls back to album ID",
			url:      "https://music.apple.com/us/album/after-hours/1496794033",
			expected: "1496794033",
			ok:       true,
		},
		{
			name: "Artist URL has no track ID",
			url:  "https://music.apple.com/us/artist/the-weeknd/479756766",
			ok:   false,
		},
		{
			name: "Legacy iTunes host is not handled",
			url:  "https://itunes.apple.com/us/album/xyz/id123",
			ok:   false,
		},
		{
			name: "Malformed URL",
			url:  "://no-scheme",
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := AppleMusicTrackID(tt.url)
			if ok != tt.ok || got != tt.expected {
				t.Errorf("AppleMusicTrackID(%q) = (%q, %v), expected (%q, %v)",
					tt.url, got, ok, tt.expected, tt.ok)
			}
		})
	}
}
