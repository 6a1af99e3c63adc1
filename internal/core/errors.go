package core

import (
	"errors"
)

// Sentinel errors for every failure condition the tool reports. Callers wrap
// them with context via fmt.Errorf("...: %w", ...) and the CLI surfaces each
// as a single message with a non-zero exit; nothing is retried.
var (
	// ErrMalformedInput is returned when the input does not parse as a URL
	// or names an unknown target platform.
	ErrMalformedInput = errors.New("malformed input")

	// ErrUnrecognizedPlatform is returned for well-formed URLs that belong
	// to no supported streaming platform.
	ErrUnrecognizedPlatform = errors.New("platform not recognized")

	// ErrMissingCredential is returned before any network call when a
	// lookup is requested without a configured Odesli API key.
	ErrMissingCredential = errors.New("no Odesli API key configured")

	// ErrNetwork is returned for transport-level failures.
	ErrNetwork = errors.New("network failure")

	// ErrUpstream is returned when a remote service answers with a
	// non-success status or an undecodable body.
	ErrUpstream = errors.New("upstream service error")

	// ErrTargetUnavailable is returned when the requested target platform
	// is not among the links the lookup produced.
	ErrTargetUnavailable = errors.New("target platform not available for this link")

	// ErrNoSelection is returned when the interactive platform choice is
	// cancelled or aborted.
	ErrNoSelection = errors.New("no selection made")

	// ErrConfig is returned when the configuration file cannot be read or
	// parsed.
	ErrConfig = errors.New("configuration error")
)
