// Package convert orchestrates one music link conversion: detect the source
// platform, fetch the set of equivalent links, and resolve the target.
package convert

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"flom/internal/core"
	"flom/internal/odesli"
	"flom/pkg/platform"
)

const (
	// TargetAll is the pseudo-target that emits every available link.
	TargetAll = "all"
	// TargetSonglink is the pseudo-target that emits the Odesli page URL.
	TargetSonglink = "songlink"
)

// Lookup fetches the set of equivalent links for a source URL.
type Lookup interface {
	FetchLinks(ctx context.Context, sourceURL string) (*odesli.Response, error)
}

// TargetOption is one selectable conversion target.
type TargetOption struct {
	Key   string // Odesli platform key, or a pseudo-target
	Label string // human-readable name shown to the user
}

// Selector chooses one target from the available options. Implementations
// block for user input; a cancelled or aborted choice is ErrNoSelection.
type Selector interface {
	Select(options []TargetOption) (TargetOption, error)
}

// Converter resolves source URLs into conversion results.
type Converter struct {
	lookup   Lookup
	selector Selector
	logger   *zap.Logger
}

// New creates a converter.
func New(lookup Lookup, selector Selector, logger *zap.Logger) *Converter {
	return &Converter{
		lookup:   lookup,
		selector: selector,
		logger:   logger,
	}
}

// Convert resolves one source URL. requestedTarget is the --to value or the
// configured default; when empty the selector is consulted. The result slice
// has one entry except for the "all" pseudo-target.
func (c *Converter) Convert(ctx context.Context, rawURL, requestedTarget string) ([]core.ConversionResult, error) {
	if err := core.ValidateURL(rawURL); err != nil {
		return nil, err
	}

	source, err := platform.Detect(rawURL)
	if err != nil {
		switch {
		case errors.Is(err, platform.ErrMalformedURL):
			return nil, fmt.Errorf("%w: %q", core.ErrMalformedInput, rawURL)
		default:
			return nil, fmt.Errorf("%w: %q", core.ErrUnrecognizedPlatform, rawURL)
		}
	}

	c.logger.Debug("Detected source platform",
		zap.String("url", rawURL),
		zap.String("platform", source.Key()))

	resp, err := c.lookup.FetchLinks(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	targetKey, err := c.resolveTargetKey(resp, requestedTarget)
	if err != nil {
		return nil, err
	}

	switch targetKey {
	case TargetAll:
		return c.convertAll(resp, rawURL, source)
	case TargetSonglink:
		return []core.ConversionResult{{
			SourceURL:      rawURL,
			TargetURL:      resp.PageURL,
			SourcePlatform: source.Key(),
			TargetPlatform: TargetSonglink,
		}}, nil
	default:
		result, err := buildResult(resp, rawURL, source, targetKey)
		if err != nil {
			return nil, err
		}
		return []core.ConversionResult{result}, nil
	}
}

// resolveTargetKey normalizes an explicit target or asks the selector.
func (c *Converter) resolveTargetKey(resp *odesli.Response, requested string) (string, error) {
	if requested != "" {
		normalized := strings.ToLower(strings.TrimSpace(requested))
		if normalized == TargetAll || normalized == TargetSonglink {
			return normalized, nil
		}
		p, ok := platform.ParseTarget(requested)
		if !ok {
			return "", fmt.Errorf("%w: unknown target %q", core.ErrMalformedInput, requested)
		}
		return p.Key(), nil
	}

	options := availableTargets(resp)
	options = append(options,
		TargetOption{Key: TargetAll, Label: "All available"},
		TargetOption{Key: TargetSonglink, Label: "Songlink page"},
	)

	chosen, err := c.selector.Select(options)
	if err != nil {
		return "", err
	}
	return chosen.Key, nil
}

// availableTargets lists the platforms present in the response in the fixed
// enumeration order, followed by any keys outside the supported set.
func availableTargets(resp *odesli.Response) []TargetOption {
	var options []TargetOption
	seen := make(map[string]bool, len(resp.LinksByPlatform))

	for _, p := range platform.All() {
		if _, ok := resp.LinksByPlatform[p.Key()]; ok {
			options = append(options, TargetOption{Key: p.Key(), Label: p.DisplayName()})
			seen[p.Key()] = true
		}
	}

	var extras []string
	for key := range resp.LinksByPlatform {
		if !seen[key] {
			extras = append(extras, key)
		}
	}
	sort.Strings(extras)
	for _, key := range extras {
		options = append(options, TargetOption{Key: key, Label: key})
	}

	return options
}

// convertAll emits one result per available link, in stable order.
func (c *Converter) convertAll(resp *odesli.Response, rawURL string, source platform.Platform) ([]core.ConversionResult, error) {
	targets := availableTargets(resp)
	results := make([]core.ConversionResult, 0, len(targets))
	for _, target := range targets {
		result, err := buildResult(resp, rawURL, source, target.Key)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}

// buildResult assembles the result for one target key from the lookup
// response. A target absent from the link set is an explicit failure, never a
// fallback.
func buildResult(resp *odesli.Response, rawURL string, source platform.Platform, targetKey string) (core.ConversionResult, error) {
	link, ok := resp.LinksByPlatform[targetKey]
	if !ok {
		return core.ConversionResult{}, fmt.Errorf("%w: %s", core.ErrTargetUnavailable, targetKey)
	}

	result := core.ConversionResult{
		SourceURL:      rawURL,
		TargetURL:      link.URL,
		TargetPlatform: targetKey,
	}

	if sourceEntity, ok := resp.EntitiesByUniqueID[resp.EntityUniqueID]; ok {
		result.SourceInfo = entityToMedia(sourceEntity)
		result.SourcePlatform = sourceEntity.APIProvider
	}
	if result.SourcePlatform == "" {
		result.SourcePlatform = inferSourcePlatform(resp, rawURL)
	}
	if result.SourcePlatform == "" && source != platform.Unknown {
		result.SourcePlatform = source.Key()
	}

	if targetEntity, ok := resp.EntitiesByUniqueID[link.EntityUniqueID]; ok {
		result.TargetInfo = entityToMedia(targetEntity)
	}

	return result, nil
}

func entityToMedia(entity odesli.Entity) *core.MediaInfo {
	return &core.MediaInfo{
		Title:  entity.Title,
		Artist: entity.ArtistName,
		Album:  entity.AlbumName,
	}
}

// inferSourcePlatform finds the platform whose link equals the input URL.
func inferSourcePlatform(resp *odesli.Response, rawURL string) string {
	for key, link := range resp.LinksByPlatform {
		if link.URL == rawURL {
			return key
		}
	}
	return ""
}
