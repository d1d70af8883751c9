// Package source holds one extractor per upstream. Every extractor pairs a
// live scrape with a static seed list; Extract decides which one is used.
package source

import (
	"context"
	"errors"
	"net/url"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"scholarship-feed/internal/scrape/model"
)

// TrendingCount is how many of a source's first listings are flagged trending.
const TrendingCount = 5

// ErrNoLiveSurface marks a source that is never scraped live.
var ErrNoLiveSurface = errors.New("source: no stable live scraping surface")

// Provider is one upstream with its fallback data.
type Provider interface {
	Name() string
	Tag() model.SourceTag
	// BaseURL is used to resolve relative links and as the link of last resort.
	BaseURL() string
	// FallbackProvider is the provider name used when a listing has none.
	FallbackProvider() string
	FetchLive(ctx context.Context) ([]model.RawListing, error)
	FetchFallback() []model.RawListing
}

// Result is what one source contributed to a cycle.
type Result struct {
	Source   string
	Tag      model.SourceTag
	Listings []model.RawListing
	Fallback bool
	Reason   string // why the fallback was used; empty for live data
}

// Extract runs the live scrape and substitutes the seed list when the scrape
// fails or yields nothing. It never returns an empty result unless the seed
// list itself is empty.
func Extract(ctx context.Context, p Provider, log *zap.Logger) Result {
	res := Result{Source: p.Name(), Tag: p.Tag()}

	live, err := fetchLive(ctx, p)
	switch {
	case errors.Is(err, ErrNoLiveSurface):
		log.Info("Source has no live surface, serving seed list", zap.String("source", p.Name()))
		res.Fallback, res.Reason = true, "no live surface"
	case err != nil:
		log.Warn("Live extraction failed, serving seed list",
			zap.String("source", p.Name()),
			zap.Error(err),
		)
		res.Fallback, res.Reason = true, err.Error()
	case len(live) == 0:
		log.Warn("Live extraction yielded no listings, serving seed list", zap.String("source", p.Name()))
		res.Fallback, res.Reason = true, "no listings parsed"
	default:
		res.Listings = live
	}

	if res.Fallback {
		res.Listings = p.FetchFallback()
	}

	for i := range res.Listings {
		res.Listings[i].Source = p.Tag()
		res.Listings[i].Trending = i < TrendingCount
	}

	log.Info("Source extracted",
		zap.String("source", p.Name()),
		zap.Int("count", len(res.Listings)),
		zap.Bool("fallback", res.Fallback),
	)
	return res
}

// fetchLive turns a panic in the live scrape into an error so the seed list
// is still served.
func fetchLive(ctx context.Context, p Provider) (live []model.RawListing, err error) {
	defer func() {
		if r := recover(); r != nil {
			live, err = nil, eris.Errorf("source: live extraction panicked: %v", r)
		}
	}()
	return p.FetchLive(ctx)
}

// resolveLink makes href absolute against base. Unparseable hrefs yield "".
func resolveLink(base, href string) string {
	href = strings.TrimSpace(href)
	if href == "" || strings.HasPrefix(href, "#") || strings.HasPrefix(href, "javascript:") {
		return ""
	}
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	ref.Fragment = ""
	if ref.IsAbs() {
		return ref.String()
	}
	b, err := url.Parse(base)
	if err != nil {
		return ""
	}
	return b.ResolveReference(ref).String()
}

// origin returns scheme://host of raw.
func origin(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return raw
	}
	return u.Scheme + "://" + u.Host
}

// cleanText collapses internal whitespace runs.
func cleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// copyListings returns a fresh copy so callers can mutate the result.
func copyListings(in []model.RawListing) []model.RawListing {
	out := make([]model.RawListing, len(in))
	copy(out, in)
	return out
}
