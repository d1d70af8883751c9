// Package normalize maps raw extractor output onto the canonical listing.
// It is lossy on purpose: long text is cut without error and anything
// missing gets a documented default.
package normalize

import (
	"errors"
	"net/url"
	"strings"
	"time"

	"scholarship-feed/internal/scrape/model"
)

const (
	maxTitle       = 200
	maxProvider    = 100
	maxAmount      = 100
	maxEligibility = 500
)

// ErrEmptyTitle is returned for a listing whose title is blank after trimming.
var ErrEmptyTitle = errors.New("normalize: empty title")

// SourceDefaults holds per-source values used when a listing lacks them.
type SourceDefaults struct {
	Provider string
	BaseURL  string
}

// Normalizer converts RawListing into model.Listing.
type Normalizer struct {
	now      func() time.Time
	defaults map[model.SourceTag]SourceDefaults
}

// New returns a Normalizer. A nil now uses time.Now.
func New(now func() time.Time, defaults map[model.SourceTag]SourceDefaults) *Normalizer {
	if now == nil {
		now = time.Now
	}
	if defaults == nil {
		defaults = map[model.SourceTag]SourceDefaults{}
	}
	return &Normalizer{now: now, defaults: defaults}
}

// Normalize builds the canonical listing for raw as produced by source tag.
func (n *Normalizer) Normalize(raw model.RawListing, tag model.SourceTag) (model.Listing, error) {
	title := truncate(raw.Title, maxTitle)
	if title == "" {
		return model.Listing{}, ErrEmptyTitle
	}

	now := n.now()
	def := n.defaults[tag]

	provider := orDefault(truncate(raw.ProviderText, maxProvider), truncate(def.Provider, maxProvider))
	if provider == "" {
		provider = string(tag)
	}
	eligibility := orDefault(truncate(raw.EligibilityText, maxEligibility), model.DefaultEligibility)

	// classify on the full text, not the truncated copy
	text := raw.Title + " " + raw.EligibilityText

	return model.Listing{
		Title:         title,
		Provider:      provider,
		Amount:        orDefault(truncate(raw.AmountText, maxAmount), model.DefaultAmount),
		Eligibility:   eligibility,
		Deadline:      ParseDeadline(raw.DeadlineText, now),
		Link:          absoluteLink(raw.Link, def.BaseURL),
		Category:      CategoryRules.Classify(text, model.CategoryGeneral),
		Domain:        DomainRules.Classify(text, model.DomainGeneral),
		Trending:      raw.Trending,
		Active:        true,
		Source:        tag,
		ScrapedAt:     now,
		LastScrapedAt: now,
	}, nil
}

// truncate trims s and keeps at most limit runes.
func truncate(s string, limit int) string {
	s = strings.TrimSpace(s)
	if len(s) <= limit {
		return s
	}
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit])
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func absoluteLink(link, base string) string {
	link = strings.TrimSpace(link)
	if link == "" {
		return base
	}
	ref, err := url.Parse(link)
	if err != nil {
		return base
	}
	if ref.IsAbs() || base == "" {
		return ref.String()
	}
	b, err := url.Parse(base)
	if err != nil {
		return ref.String()
	}
	return b.ResolveReference(ref).String()
}
