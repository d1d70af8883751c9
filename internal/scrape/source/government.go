package source

import (
	"context"

	"scholarship-feed/internal/scrape/model"
)

const (
	GovernmentPortalURL = "https://scholarships.gov.in"
	governmentName      = "nsp"
	governmentProvider  = "National Scholarship Portal"
)

// GovernmentPortal serves the curated scheme list. The portal renders its
// scheme tables client-side behind a session, so nothing is fetched live.
type GovernmentPortal struct{}

func NewGovernmentPortal() *GovernmentPortal { return &GovernmentPortal{} }

func (GovernmentPortal) Name() string             { return governmentName }
func (GovernmentPortal) Tag() model.SourceTag     { return model.SourceGovernment }
func (GovernmentPortal) BaseURL() string          { return GovernmentPortalURL }
func (GovernmentPortal) FallbackProvider() string { return governmentProvider }

func (GovernmentPortal) FetchLive(context.Context) ([]model.RawListing, error) {
	return nil, ErrNoLiveSurface
}

func (GovernmentPortal) FetchFallback() []model.RawListing {
	return copyListings(governmentSeed)
}
