package source

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"scholarship-feed/internal/scrape/fetch"
	"scholarship-feed/internal/scrape/model"
)

const (
	InternshipBoardURL = "https://internshala.com/internships"
	internshipName     = "internshala"
	internshipProvider = "Internshala"
)

// The board has no eligibility text; duration and location stand in for it.
var internshipSelectors = selectorSet{
	Block:    "div.individual_internship",
	Title:    ".job-internship-name",
	Provider: ".company-name",
	Amount:   ".stipend",
	Deadline: ".apply-by",
	Link:     "a.job-title-href",
}

const (
	internshipDuration = ".duration"
	internshipLocation = ".locations"
)

// InternshipBoard scrapes the internship listing board.
type InternshipBoard struct {
	fetcher fetch.Fetcher
	listURL string
	log     *zap.Logger
}

func NewInternshipBoard(f fetch.Fetcher, listURL string, log *zap.Logger) *InternshipBoard {
	if listURL == "" {
		listURL = InternshipBoardURL
	}
	return &InternshipBoard{fetcher: f, listURL: listURL, log: log}
}

func (b *InternshipBoard) Name() string             { return internshipName }
func (b *InternshipBoard) Tag() model.SourceTag     { return model.SourceInternshipBoard }
func (b *InternshipBoard) BaseURL() string          { return origin(b.listURL) }
func (b *InternshipBoard) FallbackProvider() string { return internshipProvider }

func (b *InternshipBoard) FetchFallback() []model.RawListing {
	return copyListings(internshipSeed)
}

func (b *InternshipBoard) FetchLive(ctx context.Context) ([]model.RawListing, error) {
	html, err := b.fetcher.Fetch(ctx, b.listURL)
	if err != nil {
		return nil, eris.Wrap(err, "internship: fetch listing page")
	}
	return b.parse(html)
}

func (b *InternshipBoard) parse(html string) ([]model.RawListing, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, eris.Wrap(err, "internship: parse html")
	}

	base := b.BaseURL()
	var out []model.RawListing
	doc.Find(internshipSelectors.Block).Each(func(i int, block *goquery.Selection) {
		raw, err := parseBlock(block, internshipSelectors, base)
		if err != nil {
			b.log.Warn("Skipping malformed listing block",
				zap.String("source", internshipName),
				zap.Int("index", i),
				zap.Error(err),
			)
			return
		}
		raw.EligibilityText = durationAndLocation(
			cleanText(textOf(block, internshipDuration)),
			cleanText(textOf(block, internshipLocation)),
		)
		out = append(out, raw)
	})
	return out, nil
}

func durationAndLocation(duration, location string) string {
	var parts []string
	if duration != "" {
		parts = append(parts, "Duration: "+duration)
	}
	if location != "" {
		parts = append(parts, "Location: "+location)
	}
	return strings.Join(parts, " | ")
}
