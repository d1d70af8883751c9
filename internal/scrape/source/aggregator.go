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
	AggregatorURL      = "https://www.buddy4study.com/scholarships"
	aggregatorName     = "buddy4study"
	aggregatorProvider = "Buddy4Study"
)

// selectorSet describes where each field lives inside one listing block.
type selectorSet struct {
	Block       string
	Title       string
	Provider    string
	Amount      string
	Deadline    string
	Link        string
	Eligibility string
}

var aggregatorSelectors = selectorSet{
	Block:       "div.scholarship-card",
	Title:       ".scholarship-card__title",
	Provider:    ".scholarship-card__provider",
	Amount:      ".scholarship-card__award",
	Deadline:    ".scholarship-card__deadline",
	Link:        "a.scholarship-card__link",
	Eligibility: ".scholarship-card__eligibility",
}

// Aggregator scrapes the commercial scholarship aggregator.
type Aggregator struct {
	fetcher fetch.Fetcher
	listURL string
	log     *zap.Logger
}

// NewAggregator returns the aggregator extractor reading from listURL.
func NewAggregator(f fetch.Fetcher, listURL string, log *zap.Logger) *Aggregator {
	if listURL == "" {
		listURL = AggregatorURL
	}
	return &Aggregator{fetcher: f, listURL: listURL, log: log}
}

func (a *Aggregator) Name() string             { return aggregatorName }
func (a *Aggregator) Tag() model.SourceTag     { return model.SourceAggregator }
func (a *Aggregator) BaseURL() string          { return origin(a.listURL) }
func (a *Aggregator) FallbackProvider() string { return aggregatorProvider }

func (a *Aggregator) FetchFallback() []model.RawListing {
	return copyListings(aggregatorSeed)
}

func (a *Aggregator) FetchLive(ctx context.Context) ([]model.RawListing, error) {
	html, err := a.fetcher.Fetch(ctx, a.listURL)
	if err != nil {
		return nil, eris.Wrap(err, "aggregator: fetch listing page")
	}
	return a.parse(html)
}

func (a *Aggregator) parse(html string) ([]model.RawListing, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, eris.Wrap(err, "aggregator: parse html")
	}

	base := a.BaseURL()
	var out []model.RawListing
	doc.Find(aggregatorSelectors.Block).Each(func(i int, block *goquery.Selection) {
		raw, err := parseBlock(block, aggregatorSelectors, base)
		if err != nil {
			a.log.Warn("Skipping malformed listing block",
				zap.String("source", aggregatorName),
				zap.Int("index", i),
				zap.Error(err),
			)
			return
		}
		out = append(out, raw)
	})
	return out, nil
}

// parseBlock reads one listing block with the given selectors. The title is
// the only required field.
func parseBlock(block *goquery.Selection, sel selectorSet, base string) (model.RawListing, error) {
	title := cleanText(textOf(block, sel.Title))
	if title == "" {
		return model.RawListing{}, eris.New("missing title")
	}

	raw := model.RawListing{
		Title:           title,
		ProviderText:    stripLabel(textOf(block, sel.Provider)),
		AmountText:      stripLabel(textOf(block, sel.Amount)),
		DeadlineText:    stripLabel(textOf(block, sel.Deadline)),
		EligibilityText: stripLabel(textOf(block, sel.Eligibility)),
	}

	// placeholder hrefs ("#", "javascript:") leave Link empty; the
	// normalizer substitutes the source base URL
	if sel.Link != "" {
		if href, ok := block.Find(sel.Link).First().Attr("href"); ok {
			raw.Link = resolveLink(base, href)
		}
	}
	return raw, nil
}

func textOf(block *goquery.Selection, selector string) string {
	if selector == "" {
		return ""
	}
	return block.Find(selector).First().Text()
}

// stripLabel drops a leading "Label:" such as "Deadline:" or "Award:".
func stripLabel(s string) string {
	s = cleanText(s)
	if i := strings.Index(s, ":"); i > 0 && i < 20 && !strings.ContainsAny(s[:i], "0123456789") && !strings.HasPrefix(s[i+1:], "//") {
		return strings.TrimSpace(s[i+1:])
	}
	return s
}
