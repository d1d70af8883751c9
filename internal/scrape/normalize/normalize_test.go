package normalize

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scholarship-feed/internal/scrape/model"
)

var fixedNow = time.Date(2025, time.October, 1, 9, 30, 0, 0, time.UTC)

func newTestNormalizer() *Normalizer {
	return New(func() time.Time { return fixedNow }, map[model.SourceTag]SourceDefaults{
		model.SourceAggregator: {Provider: "Buddy4Study", BaseURL: "https://www.buddy4study.com"},
		model.SourceGovernment: {Provider: "National Scholarship Portal", BaseURL: "https://scholarships.gov.in"},
	})
}

func TestNormalize_PragatiExample(t *testing.T) {
	n := newTestNormalizer()

	got, err := n.Normalize(model.RawListing{
		Title:           "AICTE Pragati Scholarship for Girl Students",
		EligibilityText: "Girl students pursuing technical degree courses",
		DeadlineText:    "",
	}, model.SourceGovernment)
	require.NoError(t, err)

	assert.Equal(t, model.CategoryWomen, got.Category)
	assert.Equal(t, model.DomainEngineering, got.Domain)
	assert.Equal(t, fixedNow.AddDate(0, 0, 60), got.Deadline)
}

func TestNormalize_Defaults(t *testing.T) {
	n := newTestNormalizer()

	got, err := n.Normalize(model.RawListing{Title: "  Some Award  "}, model.SourceAggregator)
	require.NoError(t, err)

	assert.Equal(t, "Some Award", got.Title)
	assert.Equal(t, "Buddy4Study", got.Provider)
	assert.Equal(t, model.DefaultAmount, got.Amount)
	assert.Equal(t, model.DefaultEligibility, got.Eligibility)
	assert.Equal(t, "https://www.buddy4study.com", got.Link)
	assert.Equal(t, model.CategoryGeneral, got.Category)
	assert.Equal(t, model.DomainGeneral, got.Domain)
	assert.True(t, got.Active)
	assert.Equal(t, model.SourceAggregator, got.Source)
	assert.Equal(t, fixedNow, got.ScrapedAt)
	assert.Equal(t, fixedNow, got.LastScrapedAt)
}

func TestNormalize_UnknownSourceProvider(t *testing.T) {
	got, err := New(nil, nil).Normalize(model.RawListing{Title: "x"}, model.SourceInternshipBoard)
	require.NoError(t, err)
	assert.Equal(t, string(model.SourceInternshipBoard), got.Provider)
}

func TestNormalize_EmptyTitle(t *testing.T) {
	_, err := newTestNormalizer().Normalize(model.RawListing{Title: "   "}, model.SourceAggregator)
	assert.ErrorIs(t, err, ErrEmptyTitle)
}

func TestNormalize_Truncation(t *testing.T) {
	n := newTestNormalizer()

	got, err := n.Normalize(model.RawListing{
		Title:           strings.Repeat("a", 250),
		ProviderText:    strings.Repeat("p", 130),
		AmountText:      strings.Repeat("₹", 120),
		EligibilityText: strings.Repeat("e", 600),
	}, model.SourceAggregator)
	require.NoError(t, err)

	assert.Len(t, got.Title, 200)
	assert.Len(t, got.Provider, 100)
	assert.Equal(t, 100, len([]rune(got.Amount)))
	assert.Len(t, got.Eligibility, 500)
}

func TestNormalize_RelativeLink(t *testing.T) {
	got, err := newTestNormalizer().Normalize(model.RawListing{Title: "t", Link: "/page/t"}, model.SourceAggregator)
	require.NoError(t, err)
	assert.Equal(t, "https://www.buddy4study.com/page/t", got.Link)
}

func TestNormalize_KeepsTrending(t *testing.T) {
	got, err := newTestNormalizer().Normalize(model.RawListing{Title: "t", Trending: true}, model.SourceAggregator)
	require.NoError(t, err)
	assert.True(t, got.Trending)
}

func TestParseDeadline(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{"", fixedNow.AddDate(0, 0, 60)},
		{"   ", fixedNow.AddDate(0, 0, 60)},
		{"15 days left", fixedNow.AddDate(0, 0, 15)},
		{"1 day", fixedNow.AddDate(0, 0, 1)},
		{"31 Oct 2025", time.Date(2025, time.October, 31, 0, 0, 0, 0, time.UTC)},
		{"Apply by 5th Sept, 2025", time.Date(2025, time.September, 5, 0, 0, 0, 0, time.UTC)},
		{"Deadline 12 December 2025", time.Date(2025, time.December, 12, 0, 0, 0, 0, time.UTC)},
		{"2025-12-20", time.Date(2025, time.December, 20, 0, 0, 0, 0, time.UTC)},
		{"05/12/2025", time.Date(2025, time.December, 5, 0, 0, 0, 0, time.UTC)},
		{"15/12/2025", time.Date(2025, time.December, 15, 0, 0, 0, 0, time.UTC)},
		{"31-12-2025", time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC)},
		{"31.12.2025", time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC)},
		{"November 30", time.Date(2025, time.November, 30, 0, 0, 0, 0, time.UTC)},
		{"Dec 15", time.Date(2025, time.December, 15, 0, 0, 0, 0, time.UTC)},
		{"Sep 15", time.Date(2026, time.September, 15, 0, 0, 0, 0, time.UTC)}, // already passed this year
		{"Always open", fixedNow.AddDate(0, 0, 60)},
		{"to be announced", fixedNow.AddDate(0, 0, 60)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseDeadline(tt.in, fixedNow))
		})
	}
}

func TestNormalize_YearlessDeadlineIsAbsolute(t *testing.T) {
	got, err := newTestNormalizer().Normalize(model.RawListing{Title: "Merit award", DeadlineText: "Nov 30"}, model.SourceAggregator)
	require.NoError(t, err)
	assert.Equal(t, 2025, got.Deadline.Year())
	assert.False(t, got.Deadline.Before(fixedNow))
}

func TestNextOccurrence(t *testing.T) {
	assert.Equal(t, time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC), nextOccurrence(time.October, 1, fixedNow))
	assert.Equal(t, time.Date(2026, time.September, 30, 0, 0, 0, 0, time.UTC), nextOccurrence(time.September, 30, fixedNow))
}

func TestParseDeadline_DateBeatsDays(t *testing.T) {
	// both patterns present: the absolute date is tried first
	got := ParseDeadline("Closes 30 Nov 2025 (60 days left)", fixedNow)
	assert.Equal(t, time.Date(2025, time.November, 30, 0, 0, 0, 0, time.UTC), got)
}
