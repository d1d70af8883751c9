package normalize

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"scholarship-feed/internal/scrape/model"
)

var (
	dayMonthYearRe = regexp.MustCompile(`(?i)\b(\d{1,2})(?:st|nd|rd|th)?\s+([a-z]{3,9})\.?,?\s+(\d{4})\b`)
	daysRe         = regexp.MustCompile(`(?i)\b(\d{1,4})\s*days?\b`)
	numericDateRe  = regexp.MustCompile(`^(\d{1,2})[-.](\d{1,2})[-.](\d{4})$`)
)

// ParseDeadline turns free deadline text into an absolute time. The stages
// run from strictest to most permissive:
//
//  1. "D Mon YYYY" anywhere in the text ("Apply by 5th Sept, 2025")
//  2. "N days" relative to now ("15 days left")
//  3. any format dateparse understands ("2025-12-20", "05/12/2025"), numeric
//     dates read day first; a date without a year is its next occurrence
//  4. now + 60 days
func ParseDeadline(text string, now time.Time) time.Time {
	text = strings.TrimSpace(text)
	if text == "" {
		return defaultDeadline(now)
	}

	if t, ok := parseDayMonthYear(text); ok {
		return t
	}

	if m := daysRe.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			return now.AddDate(0, 0, n)
		}
	}

	if t, ok := parseAny(text, now); ok {
		return t
	}

	return defaultDeadline(now)
}

func parseDayMonthYear(text string) (time.Time, bool) {
	m := dayMonthYearRe.FindStringSubmatch(text)
	if m == nil {
		return time.Time{}, false
	}
	month := strings.ToUpper(m[2][:1]) + strings.ToLower(m[2][1:3])
	t, err := time.ParseInLocation("2 Jan 2006", m[1]+" "+month+" "+m[3], time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func parseAny(text string, now time.Time) (time.Time, bool) {
	// dateparse only accepts dd/mm/yyyy with slashes
	text = numericDateRe.ReplaceAllString(text, "$1/$2/$3")

	t, err := dateparse.ParseIn(text, time.UTC, dateparse.PreferMonthFirst(false))
	if err != nil || t.IsZero() {
		return time.Time{}, false
	}
	if t.Year() == 0 {
		return nextOccurrence(t.Month(), t.Day(), now), true
	}
	return t, true
}

// nextOccurrence is month/day in now's year, or the following year when that
// day has already passed.
func nextOccurrence(month time.Month, day int, now time.Time) time.Time {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(now.Year(), month, day, 0, 0, 0, 0, time.UTC)
	if t.Before(today) {
		t = time.Date(now.Year()+1, month, day, 0, 0, 0, 0, time.UTC)
	}
	return t
}

func defaultDeadline(now time.Time) time.Time {
	return now.AddDate(0, 0, model.DefaultDeadlineDays)
}
