package normalize

import (
	"regexp"
	"strings"

	"scholarship-feed/internal/scrape/model"
)

// Rule assigns Label when Match reports true.
type Rule struct {
	Label string
	Match func(text string) bool
}

// Rules is evaluated top to bottom; the first match wins.
type Rules []Rule

// Classify returns the label of the first matching rule, or fallback.
func (r Rules) Classify(text, fallback string) string {
	lower := strings.ToLower(text)
	for _, rule := range r {
		if rule.Match(lower) {
			return rule.Label
		}
	}
	return fallback
}

// keywords matches any of the given words at a word start. A trailing "*"
// allows any suffix ("girl*" matches "girls"); otherwise the word must end
// there too, so "pg" does not match "upgrade".
func keywords(words ...string) func(string) bool {
	parts := make([]string, 0, len(words))
	for _, w := range words {
		if stem, ok := strings.CutSuffix(w, "*"); ok {
			parts = append(parts, regexp.QuoteMeta(stem)+`\w*`)
			continue
		}
		parts = append(parts, regexp.QuoteMeta(w)+`s?`)
	}
	re := regexp.MustCompile(`\b(?:` + strings.Join(parts, "|") + `)\b`)
	return re.MatchString
}

// CategoryRules is the category priority order. "PG scholarship for women"
// is Women, not PG.
var CategoryRules = Rules{
	{model.CategoryWomen, keywords("women", "woman", "girl*", "female")},
	{model.CategoryPG, keywords("postgraduate", "post-graduate", "post graduate", "pg", "master*")},
	{model.CategoryUG, keywords("undergraduate", "under-graduate", "ug", "bachelor*")},
	{model.CategoryResearch, keywords("research*", "phd", "ph.d")},
	{model.CategoryMerit, keywords("merit*")},
	{model.CategoryInternship, keywords("intern", "internship")},
}

// DomainRules is the subject-area priority order. Design sits last so an
// engineering listing that mentions UI stays Engineering.
var DomainRules = Rules{
	{model.DomainEngineering, keywords("engineering", "engineer", "tech*", "iit")},
	{model.DomainMedical, keywords("medical", "medicine", "mbbs", "health*", "nursing")},
	{model.DomainScience, keywords("science*", "research*")},
	{model.DomainArts, keywords("art", "humanities")},
	{model.DomainCommerce, keywords("commerce", "finance*", "financial", "mba")},
	{model.DomainArts, keywords("design*", "ui", "ux")},
}
