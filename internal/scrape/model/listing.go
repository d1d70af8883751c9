package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SourceTag identifies which upstream a listing came from.
type SourceTag string

const (
	SourceAggregator      SourceTag = "aggregator"
	SourceInternshipBoard SourceTag = "internshipBoard"
	SourceGovernment      SourceTag = "government"
)

// RawListing is what an extractor emits before normalization. All text is
// as found on the page (or in the seed list).
type RawListing struct {
	Title           string
	ProviderText    string
	AmountText      string
	EligibilityText string
	DeadlineText    string
	Link            string
	Source          SourceTag
	Trending        bool // first 5 yielded by the source this cycle
}

// Listing is the canonical, persisted catalog entry. (title, provider) is unique.
type Listing struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title         string             `bson:"title" json:"title"`
	Provider      string             `bson:"provider" json:"provider"`
	Amount        string             `bson:"amount" json:"amount"`
	Eligibility   string             `bson:"eligibility" json:"eligibility"`
	Deadline      time.Time          `bson:"deadline" json:"deadline"`
	Link          string             `bson:"link" json:"link"`
	Category      string             `bson:"category" json:"category"`
	Domain        string             `bson:"domain" json:"domain"`
	Trending      bool               `bson:"trending" json:"trending"`
	Active        bool               `bson:"active" json:"active"`
	Source        SourceTag          `bson:"source" json:"source"`
	ScrapedAt     time.Time          `bson:"scrapedAt" json:"scrapedAt"`
	LastScrapedAt time.Time          `bson:"lastScrapedAt" json:"lastScrapedAt"`
}

// Categories a listing may be classified into.
const (
	CategoryWomen       = "Women"
	CategoryPG          = "PG"
	CategoryUG          = "UG"
	CategoryResearch    = "Research"
	CategoryMerit       = "Merit-based"
	CategoryInternship  = "Internship"
	CategoryGeneral     = "General"
	DomainEngineering   = "Engineering"
	DomainMedical       = "Medical"
	DomainScience       = "Science"
	DomainArts          = "Arts"
	DomainCommerce      = "Commerce"
	DomainGeneral       = "General"
	DefaultAmount       = "Not specified"
	DefaultEligibility  = "Check website for details"
	DefaultDeadlineDays = 60
)
