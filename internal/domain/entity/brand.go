package entity

import (
	"time"
)

type BrandSource string

const (
	SourceFeed   BrandSource = "feed"
	SourceStatic BrandSource = "static"
)

type CategoryAssignment struct {
	Category string `json:"category"`
	Featured bool   `json:"featured"`
	Priority int    `json:"priority"`
	Active   bool   `json:"active"`
}

type TrendingConfig struct {
	Promoted        bool   `json:"promoted"`
	PromotionType   string `json:"promotionType"`
	Priority        int    `json:"priority"`
	CampaignEndDate string `json:"campaignEndDate,omitempty"`
	Active          bool   `json:"active"`
}

type BrandMetadata struct {
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
	TotalProducts int       `json:"totalProducts"`
	AveragePrice  float64   `json:"averagePrice"`
}

// Brand is a tagged union on Source: feed brands carry a FeedDomain and no
// embedded products, static brands carry embedded Products and no feed domain.
// Exactly one of the two holds per brand.
type Brand struct {
	ID         string               `json:"id"`
	Name       string               `json:"name"`
	Tagline    string               `json:"tagline"`
	Story      string               `json:"story"`
	HeroImage  string               `json:"heroImage"`
	Logo       string               `json:"logo,omitempty"`
	Founded    string               `json:"founded,omitempty"`
	Location   string               `json:"location,omitempty"`
	Website    string               `json:"website"`
	Source     BrandSource          `json:"sourceKind"`
	FeedDomain string               `json:"feedDomain,omitempty"`
	PriceRange string               `json:"priceRange"`
	Categories []CategoryAssignment `json:"categories"`
	Trending   TrendingConfig       `json:"trending"`
	Active     bool                 `json:"active"`
	Products   []Product            `json:"products"`
	Metadata   BrandMetadata        `json:"metadata"`
}

// IsLive reports whether the brand's product list is sourced from its feed
// domain instead of the embedded Products slice.
func (b *Brand) IsLive() bool {
	return b.Source == SourceFeed
}

// HasCategory reports whether the brand carries an active assignment for the
// given category.
func (b *Brand) HasCategory(category string) bool {
	for _, cat := range b.Categories {
		if cat.Category == category && cat.Active {
			return true
		}
	}
	return false
}

// CategoryPriority returns the brand's priority within a category, defaulting
// to 999 so unprioritized brands sort last.
func (b *Brand) CategoryPriority(category string) int {
	for _, cat := range b.Categories {
		if cat.Category == category {
			if cat.Priority > 0 {
				return cat.Priority
			}
			return 999
		}
	}
	return 999
}
