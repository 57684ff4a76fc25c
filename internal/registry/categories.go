package registry

// CategoryInfo is the display configuration for a storefront category page.
type CategoryInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	HeroImage   string `json:"heroImage"`
}

// Categories lists the storefront categories in display order.
var Categories = []string{"fashion", "watches", "fitness", "beauty"}

var CategoryConfig = map[string]CategoryInfo{
	"fashion": {
		Name:        "Fashion",
		Description: "Contemporary fashion for confident individuals",
		HeroImage:   "https://images.unsplash.com/photo-1441986300917-64674bd600d8?w=1200&h=400&fit=crop&q=80",
	},
	"watches": {
		Name:        "Watches",
		Description: "Timepieces that tell your story",
		HeroImage:   "https://images.unsplash.com/photo-1524592094714-0f0654e20314?w=1200&h=400&fit=crop&q=80",
	},
	"fitness": {
		Name:        "Fitness",
		Description: "Premium activewear for every movement",
		HeroImage:   "https://images.unsplash.com/photo-1506629905607-d9f2e5e78824?w=1200&h=400&fit=crop&q=80",
	},
	"beauty": {
		Name:        "Beauty",
		Description: "Beauty essentials for your daily routine",
		HeroImage:   "https://images.unsplash.com/photo-1596462502278-27bfdc403348?w=1200&h=400&fit=crop&q=80",
	},
}

// PromotionStyle drives how a trending badge renders.
type PromotionStyle struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

const MaxTrendingBrands = 12

var PromotionStyles = map[string]PromotionStyle{
	"paid":      {Name: "Paid Promotion", Color: "#FFD700"},
	"featured":  {Name: "Featured", Color: "#FF6B6B"},
	"new":       {Name: "New", Color: "#4ECDC4"},
	"sale":      {Name: "Sale", Color: "#FF8B5A"},
	"exclusive": {Name: "Exclusive", Color: "#845EC2"},
}
