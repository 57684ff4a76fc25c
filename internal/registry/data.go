package registry

import (
	"time"

	"threadline/internal/domain/entity"
	"threadline/pkg/slug"
)

var seededAt = time.Date(2025, 1, 5, 10, 0, 0, 0, time.UTC)

// defaultBrands is the built-in brand database. Feed brands list no embedded
// products; their catalogs are pulled from the merchant feed per request.
var defaultBrands = []entity.Brand{
	{
		ID:         "bebe",
		Name:       "bebe",
		Tagline:    "Chic & Contemporary Clothing",
		Story:      "bebe offers contemporary fashion for confident women. From statement dresses to everyday essentials, we create pieces that celebrate femininity and style.",
		HeroImage:  "https://ext.same-assets.com/2255372474/3029823999.jpeg",
		Website:    "https://www.bebe.com",
		Source:     entity.SourceFeed,
		FeedDomain: "www.bebe.com",
		Founded:    "1976",
		Location:   "San Francisco, CA",
		PriceRange: "mid",
		Categories: []entity.CategoryAssignment{
			{Category: "fashion", Featured: true, Priority: 1, Active: true},
		},
		Trending: entity.TrendingConfig{Promoted: true, PromotionType: "featured", Priority: 1, Active: true},
		Active:   true,
		Metadata: entity.BrandMetadata{CreatedAt: seededAt, UpdatedAt: seededAt},
	},
	{
		ID:         "daniel-wellington",
		Name:       "Daniel Wellington",
		Tagline:    "Timeless Luxury Watches",
		Story:      "Daniel Wellington creates classic and timeless watches with a Scandinavian design aesthetic. Our watches combine minimalist style with premium materials.",
		HeroImage:  "https://ext.same-assets.com/414496998/1760714005.jpeg",
		Website:    "https://www.danielwellington.com",
		Source:     entity.SourceFeed,
		FeedDomain: "www.danielwellington.com",
		Founded:    "2011",
		Location:   "Stockholm, Sweden",
		PriceRange: "mid",
		Categories: []entity.CategoryAssignment{
			{Category: "watches", Featured: true, Priority: 1, Active: true},
		},
		Trending: entity.TrendingConfig{Promoted: true, PromotionType: "paid", Priority: 2, Active: true},
		Active:   true,
		Metadata: entity.BrandMetadata{CreatedAt: seededAt, UpdatedAt: seededAt},
	},
	{
		ID:         "triwa",
		Name:       "TRIWA",
		Tagline:    "Time for Oceans - Sustainable Watches",
		Story:      "TRIWA creates sustainable watches that boldly champion awareness and change, driven by our unwavering commitment to bring positive impact to our world. Our Time for Oceans collection features watches made from recycled ocean plastic.",
		HeroImage:  "https://ext.same-assets.com/3339224669/2696985554.jpeg",
		Website:    "https://triwa.com",
		Source:     entity.SourceFeed,
		FeedDomain: "triwa.com",
		Founded:    "2007",
		Location:   "Stockholm, Sweden",
		PriceRange: "mid",
		Categories: []entity.CategoryAssignment{
			{Category: "watches", Featured: true, Priority: 2, Active: true},
		},
		Trending: entity.TrendingConfig{Promoted: true, PromotionType: "exclusive", Priority: 3, CampaignEndDate: "2025-02-01", Active: true},
		Active:   true,
		Metadata: entity.BrandMetadata{CreatedAt: seededAt, UpdatedAt: seededAt},
	},
	{
		ID:         "undone",
		Name:       "UNDONE",
		Tagline:    "Custom Watches - Your Story, Your Moment",
		Story:      "UNDONE is the world's leading custom watch brand. We believe individuality matters - design your own custom-made watch online today and let your personality shine through with limitless customization possibilities.",
		HeroImage:  "https://ext.same-assets.com/3157802305/2103087309.png",
		Website:    "https://undone.com",
		Source:     entity.SourceFeed,
		FeedDomain: "undone.com",
		Founded:    "2014",
		Location:   "Hong Kong",
		PriceRange: "mid",
		Categories: []entity.CategoryAssignment{
			{Category: "watches", Featured: true, Priority: 3, Active: true},
		},
		Trending: entity.TrendingConfig{Promoted: false, PromotionType: "new", Priority: 4, Active: true},
		Active:   true,
		Metadata: entity.BrandMetadata{CreatedAt: seededAt, UpdatedAt: seededAt},
	},
	{
		ID:         "steve-madden",
		Name:       "Steve Madden",
		Tagline:    "Fashion Footwear & Accessories",
		Story:      "Steve Madden is a leading fashion footwear and accessories brand, offering stylish shoes and bags that blend fashion-forward design with accessible pricing for trend-conscious consumers.",
		HeroImage:  "https://images.unsplash.com/photo-1543163521-1bf539c55dd2?w=1200&h=400&fit=crop&q=80",
		Website:    "https://www.stevemadden.com",
		Source:     entity.SourceFeed,
		FeedDomain: "www.stevemadden.com",
		Founded:    "1990",
		Location:   "New York, NY",
		PriceRange: "mid",
		Categories: []entity.CategoryAssignment{
			{Category: "fashion", Featured: true, Priority: 2, Active: true},
		},
		Trending: entity.TrendingConfig{Promoted: true, PromotionType: "featured", Priority: 5, Active: true},
		Active:   true,
		Metadata: entity.BrandMetadata{CreatedAt: seededAt, UpdatedAt: seededAt},
	},
	{
		ID:         "oh-polly",
		Name:       "Oh Polly",
		Tagline:    "Luxe Party Dresses & Going Out Outfits",
		Story:      "Oh Polly creates luxurious party dresses and going out outfits for confident women. Our designs celebrate femininity with bold cuts, premium fabrics, and attention-grabbing details.",
		HeroImage:  "https://images.unsplash.com/photo-1515372039744-b8f02a3ae446?w=1200&h=400&fit=crop&q=80",
		Website:    "https://www.ohpolly.com",
		Source:     entity.SourceFeed,
		FeedDomain: "www.ohpolly.com",
		Founded:    "2015",
		Location:   "Manchester, UK",
		PriceRange: "mid",
		Categories: []entity.CategoryAssignment{
			{Category: "fashion", Featured: true, Priority: 3, Active: true},
		},
		Trending: entity.TrendingConfig{Promoted: true, PromotionType: "featured", Priority: 6, Active: true},
		Active:   true,
		Metadata: entity.BrandMetadata{CreatedAt: seededAt, UpdatedAt: seededAt},
	},
	{
		ID:         "new-era-cap",
		Name:       "New Era",
		Tagline:    "Official Headwear & Lifestyle Brand",
		Story:      "New Era is the official headwear brand of Major League Baseball and a leading lifestyle brand worldwide. We create premium caps, apparel, and accessories that celebrate sports culture and street style.",
		HeroImage:  "https://images.unsplash.com/photo-1521369909029-2afed882baee?w=1200&h=400&fit=crop&q=80",
		Website:    "https://www.neweracap.com",
		Source:     entity.SourceFeed,
		FeedDomain: "www.neweracap.com",
		Founded:    "1920",
		Location:   "Buffalo, NY",
		PriceRange: "mid",
		Categories: []entity.CategoryAssignment{
			{Category: "fashion", Featured: true, Priority: 4, Active: true},
		},
		Trending: entity.TrendingConfig{Promoted: false, PromotionType: "new", Priority: 7, Active: true},
		Active:   true,
		Metadata: entity.BrandMetadata{CreatedAt: seededAt, UpdatedAt: seededAt},
	},
	{
		ID:         "frankies-bikinis",
		Name:       "Frankie's Bikinis",
		Tagline:    "Dreamy Swimwear & Beach Lifestyle",
		Story:      "Frankie's Bikinis creates dreamy swimwear and beach lifestyle pieces inspired by vintage aesthetics and California culture. Our collections celebrate femininity, adventure, and the endless summer spirit.",
		HeroImage:  "https://images.unsplash.com/photo-1544966503-7cc531c3a4c5?w=1200&h=400&fit=crop&q=80",
		Website:    "https://frankiesbikinis.com",
		Source:     entity.SourceFeed,
		FeedDomain: "frankiesbikinis.com",
		Founded:    "2012",
		Location:   "Malibu, CA",
		PriceRange: "mid",
		Categories: []entity.CategoryAssignment{
			{Category: "fashion", Featured: true, Priority: 5, Active: true},
		},
		Trending: entity.TrendingConfig{Promoted: true, PromotionType: "sale", Priority: 8, Active: true},
		Active:   true,
		Metadata: entity.BrandMetadata{CreatedAt: seededAt, UpdatedAt: seededAt},
	},
	{
		ID:         "unique-vintage",
		Name:       "Unique Vintage",
		Tagline:    "Vintage-Inspired Fashion for Modern Women",
		Story:      "Unique Vintage brings you vintage-inspired fashion that celebrates the glamour and elegance of past decades. Our collections feature retro dresses, accessories, and shoes with modern fits and quality.",
		HeroImage:  "https://images.unsplash.com/photo-1469334031218-e382a71b716b?w=1200&h=400&fit=crop&q=80",
		Website:    "https://www.unique-vintage.com",
		Source:     entity.SourceFeed,
		FeedDomain: "unique-vintage.com",
		Founded:    "2000",
		Location:   "Burbank, CA",
		PriceRange: "mid",
		Categories: []entity.CategoryAssignment{
			{Category: "fashion", Featured: true, Priority: 6, Active: true},
		},
		Trending: entity.TrendingConfig{Promoted: false, PromotionType: "new", Priority: 9, Active: true},
		Active:   true,
		Metadata: entity.BrandMetadata{CreatedAt: seededAt, UpdatedAt: seededAt},
	},
	{
		ID:         "everlane",
		Name:       "Everlane",
		Tagline:    "Modern Essentials, Radical Transparency",
		Story:      "Everlane designs modern essentials with exceptional quality and radical transparency about pricing and production. Timeless pieces made in ethical factories.",
		HeroImage:  "https://images.unsplash.com/photo-1441986300917-64674bd600d8?w=1200&h=400&fit=crop&q=80",
		Website:    "https://www.everlane.com",
		Source:     entity.SourceStatic,
		Founded:    "2010",
		Location:   "San Francisco, CA",
		PriceRange: "mid",
		Categories: []entity.CategoryAssignment{
			{Category: "fashion", Featured: false, Priority: 7, Active: true},
		},
		Trending: entity.TrendingConfig{Promoted: false, PromotionType: "new", Priority: 10, Active: false},
		Active:   true,
		Products: everlaneProducts,
		Metadata: entity.BrandMetadata{CreatedAt: seededAt, UpdatedAt: seededAt, TotalProducts: len(everlaneProducts), AveragePrice: 93},
	},
	{
		ID:         "lululemon",
		Name:       "Lululemon",
		Tagline:    "Technical Athletic Apparel",
		Story:      "Lululemon creates technical athletic apparel for yoga, running, training and most other sweaty pursuits. Premium activewear engineered for performance and comfort.",
		HeroImage:  "https://images.unsplash.com/photo-1506629905607-d9f2e5e78824?w=1200&h=400&fit=crop&q=80",
		Website:    "https://www.lululemon.com",
		Source:     entity.SourceStatic,
		Founded:    "1998",
		Location:   "Vancouver, BC",
		PriceRange: "mid",
		Categories: []entity.CategoryAssignment{
			{Category: "fitness", Featured: true, Priority: 1, Active: true},
		},
		Trending: entity.TrendingConfig{Promoted: false, PromotionType: "new", Priority: 11, Active: false},
		Active:   true,
		Products: lululemonProducts,
		Metadata: entity.BrandMetadata{CreatedAt: seededAt, UpdatedAt: seededAt, TotalProducts: len(lululemonProducts), AveragePrice: 83},
	},
}

var everlaneProducts = []entity.Product{
	{
		ID:       "1",
		Title:    "The Lace Trim Caftan Dress",
		Model:    "White",
		Price:    "$98",
		Images:   []entity.ProductImage{{URL: "https://ext.same-assets.com/1014321061/3842799923.jpeg", Alt: "The Lace Trim Caftan Dress"}},
		Slug:     slug.Make("The Lace Trim Caftan Dress", "White"),
		Category: "fashion",
		Stock:    "In Stock",
	},
	{
		ID:       "2",
		Title:    "The Gauze Smock Dress",
		Model:    "White / Mazarine Blue",
		Price:    "$88",
		Images:   []entity.ProductImage{{URL: "https://ext.same-assets.com/1014321061/3469972426.jpeg", Alt: "The Gauze Smock Dress"}},
		Slug:     slug.Make("The Gauze Smock Dress", "White Mazarine Blue"),
		Category: "fashion",
		Stock:    "In Stock",
	},
	{
		ID:       "3",
		Title:    "The Gauze Mini Tiered Dress",
		Model:    "Soft Cobalt Floral",
		Price:    "$88",
		Images:   []entity.ProductImage{{URL: "https://ext.same-assets.com/1014321061/251136064.png", Alt: "The Gauze Mini Tiered Dress"}},
		Slug:     slug.Make("The Gauze Mini Tiered Dress", "Soft Cobalt Floral"),
		Category: "fashion",
		Stock:    "In Stock",
	},
	{
		ID:       "4",
		Title:    "The Eyelet Midi Dress",
		Model:    "Bone",
		Price:    "$118",
		Images:   []entity.ProductImage{{URL: "https://ext.same-assets.com/1014321061/3759678322.jpeg", Alt: "The Eyelet Midi Dress"}},
		Slug:     slug.Make("The Eyelet Midi Dress", "Bone"),
		Category: "fashion",
		Stock:    "Low Stock",
	},
}

var lululemonProducts = []entity.Product{
	{
		ID:       "1",
		Title:    "Align High-Rise Pant",
		Model:    "Black, Size 6",
		Price:    "$128",
		Images:   []entity.ProductImage{{URL: "https://images.unsplash.com/photo-1506629905607-d9f2e5e78824?w=600&h=600&fit=crop&q=80", Alt: "Align High-Rise Pant"}},
		Slug:     slug.Make("Align High-Rise Pant", "Black Size 6"),
		Category: "fitness",
		Stock:    "In Stock",
	},
	{
		ID:       "2",
		Title:    "Everywhere Belt Bag",
		Model:    "Cayenne",
		Price:    "$38",
		Images:   []entity.ProductImage{{URL: "https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=600&h=600&fit=crop&q=80", Alt: "Everywhere Belt Bag"}},
		Slug:     slug.Make("Everywhere Belt Bag", "Cayenne"),
		Category: "fitness",
		Stock:    "In Stock",
	},
}
