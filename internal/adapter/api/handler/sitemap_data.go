package handler

// The sitemap is generated from this build-time demo table, not from the
// session store or live feeds. It intentionally diverges from the brand
// registry; see DESIGN.md for the rationale behind keeping it isolated here.

type demoProduct struct {
	Title string
	Model string
}

type demoBrand struct {
	ID       string
	Name     string
	Products []demoProduct
}

var sitemapBrands = []demoBrand{
	{
		ID:   "cncpts",
		Name: "CNCPTS",
		Products: []demoProduct{
			{Title: "Nike Pegasus Premium", Model: "Anthracite/Pure Platinum/Ashen Slate"},
			{Title: "Air Jordan 3 Retro", Model: "White/Metallic Silver"},
			{Title: "Air Jordan 3 Retro Kids", Model: "White/Metallic Silver"},
			{Title: "Boy Smells Ash", Model: "Woody/Earthy"},
			{Title: "Market Bubble Letter T-Shirt", Model: "White"},
			{Title: "Market Racing Logo Sweatpants", Model: "Ash"},
			{Title: "1017 ALYX 9SM Black Cotton D Pant", Model: "Black"},
			{Title: "Market Exotic Automobile Tee", Model: "Black"},
			{Title: "Nike SB Zoom Blazer Low Pro GT", Model: "Black/Anthracite"},
			{Title: "Dime Space Turkey T-Shirt", Model: "Black"},
			{Title: "Carpet Company Cargo Sweatpants", Model: "Black"},
			{Title: "Comme Des Garcons PLAY Converse Chuck Taylor", Model: "Grey"},
		},
	},
	{
		ID:   "everlane",
		Name: "Everlane",
		Products: []demoProduct{
			{Title: "The Lace Trim Caftan Dress", Model: "White"},
			{Title: "The Gauze Smock Dress", Model: "White Mazarine Blue"},
			{Title: "The Gauze Mini Tiered Dress", Model: "Soft Cobalt Floral"},
			{Title: "The V-Neck Dress", Model: "SoftLuxe Banana Crepe"},
			{Title: "The Eyelet Midi Dress", Model: "Bone"},
			{Title: "The Gauze Smock Dress", Model: "Navy"},
		},
	},
	{
		ID:   "daniel-wellington",
		Name: "Daniel Wellington",
		Products: []demoProduct{
			{Title: "Classic Petite Melrose", Model: "Rose Gold 32mm"},
			{Title: "Classic Sheffield", Model: "Silver 40mm"},
		},
	},
	{
		ID:   "bebe",
		Name: "bebe",
		Products: []demoProduct{
			{Title: "Ombre Chiffon Cowl Dress", Model: "Brown White"},
			{Title: "Ombre Chiffon Cowl Dress", Model: "Purple Pink"},
			{Title: "Ombre Chiffon Cowl Dress", Model: "Black Red"},
			{Title: "3D Floral Strapless Gown", Model: "Black"},
			{Title: "Sleeveless Pleated Dress", Model: "Royal"},
			{Title: "Light Weight Ruffle Detail Denim Dress", Model: "Light Blue Wash"},
		},
	},
	{
		ID:   "lululemon",
		Name: "Lululemon",
		Products: []demoProduct{
			{Title: "Align High-Rise Pant", Model: "Black Size 6"},
			{Title: "Everywhere Belt Bag", Model: "Cayenne"},
		},
	},
	{
		ID:   "levis-premium",
		Name: "Levi's Premium",
		Products: []demoProduct{
			{Title: "511™ SLIM FIT JEANS", Model: "Black Denim 31x32"},
			{Title: "TRUCKER JACKET", Model: "Vintage Khaki"},
			{Title: "505™ REGULAR FIT JEANS", Model: "Black Denim"},
			{Title: "XX TAPERED TECH CHINO PANTS", Model: "Charcoal Gray"},
			{Title: "CLASSIC FIT CREWNECK T-SHIRT", Model: "Navy Blue"},
			{Title: "BATWING LOGO T-SHIRT", Model: "White"},
		},
	},
}
