package shopify

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"threadline/internal/domain/entity"
)

const (
	newMarkerTag  = "item_badge_text_New"
	saleMarkerTag = "autotag_sale"

	categoryTagPrefix = "category:"
	defaultCategory   = "fashion"
)

var htmlTagPattern = regexp.MustCompile(`<[^>]*>`)

// Normalize maps one raw feed entry into the canonical product shape plus the
// detail-page bundle. Callers run filterSellable first, so at least one
// variant is expected; a missing variant degrades to a "$0" price rather than
// panicking.
func Normalize(p Product, domain string) entity.ProductDetail {
	basePrice := "0"
	comparePrice := ""
	if len(p.Variants) > 0 {
		basePrice = p.Variants[0].Price
		comparePrice = p.Variants[0].CompareAtPrice
	}

	images := make([]entity.ProductImage, 0, len(p.Images))
	for _, img := range p.Images {
		alt := img.Alt
		if alt == "" {
			alt = p.Title
		}
		images = append(images, entity.ProductImage{URL: img.Src, Alt: alt})
	}

	originalPrice := ""
	if comparePrice != "" {
		originalPrice = "$" + comparePrice
	}

	return entity.ProductDetail{
		Product: entity.Product{
			ID:            fmt.Sprintf("%d", p.ID),
			Title:         p.Title,
			Model:         p.ProductType,
			Price:         "$" + basePrice,
			OriginalPrice: originalPrice,
			Images:        images,
			Tag:           extractTag(p.Tags),
			Stock:         stockLabel(p.Variants),
			ExternalURL:   fmt.Sprintf("https://%s/products/%s", domain, p.Handle),
			Slug:          p.Handle,
			Category:      extractCategory(p.Tags),
		},
		Description: CleanDescription(p.BodyHTML),
		Options:     normalizeOptions(p.Options),
		Variants:    normalizeVariants(p.Variants),
	}
}

// FetchBrandProducts pulls the merchant feed and normalizes every surviving
// entry. Filtering happens in FetchProducts, so normalization can rely on
// each entry carrying at least one variant.
func (c *Client) FetchBrandProducts(ctx context.Context, domain string) []entity.ProductDetail {
	raw := c.FetchProducts(ctx, domain)
	out := make([]entity.ProductDetail, 0, len(raw))
	for _, p := range raw {
		out = append(out, Normalize(p, domain))
	}
	return out
}

func extractCategory(tags []string) string {
	for _, tag := range tags {
		if strings.HasPrefix(tag, categoryTagPrefix) {
			return strings.TrimPrefix(tag, categoryTagPrefix)
		}
	}
	return defaultCategory
}

// extractTag picks the promotional badge; the "new" marker wins over "sale".
func extractTag(tags []string) string {
	for _, tag := range tags {
		if tag == newMarkerTag {
			return "New"
		}
	}
	for _, tag := range tags {
		if tag == saleMarkerTag {
			return "Sale"
		}
	}
	return ""
}

// stockLabel derives a display label from variant availability. The feed
// carries no real quantity data, so this is a heuristic: fewer than 30% of
// variants available (strictly less) reads as low stock.
func stockLabel(variants []Variant) string {
	available := 0
	for _, v := range variants {
		if v.Available {
			available++
		}
	}

	if available == 0 {
		return "Sold Out"
	}
	if float64(available) < float64(len(variants))*0.3 {
		return "Low Stock"
	}
	return "In Stock"
}

// CleanDescription strips HTML from a feed description using a fixed set of
// tag and entity substitutions, not a full HTML parser.
func CleanDescription(htmlString string) string {
	if htmlString == "" {
		return ""
	}

	out := htmlTagPattern.ReplaceAllString(htmlString, "")
	out = strings.ReplaceAll(out, "&amp;", "&")
	out = strings.ReplaceAll(out, "&lt;", "<")
	out = strings.ReplaceAll(out, "&gt;", ">")
	out = strings.ReplaceAll(out, "&quot;", `"`)
	out = strings.ReplaceAll(out, "&#39;", "'")
	out = strings.ReplaceAll(out, "&nbsp;", " ")
	out = strings.ReplaceAll(out, `\u003c`, "<")
	out = strings.ReplaceAll(out, `\u003e`, ">")
	out = strings.ReplaceAll(out, `\`, "")
	return strings.TrimSpace(out)
}

func normalizeOptions(options []Option) []entity.OptionGroup {
	out := make([]entity.OptionGroup, 0, len(options))
	for _, o := range options {
		out = append(out, entity.OptionGroup{Name: o.Name, Values: o.Values})
	}
	return out
}

func normalizeVariants(variants []Variant) []entity.Variant {
	out := make([]entity.Variant, 0, len(variants))
	for _, v := range variants {
		out = append(out, entity.Variant{
			ID:             v.ID,
			Title:          v.Title,
			Price:          v.Price,
			CompareAtPrice: v.CompareAtPrice,
			Available:      v.Available,
			Option1:        v.Option1,
			Option2:        v.Option2,
			SKU:            v.SKU,
		})
	}
	return out
}
