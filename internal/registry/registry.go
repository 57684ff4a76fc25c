package registry

import (
	"sort"
	"strings"

	"threadline/internal/domain/entity"
)

// Registry is the static, read-only brand catalog compiled into the binary.
// Admin edits never touch it; they operate on a session store cloned from it.
type Registry struct {
	ids    []string
	brands map[string]entity.Brand
}

func New(brands []entity.Brand) *Registry {
	r := &Registry{
		ids:    make([]string, 0, len(brands)),
		brands: make(map[string]entity.Brand, len(brands)),
	}
	for _, b := range brands {
		if _, exists := r.brands[b.ID]; !exists {
			r.ids = append(r.ids, b.ID)
		}
		r.brands[b.ID] = b
	}
	return r
}

// Default returns the registry backed by the built-in brand database.
func Default() *Registry {
	return New(defaultBrands)
}

// ByID returns the brand with the given id, or nil if unknown.
func (r *Registry) ByID(id string) *entity.Brand {
	b, ok := r.brands[id]
	if !ok {
		return nil
	}
	return &b
}

func (r *Registry) All() []entity.Brand {
	out := make([]entity.Brand, 0, len(r.ids))
	for _, id := range r.ids {
		out = append(out, r.brands[id])
	}
	return out
}

func (r *Registry) Active() []entity.Brand {
	out := make([]entity.Brand, 0, len(r.ids))
	for _, b := range r.All() {
		if b.Active {
			out = append(out, b)
		}
	}
	return out
}

// Live returns active brands whose products are fetched from a merchant feed.
func (r *Registry) Live() []entity.Brand {
	out := make([]entity.Brand, 0, len(r.ids))
	for _, b := range r.Active() {
		if b.IsLive() {
			out = append(out, b)
		}
	}
	return out
}

func (r *Registry) ByCategory(category string) []entity.Brand {
	var out []entity.Brand
	for _, b := range r.Active() {
		if b.HasCategory(category) {
			out = append(out, b)
		}
	}
	return out
}

// Trending returns promoted brands ordered by ascending trending priority
// (lower rank sorts first).
func (r *Registry) Trending() []entity.Brand {
	var out []entity.Brand
	for _, b := range r.Active() {
		if b.Trending.Promoted && b.Trending.Active {
			out = append(out, b)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Trending.Priority < out[j].Trending.Priority
	})
	return out
}

func (r *Registry) FeaturedForCategory(category string) []entity.Brand {
	var out []entity.Brand
	for _, b := range r.ByCategory(category) {
		for _, cat := range b.Categories {
			if cat.Category == category && cat.Featured {
				out = append(out, b)
				break
			}
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CategoryPriority(category) < out[j].CategoryPriority(category)
	})
	return out
}

// Search matches the query case-insensitively against brand name, tagline and
// story.
func (r *Registry) Search(query string) []entity.Brand {
	term := strings.ToLower(query)
	var out []entity.Brand
	for _, b := range r.Active() {
		if strings.Contains(strings.ToLower(b.Name), term) ||
			strings.Contains(strings.ToLower(b.Tagline), term) ||
			strings.Contains(strings.ToLower(b.Story), term) {
			out = append(out, b)
		}
	}
	return out
}

func (r *Registry) ByPriceRange(priceRange string) []entity.Brand {
	var out []entity.Brand
	for _, b := range r.Active() {
		if b.PriceRange == priceRange {
			out = append(out, b)
		}
	}
	return out
}

func (r *Registry) RecentlyUpdated(limit int) []entity.Brand {
	out := r.Active()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Metadata.UpdatedAt.After(out[j].Metadata.UpdatedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func (r *Registry) IsLiveBrand(id string) bool {
	b, ok := r.brands[id]
	return ok && b.IsLive()
}

// FeedDomain returns the merchant feed hostname for a live brand.
func (r *Registry) FeedDomain(id string) (string, bool) {
	b, ok := r.brands[id]
	if !ok || !b.IsLive() {
		return "", false
	}
	return b.FeedDomain, true
}
