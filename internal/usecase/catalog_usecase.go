package usecase

import (
	"context"

	"threadline/internal/domain/entity"
	"threadline/internal/registry"
	"threadline/pkg/errors"
)

// CatalogUseCase answers storefront reads: it resolves brands against the
// static registry and, for live brands, pulls products from the merchant feed.
type CatalogUseCase struct {
	registry *registry.Registry
	feed     FeedService
}

func NewCatalogUseCase(reg *registry.Registry, feed FeedService) *CatalogUseCase {
	return &CatalogUseCase{
		registry: reg,
		feed:     feed,
	}
}

func (uc *CatalogUseCase) GetBrand(id string) (*entity.Brand, error) {
	brand := uc.registry.ByID(id)
	if brand == nil {
		return nil, errors.NotFound("Brand", nil)
	}
	return brand, nil
}

// BrandProducts returns the display catalog for one brand. Live brands fetch
// from their feed domain per call; a feed outage yields an empty list, not an
// error. Static brands serve their embedded product list.
func (uc *CatalogUseCase) BrandProducts(ctx context.Context, brandID string) ([]entity.ProductDetail, error) {
	brand := uc.registry.ByID(brandID)
	if brand == nil {
		return nil, errors.NotFound("Brand", nil)
	}

	if brand.IsLive() {
		return uc.feed.FetchBrandProducts(ctx, brand.FeedDomain), nil
	}

	out := make([]entity.ProductDetail, 0, len(brand.Products))
	for _, p := range brand.Products {
		out = append(out, entity.ProductDetail{Product: p})
	}
	return out, nil
}

// FindBrandProduct resolves one product of a brand by slug for the detail
// page.
func (uc *CatalogUseCase) FindBrandProduct(ctx context.Context, brandID, slug string) (*entity.ProductDetail, error) {
	products, err := uc.BrandProducts(ctx, brandID)
	if err != nil {
		return nil, err
	}

	for _, p := range products {
		if p.Slug == slug {
			return &p, nil
		}
	}
	return nil, errors.NotFound("Product", nil)
}

// TrendingBrands lists promoted brands by ascending trending rank, capped at
// the configured maximum.
func (uc *CatalogUseCase) TrendingBrands() []entity.Brand {
	out := uc.registry.Trending()
	if len(out) > registry.MaxTrendingBrands {
		out = out[:registry.MaxTrendingBrands]
	}
	return out
}

type CategoryPage struct {
	Category registry.CategoryInfo `json:"category"`
	Brands   []entity.Brand        `json:"brands"`
	Featured []entity.Brand        `json:"featured"`
}

func (uc *CatalogUseCase) GetCategoryPage(category string) (*CategoryPage, error) {
	info, ok := registry.CategoryConfig[category]
	if !ok {
		return nil, errors.NotFound("Category", nil)
	}

	return &CategoryPage{
		Category: info,
		Brands:   uc.registry.ByCategory(category),
		Featured: uc.registry.FeaturedForCategory(category),
	}, nil
}

func (uc *CatalogUseCase) SearchBrands(query string) ([]entity.Brand, error) {
	if query == "" {
		return nil, errors.BadRequest("Search query is required", nil)
	}
	return uc.registry.Search(query), nil
}
