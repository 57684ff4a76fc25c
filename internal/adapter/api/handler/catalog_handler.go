package handler

import (
	"threadline/internal/domain/entity"
	"threadline/internal/registry"
	"threadline/internal/usecase"
	"threadline/pkg/response"

	"github.com/labstack/echo/v4"
)

type CatalogHandler struct {
	catalogUseCase *usecase.CatalogUseCase
}

func NewCatalogHandler(catalogUseCase *usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{
		catalogUseCase: catalogUseCase,
	}
}

type productListResponse struct {
	Success  bool                   `json:"success"`
	Products []entity.ProductDetail `json:"products"`
	Total    int                    `json:"total"`
}

func (h *CatalogHandler) GetBrand(c echo.Context) error {
	brand, err := h.catalogUseCase.GetBrand(c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.OK(c, brandResponse{
		Success: true,
		Brand:   brand,
	})
}

// ListBrandProducts serves the product grid for one brand. Feed outages for
// live brands degrade to an empty list with a 200, never an error page.
func (h *CatalogHandler) ListBrandProducts(c echo.Context) error {
	products, err := h.catalogUseCase.BrandProducts(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.OK(c, productListResponse{
		Success:  true,
		Products: products,
		Total:    len(products),
	})
}

func (h *CatalogHandler) GetBrandProduct(c echo.Context) error {
	product, err := h.catalogUseCase.FindBrandProduct(c.Request().Context(), c.Param("id"), c.Param("slug"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.OK(c, map[string]interface{}{
		"success": true,
		"product": product,
	})
}

// ListTrendingBrands returns promoted brands by ascending rank along with the
// badge styles the storefront renders them with.
func (h *CatalogHandler) ListTrendingBrands(c echo.Context) error {
	brands := h.catalogUseCase.TrendingBrands()

	return response.OK(c, map[string]interface{}{
		"success":         true,
		"brands":          brands,
		"total":           len(brands),
		"promotionStyles": registry.PromotionStyles,
	})
}

func (h *CatalogHandler) ListCategories(c echo.Context) error {
	return response.OK(c, map[string]interface{}{
		"success":    true,
		"categories": registry.CategoryConfig,
	})
}

func (h *CatalogHandler) GetCategory(c echo.Context) error {
	page, err := h.catalogUseCase.GetCategoryPage(c.Param("category"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.OK(c, map[string]interface{}{
		"success":  true,
		"category": page.Category,
		"brands":   page.Brands,
		"featured": page.Featured,
	})
}

func (h *CatalogHandler) SearchBrands(c echo.Context) error {
	brands, err := h.catalogUseCase.SearchBrands(c.QueryParam("q"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.OK(c, brandListResponse{
		Success: true,
		Brands:  brands,
		Total:   len(brands),
	})
}
