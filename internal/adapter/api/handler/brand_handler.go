package handler

import (
	"fmt"
	"io"

	"threadline/internal/domain/entity"
	"threadline/internal/usecase"
	"threadline/pkg/errors"
	"threadline/pkg/response"

	"github.com/labstack/echo/v4"
)

type BrandHandler struct {
	brandUseCase *usecase.BrandUseCase
}

func NewBrandHandler(brandUseCase *usecase.BrandUseCase) *BrandHandler {
	return &BrandHandler{
		brandUseCase: brandUseCase,
	}
}

type categoryAssignmentRequest struct {
	Category string `json:"category" validate:"required,oneof=fashion watches fitness beauty"`
	Featured bool   `json:"featured"`
	Priority int    `json:"priority"`
	Active   bool   `json:"active"`
}

type trendingRequest struct {
	Promoted        bool   `json:"promoted"`
	PromotionType   string `json:"promotionType" validate:"omitempty,oneof=paid featured new sale exclusive"`
	Priority        int    `json:"priority"`
	CampaignEndDate string `json:"campaignEndDate"`
	Active          bool   `json:"active"`
}

type brandRequest struct {
	ID         string                      `json:"id" validate:"required"`
	Name       string                      `json:"name" validate:"required"`
	Tagline    string                      `json:"tagline" validate:"required"`
	Story      string                      `json:"story"`
	HeroImage  string                      `json:"heroImage" validate:"omitempty,url"`
	Logo       string                      `json:"logo"`
	Founded    string                      `json:"founded"`
	Location   string                      `json:"location"`
	Website    string                      `json:"website" validate:"omitempty,url"`
	Source     string                      `json:"sourceKind" validate:"omitempty,oneof=feed static"`
	FeedDomain string                      `json:"feedDomain"`
	PriceRange string                      `json:"priceRange" validate:"omitempty,oneof=budget mid luxury ultra-luxury"`
	Categories []categoryAssignmentRequest `json:"categories" validate:"dive"`
	Trending   trendingRequest             `json:"trending"`
	Active     bool                        `json:"active"`
	Products   []entity.Product            `json:"products"`
	Metadata   entity.BrandMetadata        `json:"metadata"`
}

func (req *brandRequest) toEntity() entity.Brand {
	source := entity.BrandSource(req.Source)
	if source == "" {
		if req.FeedDomain != "" {
			source = entity.SourceFeed
		} else {
			source = entity.SourceStatic
		}
	}

	categories := make([]entity.CategoryAssignment, len(req.Categories))
	for i, cat := range req.Categories {
		categories[i] = entity.CategoryAssignment{
			Category: cat.Category,
			Featured: cat.Featured,
			Priority: cat.Priority,
			Active:   cat.Active,
		}
	}

	return entity.Brand{
		ID:         req.ID,
		Name:       req.Name,
		Tagline:    req.Tagline,
		Story:      req.Story,
		HeroImage:  req.HeroImage,
		Logo:       req.Logo,
		Founded:    req.Founded,
		Location:   req.Location,
		Website:    req.Website,
		Source:     source,
		FeedDomain: req.FeedDomain,
		PriceRange: req.PriceRange,
		Categories: categories,
		Trending: entity.TrendingConfig{
			Promoted:        req.Trending.Promoted,
			PromotionType:   req.Trending.PromotionType,
			Priority:        req.Trending.Priority,
			CampaignEndDate: req.Trending.CampaignEndDate,
			Active:          req.Trending.Active,
		},
		Active:   req.Active,
		Products: req.Products,
		Metadata: req.Metadata,
	}
}

type brandListResponse struct {
	Success bool           `json:"success"`
	Brands  []entity.Brand `json:"brands"`
	Total   int            `json:"total"`
}

type brandResponse struct {
	Success bool          `json:"success"`
	Brand   *entity.Brand `json:"brand,omitempty"`
	Message string        `json:"message,omitempty"`
}

func (h *BrandHandler) ListBrands(c echo.Context) error {
	brands, err := h.brandUseCase.ListBrands(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.OK(c, brandListResponse{
		Success: true,
		Brands:  brands,
		Total:   len(brands),
	})
}

func (h *BrandHandler) GetBrand(c echo.Context) error {
	brand, err := h.brandUseCase.GetBrandByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.OK(c, brandResponse{
		Success: true,
		Brand:   brand,
	})
}

// SaveBrand creates or replaces a brand in the session store. The write is
// process-lifetime only; a restart reverts it.
func (h *BrandHandler) SaveBrand(c echo.Context) error {
	var req brandRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid brand payload", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	brand, err := h.brandUseCase.SaveBrand(c.Request().Context(), req.toEntity())
	if err != nil {
		return response.Error(c, err)
	}

	return response.OK(c, brandResponse{
		Success: true,
		Brand:   brand,
		Message: fmt.Sprintf("Brand %q saved successfully (session only - changes reset on restart)", brand.Name),
	})
}

func (h *BrandHandler) ReplaceBrand(c echo.Context) error {
	var req brandRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid brand payload", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	brand, err := h.brandUseCase.ReplaceBrand(c.Request().Context(), req.toEntity())
	if err != nil {
		return response.Error(c, err)
	}

	return response.OK(c, brandResponse{
		Success: true,
		Brand:   brand,
		Message: fmt.Sprintf("Brand %q updated successfully (session only)", brand.Name),
	})
}

// PatchBrand shallow-merges the request body over the stored brand.
func (h *BrandHandler) PatchBrand(c echo.Context) error {
	patch, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return response.Error(c, errors.BadRequest("Invalid brand payload", err))
	}

	brand, err := h.brandUseCase.PatchBrand(c.Request().Context(), c.Param("id"), patch)
	if err != nil {
		return response.Error(c, err)
	}

	return response.OK(c, brandResponse{
		Success: true,
		Brand:   brand,
		Message: fmt.Sprintf("Brand %q updated successfully (session only)", brand.Name),
	})
}

// DeleteBrand accepts the id either as a path parameter or as the ?id= query
// form.
func (h *BrandHandler) DeleteBrand(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		id = c.QueryParam("id")
	}
	if id == "" {
		return response.Error(c, errors.BadRequest("Brand ID is required", nil))
	}

	brand, err := h.brandUseCase.DeleteBrand(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}

	return response.OK(c, brandResponse{
		Success: true,
		Message: fmt.Sprintf("Brand %q deleted successfully (session only)", brand.Name),
	})
}
