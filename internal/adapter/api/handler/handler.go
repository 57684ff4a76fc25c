package handler

import (
	"threadline/internal/usecase"
)

var (
	brandHandler   *BrandHandler
	catalogHandler *CatalogHandler
	sitemapHandler *SitemapHandler
	healthHandler  *HealthHandler
)

func Setup(
	brandUseCase *usecase.BrandUseCase,
	catalogUseCase *usecase.CatalogUseCase,
	baseURL string,
) {
	brandHandler = NewBrandHandler(brandUseCase)
	catalogHandler = NewCatalogHandler(catalogUseCase)
	sitemapHandler = NewSitemapHandler(baseURL)
	healthHandler = NewHealthHandler()
}

func GetBrandHandler() *BrandHandler {
	return brandHandler
}

func GetCatalogHandler() *CatalogHandler {
	return catalogHandler
}

func GetSitemapHandler() *SitemapHandler {
	return sitemapHandler
}

func GetHealthHandler() *HealthHandler {
	return healthHandler
}
