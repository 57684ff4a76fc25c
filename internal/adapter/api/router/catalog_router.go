package router

import (
	"threadline/internal/adapter/api/handler"

	"github.com/labstack/echo/v4"
)

// SetupCatalogRouter registers the read-only storefront surface backed by the
// static registry and the live merchant feeds.
func SetupCatalogRouter(e *echo.Echo) {
	catalogHandler := handler.GetCatalogHandler()

	catalog := e.Group("/api/catalog")
	catalog.GET("/brands/:id", catalogHandler.GetBrand)
	catalog.GET("/brands/:id/products", catalogHandler.ListBrandProducts)
	catalog.GET("/brands/:id/products/:slug", catalogHandler.GetBrandProduct)
	catalog.GET("/trending", catalogHandler.ListTrendingBrands)
	catalog.GET("/categories", catalogHandler.ListCategories)
	catalog.GET("/categories/:category", catalogHandler.GetCategory)
	catalog.GET("/search", catalogHandler.SearchBrands)
}
