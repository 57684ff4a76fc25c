package router

import (
	"threadline/internal/adapter/api/handler"

	"github.com/labstack/echo/v4"
)

// SetupBrandRouter registers the admin brand CRUD surface. Writes hit the
// session store and reset on restart.
func SetupBrandRouter(e *echo.Echo) {
	brandHandler := handler.GetBrandHandler()

	brands := e.Group("/api/brands")
	brands.GET("", brandHandler.ListBrands)
	brands.POST("", brandHandler.SaveBrand)
	brands.PUT("", brandHandler.ReplaceBrand)
	brands.DELETE("", brandHandler.DeleteBrand)

	brands.GET("/:id", brandHandler.GetBrand)
	brands.PUT("/:id", brandHandler.PatchBrand)
	brands.DELETE("/:id", brandHandler.DeleteBrand)
}
