package router

import (
	"threadline/internal/adapter/api/handler"

	"github.com/labstack/echo/v4"
)

func SetupSitemapRouter(e *echo.Echo) {
	sitemapHandler := handler.GetSitemapHandler()
	e.GET("/sitemap.xml", sitemapHandler.GetSitemap)
}
