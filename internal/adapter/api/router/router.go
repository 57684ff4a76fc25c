package router

import (
	"github.com/labstack/echo/v4"
)

func Setup(e *echo.Echo) {
	SetupBrandRouter(e)
	SetupCatalogRouter(e)
	SetupSitemapRouter(e)
	SetupHealthRouter(e)
}
