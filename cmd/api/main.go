package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"threadline/internal/adapter/api"
	"threadline/internal/adapter/api/handler"
	"threadline/internal/adapter/api/router"
	"threadline/internal/adapter/repository"
	"threadline/internal/infrastructure/shopify"
	"threadline/internal/registry"
	"threadline/internal/usecase"
	"threadline/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	brandRegistry := registry.Default()
	brandRepo := repository.NewMemoryBrandRepository(brandRegistry)

	feedClient := shopify.NewClient(
		time.Duration(cfg.FeedTimeout)*time.Second,
		time.Duration(cfg.FeedCacheTTL)*time.Second,
	)

	brandUseCase := usecase.NewBrandUseCase(brandRepo)
	catalogUseCase := usecase.NewCatalogUseCase(brandRegistry, feedClient)

	handler.Setup(brandUseCase, catalogUseCase, cfg.BaseURL)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	router.Setup(e)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
