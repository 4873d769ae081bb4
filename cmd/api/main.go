package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/geoask/places-api/internal/config"
	"github.com/geoask/places-api/internal/geocode"
	"github.com/geoask/places-api/internal/handler"
	middlewarepkg "github.com/geoask/places-api/internal/middleware"
	"github.com/geoask/places-api/internal/router"
	"github.com/geoask/places-api/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	var completer service.Completer
	if cfg.OpenAIKey != "" {
		completer = service.NewOpenAICompleter(cfg.OpenAIKey, cfg.OpenAIModel)
	} else {
		log.Printf("OPENAI_API_KEY not set, search requests will fail")
	}

	var resolver service.Resolver
	if cfg.MapsKey != "" {
		geoClient, err := geocode.NewClient(cfg.MapsKey, cfg.Region, cfg.DefaultCountry, cfg.SearchRadiusM)
		if err != nil {
			log.Printf("failed to build maps client, map markers disabled: %v", err)
		} else {
			resolver = geoClient
		}
	} else {
		log.Printf("MAPS_API_KEY not set, map markers disabled")
	}

	searchService := service.NewSearchService(completer, resolver)
	searchHandler := handler.NewSearchHandler(searchService)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middlewarepkg.RequestID())
	e.Use(middlewarepkg.Logging())
	e.Use(echoMiddleware.Recover())

	router.Register(e, cfg, router.Handlers{Search: searchHandler})

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- e.Start(":" + cfg.Port)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		log.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
		return
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}
}
