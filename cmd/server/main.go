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
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/makanlab/restaurant-locator/internal/config"
	"github.com/makanlab/restaurant-locator/internal/handler"
	middlewarepkg "github.com/makanlab/restaurant-locator/internal/middleware"
	"github.com/makanlab/restaurant-locator/internal/places"
	"github.com/makanlab/restaurant-locator/internal/router"
	"github.com/makanlab/restaurant-locator/internal/service"
	"github.com/makanlab/restaurant-locator/internal/tool"
)

const version = "1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	httpClient := &http.Client{Timeout: cfg.UpstreamTimeout}
	placesClient := places.NewClient(httpClient, cfg.PlacesBaseURL, cfg.APIKey, cfg.Region, cfg.MaxResults)
	searchService := service.NewSearchService(placesClient)

	mcpServer := tool.NewServer(searchService, version)
	mcpHTTP := mcpserver.NewStreamableHTTPServer(mcpServer)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middlewarepkg.RequestID())
	e.Use(middlewarepkg.Logging())
	e.Use(echoMiddleware.Recover())

	router.Register(e, cfg, router.Handlers{
		Search: handler.NewSearchHandler(searchService),
		MCP:    mcpHTTP,
	})

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("listening on port %s region=%s", cfg.Port, cfg.Region)
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
