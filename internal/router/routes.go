package router

import (
	"net/http"

	"github.com/labstack/echo/v4"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/makanlab/restaurant-locator/internal/config"
	"github.com/makanlab/restaurant-locator/internal/handler"
	middlewarepkg "github.com/makanlab/restaurant-locator/internal/middleware"
)

// Handlers aggregates HTTP handlers used by the router.
type Handlers struct {
	Search *handler.SearchHandler
	MCP    *mcpserver.StreamableHTTPServer
}

// Register wires all HTTP routes for the service. The MCP streamable HTTP
// handler owns everything under /mcp (POST for JSON-RPC, GET for the SSE
// stream, DELETE for session teardown).
func Register(e *echo.Echo, cfg *config.Config, handlers Handlers) {
	e.GET("/healthz", func(c echo.Context) error {
		return handler.Success(c, http.StatusOK, "service healthy", map[string]any{"status": "ok"})
	})

	e.POST("/search", handlers.Search.Search, middlewarepkg.SearchRateLimiter(cfg.RateLimitSearch))

	if handlers.MCP != nil {
		e.Any("/mcp", echo.WrapHandler(handlers.MCP))
	}
}
