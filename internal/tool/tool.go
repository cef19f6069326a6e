package tool

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cast"

	"github.com/makanlab/restaurant-locator/internal/dto"
)

const serverName = "Singapore Restaurant Locator"

// Searcher is the contract the tool surface needs from the search service.
type Searcher interface {
	Search(ctx context.Context, query string) ([]dto.RestaurantResult, error)
}

// NewServer builds an MCP server exposing the search_restaurants tool. The
// caller decides the transport; main mounts it as a streamable HTTP handler.
func NewServer(svc Searcher, version string) *server.MCPServer {
	srv := server.NewMCPServer(serverName, version, server.WithToolCapabilities(false))

	searchTool := mcp.NewTool("search_restaurants",
		mcp.WithDescription("Search for restaurants or food places in Singapore using queries like 'laksa' or 'vegan tiramisu'"),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Search term for food or restaurant type"),
		),
	)
	srv.AddTool(searchTool, searchHandler(svc))

	return srv
}

func searchHandler(svc Searcher) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query := cast.ToString(req.GetArguments()["query"])

		results, err := svc.Search(ctx, query)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if len(results) == 0 {
			return mcp.NewToolResultText("No places found for your query."), nil
		}
		return mcp.NewToolResultText(formatResults(results)), nil
	}
}

// formatResults renders results as a numbered text listing, one block per
// place. Absent rating or price level renders as "n/a" rather than a zero.
func formatResults(results []dto.RestaurantResult) string {
	blocks := make([]string, 0, len(results))
	for i, r := range results {
		blocks = append(blocks, fmt.Sprintf(
			"%d. %s\n   Address: %s\n   Price Level: %s\n   Rating: %s\n",
			i+1, r.Name, r.Address, priceLevelText(r.PriceLevel), ratingText(r.Rating),
		))
	}
	return strings.Join(blocks, "\n")
}

func ratingText(rating *float64) string {
	if rating == nil {
		return "n/a"
	}
	return strconv.FormatFloat(*rating, 'f', -1, 64)
}

func priceLevelText(level *int) string {
	if level == nil {
		return "n/a"
	}
	return strconv.Itoa(*level)
}
