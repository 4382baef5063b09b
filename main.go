// Pokédex MCP Server - A Model Context Protocol server for Pokémon lookups
// Provides tools for querying PokéAPI: Pokédex info, type and generation
// search, evolution chains, and stat comparison.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/akarlsson/pokedex-mcp-server/internal/pokeapi"
	"github.com/akarlsson/pokedex-mcp-server/tools"
	"github.com/akarlsson/pokedex-mcp-server/tracing"
)

const (
	ServerName    = "pokedex-mcp-server"
	ServerVersion = "1.0.0"
)

func main() {
	// Configure logging to stderr (stdout is used for MCP protocol)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	ctx := context.Background()

	// Initialize tracing (no-op unless OTEL_* env vars are set)
	shutdown, err := tracing.Setup(ctx, tracing.DefaultConfig())
	if err != nil {
		log.Fatalf("Failed to initialize tracing: %v", err)
	}
	defer func() {
		if err := shutdown(ctx); err != nil {
			logger.Warn("Tracing shutdown failed", "error", err)
		}
	}()

	// Load configuration from environment
	config := pokeapi.LoadConfig()

	// Create PokéAPI client
	client := pokeapi.NewClient(config, pokeapi.WithLogger(logger))

	// Create MCP server
	server := mcp.NewServer(&mcp.Implementation{
		Name:    ServerName,
		Version: ServerVersion,
	}, &mcp.ServerOptions{
		Logger:       logger,
		Instructions: buildInstructions(),
	})

	// Register all tools
	registry := tools.NewHandlerRegistry(client, logger)
	registry.RegisterAll(server)

	logger.Info("Starting Pokédex MCP Server",
		"name", ServerName,
		"version", ServerVersion,
		"api_url", config.BaseURL,
	)

	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// buildInstructions assembles the server instructions block from the tool
// definitions so the host LLM sees the current tool surface.
func buildInstructions() string {
	var sb strings.Builder
	sb.WriteString("Pokédex MCP Server provides tools for looking up Pokémon data from PokéAPI.\n\nAvailable tools:\n")
	for _, spec := range tools.AllTools {
		sb.WriteString(fmt.Sprintf("- %s: %s\n", spec.Name, spec.Title))
	}
	sb.WriteString(`
All tools are read-only lookups against the public PokéAPI.

Configure via environment variables:
- POKEAPI_BASE_URL: API root (default https://pokeapi.co/api/v2)
- POKEAPI_TIMEOUT: Request timeout (default 30s)
- POKEAPI_USER_AGENT: Custom User-Agent header`)
	return sb.String()
}
