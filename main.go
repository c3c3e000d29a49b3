// GPN Address MCP Server - A Model Context Protocol server for the Global
// Philatelic Network client-management API. Provides tools for looking up
// client addresses and rendering them as plain text.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"runtime/debug"

	"github.com/GlobalPhilatelicNetwork/GoogleSheet-Function-GetAdress/internal/gpn"
	"github.com/GlobalPhilatelicNetwork/GoogleSheet-Function-GetAdress/tools"
	"github.com/GlobalPhilatelicNetwork/GoogleSheet-Function-GetAdress/tracing"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	ServerName    = "gpn-address-mcp-server"
	ServerVersion = "1.0.0"
)

// recoverPanic wraps a function with panic recovery so a bad tool call
// cannot take down the server process.
func recoverPanic(logger *slog.Logger, operation string) {
	if r := recover(); r != nil {
		logger.Error("Panic recovered",
			"operation", operation,
			"panic", r,
			"stack", string(debug.Stack()))
	}
}

func main() {
	// Configure logging to stderr (stdout is used for MCP protocol)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Load configuration from environment
	config, err := gpn.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	// Set up tracing (no-op unless OTEL_ENABLED or an OTLP endpoint is set)
	shutdownTracing, err := tracing.Setup(ctx, tracing.DefaultConfig())
	if err != nil {
		log.Fatalf("Failed to set up tracing: %v", err)
	}
	defer func() {
		defer recoverPanic(logger, "tracing shutdown")
		if err := shutdownTracing(ctx); err != nil {
			logger.Warn("Tracing shutdown failed", "error", err)
		}
	}()

	// Create GPN API client
	client := gpn.NewClient(config, gpn.WithLogger(logger))

	// Create MCP server
	server := mcp.NewServer(&mcp.Implementation{
		Name:    ServerName,
		Version: ServerVersion,
	}, &mcp.ServerOptions{
		Logger: logger,
		Instructions: `GPN Address MCP Server provides tools for looking up client addresses
in the Global Philatelic Network.

Available tools:
- gpn_get_client_address: Get a client's address as plain text, or a single field of it
- gpn_list_address_types: List the addresses a client has on record (types, fields)
- gpn_render_address: Convert an HTML address fragment to plain text

Configure via environment variables:
- GPN_API_URL: API root (defaults to the production endpoint)
- GPN_USERNAME: API username for HTTP Basic authentication (required)
- GPN_PASSWORD: API password (required)
- GPN_TIMEOUT: Request timeout (e.g. 10s)`,
	})

	// Register all tools
	registry := tools.NewHandlerRegistry(client, logger)
	registry.RegisterAll(server)

	// Run server on stdio transport
	logger.Info("Starting GPN Address MCP Server",
		"name", ServerName,
		"version", ServerVersion,
		"api_url", config.BaseURL,
	)

	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
