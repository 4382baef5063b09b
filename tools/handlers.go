package tools

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/akarlsson/pokedex-mcp-server/internal/pokeapi"
	"github.com/akarlsson/pokedex-mcp-server/metrics"
	"github.com/akarlsson/pokedex-mcp-server/tracing"
)

// HandlerRegistry provides type-safe tool registration by mapping
// tool names to their concrete handler implementations.
type HandlerRegistry struct {
	client *pokeapi.Client
	logger *slog.Logger
}

// NewHandlerRegistry creates a new handler registry.
func NewHandlerRegistry(client *pokeapi.Client, logger *slog.Logger) *HandlerRegistry {
	return &HandlerRegistry{
		client: client,
		logger: logger,
	}
}

// RegisterAll registers all tools with the MCP server.
func (h *HandlerRegistry) RegisterAll(server *mcp.Server) {
	for _, spec := range AllTools {
		h.registerByName(server, spec)
	}
	h.logger.Info("Registered all tools", "count", len(AllTools))
}

// registerByName dispatches to the correct typed registration function.
func (h *HandlerRegistry) registerByName(server *mcp.Server, spec ToolSpec) {
	tool := h.buildTool(spec)

	switch spec.Method {
	case "GetPokemonInfo":
		register(h, server, tool, spec, h.client.GetPokemonInfoMCP)
	case "SearchByType":
		register(h, server, tool, spec, h.client.SearchByTypeMCP)
	case "SearchByGeneration":
		register(h, server, tool, spec, h.client.SearchByGenerationMCP)
	case "GetEvolutionChain":
		register(h, server, tool, spec, h.client.GetEvolutionChainMCP)
	case "ComparePokemon":
		register(h, server, tool, spec, h.client.ComparePokemonMCP)
	default:
		h.logger.Error("Unknown method, tool not registered", "method", spec.Method, "tool", spec.Name)
	}
}

// buildTool creates an mcp.Tool from a ToolSpec.
func (h *HandlerRegistry) buildTool(spec ToolSpec) *mcp.Tool {
	annotations := &mcp.ToolAnnotations{
		Title:          spec.Title,
		ReadOnlyHint:   spec.ReadOnly,
		IdempotentHint: spec.Idempotent,
	}
	if spec.OpenWorld {
		annotations.OpenWorldHint = ptr(true)
	}

	return &mcp.Tool{
		Name:        spec.Name,
		Description: spec.Description,
		Annotations: annotations,
	}
}

// register is a generic helper that registers a tool with the MCP server.
func register[Args any](
	h *HandlerRegistry,
	server *mcp.Server,
	tool *mcp.Tool,
	spec ToolSpec,
	method func(context.Context, Args) (string, error),
) {
	mcp.AddTool(server, tool, wrap(h, spec, method))
}

// wrap builds the MCP handler around a client method. It adds panic
// recovery, metrics, tracing, and logging, and converts every operation
// error into an error-flagged text result prefixed with the tool's error
// context. Neither an error nor a nil result ever escapes past the RPC
// boundary: a recovered panic is reported as an error-flagged internal
// error.
func wrap[Args any](
	h *HandlerRegistry,
	spec ToolSpec,
	method func(context.Context, Args) (string, error),
) func(context.Context, *mcp.CallToolRequest, Args) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, args Args) (result *mcp.CallToolResult, _ any, _ error) {
		defer func() {
			if rec := recover(); rec != nil {
				metrics.PanicsRecovered.WithLabelValues(spec.Name).Inc()
				h.logger.Error("Panic recovered",
					"tool", spec.Name,
					"panic", rec,
					"stack", string(debug.Stack()))
				result = &mcp.CallToolResult{
					IsError: true,
					Content: []mcp.Content{
						&mcp.TextContent{Text: fmt.Sprintf("%s: internal error", spec.ErrorContext)},
					},
				}
			}
		}()

		// Start trace span
		ctx, span := tracing.StartSpan(ctx, "mcp.tool."+spec.Name)
		defer span.End()

		span.SetAttributes(
			attribute.String("mcp.tool.name", spec.Name),
			attribute.String("mcp.tool.category", spec.Category),
			attribute.Bool("mcp.tool.readonly", spec.ReadOnly),
		)

		// Track in-flight requests
		metrics.RequestInFlight.WithLabelValues(spec.Name).Inc()
		defer metrics.RequestInFlight.WithLabelValues(spec.Name).Dec()

		start := time.Now()
		text, err := method(ctx, args)
		duration := time.Since(start).Seconds()

		span.SetAttributes(attribute.Float64("mcp.tool.duration_seconds", duration))

		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			metrics.RecordRequest(spec.Name, duration, false)
			h.logger.Warn("Tool failed", "tool", spec.Name, "error", err)
			return &mcp.CallToolResult{
				IsError: true,
				Content: []mcp.Content{
					&mcp.TextContent{Text: fmt.Sprintf("%s: %s", spec.ErrorContext, err.Error())},
				},
			}, nil, nil
		}

		span.SetStatus(codes.Ok, "")
		metrics.RecordRequest(spec.Name, duration, true)
		h.logExecution(spec, args, text)
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: text}},
		}, nil, nil
	}
}

// logExecution logs tool execution details.
func (h *HandlerRegistry) logExecution(spec ToolSpec, args any, text string) {
	attrs := []any{"tool", spec.Name, "output_chars", len(text)}

	switch a := args.(type) {
	case pokeapi.GetPokemonInfoArgs:
		attrs = append(attrs, "name", a.Name)
	case pokeapi.SearchByTypeArgs:
		attrs = append(attrs, "type", a.Type, "limit", a.Limit)
	case pokeapi.SearchByGenerationArgs:
		attrs = append(attrs, "generation", a.Generation, "limit", a.Limit)
	case pokeapi.GetEvolutionChainArgs:
		attrs = append(attrs, "name", a.Name)
	case pokeapi.ComparePokemonArgs:
		attrs = append(attrs, "pokemon_count", len(a.Pokemon))
	}

	h.logger.Info("Tool executed", attrs...)
}
