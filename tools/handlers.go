package tools

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/GlobalPhilatelicNetwork/GoogleSheet-Function-GetAdress/internal/gpn"
	"github.com/GlobalPhilatelicNetwork/GoogleSheet-Function-GetAdress/metrics"
	"github.com/GlobalPhilatelicNetwork/GoogleSheet-Function-GetAdress/tracing"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// HandlerRegistry provides type-safe tool registration by mapping
// tool names to their concrete handler implementations.
type HandlerRegistry struct {
	client *gpn.Client
	logger *slog.Logger
}

// NewHandlerRegistry creates a new handler registry.
func NewHandlerRegistry(client *gpn.Client, logger *slog.Logger) *HandlerRegistry {
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
	case "GetAddress":
		register(h, server, tool, spec, h.client.GetAddressMCP)
	case "ListAddressTypes":
		register(h, server, tool, spec, h.client.ListAddressTypesMCP)
	case "RenderAddress":
		register(h, server, tool, spec, h.client.RenderAddressMCP)
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
// It wraps the client method with panic recovery, metrics, tracing, and logging.
func register[Args, Result any](
	h *HandlerRegistry,
	server *mcp.Server,
	tool *mcp.Tool,
	spec ToolSpec,
	method func(context.Context, Args) (Result, error),
) {
	mcp.AddTool(server, tool, func(ctx context.Context, req *mcp.CallToolRequest, args Args) (*mcp.CallToolResult, Result, error) {
		defer h.recoverPanic(spec.Name)

		// Start trace span
		ctx, span := tracing.StartSpan(ctx, "mcp.tool."+spec.Name)
		defer span.End()

		span.SetAttributes(
			attribute.String("mcp.tool.name", spec.Name),
			attribute.String("mcp.tool.category", spec.Category),
			attribute.Bool("mcp.tool.readonly", spec.ReadOnly),
		)
		addArgAttributes(span, args)

		// Track in-flight requests
		metrics.RequestInFlight.WithLabelValues(spec.Name).Inc()
		defer metrics.RequestInFlight.WithLabelValues(spec.Name).Dec()

		start := time.Now()
		result, err := method(ctx, args)
		duration := time.Since(start).Seconds()

		span.SetAttributes(attribute.Float64("mcp.tool.duration_seconds", duration))

		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			metrics.RecordRequest(spec.Name, duration, false)
			var zero Result
			return nil, zero, fmt.Errorf("%s failed: %w", spec.Name, err)
		}

		span.SetStatus(codes.Ok, "")
		metrics.RecordRequest(spec.Name, duration, true)
		h.logExecution(spec, args, result)
		return nil, result, nil
	})
}

// addArgAttributes attaches argument attributes to a tool span.
func addArgAttributes(span trace.Span, args any) {
	switch a := args.(type) {
	case gpn.GetAddressArgs:
		tracing.AddLookupAttributes(span, a.ClientID, a.Type, a.Field)
	case gpn.ListAddressTypesArgs:
		span.SetAttributes(attribute.Int64("gpn.client_id", a.ClientID))
	case gpn.RenderAddressArgs:
		span.SetAttributes(attribute.Int("gpn.render.input_chars", len(a.HTML)))
	}
}

// recoverPanic recovers from panics in tool handlers.
func (h *HandlerRegistry) recoverPanic(toolName string) {
	if rec := recover(); rec != nil {
		metrics.PanicsRecovered.WithLabelValues(toolName).Inc()
		h.logger.Error("Panic recovered",
			"tool", toolName,
			"panic", rec,
			"stack", string(debug.Stack()))
	}
}

// logExecution logs tool execution details.
func (h *HandlerRegistry) logExecution(spec ToolSpec, args, result any) {
	attrs := []any{"tool", spec.Name}

	// Add extractable fields from args using type assertions
	switch a := args.(type) {
	case gpn.GetAddressArgs:
		attrs = append(attrs, "client_id", a.ClientID, "type", a.Type, "field", a.Field)
	case gpn.ListAddressTypesArgs:
		attrs = append(attrs, "client_id", a.ClientID)
	case gpn.RenderAddressArgs:
		attrs = append(attrs, "input_chars", len(a.HTML))
	}

	// Add extractable fields from result
	switch r := result.(type) {
	case gpn.GetAddressResult:
		attrs = append(attrs, "output_chars", len(r.Address), "is_default", r.IsDefault)
	case gpn.ListAddressTypesResult:
		attrs = append(attrs, "addresses", len(r.Addresses), "found", r.Found)
	case gpn.RenderAddressResult:
		attrs = append(attrs, "output_chars", len(r.Text))
	}

	h.logger.Info("Tool executed", attrs...)
}
