package metrics

import (
	"context"
	"reflect"
	"strings"
	"time"

	"github.com/andrescamacho/spacecargo/internal/application/cargo/types"
	"github.com/andrescamacho/spacecargo/internal/application/mediator"
	"github.com/andrescamacho/spacecargo/internal/domain/shared"
)

// PrometheusMiddleware creates a middleware that records command execution metrics
//
// This middleware wraps all command/query execution and records:
// - Execution duration (histogram)
// - Success/failure counts (counter)
// - Tons moved by successful load/unload commands
// - Domain rejections by error kind
func PrometheusMiddleware(collector *Collector) mediator.Middleware {
	return func(ctx context.Context, request mediator.Request, next mediator.HandlerFunc) (mediator.Response, error) {
		// Skip metrics if collector is nil (metrics disabled)
		if collector == nil {
			return next(ctx, request)
		}

		commandName := extractCommandName(request)
		start := time.Now()

		response, err := next(ctx, request)

		collector.RecordCommandExecution(commandName, time.Since(start).Seconds(), err == nil)

		if err != nil {
			if kind := shared.KindOf(err); kind != shared.KindUnknown {
				collector.RecordRejection(commandName, string(kind))
			}
			return response, err
		}

		switch cmd := request.(type) {
		case *types.LoadCargoCommand:
			collector.RecordTransfer("load", cmd.PlanetName, cmd.Weight)
		case *types.UnloadCargoCommand:
			collector.RecordTransfer("unload", cmd.PlanetName, cmd.Weight)
		}

		return response, nil
	}
}

// extractCommandName extracts a clean command name from the request using reflection
// Examples:
//   - "*types.FlyToCommand" → "FlyToCommand"
//   - "*types.ReportQuery" → "ReportQuery"
func extractCommandName(request mediator.Request) string {
	if request == nil {
		return "UnknownCommand"
	}

	fullName := strings.TrimPrefix(reflect.TypeOf(request).String(), "*")

	parts := strings.Split(fullName, ".")
	if len(parts) > 0 {
		return parts[len(parts)-1]
	}

	return fullName
}
