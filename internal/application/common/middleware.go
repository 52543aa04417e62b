package common

import (
	"context"
	"fmt"
	"reflect"

	"github.com/andrescamacho/spacecargo/internal/application/mediator"
	"github.com/andrescamacho/spacecargo/internal/domain/shared"
)

// LoggingMiddleware logs every request dispatched through the mediator at DEBUG,
// and failures at WARN, using the logger carried in the context. A nil clock
// means the system clock.
func LoggingMiddleware(clock shared.Clock) mediator.Middleware {
	if clock == nil {
		clock = shared.NewRealClock()
	}

	return func(ctx context.Context, request mediator.Request, next mediator.HandlerFunc) (mediator.Response, error) {
		logger := LoggerFromContext(ctx)
		name := requestName(request)
		started := clock.Now()

		logger.Log("DEBUG", fmt.Sprintf("[Mediator] dispatching %s", name), nil)

		response, err := next(ctx, request)

		metadata := map[string]interface{}{
			"request":     name,
			"duration_ms": clock.Now().Sub(started).Milliseconds(),
		}
		if err != nil {
			logger.Log("WARN", fmt.Sprintf("[Mediator] %s failed: %v", name, err), metadata)
			return nil, err
		}

		logger.Log("DEBUG", fmt.Sprintf("[Mediator] %s completed", name), metadata)
		return response, nil
	}
}

func requestName(request mediator.Request) string {
	t := reflect.TypeOf(request)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}
