package contextx

import (
	"context"
	"fmt"

	"github.com/rs/xid"
)

// TraceID correlates log records of a single request. It is taken from the
// X-Trace-Id header or generated on the edge, and travels in the context.
type TraceID string

type contextKeyTraceID struct{}

// NewTraceID generates a fresh sortable identifier.
func NewTraceID() TraceID {
	return TraceID(xid.New().String())
}

func (t TraceID) String() string {
	return string(t)
}

func WithTraceID(ctx context.Context, traceID TraceID) context.Context {
	return context.WithValue(ctx, contextKeyTraceID{}, traceID)
}

func TraceIDFromContext(ctx context.Context) (TraceID, error) {
	traceID, ok := ctx.Value(contextKeyTraceID{}).(TraceID)
	if !ok {
		return "", fmt.Errorf("trace id: %w", ErrNoValue)
	}

	return traceID, nil
}
