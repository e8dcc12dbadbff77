// Package utils provides helpers shared by the server and the client:
// request trace propagation, JSON responses, the resty HTTP client and
// record ID generation.
package utils

import (
	"context"
)

// TraceIDHeader carries the trace ID of a request between client and server.
const TraceIDHeader = "X-Trace-ID"

// contextKey keeps context keys of this package apart from string keys of
// other packages.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// TraceIDCtxKey stores the trace ID of the current request.
var TraceIDCtxKey = contextKey("traceID")

// WithTraceID returns a copy of ctx carrying traceID.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, TraceIDCtxKey, traceID)
}

// GetTraceIDFromContext returns the trace ID stored by WithTraceID.
func GetTraceIDFromContext(ctx context.Context) (string, bool) {
	traceID, ok := ctx.Value(TraceIDCtxKey).(string)
	return traceID, ok && traceID != ""
}
