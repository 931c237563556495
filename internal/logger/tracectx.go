package logger

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/trace"
)

type ctxKey string

const ctxKeyRequestID ctxKey = "req_id"

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKeyRequestID, id)
}

func RequestIDFromCtx(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(ctxKeyRequestID).(string)
	return v, ok && v != ""
}

// AttrsFromCtx достаёт req_id и trace_id/span_id (если спан валиден).
func AttrsFromCtx(ctx context.Context) []slog.Attr {
	var attrs []slog.Attr
	if id, ok := RequestIDFromCtx(ctx); ok {
		attrs = append(attrs, slog.String("req_id", id))
	}

	sc := trace.SpanFromContext(ctx).SpanContext()
	if sc.IsValid() {
		attrs = append(attrs,
			slog.String("trace_id", sc.TraceID().String()),
			slog.String("span_id", sc.SpanID().String()),
		)
	}

	return attrs
}
