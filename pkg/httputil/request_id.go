package httputil

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/cwrk-planet/classroom-scheduler/internal/logger"
)

const HeaderRequestID = "X-Request-ID"

// MiddlewareRequestID: пробрасывает/генерирует X-Request-ID и кладёт его в контекст логгера.
func MiddlewareRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get(HeaderRequestID)
		if reqID == "" {
			reqID = uuid.NewString()
		}
		w.Header().Set(HeaderRequestID, reqID)

		ctx := logger.WithRequestID(r.Context(), reqID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// FromContext: достать request id из контекста.
func FromContext(ctx context.Context) (string, bool) {
	return logger.RequestIDFromCtx(ctx)
}
