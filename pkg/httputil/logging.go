package httputil

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/cwrk-planet/classroom-scheduler/internal/logger"
)

// тела длиннее обрезаются в логе
const maxLoggedBody = 2048

// Логирует метод, путь, статус, длительность, JSON-тела запрос/ответ и X-Request-ID.
func MiddlewareLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		var reqBody string
		if isJSON(r.Header.Get("Content-Type")) && r.Body != nil {
			var buf bytes.Buffer
			b, _ := io.ReadAll(io.TeeReader(r.Body, &buf))
			r.Body = io.NopCloser(&buf)
			reqBody = truncate(string(b))
		}

		lrw := &logResponseWriter{ResponseWriter: w}
		next.ServeHTTP(lrw, r)

		attrs := append(logger.AttrsFromCtx(r.Context()),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", lrw.status),
			slog.Int("bytes", lrw.bytes),
			slog.String("duration", time.Since(start).String()),
		)
		if reqBody != "" {
			attrs = append(attrs, slog.String("req_body", reqBody))
		}
		if isJSON(lrw.Header().Get("Content-Type")) {
			attrs = append(attrs, slog.String("resp_body", truncate(lrw.body.String())))
		}

		slog.LogAttrs(r.Context(), slog.LevelInfo, "http request", attrs...)
	})
}

func isJSON(contentType string) bool {
	return strings.Contains(strings.ToLower(contentType), "json")
}

func truncate(s string) string {
	if len(s) <= maxLoggedBody {
		return s
	}
	return s[:maxLoggedBody] + "..."
}

type logResponseWriter struct {
	http.ResponseWriter
	status int
	bytes  int
	body   bytes.Buffer
}

func (w *logResponseWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *logResponseWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	if w.body.Len() < maxLoggedBody {
		w.body.Write(b)
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n

	return n, err
}

// Hijack нужен для апгрейда /ws/{topic} за этим middleware.
func (w *logResponseWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	h, ok := w.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, errors.New("response writer does not support hijacking")
	}
	w.status = http.StatusSwitchingProtocols
	return h.Hijack()
}

func (w *logResponseWriter) Flush() {
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}
