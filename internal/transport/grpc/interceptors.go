package grpcx

import (
	"context"
	"log/slog"
	"runtime/debug"
	"strings"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/cwrk-planet/classroom-scheduler/internal/logger"
)

const defaultCallTimeout = 10 * time.Second

// Unary logging + recovery + timeout guard (если у вызова нет deadline)
func UnaryServerInterceptor(callTimeout time.Duration) grpc.UnaryServerInterceptor {
	if callTimeout <= 0 {
		callTimeout = defaultCallTimeout
	}
	return func(
		ctx context.Context,
		req any,
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (resp any, err error) {
		start := time.Now()
		if _, ok := ctx.Deadline(); !ok {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, callTimeout)
			defer cancel()
		}

		defer func() {
			if r := recover(); r != nil {
				slog.LogAttrs(ctx, slog.LevelError, "grpc unary panic",
					append(logger.AttrsFromCtx(ctx),
						slog.String("method", info.FullMethod),
						slog.Any("panic", r),
						slog.String("stack", string(debug.Stack())))...)
				err = status.Error(codes.Internal, "internal server error")
			}
			logCall(ctx, "grpc unary", info.FullMethod, start, err)
		}()

		return handler(ctx, req)
	}
}

func StreamServerInterceptor() grpc.StreamServerInterceptor {
	return func(
		srv any,
		ss grpc.ServerStream,
		info *grpc.StreamServerInfo,
		handler grpc.StreamHandler,
	) (err error) {
		start := time.Now()
		ctx := ss.Context()

		defer func() {
			if r := recover(); r != nil {
				slog.LogAttrs(ctx, slog.LevelError, "grpc stream panic",
					append(logger.AttrsFromCtx(ctx),
						slog.String("method", info.FullMethod),
						slog.Any("panic", r),
						slog.String("stack", string(debug.Stack())))...)
				err = status.Error(codes.Internal, "internal server error")
			}
			logCall(ctx, "grpc stream", info.FullMethod, start, err)
		}()

		return handler(srv, ss)
	}
}

// health-пробы идут часто, поэтому успешные пишем в debug
func logCall(ctx context.Context, msg, method string, start time.Time, err error) {
	level := slog.LevelInfo
	switch {
	case err != nil:
		level = slog.LevelWarn
	case strings.HasPrefix(method, healthServicePrefix):
		level = slog.LevelDebug
	}
	slog.LogAttrs(ctx, level, msg,
		append(logger.AttrsFromCtx(ctx),
			slog.String("method", method),
			slog.Int64("dur_ms", time.Since(start).Milliseconds()),
			slog.String("code", status.Code(err).String()),
			slog.String("err", errString(err)))...)
}

const healthServicePrefix = "/grpc.health.v1.Health/"

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
