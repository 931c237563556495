package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/cwrk-planet/classroom-scheduler/internal/domain"
	"github.com/cwrk-planet/classroom-scheduler/internal/logger"
	"github.com/cwrk-planet/classroom-scheduler/internal/repository"
)

// notFound переводит ErrNotFound хранилища в доменную ошибку сущности.
func notFound(err, target error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return target
	}
	return err
}

// logFailure: отказы по правилам и ненайденные записи пишутся в warn, остальное в error.
func logFailure(ctx context.Context, op string, err error) {
	attrs := append(logger.AttrsFromCtx(ctx), slog.String("op", op), slog.Any("err", err))
	switch {
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrConflict):
		slog.LogAttrs(ctx, slog.LevelWarn, op+" rejected", attrs...)
	default:
		slog.LogAttrs(ctx, slog.LevelError, op+" failed", attrs...)
	}
}
