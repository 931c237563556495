package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cwrk-planet/classroom-scheduler/config"
	"github.com/cwrk-planet/classroom-scheduler/internal/logger"
	"github.com/cwrk-planet/classroom-scheduler/internal/pg"
	"github.com/cwrk-planet/classroom-scheduler/internal/repository"
	"github.com/cwrk-planet/classroom-scheduler/internal/repository/memory"
	"github.com/cwrk-planet/classroom-scheduler/internal/repository/postgres"
	"github.com/cwrk-planet/classroom-scheduler/internal/service"
	grpcx "github.com/cwrk-planet/classroom-scheduler/internal/transport/grpc"
	httpx "github.com/cwrk-planet/classroom-scheduler/internal/transport/http"
	"github.com/cwrk-planet/classroom-scheduler/internal/transport/ws"
)

func main() {
	// --- config ---
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger.Init(logger.Config{
		Env:              logger.ParseEnv(cfg.Logging.Env),
		Service:          cfg.Logging.Service,
		Version:          cfg.Logging.Version,
		Backend:          logger.Backend(cfg.Logging.Backend),
		AddSource:        cfg.Logging.AddSource,
		Debug:            cfg.Logging.Debug,
		SampleInitial:    cfg.Logging.SampleInitial,
		SampleThereafter: cfg.Logging.SampleThereafter,
	})
	slog.Info("starting classroom-scheduler",
		"env", cfg.Logging.Env, "version", cfg.Logging.Version, "storage", cfg.Storage.Driver)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- storage ---
	store, err := openStore(ctx, cfg)
	if err != nil {
		slog.Error("open storage", "err", err)
		os.Exit(1)
	}
	defer store.Close()
	repos := store.Repositories()

	// --- WS Hub: получает события сервисов ---
	hub := ws.NewHub()

	// --- services ---
	roomSvc := service.NewRoomService(repos.Rooms, store, hub, time.Now)
	userSvc := service.NewUserService(repos.Users, store, hub, time.Now)
	reservationSvc := service.NewReservationService(repos.Reservations, store, hub, time.Now)

	// --- HTTP ---
	router := httpx.NewRouter(httpx.Deps{
		Handler:        httpx.NewHandler(roomSvc, userSvc, reservationSvc),
		WS:             ws.NewServer(hub, cfg.HTTP.WSPingInterval),
		Ready:          store.Ping,
		AllowedOrigins: cfg.HTTP.CORSOrigins,
		RequestTimeout: cfg.HTTP.RequestTimeout,
	})
	httpSrv := httpx.NewServer(httpx.Config{
		Addr:            cfg.HTTP.Addr,
		ReadTimeout:     cfg.HTTP.ReadTimeout,
		WriteTimeout:    cfg.HTTP.WriteTimeout,
		IdleTimeout:     cfg.HTTP.IdleTimeout,
		ShutdownTimeout: cfg.ShutdownTimeout,
	}, router)

	// --- gRPC (health + reflection) ---
	grpcSrv := grpcx.NewServer(grpcx.Config{
		Addr:           cfg.GRPC.Addr,
		HealthInterval: cfg.GRPC.HealthInterval,
		CallTimeout:    cfg.GRPC.CallTimeout,
	}, store)

	// --- run both servers ---
	httpErr := make(chan error, 1)
	grpcErr := make(chan error, 1)
	go func() { httpErr <- httpSrv.Run(ctx) }()
	go func() { grpcErr <- grpcSrv.Run(ctx) }()

	// --- graceful shutdown ---
	httpDone := false
	select {
	case <-ctx.Done():
		slog.Info("shutdown signal")
	case err := <-httpErr:
		httpDone = true
		slog.Error("http server error", "err", err)
	case err := <-grpcErr:
		slog.Error("grpc server error", "err", err)
	}
	stop()

	grpcSrv.Stop()
	if !httpDone {
		// Run сам вызывает Shutdown с cfg.ShutdownTimeout
		if err := <-httpErr; err != nil {
			slog.Error("http server error", "err", err)
		}
	}
	slog.Info("stopped")
}

func openStore(ctx context.Context, cfg *config.Config) (repository.Store, error) {
	switch cfg.Storage.Driver {
	case config.DriverMemory:
		slog.Warn("using in-memory storage, data is lost on restart")
		return memory.NewStore(), nil
	default:
		pool, err := pg.NewPool(ctx, cfg.Postgres.ToPGConfig())
		if err != nil {
			return nil, fmt.Errorf("postgres: %w", err)
		}
		store := postgres.NewStore(pool)
		if cfg.Postgres.Migrate {
			if err := store.Migrate(ctx); err != nil {
				store.Close()
				return nil, fmt.Errorf("migrate: %w", err)
			}
			slog.Info("schema applied")
		}
		return store, nil
	}
}
