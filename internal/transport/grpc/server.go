package grpcx

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// ServiceName: имя сервиса для health.Check; пустое имя отражает состояние сервера целиком.
const ServiceName = "classroom.scheduler.v1"

type Pinger interface {
	Ping(ctx context.Context) error
}

type Config struct {
	Addr           string        // ":9090"
	HealthInterval time.Duration // 10s
	CallTimeout    time.Duration // 10s
}

// Server: стандартный grpc.health.v1 + reflection. Статус обновляется по Ping хранилища.
type Server struct {
	cfg    Config
	grpc   *grpc.Server
	health *health.Server
	store  Pinger
}

func NewServer(cfg Config, store Pinger) *Server {
	if cfg.HealthInterval <= 0 {
		cfg.HealthInterval = 10 * time.Second
	}
	gs := grpc.NewServer(
		grpc.ChainUnaryInterceptor(UnaryServerInterceptor(cfg.CallTimeout)),
		grpc.ChainStreamInterceptor(StreamServerInterceptor()),
	)
	hs := health.NewServer()
	healthpb.RegisterHealthServer(gs, hs)
	reflection.Register(gs)

	hs.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	hs.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_NOT_SERVING)

	return &Server{
		cfg:    cfg,
		grpc:   gs,
		health: hs,
		store:  store,
	}
}

// Serve блокирует до ошибки листенера или Stop.
func (s *Server) Serve(ctx context.Context, lis net.Listener) error {
	go s.watch(ctx)

	slog.Info("grpc listen", slog.String("addr", lis.Addr().String()))
	if err := s.grpc.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return err
	}
	return nil
}

// Run слушает cfg.Addr.
func (s *Server) Run(ctx context.Context) error {
	lis, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, lis)
}

func (s *Server) Stop() {
	s.health.Shutdown()
	s.grpc.GracefulStop()
}

func (s *Server) watch(ctx context.Context) {
	s.check(ctx)

	ticker := time.NewTicker(s.cfg.HealthInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.check(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (s *Server) check(ctx context.Context) {
	st := healthpb.HealthCheckResponse_SERVING
	if err := s.store.Ping(ctx); err != nil {
		if ctx.Err() != nil {
			return
		}
		slog.Warn("storage ping failed", slog.Any("err", err))
		st = healthpb.HealthCheckResponse_NOT_SERVING
	}
	s.health.SetServingStatus("", st)
	s.health.SetServingStatus(ServiceName, st)
}
